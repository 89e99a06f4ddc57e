package cli

import (
	"context"
	"errors"
	"fmt"
)

// RunDoctor prints the resolved configuration and checks that the
// storefront and the browser engine are ready for a run. It returns an
// error when anything is off, so CI can gate on the exit code.
func RunDoctor(ctx context.Context, deps Dependencies) error {
	printConfig(deps.Out, deps.Config)

	engineReady := true
	if deps.ProbeEngine != nil {
		if err := deps.ProbeEngine(deps.Config); err != nil {
			fmt.Fprintf(deps.Out, "Browser engine:      unavailable (%v)\n", err)
			engineReady = false
		} else {
			fmt.Fprintln(deps.Out, "Browser engine:      ok")
		}
	}

	report, err := deps.CheckStorefront(ctx, deps.Config.BaseURL)
	if err != nil {
		fmt.Fprintf(deps.Out, "Landing page:        %v\n", err)
		if !engineReady {
			return fmt.Errorf("browser engine and storefront are not ready: %w", err)
		}
		return fmt.Errorf("storefront is not ready: %w", err)
	}

	fmt.Fprintf(deps.Out, "Landing page:        %q with %d hot sellers\n", report.Title, report.CardCount)
	storefrontReady := report.Ready()
	if !storefrontReady {
		for _, problem := range report.Problems {
			fmt.Fprintf(deps.Out, "  problem: %s\n", problem)
		}
	}

	switch {
	case !engineReady && !storefrontReady:
		return errors.New("browser engine and storefront are not ready")
	case !engineReady:
		return errors.New("browser engine is not ready")
	case !storefrontReady:
		return errors.New("storefront is not ready")
	}
	fmt.Fprintln(deps.Out, "Everything looks good")
	return nil
}
