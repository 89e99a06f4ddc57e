package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/R4tZz/vibe-code/internal/smoke"
)

// RunSmoke checks the storefront markup first, then drives the smoke
// scenarios through a real browser. Scenario failures surface as a
// non-nil error after every scenario has run.
func RunSmoke(ctx context.Context, deps Dependencies) error {
	report, err := deps.CheckStorefront(ctx, deps.Config.BaseURL)
	if err != nil {
		return fmt.Errorf("storefront preflight failed: %w", err)
	}
	if !report.Ready() {
		for _, problem := range report.Problems {
			fmt.Fprintf(deps.Out, "problem: %s\n", problem)
		}
		if len(report.Problems) == 1 {
			return errors.New("storefront preflight found 1 problem")
		}
		return fmt.Errorf("storefront preflight found %d problems", len(report.Problems))
	}

	results, err := deps.RunScenarios(ctx, deps.Config, deps.Log)
	if err != nil {
		return err
	}

	for _, result := range results {
		if result.Passed {
			fmt.Fprintf(deps.Out, "PASS %s (attempts: %d, took %s)\n",
				result.Name, result.Attempts, result.Duration.Round(time.Millisecond))
		} else {
			fmt.Fprintf(deps.Out, "FAIL %s: %v\n", result.Name, result.Err)
		}
	}

	passed, failed := smoke.Summary(results)
	fmt.Fprintf(deps.Out, "%d passed, %d failed\n", passed, failed)
	if failed > 0 {
		return fmt.Errorf("%d of %d scenarios failed", failed, len(results))
	}
	return nil
}
