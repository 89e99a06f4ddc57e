package cli

import "fmt"

// RunInstall downloads the automation driver and the configured browser
func RunInstall(deps Dependencies) error {
	deps.Log.WithField("browser", deps.Config.Browser).Info("installing browser engine")

	if err := deps.InstallBrowser(deps.Config); err != nil {
		return fmt.Errorf("failed to install browser engine: %w", err)
	}

	fmt.Fprintf(deps.Out, "Installed %s and its automation driver\n", deps.Config.Browser)
	return nil
}
