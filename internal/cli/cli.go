// Package cli implements the e2ectl commands: installing the browser
// engine, checking a storefront deployment and running the smoke
// scenarios. Commands receive their collaborators through Dependencies
// so tests can substitute them.
package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"

	"github.com/R4tZz/vibe-code/internal/config"
	"github.com/R4tZz/vibe-code/internal/preflight"
	"github.com/R4tZz/vibe-code/internal/smoke"
)

// Dependencies holds everything the commands need
type Dependencies struct {
	Config *config.SuiteConfig
	Log    *logrus.Logger
	Out    io.Writer

	// InstallBrowser downloads the automation driver and the configured
	// browser.
	InstallBrowser func(*config.SuiteConfig) error
	// ProbeEngine launches and closes the configured browser once. Left
	// nil, doctor skips the probe.
	ProbeEngine func(*config.SuiteConfig) error
	// CheckStorefront inspects the landing page markup over plain HTTP.
	CheckStorefront func(context.Context, string) (*preflight.Report, error)
	// RunScenarios executes the smoke scenarios against the storefront.
	RunScenarios func(context.Context, *config.SuiteConfig, *logrus.Logger) ([]smoke.Result, error)
}

func printConfig(w io.Writer, cfg *config.SuiteConfig) {
	mode := "headless"
	if !cfg.Headless {
		mode = "headed"
	}
	fmt.Fprintf(w, "Storefront base URL: %s\n", cfg.BaseURL)
	fmt.Fprintf(w, "Browser:             %s (%s)\n", cfg.Browser, mode)
	fmt.Fprintf(w, "Action timeout:      %s\n", cfg.ActionTimeout)
	fmt.Fprintf(w, "Navigation timeout:  %s\n", cfg.NavigationTimeout)
	fmt.Fprintf(w, "Assertion timeout:   %s\n", cfg.ExpectTimeout)
	fmt.Fprintf(w, "Artifacts directory: %s\n", cfg.ArtifactsDir)
	fmt.Fprintf(w, "Smoke retries:       %d\n", cfg.Retries)
}
