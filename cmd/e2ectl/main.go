package main

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"github.com/R4tZz/vibe-code/internal/browser"
	internalcli "github.com/R4tZz/vibe-code/internal/cli"
	"github.com/R4tZz/vibe-code/internal/config"
	"github.com/R4tZz/vibe-code/internal/preflight"
	"github.com/R4tZz/vibe-code/internal/smoke"
)

var version = "0.1.0"

// buildDependencies wires the real collaborators for every command
func buildDependencies(verbose bool) (internalcli.Dependencies, error) {
	cfg, err := config.LoadSuiteConfig(os.Getenv)
	if err != nil {
		return internalcli.Dependencies{}, err
	}

	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	if verbose {
		logger.SetLevel(logrus.DebugLevel)
	}

	return internalcli.Dependencies{
		Config:          cfg,
		Log:             logger,
		Out:             os.Stdout,
		InstallBrowser:  browser.Install,
		ProbeEngine:     probeEngine,
		CheckStorefront: preflight.Check,
		RunScenarios:    smoke.Execute,
	}, nil
}

// probeEngine launches and closes the configured browser once
func probeEngine(cfg *config.SuiteConfig) error {
	session, err := browser.Launch(cfg)
	if err != nil {
		return err
	}
	return session.Close()
}

// InstallCommand returns the install command
func InstallCommand() *cli.Command {
	return &cli.Command{
		Name:  "install",
		Usage: "Download the automation driver and the configured browser",
		Action: func(c *cli.Context) error {
			deps, err := buildDependencies(c.Bool("verbose"))
			if err != nil {
				return err
			}
			return internalcli.RunInstall(deps)
		},
	}
}

// DoctorCommand returns the doctor command
func DoctorCommand() *cli.Command {
	return &cli.Command{
		Name:  "doctor",
		Usage: "Check that the storefront and the browser engine are ready",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "skip-engine",
				Usage: "Skip the browser engine launch probe",
			},
		},
		Action: func(c *cli.Context) error {
			deps, err := buildDependencies(c.Bool("verbose"))
			if err != nil {
				return err
			}
			if c.Bool("skip-engine") {
				deps.ProbeEngine = nil
			}
			return internalcli.RunDoctor(c.Context, deps)
		},
	}
}

// SmokeCommand returns the smoke command
func SmokeCommand() *cli.Command {
	return &cli.Command{
		Name:  "smoke",
		Usage: "Run the read-only smoke scenarios against the storefront",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:  "retries",
				Usage: "Override the E2E_RETRIES retry budget for this run",
			},
		},
		Action: func(c *cli.Context) error {
			deps, err := buildDependencies(c.Bool("verbose"))
			if err != nil {
				return err
			}
			if c.IsSet("retries") {
				deps.Config.Retries = c.Int("retries")
			}
			return internalcli.RunSmoke(c.Context, deps)
		},
	}
}

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables")
	}

	app := &cli.App{
		Name:    "e2ectl",
		Usage:   "Storefront end-to-end suite management tool",
		Version: version,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: "Enable debug logging",
			},
		},
		Commands: []*cli.Command{
			InstallCommand(),
			DoctorCommand(),
			SmokeCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
