// Package browser owns the automation engine lifecycle: driver startup,
// browser launch and teardown. Everything above it works against the
// engine's Page and Locator handles.
package browser

import (
	"errors"
	"fmt"

	"github.com/playwright-community/playwright-go"

	"github.com/R4tZz/vibe-code/internal/config"
)

// ErrUnknownBrowser is returned when the configured browser name does not
// match a supported engine.
var ErrUnknownBrowser = errors.New("unknown browser")

// Session owns one running automation driver and one launched browser
type Session struct {
	PW      *playwright.Playwright
	Browser playwright.Browser
}

// Launch starts the automation driver and launches the configured browser
func Launch(cfg *config.SuiteConfig) (*Session, error) {
	pw, err := playwright.Run()
	if err != nil {
		return nil, fmt.Errorf("failed to start automation driver: %w", err)
	}

	bt, err := browserType(pw, cfg.Browser)
	if err != nil {
		pw.Stop()
		return nil, err
	}

	b, err := bt.Launch(playwright.BrowserTypeLaunchOptions{
		Headless: playwright.Bool(cfg.Headless),
		SlowMo:   playwright.Float(cfg.SlowMoMs()),
	})
	if err != nil {
		pw.Stop()
		return nil, fmt.Errorf("failed to launch %s: %w", cfg.Browser, err)
	}

	return &Session{PW: pw, Browser: b}, nil
}

// NewContext creates an isolated browser context for one test or smoke run.
// The context resolves relative navigations against the configured base URL
// and inherits the suite's action and navigation timeouts. A non-empty
// videoDir turns on video recording into that directory.
func (s *Session) NewContext(cfg *config.SuiteConfig, videoDir string) (playwright.BrowserContext, error) {
	opts := playwright.BrowserNewContextOptions{
		BaseURL:  playwright.String(cfg.BaseURL),
		Viewport: &playwright.Size{Width: 1280, Height: 720},
	}
	if videoDir != "" {
		opts.RecordVideo = &playwright.RecordVideo{Dir: videoDir}
	}

	ctx, err := s.Browser.NewContext(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to create browser context: %w", err)
	}
	ctx.SetDefaultTimeout(cfg.ActionTimeoutMs())
	ctx.SetDefaultNavigationTimeout(cfg.NavigationTimeoutMs())
	return ctx, nil
}

// Close shuts the browser down and stops the driver. Safe to call on a
// partially constructed session.
func (s *Session) Close() error {
	var firstErr error
	if s.Browser != nil {
		if err := s.Browser.Close(); err != nil {
			firstErr = fmt.Errorf("failed to close browser: %w", err)
		}
	}
	if s.PW != nil {
		if err := s.PW.Stop(); err != nil && firstErr == nil {
			firstErr = fmt.Errorf("failed to stop automation driver: %w", err)
		}
	}
	return firstErr
}

// Install downloads the automation driver and the configured browser.
// Already installed components are reused, so repeated calls are cheap.
func Install(cfg *config.SuiteConfig) error {
	if err := playwright.Install(&playwright.RunOptions{Browsers: []string{cfg.Browser}}); err != nil {
		return fmt.Errorf("failed to install %s: %w", cfg.Browser, err)
	}
	return nil
}

func browserType(pw *playwright.Playwright, name string) (playwright.BrowserType, error) {
	switch name {
	case config.BrowserChromium:
		return pw.Chromium, nil
	case config.BrowserFirefox:
		return pw.Firefox, nil
	case config.BrowserWebKit:
		return pw.WebKit, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownBrowser, name)
}
