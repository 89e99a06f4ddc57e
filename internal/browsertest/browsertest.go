// Package browsertest provides the fixtures for browser-driven tests:
// one browser shared by every test in the binary, an isolated context
// and page per test, and failure diagnostics collected on teardown.
//
// Tests acquire a fixture with New and never close anything themselves;
// teardown is registered on the test's cleanup stack. TestMain must
// call Shutdown after m.Run so the shared browser goes away with the
// process.
package browsertest

import (
	"os"
	"sync"
	"testing"
	"time"

	"github.com/playwright-community/playwright-go"

	"github.com/R4tZz/vibe-code/internal/artifacts"
	"github.com/R4tZz/vibe-code/internal/browser"
	"github.com/R4tZz/vibe-code/internal/config"
	"github.com/R4tZz/vibe-code/internal/pages"
)

// Fixture hands a test everything it needs to drive the storefront.
// Page and the locators derived from it are valid for this test only.
type Fixture struct {
	Config  *config.SuiteConfig
	Context playwright.BrowserContext
	Page    playwright.Page
	Home    *pages.HomePage
	Expect  playwright.PlaywrightAssertions
}

type options struct {
	isolatedBrowser bool
	slowMo          time.Duration
	skipNavigation  bool
}

// Option adjusts how a fixture is built
type Option func(*options)

// WithIsolatedBrowser launches a dedicated browser for this test
// instead of sharing the suite-wide one. The browser is closed when
// the test finishes.
func WithIsolatedBrowser() Option {
	return func(o *options) { o.isolatedBrowser = true }
}

// WithSlowMo delays every engine operation, for watching a single test
// locally. Slow motion is a launch setting, so this implies
// WithIsolatedBrowser.
func WithSlowMo(delay time.Duration) Option {
	return func(o *options) {
		o.isolatedBrowser = true
		o.slowMo = delay
	}
}

// WithoutNavigation skips the initial landing page navigation. The
// returned fixture's Home page object is built but not yet navigated.
func WithoutNavigation() Option {
	return func(o *options) { o.skipNavigation = true }
}

var (
	sharedOnce    sync.Once
	sharedSession *browser.Session
	sharedErr     error

	runOnce sync.Once
	run     *artifacts.Run
	runErr  error
)

// New builds a fixture for one test: a fresh browser context and page
// against the configured storefront, with the landing page already
// open. Tests without a reachable browser engine are skipped.
func New(t testing.TB, opts ...Option) *Fixture {
	t.Helper()

	if testing.Short() {
		t.Skip("skipping browser test in short mode")
	}

	o := options{}
	for _, opt := range opts {
		opt(&o)
	}

	cfg, err := config.LoadSuiteConfig(os.Getenv)
	if err != nil {
		t.Fatalf("Failed to load suite config: %v", err)
	}

	session := acquireSession(t, cfg, o)

	videoDir := ""
	if cfg.Video {
		if r, err := artifactsRun(cfg); err == nil {
			videoDir = r.VideoDir()
		} else {
			t.Logf("Video disabled, no artifacts directory: %v", err)
		}
	}

	ctx, err := session.NewContext(cfg, videoDir)
	if err != nil {
		t.Fatalf("Failed to create browser context: %v", err)
	}
	t.Cleanup(func() {
		if err := ctx.Close(); err != nil {
			t.Logf("Failed to close browser context: %v", err)
		}
	})

	if cfg.Trace {
		startTracing(t, cfg, ctx)
	}

	page, err := ctx.NewPage()
	if err != nil {
		t.Fatalf("Failed to open page: %v", err)
	}

	if cfg.Screenshots {
		captureScreenshotOnFailure(t, cfg, page)
	}

	home := pages.NewHomePage(page)
	if !o.skipNavigation {
		if err := home.Navigate(); err != nil {
			t.Fatalf("Failed to open the storefront landing page: %v", err)
		}
	}

	return &Fixture{
		Config:  cfg,
		Context: ctx,
		Page:    page,
		Home:    home,
		Expect:  playwright.NewPlaywrightAssertions(cfg.ExpectTimeoutMs()),
	}
}

// Step writes one narration line to the test log, for steps whose
// runtime values a comment cannot carry.
func Step(t testing.TB, format string, args ...any) {
	t.Helper()
	t.Logf("step: "+format, args...)
}

// Shutdown closes the browser shared across tests. Call it from
// TestMain after m.Run.
func Shutdown() {
	if sharedSession != nil {
		_ = sharedSession.Close()
		sharedSession = nil
	}
}

func acquireSession(t testing.TB, cfg *config.SuiteConfig, o options) *browser.Session {
	t.Helper()

	if o.isolatedBrowser {
		launchCfg := *cfg
		if o.slowMo > 0 {
			launchCfg.SlowMo = o.slowMo
		}
		session, err := browser.Launch(&launchCfg)
		if err != nil {
			t.Skipf("browser engine unavailable: %v", err)
		}
		t.Cleanup(func() {
			if err := session.Close(); err != nil {
				t.Logf("Failed to close isolated browser: %v", err)
			}
		})
		return session
	}

	sharedOnce.Do(func() {
		sharedSession, sharedErr = browser.Launch(cfg)
	})
	if sharedErr != nil {
		t.Skipf("browser engine unavailable: %v", sharedErr)
	}
	return sharedSession
}

// artifactsRun creates the artifact directory once per test binary
func artifactsRun(cfg *config.SuiteConfig) (*artifacts.Run, error) {
	runOnce.Do(func() {
		run, runErr = artifacts.NewRun(cfg.ArtifactsDir)
	})
	return run, runErr
}

func startTracing(t testing.TB, cfg *config.SuiteConfig, ctx playwright.BrowserContext) {
	t.Helper()

	err := ctx.Tracing().Start(playwright.TracingStartOptions{
		Screenshots: playwright.Bool(true),
		Snapshots:   playwright.Bool(true),
		Sources:     playwright.Bool(true),
	})
	if err != nil {
		t.Fatalf("Failed to start tracing: %v", err)
	}
	t.Cleanup(func() {
		r, err := artifactsRun(cfg)
		if err != nil {
			_ = ctx.Tracing().Stop()
			t.Logf("Trace discarded, no artifacts directory: %v", err)
			return
		}
		if err := ctx.Tracing().Stop(r.TracePath(t.Name())); err != nil {
			t.Logf("Failed to save trace: %v", err)
		}
	})
}

func captureScreenshotOnFailure(t testing.TB, cfg *config.SuiteConfig, page playwright.Page) {
	t.Helper()

	// Registered after the context close cleanup, so it runs before the
	// context goes away.
	t.Cleanup(func() {
		if !t.Failed() {
			return
		}
		r, err := artifactsRun(cfg)
		if err != nil {
			t.Logf("Screenshot discarded, no artifacts directory: %v", err)
			return
		}
		path := r.ScreenshotPath(t.Name())
		if _, err := page.Screenshot(playwright.PageScreenshotOptions{
			Path:     playwright.String(path),
			FullPage: playwright.Bool(true),
		}); err != nil {
			t.Logf("Failed to capture failure screenshot: %v", err)
			return
		}
		t.Logf("Failure screenshot: %s", path)
	})
}
