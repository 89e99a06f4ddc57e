package config

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// Browser engines the suite can drive.
const (
	BrowserChromium = "chromium"
	BrowserFirefox  = "firefox"
	BrowserWebKit   = "webkit"
)

// SuiteConfig holds configuration for the end-to-end browser suite
type SuiteConfig struct {
	// BaseURL is the root of the storefront under test. Page objects
	// navigate with paths relative to it.
	BaseURL string
	// Browser selects the engine: chromium, firefox or webkit.
	Browser string
	// Headless controls whether the browser renders a window.
	Headless bool
	// SlowMo delays every engine operation, for watching runs locally.
	SlowMo time.Duration
	// ActionTimeout bounds individual locator actions (click, read).
	ActionTimeout time.Duration
	// NavigationTimeout bounds page navigations.
	NavigationTimeout time.Duration
	// ExpectTimeout bounds web-first assertions.
	ExpectTimeout time.Duration
	// ArtifactsDir is where failure screenshots, traces and videos land.
	ArtifactsDir string
	// Screenshots captures a full-page screenshot when a test fails.
	Screenshots bool
	// Trace records an engine trace per test.
	Trace bool
	// Video records the browser context per test.
	Video bool
	// Retries is the uniform retry budget of the smoke runner. It never
	// applies to individual assertions.
	Retries int
}

// LoadSuiteConfig loads suite configuration from environment variables
func LoadSuiteConfig(getenv func(string) string) (*SuiteConfig, error) {
	cfg := &SuiteConfig{
		BaseURL:           "http://localhost:8080",
		Browser:           BrowserChromium,
		Headless:          true,
		ActionTimeout:     10 * time.Second,
		NavigationTimeout: 15 * time.Second,
		ExpectTimeout:     5 * time.Second,
		ArtifactsDir:      "test-results",
		Screenshots:       true,
	}

	if v := getenv("E2E_BASE_URL"); v != "" {
		cfg.BaseURL = v
	}
	if v := getenv("E2E_BROWSER"); v != "" {
		cfg.Browser = strings.ToLower(v)
	}
	if v := getenv("E2E_ARTIFACTS_DIR"); v != "" {
		cfg.ArtifactsDir = v
	}

	var err error
	if cfg.Headless, err = envBool(getenv, "E2E_HEADLESS", cfg.Headless); err != nil {
		return nil, err
	}
	if cfg.Screenshots, err = envBool(getenv, "E2E_SCREENSHOTS", cfg.Screenshots); err != nil {
		return nil, err
	}
	if cfg.Trace, err = envBool(getenv, "E2E_TRACE", cfg.Trace); err != nil {
		return nil, err
	}
	if cfg.Video, err = envBool(getenv, "E2E_VIDEO", cfg.Video); err != nil {
		return nil, err
	}
	if cfg.SlowMo, err = envDuration(getenv, "E2E_SLOW_MO", cfg.SlowMo); err != nil {
		return nil, err
	}
	if cfg.ActionTimeout, err = envDuration(getenv, "E2E_ACTION_TIMEOUT", cfg.ActionTimeout); err != nil {
		return nil, err
	}
	if cfg.NavigationTimeout, err = envDuration(getenv, "E2E_NAVIGATION_TIMEOUT", cfg.NavigationTimeout); err != nil {
		return nil, err
	}
	if cfg.ExpectTimeout, err = envDuration(getenv, "E2E_EXPECT_TIMEOUT", cfg.ExpectTimeout); err != nil {
		return nil, err
	}
	if cfg.Retries, err = envInt(getenv, "E2E_RETRIES", cfg.Retries); err != nil {
		return nil, err
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// validate checks the loaded values before any browser is launched
func (c *SuiteConfig) validate() error {
	u, err := url.Parse(c.BaseURL)
	if err != nil {
		return fmt.Errorf("E2E_BASE_URL is not a valid URL: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("E2E_BASE_URL must use http or https, got %q", c.BaseURL)
	}
	if u.Host == "" {
		return fmt.Errorf("E2E_BASE_URL must include a host, got %q", c.BaseURL)
	}
	switch c.Browser {
	case BrowserChromium, BrowserFirefox, BrowserWebKit:
	default:
		return fmt.Errorf("E2E_BROWSER must be one of chromium, firefox, webkit, got %q", c.Browser)
	}
	if c.Retries < 0 {
		return fmt.Errorf("E2E_RETRIES must not be negative, got %d", c.Retries)
	}
	for _, d := range []struct {
		name  string
		value time.Duration
	}{
		{"E2E_SLOW_MO", c.SlowMo},
		{"E2E_ACTION_TIMEOUT", c.ActionTimeout},
		{"E2E_NAVIGATION_TIMEOUT", c.NavigationTimeout},
		{"E2E_EXPECT_TIMEOUT", c.ExpectTimeout},
	} {
		if d.value < 0 {
			return fmt.Errorf("%s must not be negative, got %s", d.name, d.value)
		}
	}
	return nil
}

// ActionTimeoutMs returns the action timeout in engine units (milliseconds)
func (c *SuiteConfig) ActionTimeoutMs() float64 {
	return float64(c.ActionTimeout.Milliseconds())
}

// NavigationTimeoutMs returns the navigation timeout in engine units
func (c *SuiteConfig) NavigationTimeoutMs() float64 {
	return float64(c.NavigationTimeout.Milliseconds())
}

// ExpectTimeoutMs returns the assertion timeout in engine units
func (c *SuiteConfig) ExpectTimeoutMs() float64 {
	return float64(c.ExpectTimeout.Milliseconds())
}

// SlowMoMs returns the simulated interaction delay in engine units
func (c *SuiteConfig) SlowMoMs() float64 {
	return float64(c.SlowMo.Milliseconds())
}

func envBool(getenv func(string) string, key string, fallback bool) (bool, error) {
	v := getenv(key)
	if v == "" {
		return fallback, nil
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("%s must be a boolean, got %q", key, v)
	}
	return parsed, nil
}

func envDuration(getenv func(string) string, key string, fallback time.Duration) (time.Duration, error) {
	v := getenv(key)
	if v == "" {
		return fallback, nil
	}
	parsed, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("%s must be a duration such as 500ms or 10s, got %q", key, v)
	}
	return parsed, nil
}

func envInt(getenv func(string) string, key string, fallback int) (int, error) {
	v := getenv(key)
	if v == "" {
		return fallback, nil
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer, got %q", key, v)
	}
	return parsed, nil
}
