// Package smoke drives a handful of read-only scenarios against a
// deployed storefront and reports per-scenario outcomes. It backs the
// e2ectl smoke command, giving operators a quick go/no-go signal
// without running the full suite.
package smoke

import (
	"context"
	"fmt"
	"time"

	"github.com/playwright-community/playwright-go"
	"github.com/sirupsen/logrus"
)

// Scenario is one read-only check against the storefront. Run receives
// a fresh page per attempt and must not assume any prior navigation.
type Scenario struct {
	Name string
	Run  func(page playwright.Page) error
}

// Result is the outcome of one scenario after all attempts
type Result struct {
	Name     string
	Passed   bool
	Attempts int
	Duration time.Duration
	Err      error
}

// Runner executes scenarios with a uniform retry policy. NewPage is
// called once per attempt so retries start from a clean page.
type Runner struct {
	Log     *logrus.Logger
	Retries int
	NewPage func() (playwright.Page, func(), error)
}

// Run executes every scenario in order and returns one result each
func (r *Runner) Run(ctx context.Context, scenarios []Scenario) []Result {
	results := make([]Result, 0, len(scenarios))
	for _, scenario := range scenarios {
		results = append(results, r.runOne(ctx, scenario))
	}
	return results
}

func (r *Runner) runOne(ctx context.Context, scenario Scenario) Result {
	log := r.Log.WithField("scenario", scenario.Name)
	start := time.Now()
	result := Result{Name: scenario.Name}

	// At least one attempt regardless of the retry budget.
	maxAttempts := r.Retries + 1
	if maxAttempts < 1 {
		maxAttempts = 1
	}
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			result.Err = err
			break
		}
		result.Attempts = attempt

		err := r.attempt(scenario)
		if err == nil {
			result.Passed = true
			result.Err = nil
			break
		}
		result.Err = err
		if attempt < maxAttempts {
			log.WithError(err).Warnf("attempt %d of %d failed, retrying", attempt, maxAttempts)
		}
	}

	result.Duration = time.Since(start)
	if result.Passed {
		log.WithField("attempts", result.Attempts).Info("scenario passed")
	} else {
		log.WithError(result.Err).WithField("attempts", result.Attempts).Error("scenario failed")
	}
	return result
}

func (r *Runner) attempt(scenario Scenario) error {
	page, closePage, err := r.NewPage()
	if err != nil {
		return fmt.Errorf("failed to open page: %w", err)
	}
	defer closePage()
	return scenario.Run(page)
}

// Summary counts passed and failed results
func Summary(results []Result) (passed, failed int) {
	for _, result := range results {
		if result.Passed {
			passed++
		} else {
			failed++
		}
	}
	return passed, failed
}

// AllPassed reports whether every scenario passed
func AllPassed(results []Result) bool {
	_, failed := Summary(results)
	return failed == 0
}
