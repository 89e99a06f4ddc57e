package smoke

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/playwright-community/playwright-go"
	"github.com/sirupsen/logrus"

	"github.com/R4tZz/vibe-code/internal/browser"
	"github.com/R4tZz/vibe-code/internal/config"
	"github.com/R4tZz/vibe-code/internal/pages"
)

// Scenarios returns the storefront checks in execution order. All of
// them are read-only: nothing is added to a cart, no form is submitted.
func Scenarios(expectTimeoutMs float64) []Scenario {
	expect := playwright.NewPlaywrightAssertions(expectTimeoutMs)

	return []Scenario{
		{
			Name: "hot sellers region is visible",
			Run: func(page playwright.Page) error {
				home := pages.NewHomePage(page)
				if err := home.Navigate(); err != nil {
					return err
				}
				hot := home.HotSellers()
				if err := expect.Locator(hot.Root()).ToBeVisible(); err != nil {
					return fmt.Errorf("hot sellers region: %w", err)
				}
				if err := expect.Locator(hot.Heading()).ToBeVisible(); err != nil {
					return fmt.Errorf("hot sellers heading: %w", err)
				}
				return nil
			},
		},
		{
			Name: "first card is complete",
			Run: func(page playwright.Page) error {
				home := pages.NewHomePage(page)
				if err := home.Navigate(); err != nil {
					return err
				}
				hot := home.HotSellers()

				count, err := hot.Count()
				if err != nil {
					return err
				}
				if count == 0 {
					return errors.New("hot sellers region carries no cards")
				}

				name, err := hot.ProductName(0)
				if err != nil {
					return err
				}
				if name == "" {
					return errors.New("first card has an empty product name")
				}
				if err := expect.Locator(hot.Image(0)).ToBeVisible(); err != nil {
					return fmt.Errorf("first card image: %w", err)
				}
				if err := expect.Locator(hot.AddToCart(0)).ToBeVisible(); err != nil {
					return fmt.Errorf("first card add to cart: %w", err)
				}
				if err := expect.Locator(hot.AddToCart(0)).ToBeEnabled(); err != nil {
					return fmt.Errorf("first card add to cart: %w", err)
				}

				// The price is optional, but when the card carries one
				// it must be visible and non-blank.
				price, ok, err := hot.Price(0)
				if err != nil {
					return err
				}
				if ok {
					if err := expect.Locator(hot.PriceTag(0)).ToBeVisible(); err != nil {
						return fmt.Errorf("first card price: %w", err)
					}
					if strings.TrimSpace(price) == "" {
						return errors.New("first card has a blank price")
					}
				}
				return nil
			},
		},
		{
			Name: "first card opens its product page",
			Run: func(page playwright.Page) error {
				home := pages.NewHomePage(page)
				if err := home.Navigate(); err != nil {
					return err
				}
				hot := home.HotSellers()

				card, err := hot.Snapshot(0)
				if err != nil {
					return err
				}
				product, err := hot.OpenCard(0)
				if err != nil {
					return err
				}
				title, err := product.Title()
				if err != nil {
					return err
				}
				if !strings.Contains(title, card.Name) {
					return fmt.Errorf("product page title %q does not mention %q", title, card.Name)
				}
				return nil
			},
		},
	}
}

// Execute launches a browser, runs every scenario against the
// configured storefront and returns the results. The returned error
// covers infrastructure failures only; scenario failures are reported
// through the results.
func Execute(ctx context.Context, cfg *config.SuiteConfig, log *logrus.Logger) ([]Result, error) {
	session, err := browser.Launch(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to launch browser: %w", err)
	}
	defer session.Close()

	runner := &Runner{
		Log:     log,
		Retries: cfg.Retries,
		NewPage: func() (playwright.Page, func(), error) {
			browserCtx, err := session.NewContext(cfg, "")
			if err != nil {
				return nil, nil, fmt.Errorf("failed to create browser context: %w", err)
			}
			page, err := browserCtx.NewPage()
			if err != nil {
				_ = browserCtx.Close()
				return nil, nil, fmt.Errorf("failed to open page: %w", err)
			}
			return page, func() { _ = browserCtx.Close() }, nil
		},
	}

	return runner.Run(ctx, Scenarios(cfg.ExpectTimeoutMs())), nil
}
