// Package pages holds the page objects for the Vibe Store storefront. One
// page object wraps one logical screen; locator providers expose the named
// element queries of a region. Locators are deferred queries: each accessor
// builds its locator anew on every call, so interactions and assertions
// always observe current DOM state. Nothing here caches element handles.
package pages

import (
	"errors"
	"fmt"
	"strings"

	"github.com/playwright-community/playwright-go"
)

// ErrMissingHref is returned when a product link unexpectedly carries no
// href attribute. Navigation by captured href cannot proceed without one.
var ErrMissingHref = errors.New("product link has no href")

// ProductCard is a point-in-time record of one listing entry, read from the
// live DOM at capture time. It is never persisted.
type ProductCard struct {
	Name string
	Href string
}

// HomePage is the page object for the storefront home screen
type HomePage struct {
	page playwright.Page
}

// NewHomePage wraps an open page in the home screen's page object
func NewHomePage(page playwright.Page) *HomePage {
	return &HomePage{page: page}
}

// Navigate opens the home screen, relative to the context base URL. It
// fails when the navigation does not complete within the configured
// navigation timeout.
func (h *HomePage) Navigate() error {
	if _, err := h.page.Goto(pathHome); err != nil {
		return fmt.Errorf("failed to open home page: %w", err)
	}
	return nil
}

// Title reads the document title
func (h *HomePage) Title() (string, error) {
	return h.page.Title()
}

// SearchBox locates the header search input by its placeholder text
func (h *HomePage) SearchBox() playwright.Locator {
	return h.page.GetByPlaceholder(placeholderSearch)
}

// CartLink locates the header cart link by its title attribute
func (h *HomePage) CartLink() playwright.Locator {
	return h.page.GetByTitle(titleCart)
}

// HotSellers returns the locator provider for the Hot Sellers region
func (h *HomePage) HotSellers() *HotSellersSection {
	return &HotSellersSection{page: h.page}
}

// Page exposes the underlying engine handle, for page-level assertions
func (h *HomePage) Page() playwright.Page {
	return h.page
}

// HotSellersSection exposes the named element queries of the Hot Sellers
// listing region. Indexes are zero-based positions into a dynamically sized
// collection; an index at or beyond the current count resolves to nothing
// and surfaces the engine's not-found behavior on first interaction.
type HotSellersSection struct {
	page playwright.Page
}

// Root locates the section landmark by its test id
func (s *HotSellersSection) Root() playwright.Locator {
	return s.page.GetByTestId(testIDHotSellers)
}

// Heading locates the section heading by role and accessible name
func (s *HotSellersSection) Heading() playwright.Locator {
	return s.Root().GetByRole(*playwright.AriaRoleHeading, playwright.LocatorGetByRoleOptions{
		Name: headingHotSellers,
	})
}

// Cards locates the product card collection
func (s *HotSellersSection) Cards() playwright.Locator {
	return s.Root().GetByTestId(testIDProductCard)
}

// Count reports how many product cards the region currently renders
func (s *HotSellersSection) Count() (int, error) {
	count, err := s.Cards().Count()
	if err != nil {
		return 0, fmt.Errorf("failed to count hot seller cards: %w", err)
	}
	return count, nil
}

// Card locates the product card at index i
func (s *HotSellersSection) Card(i int) playwright.Locator {
	return s.Cards().Nth(i)
}

// NameLink locates the product link of the card at index i
func (s *HotSellersSection) NameLink(i int) playwright.Locator {
	return s.Card(i).Locator(selProductLink)
}

// Image locates the product photo of the card at index i
func (s *HotSellersSection) Image(i int) playwright.Locator {
	return s.Card(i).GetByRole(*playwright.AriaRoleImg)
}

// PriceTag locates the price of the card at index i. Some cards
// legitimately render without one.
func (s *HotSellersSection) PriceTag(i int) playwright.Locator {
	return s.Card(i).Locator(selPrice)
}

// AddToCart locates the add-to-cart button of the card at index i
func (s *HotSellersSection) AddToCart(i int) playwright.Locator {
	return s.Card(i).GetByRole(*playwright.AriaRoleButton, playwright.LocatorGetByRoleOptions{
		Name: buttonAddToCart,
	})
}

// CardNamed narrows the card collection to entries containing the given text
func (s *HotSellersSection) CardNamed(name string) playwright.Locator {
	return s.Cards().Filter(playwright.LocatorFilterOptions{HasText: name})
}

// ImageFor locates a product photo in the region by its alt text
func (s *HotSellersSection) ImageFor(name string) playwright.Locator {
	return s.Root().GetByAltText(name)
}

// ProductName reads the product name of the card at index i
func (s *HotSellersSection) ProductName(i int) (string, error) {
	name, err := s.NameLink(i).TextContent()
	if err != nil {
		return "", fmt.Errorf("failed to read product name at index %d: %w", i, err)
	}
	return strings.TrimSpace(name), nil
}

// Price reads the price text of the card at index i. The boolean is false
// when the card has no price; absence is not an error.
func (s *HotSellersSection) Price(i int) (string, bool, error) {
	tag := s.PriceTag(i)
	count, err := tag.Count()
	if err != nil {
		return "", false, fmt.Errorf("failed to probe price at index %d: %w", i, err)
	}
	if count == 0 {
		return "", false, nil
	}
	price, err := tag.TextContent()
	if err != nil {
		return "", false, fmt.Errorf("failed to read price at index %d: %w", i, err)
	}
	return strings.TrimSpace(price), true, nil
}

// Snapshot captures the name and link target of the card at index i. A
// card whose link carries no href is a usage error: the storefront always
// publishes one, and navigation by href depends on it.
func (s *HotSellersSection) Snapshot(i int) (ProductCard, error) {
	name, err := s.ProductName(i)
	if err != nil {
		return ProductCard{}, err
	}
	href, err := s.NameLink(i).GetAttribute("href")
	if err != nil {
		return ProductCard{}, fmt.Errorf("failed to read product link at index %d: %w", i, err)
	}
	if href == "" {
		return ProductCard{}, fmt.Errorf("%w: card %d (%s)", ErrMissingHref, i, name)
	}
	return ProductCard{Name: name, Href: href}, nil
}

// OpenCard clicks the product link of the card at index i and hands
// ownership of the destination screen to a fresh ProductPage. The home
// page's locators must not be reused after this returns.
func (s *HotSellersSection) OpenCard(i int) (*ProductPage, error) {
	if err := s.NameLink(i).Click(); err != nil {
		return nil, fmt.Errorf("failed to open product at index %d: %w", i, err)
	}
	if err := s.page.WaitForURL(productPathGlob); err != nil {
		return nil, fmt.Errorf("did not land on a product page after clicking card %d: %w", i, err)
	}
	return NewProductPage(s.page), nil
}
