package pages

import (
	"fmt"

	"github.com/playwright-community/playwright-go"
)

// ProductPage is the page object for a product detail screen
type ProductPage struct {
	page playwright.Page
}

// NewProductPage wraps an open page in the product screen's page object
func NewProductPage(page playwright.Page) *ProductPage {
	return &ProductPage{page: page}
}

// VisitProduct navigates directly to a product by a previously captured
// href and returns the destination page object. An empty href is a usage
// error: capture it from a listing first.
func VisitProduct(page playwright.Page, href string) (*ProductPage, error) {
	if href == "" {
		return nil, ErrMissingHref
	}
	if _, err := page.Goto(href); err != nil {
		return nil, fmt.Errorf("failed to open product %q: %w", href, err)
	}
	return NewProductPage(page), nil
}

// Heading locates the product title heading
func (p *ProductPage) Heading() playwright.Locator {
	return p.page.GetByRole(*playwright.AriaRoleHeading, playwright.PageGetByRoleOptions{
		Level: playwright.Int(1),
	})
}

// Gallery locates the product image region by its test id
func (p *ProductPage) Gallery() playwright.Locator {
	return p.page.GetByTestId(testIDProductGallery)
}

// Price locates the product price
func (p *ProductPage) Price() playwright.Locator {
	return p.page.Locator(selPrice)
}

// AddToCart locates the add-to-cart button
func (p *ProductPage) AddToCart() playwright.Locator {
	return p.page.GetByRole(*playwright.AriaRoleButton, playwright.PageGetByRoleOptions{
		Name: buttonAddToCart,
	})
}

// Quantity locates the quantity input through its label
func (p *ProductPage) Quantity() playwright.Locator {
	return p.page.GetByLabel(labelQuantity)
}

// Title reads the document title
func (p *ProductPage) Title() (string, error) {
	return p.page.Title()
}

// URL reads the current address
func (p *ProductPage) URL() string {
	return p.page.URL()
}

// Page exposes the underlying engine handle, for page-level assertions
func (p *ProductPage) Page() playwright.Page {
	return p.page
}
