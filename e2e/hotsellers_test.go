package e2e

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/R4tZz/vibe-code/internal/browsertest"
)

// TestHotSellersShelf tests the hot sellers discovery feature
// Feature: Hot sellers discovery
//
//	As a shopper
//	I want popular products on the landing page
//	So that I can jump straight to them
func TestHotSellersShelf(t *testing.T) {
	// Scenario: The shelf greets me on arrival
	//   Given I am on the storefront landing page
	//   Then I should see the "Hot Sellers" shelf and its heading
	//   And the storefront header controls

	t.Parallel()
	fx := browsertest.New(t)
	hot := fx.Home.HotSellers()

	// Then I should see the "Hot Sellers" shelf and its heading
	require.NoError(t, fx.Expect.Locator(hot.Root()).ToBeVisible())
	require.NoError(t, fx.Expect.Locator(hot.Heading()).ToBeVisible())

	// And the storefront header controls
	require.NoError(t, fx.Expect.Locator(fx.Home.SearchBox()).ToBeVisible())
	require.NoError(t, fx.Expect.Locator(fx.Home.CartLink()).ToBeVisible())
}

func TestHotSellerCardsAreComplete(t *testing.T) {
	// Scenario: Every card is fully dressed
	//   Given the shelf carries at least one card
	//   Then every card shows its image and name
	//   And its price when the card carries one

	t.Parallel()
	fx := browsertest.New(t)
	hot := fx.Home.HotSellers()

	// Given the shelf carries at least one card
	count, err := hot.Count()
	require.NoError(t, err)
	require.Greater(t, count, 0, "the hot sellers shelf must not be empty")

	// Then every card shows its image and name
	for i := 0; i < count; i++ {
		require.NoError(t, fx.Expect.Locator(hot.Image(i)).ToBeVisible(), "card %d image", i)
		require.NoError(t, fx.Expect.Locator(hot.NameLink(i)).ToBeVisible(), "card %d name link", i)

		name, err := hot.ProductName(i)
		require.NoError(t, err)
		assert.NotEmpty(t, name, "card %d name", i)

		// And its price when the card carries one
		price, ok, err := hot.Price(i)
		require.NoError(t, err)
		if ok {
			require.NoError(t, fx.Expect.Locator(hot.PriceTag(i)).ToBeVisible(), "card %d price", i)
			assert.NotEmpty(t, price, "card %d price text", i)
		}
		browsertest.Step(t, "card %d (%q) is complete", i, name)
	}
}

func TestAddToCartButtonsAreReady(t *testing.T) {
	// Scenario: Add to cart is one click away
	//   Given the shelf carries at least one card
	//   Then every add to cart button is visible and enabled
	//
	// TODO: follow the click with a cart badge assertion once the
	// header badge markup is final.

	t.Parallel()
	fx := browsertest.New(t)
	hot := fx.Home.HotSellers()

	count, err := hot.Count()
	require.NoError(t, err)
	require.Greater(t, count, 0, "the hot sellers shelf must not be empty")

	for i := 0; i < count; i++ {
		require.NoError(t, fx.Expect.Locator(hot.AddToCart(i)).ToBeVisible(), "card %d add to cart", i)
		require.NoError(t, fx.Expect.Locator(hot.AddToCart(i)).ToBeEnabled(), "card %d add to cart", i)
	}
}

func TestCardReadsAreStable(t *testing.T) {
	// Scenario: Reading a card twice tells the same story
	//   Given the shelf carries at least one card
	//   When I read the first card's name and link twice
	//   Then both reads agree

	t.Parallel()
	fx := browsertest.New(t)
	hot := fx.Home.HotSellers()

	count, err := hot.Count()
	require.NoError(t, err)
	require.Greater(t, count, 0, "the hot sellers shelf must not be empty")

	first, err := hot.Snapshot(0)
	require.NoError(t, err)
	second, err := hot.Snapshot(0)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}
