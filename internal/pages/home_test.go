package pages

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/R4tZz/vibe-code/internal/testutil"
)

func openHome(t *testing.T, baseURL string) *HomePage {
	t.Helper()

	home := NewHomePage(newStorefrontPage(t, baseURL))
	if err := home.Navigate(); err != nil {
		t.Fatalf("Failed to open the landing page: %v", err)
	}
	return home
}

func TestLandingPageRegions(t *testing.T) {
	// Given the storefront landing page
	server := testutil.NewStorefrontServer(t)
	home := openHome(t, server.URL)

	// Then the page identifies itself
	title, err := home.Title()
	require.NoError(t, err)
	assert.Equal(t, "Vibe Store", title)

	// And the hot sellers region is visible with its heading
	hot := home.HotSellers()
	require.NoError(t, expect.Locator(hot.Root()).ToBeVisible())
	require.NoError(t, expect.Locator(hot.Heading()).ToBeVisible())
	require.NoError(t, expect.Locator(hot.Heading()).ToContainText("Hot Sellers"))

	// And the header controls are visible
	require.NoError(t, expect.Locator(home.SearchBox()).ToBeVisible())
	require.NoError(t, expect.Locator(home.CartLink()).ToBeVisible())
}

func TestEveryCardAccessorResolves(t *testing.T) {
	// Given the landing page with three hot sellers
	server := testutil.NewStorefrontServer(t)
	hot := openHome(t, server.URL).HotSellers()

	count, err := hot.Count()
	require.NoError(t, err)
	require.Equal(t, 3, count)
	require.NoError(t, expect.Locator(hot.Cards()).ToHaveCount(3))

	// Then every card exposes its image, name link and add to cart button
	for i := 0; i < count; i++ {
		require.NoError(t, expect.Locator(hot.Image(i)).ToBeVisible(), "card %d image", i)
		require.NoError(t, expect.Locator(hot.NameLink(i)).ToBeVisible(), "card %d name link", i)
		require.NoError(t, expect.Locator(hot.AddToCart(i)).ToBeVisible(), "card %d add to cart", i)
		require.NoError(t, expect.Locator(hot.AddToCart(i)).ToBeEnabled(), "card %d add to cart", i)

		name, err := hot.ProductName(i)
		require.NoError(t, err)
		assert.NotEmpty(t, name, "card %d name", i)

		// And its price tag, when the card carries one
		price, ok, err := hot.Price(i)
		require.NoError(t, err)
		if ok {
			require.NoError(t, expect.Locator(hot.PriceTag(i)).ToBeVisible(), "card %d price", i)
			assert.NotEmpty(t, price, "card %d price text", i)
		}
	}
}

func TestPriceIsOptionalPerCard(t *testing.T) {
	// Given the landing page where the second card has no price tag
	server := testutil.NewStorefrontServer(t)
	hot := openHome(t, server.URL).HotSellers()

	price, ok, err := hot.Price(0)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "$49.00", price)

	price, ok, err = hot.Price(1)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, price)
}

func TestCardReadsAreIdempotent(t *testing.T) {
	// Given the landing page
	server := testutil.NewStorefrontServer(t)
	hot := openHome(t, server.URL).HotSellers()

	// When the same card is read twice without navigating
	first, err := hot.Snapshot(0)
	require.NoError(t, err)
	second, err := hot.Snapshot(0)
	require.NoError(t, err)

	// Then both reads observe the same name and link
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("Card reads disagree (-first +second):\n%s", diff)
	}
	assert.Equal(t, "Aurora Lamp", first.Name)
	assert.Equal(t, "/products/aurora-lamp", first.Href)
}

func TestCardLookupByName(t *testing.T) {
	// Given the landing page
	server := testutil.NewStorefrontServer(t)
	hot := openHome(t, server.URL).HotSellers()

	require.NoError(t, expect.Locator(hot.CardNamed("Quantum Mug")).ToBeVisible())
	require.NoError(t, expect.Locator(hot.ImageFor("Quantum Mug")).ToBeVisible())

	name, err := hot.ProductName(2)
	require.NoError(t, err)
	assert.Equal(t, "Quantum Mug", name)
}

func TestEmptyCatalog(t *testing.T) {
	// Given a landing page whose catalog has been cleared
	server := testutil.NewPageServer(t, testutil.EmptyHomeHTML)
	hot := openHome(t, server.URL).HotSellers()

	// Then the region and heading are still visible
	require.NoError(t, expect.Locator(hot.Root()).ToBeVisible())
	require.NoError(t, expect.Locator(hot.Heading()).ToBeVisible())

	// And the card collection is empty rather than erroring
	count, err := hot.Count()
	require.NoError(t, err)
	assert.Equal(t, 0, count)
	require.NoError(t, expect.Locator(hot.Cards()).ToHaveCount(0))

	for i := 0; i < count; i++ {
		t.Fatalf("no card should be visited, got index %d", i)
	}
}

func TestSnapshotRejectsMissingHref(t *testing.T) {
	// Given a landing page whose card link lost its href
	server := testutil.NewPageServer(t, testutil.BrokenLinkHomeHTML)
	hot := openHome(t, server.URL).HotSellers()

	_, err := hot.Snapshot(0)

	require.ErrorIs(t, err, ErrMissingHref)
}
