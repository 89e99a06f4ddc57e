// Package testutil serves a canned copy of the storefront over HTTP so
// page objects and suite plumbing can be exercised without a deployed
// environment. The markup mirrors the production storefront's structure.
package testutil

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
)

// HomeHTML is the storefront landing page with three hot sellers. The
// second card carries no price tag, matching promotional items whose
// price is revealed on the product page only.
const HomeHTML = `<!DOCTYPE html>
<html lang="en">
<head><title>Vibe Store</title></head>
<body>
<header>
  <a class="logo" href="/">Vibe Store</a>
  <input type="search" placeholder="Search products">
  <a href="/cart" title="Cart">Cart (0)</a>
</header>
<main>
  <section data-testid="hot-sellers">
    <h2>Hot Sellers</h2>
    <ol class="product-grid">
      <li data-testid="product-card">
        <img src="/img/aurora-lamp.jpg" alt="Aurora Lamp">
        <a class="product-link" href="/products/aurora-lamp">Aurora Lamp</a>
        <span class="price">$49.00</span>
        <button>Add to Cart</button>
      </li>
      <li data-testid="product-card">
        <img src="/img/nebula-hoodie.jpg" alt="Nebula Hoodie">
        <a class="product-link" href="/products/nebula-hoodie">Nebula Hoodie</a>
        <button>Add to Cart</button>
      </li>
      <li data-testid="product-card">
        <img src="/img/quantum-mug.jpg" alt="Quantum Mug">
        <a class="product-link" href="/products/quantum-mug">Quantum Mug</a>
        <span class="price">$19.50</span>
        <button>Add to Cart</button>
      </li>
    </ol>
  </section>
</main>
</body></html>`

// EmptyHomeHTML is the landing page after the catalog has been cleared:
// the hot sellers region is present but holds no cards.
const EmptyHomeHTML = `<!DOCTYPE html>
<html lang="en">
<head><title>Vibe Store</title></head>
<body>
<header>
  <a class="logo" href="/">Vibe Store</a>
  <input type="search" placeholder="Search products">
  <a href="/cart" title="Cart">Cart (0)</a>
</header>
<main>
  <section data-testid="hot-sellers">
    <h2>Hot Sellers</h2>
    <ol class="product-grid"></ol>
  </section>
</main>
</body></html>`

// BrokenLinkHomeHTML carries a single card whose product link lost its
// href attribute, the way a bad CMS publish renders it.
const BrokenLinkHomeHTML = `<!DOCTYPE html>
<html lang="en">
<head><title>Vibe Store</title></head>
<body>
<header>
  <a class="logo" href="/">Vibe Store</a>
  <input type="search" placeholder="Search products">
  <a href="/cart" title="Cart">Cart (0)</a>
</header>
<main>
  <section data-testid="hot-sellers">
    <h2>Hot Sellers</h2>
    <ol class="product-grid">
      <li data-testid="product-card">
        <img src="/img/phantom-lamp.jpg" alt="Phantom Lamp">
        <a class="product-link">Phantom Lamp</a>
        <span class="price">$0.99</span>
        <button>Add to Cart</button>
      </li>
    </ol>
  </section>
</main>
</body></html>`

func productPageHTML(name, price string) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html lang="en">
<head><title>%[1]s | Vibe Store</title></head>
<body>
<header>
  <a class="logo" href="/">Vibe Store</a>
  <input type="search" placeholder="Search products">
  <a href="/cart" title="Cart">Cart (0)</a>
</header>
<main>
  <h1>%[1]s</h1>
  <div data-testid="product-gallery">
    <img src="/img/%[1]s.jpg" alt="%[1]s">
  </div>
  <span class="price">%[2]s</span>
  <form action="/cart" method="post">
    <label for="quantity">Quantity</label>
    <input id="quantity" type="number" name="quantity" value="1" min="1">
    <button type="submit">Add to Cart</button>
  </form>
</main>
</body></html>`, name, price)
}

// StorefrontHandler serves the full canned storefront: the landing page
// plus a product page per hot seller.
func StorefrontHandler() http.Handler {
	products := map[string]string{
		"/products/aurora-lamp":   productPageHTML("Aurora Lamp", "$49.00"),
		"/products/nebula-hoodie": productPageHTML("Nebula Hoodie", "$89.00"),
		"/products/quantum-mug":   productPageHTML("Quantum Mug", "$19.50"),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "text/html")
		_, _ = fmt.Fprint(w, HomeHTML)
	})
	for path, page := range products {
		page := page
		mux.HandleFunc(path, func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "text/html")
			_, _ = fmt.Fprint(w, page)
		})
	}
	return mux
}

// NewStorefrontServer starts an HTTP server carrying the full canned
// storefront. The server is closed when the test finishes.
func NewStorefrontServer(t testing.TB) *httptest.Server {
	t.Helper()

	server := httptest.NewServer(StorefrontHandler())
	t.Cleanup(server.Close)
	return server
}

// NewPageServer starts an HTTP server answering every path with the
// given markup. Useful for landing page variants such as an empty grid.
func NewPageServer(t testing.TB, html string) *httptest.Server {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = fmt.Fprint(w, html)
	}))
	t.Cleanup(server.Close)
	return server
}
