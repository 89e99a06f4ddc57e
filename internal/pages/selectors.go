package pages

// Selector atoms of the storefront markup contract. They live in one place
// so the whole query surface can be reviewed without a live session.
const (
	// Home screen landmarks.
	testIDHotSellers  = "hot-sellers"
	testIDProductCard = "product-card"
	headingHotSellers = "Hot Sellers"
	placeholderSearch = "Search products"
	titleCart         = "Cart"

	// Product card internals. CSS is the fallback for parts without an
	// accessible handle.
	selProductLink  = "a.product-link"
	selPrice        = ".price"
	buttonAddToCart = "Add to Cart"

	// Product detail screen.
	testIDProductGallery = "product-gallery"
	labelQuantity        = "Quantity"

	// Navigation targets.
	pathHome        = "/"
	productPathGlob = "**/products/**"
)
