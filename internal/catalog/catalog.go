package catalog

// Category is a product category.
type Category string

// Product categories. CategoryAll is the neutral filter value, not a
// category a product can belong to.
const (
	CategoryAll         Category = "All"
	CategoryElectronics Category = "Electronics"
	CategoryApparel     Category = "Apparel"
	CategoryBooks       Category = "Books"
	CategoryHome        Category = "Home"
)

// Categories returns the selectable categories, CategoryAll first.
func Categories() []Category {
	return []Category{CategoryAll, CategoryElectronics, CategoryApparel, CategoryBooks, CategoryHome}
}

// IsValidCategory checks whether the given category is selectable.
func IsValidCategory(c Category) bool {
	for _, v := range Categories() {
		if v == c {
			return true
		}
	}
	return false
}

// Product represents a purchasable product in the catalog.
type Product struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Description     string   `json:"description"`
	LongDescription string   `json:"long_description"`
	PriceCents      int64    `json:"price_cents"`
	Category        Category `json:"category"`
	ImageURLs       []string `json:"image_urls"`
	Stock           int      `json:"stock"`
}

// Catalog is a fixed, read-only, ordered sequence of products keyed by id.
type Catalog struct {
	products []Product
	byID     map[string]int
}

// New creates a catalog from the given products, preserving their order.
func New(products []Product) *Catalog {
	c := &Catalog{
		products: products,
		byID:     make(map[string]int, len(products)),
	}
	for i := range products {
		c.byID[products[i].ID] = i
	}
	return c
}

// Get returns the product with the given id.
func (c *Catalog) Get(id string) (Product, bool) {
	i, ok := c.byID[id]
	if !ok {
		return Product{}, false
	}
	return c.products[i], true
}

// List returns all products in catalog order.
func (c *Catalog) List() []Product {
	out := make([]Product, len(c.products))
	copy(out, c.products)
	return out
}

// Len returns the number of products in the catalog.
func (c *Catalog) Len() int {
	return len(c.products)
}
