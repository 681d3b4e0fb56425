package domain

import "github.com/shopspring/decimal"

// Product is a single drink on the menu.
type Product struct {
	Name      string
	Glyph     string
	UnitPrice decimal.Decimal
}

// Catalog is the fixed product menu. It is built once at process start and
// never mutated afterwards; iteration order is menu order.
type Catalog struct {
	products []Product
	index    map[string]int
}

func NewCatalog(products []Product) *Catalog {
	c := &Catalog{
		products: make([]Product, len(products)),
		index:    make(map[string]int, len(products)),
	}
	copy(c.products, products)
	for i, p := range c.products {
		c.index[p.Name] = i
	}
	return c
}

// DefaultCatalog returns the Sipzooppp drink menu.
func DefaultCatalog() *Catalog {
	return NewCatalog([]Product{
		{Name: "Classic Lemonade", Glyph: "🍋", UnitPrice: decimal.RequireFromString("4.00")},
		{Name: "Strawberry Mint", Glyph: "🍓🌿", UnitPrice: decimal.RequireFromString("5.50")},
		{Name: "Iced Tea Fusion", Glyph: "🧊☕", UnitPrice: decimal.RequireFromString("4.50")},
		{Name: "Blue Raspberry Zest", Glyph: "🫐", UnitPrice: decimal.RequireFromString("5.25")},
		{Name: "Sparkling Limeade", Glyph: "✨", UnitPrice: decimal.RequireFromString("5.00")},
		{Name: "Ginger Honey Detox", Glyph: "🍯", UnitPrice: decimal.RequireFromString("5.75")},
		{Name: "Watermelon Basil Cooler", Glyph: "🍉🌱", UnitPrice: decimal.RequireFromString("6.00")},
		{Name: "Tropical Mango Blend", Glyph: "🥭🍍", UnitPrice: decimal.RequireFromString("6.25")},
	})
}

// Lookup returns the product with the given name, if it is on the menu.
func (c *Catalog) Lookup(name string) (Product, bool) {
	i, ok := c.index[name]
	if !ok {
		return Product{}, false
	}
	return c.products[i], true
}

// Products returns the menu in iteration order.
func (c *Catalog) Products() []Product {
	out := make([]Product, len(c.products))
	copy(out, c.products)
	return out
}

func (c *Catalog) Len() int {
	return len(c.products)
}
