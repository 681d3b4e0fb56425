package domain

import (
	"sync"

	"github.com/shopspring/decimal"
)

// MaxQuantity is the per-item quantity limit.
const MaxQuantity = 8

// Cart holds the active session's requested quantities. It always carries an
// entry for every catalog product (default 0) and never holds a name the
// catalog does not know. Pure in-memory state, no I/O. The handlers share
// one cart across request goroutines, so access is mutex-guarded.
type Cart struct {
	catalog *Catalog

	mu         sync.Mutex
	quantities map[string]int
}

func NewCart(catalog *Catalog) *Cart {
	c := &Cart{
		catalog:    catalog,
		quantities: make(map[string]int, catalog.Len()),
	}
	for _, p := range catalog.Products() {
		c.quantities[p.Name] = 0
	}
	return c
}

// SetQuantity sets the requested quantity for a product. The cart is left
// unchanged on failure.
func (c *Cart) SetQuantity(productName string, qty int) error {
	if _, ok := c.catalog.Lookup(productName); !ok {
		return ErrInvalidProduct
	}
	if qty < 0 || qty > MaxQuantity {
		return ErrInvalidQuantity
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.quantities[productName] = qty
	return nil
}

// Quantity returns the current quantity for a product, 0 if unknown.
func (c *Cart) Quantity(productName string) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.quantities[productName]
}

// Lines returns the cart's non-empty lines in catalog order, priced from the
// catalog. The returned slice is a snapshot and never aliases cart state.
func (c *Cart) Lines() []OrderLine {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lines()
}

// Total is the sum of line totals; zero for an empty cart.
func (c *Cart) Total() decimal.Decimal {
	c.mu.Lock()
	defer c.mu.Unlock()

	total := decimal.Zero
	for _, line := range c.lines() {
		total = total.Add(line.LineTotal)
	}
	return total
}

// Clear resets every product's quantity to 0.
func (c *Cart) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	for name := range c.quantities {
		c.quantities[name] = 0
	}
}

// lines assumes c.mu is held.
func (c *Cart) lines() []OrderLine {
	var lines []OrderLine
	for _, p := range c.catalog.Products() {
		qty := c.quantities[p.Name]
		if qty == 0 {
			continue
		}
		lines = append(lines, OrderLine{
			Product:   p.Name,
			Quantity:  qty,
			UnitPrice: p.UnitPrice,
			LineTotal: p.UnitPrice.Mul(decimal.NewFromInt(int64(qty))),
		})
	}
	return lines
}
