package domain

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCartSetQuantityAcceptsFullRange(t *testing.T) {
	catalog := DefaultCatalog()

	for _, p := range catalog.Products() {
		for qty := 0; qty <= MaxQuantity; qty++ {
			cart := NewCart(catalog)
			require.NoError(t, cart.SetQuantity(p.Name, qty))

			found := false
			for _, line := range cart.Lines() {
				if line.Product == p.Name {
					found = true
					assert.Equal(t, qty, line.Quantity)
				}
			}

			if qty == 0 {
				assert.False(t, found, "zero-quantity product must be omitted from lines")
			} else {
				assert.True(t, found)
			}
		}
	}
}

func TestCartSetQuantityRejectsOutOfRange(t *testing.T) {
	cart := NewCart(DefaultCatalog())
	require.NoError(t, cart.SetQuantity("Classic Lemonade", 3))

	err := cart.SetQuantity("Classic Lemonade", MaxQuantity+1)
	assert.ErrorIs(t, err, ErrInvalidQuantity)

	err = cart.SetQuantity("Classic Lemonade", -1)
	assert.ErrorIs(t, err, ErrInvalidQuantity)

	// Failed updates must leave the cart unchanged.
	assert.Equal(t, 3, cart.Quantity("Classic Lemonade"))
}

func TestCartSetQuantityRejectsUnknownProduct(t *testing.T) {
	cart := NewCart(DefaultCatalog())

	err := cart.SetQuantity("Motor Oil", 1)
	assert.ErrorIs(t, err, ErrInvalidProduct)
	assert.Equal(t, "0.00", cart.Total().StringFixed(2))
}

func TestCartLinesFollowCatalogOrder(t *testing.T) {
	cart := NewCart(DefaultCatalog())
	require.NoError(t, cart.SetQuantity("Tropical Mango Blend", 1))
	require.NoError(t, cart.SetQuantity("Classic Lemonade", 2))
	require.NoError(t, cart.SetQuantity("Sparkling Limeade", 1))

	lines := cart.Lines()
	require.Len(t, lines, 3)
	assert.Equal(t, "Classic Lemonade", lines[0].Product)
	assert.Equal(t, "Sparkling Limeade", lines[1].Product)
	assert.Equal(t, "Tropical Mango Blend", lines[2].Product)

	assert.Equal(t, "8.00", lines[0].LineTotal.StringFixed(2))
	assert.Equal(t, "4.00", lines[0].UnitPrice.StringFixed(2))
}

func TestCartTotal(t *testing.T) {
	cart := NewCart(DefaultCatalog())
	assert.Equal(t, "0.00", cart.Total().StringFixed(2))

	require.NoError(t, cart.SetQuantity("Classic Lemonade", 2))  // 8.00
	require.NoError(t, cart.SetQuantity("Strawberry Mint", 1))   // 5.50
	assert.Equal(t, "13.50", cart.Total().StringFixed(2))
}

func TestCartConcurrentAccess(t *testing.T) {
	catalog := DefaultCatalog()
	cart := NewCart(catalog)
	products := catalog.Products()

	// One cart is shared by all request goroutines; concurrent updates,
	// reads, and clears must not corrupt it.
	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				p := products[(g+i)%len(products)]
				assert.NoError(t, cart.SetQuantity(p.Name, (g+i)%(MaxQuantity+1)))
				cart.Lines()
				cart.Total()
				if i%50 == 0 {
					cart.Clear()
				}
			}
		}(g)
	}
	wg.Wait()

	for _, line := range cart.Lines() {
		assert.GreaterOrEqual(t, line.Quantity, 1)
		assert.LessOrEqual(t, line.Quantity, MaxQuantity)
	}
}

func TestCartClear(t *testing.T) {
	cart := NewCart(DefaultCatalog())
	require.NoError(t, cart.SetQuantity("Iced Tea Fusion", 4))

	cart.Clear()

	assert.Empty(t, cart.Lines())
	assert.Equal(t, "0.00", cart.Total().StringFixed(2))
}
