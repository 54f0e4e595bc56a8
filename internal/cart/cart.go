// Package cart is the pure pricing engine for a shopping session. A cart
// is single-owner, in-memory and short-lived: it is either discarded or
// folded into an order at checkout, never persisted on its own.
package cart

import (
	"fixitplus-be/internal/issue"
	"fixitplus-be/internal/product"
)

// Item is one cart line: a product reference plus a positive quantity.
type Item struct {
	ProductID string  `json:"id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
}

type Cart struct {
	items []Item
}

func New() *Cart {
	return &Cart{}
}

// AddItem merges by product id: a product already in the cart gains one
// more unit, otherwise a new line starts at quantity 1.
func (c *Cart) AddItem(p *product.Product) {
	for i := range c.items {
		if c.items[i].ProductID == p.ID {
			c.items[i].Quantity++
			return
		}
	}

	c.items = append(c.items, Item{
		ProductID: p.ID,
		Name:      p.Name,
		Price:     p.Price,
		Quantity:  1,
	})
}

// RemoveItem deletes the line entirely. Removing an absent id is a no-op.
func (c *Cart) RemoveItem(productID string) {
	for i := range c.items {
		if c.items[i].ProductID == productID {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return
		}
	}
}

// SetQuantity overwrites a line's quantity; qty <= 0 removes the line.
func (c *Cart) SetQuantity(productID string, qty int) {
	if qty <= 0 {
		c.RemoveItem(productID)
		return
	}

	for i := range c.items {
		if c.items[i].ProductID == productID {
			c.items[i].Quantity = qty
			return
		}
	}
}

func (c *Cart) Items() []Item {
	return c.items
}

func (c *Cart) IsEmpty() bool {
	return len(c.items) == 0
}

// ComputeTotals prices the cart fresh on every call; totals are never
// cached across mutations or a location change.
func (c *Cart) ComputeTotals(lc issue.LocationClass) Totals {
	return TotalsFor(c.items, lc)
}
