package cart

import (
	"github.com/shopspring/decimal"

	"github.com/thanadol-s/ecommerce-backend/internal/item"
)

// Cart holds one user's pending purchase. Items is an ordered sequence with
// one entry per unit, so quantity is expressed by repetition. Total must
// always equal the sum of the prices of every entry; it is recomputed from
// scratch after each mutation rather than patched incrementally.
type Cart struct {
	ID     int             `json:"id"`
	UserID int             `json:"userId"`
	Items  []item.Item     `json:"items"`
	Total  decimal.Decimal `json:"total"`
}

// AddItem appends qty copies of it and recomputes the total. qty <= 0 is a
// no-op.
func (c *Cart) AddItem(it item.Item, qty int) {
	for i := 0; i < qty; i++ {
		c.Items = append(c.Items, it)
	}
	c.recomputeTotal()
}

// RemoveItem deletes up to qty occurrences of the item, clamping when fewer
// are present. Removing an item that is not in the cart is not an error.
func (c *Cart) RemoveItem(itemID int, qty int) {
	if qty <= 0 {
		return
	}

	kept := c.Items[:0]
	removed := 0
	for _, it := range c.Items {
		if it.ID == itemID && removed < qty {
			removed++
			continue
		}
		kept = append(kept, it)
	}
	c.Items = kept
	c.recomputeTotal()
}

// Count returns how many units of the given item the cart holds.
func (c *Cart) Count(itemID int) int {
	n := 0
	for _, it := range c.Items {
		if it.ID == itemID {
			n++
		}
	}
	return n
}

func (c *Cart) recomputeTotal() {
	total := decimal.Zero
	for _, it := range c.Items {
		total = total.Add(it.Price)
	}
	c.Total = total
}
