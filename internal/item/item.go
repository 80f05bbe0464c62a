package item

import "github.com/shopspring/decimal"

// Item represents a catalog entry. Prices are decimal so totals never drift
// the way binary floats do. Items are read-only from the cart and order
// engines' point of view.
type Item struct {
	ID          int             `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
}
