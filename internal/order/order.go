package order

import (
	"github.com/shopspring/decimal"

	"github.com/thanadol-s/ecommerce-backend/internal/item"
)

// UserOrder is an immutable snapshot of a cart taken at submission time.
// Items and Total are copied out of the cart; later cart edits never touch a
// submitted order.
type UserOrder struct {
	ID          int             `json:"id"`
	OrderNumber string          `json:"orderNumber"`
	UserID      int             `json:"userId"`
	Items       []item.Item     `json:"items"`
	Total       decimal.Decimal `json:"total"`
	CreatedAt   string          `json:"createdAt"`
}
