// internal/domain/cart/entity.go
package cart

import (
	"github.com/your-org/storefront-api/internal/domain/catalog"
)

// Line is one row of a cart: a product reference, a quantity and the
// session that owns it. Quantity is always >= 1 while the line exists.
type Line struct {
	ID        uint   `json:"id"`
	ProductID uint   `json:"productId"`
	Quantity  int    `json:"quantity"`
	SessionID string `json:"sessionId"`
}

// ItemView is a cart line joined with its product for presentation.
type ItemView struct {
	Line
	Product catalog.Product `json:"product"`
}

// View is the derived cart aggregate returned to clients. It is recomputed
// on every read and never cached.
type View struct {
	Items     []ItemView `json:"items"`
	Total     string     `json:"total"`
	ItemCount int        `json:"itemCount"`
}
