// internal/domain/catalog/entity.go
package catalog

import (
	"github.com/shopspring/decimal"
)

// Product represents a catalog entry. Products are seeded once at startup
// and never mutated; prices travel over the wire as decimal strings.
type Product struct {
	ID            uint             `json:"id"`
	Name          string           `json:"name"`
	Description   string           `json:"description"`
	Price         decimal.Decimal  `json:"price"`
	Image         string           `json:"image"`
	Category      string           `json:"category"`
	Badge         *string          `json:"badge"`
	OriginalPrice *decimal.Decimal `json:"originalPrice"`
}
