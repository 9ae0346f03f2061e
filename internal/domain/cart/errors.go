// internal/domain/cart/errors.go
package cart

import "errors"

var (
	// ErrProductNotFound is returned when an add references a product that
	// does not exist in the catalog.
	ErrProductNotFound = errors.New("product not found")

	// ErrLineNotFound is returned when an operation addresses a cart line
	// id that does not exist.
	ErrLineNotFound = errors.New("cart item not found")

	// ErrInvalidQuantity is returned when an add requests a quantity
	// smaller than 1.
	ErrInvalidQuantity = errors.New("quantity must be a positive integer")
)
