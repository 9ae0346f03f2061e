// internal/domain/cart/service.go
package cart

import (
	"sync"

	"github.com/shopspring/decimal"
	"github.com/your-org/storefront-api/internal/domain/catalog"
)

// Service owns the cart business policy: merge-on-add, quantity<=0 means
// removal, and the derived totals. The store underneath is dumb CRUD, so
// every policy decision is made here and nowhere else.
type Service struct {
	catalog *catalog.Store
	store   *Store

	// mu serializes the find-then-write sequence in AddItem so two
	// concurrent adds from the same session cannot create duplicate
	// lines for one product.
	mu sync.Mutex
}

// NewService creates a cart service over the given stores.
func NewService(catalogStore *catalog.Store, store *Store) *Service {
	return &Service{
		catalog: catalogStore,
		store:   store,
	}
}

// AddItem adds a product to the session's cart. If the session already has
// a line for the product, quantities accumulate on that line instead of a
// duplicate being created.
func (s *Service) AddItem(sessionID string, productID uint, quantity int) (Line, error) {
	if quantity < 1 {
		return Line{}, ErrInvalidQuantity
	}
	if _, ok := s.catalog.Product(productID); !ok {
		return Line{}, ErrProductNotFound
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if existing, ok := s.store.Find(productID, sessionID); ok {
		line, _ := s.store.SetQuantity(existing.ID, existing.Quantity+quantity)
		return line, nil
	}

	return s.store.Add(productID, quantity, sessionID), nil
}

// UpdateQuantity overwrites a line's quantity. A quantity of zero or less
// is a removal request; removed reports whether that path was taken.
func (s *Service) UpdateQuantity(lineID uint, quantity int) (Line, bool, error) {
	if quantity <= 0 {
		if !s.store.Remove(lineID) {
			return Line{}, true, ErrLineNotFound
		}
		return Line{}, true, nil
	}

	line, ok := s.store.SetQuantity(lineID, quantity)
	if !ok {
		return Line{}, false, ErrLineNotFound
	}
	return line, false, nil
}

// RemoveItem deletes a line by id.
func (s *Service) RemoveItem(lineID uint) error {
	if !s.store.Remove(lineID) {
		return ErrLineNotFound
	}
	return nil
}

// Clear removes every line belonging to the session.
func (s *Service) Clear(sessionID string) {
	s.store.ClearSession(sessionID)
}

// GetCart joins the session's lines with their products and computes the
// running total and item count. Lines whose product no longer exists are
// silently dropped.
func (s *Service) GetCart(sessionID string) View {
	lines := s.store.Lines(sessionID)

	items := make([]ItemView, 0, len(lines))
	total := decimal.Zero
	itemCount := 0

	for _, line := range lines {
		product, ok := s.catalog.Product(line.ProductID)
		if !ok {
			continue
		}
		items = append(items, ItemView{Line: line, Product: product})
		total = total.Add(product.Price.Mul(decimal.NewFromInt(int64(line.Quantity))))
		itemCount += line.Quantity
	}

	return View{
		Items:     items,
		Total:     total.StringFixed(2),
		ItemCount: itemCount,
	}
}
