// internal/domain/catalog/store.go
package catalog

import (
	"sort"
	"strings"
)

// Store holds the product catalog. It is populated at construction time and
// read-only afterwards, so it needs no synchronization.
type Store struct {
	products []Product
	byID     map[uint]Product
}

// NewStore creates a catalog store populated with the seed products.
func NewStore() *Store {
	return NewStoreWithProducts(seedProducts())
}

// NewStoreWithProducts creates a catalog store from the given products,
// assigning identifiers in insertion order starting from 1.
func NewStoreWithProducts(products []Product) *Store {
	s := &Store{
		products: make([]Product, 0, len(products)),
		byID:     make(map[uint]Product, len(products)),
	}
	for i, p := range products {
		p.ID = uint(i + 1)
		s.products = append(s.products, p)
		s.byID[p.ID] = p
	}
	return s
}

// Products returns all products in insertion order.
func (s *Store) Products() []Product {
	out := make([]Product, len(s.products))
	copy(out, s.products)
	return out
}

// Product looks up a product by id.
func (s *Store) Product(id uint) (Product, bool) {
	p, ok := s.byID[id]
	return p, ok
}

// Filter returns products matching the given category and search term,
// ordered by the given sort key. Empty arguments leave that dimension
// unfiltered; an unknown sort keeps insertion order.
func (s *Store) Filter(category, search, sortKey string) []Product {
	out := make([]Product, 0, len(s.products))
	search = strings.ToLower(search)

	for _, p := range s.products {
		if category != "" && p.Category != category {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(p.Name), search) &&
			!strings.Contains(strings.ToLower(p.Description), search) {
			continue
		}
		out = append(out, p)
	}

	switch sortKey {
	case "price-asc":
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Price.LessThan(out[j].Price)
		})
	case "price-desc":
		sort.SliceStable(out, func(i, j int) bool {
			return out[j].Price.LessThan(out[i].Price)
		})
	case "name":
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Name < out[j].Name
		})
	}

	return out
}
