// internal/domain/cart/store.go
package cart

import (
	"sort"
	"sync"
)

// Store holds cart lines in memory, keyed by a generated line id. It is a
// dumb CRUD layer: absence is reported as an ok-bool, never as an error,
// and the merge/removal policy lives in Service. All state is lost when
// the process exits.
type Store struct {
	mu     sync.RWMutex
	lines  map[uint]Line
	nextID uint
}

// NewStore creates an empty cart store.
func NewStore() *Store {
	return &Store{
		lines:  make(map[uint]Line),
		nextID: 1,
	}
}

// Lines returns all lines belonging to the session, in id order.
func (s *Store) Lines(sessionID string) []Line {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Line, 0)
	for _, line := range s.lines {
		if line.SessionID == sessionID {
			out = append(out, line)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Add creates a new line and returns it with its generated id.
func (s *Store) Add(productID uint, quantity int, sessionID string) Line {
	s.mu.Lock()
	defer s.mu.Unlock()

	line := Line{
		ID:        s.nextID,
		ProductID: productID,
		Quantity:  quantity,
		SessionID: sessionID,
	}
	s.lines[line.ID] = line
	s.nextID++
	return line
}

// SetQuantity overwrites the quantity of a line unconditionally. The store
// does not enforce quantity >= 1; that policy belongs to the caller.
func (s *Store) SetQuantity(id uint, quantity int) (Line, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	line, ok := s.lines[id]
	if !ok {
		return Line{}, false
	}
	line.Quantity = quantity
	s.lines[id] = line
	return line, true
}

// Remove deletes a line and reports whether it existed.
func (s *Store) Remove(id uint) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.lines[id]; !ok {
		return false
	}
	delete(s.lines, id)
	return true
}

// ClearSession deletes all lines for the session. It is idempotent and
// always succeeds.
func (s *Store) ClearSession(sessionID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, line := range s.lines {
		if line.SessionID == sessionID {
			delete(s.lines, id)
		}
	}
	return true
}

// Find returns the session's line for a product, if one exists.
func (s *Store) Find(productID uint, sessionID string) (Line, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, line := range s.lines {
		if line.ProductID == productID && line.SessionID == sessionID {
			return line, true
		}
	}
	return Line{}, false
}

// Len returns the total number of lines across all sessions.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.lines)
}
