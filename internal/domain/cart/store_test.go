package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_AddAssignsSequentialIDs(t *testing.T) {
	s := NewStore()

	first := s.Add(1, 2, "sess-a")
	second := s.Add(2, 1, "sess-a")

	assert.Equal(t, uint(1), first.ID)
	assert.Equal(t, uint(2), second.ID)
	assert.Equal(t, 2, s.Len())
}

func TestStore_LinesScopedToSession(t *testing.T) {
	s := NewStore()
	s.Add(1, 1, "sess-a")
	s.Add(2, 1, "sess-a")
	s.Add(1, 5, "sess-b")

	a := s.Lines("sess-a")
	require.Len(t, a, 2)
	assert.Equal(t, uint(1), a[0].ID)
	assert.Equal(t, uint(2), a[1].ID)

	b := s.Lines("sess-b")
	require.Len(t, b, 1)
	assert.Equal(t, 5, b[0].Quantity)

	assert.Empty(t, s.Lines("sess-c"))
}

func TestStore_SetQuantity(t *testing.T) {
	s := NewStore()
	line := s.Add(1, 1, "sess-a")

	updated, ok := s.SetQuantity(line.ID, 7)
	require.True(t, ok)
	assert.Equal(t, 7, updated.Quantity)

	// the store does not police quantity; that is service policy
	updated, ok = s.SetQuantity(line.ID, 0)
	require.True(t, ok)
	assert.Equal(t, 0, updated.Quantity)

	_, ok = s.SetQuantity(999, 3)
	assert.False(t, ok)
}

func TestStore_Remove(t *testing.T) {
	s := NewStore()
	line := s.Add(1, 1, "sess-a")

	assert.True(t, s.Remove(line.ID))
	assert.False(t, s.Remove(line.ID), "second remove reports absence")
	assert.Equal(t, 0, s.Len())
}

func TestStore_ClearSession(t *testing.T) {
	s := NewStore()
	s.Add(1, 1, "sess-a")
	s.Add(2, 1, "sess-a")
	other := s.Add(1, 3, "sess-b")

	assert.True(t, s.ClearSession("sess-a"))
	assert.Empty(t, s.Lines("sess-a"))

	// other sessions untouched
	remaining := s.Lines("sess-b")
	require.Len(t, remaining, 1)
	assert.Equal(t, other.ID, remaining[0].ID)

	// idempotent on an already-empty session
	assert.True(t, s.ClearSession("sess-a"))
}

func TestStore_Find(t *testing.T) {
	s := NewStore()
	line := s.Add(4, 2, "sess-a")

	found, ok := s.Find(4, "sess-a")
	require.True(t, ok)
	assert.Equal(t, line.ID, found.ID)

	_, ok = s.Find(4, "sess-b")
	assert.False(t, ok, "same product, different session")

	_, ok = s.Find(5, "sess-a")
	assert.False(t, ok)
}
