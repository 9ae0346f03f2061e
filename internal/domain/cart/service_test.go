package cart

import (
	"fmt"
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/your-org/storefront-api/internal/domain/catalog"
)

func newTestService() (*Service, *Store) {
	catalogStore := catalog.NewStoreWithProducts([]catalog.Product{
		{Name: "Headphones", Price: decimal.RequireFromString("299.99"), Category: "Audio"},
		{Name: "Speaker", Price: decimal.RequireFromString("129.99"), Category: "Audio"},
		{Name: "Charging Pad", Price: decimal.RequireFromString("39.99"), Category: "Accessories"},
	})
	store := NewStore()
	return NewService(catalogStore, store), store
}

func TestAddItem_MergesDuplicateProduct(t *testing.T) {
	svc, store := newTestService()

	first, err := svc.AddItem("sess-a", 1, 2)
	require.NoError(t, err)
	assert.Equal(t, 2, first.Quantity)

	second, err := svc.AddItem("sess-a", 1, 3)
	require.NoError(t, err)

	// same line, quantities accumulate
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, 5, second.Quantity)
	assert.Equal(t, 1, store.Len())
}

func TestAddItem_SameProductDifferentSessions(t *testing.T) {
	svc, store := newTestService()

	a, err := svc.AddItem("sess-a", 1, 1)
	require.NoError(t, err)
	b, err := svc.AddItem("sess-b", 1, 1)
	require.NoError(t, err)

	assert.NotEqual(t, a.ID, b.ID)
	assert.Equal(t, 2, store.Len())
}

func TestAddItem_Validation(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.AddItem("sess-a", 1, 0)
	assert.ErrorIs(t, err, ErrInvalidQuantity)

	_, err = svc.AddItem("sess-a", 1, -2)
	assert.ErrorIs(t, err, ErrInvalidQuantity)

	_, err = svc.AddItem("sess-a", 999, 1)
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestUpdateQuantity_Overwrites(t *testing.T) {
	svc, _ := newTestService()
	line, err := svc.AddItem("sess-a", 1, 2)
	require.NoError(t, err)

	updated, removed, err := svc.UpdateQuantity(line.ID, 7)
	require.NoError(t, err)
	assert.False(t, removed)
	assert.Equal(t, 7, updated.Quantity)
}

func TestUpdateQuantity_ZeroOrNegativeRemoves(t *testing.T) {
	svc, _ := newTestService()

	for _, quantity := range []int{0, -1} {
		line, err := svc.AddItem("sess-a", 1, 2)
		require.NoError(t, err)

		_, removed, err := svc.UpdateQuantity(line.ID, quantity)
		require.NoError(t, err)
		assert.True(t, removed)

		view := svc.GetCart("sess-a")
		assert.Empty(t, view.Items, "line absent after quantity %d", quantity)
	}
}

func TestUpdateQuantity_UnknownLine(t *testing.T) {
	svc, _ := newTestService()

	_, _, err := svc.UpdateQuantity(42, 3)
	assert.ErrorIs(t, err, ErrLineNotFound)

	_, _, err = svc.UpdateQuantity(42, 0)
	assert.ErrorIs(t, err, ErrLineNotFound, "removal of unknown line is still not-found")
}

func TestRemoveItem(t *testing.T) {
	svc, _ := newTestService()
	line, err := svc.AddItem("sess-a", 1, 1)
	require.NoError(t, err)

	require.NoError(t, svc.RemoveItem(line.ID))
	assert.ErrorIs(t, svc.RemoveItem(line.ID), ErrLineNotFound)
}

func TestClear_LeavesOtherSessionsUntouched(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.AddItem("sess-a", 1, 1)
	require.NoError(t, err)
	_, err = svc.AddItem("sess-a", 2, 1)
	require.NoError(t, err)
	_, err = svc.AddItem("sess-b", 1, 4)
	require.NoError(t, err)

	svc.Clear("sess-a")

	assert.Empty(t, svc.GetCart("sess-a").Items)

	other := svc.GetCart("sess-b")
	require.Len(t, other.Items, 1)
	assert.Equal(t, 4, other.ItemCount)
}

func TestGetCart_TotalsAndCounts(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.AddItem("sess-a", 1, 2) // 299.99 * 2 = 599.98
	require.NoError(t, err)
	_, err = svc.AddItem("sess-a", 3, 3) // 39.99 * 3 = 119.97
	require.NoError(t, err)

	view := svc.GetCart("sess-a")
	require.Len(t, view.Items, 2)
	assert.Equal(t, "719.95", view.Total)
	assert.Equal(t, 5, view.ItemCount)
	assert.Equal(t, "Headphones", view.Items[0].Product.Name)
}

func TestGetCart_EmptySession(t *testing.T) {
	svc, _ := newTestService()

	view := svc.GetCart("nobody")
	assert.NotNil(t, view.Items)
	assert.Empty(t, view.Items)
	assert.Equal(t, "0.00", view.Total)
	assert.Equal(t, 0, view.ItemCount)
}

func TestGetCart_DropsLinesWithMissingProduct(t *testing.T) {
	svc, store := newTestService()

	_, err := svc.AddItem("sess-a", 1, 1)
	require.NoError(t, err)

	// a line whose product was never in the catalog
	store.Add(999, 2, "sess-a")

	view := svc.GetCart("sess-a")
	require.Len(t, view.Items, 1)
	assert.Equal(t, "299.99", view.Total)
	assert.Equal(t, 1, view.ItemCount)
}

// Mirrors the documented shopping flow: two adds merge into one line, a
// quantity-zero update empties the cart.
func TestShoppingFlow(t *testing.T) {
	svc, _ := newTestService()

	line, err := svc.AddItem("sess-a", 1, 2)
	require.NoError(t, err)

	view := svc.GetCart("sess-a")
	assert.Equal(t, "599.98", view.Total)
	assert.Equal(t, 2, view.ItemCount)

	_, err = svc.AddItem("sess-a", 1, 1)
	require.NoError(t, err)

	view = svc.GetCart("sess-a")
	require.Len(t, view.Items, 1)
	assert.Equal(t, 3, view.Items[0].Quantity)
	assert.Equal(t, "899.97", view.Total)
	assert.Equal(t, 3, view.ItemCount)

	_, removed, err := svc.UpdateQuantity(line.ID, 0)
	require.NoError(t, err)
	assert.True(t, removed)

	view = svc.GetCart("sess-a")
	assert.Empty(t, view.Items)
	assert.Equal(t, "0.00", view.Total)
	assert.Equal(t, 0, view.ItemCount)
}

func TestAddItem_ConcurrentAddsSameSession(t *testing.T) {
	svc, store := newTestService()

	const workers = 16
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			_, err := svc.AddItem("sess-a", 1, 1)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	require.Equal(t, 1, store.Len(), "concurrent adds must not duplicate the line")
	view := svc.GetCart("sess-a")
	require.Len(t, view.Items, 1)
	assert.Equal(t, workers, view.Items[0].Quantity)
	assert.Equal(t, fmt.Sprintf("%.2f", float64(workers)*299.99), view.Total)
}
