package cart

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"glowcart/internal/domain/catalog"
	"glowcart/internal/store"
)

func fixture(t *testing.T) (*store.Store, *Repo, int64, int64) {
	t.Helper()
	s := store.New()

	s.Lock()
	serum := s.NextID("products")
	s.Products[serum] = catalog.Product{ID: serum, Name: "Vitamin C Serum", Slug: "vitamin-c-serum", Price: 45.99, StockQty: 10}
	butter := s.NextID("products")
	s.Products[butter] = catalog.Product{ID: butter, Name: "Body Butter", Slug: "body-butter", Price: 32.50, StockQty: 10}
	s.Unlock()

	return s, NewRepo(s, 5.99, 50), serum, butter
}

const session = "test-session"

func TestAddSameProductIncrementsSingleLine(t *testing.T) {
	_, repo, serum, _ := fixture(t)
	ctx := context.Background()

	for _, qty := range []int{1, 2, 3} {
		_, err := repo.AddItem(ctx, session, serum, qty)
		require.NoError(t, err)
	}

	crt, err := repo.Get(ctx, session)
	require.NoError(t, err)
	require.Len(t, crt.Items, 1, "exactly one line per (cart, product) pair")
	assert.Equal(t, 6, crt.Items[0].Qty, "quantity is the sum of all adds")
	assert.Equal(t, 6, crt.Totals.ItemCount)
}

func TestAddRejectsOutOfRangeQuantity(t *testing.T) {
	_, repo, serum, _ := fixture(t)
	ctx := context.Background()

	_, err := repo.AddItem(ctx, session, serum, 0)
	assert.ErrorIs(t, err, store.ErrInvalidQuantity)

	_, err = repo.AddItem(ctx, session, serum, 100)
	assert.ErrorIs(t, err, store.ErrInvalidQuantity)

	// incrementing past the cap is rejected too
	_, err = repo.AddItem(ctx, session, serum, 60)
	require.NoError(t, err)
	_, err = repo.AddItem(ctx, session, serum, 60)
	assert.ErrorIs(t, err, store.ErrInvalidQuantity)
}

func TestAddUnknownProduct(t *testing.T) {
	_, repo, _, _ := fixture(t)

	_, err := repo.AddItem(context.Background(), session, 999, 1)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestUpdateQtyBelowOneLeavesCartUnchanged(t *testing.T) {
	_, repo, serum, _ := fixture(t)
	ctx := context.Background()

	crt, err := repo.AddItem(ctx, session, serum, 3)
	require.NoError(t, err)
	itemID := crt.Items[0].ID

	_, err = repo.UpdateQty(ctx, itemID, 0)
	assert.ErrorIs(t, err, store.ErrInvalidQuantity)

	crt, err = repo.Get(ctx, session)
	require.NoError(t, err)
	require.Len(t, crt.Items, 1)
	assert.Equal(t, 3, crt.Items[0].Qty)

	crt, err = repo.UpdateQty(ctx, itemID, 7)
	require.NoError(t, err)
	assert.Equal(t, 7, crt.Items[0].Qty)
}

func TestSubtotalSumsPriceTimesQty(t *testing.T) {
	_, repo, serum, butter := fixture(t)
	ctx := context.Background()

	_, err := repo.AddItem(ctx, session, serum, 2)
	require.NoError(t, err)
	crt, err := repo.AddItem(ctx, session, butter, 1)
	require.NoError(t, err)

	assert.InDelta(t, 124.48, crt.Totals.Subtotal, 1e-9)
	assert.Equal(t, 3, crt.Totals.ItemCount)
	assert.Equal(t, 0.0, crt.Totals.ShippingFee, "free shipping above the threshold")
	assert.InDelta(t, 124.48, crt.Totals.Total, 1e-9)
}

func TestShippingFeeBelowThreshold(t *testing.T) {
	_, repo, _, butter := fixture(t)

	crt, err := repo.AddItem(context.Background(), session, butter, 1)
	require.NoError(t, err)

	assert.InDelta(t, 32.50, crt.Totals.Subtotal, 1e-9)
	assert.InDelta(t, 5.99, crt.Totals.ShippingFee, 1e-9)
	assert.InDelta(t, 38.49, crt.Totals.Total, 1e-9)
}

func TestSaveForLaterThenMoveToCart(t *testing.T) {
	_, repo, serum, _ := fixture(t)
	ctx := context.Background()

	crt, err := repo.AddItem(ctx, session, serum, 4)
	require.NoError(t, err)
	itemID := crt.Items[0].ID

	crt, err = repo.SaveForLater(ctx, itemID)
	require.NoError(t, err)
	assert.Empty(t, crt.Items)
	require.Len(t, crt.SavedItems, 1)
	assert.False(t, crt.SavedItems[0].SavedAt.IsZero())

	crt, err = repo.MoveToCart(ctx, crt.SavedItems[0].ID)
	require.NoError(t, err)
	assert.Empty(t, crt.SavedItems, "item no longer appears in saved-for-later")
	require.Len(t, crt.Items, 1)
	assert.Equal(t, 1, crt.Items[0].Qty, "moving back restores quantity 1")
}

func TestAddRemovesProductFromSavedList(t *testing.T) {
	_, repo, serum, _ := fixture(t)
	ctx := context.Background()

	crt, err := repo.AddItem(ctx, session, serum, 1)
	require.NoError(t, err)
	_, err = repo.SaveForLater(ctx, crt.Items[0].ID)
	require.NoError(t, err)

	// re-adding the saved product pulls it out of the saved list
	crt, err = repo.AddItem(ctx, session, serum, 2)
	require.NoError(t, err)
	assert.Empty(t, crt.SavedItems)
	require.Len(t, crt.Items, 1)
	assert.Equal(t, 2, crt.Items[0].Qty)
}

func TestRemoveItemAndRemoveSaved(t *testing.T) {
	_, repo, serum, _ := fixture(t)
	ctx := context.Background()

	crt, err := repo.AddItem(ctx, session, serum, 1)
	require.NoError(t, err)

	require.NoError(t, repo.RemoveItem(ctx, crt.Items[0].ID))
	assert.ErrorIs(t, repo.RemoveItem(ctx, crt.Items[0].ID), store.ErrNotFound)
	assert.ErrorIs(t, repo.RemoveSaved(ctx, 999), store.ErrNotFound)
}

func TestClearDeletesItemRowsButKeepsSaved(t *testing.T) {
	s, repo, serum, butter := fixture(t)
	ctx := context.Background()

	crt, err := repo.AddItem(ctx, session, serum, 2)
	require.NoError(t, err)
	_, err = repo.SaveForLater(ctx, crt.Items[0].ID)
	require.NoError(t, err)
	_, err = repo.AddItem(ctx, session, butter, 1)
	require.NoError(t, err)

	require.NoError(t, repo.Clear(ctx, session))

	crt, err = repo.Get(ctx, session)
	require.NoError(t, err)
	assert.Empty(t, crt.Items)
	assert.Len(t, crt.SavedItems, 1, "saved-for-later survives a cart clear")

	s.RLock()
	assert.Empty(t, s.CartItems, "no orphaned item rows")
	s.RUnlock()
}

func TestClearUnknownSessionCreatesNothing(t *testing.T) {
	s, repo, _, _ := fixture(t)

	require.NoError(t, repo.Clear(context.Background(), "never-seen"))

	s.RLock()
	assert.Empty(t, s.Carts, "clearing an unknown session must not mint a cart row")
	s.RUnlock()
}
