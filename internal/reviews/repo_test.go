package reviews

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"glowcart/internal/domain/catalog"
	"glowcart/internal/store"
)

func fixture(t *testing.T) (*store.Store, *Repo, int64) {
	t.Helper()
	s := store.New()

	s.Lock()
	id := s.NextID("products")
	s.Products[id] = catalog.Product{ID: id, Name: "Ceramide Night Cream", Slug: "ceramide-night-cream", Price: 38.75}
	s.Unlock()

	return s, NewRepo(s), id
}

func TestFirstReviewSetsAggregate(t *testing.T) {
	s, repo, productID := fixture(t)

	rev, err := repo.Create(context.Background(), CreateInput{
		ProductID: productID, Author: "Maya R.", Rating: 4, Comment: "Rich but not greasy.",
	})
	require.NoError(t, err)
	assert.Equal(t, 4, rev.Rating)

	s.RLock()
	p := s.Products[productID]
	s.RUnlock()
	assert.Equal(t, 1, p.ReviewCount)
	assert.Equal(t, 4.0, p.AvgRating(), "rating equals the sole review's rating")
}

func TestAggregateIsMeanOfAllReviews(t *testing.T) {
	s, repo, productID := fixture(t)

	for _, rating := range []int{5, 4, 3} {
		_, err := repo.Create(context.Background(), CreateInput{
			ProductID: productID, Author: "A", Rating: rating, Comment: "ok",
		})
		require.NoError(t, err)
	}

	s.RLock()
	p := s.Products[productID]
	s.RUnlock()
	assert.Equal(t, 3, p.ReviewCount)
	assert.InDelta(t, 4.0, p.AvgRating(), 1e-9)
}

func TestCreateRejectsBadInput(t *testing.T) {
	_, repo, productID := fixture(t)

	_, err := repo.Create(context.Background(), CreateInput{ProductID: productID, Author: "A", Rating: 0, Comment: "x"})
	assert.ErrorIs(t, err, store.ErrInvalidInput)

	_, err = repo.Create(context.Background(), CreateInput{ProductID: productID, Author: "A", Rating: 6, Comment: "x"})
	assert.ErrorIs(t, err, store.ErrInvalidInput)

	_, err = repo.Create(context.Background(), CreateInput{ProductID: 999, Author: "A", Rating: 5, Comment: "x"})
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestListByProductNewestFirst(t *testing.T) {
	_, repo, productID := fixture(t)

	first, err := repo.Create(context.Background(), CreateInput{ProductID: productID, Author: "A", Rating: 5, Comment: "x"})
	require.NoError(t, err)
	second, err := repo.Create(context.Background(), CreateInput{ProductID: productID, Author: "B", Rating: 4, Comment: "y"})
	require.NoError(t, err)

	list, err := repo.ListByProduct(context.Background(), "ceramide-night-cream")
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, second.ID, list[0].ID)
	assert.Equal(t, first.ID, list[1].ID)

	_, err = repo.ListByProduct(context.Background(), "no-such-product")
	assert.ErrorIs(t, err, store.ErrNotFound)
}
