package reviews

import (
	"context"
	"sort"
	"strconv"
	"time"

	"glowcart/internal/domain/catalog"
	"glowcart/internal/store"
)

type Repo struct {
	s *store.Store
}

func NewRepo(s *store.Store) *Repo {
	return &Repo{s: s}
}

// resolveProduct accepts a product slug or numeric id. Caller must
// hold at least the read lock.
func (r *Repo) resolveProduct(key string) (catalog.Product, bool) {
	for _, p := range r.s.Products {
		if p.Slug == key {
			return p, true
		}
	}
	if id, err := strconv.ParseInt(key, 10, 64); err == nil {
		if p, ok := r.s.Products[id]; ok {
			return p, true
		}
	}
	return catalog.Product{}, false
}

func (r *Repo) ListByProduct(ctx context.Context, productKey string) ([]catalog.Review, error) {
	r.s.RLock()
	defer r.s.RUnlock()

	p, ok := r.resolveProduct(productKey)
	if !ok {
		return nil, store.ErrNotFound
	}

	out := []catalog.Review{}
	for _, rev := range r.s.Reviews {
		if rev.ProductID == p.ID {
			out = append(out, rev)
		}
	}
	// newest first
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

type CreateInput struct {
	ProductID int64
	Author    string
	Location  string
	Rating    int
	Comment   string
}

// Create inserts the review and updates the product's running rating
// sum and review count in the same locked unit, so a reader can never
// see one without the other.
func (r *Repo) Create(ctx context.Context, in CreateInput) (catalog.Review, error) {
	if in.Rating < 1 || in.Rating > 5 {
		return catalog.Review{}, store.ErrInvalidInput
	}

	r.s.Lock()
	defer r.s.Unlock()

	p, ok := r.s.Products[in.ProductID]
	if !ok {
		return catalog.Review{}, store.ErrNotFound
	}

	rev := catalog.Review{
		ID:        r.s.NextID("reviews"),
		ProductID: in.ProductID,
		Author:    in.Author,
		Location:  in.Location,
		Rating:    in.Rating,
		Comment:   in.Comment,
		CreatedAt: time.Now(),
	}
	r.s.Reviews[rev.ID] = rev

	p.RatingSum += in.Rating
	p.ReviewCount++
	r.s.Products[p.ID] = p

	return rev, nil
}
