package categories

import (
	"context"
	"sort"
	"time"

	"glowcart/internal/domain/catalog"
	"glowcart/internal/store"
	"glowcart/internal/util"
)

// Repo answers taxonomy reads: categories, brands, skin types and
// skin concerns. All of it is seeded reference data; only categories
// can be created after startup (admin).
type Repo struct {
	s *store.Store
}

func NewRepo(s *store.Store) *Repo {
	return &Repo{s: s}
}

func (r *Repo) ListCategories(ctx context.Context) ([]catalog.Category, error) {
	r.s.RLock()
	defer r.s.RUnlock()

	out := make([]catalog.Category, 0, len(r.s.Categories))
	for _, c := range r.s.Categories {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *Repo) CategoryBySlug(ctx context.Context, slug string) (catalog.Category, error) {
	r.s.RLock()
	defer r.s.RUnlock()

	for _, c := range r.s.Categories {
		if c.Slug == slug {
			return c, nil
		}
	}
	return catalog.Category{}, store.ErrNotFound
}

func (r *Repo) CreateCategory(ctx context.Context, name, description string) (catalog.Category, error) {
	r.s.Lock()
	defer r.s.Unlock()

	slug := util.Slugify(name)
	for _, c := range r.s.Categories {
		if c.Slug == slug {
			return catalog.Category{}, store.ErrConflict
		}
	}

	c := catalog.Category{
		ID:          r.s.NextID("categories"),
		Name:        name,
		Slug:        slug,
		Description: description,
		CreatedAt:   time.Now(),
	}
	r.s.Categories[c.ID] = c
	return c, nil
}

func (r *Repo) ListBrands(ctx context.Context) ([]catalog.Brand, error) {
	r.s.RLock()
	defer r.s.RUnlock()

	out := make([]catalog.Brand, 0, len(r.s.Brands))
	for _, b := range r.s.Brands {
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *Repo) BrandBySlug(ctx context.Context, slug string) (catalog.Brand, error) {
	r.s.RLock()
	defer r.s.RUnlock()

	for _, b := range r.s.Brands {
		if b.Slug == slug {
			return b, nil
		}
	}
	return catalog.Brand{}, store.ErrNotFound
}

func (r *Repo) ListSkinTypes(ctx context.Context) ([]catalog.SkinType, error) {
	r.s.RLock()
	defer r.s.RUnlock()

	out := make([]catalog.SkinType, 0, len(r.s.SkinTypes))
	for _, t := range r.s.SkinTypes {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *Repo) ListSkinConcerns(ctx context.Context) ([]catalog.SkinConcern, error) {
	r.s.RLock()
	defer r.s.RUnlock()

	out := make([]catalog.SkinConcern, 0, len(r.s.SkinConcerns))
	for _, sc := range r.s.SkinConcerns {
		out = append(out, sc)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}
