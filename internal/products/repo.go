package products

import (
	"context"
	"sort"
	"strconv"
	"strings"
	"time"

	"glowcart/internal/domain/catalog"
	"glowcart/internal/store"
	"glowcart/internal/util"
)

type Repo struct {
	s *store.Store
}

func NewRepo(s *store.Store) *Repo {
	return &Repo{s: s}
}

// Filters is the full predicate set for product listing. Nil/zero
// fields mean "don't filter".
type Filters struct {
	Category   string
	Brands     []string
	MinPrice   *float64
	MaxPrice   *float64
	BestSeller *bool
	New        *bool
	Organic    *bool
	Featured   *bool
	MinRating  *float64
	Search     string

	// price-asc, price-desc, rating-desc, newest, popular; anything
	// else keeps insertion order (id ascending).
	Sort string

	Page  int
	Limit int
}

const DefaultLimit = 12

type Page struct {
	Items      []catalog.Product `json:"items"`
	Total      int               `json:"total"`
	Page       int               `json:"page"`
	Limit      int               `json:"limit"`
	TotalPages int               `json:"total_pages"`
}

// decorate fills derived and joined fields on a copy of the stored
// product. Caller must hold at least the read lock.
func (r *Repo) decorate(p catalog.Product) catalog.Product {
	p.Rating = p.AvgRating()
	if c, ok := r.s.Categories[p.CategoryID]; ok {
		p.Category = c.Name
	}
	if b, ok := r.s.Brands[p.BrandID]; ok {
		p.Brand = b.Name
	}
	return p
}

func (r *Repo) matches(p catalog.Product, f Filters) bool {
	if f.Category != "" {
		c, ok := r.s.Categories[p.CategoryID]
		if !ok || (!strings.EqualFold(c.Slug, f.Category) && !strings.EqualFold(c.Name, f.Category)) {
			return false
		}
	}
	if len(f.Brands) > 0 {
		b, ok := r.s.Brands[p.BrandID]
		if !ok {
			return false
		}
		hit := false
		for _, want := range f.Brands {
			if strings.EqualFold(b.Slug, want) || strings.EqualFold(b.Name, want) {
				hit = true
				break
			}
		}
		if !hit {
			return false
		}
	}
	if f.MinPrice != nil && p.Price < *f.MinPrice {
		return false
	}
	if f.MaxPrice != nil && p.Price > *f.MaxPrice {
		return false
	}
	if f.BestSeller != nil && p.IsBestSeller != *f.BestSeller {
		return false
	}
	if f.New != nil && p.IsNew != *f.New {
		return false
	}
	if f.Organic != nil && p.IsOrganic != *f.Organic {
		return false
	}
	if f.Featured != nil && p.IsFeatured != *f.Featured {
		return false
	}
	if f.MinRating != nil && p.AvgRating() < *f.MinRating {
		return false
	}
	if f.Search != "" {
		q := strings.ToLower(f.Search)
		brandName := ""
		if b, ok := r.s.Brands[p.BrandID]; ok {
			brandName = b.Name
		}
		if !strings.Contains(strings.ToLower(p.Name), q) &&
			!strings.Contains(strings.ToLower(p.Description), q) &&
			!strings.Contains(strings.ToLower(brandName), q) {
			return false
		}
	}
	return true
}

func sortProducts(items []catalog.Product, key string) {
	switch key {
	case "price-asc":
		sort.Slice(items, func(i, j int) bool { return items[i].Price < items[j].Price })
	case "price-desc":
		sort.Slice(items, func(i, j int) bool { return items[i].Price > items[j].Price })
	case "rating-desc":
		sort.Slice(items, func(i, j int) bool { return items[i].Rating > items[j].Rating })
	case "newest":
		// ids are monotonic and never reused, so higher id = newer
		sort.Slice(items, func(i, j int) bool { return items[i].ID > items[j].ID })
	case "popular":
		sort.Slice(items, func(i, j int) bool {
			if items[i].ReviewCount != items[j].ReviewCount {
				return items[i].ReviewCount > items[j].ReviewCount
			}
			return items[i].ID < items[j].ID
		})
	default:
		sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
	}
}

func (r *Repo) List(ctx context.Context, f Filters) (Page, error) {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.Limit < 1 {
		f.Limit = DefaultLimit
	}

	r.s.RLock()
	defer r.s.RUnlock()

	matched := make([]catalog.Product, 0, len(r.s.Products))
	for _, p := range r.s.Products {
		if r.matches(p, f) {
			matched = append(matched, r.decorate(p))
		}
	}
	sortProducts(matched, f.Sort)

	total := len(matched)
	totalPages := (total + f.Limit - 1) / f.Limit

	start := (f.Page - 1) * f.Limit
	if start > total {
		start = total
	}
	end := start + f.Limit
	if end > total {
		end = total
	}

	return Page{
		Items:      matched[start:end],
		Total:      total,
		Page:       f.Page,
		Limit:      f.Limit,
		TotalPages: totalPages,
	}, nil
}

// BySlugOrID resolves either a product slug or a numeric id.
func (r *Repo) BySlugOrID(ctx context.Context, key string) (catalog.Product, error) {
	r.s.RLock()
	defer r.s.RUnlock()

	for _, p := range r.s.Products {
		if p.Slug == key {
			return r.decorate(p), nil
		}
	}
	if id, err := strconv.ParseInt(key, 10, 64); err == nil {
		if p, ok := r.s.Products[id]; ok {
			return r.decorate(p), nil
		}
	}
	return catalog.Product{}, store.ErrNotFound
}

func (r *Repo) BestSellers(ctx context.Context, limit int) ([]catalog.Product, error) {
	t := true
	page, err := r.List(ctx, Filters{BestSeller: &t, Limit: limitOrDefault(limit)})
	return page.Items, err
}

func (r *Repo) NewArrivals(ctx context.Context, limit int) ([]catalog.Product, error) {
	t := true
	page, err := r.List(ctx, Filters{New: &t, Sort: "newest", Limit: limitOrDefault(limit)})
	return page.Items, err
}

func limitOrDefault(limit int) int {
	if limit < 1 {
		return DefaultLimit
	}
	return limit
}

// Related returns other products sharing the category or brand, in
// store order, capped at limit. No relevance ranking.
func (r *Repo) Related(ctx context.Context, productID int64, limit int) ([]catalog.Product, error) {
	r.s.RLock()
	defer r.s.RUnlock()

	base, ok := r.s.Products[productID]
	if !ok {
		return nil, store.ErrNotFound
	}

	all := make([]catalog.Product, 0, len(r.s.Products))
	for _, p := range r.s.Products {
		if p.ID == productID {
			continue
		}
		if p.CategoryID == base.CategoryID || p.BrandID == base.BrandID {
			all = append(all, r.decorate(p))
		}
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })

	limit = limitOrDefault(limit)
	if len(all) > limit {
		all = all[:limit]
	}
	return all, nil
}

type CreateInput struct {
	Name          string
	Description   string
	Price         float64
	OriginalPrice *float64
	Image         string
	CategoryID    int64
	BrandID       int64
	StockQty      int
	IsBestSeller  bool
	IsNew         bool
	IsOrganic     bool
	IsFeatured    bool
}

func (r *Repo) Create(ctx context.Context, in CreateInput) (catalog.Product, error) {
	r.s.Lock()
	defer r.s.Unlock()

	if _, ok := r.s.Categories[in.CategoryID]; !ok {
		return catalog.Product{}, store.ErrNotFound
	}
	if _, ok := r.s.Brands[in.BrandID]; !ok {
		return catalog.Product{}, store.ErrNotFound
	}

	slug := util.Slugify(in.Name)
	for _, p := range r.s.Products {
		if p.Slug == slug {
			return catalog.Product{}, store.ErrConflict
		}
	}

	p := catalog.Product{
		ID:            r.s.NextID("products"),
		Name:          in.Name,
		Slug:          slug,
		Description:   in.Description,
		Price:         in.Price,
		OriginalPrice: in.OriginalPrice,
		Image:         in.Image,
		CategoryID:    in.CategoryID,
		BrandID:       in.BrandID,
		StockQty:      in.StockQty,
		IsBestSeller:  in.IsBestSeller,
		IsNew:         in.IsNew,
		IsOrganic:     in.IsOrganic,
		IsFeatured:    in.IsFeatured,
		CreatedAt:     time.Now(),
	}
	r.s.Products[p.ID] = p
	return r.decorate(p), nil
}
