package catalog

import "time"

type Category struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Description string    `json:"description,omitempty"`
	Image       string    `json:"image,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

type Brand struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
	Logo string `json:"logo,omitempty"`
}

type SkinType struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

type SkinConcern struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

type Product struct {
	ID            int64     `json:"id"`
	Name          string    `json:"name"`
	Slug          string    `json:"slug"`
	Description   string    `json:"description,omitempty"`
	Price         float64   `json:"price"`
	OriginalPrice *float64  `json:"original_price,omitempty"`
	Image         string    `json:"image,omitempty"`
	CategoryID    int64     `json:"category_id"`
	BrandID       int64     `json:"brand_id"`
	StockQty      int       `json:"stock_qty"`
	IsBestSeller  bool      `json:"is_best_seller"`
	IsNew         bool      `json:"is_new"`
	IsOrganic     bool      `json:"is_organic"`
	IsFeatured    bool      `json:"is_featured"`
	RatingSum     int       `json:"-"`
	ReviewCount   int       `json:"review_count"`
	CreatedAt     time.Time `json:"created_at"`

	// Derived/joined fields, filled on read paths.
	Rating   float64 `json:"rating"`
	Category string  `json:"category,omitempty"`
	Brand    string  `json:"brand,omitempty"`
}

// AvgRating is the mean of all review ratings, 0 when unreviewed.
func (p Product) AvgRating() float64 {
	if p.ReviewCount == 0 {
		return 0
	}
	return float64(p.RatingSum) / float64(p.ReviewCount)
}

type Review struct {
	ID        int64     `json:"id"`
	ProductID int64     `json:"product_id"`
	Author    string    `json:"author"`
	Location  string    `json:"location,omitempty"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	Verified  bool      `json:"verified"`
	CreatedAt time.Time `json:"created_at"`
}
