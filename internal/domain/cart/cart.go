package cart

import "time"

type Cart struct {
	ID        int64     `json:"id"`
	SessionID string    `json:"session_id"`
	UserID    *int64    `json:"user_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`

	Items      []Item      `json:"items"`
	SavedItems []SavedItem `json:"saved_items"`
	Totals     Totals      `json:"totals"`
}

type Item struct {
	ID        int64 `json:"id"`
	CartID    int64 `json:"cart_id"`
	ProductID int64 `json:"product_id"`
	Qty       int   `json:"quantity"`

	// Joined product detail, filled on read paths.
	Product   string  `json:"product"`
	Slug      string  `json:"slug"`
	Image     string  `json:"image,omitempty"`
	Price     float64 `json:"price"`
	LineTotal float64 `json:"line_total"`
	StockQty  int     `json:"stock_qty"`
}

type SavedItem struct {
	ID        int64     `json:"id"`
	CartID    int64     `json:"cart_id"`
	ProductID int64     `json:"product_id"`
	SavedAt   time.Time `json:"saved_at"`

	Product string  `json:"product"`
	Slug    string  `json:"slug"`
	Image   string  `json:"image,omitempty"`
	Price   float64 `json:"price"`
}

type Totals struct {
	Subtotal    float64 `json:"subtotal"`
	ItemCount   int     `json:"item_count"`
	ShippingFee float64 `json:"shipping_fee"`
	Total       float64 `json:"total"`
}
