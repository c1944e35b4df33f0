package order

import "time"

const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusShipped   = "shipped"
	StatusDelivered = "delivered"
)

const (
	PaymentCard         = "card"
	PaymentCashDelivery = "cod"
	PaymentBankTransfer = "bank_transfer"
)

type Order struct {
	ID          int64  `json:"id"`
	OrderNumber string `json:"order_number"`

	CustomerName  string `json:"customer_name"`
	Email         string `json:"email"`
	Phone         string `json:"phone,omitempty"`
	ShippingAddr  string `json:"shipping_address"`
	City          string `json:"city"`
	PostalCode    string `json:"postal_code,omitempty"`
	PaymentMethod string `json:"payment_method"`

	Subtotal    float64 `json:"subtotal"`
	ShippingFee float64 `json:"shipping_fee"`
	Discount    float64 `json:"discount"`
	Total       float64 `json:"total"`

	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`

	Items []Item `json:"items"`
}

// Item snapshots a product at checkout time. Later changes to the
// product never alter it.
type Item struct {
	ID        int64   `json:"id"`
	OrderID   int64   `json:"order_id"`
	ProductID int64   `json:"product_id"`
	Product   string  `json:"product"`
	Price     float64 `json:"price"`
	Qty       int     `json:"quantity"`
}
