package orders

import (
	"context"
	"math"
	"sort"
	"time"

	"glowcart/internal/domain/cart"
	"glowcart/internal/domain/order"
	"glowcart/internal/store"
	"glowcart/internal/util"
)

type Repo struct {
	s *store.Store

	shippingFee     float64
	freeShippingMin float64
}

func NewRepo(s *store.Store, shippingFee, freeShippingMin float64) *Repo {
	return &Repo{s: s, shippingFee: shippingFee, freeShippingMin: freeShippingMin}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

type CheckoutInput struct {
	SessionID     string
	CustomerName  string
	Email         string
	Phone         string
	ShippingAddr  string
	City          string
	PostalCode    string
	PaymentMethod string
	Discount      float64
}

// Checkout turns the session's cart into an immutable order: one
// OrderItem per cart line, name and unit price captured as of now.
// The order insert and the cart-item deletes are one locked unit, so
// no caller ever sees a half-checked-out cart.
func (r *Repo) Checkout(ctx context.Context, in CheckoutInput) (order.Order, error) {
	if in.Discount < 0 {
		return order.Order{}, store.ErrInvalidInput
	}

	r.s.Lock()
	defer r.s.Unlock()

	var crt *cart.Cart
	for _, c := range r.s.Carts {
		if c.SessionID == in.SessionID {
			cc := c
			crt = &cc
			break
		}
	}
	if crt == nil {
		return order.Order{}, store.ErrEmptyCart
	}

	lines := []cart.Item{}
	for _, it := range r.s.CartItems {
		if it.CartID == crt.ID {
			lines = append(lines, it)
		}
	}
	if len(lines) == 0 {
		return order.Order{}, store.ErrEmptyCart
	}
	sort.Slice(lines, func(i, j int) bool { return lines[i].ID < lines[j].ID })

	var subtotal float64
	for _, it := range lines {
		p, ok := r.s.Products[it.ProductID]
		if !ok {
			continue
		}
		subtotal += p.Price * float64(it.Qty)
	}
	subtotal = round2(subtotal)

	if in.Discount > subtotal {
		return order.Order{}, store.ErrInvalidInput
	}

	var shipping float64
	if subtotal < r.freeShippingMin {
		shipping = r.shippingFee
	}

	now := time.Now()
	o := order.Order{
		ID:            r.s.NextID("orders"),
		CustomerName:  in.CustomerName,
		Email:         in.Email,
		Phone:         in.Phone,
		ShippingAddr:  in.ShippingAddr,
		City:          in.City,
		PostalCode:    in.PostalCode,
		PaymentMethod: in.PaymentMethod,
		Subtotal:      subtotal,
		ShippingFee:   shipping,
		Discount:      round2(in.Discount),
		Total:         round2(subtotal + shipping - in.Discount),
		Status:        order.StatusPending,
		CreatedAt:     now,
	}
	o.OrderNumber = util.OrderNumber(o.ID, now)

	for _, it := range lines {
		p, ok := r.s.Products[it.ProductID]
		if !ok {
			continue
		}
		o.Items = append(o.Items, order.Item{
			ID:        r.s.NextID("order_items"),
			OrderID:   o.ID,
			ProductID: p.ID,
			Product:   p.Name,
			Price:     p.Price,
			Qty:       it.Qty,
		})
	}

	r.s.Orders[o.ID] = o

	for _, it := range lines {
		delete(r.s.CartItems, it.ID)
	}

	return o, nil
}

func (r *Repo) ByNumber(ctx context.Context, number string) (order.Order, error) {
	r.s.RLock()
	defer r.s.RUnlock()

	for _, o := range r.s.Orders {
		if o.OrderNumber == number {
			return o, nil
		}
	}
	return order.Order{}, store.ErrNotFound
}

func (r *Repo) List(ctx context.Context) ([]order.Order, error) {
	r.s.RLock()
	defer r.s.RUnlock()

	out := make([]order.Order, 0, len(r.s.Orders))
	for _, o := range r.s.Orders {
		out = append(out, o)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}
