package cart

import (
	"context"
	"math"
	"sort"
	"time"

	"glowcart/internal/domain/cart"
	"glowcart/internal/store"
)

// Repo is the server-authoritative cart manager. A cart is keyed by an
// opaque session id; clients hold only that id and whatever the last
// response gave them.
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

// getOrCreate returns the session's cart row, creating it on first
// touch. Caller must hold the write lock.
func (r *Repo) getOrCreate(sessionID string) cart.Cart {
	for _, c := range r.s.Carts {
		if c.SessionID == sessionID {
			return c
		}
	}
	c := cart.Cart{
		ID:        r.s.NextID("carts"),
		SessionID: sessionID,
		CreatedAt: time.Now(),
	}
	r.s.Carts[c.ID] = c
	return c
}

// assemble joins product detail into the cart's lines and saved items
// and computes totals. Caller must hold at least the read lock.
func (r *Repo) assemble(c cart.Cart) cart.Cart {
	c.Items = []cart.Item{}
	c.SavedItems = []cart.SavedItem{}

	for _, it := range r.s.CartItems {
		if it.CartID != c.ID {
			continue
		}
		if p, ok := r.s.Products[it.ProductID]; ok {
			it.Product = p.Name
			it.Slug = p.Slug
			it.Image = p.Image
			it.Price = p.Price
			it.LineTotal = round2(p.Price * float64(it.Qty))
			it.StockQty = p.StockQty
		}
		c.Items = append(c.Items, it)
	}
	sort.Slice(c.Items, func(i, j int) bool { return c.Items[i].ID < c.Items[j].ID })

	for _, sv := range r.s.SavedItems {
		if sv.CartID != c.ID {
			continue
		}
		if p, ok := r.s.Products[sv.ProductID]; ok {
			sv.Product = p.Name
			sv.Slug = p.Slug
			sv.Image = p.Image
			sv.Price = p.Price
		}
		c.SavedItems = append(c.SavedItems, sv)
	}
	sort.Slice(c.SavedItems, func(i, j int) bool { return c.SavedItems[i].ID < c.SavedItems[j].ID })

	c.Totals = r.totals(c.Items)
	return c
}

func (r *Repo) totals(items []cart.Item) cart.Totals {
	var t cart.Totals
	for _, it := range items {
		t.Subtotal += it.Price * float64(it.Qty)
		t.ItemCount += it.Qty
	}
	t.Subtotal = round2(t.Subtotal)
	if t.ItemCount > 0 && t.Subtotal < r.freeShippingMin {
		t.ShippingFee = r.shippingFee
	}
	t.Total = round2(t.Subtotal + t.ShippingFee)
	return t
}

// Get fetches the session's cart, creating an empty one on first use.
func (r *Repo) Get(ctx context.Context, sessionID string) (cart.Cart, error) {
	r.s.Lock()
	defer r.s.Unlock()

	return r.assemble(r.getOrCreate(sessionID)), nil
}

// AddItem puts a product into the session's cart. An existing line for
// the same product increments instead of duplicating (one line per
// (cart, product) pair). The product leaves the saved-for-later list
// if it was there: an item is never in both sets at once.
func (r *Repo) AddItem(ctx context.Context, sessionID string, productID int64, qty int) (cart.Cart, error) {
	if qty < 1 || qty > store.MaxItemQty {
		return cart.Cart{}, store.ErrInvalidQuantity
	}

	r.s.Lock()
	defer r.s.Unlock()

	if _, ok := r.s.Products[productID]; !ok {
		return cart.Cart{}, store.ErrNotFound
	}

	c := r.getOrCreate(sessionID)

	if err := r.addLocked(c.ID, productID, qty); err != nil {
		return cart.Cart{}, err
	}
	return r.assemble(c), nil
}

// addLocked is the shared add-or-increment path. Caller must hold the
// write lock and have checked the product exists.
func (r *Repo) addLocked(cartID, productID int64, qty int) error {
	for id, it := range r.s.CartItems {
		if it.CartID == cartID && it.ProductID == productID {
			if it.Qty+qty > store.MaxItemQty {
				return store.ErrInvalidQuantity
			}
			it.Qty += qty
			r.s.CartItems[id] = it
			return nil
		}
	}

	it := cart.Item{
		ID:        r.s.NextID("cart_items"),
		CartID:    cartID,
		ProductID: productID,
		Qty:       qty,
	}
	r.s.CartItems[it.ID] = it

	// mutual exclusion with saved-for-later
	for id, sv := range r.s.SavedItems {
		if sv.CartID == cartID && sv.ProductID == productID {
			delete(r.s.SavedItems, id)
		}
	}
	return nil
}

// UpdateQty replaces a line's quantity. Out-of-range values are
// rejected here, the single authoritative validation point.
func (r *Repo) UpdateQty(ctx context.Context, itemID int64, qty int) (cart.Cart, error) {
	if qty < 1 || qty > store.MaxItemQty {
		return cart.Cart{}, store.ErrInvalidQuantity
	}

	r.s.Lock()
	defer r.s.Unlock()

	it, ok := r.s.CartItems[itemID]
	if !ok {
		return cart.Cart{}, store.ErrNotFound
	}
	it.Qty = qty
	r.s.CartItems[itemID] = it

	return r.assemble(r.s.Carts[it.CartID]), nil
}

func (r *Repo) RemoveItem(ctx context.Context, itemID int64) error {
	r.s.Lock()
	defer r.s.Unlock()

	if _, ok := r.s.CartItems[itemID]; !ok {
		return store.ErrNotFound
	}
	delete(r.s.CartItems, itemID)
	return nil
}

// SaveForLater moves a cart line to the saved list, stamping the time.
// The guard against duplicate saved entries is structural: the line is
// removed in the same locked unit that inserts the saved record.
func (r *Repo) SaveForLater(ctx context.Context, itemID int64) (cart.Cart, error) {
	r.s.Lock()
	defer r.s.Unlock()

	it, ok := r.s.CartItems[itemID]
	if !ok {
		return cart.Cart{}, store.ErrNotFound
	}

	for _, sv := range r.s.SavedItems {
		if sv.CartID == it.CartID && sv.ProductID == it.ProductID {
			// already saved; just drop the cart line
			delete(r.s.CartItems, itemID)
			return r.assemble(r.s.Carts[it.CartID]), nil
		}
	}

	sv := cart.SavedItem{
		ID:        r.s.NextID("saved_items"),
		CartID:    it.CartID,
		ProductID: it.ProductID,
		SavedAt:   time.Now(),
	}
	r.s.SavedItems[sv.ID] = sv
	delete(r.s.CartItems, itemID)

	return r.assemble(r.s.Carts[it.CartID]), nil
}

// MoveToCart returns a saved item to the cart with quantity 1.
func (r *Repo) MoveToCart(ctx context.Context, savedID int64) (cart.Cart, error) {
	r.s.Lock()
	defer r.s.Unlock()

	sv, ok := r.s.SavedItems[savedID]
	if !ok {
		return cart.Cart{}, store.ErrNotFound
	}
	delete(r.s.SavedItems, savedID)

	if _, ok := r.s.Products[sv.ProductID]; ok {
		if err := r.addLocked(sv.CartID, sv.ProductID, 1); err != nil {
			return cart.Cart{}, err
		}
	}
	return r.assemble(r.s.Carts[sv.CartID]), nil
}

func (r *Repo) RemoveSaved(ctx context.Context, savedID int64) error {
	r.s.Lock()
	defer r.s.Unlock()

	if _, ok := r.s.SavedItems[savedID]; !ok {
		return store.ErrNotFound
	}
	delete(r.s.SavedItems, savedID)
	return nil
}

// Clear deletes the cart's item rows outright. The session id and the
// saved-for-later list survive; nothing is orphaned. An unknown session
// is a no-op.
func (r *Repo) Clear(ctx context.Context, sessionID string) error {
	r.s.Lock()
	defer r.s.Unlock()

	var cartID int64
	for _, c := range r.s.Carts {
		if c.SessionID == sessionID {
			cartID = c.ID
			break
		}
	}
	if cartID == 0 {
		return nil
	}
	for id, it := range r.s.CartItems {
		if it.CartID == cartID {
			delete(r.s.CartItems, id)
		}
	}
	return nil
}
