// Package store holds every entity of the shop in process memory.
// A single Store is created in main and injected into the feature
// repos; tests build their own isolated instances.
package store

import (
	"errors"
	"sync"
	"time"

	"glowcart/internal/domain/cart"
	"glowcart/internal/domain/catalog"
	"glowcart/internal/domain/consultation"
	"glowcart/internal/domain/content"
	"glowcart/internal/domain/order"
	"glowcart/internal/domain/user"
)

var (
	ErrNotFound        = errors.New("not found")
	ErrConflict        = errors.New("duplicate key")
	ErrInvalidQuantity = errors.New("quantity must be between 1 and 99")
	ErrEmptyCart       = errors.New("cart is empty")
	ErrInvalidInput    = errors.New("invalid input")
)

// MaxItemQty caps a single cart line. Enforced here and nowhere else.
const MaxItemQty = 99

type RefreshToken struct {
	UserID    int64
	ExpiresAt time.Time
	RevokedAt *time.Time
}

// Store is the in-memory data store. Readers take RLock; every
// mutation, including multi-step ones like order creation, holds the
// write lock for its whole unit so partial state is never observable.
type Store struct {
	sync.RWMutex

	Products      map[int64]catalog.Product
	Categories    map[int64]catalog.Category
	Brands        map[int64]catalog.Brand
	SkinTypes     map[int64]catalog.SkinType
	SkinConcerns  map[int64]catalog.SkinConcern
	Reviews       map[int64]catalog.Review
	Carts         map[int64]cart.Cart
	CartItems     map[int64]cart.Item
	SavedItems    map[int64]cart.SavedItem
	Orders        map[int64]order.Order
	Consultations map[int64]consultation.Consultation
	BlogPosts     map[int64]content.BlogPost
	Testimonials  map[int64]content.Testimonial
	Users         map[int64]user.User

	// keyed by sha256 hash of the refresh token, never the token itself
	RefreshTokens map[string]RefreshToken

	seq map[string]int64
}

func New() *Store {
	return &Store{
		Products:      make(map[int64]catalog.Product),
		Categories:    make(map[int64]catalog.Category),
		Brands:        make(map[int64]catalog.Brand),
		SkinTypes:     make(map[int64]catalog.SkinType),
		SkinConcerns:  make(map[int64]catalog.SkinConcern),
		Reviews:       make(map[int64]catalog.Review),
		Carts:         make(map[int64]cart.Cart),
		CartItems:     make(map[int64]cart.Item),
		SavedItems:    make(map[int64]cart.SavedItem),
		Orders:        make(map[int64]order.Order),
		Consultations: make(map[int64]consultation.Consultation),
		BlogPosts:     make(map[int64]content.BlogPost),
		Testimonials:  make(map[int64]content.Testimonial),
		Users:         make(map[int64]user.User),
		RefreshTokens: make(map[string]RefreshToken),
		seq:           make(map[string]int64),
	}
}

// NextID hands out the next sequential identifier for a table.
// Identifiers start at 1, are never reused, and so double as a
// creation-order proxy. Caller must hold the write lock.
func (s *Store) NextID(table string) int64 {
	s.seq[table]++
	return s.seq[table]
}
