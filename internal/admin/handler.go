package admin

import (
	"net/http"
	"sort"

	"github.com/gin-gonic/gin"

	"glowcart/internal/store"
)

// Handler serves the dashboard aggregates. It reads the store
// directly; there is no mutation on this surface.
type Handler struct {
	s *store.Store
}

func NewHandler(s *store.Store) *Handler {
	return &Handler{s: s}
}

type lowStockProduct struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	StockQty int    `json:"stock_qty"`
}

func (h *Handler) Dashboard(c *gin.Context) {
	h.s.RLock()
	defer h.s.RUnlock()

	var revenue float64
	pending := 0
	for _, o := range h.s.Orders {
		revenue += o.Total
		if o.Status == "pending" {
			pending++
		}
	}

	pendingConsults := 0
	for _, cs := range h.s.Consultations {
		if cs.Status == "pending" {
			pendingConsults++
		}
	}

	low := []lowStockProduct{}
	for _, p := range h.s.Products {
		if p.StockQty < 30 {
			low = append(low, lowStockProduct{ID: p.ID, Name: p.Name, StockQty: p.StockQty})
		}
	}
	sort.Slice(low, func(i, j int) bool { return low[i].StockQty < low[j].StockQty })

	c.JSON(http.StatusOK, gin.H{
		"products":              len(h.s.Products),
		"orders":                len(h.s.Orders),
		"pending_orders":        pending,
		"revenue":               revenue,
		"reviews":               len(h.s.Reviews),
		"users":                 len(h.s.Users),
		"pending_consultations": pendingConsults,
		"low_stock":             low,
	})
}
