package cart

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "glowcart/internal/domain/cart"
	"glowcart/internal/domain/catalog"
	"glowcart/internal/store"
)

func newRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	s := store.New()
	s.Lock()
	id := s.NextID("products")
	s.Products[id] = catalog.Product{ID: id, Name: "Vitamin C Serum", Slug: "vitamin-c-serum", Price: 45.99, StockQty: 10}
	s.Unlock()

	h := NewHandler(NewRepo(s, 5.99, 50))

	r := gin.New()
	r.GET("/api/cart", h.Get)
	r.DELETE("/api/cart", h.Clear)
	r.POST("/api/cart/items", h.AddItem)
	r.PATCH("/api/cart/items/:id", h.UpdateQty)
	r.DELETE("/api/cart/items/:id", h.RemoveItem)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestGetMintsSessionWhenAbsent(t *testing.T) {
	r := newRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/cart", "")
	require.Equal(t, http.StatusOK, w.Code)

	var crt domain.Cart
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &crt))
	assert.NotEmpty(t, crt.SessionID)
	assert.Empty(t, crt.Items)
}

func TestAddItemEndToEnd(t *testing.T) {
	r := newRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/cart/items",
		`{"sessionId":"s1","productId":1,"quantity":2}`)
	require.Equal(t, http.StatusCreated, w.Code)

	var crt domain.Cart
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &crt))
	require.Len(t, crt.Items, 1)
	assert.Equal(t, 2, crt.Items[0].Qty)
	assert.Equal(t, "Vitamin C Serum", crt.Items[0].Product)
	assert.InDelta(t, 91.98, crt.Totals.Subtotal, 1e-9)
}

func TestAddItemUnknownProductIs404(t *testing.T) {
	r := newRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/cart/items",
		`{"sessionId":"s1","productId":999,"quantity":1}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAddItemMissingFieldsIs400(t *testing.T) {
	r := newRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/cart/items", `{"productId":1}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateQtyValidation(t *testing.T) {
	r := newRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/cart/items",
		`{"sessionId":"s1","productId":1,"quantity":1}`)
	require.Equal(t, http.StatusCreated, w.Code)
	var crt domain.Cart
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &crt))
	itemID := crt.Items[0].ID

	w = doJSON(t, r, http.MethodPatch, fmt.Sprintf("/api/cart/items/%d", itemID), `{"quantity":120}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, r, http.MethodPatch, fmt.Sprintf("/api/cart/items/%d", itemID), `{"quantity":5}`)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &crt))
	assert.Equal(t, 5, crt.Items[0].Qty)

	w = doJSON(t, r, http.MethodPatch, "/api/cart/items/999", `{"quantity":5}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRemoveItemRespondsNoContent(t *testing.T) {
	r := newRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/cart/items",
		`{"sessionId":"s1","productId":1,"quantity":1}`)
	require.Equal(t, http.StatusCreated, w.Code)
	var crt domain.Cart
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &crt))

	w = doJSON(t, r, http.MethodDelete, fmt.Sprintf("/api/cart/items/%d", crt.Items[0].ID), "")
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())
}

func TestClearRequiresSessionID(t *testing.T) {
	r := newRouter(t)

	w := doJSON(t, r, http.MethodDelete, "/api/cart", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, r, http.MethodDelete, "/api/cart?sessionId=s1", "")
	assert.Equal(t, http.StatusNoContent, w.Code)
}
