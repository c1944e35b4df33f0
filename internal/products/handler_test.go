package products

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"glowcart/internal/domain/catalog"
	"glowcart/internal/store"
)

func newRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	s := store.New()
	s.Lock()
	cat := s.NextID("categories")
	s.Categories[cat] = catalog.Category{ID: cat, Name: "Samples", Slug: "samples"}
	brand := s.NextID("brands")
	s.Brands[brand] = catalog.Brand{ID: brand, Name: "PureGlow", Slug: "pureglow"}
	s.Unlock()

	h := NewHandler(NewRepo(s))

	r := gin.New()
	r.POST("/api/products", h.AdminCreate)
	return r
}

func postJSON(t *testing.T, r *gin.Engine, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/products", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAdminCreateAcceptsZeroPrice(t *testing.T) {
	r := newRouter(t)

	// free samples are a real thing: price 0 is valid
	w := postJSON(t, r, `{"name":"Tester Sachet","price":0,"category_id":1,"brand_id":1}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var p catalog.Product
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &p))
	assert.Equal(t, 0.0, p.Price)
	assert.Equal(t, "tester-sachet", p.Slug)
}

func TestAdminCreateRejectsNegativePrice(t *testing.T) {
	r := newRouter(t)

	w := postJSON(t, r, `{"name":"Broken","price":-1,"category_id":1,"brand_id":1}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAdminCreateRejectsMissingName(t *testing.T) {
	r := newRouter(t)

	w := postJSON(t, r, `{"price":10,"category_id":1,"brand_id":1}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
