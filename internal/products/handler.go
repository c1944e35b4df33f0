package products

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"glowcart/internal/store"
)

type Handler struct {
	repo *Repo
}

func NewHandler(repo *Repo) *Handler {
	return &Handler{repo: repo}
}

func parseFilters(c *gin.Context) Filters {
	f := Filters{
		Category: c.Query("category"),
		Search:   c.Query("search"),
		Sort:     c.Query("sort"),
	}
	if v := c.Query("brand"); v != "" {
		f.Brands = strings.Split(v, ",")
	}
	if v, err := strconv.ParseFloat(c.Query("minPrice"), 64); err == nil {
		f.MinPrice = &v
	}
	if v, err := strconv.ParseFloat(c.Query("maxPrice"), 64); err == nil {
		f.MaxPrice = &v
	}
	if v, err := strconv.ParseFloat(c.Query("minRating"), 64); err == nil {
		f.MinRating = &v
	}
	if v, err := strconv.ParseBool(c.Query("bestSeller")); err == nil {
		f.BestSeller = &v
	}
	if v, err := strconv.ParseBool(c.Query("new")); err == nil {
		f.New = &v
	}
	if v, err := strconv.ParseBool(c.Query("organic")); err == nil {
		f.Organic = &v
	}
	if v, err := strconv.ParseBool(c.Query("featured")); err == nil {
		f.Featured = &v
	}
	// popular=true is shorthand for the popular sort
	if v, _ := strconv.ParseBool(c.Query("popular")); v && f.Sort == "" {
		f.Sort = "popular"
	}
	if v, err := strconv.Atoi(c.Query("page")); err == nil {
		f.Page = v
	}
	if v, err := strconv.Atoi(c.Query("limit")); err == nil {
		f.Limit = v
	}
	return f
}

func (h *Handler) List(c *gin.Context) {
	page, err := h.repo.List(c.Request.Context(), parseFilters(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list products"})
		return
	}
	c.JSON(http.StatusOK, page)
}

func (h *Handler) Get(c *gin.Context) {
	p, err := h.repo.BySlugOrID(c.Request.Context(), c.Param("slug"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
		return
	}
	c.JSON(http.StatusOK, p)
}

func limitQuery(c *gin.Context) int {
	v, err := strconv.Atoi(c.Query("limit"))
	if err != nil {
		return 0
	}
	return v
}

func (h *Handler) BestSellers(c *gin.Context) {
	items, err := h.repo.BestSellers(c.Request.Context(), limitQuery(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list best sellers"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

func (h *Handler) NewArrivals(c *gin.Context) {
	items, err := h.repo.NewArrivals(c.Request.Context(), limitQuery(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list new arrivals"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

func (h *Handler) Related(c *gin.Context) {
	p, err := h.repo.BySlugOrID(c.Request.Context(), c.Param("slug"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
		return
	}
	items, err := h.repo.Related(c.Request.Context(), p.ID, limitQuery(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list related products"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

type CreateProductReq struct {
	Name          string   `json:"name" binding:"required"`
	Description   string   `json:"description"`
	Price         float64  `json:"price" binding:"gte=0"`
	OriginalPrice *float64 `json:"original_price" binding:"omitempty,gte=0"`
	Image         string   `json:"image"`
	CategoryID    int64    `json:"category_id" binding:"required"`
	BrandID       int64    `json:"brand_id" binding:"required"`
	StockQty      int      `json:"stock_qty" binding:"gte=0"`
	IsBestSeller  bool     `json:"is_best_seller"`
	IsNew         bool     `json:"is_new"`
	IsOrganic     bool     `json:"is_organic"`
	IsFeatured    bool     `json:"is_featured"`
}

func (h *Handler) AdminCreate(c *gin.Context) {
	var req CreateProductReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	p, err := h.repo.Create(c.Request.Context(), CreateInput{
		Name:          req.Name,
		Description:   req.Description,
		Price:         req.Price,
		OriginalPrice: req.OriginalPrice,
		Image:         req.Image,
		CategoryID:    req.CategoryID,
		BrandID:       req.BrandID,
		StockQty:      req.StockQty,
		IsBestSeller:  req.IsBestSeller,
		IsNew:         req.IsNew,
		IsOrganic:     req.IsOrganic,
		IsFeatured:    req.IsFeatured,
	})
	if err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			c.JSON(http.StatusBadRequest, gin.H{"error": "unknown category or brand"})
		case errors.Is(err, store.ErrConflict):
			c.JSON(http.StatusConflict, gin.H{"error": "product slug already exists"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create product"})
		}
		return
	}
	c.JSON(http.StatusCreated, p)
}
