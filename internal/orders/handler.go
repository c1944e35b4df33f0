package orders

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"glowcart/internal/store"
)

type Handler struct {
	repo *Repo
}

func NewHandler(repo *Repo) *Handler {
	return &Handler{repo: repo}
}

type CheckoutReq struct {
	SessionID     string  `json:"sessionId" binding:"required"`
	CustomerName  string  `json:"customer_name" binding:"required"`
	Email         string  `json:"email" binding:"required,email"`
	Phone         string  `json:"phone"`
	ShippingAddr  string  `json:"shipping_address" binding:"required"`
	City          string  `json:"city" binding:"required"`
	PostalCode    string  `json:"postal_code"`
	PaymentMethod string  `json:"payment_method" binding:"required,oneof=card cod bank_transfer"`
	Discount      float64 `json:"discount" binding:"gte=0"`
}

func (h *Handler) Checkout(c *gin.Context) {
	var req CheckoutReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	o, err := h.repo.Checkout(c.Request.Context(), CheckoutInput{
		SessionID:     req.SessionID,
		CustomerName:  req.CustomerName,
		Email:         req.Email,
		Phone:         req.Phone,
		ShippingAddr:  req.ShippingAddr,
		City:          req.City,
		PostalCode:    req.PostalCode,
		PaymentMethod: req.PaymentMethod,
		Discount:      req.Discount,
	})
	if err != nil {
		switch {
		case errors.Is(err, store.ErrEmptyCart):
			c.JSON(http.StatusBadRequest, gin.H{"error": "cart is empty"})
		case errors.Is(err, store.ErrInvalidInput):
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid discount"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create order"})
		}
		return
	}
	c.JSON(http.StatusCreated, o)
}

func (h *Handler) GetByNumber(c *gin.Context) {
	o, err := h.repo.ByNumber(c.Request.Context(), c.Param("number"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
		return
	}
	c.JSON(http.StatusOK, o)
}

func (h *Handler) AdminList(c *gin.Context) {
	items, err := h.repo.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list orders"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}
