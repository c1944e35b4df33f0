package consultations

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	repo *Repo
}

func NewHandler(repo *Repo) *Handler {
	return &Handler{repo: repo}
}

type CreateConsultationReq struct {
	Name         string   `json:"name" binding:"required"`
	Email        string   `json:"email" binding:"required,email"`
	Phone        string   `json:"phone"`
	SkinType     string   `json:"skin_type" binding:"required"`
	SkinConcerns []string `json:"skin_concerns"`
	Notes        string   `json:"notes"`
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateConsultationReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	created, err := h.repo.Create(c.Request.Context(), CreateInput{
		Name:         req.Name,
		Email:        req.Email,
		Phone:        req.Phone,
		SkinType:     req.SkinType,
		SkinConcerns: req.SkinConcerns,
		Notes:        req.Notes,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to submit consultation"})
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *Handler) AdminList(c *gin.Context) {
	items, err := h.repo.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list consultations"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}
