package listing

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"marketplace/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterPublicRoutes(r *gin.Engine) {
	r.GET("/items", h.List)
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/items", h.Create)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	ownerID := c.GetString("user_id")
	item, err := h.service.Create(c.Request.Context(), ownerID, req)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidMode):
			response.Error(c, http.StatusBadRequest, "INVALID_MODE", "Mode must be rent or sell")
		case errors.Is(err, ErrInvalidTerms):
			response.Error(c, http.StatusBadRequest, "INVALID_TERMS", "Pricing terms do not match the item mode")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create item")
		}
		return
	}

	response.Success(c, http.StatusCreated, item)
}

func (h *Handler) List(c *gin.Context) {
	items, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list items")
		return
	}
	response.Success(c, http.StatusOK, items)
}
