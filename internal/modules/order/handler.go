package order

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

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/orders", h.Create)
	rg.GET("/orders/:id", h.Get)
	rg.POST("/orders/:id/cancel", h.Cancel)
}

func (h *Handler) Get(c *gin.Context) {
	o, err := h.service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			response.Error(c, http.StatusNotFound, "ORDER_NOT_FOUND", "Order not found")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load order")
		}
		return
	}
	response.Success(c, http.StatusOK, o)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	o, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrItemNotFound):
			response.Error(c, http.StatusNotFound, "ITEM_NOT_FOUND", "Item not found")
		case errors.Is(err, ErrInvalidMode):
			response.Error(c, http.StatusBadRequest, "INVALID_MODE", "Item is not listed for sale")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create order")
		}
		return
	}

	response.Success(c, http.StatusCreated, o)
}

func (h *Handler) Cancel(c *gin.Context) {
	by := c.GetString("user_id")

	o, err := h.service.Cancel(c.Request.Context(), c.Param("id"), by)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			response.Error(c, http.StatusNotFound, "ORDER_NOT_FOUND", "Order not found")
		case errors.Is(err, ErrAlreadySettled):
			response.Error(c, http.StatusConflict, "ALREADY_SETTLED", "Order can no longer be cancelled")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to cancel order")
		}
		return
	}

	response.Success(c, http.StatusOK, o)
}
