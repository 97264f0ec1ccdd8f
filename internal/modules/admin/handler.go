package admin

import (
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
	rg.GET("/audit", h.AuditTail)
	rg.GET("/bookings", h.RecentBookings)
	rg.GET("/orders", h.RecentOrders)
	rg.GET("/items/search", h.SearchItems)
}

func (h *Handler) AuditTail(c *gin.Context) {
	entries, err := h.service.AuditTail(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to read audit log")
		return
	}
	response.Success(c, http.StatusOK, entries)
}

func (h *Handler) RecentBookings(c *gin.Context) {
	bookings, err := h.service.RecentBookings(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list bookings")
		return
	}
	response.Success(c, http.StatusOK, bookings)
}

func (h *Handler) RecentOrders(c *gin.Context) {
	orders, err := h.service.RecentOrders(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list orders")
		return
	}
	response.Success(c, http.StatusOK, orders)
}

func (h *Handler) SearchItems(c *gin.Context) {
	items, err := h.service.SearchItems(c.Request.Context(), c.Query("q"))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to search items")
		return
	}
	response.Success(c, http.StatusOK, items)
}
