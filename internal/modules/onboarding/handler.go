package onboarding

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
	rg.POST("/connect/create-link", h.CreateLink)
	rg.GET("/connect/status/:userId", h.Status)
}

func (h *Handler) CreateLink(c *gin.Context) {
	userID := c.GetString("user_id")

	result, err := h.service.CreateLink(c.Request.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			response.Error(c, http.StatusNotFound, "USER_NOT_FOUND", "User not found")
		case errors.Is(err, ErrProvider):
			response.Error(c, http.StatusBadGateway, "PROVIDER_ERROR", "Payment provider request failed")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create onboarding link")
		}
		return
	}

	response.Success(c, http.StatusOK, result)
}

func (h *Handler) Status(c *gin.Context) {
	userID := c.Param("userId")

	result, err := h.service.Status(c.Request.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			response.Error(c, http.StatusNotFound, "USER_NOT_FOUND", "User not found")
		case errors.Is(err, ErrProvider):
			response.Error(c, http.StatusBadGateway, "PROVIDER_ERROR", "Payment provider request failed")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to check account status")
		}
		return
	}

	response.Success(c, http.StatusOK, result)
}
