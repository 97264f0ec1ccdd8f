package checkout

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
	rg.POST("/pay/checkout", h.BeginCheckout)
}

func (h *Handler) BeginCheckout(c *gin.Context) {
	var req CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	result, err := h.service.BeginCheckout(c.Request.Context(), req.Type, req.ID)
	if err != nil {
		switch {
		case errors.Is(err, ErrUnknownKind):
			response.Error(c, http.StatusBadRequest, "UNKNOWN_TYPE", "Transaction type must be rent or sell")
		case errors.Is(err, ErrNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Transaction not found")
		case errors.Is(err, ErrInvalidPricing):
			response.Error(c, http.StatusBadRequest, "INVALID_PRICING", "Item is missing price fields for its mode")
		case errors.Is(err, ErrSellerNotOnboarded):
			response.Error(c, http.StatusBadRequest, "SELLER_NOT_ONBOARDED", "Seller has no verified payment account")
		case errors.Is(err, ErrAlreadySettled):
			response.Error(c, http.StatusConflict, "ALREADY_SETTLED", "Transaction is already settled")
		case errors.Is(err, ErrPaymentProvider):
			response.Error(c, http.StatusBadGateway, "PAYMENT_PROVIDER_ERROR", "Payment provider request failed")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to begin checkout")
		}
		return
	}

	response.Success(c, http.StatusOK, result)
}
