package checkout

import "marketplace/internal/domain"

type CheckoutRequest struct {
	Type domain.TransactionKind `json:"type" binding:"required"`
	ID   string                 `json:"id" binding:"required"`
}

type CheckoutResult struct {
	URL    string `json:"url"`
	Amount int64  `json:"amount"`
	Fee    int64  `json:"fee"`
}
