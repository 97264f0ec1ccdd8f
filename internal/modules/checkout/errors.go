package checkout

import "errors"

var (
	ErrNotFound           = errors.New("transaction not found")
	ErrInvalidPricing     = errors.New("missing price fields for item mode")
	ErrSellerNotOnboarded = errors.New("seller has no verified payment account")
	ErrAlreadySettled     = errors.New("transaction already settled")
	ErrPaymentProvider    = errors.New("payment provider failure")
	ErrUnknownKind        = errors.New("unknown transaction kind")
)
