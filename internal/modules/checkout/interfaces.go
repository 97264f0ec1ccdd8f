package checkout

import (
	"context"

	"marketplace/internal/stripe"
)

// PaymentProvider is the external settlement capability: destination
// account verification and hosted checkout session creation.
type PaymentProvider interface {
	IsAccountVerified(ctx context.Context, accountID string) (bool, error)
	CreateCheckoutSession(ctx context.Context, req stripe.SessionRequest) (string, error)
}
