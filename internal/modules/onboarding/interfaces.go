package onboarding

import "context"

// AccountProvider is the subset of the payment client used for seller
// onboarding.
type AccountProvider interface {
	CreateAccount(ctx context.Context) (string, error)
	CreateOnboardingLink(ctx context.Context, accountID, refreshURL, returnURL string) (string, error)
	IsAccountVerified(ctx context.Context, accountID string) (bool, error)
}
