package onboarding

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"marketplace/internal/audit"
	"marketplace/internal/domain"
	"marketplace/internal/store"
)

type Service struct {
	store    store.Store
	provider AccountProvider
	audit    *audit.Recorder
	baseURL  string
	logger   *zap.Logger
}

func NewService(st store.Store, provider AccountProvider, rec *audit.Recorder, baseURL string, logger *zap.Logger) *Service {
	return &Service{store: st, provider: provider, audit: rec, baseURL: baseURL, logger: logger}
}

// CreateLink lazily creates a connected account for the user and
// returns a hosted onboarding URL. The provider round-trips happen
// outside the store's critical section.
func (s *Service) CreateLink(ctx context.Context, userID string) (*CreateLinkResult, error) {
	var accountID string
	err := s.store.View(ctx, func(doc *domain.Document) error {
		user := doc.UserByID(userID)
		if user == nil {
			return ErrNotFound
		}
		accountID = user.StripeAccountID
		return nil
	})
	if err != nil {
		return nil, err
	}

	if accountID == "" {
		accountID, err = s.provider.CreateAccount(ctx)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrProvider, err)
		}

		err = s.store.Update(ctx, func(doc *domain.Document) error {
			user := doc.UserByID(userID)
			if user == nil {
				return ErrNotFound
			}
			// Another request may have won the race; keep its account.
			if user.StripeAccountID != "" {
				accountID = user.StripeAccountID
				return nil
			}
			user.StripeAccountID = accountID
			s.audit.Record(ctx, doc, domain.ActionAccountCreated, accountID, userID)
			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	link, err := s.provider.CreateOnboardingLink(ctx, accountID,
		s.baseURL+"/onboarding-refresh", s.baseURL+"/onboarding-done")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrProvider, err)
	}

	return &CreateLinkResult{URL: link, AccountID: accountID}, nil
}

// Status reports whether the user's connected account exists and has
// finished onboarding.
func (s *Service) Status(ctx context.Context, userID string) (*StatusResult, error) {
	var accountID string
	err := s.store.View(ctx, func(doc *domain.Document) error {
		user := doc.UserByID(userID)
		if user == nil {
			return ErrNotFound
		}
		accountID = user.StripeAccountID
		return nil
	})
	if err != nil {
		return nil, err
	}

	if accountID == "" {
		return &StatusResult{Connected: false}, nil
	}

	verified, err := s.provider.IsAccountVerified(ctx, accountID)
	if err != nil {
		s.logger.Warn("account verification check failed", zap.String("account_id", accountID), zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrProvider, err)
	}

	return &StatusResult{Connected: verified, AccountID: accountID}, nil
}
