package checkout

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"marketplace/internal/audit"
	"marketplace/internal/domain"
	"marketplace/internal/metrics"
	"marketplace/internal/store"
	"marketplace/internal/stripe"
)

// Config is process-wide pricing/session configuration, read once at
// startup.
type Config struct {
	FeeBps   int64
	Currency string
	BaseURL  string
}

type Service struct {
	store    store.Store
	audit    *audit.Recorder
	provider PaymentProvider
	cfg      Config
	logger   *zap.Logger
}

func NewService(st store.Store, rec *audit.Recorder, provider PaymentProvider, cfg Config, logger *zap.Logger) *Service {
	return &Service{store: st, audit: rec, provider: provider, cfg: cfg, logger: logger}
}

// session is everything needed to open the provider checkout, assembled
// under the store lock before any network call is made.
type session struct {
	quote         Quote
	sellerAccount string
	actor         string
	metadata      map[string]string
	successURL    string
	cancelURL     string
}

// BeginCheckout prices the transaction, opens a provider checkout
// session carrying the correlation key in its metadata, and moves the
// transaction to payment_required. Provider calls happen outside the
// store's critical section; the status transition is re-validated when
// it commits.
func (s *Service) BeginCheckout(ctx context.Context, kind domain.TransactionKind, id string) (*CheckoutResult, error) {
	var sess session
	err := s.store.View(ctx, func(doc *domain.Document) error {
		var err error
		sess, err = s.prepare(doc, kind, id)
		return err
	})
	if err != nil {
		return nil, err
	}

	verified, err := s.provider.IsAccountVerified(ctx, sess.sellerAccount)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPaymentProvider, err)
	}
	if !verified {
		return nil, ErrSellerNotOnboarded
	}

	url, err := s.provider.CreateCheckoutSession(ctx, stripe.SessionRequest{
		Amount:             sess.quote.Amount,
		Fee:                sess.quote.Fee,
		Currency:           s.cfg.Currency,
		Description:        sess.quote.Description,
		DestinationAccount: sess.sellerAccount,
		SuccessURL:         sess.successURL,
		CancelURL:          sess.cancelURL,
		Metadata:           sess.metadata,
	})
	if err != nil {
		metrics.OperationErrorsTotal.WithLabelValues("begin_checkout").Inc()
		return nil, fmt.Errorf("%w: %v", ErrPaymentProvider, err)
	}

	err = s.store.Update(ctx, func(doc *domain.Document) error {
		switch kind {
		case domain.TxRent:
			b := doc.BookingByID(id)
			if b == nil {
				return ErrNotFound
			}
			if !b.Status.CanTransitionTo(domain.BookingPaymentRequired) {
				return ErrAlreadySettled
			}
			b.Status = domain.BookingPaymentRequired
			s.audit.Record(ctx, doc, domain.ActionCheckoutRent, id, sess.actor)
		case domain.TxSell:
			o := doc.OrderByID(id)
			if o == nil {
				return ErrNotFound
			}
			if !o.Status.CanTransitionTo(domain.OrderPaymentRequired) {
				return ErrAlreadySettled
			}
			o.Status = domain.OrderPaymentRequired
			s.audit.Record(ctx, doc, domain.ActionCheckoutSell, id, sess.actor)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	metrics.CheckoutsStartedTotal.WithLabelValues(string(kind)).Inc()
	s.logger.Info("checkout session created",
		zap.String("kind", string(kind)),
		zap.String("transaction_id", id),
		zap.Int64("amount", sess.quote.Amount),
		zap.Int64("fee", sess.quote.Fee),
	)
	return &CheckoutResult{URL: url, Amount: sess.quote.Amount, Fee: sess.quote.Fee}, nil
}

func (s *Service) prepare(doc *domain.Document, kind domain.TransactionKind, id string) (session, error) {
	switch kind {
	case domain.TxRent:
		b := doc.BookingByID(id)
		if b == nil {
			return session{}, ErrNotFound
		}
		if !b.Status.CanTransitionTo(domain.BookingPaymentRequired) {
			return session{}, ErrAlreadySettled
		}
		item := doc.ItemByID(b.ItemID)
		if item == nil {
			return session{}, ErrNotFound
		}
		account, err := s.sellerAccount(doc, item.OwnerID)
		if err != nil {
			return session{}, err
		}
		quote, err := QuoteRent(item, b.StartDate, b.EndDate, s.cfg.FeeBps)
		if err != nil {
			return session{}, err
		}
		return session{
			quote:         quote,
			sellerAccount: account,
			actor:         b.BorrowerID,
			metadata: map[string]string{
				"type":       string(domain.TxRent),
				"booking_id": b.ID,
				"item_id":    item.ID,
			},
			successURL: fmt.Sprintf("%s/?paid=1&type=rent&booking=%s", s.cfg.BaseURL, b.ID),
			cancelURL:  fmt.Sprintf("%s/?cancel=1&type=rent&booking=%s", s.cfg.BaseURL, b.ID),
		}, nil

	case domain.TxSell:
		o := doc.OrderByID(id)
		if o == nil {
			return session{}, ErrNotFound
		}
		if !o.Status.CanTransitionTo(domain.OrderPaymentRequired) {
			return session{}, ErrAlreadySettled
		}
		item := doc.ItemByID(o.ItemID)
		if item == nil {
			return session{}, ErrNotFound
		}
		account, err := s.sellerAccount(doc, o.SellerID)
		if err != nil {
			return session{}, err
		}
		quote, err := QuoteSell(item, s.cfg.FeeBps)
		if err != nil {
			return session{}, err
		}
		return session{
			quote:         quote,
			sellerAccount: account,
			actor:         o.BuyerID,
			metadata: map[string]string{
				"type":     string(domain.TxSell),
				"order_id": o.ID,
				"item_id":  item.ID,
			},
			successURL: fmt.Sprintf("%s/?paid=1&type=sell&order=%s", s.cfg.BaseURL, o.ID),
			cancelURL:  fmt.Sprintf("%s/?cancel=1&type=sell&order=%s", s.cfg.BaseURL, o.ID),
		}, nil
	}

	return session{}, ErrUnknownKind
}

func (s *Service) sellerAccount(doc *domain.Document, sellerID string) (string, error) {
	seller := doc.UserByID(sellerID)
	if seller == nil || seller.StripeAccountID == "" {
		return "", ErrSellerNotOnboarded
	}
	return seller.StripeAccountID, nil
}
