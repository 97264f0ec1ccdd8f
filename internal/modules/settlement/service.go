package settlement

import (
	"context"

	"go.uber.org/zap"

	"marketplace/internal/audit"
	"marketplace/internal/domain"
	"marketplace/internal/metrics"
	"marketplace/internal/store"
)

// Event is the correlation key echoed back by the payment provider on
// completion: the transaction kind plus the booking/order id.
type Event struct {
	Kind domain.TransactionKind
	ID   string
}

// auditBy marks reconciler-driven transitions in the audit trail.
const auditBy = "stripe"

type Service struct {
	store  store.Store
	audit  *audit.Recorder
	logger *zap.Logger
}

func NewService(st store.Store, rec *audit.Recorder, logger *zap.Logger) *Service {
	return &Service{store: st, audit: rec, logger: logger}
}

// ApplyPaymentCompleted advances the referenced transaction to its
// settled state. Safe under at-least-once, out-of-order delivery:
// unknown correlation keys and already-settled transactions are logged
// no-ops. Only a store failure is an error.
func (s *Service) ApplyPaymentCompleted(ctx context.Context, ev Event) error {
	return s.store.Update(ctx, func(doc *domain.Document) error {
		switch ev.Kind {
		case domain.TxRent:
			return s.settleBooking(ctx, doc, ev.ID)
		case domain.TxSell:
			return s.settleOrder(ctx, doc, ev.ID)
		default:
			s.logger.Info("dropping payment event with unknown kind", zap.String("kind", string(ev.Kind)))
			return nil
		}
	})
}

func (s *Service) settleBooking(ctx context.Context, doc *domain.Document, id string) error {
	b := doc.BookingByID(id)
	if b == nil {
		s.logger.Info("dropping payment event for unknown booking", zap.String("booking_id", id))
		return nil
	}
	if b.Status == domain.BookingApproved || b.Status == domain.BookingCompleted {
		s.logger.Info("duplicate payment event for settled booking", zap.String("booking_id", id))
		return nil
	}
	if b.Status == domain.BookingCancelled {
		s.logger.Warn("payment event for cancelled booking ignored", zap.String("booking_id", id))
		return nil
	}

	// No owner-approval step: payment completion approves the rental.
	b.Status = domain.BookingApproved
	s.audit.Record(ctx, doc, domain.ActionRentPaidApproved, id, auditBy)
	metrics.PaymentsSettledTotal.WithLabelValues(string(domain.TxRent)).Inc()
	s.logger.Info("booking approved on payment completion", zap.String("booking_id", id))
	return nil
}

func (s *Service) settleOrder(ctx context.Context, doc *domain.Document, id string) error {
	o := doc.OrderByID(id)
	if o == nil {
		s.logger.Info("dropping payment event for unknown order", zap.String("order_id", id))
		return nil
	}
	if o.Status == domain.OrderPaid || o.Status == domain.OrderCompleted {
		s.logger.Info("duplicate payment event for settled order", zap.String("order_id", id))
		return nil
	}
	if o.Status == domain.OrderCancelled {
		s.logger.Warn("payment event for cancelled order ignored", zap.String("order_id", id))
		return nil
	}

	o.Status = domain.OrderPaid
	s.audit.Record(ctx, doc, domain.ActionSellPaid, id, auditBy)
	metrics.PaymentsSettledTotal.WithLabelValues(string(domain.TxSell)).Inc()
	s.logger.Info("order paid on payment completion", zap.String("order_id", id))
	return nil
}
