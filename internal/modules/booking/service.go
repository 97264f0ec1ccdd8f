package booking

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"marketplace/internal/audit"
	"marketplace/internal/domain"
	"marketplace/internal/metrics"
	"marketplace/internal/store"
)

type Service struct {
	store  store.Store
	audit  *audit.Recorder
	logger *zap.Logger
}

func NewService(st store.Store, rec *audit.Recorder, logger *zap.Logger) *Service {
	return &Service{store: st, audit: rec, logger: logger}
}

// Create validates the request and inserts a pending booking. The
// conflict check runs inside the same store update as the insert, so two
// concurrent requests for overlapping ranges cannot both pass it.
func (s *Service) Create(ctx context.Context, req CreateBookingRequest) (*domain.Booking, error) {
	var created domain.Booking

	err := s.store.Update(ctx, func(doc *domain.Document) error {
		item := doc.ItemByID(req.ItemID)
		if item == nil {
			return ErrItemNotFound
		}
		if item.Mode != domain.ModeRent {
			return ErrInvalidMode
		}
		if !req.StartDate.Before(req.EndDate) {
			return ErrInvalidDateRange
		}
		if HasConflict(doc.Bookings, req.ItemID, req.StartDate, req.EndDate) {
			return ErrConflict
		}

		created = domain.Booking{
			ID:         uuid.NewString(),
			ItemID:     item.ID,
			OwnerID:    item.OwnerID,
			BorrowerID: req.BorrowerID,
			StartDate:  req.StartDate,
			EndDate:    req.EndDate,
			Status:     domain.BookingPending,
			CreatedAt:  time.Now().UTC(),
		}
		doc.Bookings = append(doc.Bookings, created)
		s.audit.Record(ctx, doc, domain.ActionRequestBooking, created.ID, req.BorrowerID)
		return nil
	})
	if err != nil {
		metrics.OperationErrorsTotal.WithLabelValues("create_booking").Inc()
		return nil, err
	}

	metrics.BookingsCreatedTotal.Inc()
	s.logger.Info("booking created",
		zap.String("booking_id", created.ID),
		zap.String("item_id", created.ItemID),
	)
	return &created, nil
}

// Cancel moves a booking to cancelled. Legal only before settlement;
// settled or terminal bookings are rejected.
func (s *Service) Cancel(ctx context.Context, bookingID, by string) (*domain.Booking, error) {
	var cancelled domain.Booking

	err := s.store.Update(ctx, func(doc *domain.Document) error {
		b := doc.BookingByID(bookingID)
		if b == nil {
			return ErrNotFound
		}
		if !b.Status.CanTransitionTo(domain.BookingCancelled) {
			return ErrAlreadySettled
		}
		b.Status = domain.BookingCancelled
		cancelled = *b
		s.audit.Record(ctx, doc, domain.ActionCancelBooking, bookingID, by)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &cancelled, nil
}

func (s *Service) GetByID(ctx context.Context, bookingID string) (*domain.Booking, error) {
	var out *domain.Booking
	err := s.store.View(ctx, func(doc *domain.Document) error {
		b := doc.BookingByID(bookingID)
		if b == nil {
			return ErrNotFound
		}
		copied := *b
		out = &copied
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
