package order

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

// Create inserts an order in created status. The price is snapshotted
// from the item's sale terms at this instant and never re-read.
func (s *Service) Create(ctx context.Context, req CreateOrderRequest) (*domain.Order, error) {
	var created domain.Order

	err := s.store.Update(ctx, func(doc *domain.Document) error {
		item := doc.ItemByID(req.ItemID)
		if item == nil {
			return ErrItemNotFound
		}
		if item.Mode != domain.ModeSell || item.Sale == nil {
			return ErrInvalidMode
		}

		created = domain.Order{
			ID:        uuid.NewString(),
			ItemID:    item.ID,
			BuyerID:   req.BuyerID,
			SellerID:  item.OwnerID,
			Price:     item.Sale.Price,
			Status:    domain.OrderCreated,
			CreatedAt: time.Now().UTC(),
		}
		doc.Orders = append(doc.Orders, created)
		s.audit.Record(ctx, doc, domain.ActionCreateOrder, created.ID, req.BuyerID)
		return nil
	})
	if err != nil {
		metrics.OperationErrorsTotal.WithLabelValues("create_order").Inc()
		return nil, err
	}

	metrics.OrdersCreatedTotal.Inc()
	s.logger.Info("order created",
		zap.String("order_id", created.ID),
		zap.String("item_id", created.ItemID),
	)
	return &created, nil
}

func (s *Service) Cancel(ctx context.Context, orderID, by string) (*domain.Order, error) {
	var cancelled domain.Order

	err := s.store.Update(ctx, func(doc *domain.Document) error {
		o := doc.OrderByID(orderID)
		if o == nil {
			return ErrNotFound
		}
		if !o.Status.CanTransitionTo(domain.OrderCancelled) {
			return ErrAlreadySettled
		}
		o.Status = domain.OrderCancelled
		cancelled = *o
		s.audit.Record(ctx, doc, domain.ActionCancelOrder, orderID, by)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &cancelled, nil
}

func (s *Service) GetByID(ctx context.Context, orderID string) (*domain.Order, error) {
	var out *domain.Order
	err := s.store.View(ctx, func(doc *domain.Document) error {
		o := doc.OrderByID(orderID)
		if o == nil {
			return ErrNotFound
		}
		copied := *o
		out = &copied
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
