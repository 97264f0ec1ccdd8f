package listing

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"marketplace/internal/audit"
	"marketplace/internal/domain"
	"marketplace/internal/store"
)

type Service struct {
	store store.Store
	audit *audit.Recorder
}

func NewService(st store.Store, rec *audit.Recorder) *Service {
	return &Service{store: st, audit: rec}
}

// Create lists an item in exactly one mode; the terms for the other
// mode are never stored.
func (s *Service) Create(ctx context.Context, ownerID string, req CreateItemRequest) (*domain.Item, error) {
	item := domain.Item{
		ID:        uuid.NewString(),
		OwnerID:   ownerID,
		Mode:      domain.ItemMode(req.Mode),
		Title:     req.Title,
		City:      req.City,
		Desc:      req.Desc,
		Available: true,
	}

	switch item.Mode {
	case domain.ModeRent:
		if req.PricePerDay <= 0 {
			return nil, ErrInvalidTerms
		}
		if req.Deposit < 0 {
			return nil, ErrInvalidTerms
		}
		item.Rent = &domain.RentTerms{PricePerDay: req.PricePerDay, Deposit: req.Deposit}
	case domain.ModeSell:
		if req.Price <= 0 {
			return nil, ErrInvalidTerms
		}
		item.Sale = &domain.SaleTerms{Price: req.Price}
	default:
		return nil, ErrInvalidMode
	}

	err := s.store.Update(ctx, func(doc *domain.Document) error {
		doc.Items = append(doc.Items, item)
		s.audit.Record(ctx, doc, domain.ActionCreateItem, fmt.Sprintf("%s:%s", item.ID, item.Mode), ownerID)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *Service) List(ctx context.Context) ([]domain.Item, error) {
	var items []domain.Item
	err := s.store.View(ctx, func(doc *domain.Document) error {
		items = make([]domain.Item, len(doc.Items))
		copy(items, doc.Items)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return items, nil
}
