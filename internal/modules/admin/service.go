package admin

import (
	"context"
	"sort"
	"strings"

	"marketplace/internal/domain"
	"marketplace/internal/store"
)

const (
	auditTailLimit  = 300
	recentLimit     = 100
	searchHitsLimit = 100
)

// Service exposes read-only operator views over the snapshot.
type Service struct {
	store store.Store
}

func NewService(st store.Store) *Service {
	return &Service{store: st}
}

// AuditTail returns the newest audit entries, oldest first.
func (s *Service) AuditTail(ctx context.Context) ([]domain.AuditEntry, error) {
	var out []domain.AuditEntry
	err := s.store.View(ctx, func(doc *domain.Document) error {
		entries := doc.Audit
		if len(entries) > auditTailLimit {
			entries = entries[len(entries)-auditTailLimit:]
		}
		out = make([]domain.AuditEntry, len(entries))
		copy(out, entries)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// RecentBookings returns the newest bookings first.
func (s *Service) RecentBookings(ctx context.Context) ([]domain.Booking, error) {
	var out []domain.Booking
	err := s.store.View(ctx, func(doc *domain.Document) error {
		out = make([]domain.Booking, len(doc.Bookings))
		copy(out, doc.Bookings)
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if len(out) > recentLimit {
		out = out[:recentLimit]
	}
	return out, nil
}

// RecentOrders returns the newest orders first.
func (s *Service) RecentOrders(ctx context.Context) ([]domain.Order, error) {
	var out []domain.Order
	err := s.store.View(ctx, func(doc *domain.Document) error {
		out = make([]domain.Order, len(doc.Orders))
		copy(out, doc.Orders)
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if len(out) > recentLimit {
		out = out[:recentLimit]
	}
	return out, nil
}

// SearchItems matches the query as a case-insensitive substring of the
// title, city or description.
func (s *Service) SearchItems(ctx context.Context, query string) ([]domain.Item, error) {
	q := strings.ToLower(strings.TrimSpace(query))

	var out []domain.Item
	err := s.store.View(ctx, func(doc *domain.Document) error {
		out = make([]domain.Item, 0)
		for _, item := range doc.Items {
			if q != "" &&
				!strings.Contains(strings.ToLower(item.Title), q) &&
				!strings.Contains(strings.ToLower(item.City), q) &&
				!strings.Contains(strings.ToLower(item.Desc), q) {
				continue
			}
			out = append(out, item)
			if len(out) == searchHitsLimit {
				break
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
