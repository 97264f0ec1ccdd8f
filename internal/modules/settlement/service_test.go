package settlement

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"marketplace/internal/audit"
	"marketplace/internal/domain"
)

type memStore struct {
	mu  sync.Mutex
	doc domain.Document
}

func (s *memStore) View(ctx context.Context, fn func(doc *domain.Document) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(&s.doc)
}

func (s *memStore) Update(ctx context.Context, fn func(doc *domain.Document) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(&s.doc)
}

func newTestService(doc domain.Document) (*Service, *memStore) {
	st := &memStore{doc: doc}
	return NewService(st, audit.NewRecorder(nil), zap.NewNop()), st
}

func TestApplyPaymentCompleted_RentApproves(t *testing.T) {
	svc, st := newTestService(domain.Document{
		Bookings: []domain.Booking{{ID: "b-1", Status: domain.BookingPaymentRequired}},
	})

	err := svc.ApplyPaymentCompleted(context.Background(), Event{Kind: domain.TxRent, ID: "b-1"})

	assert.NoError(t, err)
	assert.Equal(t, domain.BookingApproved, st.doc.Bookings[0].Status)
	assert.Len(t, st.doc.Audit, 1)
	assert.Equal(t, domain.ActionRentPaidApproved, st.doc.Audit[0].Action)
	assert.Equal(t, "stripe", st.doc.Audit[0].By)
}

func TestApplyPaymentCompleted_SellPays(t *testing.T) {
	svc, st := newTestService(domain.Document{
		Orders: []domain.Order{{ID: "o-1", Status: domain.OrderPaymentRequired}},
	})

	err := svc.ApplyPaymentCompleted(context.Background(), Event{Kind: domain.TxSell, ID: "o-1"})

	assert.NoError(t, err)
	assert.Equal(t, domain.OrderPaid, st.doc.Orders[0].Status)
	assert.Equal(t, domain.ActionSellPaid, st.doc.Audit[0].Action)
}

func TestApplyPaymentCompleted_Idempotent(t *testing.T) {
	svc, st := newTestService(domain.Document{
		Bookings: []domain.Booking{{ID: "b-1", Status: domain.BookingPaymentRequired}},
	})
	ev := Event{Kind: domain.TxRent, ID: "b-1"}

	assert.NoError(t, svc.ApplyPaymentCompleted(context.Background(), ev))
	assert.NoError(t, svc.ApplyPaymentCompleted(context.Background(), ev))
	assert.NoError(t, svc.ApplyPaymentCompleted(context.Background(), ev))

	assert.Equal(t, domain.BookingApproved, st.doc.Bookings[0].Status)
	assert.Len(t, st.doc.Audit, 1, "redelivered events must not write new audit entries")
}

func TestApplyPaymentCompleted_UnknownKeyIsNoOp(t *testing.T) {
	svc, st := newTestService(domain.Document{})

	assert.NoError(t, svc.ApplyPaymentCompleted(context.Background(), Event{Kind: domain.TxRent, ID: "ghost"}))
	assert.NoError(t, svc.ApplyPaymentCompleted(context.Background(), Event{Kind: domain.TxSell, ID: "ghost"}))
	assert.NoError(t, svc.ApplyPaymentCompleted(context.Background(), Event{Kind: "barter", ID: "ghost"}))

	assert.Empty(t, st.doc.Audit)
}

func TestApplyPaymentCompleted_CancelledStaysCancelled(t *testing.T) {
	svc, st := newTestService(domain.Document{
		Bookings: []domain.Booking{{ID: "b-1", Status: domain.BookingCancelled}},
		Orders:   []domain.Order{{ID: "o-1", Status: domain.OrderCancelled}},
	})

	assert.NoError(t, svc.ApplyPaymentCompleted(context.Background(), Event{Kind: domain.TxRent, ID: "b-1"}))
	assert.NoError(t, svc.ApplyPaymentCompleted(context.Background(), Event{Kind: domain.TxSell, ID: "o-1"}))

	assert.Equal(t, domain.BookingCancelled, st.doc.Bookings[0].Status)
	assert.Equal(t, domain.OrderCancelled, st.doc.Orders[0].Status)
	assert.Empty(t, st.doc.Audit)
}

func TestApplyPaymentCompleted_PendingBookingStillSettles(t *testing.T) {
	// The webhook can outrun the checkout transition commit; an event for
	// a still-pending booking settles it rather than being dropped.
	svc, st := newTestService(domain.Document{
		Bookings: []domain.Booking{{ID: "b-1", Status: domain.BookingPending}},
	})

	assert.NoError(t, svc.ApplyPaymentCompleted(context.Background(), Event{Kind: domain.TxRent, ID: "b-1"}))
	assert.Equal(t, domain.BookingApproved, st.doc.Bookings[0].Status)
}
