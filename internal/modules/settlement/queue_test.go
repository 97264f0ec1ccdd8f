package settlement

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"marketplace/internal/domain"
)

func TestQueue_AppliesEnqueuedEvents(t *testing.T) {
	svc, st := newTestService(domain.Document{
		Bookings: []domain.Booking{{ID: "b-1", Status: domain.BookingPaymentRequired}},
	})
	queue := NewQueue(svc, zap.NewNop(), 8)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		queue.Run(ctx)
		close(done)
	}()

	queue.Enqueue(Event{Kind: domain.TxRent, ID: "b-1"})

	assert.Eventually(t, func() bool {
		st.mu.Lock()
		defer st.mu.Unlock()
		return st.doc.Bookings[0].Status == domain.BookingApproved
	}, time.Second, 5*time.Millisecond)

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("queue did not stop on context cancellation")
	}
}
