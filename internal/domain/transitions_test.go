package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBookingTransitions(t *testing.T) {
	assert.True(t, BookingPending.CanTransitionTo(BookingPaymentRequired))
	assert.True(t, BookingPending.CanTransitionTo(BookingCancelled))
	assert.False(t, BookingPending.CanTransitionTo(BookingApproved), "payment must come first")

	assert.True(t, BookingPaymentRequired.CanTransitionTo(BookingPaymentRequired), "checkout may be retried")
	assert.True(t, BookingPaymentRequired.CanTransitionTo(BookingApproved))
	assert.True(t, BookingPaymentRequired.CanTransitionTo(BookingCancelled))

	assert.True(t, BookingApproved.CanTransitionTo(BookingCompleted))
	assert.False(t, BookingApproved.CanTransitionTo(BookingCancelled), "settled bookings cannot be cancelled")

	for _, terminal := range []BookingStatus{BookingCompleted, BookingCancelled} {
		for _, next := range []BookingStatus{BookingPending, BookingPaymentRequired, BookingApproved, BookingCompleted, BookingCancelled} {
			assert.False(t, terminal.CanTransitionTo(next), "%s -> %s", terminal, next)
		}
	}
}

func TestBookingStatus_Terminal(t *testing.T) {
	assert.True(t, BookingCompleted.Terminal())
	assert.True(t, BookingCancelled.Terminal())
	assert.False(t, BookingPending.Terminal())
	assert.False(t, BookingApproved.Terminal())
}

func TestBookingStatus_BlocksAvailability(t *testing.T) {
	assert.True(t, BookingPending.BlocksAvailability())
	assert.True(t, BookingPaymentRequired.BlocksAvailability())
	assert.True(t, BookingApproved.BlocksAvailability())
	assert.False(t, BookingCompleted.BlocksAvailability())
	assert.False(t, BookingCancelled.BlocksAvailability())
}

func TestOrderTransitions(t *testing.T) {
	assert.True(t, OrderCreated.CanTransitionTo(OrderPaymentRequired))
	assert.True(t, OrderCreated.CanTransitionTo(OrderCancelled))
	assert.False(t, OrderCreated.CanTransitionTo(OrderPaid))

	assert.True(t, OrderPaymentRequired.CanTransitionTo(OrderPaymentRequired))
	assert.True(t, OrderPaymentRequired.CanTransitionTo(OrderPaid))

	assert.True(t, OrderPaid.CanTransitionTo(OrderCompleted))
	assert.False(t, OrderPaid.CanTransitionTo(OrderCancelled))

	for _, terminal := range []OrderStatus{OrderCompleted, OrderCancelled} {
		assert.True(t, terminal.Terminal())
		for _, next := range []OrderStatus{OrderCreated, OrderPaymentRequired, OrderPaid, OrderCompleted, OrderCancelled} {
			assert.False(t, terminal.CanTransitionTo(next), "%s -> %s", terminal, next)
		}
	}
}
