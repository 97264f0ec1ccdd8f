package trust

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"marketplace/internal/domain"
)

func TestScore_RatingOnly(t *testing.T) {
	user := &domain.User{ID: "u-1", Score: 4.0}

	// 4.0/5*70 = 56, +0 completed, +10 base.
	assert.Equal(t, 66, Score(user, nil, nil))
}

func TestScore_CompletedTransactionsCount(t *testing.T) {
	user := &domain.User{ID: "u-1", Score: 4.0}
	bookings := []domain.Booking{
		{BorrowerID: "u-1", Status: domain.BookingCompleted},
		{OwnerID: "u-1", Status: domain.BookingCompleted},
		{BorrowerID: "u-1", Status: domain.BookingApproved},  // not yet completed
		{BorrowerID: "u-2", Status: domain.BookingCompleted}, // someone else's
	}
	orders := []domain.Order{
		{BuyerID: "u-1", Status: domain.OrderPaid},
		{SellerID: "u-1", Status: domain.OrderCancelled},
	}

	// 56 + 3 completed + 10.
	assert.Equal(t, 69, Score(user, bookings, orders))
}

func TestScore_CompletedCap(t *testing.T) {
	user := &domain.User{ID: "u-1", Score: 5.0}

	bookings := make([]domain.Booking, 50)
	for i := range bookings {
		bookings[i] = domain.Booking{OwnerID: "u-1", Status: domain.BookingCompleted}
	}

	// 70 + capped 20 + 10.
	assert.Equal(t, 100, Score(user, bookings, nil))
}

func TestScore_RoundsHalfUp(t *testing.T) {
	// 4.25/5*70 + 10 = 69.5 rounds up to 70.
	user := &domain.User{ID: "u-1", Score: 4.25}
	assert.Equal(t, 70, Score(user, nil, nil))
}

func TestScore_NilUser(t *testing.T) {
	assert.Equal(t, 0, Score(nil, nil, nil))
}
