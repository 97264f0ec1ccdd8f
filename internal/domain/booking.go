package domain

import "time"

type BookingStatus string

const (
	BookingPending         BookingStatus = "pending"
	BookingPaymentRequired BookingStatus = "payment_required"
	BookingApproved        BookingStatus = "approved"
	BookingCompleted       BookingStatus = "completed"
	BookingCancelled       BookingStatus = "cancelled"
)

var bookingTransitions = map[BookingStatus][]BookingStatus{
	BookingPending:         {BookingPaymentRequired, BookingCancelled},
	BookingPaymentRequired: {BookingPaymentRequired, BookingApproved, BookingCancelled},
	BookingApproved:        {BookingCompleted},
}

func (s BookingStatus) CanTransitionTo(next BookingStatus) bool {
	for _, allowed := range bookingTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Terminal reports whether the booking can no longer change state.
func (s BookingStatus) Terminal() bool {
	return s == BookingCompleted || s == BookingCancelled
}

// BlocksAvailability reports whether a booking in this status occupies
// its date range for conflict checks.
func (s BookingStatus) BlocksAvailability() bool {
	switch s {
	case BookingPending, BookingPaymentRequired, BookingApproved:
		return true
	}
	return false
}

// Booking holds a rental reservation. Dates are calendar days (UTC
// midnight); the range is inclusive on both boundaries for conflict
// purposes.
type Booking struct {
	ID         string        `json:"id"`
	ItemID     string        `json:"item_id"`
	OwnerID    string        `json:"owner_id"`
	BorrowerID string        `json:"borrower_id"`
	StartDate  time.Time     `json:"start_date"`
	EndDate    time.Time     `json:"end_date"`
	Status     BookingStatus `json:"status"`
	CreatedAt  time.Time     `json:"created_at"`
}
