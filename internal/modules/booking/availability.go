package booking

import (
	"time"

	"marketplace/internal/domain"
)

// overlaps uses inclusive boundaries on both sides: a booking ending on
// a given day blocks a booking starting that same day, matching
// calendar-day reservation semantics.
func overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return !aStart.After(bEnd) && !bStart.After(aEnd)
}

// HasConflict reports whether the proposed range collides with any
// booking for the item still capable of occupying it. Completed and
// cancelled bookings never block.
func HasConflict(bookings []domain.Booking, itemID string, start, end time.Time) bool {
	for _, b := range bookings {
		if b.ItemID != itemID || !b.Status.BlocksAvailability() {
			continue
		}
		if overlaps(b.StartDate, b.EndDate, start, end) {
			return true
		}
	}
	return false
}
