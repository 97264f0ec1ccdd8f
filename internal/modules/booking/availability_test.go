package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"marketplace/internal/domain"
)

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestOverlaps_InclusiveBoundaries(t *testing.T) {
	// Existing booking Jan 1 - Jan 5.
	aStart, aEnd := day("2024-01-01"), day("2024-01-05")

	assert.True(t, overlaps(aStart, aEnd, day("2024-01-04"), day("2024-01-06")), "partial overlap")
	assert.True(t, overlaps(aStart, aEnd, day("2024-01-05"), day("2024-01-07")), "shared boundary day")
	assert.True(t, overlaps(aStart, aEnd, day("2023-12-30"), day("2024-01-01")), "shared start day")
	assert.True(t, overlaps(aStart, aEnd, day("2024-01-02"), day("2024-01-03")), "contained range")
	assert.True(t, overlaps(aStart, aEnd, day("2023-12-01"), day("2024-02-01")), "containing range")

	assert.False(t, overlaps(aStart, aEnd, day("2024-01-06"), day("2024-01-08")), "after")
	assert.False(t, overlaps(aStart, aEnd, day("2023-12-28"), day("2023-12-31")), "before")
}

func TestHasConflict_StatusFilter(t *testing.T) {
	bookings := []domain.Booking{
		{ItemID: "item-1", StartDate: day("2024-01-01"), EndDate: day("2024-01-05"), Status: domain.BookingCancelled},
		{ItemID: "item-1", StartDate: day("2024-01-01"), EndDate: day("2024-01-05"), Status: domain.BookingCompleted},
	}

	assert.False(t, HasConflict(bookings, "item-1", day("2024-01-02"), day("2024-01-03")),
		"terminal bookings never block")

	bookings = append(bookings, domain.Booking{
		ItemID: "item-1", StartDate: day("2024-01-01"), EndDate: day("2024-01-05"), Status: domain.BookingPending,
	})
	assert.True(t, HasConflict(bookings, "item-1", day("2024-01-02"), day("2024-01-03")))
	assert.False(t, HasConflict(bookings, "item-2", day("2024-01-02"), day("2024-01-03")),
		"other items do not conflict")
}

func TestHasConflict_AllBlockingStatuses(t *testing.T) {
	for _, status := range []domain.BookingStatus{
		domain.BookingPending,
		domain.BookingPaymentRequired,
		domain.BookingApproved,
	} {
		bookings := []domain.Booking{
			{ItemID: "item-1", StartDate: day("2024-01-01"), EndDate: day("2024-01-05"), Status: status},
		}
		assert.True(t, HasConflict(bookings, "item-1", day("2024-01-05"), day("2024-01-07")),
			"status %s should block", status)
	}
}
