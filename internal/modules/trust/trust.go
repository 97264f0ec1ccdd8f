// Package trust derives a reputation score from a user's average rating
// and transaction-completion history. Pure computation, no side effects.
package trust

import (
	"math"

	"marketplace/internal/domain"
)

const completedCap = 20

// Score blends the average rating (up to 70 points), the capped count
// of completed transactions (up to 20) and a base of 10.
func Score(user *domain.User, bookings []domain.Booking, orders []domain.Order) int {
	if user == nil {
		return 0
	}

	completed := 0
	for _, b := range bookings {
		if b.Status == domain.BookingCompleted && (b.BorrowerID == user.ID || b.OwnerID == user.ID) {
			completed++
		}
	}
	for _, o := range orders {
		if o.Status == domain.OrderPaid && (o.BuyerID == user.ID || o.SellerID == user.ID) {
			completed++
		}
	}
	if completed > completedCap {
		completed = completedCap
	}

	return int(math.Round(user.Score/5*70 + float64(completed) + 10))
}
