package booking

import "time"

type CreateBookingRequest struct {
	ItemID     string    `json:"item_id" binding:"required"`
	BorrowerID string    `json:"borrower_id" binding:"required"`
	StartDate  time.Time `json:"start_date" binding:"required"`
	EndDate    time.Time `json:"end_date" binding:"required"`
}
