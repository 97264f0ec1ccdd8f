package checkout

import (
	"fmt"
	"math"
	"time"

	"marketplace/internal/domain"
)

// Quote is a priced transaction: the charge amount and the platform fee
// carved out of it, both in integer minor units.
type Quote struct {
	Amount      int64
	Fee         int64
	Days        int64
	Description string
}

// QuoteRent prices a rental: ceil-of-days duration (minimum one day,
// even for malformed sub-day spans) times the daily rate, plus deposit.
func QuoteRent(item *domain.Item, start, end time.Time, feeBps int64) (Quote, error) {
	if item.Rent == nil {
		return Quote{}, ErrInvalidPricing
	}

	days := int64(math.Ceil(end.Sub(start).Hours() / 24))
	if days < 1 {
		days = 1
	}

	amount := item.Rent.PricePerDay*days + item.Rent.Deposit
	return Quote{
		Amount:      amount,
		Fee:         platformFee(amount, feeBps),
		Days:        days,
		Description: fmt.Sprintf("[rental] %s (%d days)", item.Title, days),
	}, nil
}

// QuoteSell prices a sale at the item's listed sale price.
func QuoteSell(item *domain.Item, feeBps int64) (Quote, error) {
	if item.Sale == nil {
		return Quote{}, ErrInvalidPricing
	}

	amount := item.Sale.Price
	return Quote{
		Amount:      amount,
		Fee:         platformFee(amount, feeBps),
		Description: fmt.Sprintf("[sale] %s", item.Title),
	}, nil
}

// Integer division floors for non-negative amounts, which is the
// required rounding for the fee.
func platformFee(amount, feeBps int64) int64 {
	return amount * feeBps / 10000
}
