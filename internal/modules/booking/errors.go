package booking

import "errors"

var (
	ErrItemNotFound     = errors.New("item not found")
	ErrNotFound         = errors.New("booking not found")
	ErrInvalidMode      = errors.New("item not in rent mode")
	ErrInvalidDateRange = errors.New("invalid date range")
	ErrConflict         = errors.New("booking date conflict")
	ErrAlreadySettled   = errors.New("booking already settled")
)
