package order

import "errors"

var (
	ErrItemNotFound   = errors.New("item not found")
	ErrNotFound       = errors.New("order not found")
	ErrInvalidMode    = errors.New("item not in sell mode")
	ErrAlreadySettled = errors.New("order already settled")
)
