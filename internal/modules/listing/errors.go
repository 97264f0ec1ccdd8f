package listing

import "errors"

var (
	ErrInvalidMode  = errors.New("mode must be rent or sell")
	ErrInvalidTerms = errors.New("pricing terms do not match the item mode")
)
