package rating

import "errors"

var (
	ErrInvalidStars = errors.New("stars must be between 1 and 5")
	ErrNotFound     = errors.New("target user not found")
)
