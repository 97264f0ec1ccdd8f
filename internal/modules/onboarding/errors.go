package onboarding

import "errors"

var (
	ErrNotFound = errors.New("user not found")
	ErrProvider = errors.New("payment provider request failed")
)
