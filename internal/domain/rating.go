package domain

import "time"

// Rating is append-only; a user may rate the same target more than once.
type Rating struct {
	ID           string    `json:"id"`
	TargetUserID string    `json:"target_user_id"`
	ByUserID     string    `json:"by_user_id"`
	Stars        int       `json:"stars"`
	Comment      string    `json:"comment,omitempty"`
	At           time.Time `json:"at"`
}
