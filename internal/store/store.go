package store

import (
	"context"
	"errors"

	"marketplace/internal/domain"
)

// ErrUnavailable wraps any read/write failure of the backing snapshot.
var ErrUnavailable = errors.New("document store unavailable")

// Store gives serialized access to the marketplace document. Update runs
// fn inside an atomic read-modify-write cycle: checks performed in fn
// (availability conflicts, status preconditions) and the subsequent
// write commit as one unit. If fn returns an error nothing is written.
type Store interface {
	View(ctx context.Context, fn func(doc *domain.Document) error) error
	Update(ctx context.Context, fn func(doc *domain.Document) error) error
}
