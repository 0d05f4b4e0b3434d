package domain

import (
	"context"
	"errors"
)

// Store supplies the persisted current-max sequence for a number prefix.
// Implementations own the read-then-increment critical section; insert-time
// uniqueness enforcement stays with storage.
type Store interface {
	MaxSequence(ctx context.Context, prefix string) (max int64, found bool, err error)
}

// Generator mints formatted sequential numbers such as INV-000042.
type Generator interface {
	Next(ctx context.Context, prefix string) string
}

var (
	ErrMalformedNumber = errors.New("malformed_number")
)
