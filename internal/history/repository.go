package history

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("match record not found")

// recentCap bounds the recent-matches index in every backend.
const recentCap = 100

// Repo stores finished match records.
type Repo interface {
	// Save stores rec; records expire after ttlSeconds where the backend supports it
	Save(ctx context.Context, rec *Record, ttlSeconds int) error
	// Get returns ErrNotFound for unknown or expired ids
	Get(ctx context.Context, id string) (*Record, error)
	// Recent returns up to n records, newest first
	Recent(ctx context.Context, n int) ([]*Record, error)
}
