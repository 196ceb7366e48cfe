package cache

import (
	"context"
	"time"

	"pdf-summarizer/internal/store"
)

// Cache holds the history listing so repeated reads skip the store.
type Cache interface {
	// GetListing retrieves the cached history listing.
	// Returns nil on a miss.
	GetListing(ctx context.Context) ([]store.SummaryRecord, error)

	// SetListing stores the history listing with a TTL.
	SetListing(ctx context.Context, records []store.SummaryRecord, ttl time.Duration) error

	// Invalidate drops the cached listing after a create or delete.
	Invalidate(ctx context.Context) error

	// Close closes the cache connection.
	Close() error
}
