package cache

import (
	"context"
	"time"

	"pdf-summarizer/internal/store"
)

// NoOpCache is a cache implementation that does nothing. Used when Redis
// is not configured - all operations succeed but every read is a miss.
type NoOpCache struct{}

func NewNoOpCache() *NoOpCache {
	return &NoOpCache{}
}

func (c *NoOpCache) GetListing(ctx context.Context) ([]store.SummaryRecord, error) {
	return nil, nil
}

func (c *NoOpCache) SetListing(ctx context.Context, records []store.SummaryRecord, ttl time.Duration) error {
	return nil
}

func (c *NoOpCache) Invalidate(ctx context.Context) error {
	return nil
}

func (c *NoOpCache) Close() error {
	return nil
}
