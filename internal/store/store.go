package store

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

// MaxStoredTextChars caps the extracted text persisted with a record.
// Full text beyond the cap is discarded, deliberately. Independent of the
// prompt cap applied before the model call.
const MaxStoredTextChars = 50000

// HistoryLimit bounds the history listing.
const HistoryLimit = 50

var ErrNotFound = errors.New("summary not found")

// SummaryRecord is the persisted unit: one row per successful
// summarization. Created once, never updated, deleted only on request.
type SummaryRecord struct {
	ID               uuid.UUID
	OriginalFilename string
	FileSize         int64
	PageCount        *int
	ExtractedText    string
	Summary          string
	SummaryLength    string
	CreatedAt        time.Time
}

// Store defines the persistence contract for summary records.
type Store interface {
	// CreateSummary inserts a record, assigning id and created_at.
	CreateSummary(ctx context.Context, rec SummaryRecord) (SummaryRecord, error)
	// ListSummaries returns up to HistoryLimit records newest first,
	// with ExtractedText omitted from the projection.
	ListSummaries(ctx context.Context) ([]SummaryRecord, error)
	// GetSummary returns the full record or ErrNotFound.
	GetSummary(ctx context.Context, id uuid.UUID) (SummaryRecord, error)
	// DeleteSummary removes a record. Deleting an unknown id is a no-op.
	DeleteSummary(ctx context.Context, id uuid.UUID) error
}
