package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockStore is a mock implementation of Store using testify/mock.
type MockStore struct {
	mock.Mock
}

func (m *MockStore) CreateSummary(ctx context.Context, rec SummaryRecord) (SummaryRecord, error) {
	args := m.Called(ctx, rec)
	return args.Get(0).(SummaryRecord), args.Error(1)
}

func (m *MockStore) ListSummaries(ctx context.Context) ([]SummaryRecord, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]SummaryRecord), args.Error(1)
}

func (m *MockStore) GetSummary(ctx context.Context, id uuid.UUID) (SummaryRecord, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(SummaryRecord), args.Error(1)
}

func (m *MockStore) DeleteSummary(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
