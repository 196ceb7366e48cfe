package extract

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockExtractor is a mock implementation of Extractor using testify/mock.
type MockExtractor struct {
	mock.Mock
}

func (m *MockExtractor) Extract(ctx context.Context, content []byte) (Result, error) {
	args := m.Called(ctx, content)
	return args.Get(0).(Result), args.Error(1)
}
