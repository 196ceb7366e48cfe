package llm

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockClient is a mock implementation of Client using testify/mock.
type MockClient struct {
	mock.Mock
}

func (m *MockClient) Summarize(ctx context.Context, text string, length Length) (string, error) {
	args := m.Called(ctx, text, length)
	return args.String(0), args.Error(1)
}
