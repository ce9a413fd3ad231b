package message

import (
	"context"
	"sync/atomic"
)

// MockService implements Service for unit tests.
type MockService struct {
	// Message is returned when Err is nil.
	Message string
	// Err, when set, is returned instead of Message.
	Err error
	// Gate, when non-nil, blocks GetMessage until it is closed or ctx ends.
	Gate <-chan struct{}

	calls atomic.Int64
}

// NewMockService returns a mock that answers with the backend greeting.
func NewMockService() *MockService {
	return &MockService{Message: "Hello from the backend!"}
}

func (m *MockService) GetMessage(ctx context.Context) (string, error) {
	m.calls.Add(1)
	if m.Gate != nil {
		select {
		case <-m.Gate:
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}
	if m.Err != nil {
		return "", m.Err
	}
	return m.Message, nil
}

// Calls reports how many times GetMessage has been invoked.
func (m *MockService) Calls() int64 {
	return m.calls.Load()
}
