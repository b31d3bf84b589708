package mocks

import (
	"time"

	"github.com/stretchr/testify/mock"
)

// MockHTTP is a mock implementation of the HTTP client
// interface
type MockHTTP struct {
	mock.Mock
}

func (m *MockHTTP) HealthCheckHTTP(uri string, codes []int, timeout time.Duration) error {
	args := m.Called(uri, codes, timeout)

	return args.Error(0)
}
