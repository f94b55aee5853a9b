package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockSequenceRepo is a mock implementation of port.SequenceRepository.
type MockSequenceRepo struct {
	mock.Mock
}

func (m *MockSequenceRepo) LastIssuedNumber(ctx context.Context, scopeKey string) (string, error) {
	args := m.Called(ctx, scopeKey)
	return args.String(0), args.Error(1)
}

func (m *MockSequenceRepo) Record(ctx context.Context, scopeKey, number string) error {
	args := m.Called(ctx, scopeKey, number)
	return args.Error(0)
}
