package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"airquote/internal/domain"
)

// MockPreferenceRepo is a mock implementation of port.PreferenceRepository.
type MockPreferenceRepo struct {
	mock.Mock
}

func (m *MockPreferenceRepo) Get(ctx context.Context, key string) (*domain.Preference, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Preference), args.Error(1)
}

func (m *MockPreferenceRepo) Set(ctx context.Context, key, value string) error {
	args := m.Called(ctx, key, value)
	return args.Error(0)
}

func (m *MockPreferenceRepo) List(ctx context.Context) ([]domain.Preference, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Preference), args.Error(1)
}
