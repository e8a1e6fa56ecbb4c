package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"airquote/internal/domain"
)

// MockTaxonomyRepo is a mock implementation of port.TaxonomyRepository.
type MockTaxonomyRepo struct {
	mock.Mock
}

func (m *MockTaxonomyRepo) Create(ctx context.Context, opt *domain.TaxonomyOption) error {
	args := m.Called(ctx, opt)
	return args.Error(0)
}

func (m *MockTaxonomyRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.TaxonomyOption, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TaxonomyOption), args.Error(1)
}

func (m *MockTaxonomyRepo) ListByCategory(ctx context.Context, category domain.TaxonomyCategory) ([]domain.TaxonomyOption, error) {
	args := m.Called(ctx, category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TaxonomyOption), args.Error(1)
}

func (m *MockTaxonomyRepo) ListAll(ctx context.Context) ([]domain.TaxonomyOption, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TaxonomyOption), args.Error(1)
}

func (m *MockTaxonomyRepo) Update(ctx context.Context, opt *domain.TaxonomyOption) error {
	args := m.Called(ctx, opt)
	return args.Error(0)
}

func (m *MockTaxonomyRepo) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
