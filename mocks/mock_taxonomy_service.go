package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"airquote/internal/domain"
	"airquote/internal/service"
)

// MockTaxonomyService is a mock implementation of service.TaxonomyService.
type MockTaxonomyService struct {
	mock.Mock
}

func (m *MockTaxonomyService) Create(ctx context.Context, input service.CreateOptionInput) (*domain.TaxonomyOption, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TaxonomyOption), args.Error(1)
}

func (m *MockTaxonomyService) ListByCategory(ctx context.Context, category domain.TaxonomyCategory) ([]domain.TaxonomyOption, error) {
	args := m.Called(ctx, category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TaxonomyOption), args.Error(1)
}

func (m *MockTaxonomyService) ListAll(ctx context.Context) (map[domain.TaxonomyCategory][]domain.TaxonomyOption, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[domain.TaxonomyCategory][]domain.TaxonomyOption), args.Error(1)
}

func (m *MockTaxonomyService) Update(ctx context.Context, id uuid.UUID, input service.UpdateOptionInput) (*domain.TaxonomyOption, error) {
	args := m.Called(ctx, id, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TaxonomyOption), args.Error(1)
}

func (m *MockTaxonomyService) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockTaxonomyService) ResolveLabels(ctx context.Context) (map[string]domain.ResolvedLabel, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]domain.ResolvedLabel), args.Error(1)
}
