package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"airquote/internal/domain"
	"airquote/internal/service"
	"airquote/mocks"
)

func TestTaxonomyService_Create(t *testing.T) {
	repo := new(mocks.MockTaxonomyRepo)
	svc := service.NewTaxonomyService(repo)

	repo.On("Create", mock.Anything, mock.MatchedBy(func(opt *domain.TaxonomyOption) bool {
		return opt.Category == domain.CategoryBrand && opt.Label == "Fujitsu" && opt.Color == "#b91c1c"
	})).Return(nil)

	opt, err := svc.Create(context.Background(), service.CreateOptionInput{
		Category: domain.CategoryBrand,
		Label:    "Fujitsu",
		Color:    "#b91c1c",
	})
	require.NoError(t, err)
	assert.Equal(t, "Fujitsu", opt.Label)
	repo.AssertExpectations(t)
}

func TestTaxonomyService_Create_DefaultColor(t *testing.T) {
	repo := new(mocks.MockTaxonomyRepo)
	svc := service.NewTaxonomyService(repo)

	repo.On("Create", mock.Anything, mock.MatchedBy(func(opt *domain.TaxonomyOption) bool {
		return opt.Color == "#000000"
	})).Return(nil)

	_, err := svc.Create(context.Background(), service.CreateOptionInput{
		Category: domain.CategoryPipe,
		Label:    "3/7",
	})
	require.NoError(t, err)
}

func TestTaxonomyService_Create_Invalid(t *testing.T) {
	svc := service.NewTaxonomyService(new(mocks.MockTaxonomyRepo))

	_, err := svc.Create(context.Background(), service.CreateOptionInput{
		Category: "capacity",
		Label:    "X",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidCategory)

	_, err = svc.Create(context.Background(), service.CreateOptionInput{
		Category: domain.CategoryBrand,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestTaxonomyService_ListByCategory_InvalidCategory(t *testing.T) {
	svc := service.NewTaxonomyService(new(mocks.MockTaxonomyRepo))

	_, err := svc.ListByCategory(context.Background(), "capacity")
	assert.ErrorIs(t, err, domain.ErrInvalidCategory)
}

func TestTaxonomyService_ListAll_GroupsByCategory(t *testing.T) {
	repo := new(mocks.MockTaxonomyRepo)
	svc := service.NewTaxonomyService(repo)

	repo.On("ListAll", mock.Anything).Return([]domain.TaxonomyOption{
		{ID: uuid.New(), Category: domain.CategoryBrand, Label: "Hitachi"},
		{ID: uuid.New(), Category: domain.CategoryBrand, Label: "Daikin"},
		{ID: uuid.New(), Category: domain.CategoryStyle, Label: "Window"},
	}, nil)

	grouped, err := svc.ListAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, grouped[domain.CategoryBrand], 2)
	assert.Len(t, grouped[domain.CategoryStyle], 1)
	assert.Empty(t, grouped[domain.CategoryPipe])
}

func TestTaxonomyService_Update_RejectsEmptyLabel(t *testing.T) {
	repo := new(mocks.MockTaxonomyRepo)
	svc := service.NewTaxonomyService(repo)

	id := uuid.New()
	repo.On("GetByID", mock.Anything, id).
		Return(&domain.TaxonomyOption{ID: id, Category: domain.CategoryBrand, Label: "Teco"}, nil)

	empty := ""
	_, err := svc.Update(context.Background(), id, service.UpdateOptionInput{Label: &empty})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestTaxonomyService_ResolveLabels(t *testing.T) {
	repo := new(mocks.MockTaxonomyRepo)
	svc := service.NewTaxonomyService(repo)

	opt := domain.TaxonomyOption{ID: uuid.New(), Category: domain.CategoryBrand, Label: "Gree", Color: "#991b1b"}
	repo.On("ListAll", mock.Anything).Return([]domain.TaxonomyOption{opt}, nil)

	labels, err := svc.ResolveLabels(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.ResolvedLabel{Label: "Gree", Color: "#991b1b"}, labels[opt.ID.String()])
}
