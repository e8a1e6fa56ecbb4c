package service

import (
	"context"

	"github.com/google/uuid"

	"airquote/internal/domain"
	"airquote/internal/port"
)

// CreateOptionInput is the DTO for adding a taxonomy option.
type CreateOptionInput struct {
	Category domain.TaxonomyCategory `json:"category" binding:"required"`
	Label    string                  `json:"label" binding:"required"`
	Color    string                  `json:"color"`
	Position int                     `json:"position"`
}

// UpdateOptionInput is the DTO for editing a taxonomy option.
type UpdateOptionInput struct {
	Label    *string `json:"label"`
	Color    *string `json:"color"`
	Position *int    `json:"position"`
}

// TaxonomyService defines the taxonomy management contract.
type TaxonomyService interface {
	Create(ctx context.Context, input CreateOptionInput) (*domain.TaxonomyOption, error)
	ListByCategory(ctx context.Context, category domain.TaxonomyCategory) ([]domain.TaxonomyOption, error)
	ListAll(ctx context.Context) (map[domain.TaxonomyCategory][]domain.TaxonomyOption, error)
	Update(ctx context.Context, id uuid.UUID, input UpdateOptionInput) (*domain.TaxonomyOption, error)
	Delete(ctx context.Context, id uuid.UUID) error
	ResolveLabels(ctx context.Context) (map[string]domain.ResolvedLabel, error)
}

type taxonomyService struct {
	repo port.TaxonomyRepository
}

// NewTaxonomyService creates a new TaxonomyService implementation.
func NewTaxonomyService(repo port.TaxonomyRepository) TaxonomyService {
	return &taxonomyService{repo: repo}
}

func (s *taxonomyService) Create(ctx context.Context, input CreateOptionInput) (*domain.TaxonomyOption, error) {
	if !domain.ValidCategories[input.Category] {
		return nil, domain.ErrInvalidCategory
	}
	if input.Label == "" {
		return nil, domain.ErrInvalidInput
	}
	color := input.Color
	if color == "" {
		color = "#000000"
	}
	opt := &domain.TaxonomyOption{
		Category: input.Category,
		Label:    input.Label,
		Color:    color,
		Position: input.Position,
	}
	if err := s.repo.Create(ctx, opt); err != nil {
		return nil, err
	}
	return opt, nil
}

func (s *taxonomyService) ListByCategory(ctx context.Context, category domain.TaxonomyCategory) ([]domain.TaxonomyOption, error) {
	if !domain.ValidCategories[category] {
		return nil, domain.ErrInvalidCategory
	}
	return s.repo.ListByCategory(ctx, category)
}

func (s *taxonomyService) ListAll(ctx context.Context) (map[domain.TaxonomyCategory][]domain.TaxonomyOption, error) {
	opts, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	grouped := make(map[domain.TaxonomyCategory][]domain.TaxonomyOption, len(domain.ValidCategories))
	for _, opt := range opts {
		grouped[opt.Category] = append(grouped[opt.Category], opt)
	}
	return grouped, nil
}

func (s *taxonomyService) Update(ctx context.Context, id uuid.UUID, input UpdateOptionInput) (*domain.TaxonomyOption, error) {
	opt, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Label != nil {
		if *input.Label == "" {
			return nil, domain.ErrInvalidInput
		}
		opt.Label = *input.Label
	}
	if input.Color != nil {
		opt.Color = *input.Color
	}
	if input.Position != nil {
		opt.Position = *input.Position
	}

	if err := s.repo.Update(ctx, opt); err != nil {
		return nil, err
	}
	return opt, nil
}

func (s *taxonomyService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

// ResolveLabels returns the id-to-label projection used by exports. Unknown
// IDs are simply absent; lookups fall back to an "unknown" placeholder rather
// than failing the whole document.
func (s *taxonomyService) ResolveLabels(ctx context.Context) (map[string]domain.ResolvedLabel, error) {
	opts, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	labels := make(map[string]domain.ResolvedLabel, len(opts))
	for _, opt := range opts {
		labels[opt.ID.String()] = domain.ResolvedLabel{Label: opt.Label, Color: opt.Color}
	}
	return labels, nil
}
