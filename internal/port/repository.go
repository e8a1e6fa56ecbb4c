package port

import (
	"context"

	"github.com/google/uuid"

	"airquote/internal/domain"
)

// TaxonomyRepository defines the contract for taxonomy option persistence.
type TaxonomyRepository interface {
	Create(ctx context.Context, opt *domain.TaxonomyOption) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.TaxonomyOption, error)
	ListByCategory(ctx context.Context, category domain.TaxonomyCategory) ([]domain.TaxonomyOption, error)
	ListAll(ctx context.Context) ([]domain.TaxonomyOption, error)
	Update(ctx context.Context, opt *domain.TaxonomyOption) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// ProductRepository defines the contract for catalog persistence.
// List returns pinned products first, then newest first, so callers never
// re-sort. ReplaceAll swaps the whole catalog in one transaction; it is the
// persistence half of the all-or-nothing sheet import.
type ProductRepository interface {
	Create(ctx context.Context, product *domain.Product) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Product, error)
	List(ctx context.Context, filter domain.ProductFilter) ([]domain.Product, int, error)
	ListPinned(ctx context.Context) ([]domain.Product, error)
	Update(ctx context.Context, product *domain.Product) error
	SetPinned(ctx context.Context, id uuid.UUID, pinned bool) error
	Delete(ctx context.Context, id uuid.UUID) error
	ReplaceAll(ctx context.Context, products []domain.Product) error
}

// PreferenceRepository defines the contract for key/value settings.
// Get returns domain.ErrNotFound for unset keys.
type PreferenceRepository interface {
	Get(ctx context.Context, key string) (*domain.Preference, error)
	Set(ctx context.Context, key, value string) error
	List(ctx context.Context) ([]domain.Preference, error)
}
