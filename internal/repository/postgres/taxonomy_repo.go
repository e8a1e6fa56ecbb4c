package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"airquote/internal/domain"
	"airquote/internal/port"
)

type taxonomyRepo struct {
	db *sqlx.DB
}

// NewTaxonomyRepo creates a new PostgreSQL-backed TaxonomyRepository.
func NewTaxonomyRepo(db *sqlx.DB) port.TaxonomyRepository {
	return &taxonomyRepo{db: db}
}

func (r *taxonomyRepo) Create(ctx context.Context, opt *domain.TaxonomyOption) error {
	opt.ID = uuid.New()
	now := time.Now().UTC()
	opt.CreatedAt = now
	opt.UpdatedAt = now

	query := `INSERT INTO taxonomy_options (id, category, label, color, position, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := r.db.ExecContext(ctx, query,
		opt.ID, opt.Category, opt.Label, opt.Color, opt.Position, opt.CreatedAt, opt.UpdatedAt)
	if err != nil {
		return fmt.Errorf("taxonomyRepo.Create: %w", err)
	}
	return nil
}

func (r *taxonomyRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.TaxonomyOption, error) {
	var opt domain.TaxonomyOption
	err := r.db.GetContext(ctx, &opt, "SELECT * FROM taxonomy_options WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("taxonomyRepo.GetByID: %w", err)
	}
	return &opt, nil
}

func (r *taxonomyRepo) ListByCategory(ctx context.Context, category domain.TaxonomyCategory) ([]domain.TaxonomyOption, error) {
	var opts []domain.TaxonomyOption
	err := r.db.SelectContext(ctx, &opts,
		"SELECT * FROM taxonomy_options WHERE category = $1 ORDER BY position, created_at", category)
	if err != nil {
		return nil, fmt.Errorf("taxonomyRepo.ListByCategory: %w", err)
	}
	return opts, nil
}

func (r *taxonomyRepo) ListAll(ctx context.Context) ([]domain.TaxonomyOption, error) {
	var opts []domain.TaxonomyOption
	err := r.db.SelectContext(ctx, &opts,
		"SELECT * FROM taxonomy_options ORDER BY category, position, created_at")
	if err != nil {
		return nil, fmt.Errorf("taxonomyRepo.ListAll: %w", err)
	}
	return opts, nil
}

func (r *taxonomyRepo) Update(ctx context.Context, opt *domain.TaxonomyOption) error {
	opt.UpdatedAt = time.Now().UTC()
	query := `UPDATE taxonomy_options SET label = $1, color = $2, position = $3, updated_at = $4 WHERE id = $5`
	result, err := r.db.ExecContext(ctx, query,
		opt.Label, opt.Color, opt.Position, opt.UpdatedAt, opt.ID)
	if err != nil {
		return fmt.Errorf("taxonomyRepo.Update: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *taxonomyRepo) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM taxonomy_options WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("taxonomyRepo.Delete: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}
