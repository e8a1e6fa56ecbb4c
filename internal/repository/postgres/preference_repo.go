package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"airquote/internal/domain"
	"airquote/internal/port"
)

type preferenceRepo struct {
	db *sqlx.DB
}

// NewPreferenceRepo creates a new PostgreSQL-backed PreferenceRepository.
func NewPreferenceRepo(db *sqlx.DB) port.PreferenceRepository {
	return &preferenceRepo{db: db}
}

func (r *preferenceRepo) Get(ctx context.Context, key string) (*domain.Preference, error) {
	var pref domain.Preference
	err := r.db.GetContext(ctx, &pref, "SELECT * FROM preferences WHERE key = $1", key)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("preferenceRepo.Get: %w", err)
	}
	return &pref, nil
}

func (r *preferenceRepo) Set(ctx context.Context, key, value string) error {
	query := `INSERT INTO preferences (key, value, updated_at) VALUES ($1, $2, $3)
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at`
	_, err := r.db.ExecContext(ctx, query, key, value, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("preferenceRepo.Set: %w", err)
	}
	return nil
}

func (r *preferenceRepo) List(ctx context.Context) ([]domain.Preference, error) {
	var prefs []domain.Preference
	err := r.db.SelectContext(ctx, &prefs, "SELECT * FROM preferences ORDER BY key")
	if err != nil {
		return nil, fmt.Errorf("preferenceRepo.List: %w", err)
	}
	return prefs, nil
}
