package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"airquote/internal/domain"
	"airquote/internal/port"
)

type productRepo struct {
	db *sqlx.DB
}

// NewProductRepo creates a new PostgreSQL-backed ProductRepository.
func NewProductRepo(db *sqlx.DB) port.ProductRepository {
	return &productRepo{db: db}
}

func (r *productRepo) Create(ctx context.Context, product *domain.Product) error {
	product.ID = uuid.New()
	now := time.Now().UTC()
	product.CreatedAt = now
	product.UpdatedAt = now

	query := `INSERT INTO products
		(id, name, brand_id, style_id, type_id, pipe_id, environment,
		 indoor_dimensions, outdoor_dimensions, price, remarks, is_pinned,
		 created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`

	_, err := r.db.ExecContext(ctx, query,
		product.ID, product.Name, product.BrandID, product.StyleID, product.TypeID,
		product.PipeID, product.Environment, product.IndoorDimensions,
		product.OutdoorDimensions, product.Price, product.Remarks, product.IsPinned,
		product.CreatedAt, product.UpdatedAt)
	if err != nil {
		return fmt.Errorf("productRepo.Create: %w", err)
	}
	return nil
}

func (r *productRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Product, error) {
	var product domain.Product
	err := r.db.GetContext(ctx, &product, "SELECT * FROM products WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("productRepo.GetByID: %w", err)
	}
	return &product, nil
}

func (r *productRepo) List(ctx context.Context, filter domain.ProductFilter) ([]domain.Product, int, error) {
	where, args := buildProductWhere(filter)

	var total int
	err := r.db.GetContext(ctx, &total, "SELECT COUNT(*) FROM products"+where, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("productRepo.List count: %w", err)
	}

	// pinned rows surface first, then newest entries
	query := "SELECT * FROM products" + where + " ORDER BY is_pinned DESC, created_at DESC"
	if filter.Limit >= 0 {
		limit := filter.Limit
		if limit == 0 {
			limit = 20
		}
		args = append(args, limit, filter.Offset)
		query += fmt.Sprintf(" LIMIT $%d OFFSET $%d", len(args)-1, len(args))
	}

	var products []domain.Product
	err = r.db.SelectContext(ctx, &products, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("productRepo.List: %w", err)
	}
	return products, total, nil
}

// buildProductWhere builds the WHERE clause and positional args for a
// catalog listing. Search matches name, remarks, and the brand label,
// case-insensitively.
func buildProductWhere(f domain.ProductFilter) (string, []interface{}) {
	var conds []string
	var args []interface{}

	if f.BrandID != "" {
		args = append(args, f.BrandID)
		conds = append(conds, fmt.Sprintf("brand_id = $%d", len(args)))
	}
	if f.StyleID != "" {
		args = append(args, f.StyleID)
		conds = append(conds, fmt.Sprintf("style_id = $%d", len(args)))
	}
	if f.TypeID != "" {
		args = append(args, f.TypeID)
		conds = append(conds, fmt.Sprintf("type_id = $%d", len(args)))
	}
	if f.PipeID != "" {
		args = append(args, f.PipeID)
		conds = append(conds, fmt.Sprintf("pipe_id = $%d", len(args)))
	}
	if f.Environment != "" {
		args = append(args, f.Environment)
		conds = append(conds, fmt.Sprintf("environment = $%d", len(args)))
	}
	if f.PinnedOnly {
		conds = append(conds, "is_pinned = TRUE")
	}
	if f.Search != "" {
		args = append(args, "%"+f.Search+"%")
		n := len(args)
		conds = append(conds, fmt.Sprintf(
			"(name ILIKE $%d OR remarks ILIKE $%d OR brand_id IN (SELECT id FROM taxonomy_options WHERE category = 'brand' AND label ILIKE $%d))",
			n, n, n))
	}

	if len(conds) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

func (r *productRepo) ListPinned(ctx context.Context) ([]domain.Product, error) {
	var products []domain.Product
	err := r.db.SelectContext(ctx, &products,
		"SELECT * FROM products WHERE is_pinned = TRUE ORDER BY created_at DESC")
	if err != nil {
		return nil, fmt.Errorf("productRepo.ListPinned: %w", err)
	}
	return products, nil
}

func (r *productRepo) Update(ctx context.Context, product *domain.Product) error {
	product.UpdatedAt = time.Now().UTC()
	query := `UPDATE products SET
		name = $1, brand_id = $2, style_id = $3, type_id = $4, pipe_id = $5,
		environment = $6, indoor_dimensions = $7, outdoor_dimensions = $8,
		price = $9, remarks = $10, is_pinned = $11, updated_at = $12
		WHERE id = $13`
	result, err := r.db.ExecContext(ctx, query,
		product.Name, product.BrandID, product.StyleID, product.TypeID, product.PipeID,
		product.Environment, product.IndoorDimensions, product.OutdoorDimensions,
		product.Price, product.Remarks, product.IsPinned, product.UpdatedAt, product.ID)
	if err != nil {
		return fmt.Errorf("productRepo.Update: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *productRepo) SetPinned(ctx context.Context, id uuid.UUID, pinned bool) error {
	result, err := r.db.ExecContext(ctx,
		"UPDATE products SET is_pinned = $1, updated_at = $2 WHERE id = $3",
		pinned, time.Now().UTC(), id)
	if err != nil {
		return fmt.Errorf("productRepo.SetPinned: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *productRepo) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM products WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("productRepo.Delete: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ReplaceAll swaps the entire catalog inside one transaction so a failed
// import can never leave a half-replaced catalog behind.
func (r *productRepo) ReplaceAll(ctx context.Context, products []domain.Product) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("productRepo.ReplaceAll begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, "DELETE FROM products"); err != nil {
		return fmt.Errorf("productRepo.ReplaceAll clear: %w", err)
	}

	query := `INSERT INTO products
		(id, name, brand_id, style_id, type_id, pipe_id, environment,
		 indoor_dimensions, outdoor_dimensions, price, remarks, is_pinned,
		 created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`

	now := time.Now().UTC()
	for i := range products {
		p := &products[i]
		if p.ID == uuid.Nil {
			p.ID = uuid.New()
		}
		if p.CreatedAt.IsZero() {
			p.CreatedAt = now
		}
		p.UpdatedAt = now
		if _, err := tx.ExecContext(ctx, query,
			p.ID, p.Name, p.BrandID, p.StyleID, p.TypeID, p.PipeID, p.Environment,
			p.IndoorDimensions, p.OutdoorDimensions, p.Price, p.Remarks, p.IsPinned,
			p.CreatedAt, p.UpdatedAt); err != nil {
			return fmt.Errorf("productRepo.ReplaceAll insert: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("productRepo.ReplaceAll commit: %w", err)
	}
	return nil
}
