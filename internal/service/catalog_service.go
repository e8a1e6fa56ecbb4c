package service

import (
	"bytes"
	"context"

	"github.com/google/uuid"

	"airquote/internal/csvexport"
	"airquote/internal/domain"
	"airquote/internal/port"
	"airquote/internal/spreadsheet"
)

// CreateProductInput is the DTO for adding a catalog product.
type CreateProductInput struct {
	Name              string                 `json:"name" binding:"required"`
	BrandID           uuid.UUID              `json:"brand_id" binding:"required"`
	StyleID           uuid.UUID              `json:"style_id" binding:"required"`
	TypeID            uuid.UUID              `json:"type_id" binding:"required"`
	PipeID            uuid.UUID              `json:"pipe_id" binding:"required"`
	Environment       domain.EnvironmentType `json:"environment" binding:"required"`
	IndoorDimensions  string                 `json:"indoor_dimensions"`
	OutdoorDimensions string                 `json:"outdoor_dimensions"`
	Price             string                 `json:"price"`
	Remarks           string                 `json:"remarks"`
	IsPinned          bool                   `json:"is_pinned"`
}

// UpdateProductInput is the DTO for editing a catalog product.
type UpdateProductInput struct {
	Name              *string                 `json:"name"`
	BrandID           *uuid.UUID              `json:"brand_id"`
	StyleID           *uuid.UUID              `json:"style_id"`
	TypeID            *uuid.UUID              `json:"type_id"`
	PipeID            *uuid.UUID              `json:"pipe_id"`
	Environment       *domain.EnvironmentType `json:"environment"`
	IndoorDimensions  *string                 `json:"indoor_dimensions"`
	OutdoorDimensions *string                 `json:"outdoor_dimensions"`
	Price             *string                 `json:"price"`
	Remarks           *string                 `json:"remarks"`
	IsPinned          *bool                   `json:"is_pinned"`
}

// CatalogService defines the product catalog contract. Price text is stored
// exactly as entered; only exports and totals interpret it numerically.
type CatalogService interface {
	Create(ctx context.Context, input CreateProductInput) (*domain.Product, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Product, error)
	List(ctx context.Context, filter domain.ProductFilter) ([]domain.Product, int, error)
	ListPinned(ctx context.Context) ([]domain.Product, error)
	Update(ctx context.Context, id uuid.UUID, input UpdateProductInput) (*domain.Product, error)
	SetPinned(ctx context.Context, id uuid.UUID, pinned bool) error
	Delete(ctx context.Context, id uuid.UUID) error
	Compare(ctx context.Context, ids []uuid.UUID) ([]domain.Product, error)
	ExportCSV(ctx context.Context) ([]byte, error)
	ExportWorkbook(ctx context.Context) ([]byte, error)
	ImportWorkbook(ctx context.Context, data []byte) (int, error)
}

type catalogService struct {
	products port.ProductRepository
	taxonomy TaxonomyService
}

// NewCatalogService creates a new CatalogService implementation.
func NewCatalogService(products port.ProductRepository, taxonomy TaxonomyService) CatalogService {
	return &catalogService{products: products, taxonomy: taxonomy}
}

func (s *catalogService) Create(ctx context.Context, input CreateProductInput) (*domain.Product, error) {
	if !domain.ValidEnvironments[input.Environment] {
		return nil, domain.ErrInvalidInput
	}
	product := &domain.Product{
		Name:              input.Name,
		BrandID:           input.BrandID,
		StyleID:           input.StyleID,
		TypeID:            input.TypeID,
		PipeID:            input.PipeID,
		Environment:       input.Environment,
		IndoorDimensions:  input.IndoorDimensions,
		OutdoorDimensions: input.OutdoorDimensions,
		Price:             input.Price,
		Remarks:           input.Remarks,
		IsPinned:          input.IsPinned,
	}
	if err := s.products.Create(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

func (s *catalogService) GetByID(ctx context.Context, id uuid.UUID) (*domain.Product, error) {
	return s.products.GetByID(ctx, id)
}

func (s *catalogService) List(ctx context.Context, filter domain.ProductFilter) ([]domain.Product, int, error) {
	return s.products.List(ctx, filter)
}

func (s *catalogService) ListPinned(ctx context.Context) ([]domain.Product, error) {
	return s.products.ListPinned(ctx)
}

func (s *catalogService) Update(ctx context.Context, id uuid.UUID, input UpdateProductInput) (*domain.Product, error) {
	product, err := s.products.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		product.Name = *input.Name
	}
	if input.BrandID != nil {
		product.BrandID = *input.BrandID
	}
	if input.StyleID != nil {
		product.StyleID = *input.StyleID
	}
	if input.TypeID != nil {
		product.TypeID = *input.TypeID
	}
	if input.PipeID != nil {
		product.PipeID = *input.PipeID
	}
	if input.Environment != nil {
		if !domain.ValidEnvironments[*input.Environment] {
			return nil, domain.ErrInvalidInput
		}
		product.Environment = *input.Environment
	}
	if input.IndoorDimensions != nil {
		product.IndoorDimensions = *input.IndoorDimensions
	}
	if input.OutdoorDimensions != nil {
		product.OutdoorDimensions = *input.OutdoorDimensions
	}
	if input.Price != nil {
		product.Price = *input.Price
	}
	if input.Remarks != nil {
		product.Remarks = *input.Remarks
	}
	if input.IsPinned != nil {
		product.IsPinned = *input.IsPinned
	}

	if err := s.products.Update(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

func (s *catalogService) SetPinned(ctx context.Context, id uuid.UUID, pinned bool) error {
	return s.products.SetPinned(ctx, id, pinned)
}

func (s *catalogService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.products.Delete(ctx, id)
}

// maxCompare caps the side-by-side comparison set.
const maxCompare = 3

// Compare returns the selected products in request order for side-by-side
// comparison. Duplicates are collapsed; a missing product fails the whole
// request.
func (s *catalogService) Compare(ctx context.Context, ids []uuid.UUID) ([]domain.Product, error) {
	seen := make(map[uuid.UUID]bool, len(ids))
	unique := ids[:0:0]
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			unique = append(unique, id)
		}
	}
	if len(unique) == 0 || len(unique) > maxCompare {
		return nil, domain.ErrInvalidInput
	}

	products := make([]domain.Product, 0, len(unique))
	for _, id := range unique {
		p, err := s.products.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		products = append(products, *p)
	}
	return products, nil
}

func (s *catalogService) labelFunc(ctx context.Context) (func(string) string, error) {
	labels, err := s.taxonomy.ResolveLabels(ctx)
	if err != nil {
		return nil, err
	}
	// a deleted option must not blank the cell; exports show "unknown"
	return func(id string) string {
		if l, ok := labels[id]; ok {
			return l.Label
		}
		return "unknown"
	}, nil
}

func (s *catalogService) ExportCSV(ctx context.Context) ([]byte, error) {
	products, _, err := s.products.List(ctx, domain.ProductFilter{Limit: -1})
	if err != nil {
		return nil, err
	}
	labels, err := s.labelFunc(ctx)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	buf.Write(csvexport.BOM)
	w := csvexport.NewWriter(&buf, labels)
	if err := w.WriteHeader(); err != nil {
		return nil, err
	}
	if err := w.WriteProducts(products); err != nil {
		return nil, err
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (s *catalogService) ExportWorkbook(ctx context.Context) ([]byte, error) {
	products, _, err := s.products.List(ctx, domain.ProductFilter{Limit: -1})
	if err != nil {
		return nil, err
	}
	labels, err := s.labelFunc(ctx)
	if err != nil {
		return nil, err
	}
	return spreadsheet.GenerateWorkbook(products, spreadsheet.Labels(labels))
}

// ImportWorkbook replaces the catalog with the contents of an uploaded
// workbook. Mapping happens up front so a malformed upload is rejected
// before any row is persisted.
func (s *catalogService) ImportWorkbook(ctx context.Context, data []byte) (int, error) {
	rows, err := spreadsheet.ReadWorkbook(data)
	if err != nil {
		return 0, err
	}
	taxonomy, err := s.taxonomy.ListAll(ctx)
	if err != nil {
		return 0, err
	}
	products, err := sheetRows(rows, taxonomy)
	if err != nil {
		return 0, err
	}
	if err := s.products.ReplaceAll(ctx, products); err != nil {
		return 0, err
	}
	return len(products), nil
}
