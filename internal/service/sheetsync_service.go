package service

import (
	"context"
	"strings"

	"airquote/internal/domain"
	"airquote/internal/port"
	"airquote/internal/sheetsync"
)

// SyncResult reports what a completed sheet sync did.
type SyncResult struct {
	Imported  int    `json:"imported"`
	SourceURL string `json:"source_url"`
}

// SheetSyncService replaces the catalog from a shared spreadsheet. The
// replace is all-or-nothing: any fetch, parse, or mapping failure leaves
// the existing catalog untouched.
type SheetSyncService interface {
	Sync(ctx context.Context, shareURL string) (*SyncResult, error)
	SyncFromPreference(ctx context.Context) (*SyncResult, error)
}

type sheetSyncService struct {
	fetcher     port.SheetFetcher
	products    port.ProductRepository
	taxonomy    TaxonomyService
	preferences PreferenceService
}

// NewSheetSyncService creates a new SheetSyncService implementation.
func NewSheetSyncService(
	fetcher port.SheetFetcher,
	products port.ProductRepository,
	taxonomy TaxonomyService,
	preferences PreferenceService,
) SheetSyncService {
	return &sheetSyncService{
		fetcher:     fetcher,
		products:    products,
		taxonomy:    taxonomy,
		preferences: preferences,
	}
}

func (s *sheetSyncService) Sync(ctx context.Context, shareURL string) (*SyncResult, error) {
	if strings.TrimSpace(shareURL) == "" {
		return nil, domain.ErrInvalidInput
	}

	records, err := s.fetcher.FetchCSV(ctx, shareURL)
	if err != nil {
		return nil, err
	}

	taxonomy, err := s.taxonomy.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	products, err := sheetRows(records, taxonomy)
	if err != nil {
		return nil, err
	}

	if err := s.products.ReplaceAll(ctx, products); err != nil {
		return nil, err
	}

	return &SyncResult{Imported: len(products), SourceURL: shareURL}, nil
}

// SyncFromPreference runs a sync against the stored sheet URL. This is the
// entry point used when auto sync is enabled.
func (s *sheetSyncService) SyncFromPreference(ctx context.Context) (*SyncResult, error) {
	url, err := s.preferences.Get(ctx, domain.PrefSheetURL)
	if err != nil {
		return nil, err
	}
	return s.Sync(ctx, url)
}

// sheetRows maps fetched rows onto catalog products using the current
// taxonomy. Both the sheet sync path and workbook uploads funnel through
// this one conversion.
func sheetRows(rows [][]string, taxonomy map[domain.TaxonomyCategory][]domain.TaxonomyOption) ([]domain.Product, error) {
	return sheetsync.MapRows(rows, sheetsync.Taxonomy(taxonomy))
}
