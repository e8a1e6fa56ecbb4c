package domain

import "errors"

var (
	ErrNotFound         = errors.New("resource not found")
	ErrInvalidCategory  = errors.New("invalid taxonomy category")
	ErrInvalidInput     = errors.New("invalid input")
	ErrNoPinnedProducts = errors.New("no pinned products to quote")
	ErrSessionNotFound  = errors.New("quotation session not found")
	ErrLineNotFound     = errors.New("quotation line not found")
	ErrUnknownTemplate  = errors.New("unknown line item template")
	ErrExportFailed     = errors.New("export rendering failed")
	ErrSheetUnreachable = errors.New("remote sheet could not be fetched")
	ErrSheetMalformed   = errors.New("remote sheet has an unexpected format")
	ErrSheetEmpty       = errors.New("remote sheet contains no data rows")
	ErrTaxonomyEmpty    = errors.New("taxonomy category has no options")
	ErrImportFailed     = errors.New("spreadsheet import failed")
)
