package domain

import (
	"time"

	"github.com/google/uuid"
)

// TaxonomyOption is one entry in a taxonomy category (brand, style, type,
// pipe gauge). Label is what the user sees; Color is a hex hint for rendering.
type TaxonomyOption struct {
	ID        uuid.UUID        `db:"id" json:"id"`
	Category  TaxonomyCategory `db:"category" json:"category"`
	Label     string           `db:"label" json:"label"`
	Color     string           `db:"color" json:"color"`
	Position  int              `db:"position" json:"position"`
	CreatedAt time.Time        `db:"created_at" json:"created_at"`
	UpdatedAt time.Time        `db:"updated_at" json:"updated_at"`
}

// ResolvedLabel is the display projection of a taxonomy option.
type ResolvedLabel struct {
	Label string `json:"label"`
	Color string `json:"color"`
}

// Product is a catalog item. Price is stored exactly as entered, possibly
// with comma thousands separators; it is parsed only where a numeric value
// is needed.
type Product struct {
	ID                uuid.UUID       `db:"id" json:"id"`
	Name              string          `db:"name" json:"name"`
	BrandID           uuid.UUID       `db:"brand_id" json:"brand_id"`
	StyleID           uuid.UUID       `db:"style_id" json:"style_id"`
	TypeID            uuid.UUID       `db:"type_id" json:"type_id"`
	PipeID            uuid.UUID       `db:"pipe_id" json:"pipe_id"`
	Environment       EnvironmentType `db:"environment" json:"environment"`
	IndoorDimensions  string          `db:"indoor_dimensions" json:"indoor_dimensions"`
	OutdoorDimensions string          `db:"outdoor_dimensions" json:"outdoor_dimensions"`
	Price             string          `db:"price" json:"price"`
	Remarks           string          `db:"remarks" json:"remarks"`
	IsPinned          bool            `db:"is_pinned" json:"is_pinned"`
	CreatedAt         time.Time       `db:"created_at" json:"created_at"`
	UpdatedAt         time.Time       `db:"updated_at" json:"updated_at"`
}

// Preference is a persisted key/value setting. Absence of a key means the
// built-in default applies.
type Preference struct {
	Key       string    `db:"key" json:"key"`
	Value     string    `db:"value" json:"value"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// Well-known preference keys.
const (
	PrefSheetURL = "sheet_url"
	PrefAutoSync = "auto_sync"
	PrefPageSize = "page_size"
)
