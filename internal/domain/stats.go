package domain

// BrandShare is one brand's slice of the catalog, for the dashboard chart.
type BrandShare struct {
	Label   string  `json:"label"`
	Color   string  `json:"color"`
	Count   int     `json:"count"`
	Percent float64 `json:"percent"`
}

// StyleShare describes the most common style across the catalog.
type StyleShare struct {
	Label   string  `json:"label"`
	Count   int     `json:"count"`
	Percent float64 `json:"percent"`
}

// CatalogStats is the dashboard summary. AveragePrice is pre-formatted with
// thousands separators; products whose price text does not parse are
// excluded from the average rather than counted as zero.
type CatalogStats struct {
	Total         int          `json:"total"`
	Pinned        int          `json:"pinned"`
	Heating       int          `json:"heating"`
	Cooling       int          `json:"cooling"`
	AveragePrice  string       `json:"average_price"`
	BrandShares   []BrandShare `json:"brand_shares"`
	DominantStyle StyleShare   `json:"dominant_style"`
}

// ProductFilter narrows catalog listings. Zero values mean "no constraint";
// Search matches against name and remarks, case-insensitively. A negative
// Limit disables pagination; a zero Limit applies the default page size.
type ProductFilter struct {
	BrandID     string          `form:"brand_id"`
	StyleID     string          `form:"style_id"`
	TypeID      string          `form:"type_id"`
	PipeID      string          `form:"pipe_id"`
	Environment EnvironmentType `form:"environment"`
	PinnedOnly  bool            `form:"pinned_only"`
	Search      string          `form:"search"`
	Offset      int             `form:"offset"`
	Limit       int             `form:"limit"`
}
