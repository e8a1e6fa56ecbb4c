package domain

// TaxonomyCategory identifies one of the four option sets.
type TaxonomyCategory string

const (
	CategoryBrand TaxonomyCategory = "brand"
	CategoryStyle TaxonomyCategory = "style"
	CategoryType  TaxonomyCategory = "type"
	CategoryPipe  TaxonomyCategory = "pipe"
)

// ValidCategories maps every known taxonomy category.
var ValidCategories = map[TaxonomyCategory]bool{
	CategoryBrand: true,
	CategoryStyle: true,
	CategoryType:  true,
	CategoryPipe:  true,
}

// EnvironmentType tags a product with its climate function.
type EnvironmentType string

const (
	EnvHeating    EnvironmentType = "heating"
	EnvCooling    EnvironmentType = "cooling"
	EnvBoth       EnvironmentType = "both"
	EnvIndoorUnit EnvironmentType = "indoor-unit"
)

// ValidEnvironments maps every known environment tag.
var ValidEnvironments = map[EnvironmentType]bool{
	EnvHeating:    true,
	EnvCooling:    true,
	EnvBoth:       true,
	EnvIndoorUnit: true,
}
