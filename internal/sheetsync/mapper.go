package sheetsync

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"airquote/internal/domain"
)

// column aliases accepted in the header row, per target field.
var headerAliases = map[string][]string{
	"name":        {"name", "product", "product name"},
	"brand":       {"brand"},
	"style":       {"style"},
	"type":        {"type", "kind"},
	"pipe":        {"pipe", "pipe gauge"},
	"environment": {"environment", "env"},
	"indoor":      {"indoor dimensions", "indoor", "dimensions"},
	"outdoor":     {"outdoor dimensions", "outdoor"},
	"price":       {"price", "list price", "suggested price"},
	"remarks":     {"remarks", "notes"},
}

const fallbackName = "Imported product"

// Taxonomy is the label lookup used while mapping rows. Options are grouped
// by category in display order; the first option of each category is the
// fallback when a cell's label is unknown.
type Taxonomy map[domain.TaxonomyCategory][]domain.TaxonomyOption

// validate reports the first category that has no options. Mapping needs a
// fallback option per category, so an empty category must fail the sync up
// front instead of producing products with nil references.
func (t Taxonomy) validate() error {
	for _, cat := range []domain.TaxonomyCategory{
		domain.CategoryBrand,
		domain.CategoryStyle,
		domain.CategoryType,
		domain.CategoryPipe,
	} {
		if len(t[cat]) == 0 {
			return fmt.Errorf("%w: %s", domain.ErrTaxonomyEmpty, cat)
		}
	}
	return nil
}

func (t Taxonomy) resolve(category domain.TaxonomyCategory, label string) uuid.UUID {
	opts := t[category]
	label = strings.TrimSpace(strings.ToLower(label))
	for _, opt := range opts {
		if strings.ToLower(opt.Label) == label {
			return opt.ID
		}
	}
	return opts[0].ID
}

// MapRows converts fetched CSV records into catalog products. The first
// record is the header row; rows become products even when cells are blank
// or labels are unknown, so one odd row never sinks the whole sheet. The
// import is still all-or-nothing at the persistence step.
func MapRows(records [][]string, taxonomy Taxonomy) ([]domain.Product, error) {
	if err := taxonomy.validate(); err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, domain.ErrSheetEmpty
	}

	cols := indexHeader(records[0])
	if _, ok := cols["name"]; !ok {
		return nil, domain.ErrSheetMalformed
	}
	if len(records) < 2 {
		return nil, domain.ErrSheetEmpty
	}

	products := make([]domain.Product, 0, len(records)-1)
	for _, row := range records[1:] {
		if blankRow(row) {
			continue
		}
		cell := func(field string) string {
			i, ok := cols[field]
			if !ok || i >= len(row) {
				return ""
			}
			return strings.TrimSpace(row[i])
		}

		name := cell("name")
		if name == "" {
			name = fallbackName
		}

		products = append(products, domain.Product{
			ID:                uuid.New(),
			Name:              name,
			BrandID:           taxonomy.resolve(domain.CategoryBrand, cell("brand")),
			StyleID:           taxonomy.resolve(domain.CategoryStyle, cell("style")),
			TypeID:            taxonomy.resolve(domain.CategoryType, cell("type")),
			PipeID:            taxonomy.resolve(domain.CategoryPipe, cell("pipe")),
			Environment:       mapEnvironment(cell("environment")),
			IndoorDimensions:  cell("indoor"),
			OutdoorDimensions: cell("outdoor"),
			Price:             cell("price"),
			Remarks:           cell("remarks"),
			IsPinned:          false,
		})
	}

	if len(products) == 0 {
		return nil, domain.ErrSheetEmpty
	}
	return products, nil
}

func indexHeader(header []string) map[string]int {
	cols := make(map[string]int)
	for i, h := range header {
		h = strings.TrimSpace(strings.ToLower(h))
		for field, aliases := range headerAliases {
			if _, taken := cols[field]; taken {
				continue
			}
			for _, alias := range aliases {
				if h == alias {
					cols[field] = i
				}
			}
		}
	}
	return cols
}

func blankRow(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

func mapEnvironment(s string) domain.EnvironmentType {
	s = strings.ToLower(s)
	switch {
	case strings.Contains(s, "both"):
		return domain.EnvBoth
	case strings.Contains(s, "heat"):
		return domain.EnvHeating
	case strings.Contains(s, "indoor"):
		return domain.EnvIndoorUnit
	default:
		return domain.EnvCooling
	}
}
