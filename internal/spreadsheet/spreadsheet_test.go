package spreadsheet

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"airquote/internal/domain"
	"airquote/internal/sheetsync"
)

func TestGenerateWorkbookRoundTrip(t *testing.T) {
	brandID := uuid.New()
	products := []domain.Product{
		{
			ID:               uuid.New(),
			Name:             "RAS-28NK",
			BrandID:          brandID,
			Environment:      domain.EnvHeating,
			IndoorDimensions: "79x28x22",
			Price:            "36,500",
			Remarks:          "2024 model",
			IsPinned:         true,
		},
		{
			ID:          uuid.New(),
			Name:        "CS-28",
			BrandID:     brandID,
			Environment: domain.EnvCooling,
			Price:       "28,000",
		},
	}
	labels := func(id string) string {
		if id == brandID.String() {
			return "Hitachi"
		}
		return ""
	}

	data, err := GenerateWorkbook(products, labels)
	require.NoError(t, err)
	require.NotEmpty(t, data)

	rows, err := ReadWorkbook(data)
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(rows), 3)

	assert.Equal(t, "Name", rows[0][0])
	assert.Equal(t, "Price", rows[0][8])
	assert.Equal(t, "RAS-28NK", rows[1][0])
	assert.Equal(t, "Hitachi", rows[1][1])
	assert.Equal(t, "36,500", rows[1][8])
	assert.Equal(t, "Yes", rows[1][10])
}

func TestReadWorkbook_FeedsRowMapper(t *testing.T) {
	brandID := uuid.New()
	products := []domain.Product{
		{ID: uuid.New(), Name: "Unit A", BrandID: brandID, Price: "12,000", Environment: domain.EnvCooling},
	}
	labels := func(id string) string {
		if id == brandID.String() {
			return "Daikin"
		}
		return ""
	}

	data, err := GenerateWorkbook(products, labels)
	require.NoError(t, err)

	rows, err := ReadWorkbook(data)
	require.NoError(t, err)

	tax := sheetsync.Taxonomy{
		domain.CategoryBrand: {{ID: brandID, Category: domain.CategoryBrand, Label: "Daikin"}},
		domain.CategoryStyle: {{ID: uuid.New(), Category: domain.CategoryStyle, Label: "Wall-mount"}},
		domain.CategoryType:  {{ID: uuid.New(), Category: domain.CategoryType, Label: "Inverter"}},
		domain.CategoryPipe:  {{ID: uuid.New(), Category: domain.CategoryPipe, Label: "2/3"}},
	}
	imported, err := sheetsync.MapRows(rows, tax)
	require.NoError(t, err)
	require.Len(t, imported, 1)
	assert.Equal(t, "Unit A", imported[0].Name)
	assert.Equal(t, brandID, imported[0].BrandID)
	assert.Equal(t, "12,000", imported[0].Price)
}

func TestReadWorkbook_RejectsGarbage(t *testing.T) {
	_, err := ReadWorkbook([]byte("not a workbook"))
	assert.ErrorIs(t, err, domain.ErrImportFailed)
}
