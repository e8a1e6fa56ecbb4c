// Package spreadsheet reads and writes the catalog as .xlsx workbooks.
// The column layout mirrors the CSV export so a workbook round-trips
// through the same row mapper as a synced sheet.
package spreadsheet

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"airquote/internal/domain"
)

const sheetName = "Catalog"

var exportHeaders = []string{
	"Name", "Brand", "Style", "Type", "Pipe", "Environment",
	"Indoor Dimensions", "Outdoor Dimensions", "Price", "Remarks", "Pinned",
}

var exportColumns = []string{"A", "B", "C", "D", "E", "F", "G", "H", "I", "J", "K"}

// Labels resolves taxonomy option IDs to display labels.
type Labels func(id string) string

// GenerateWorkbook renders the catalog as an .xlsx workbook and returns the
// file bytes.
func GenerateWorkbook(products []domain.Product, labels Labels) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), sheetName); err != nil {
		return nil, fmt.Errorf("set sheet name: %w", err)
	}

	widths := []float64{32, 14, 14, 14, 10, 12, 20, 20, 12, 28, 8}
	for i, col := range exportColumns {
		if err := f.SetColWidth(sheetName, col, col, widths[i]); err != nil {
			return nil, fmt.Errorf("set col width %s: %w", col, err)
		}
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "#FFFFFF", Size: 11},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#333333"}, Pattern: 1},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
	})
	if err != nil {
		return nil, fmt.Errorf("create header style: %w", err)
	}

	for i, h := range exportHeaders {
		f.SetCellValue(sheetName, exportColumns[i]+"1", h)
	}
	lastCol := exportColumns[len(exportColumns)-1]
	f.SetCellStyle(sheetName, "A1", lastCol+"1", headerStyle)

	row := 2
	for i := range products {
		p := &products[i]
		rowStr := fmt.Sprintf("%d", row)
		f.SetCellValue(sheetName, "A"+rowStr, p.Name)
		f.SetCellValue(sheetName, "B"+rowStr, labels(p.BrandID.String()))
		f.SetCellValue(sheetName, "C"+rowStr, labels(p.StyleID.String()))
		f.SetCellValue(sheetName, "D"+rowStr, labels(p.TypeID.String()))
		f.SetCellValue(sheetName, "E"+rowStr, labels(p.PipeID.String()))
		f.SetCellValue(sheetName, "F"+rowStr, string(p.Environment))
		f.SetCellValue(sheetName, "G"+rowStr, p.IndoorDimensions)
		f.SetCellValue(sheetName, "H"+rowStr, p.OutdoorDimensions)
		f.SetCellValue(sheetName, "I"+rowStr, p.Price)
		f.SetCellValue(sheetName, "J"+rowStr, p.Remarks)
		f.SetCellValue(sheetName, "K"+rowStr, formatPinned(p.IsPinned))
		row++
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func formatPinned(v bool) string {
	if v {
		return "Yes"
	}
	return "No"
}
