// Command seedcatalog converts a catalog Excel workbook into a SQL seed
// file. The workbook uses the same column layout as the catalog export, so a
// previously exported file can be replayed into a fresh database.
// Usage: go run ./cmd/seedcatalog [catalog.xlsx]
// Output: db/seeds/catalog.sql
package main

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"
)

const batchSize = 200

type row struct {
	name        string
	brand       string
	style       string
	kind        string
	pipe        string
	environment string
	indoor      string
	outdoor     string
	price       string
	remarks     string
	pinned      bool
}

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	xlsxPath := "catalog.xlsx"
	if len(os.Args) > 1 {
		xlsxPath = os.Args[1]
	}
	outPath := "db/seeds/catalog.sql"

	f, err := excelize.OpenFile(xlsxPath)
	if err != nil {
		return fmt.Errorf("open Excel file: %w", err)
	}
	defer func() { _ = f.Close() }()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return fmt.Errorf("workbook has no sheets")
	}
	cells, err := f.GetRows(sheets[0])
	if err != nil {
		return fmt.Errorf("read sheet %q: %w", sheets[0], err)
	}
	if len(cells) < 2 {
		return fmt.Errorf("sheet %q has no data rows", sheets[0])
	}

	var rows []row
	for _, r := range cells[1:] {
		get := func(i int) string {
			if i >= len(r) {
				return ""
			}
			return strings.TrimSpace(r[i])
		}
		if get(0) == "" {
			continue
		}
		rows = append(rows, row{
			name:        get(0),
			brand:       get(1),
			style:       get(2),
			kind:        get(3),
			pipe:        get(4),
			environment: get(5),
			indoor:      get(6),
			outdoor:     get(7),
			price:       get(8),
			remarks:     get(9),
			pinned:      strings.EqualFold(get(10), "yes"),
		})
	}
	log.Printf("catalog sheet: %d rows", len(rows))

	out, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("create output file: %w", err)
	}
	defer func() { _ = out.Close() }()

	w := func(s string) error { _, werr := fmt.Fprintln(out, s); return werr }

	for _, line := range []string{
		"-- Catalog seed data generated from Excel.",
		fmt.Sprintf("-- %d products in batches of %d.", len(rows), batchSize),
		"-- Taxonomy labels are resolved at insert time; seed taxonomy first.",
		"BEGIN;",
		"",
	} {
		if werr := w(line); werr != nil {
			return fmt.Errorf("write header: %w", werr)
		}
	}

	for i := 0; i < len(rows); i += batchSize {
		end := i + batchSize
		if end > len(rows) {
			end = len(rows)
		}
		if err := writeBatch(out, rows[i:end]); err != nil {
			return fmt.Errorf("write batch at offset %d: %w", i, err)
		}
	}

	for _, line := range []string{"", "COMMIT;"} {
		if werr := w(line); werr != nil {
			return fmt.Errorf("write footer: %w", werr)
		}
	}

	log.Printf("Generated %d products (%d batches) in %s",
		len(rows), (len(rows)+batchSize-1)/batchSize, outPath)
	return nil
}

func writeBatch(out *os.File, rows []row) error {
	if _, err := fmt.Fprintln(out, `INSERT INTO products
(id, name, brand_id, style_id, type_id, pipe_id, environment,
 indoor_dimensions, outdoor_dimensions, price, remarks, is_pinned,
 created_at, updated_at) VALUES`); err != nil {
		return err
	}

	for i, r := range rows {
		sep := ","
		if i == len(rows)-1 {
			sep = ";"
		}
		line := fmt.Sprintf("('%s', %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %t, NOW(), NOW())%s",
			uuid.New(),
			quote(r.name),
			optionRef("brand", r.brand),
			optionRef("style", r.style),
			optionRef("type", r.kind),
			optionRef("pipe", r.pipe),
			quote(normalizeEnv(r.environment)),
			quote(r.indoor),
			quote(r.outdoor),
			quote(r.price),
			quote(r.remarks),
			r.pinned,
			sep,
		)
		if _, err := fmt.Fprintln(out, line); err != nil {
			return err
		}
	}
	return nil
}

// optionRef emits a subselect resolving a taxonomy label to its id, falling
// back to the category's first option when the label is missing or unknown.
func optionRef(category, label string) string {
	if label == "" {
		return fmt.Sprintf("(SELECT id FROM taxonomy_options WHERE category = '%s' ORDER BY position, created_at LIMIT 1)", category)
	}
	return fmt.Sprintf(
		"(SELECT COALESCE((SELECT id FROM taxonomy_options WHERE category = '%s' AND lower(label) = lower(%s) LIMIT 1), (SELECT id FROM taxonomy_options WHERE category = '%s' ORDER BY position, created_at LIMIT 1)))",
		category, quote(label), category)
}

func normalizeEnv(s string) string {
	switch strings.ToLower(s) {
	case "heating", "cooling", "both", "indoor-unit":
		return strings.ToLower(s)
	default:
		return "cooling"
	}
}

func quote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}
