package csvexport

import (
	"encoding/csv"
	"fmt"
	"io"
	"regexp"
	"strings"
	"time"

	"airquote/internal/domain"
)

// UTF-8 BOM bytes for Excel compatibility on Windows.
var BOM = []byte{0xEF, 0xBB, 0xBF}

// columns defines the CSV header row for a catalog export.
var columns = []string{
	"Name",
	"Brand",
	"Style",
	"Type",
	"Pipe",
	"Environment",
	"Indoor Dimensions",
	"Outdoor Dimensions",
	"Price",
	"Remarks",
	"Pinned",
	"Created At",
}

// Labels resolves taxonomy option IDs to display labels for export rows.
type Labels func(id string) string

// Writer wraps csv.Writer for exporting catalog products as CSV.
type Writer struct {
	csv    *csv.Writer
	labels Labels
}

// NewWriter creates a Writer that writes CSV to w, resolving taxonomy IDs
// through labels.
func NewWriter(w io.Writer, labels Labels) *Writer {
	return &Writer{csv: csv.NewWriter(w), labels: labels}
}

// WriteHeader writes the header row.
func (w *Writer) WriteHeader() error {
	return w.csv.Write(columns)
}

// WriteProducts converts a batch of products to CSV rows and writes them.
func (w *Writer) WriteProducts(products []domain.Product) error {
	for i := range products {
		row := w.productToRow(&products[i])
		if err := w.csv.Write(row); err != nil {
			return err
		}
	}
	return nil
}

// Flush flushes the underlying csv.Writer buffer.
func (w *Writer) Flush() {
	w.csv.Flush()
}

// Error returns any error from the underlying csv.Writer.
func (w *Writer) Error() error {
	return w.csv.Error()
}

func (w *Writer) productToRow(p *domain.Product) []string {
	row := make([]string, len(columns))
	row[0] = p.Name
	row[1] = w.labels(p.BrandID.String())
	row[2] = w.labels(p.StyleID.String())
	row[3] = w.labels(p.TypeID.String())
	row[4] = w.labels(p.PipeID.String())
	row[5] = string(p.Environment)
	row[6] = p.IndoorDimensions
	row[7] = p.OutdoorDimensions
	row[8] = p.Price
	row[9] = p.Remarks
	row[10] = formatBool(p.IsPinned)
	row[11] = p.CreatedAt.Format(time.RFC3339)
	return row
}

func formatBool(v bool) string {
	if v {
		return "Yes"
	}
	return "No"
}

// nonAlphanumeric matches characters that are not alphanumeric, hyphen, or underscore.
var nonAlphanumeric = regexp.MustCompile(`[^a-zA-Z0-9_-]+`)

// multiUnderscore matches consecutive underscores.
var multiUnderscore = regexp.MustCompile(`_{2,}`)

// SanitizeFilename cleans a name for use in Content-Disposition.
// Replaces non-alphanumeric chars (except - _) with _, collapses consecutive
// underscores, and truncates to 100 chars.
func SanitizeFilename(name string) string {
	s := nonAlphanumeric.ReplaceAllString(name, "_")
	s = multiUnderscore.ReplaceAllString(s, "_")
	s = strings.Trim(s, "_")
	if len(s) > 100 {
		s = s[:100]
	}
	return s
}

// BuildFilename returns a sanitized filename for Content-Disposition header.
// Format: {sanitized_name}_{YYYY-MM-DD}.csv
func BuildFilename(name string) string {
	sanitized := SanitizeFilename(name)
	date := time.Now().Format("2006-01-02")
	return fmt.Sprintf("%s_%s.csv", sanitized, date)
}
