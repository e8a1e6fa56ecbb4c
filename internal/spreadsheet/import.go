package spreadsheet

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"airquote/internal/domain"
)

// ReadWorkbook extracts the first sheet of an .xlsx upload as raw rows.
// The result feeds the same row mapper as a synced CSV sheet, so .xlsx
// uploads and remote sheets go through one import path.
func ReadWorkbook(data []byte) ([][]string, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrImportFailed, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, domain.ErrSheetEmpty
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrImportFailed, err)
	}
	if len(rows) == 0 {
		return nil, domain.ErrSheetEmpty
	}
	return rows, nil
}
