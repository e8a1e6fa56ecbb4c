package sheetsync

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"net/http"
	"time"

	"airquote/internal/config"
	"airquote/internal/domain"
	"airquote/internal/port"
)

type httpFetcher struct {
	client  *http.Client
	maxBody int64
}

// NewHTTPFetcher creates a SheetFetcher backed by net/http. The response
// body is capped so a mispasted URL pointing at something huge cannot
// exhaust memory.
func NewHTTPFetcher(cfg *config.SheetConfig) port.SheetFetcher {
	timeout := cfg.FetchTimeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	maxBody := cfg.MaxBodyMB
	if maxBody <= 0 {
		maxBody = 10
	}
	return &httpFetcher{
		client:  &http.Client{Timeout: timeout},
		maxBody: maxBody * 1024 * 1024,
	}
}

func (f *httpFetcher) FetchCSV(ctx context.Context, shareURL string) ([][]string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, NormalizeShareURL(shareURL), nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrSheetUnreachable, err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrSheetUnreachable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d", domain.ErrSheetUnreachable, resp.StatusCode)
	}

	reader := csv.NewReader(io.LimitReader(resp.Body, f.maxBody))
	reader.FieldsPerRecord = -1 // rows may be ragged; the mapper pads short rows
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrSheetMalformed, err)
	}
	return records, nil
}
