package port

import (
	"context"

	"github.com/google/uuid"

	"airquote/internal/domain"
	"airquote/internal/quote"
)

// SheetFetcher retrieves the published CSV form of a shared spreadsheet.
// Implementations normalize the share URL before fetching.
type SheetFetcher interface {
	FetchCSV(ctx context.Context, shareURL string) ([][]string, error)
}

// QuoteRenderer turns a quotation session into a printable document.
type QuoteRenderer interface {
	Render(session *quote.Session, products map[uuid.UUID]domain.Product) ([]byte, error)
}
