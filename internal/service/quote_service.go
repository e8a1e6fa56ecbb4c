package service

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"airquote/internal/domain"
	"airquote/internal/port"
	"airquote/internal/quote"
)

// UpdateSessionInput is the DTO for editing quotation metadata. The title
// travels through the focus endpoints instead, so it is absent here.
type UpdateSessionInput struct {
	CustomerName    *string `json:"customer_name"`
	CustomerAddress *string `json:"customer_address"`
	QuoteDate       *string `json:"quote_date"`
	Notes           *string `json:"notes"`
}

// UpdateCustomLineInput is the DTO for editing a custom line.
type UpdateCustomLineInput struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Quantity    *int    `json:"quantity"`
	UnitPrice   *string `json:"unit_price"`
}

// SessionView is the session plus its derived totals, as returned to
// callers. Totals are recomputed on every read, never stored.
type SessionView struct {
	*quote.Session
	GrandTotal int `json:"grand_total"`
}

// QuoteService manages quotation sessions. Sessions live in memory only; a
// quotation is an editing surface, not a stored document, and the PDF is
// its durable form.
type QuoteService interface {
	Create(ctx context.Context) (*SessionView, error)
	Get(id uuid.UUID) (*SessionView, error)
	Delete(id uuid.UUID) error
	UpdateDetails(id uuid.UUID, input UpdateSessionInput) (*SessionView, error)
	SetTitle(id uuid.UUID, title string) (*SessionView, error)

	SetCatalogQuantity(id, productID uuid.UUID, quantity int) (*SessionView, error)
	SetCatalogUnitPrice(id, productID uuid.UUID, text string) (*SessionView, error)
	RevertCatalogUnitPrice(id, productID uuid.UUID) (*SessionView, error)

	AddCustomLine(id uuid.UUID) (*SessionView, error)
	UpdateCustomLine(id uuid.UUID, index int, input UpdateCustomLineInput) (*SessionView, error)
	RemoveCustomLine(id uuid.UUID, index int) (*SessionView, error)
	ApplyTemplate(id uuid.UUID, index int, template string) (*SessionView, error)

	BeginEdit(id uuid.UUID, kind quote.FocusKind, lineID uuid.UUID) (*SessionView, error)
	CommitEdit(id uuid.UUID, kind quote.FocusKind) (*SessionView, error)
	CancelEdit(id uuid.UUID, kind quote.FocusKind, originalValue string) (*SessionView, error)
	BeginTitleEdit(id uuid.UUID) (*SessionView, error)
	CommitTitleEdit(id uuid.UUID, title string) (*SessionView, error)
	CancelTitleEdit(id uuid.UUID) (*SessionView, error)

	Templates() []quote.Template
	ExportPDF(ctx context.Context, id uuid.UUID) ([]byte, error)
}

type sessionEntry struct {
	session *quote.Session
	touched time.Time
}

type quoteService struct {
	products port.ProductRepository
	renderer port.QuoteRenderer
	ttl      time.Duration

	mu       sync.Mutex
	sessions map[uuid.UUID]*sessionEntry
}

// NewQuoteService creates a new QuoteService implementation. Sessions idle
// longer than ttl are dropped lazily on access; a zero ttl disables expiry.
func NewQuoteService(products port.ProductRepository, renderer port.QuoteRenderer, ttl time.Duration) QuoteService {
	return &quoteService{
		products: products,
		renderer: renderer,
		ttl:      ttl,
		sessions: make(map[uuid.UUID]*sessionEntry),
	}
}

func (s *quoteService) Create(ctx context.Context) (*SessionView, error) {
	pinned, err := s.products.ListPinned(ctx)
	if err != nil {
		return nil, err
	}
	if len(pinned) == 0 {
		return nil, domain.ErrNoPinnedProducts
	}

	session := quote.NewSession(pinned)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.sweepLocked()
	s.sessions[session.ID] = &sessionEntry{session: session, touched: time.Now()}
	return view(session), nil
}

func (s *quoteService) Get(id uuid.UUID) (*SessionView, error) {
	return s.with(id, func(*quote.Session) error { return nil })
}

func (s *quoteService) Delete(id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.sessions[id]; !ok {
		return domain.ErrSessionNotFound
	}
	delete(s.sessions, id)
	return nil
}

// with runs fn against the locked session and returns the refreshed view.
// Every mutation funnels through here, so reads after writes always see the
// recomputed totals.
func (s *quoteService) with(id uuid.UUID, fn func(*quote.Session) error) (*SessionView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sweepLocked()

	entry, ok := s.sessions[id]
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	if err := fn(entry.session); err != nil {
		return nil, err
	}
	entry.touched = time.Now()
	return view(entry.session), nil
}

func (s *quoteService) sweepLocked() {
	if s.ttl <= 0 {
		return
	}
	cutoff := time.Now().Add(-s.ttl)
	for id, entry := range s.sessions {
		if entry.touched.Before(cutoff) {
			delete(s.sessions, id)
		}
	}
}

func view(session *quote.Session) *SessionView {
	return &SessionView{Session: session, GrandTotal: session.GrandTotal()}
}

func (s *quoteService) UpdateDetails(id uuid.UUID, input UpdateSessionInput) (*SessionView, error) {
	return s.with(id, func(session *quote.Session) error {
		if input.CustomerName != nil {
			session.CustomerName = *input.CustomerName
		}
		if input.CustomerAddress != nil {
			session.CustomerAddress = *input.CustomerAddress
		}
		if input.QuoteDate != nil {
			session.QuoteDate = *input.QuoteDate
		}
		if input.Notes != nil {
			session.Notes = *input.Notes
		}
		return nil
	})
}

func (s *quoteService) SetTitle(id uuid.UUID, title string) (*SessionView, error) {
	return s.with(id, func(session *quote.Session) error {
		session.Title = title
		return nil
	})
}

func (s *quoteService) SetCatalogQuantity(id, productID uuid.UUID, quantity int) (*SessionView, error) {
	return s.with(id, func(session *quote.Session) error {
		return session.SetCatalogQuantity(productID, quantity)
	})
}

func (s *quoteService) SetCatalogUnitPrice(id, productID uuid.UUID, text string) (*SessionView, error) {
	return s.with(id, func(session *quote.Session) error {
		return session.SetCatalogUnitPrice(productID, text)
	})
}

func (s *quoteService) RevertCatalogUnitPrice(id, productID uuid.UUID) (*SessionView, error) {
	return s.with(id, func(session *quote.Session) error {
		return session.RevertCatalogUnitPrice(productID)
	})
}

func (s *quoteService) AddCustomLine(id uuid.UUID) (*SessionView, error) {
	return s.with(id, func(session *quote.Session) error {
		session.AddCustomLine()
		return nil
	})
}

func (s *quoteService) UpdateCustomLine(id uuid.UUID, index int, input UpdateCustomLineInput) (*SessionView, error) {
	return s.with(id, func(session *quote.Session) error {
		line, err := session.CustomLineAt(index)
		if err != nil {
			return err
		}
		if input.Name != nil {
			line.SetName(*input.Name)
		}
		if input.Description != nil {
			line.SetDescription(*input.Description)
		}
		if input.Quantity != nil {
			line.SetQuantity(*input.Quantity)
		}
		if input.UnitPrice != nil {
			line.SetUnitPrice(*input.UnitPrice)
		}
		return nil
	})
}

func (s *quoteService) RemoveCustomLine(id uuid.UUID, index int) (*SessionView, error) {
	return s.with(id, func(session *quote.Session) error {
		return session.RemoveCustomLine(index)
	})
}

func (s *quoteService) ApplyTemplate(id uuid.UUID, index int, template string) (*SessionView, error) {
	return s.with(id, func(session *quote.Session) error {
		return session.ApplyTemplate(index, template)
	})
}

func (s *quoteService) BeginEdit(id uuid.UUID, kind quote.FocusKind, lineID uuid.UUID) (*SessionView, error) {
	return s.with(id, func(session *quote.Session) error {
		session.BeginEdit(kind, lineID)
		return nil
	})
}

func (s *quoteService) CommitEdit(id uuid.UUID, kind quote.FocusKind) (*SessionView, error) {
	return s.with(id, func(session *quote.Session) error {
		session.CommitEdit(kind)
		return nil
	})
}

func (s *quoteService) CancelEdit(id uuid.UUID, kind quote.FocusKind, originalValue string) (*SessionView, error) {
	return s.with(id, func(session *quote.Session) error {
		session.CancelEdit(kind, originalValue)
		return nil
	})
}

func (s *quoteService) BeginTitleEdit(id uuid.UUID) (*SessionView, error) {
	return s.with(id, func(session *quote.Session) error {
		session.BeginTitleEdit()
		return nil
	})
}

func (s *quoteService) CommitTitleEdit(id uuid.UUID, title string) (*SessionView, error) {
	return s.with(id, func(session *quote.Session) error {
		session.Title = title
		session.CommitTitleEdit()
		return nil
	})
}

func (s *quoteService) CancelTitleEdit(id uuid.UUID) (*SessionView, error) {
	return s.with(id, func(session *quote.Session) error {
		session.CancelTitleEdit()
		return nil
	})
}

func (s *quoteService) Templates() []quote.Template {
	return quote.Templates
}

func (s *quoteService) ExportPDF(ctx context.Context, id uuid.UUID) ([]byte, error) {
	s.mu.Lock()
	entry, ok := s.sessions[id]
	if !ok {
		s.mu.Unlock()
		return nil, domain.ErrSessionNotFound
	}
	// render from a snapshot so edits arriving mid-export cannot tear the
	// line slices under the renderer
	session := entry.session.Snapshot()
	entry.touched = time.Now()
	s.mu.Unlock()

	products := make(map[uuid.UUID]domain.Product, len(session.CatalogLines))
	for _, line := range session.CatalogLines {
		p, err := s.products.GetByID(ctx, line.ProductID)
		if err != nil {
			// a product deleted mid-session still renders, with a placeholder name
			continue
		}
		products[line.ProductID] = *p
	}
	return s.renderer.Render(session, products)
}
