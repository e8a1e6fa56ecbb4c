package quote

import (
	"time"

	"github.com/google/uuid"

	"airquote/internal/domain"
)

// DefaultTitle is the title every new session starts with. Cancelling a
// title edit restores this constant, not the pre-edit value.
const DefaultTitle = "Air Conditioning Equipment Quotation"

// Session is one editable quotation document: customer metadata, the catalog
// lines snapshot, the user-managed custom lines, and the edit-focus state.
// All mutation is synchronous; callers serialize access.
type Session struct {
	ID              uuid.UUID    `json:"id"`
	CustomerName    string       `json:"customer_name"`
	CustomerAddress string       `json:"customer_address"`
	QuoteDate       string       `json:"quote_date"`
	Title           string       `json:"title"`
	Notes           string       `json:"notes"`
	CatalogLines    []CatalogLine `json:"catalog_lines"`
	CustomLines     []CustomLine  `json:"custom_lines"`

	quantityFocus EditFocus
	priceFocus    EditFocus
	editingTitle  bool
}

// NewSession builds a session from a snapshot of pinned products. Each
// product becomes one catalog line with quantity 1 and the unit price seeded
// from the canonical catalog price. Later catalog edits do not reach an open
// session; quantities are ephemeral per session.
func NewSession(pinned []domain.Product) *Session {
	s := &Session{
		ID:        uuid.New(),
		QuoteDate: time.Now().Format("2006-01-02"),
		Title:     DefaultTitle,
	}
	for _, p := range pinned {
		s.CatalogLines = append(s.CatalogLines, CatalogLine{
			ProductID:     p.ID,
			Quantity:      1,
			UnitPrice:     p.Price,
			OriginalPrice: p.Price,
		})
	}
	return s
}

// Snapshot returns a deep copy of the session. Renders and other long reads
// work on a snapshot so concurrent edits to the live session cannot tear the
// line slices mid-read.
func (s *Session) Snapshot() *Session {
	c := *s
	c.CatalogLines = append([]CatalogLine(nil), s.CatalogLines...)
	c.CustomLines = append([]CustomLine(nil), s.CustomLines...)
	return &c
}

// catalogLine finds the line backed by productID.
func (s *Session) catalogLine(productID uuid.UUID) (*CatalogLine, bool) {
	for i := range s.CatalogLines {
		if s.CatalogLines[i].ProductID == productID {
			return &s.CatalogLines[i], true
		}
	}
	return nil, false
}

// SetCatalogQuantity updates a catalog line's quantity (floored to 1).
func (s *Session) SetCatalogQuantity(productID uuid.UUID, n int) error {
	l, ok := s.catalogLine(productID)
	if !ok {
		return domain.ErrLineNotFound
	}
	l.SetQuantity(n)
	return nil
}

// SetCatalogUnitPrice overrides a catalog line's unit price with raw text.
func (s *Session) SetCatalogUnitPrice(productID uuid.UUID, text string) error {
	l, ok := s.catalogLine(productID)
	if !ok {
		return domain.ErrLineNotFound
	}
	l.SetUnitPrice(text)
	return nil
}

// RevertCatalogUnitPrice restores a catalog line to its canonical price.
func (s *Session) RevertCatalogUnitPrice(productID uuid.UUID) error {
	l, ok := s.catalogLine(productID)
	if !ok {
		return domain.ErrLineNotFound
	}
	l.RevertUnitPrice()
	return nil
}

// AddCustomLine appends an empty custom line and returns it.
func (s *Session) AddCustomLine() *CustomLine {
	s.CustomLines = append(s.CustomLines, NewCustomLine())
	return &s.CustomLines[len(s.CustomLines)-1]
}

// CustomLineAt returns the custom line at index i.
func (s *Session) CustomLineAt(i int) (*CustomLine, error) {
	if i < 0 || i >= len(s.CustomLines) {
		return nil, domain.ErrLineNotFound
	}
	return &s.CustomLines[i], nil
}

// RemoveCustomLine deletes the custom line at index i, preserving order.
func (s *Session) RemoveCustomLine(i int) error {
	if i < 0 || i >= len(s.CustomLines) {
		return domain.ErrLineNotFound
	}
	s.CustomLines = append(s.CustomLines[:i], s.CustomLines[i+1:]...)
	return nil
}

// ApplyTemplate applies the named preset to the custom line at index i.
// The empty name selects ad-hoc entry: the line is cleared instead.
func (s *Session) ApplyTemplate(i int, name string) error {
	l, err := s.CustomLineAt(i)
	if err != nil {
		return err
	}
	if name == "" {
		l.Clear()
		return nil
	}
	t, ok := FindTemplate(name)
	if !ok {
		return domain.ErrUnknownTemplate
	}
	l.ApplyTemplate(t)
	return nil
}

// focus returns the register for kind.
func (s *Session) focus(kind FocusKind) *EditFocus {
	if kind == FocusPrice {
		return &s.priceFocus
	}
	return &s.quantityFocus
}

// BeginEdit opens an inline editor on lineID in the given register,
// implicitly closing whatever that register previously held.
func (s *Session) BeginEdit(kind FocusKind, lineID uuid.UUID) {
	s.focus(kind).Begin(lineID)
}

// CommitEdit closes the register, keeping the current field value.
func (s *Session) CommitEdit(kind FocusKind) {
	s.focus(kind).Commit()
}

// CancelEdit restores the focused line's field to originalValue, then closes
// the register. For quantity the original is re-parsed with the usual floor.
func (s *Session) CancelEdit(kind FocusKind, originalValue string) {
	reg := s.focus(kind)
	lineID, ok := reg.Target()
	if ok {
		if l, found := s.catalogLine(lineID); found {
			switch kind {
			case FocusPrice:
				l.SetUnitPrice(originalValue)
			case FocusQuantity:
				l.SetQuantity(parseQuantity(originalValue))
			}
		}
	}
	reg.Commit()
}

// EditTarget exposes the current target of a register, if any.
func (s *Session) EditTarget(kind FocusKind) (uuid.UUID, bool) {
	return s.focus(kind).Target()
}

// IsEditing reports whether lineID has an open editor of the given kind.
func (s *Session) IsEditing(kind FocusKind, lineID uuid.UUID) bool {
	return s.focus(kind).Editing(lineID)
}

// BeginTitleEdit opens the title editor.
func (s *Session) BeginTitleEdit() { s.editingTitle = true }

// CommitTitleEdit closes the title editor, keeping the current title.
func (s *Session) CommitTitleEdit() { s.editingTitle = false }

// CancelTitleEdit restores the hardcoded default title and closes the
// editor. Unlike line-field cancel this does NOT restore the pre-edit value.
func (s *Session) CancelTitleEdit() {
	s.Title = DefaultTitle
	s.editingTitle = false
}

// EditingTitle reports whether the title editor is open.
func (s *Session) EditingTitle() bool { return s.editingTitle }

// GrandTotal recomputes the document total from scratch.
func (s *Session) GrandTotal() int {
	return ComputeGrandTotal(s.CatalogLines, s.CustomLines)
}

func parseQuantity(s string) int {
	n := 0
	for _, c := range s {
		if c < '0' || c > '9' {
			return 1
		}
		n = n*10 + int(c-'0')
	}
	if n < 1 {
		return 1
	}
	return n
}
