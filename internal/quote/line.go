package quote

import (
	"github.com/google/uuid"

	"airquote/internal/numtext"
)

// CatalogLine is a quotation row derived from a pinned product. Quantity and
// UnitPrice are the user's independent inputs; the subtotal is always derived
// on read and never stored, so it cannot drift from the inputs.
type CatalogLine struct {
	ProductID     uuid.UUID `json:"product_id"`
	Quantity      int       `json:"quantity"`
	UnitPrice     string    `json:"unit_price"`
	OriginalPrice string    `json:"original_price"`
}

// SetQuantity floors non-positive input to 1. It never rejects.
func (l *CatalogLine) SetQuantity(n int) {
	if n < 1 {
		n = 1
	}
	l.Quantity = n
}

// SetUnitPrice accepts arbitrary text, including partial or empty input, so
// a user mid-keystroke never loses characters. Malformed text degrades to a
// zero subtotal but is preserved verbatim for redisplay.
func (l *CatalogLine) SetUnitPrice(text string) {
	l.UnitPrice = text
}

// RevertUnitPrice restores the product's canonical price (escape semantics).
func (l *CatalogLine) RevertUnitPrice() {
	l.UnitPrice = l.OriginalPrice
}

// Subtotal is numeric(UnitPrice) × Quantity, computed fresh on every call.
func (l *CatalogLine) Subtotal() int {
	return numtext.Amount(l.UnitPrice) * l.Quantity
}

// CustomLine is a free-form quotation row. Price is the one cached derived
// value in the system: every write to Quantity or UnitPrice
// funnels through recompute, so the cache can never lag its inputs.
type CustomLine struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Quantity    int       `json:"quantity"`
	UnitPrice   string    `json:"unit_price"`
	Price       int       `json:"price"`
}

// NewCustomLine returns an empty line with quantity 1 and unit price "0".
func NewCustomLine() CustomLine {
	return CustomLine{ID: uuid.New(), Quantity: 1, UnitPrice: "0"}
}

// SetQuantity floors non-positive input to 1 and refreshes the price cache.
func (l *CustomLine) SetQuantity(n int) {
	if n < 1 {
		n = 1
	}
	l.Quantity = n
	l.recompute()
}

// SetUnitPrice accepts arbitrary text and refreshes the price cache.
// Unparseable text leaves Price at 0 while the text stays as typed.
func (l *CustomLine) SetUnitPrice(text string) {
	l.UnitPrice = text
	l.recompute()
}

// SetName updates the display name. Name has no numeric effect.
func (l *CustomLine) SetName(name string) {
	l.Name = name
}

// SetDescription updates the description. No numeric effect.
func (l *CustomLine) SetDescription(desc string) {
	l.Description = desc
}

// recompute is the single cache-invalidation point for Price.
func (l *CustomLine) recompute() {
	l.Price = numtext.Amount(l.UnitPrice) * l.Quantity
}

// ApplyTemplate overwrites name, description, quantity, and unit price from
// the preset in one step; the price cache follows atomically.
func (l *CustomLine) ApplyTemplate(t Template) {
	l.Name = t.Name
	l.Description = t.Description
	l.Quantity = t.Quantity
	l.UnitPrice = t.UnitPrice
	l.recompute()
}

// Clear resets the line for ad-hoc entry: name and description are emptied
// and the unit price returns to "0". Quantity is left as-is; only the
// price-bearing fields reset.
func (l *CustomLine) Clear() {
	l.Name = ""
	l.Description = ""
	l.UnitPrice = "0"
	l.recompute()
}
