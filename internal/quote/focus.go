package quote

import "github.com/google/uuid"

// FocusKind selects one of the two independent edit-focus registers.
type FocusKind string

const (
	FocusQuantity FocusKind = "quantity"
	FocusPrice    FocusKind = "price"
)

// EditFocus is a single-slot edit register: either Idle or Editing(lineID).
// Holding the target in one slot, rather than a flag per line, makes the
// "at most one open editor of each kind" rule structural. The zero value
// is Idle.
type EditFocus struct {
	lineID uuid.UUID
	active bool
}

// Begin points the register at lineID. Any previously held target is
// implicitly dropped; last writer wins, nothing stacks.
func (f *EditFocus) Begin(lineID uuid.UUID) {
	f.lineID = lineID
	f.active = true
}

// Commit returns the register to Idle.
func (f *EditFocus) Commit() {
	f.active = false
	f.lineID = uuid.Nil
}

// Target reports the line currently being edited, if any.
func (f *EditFocus) Target() (uuid.UUID, bool) {
	return f.lineID, f.active
}

// Editing reports whether lineID holds this register.
func (f *EditFocus) Editing(lineID uuid.UUID) bool {
	return f.active && f.lineID == lineID
}
