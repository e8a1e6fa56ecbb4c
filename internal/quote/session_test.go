package quote

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"airquote/internal/domain"
)

func pinnedFixture() []domain.Product {
	return []domain.Product{
		{ID: uuid.New(), Name: "Wall-mount split 2.8kW", Price: "28,000"},
		{ID: uuid.New(), Name: "Wall-mount split 4.1kW", Price: "41,500"},
	}
}

func TestNewSession_SeedsCatalogLinesFromPinned(t *testing.T) {
	products := pinnedFixture()
	s := NewSession(products)

	assert.Equal(t, DefaultTitle, s.Title)
	assert.Len(t, s.CatalogLines, 2)
	for i, l := range s.CatalogLines {
		assert.Equal(t, products[i].ID, l.ProductID)
		assert.Equal(t, 1, l.Quantity)
		assert.Equal(t, products[i].Price, l.UnitPrice)
		assert.Equal(t, products[i].Price, l.OriginalPrice)
	}
	assert.Empty(t, s.CustomLines)
}

func TestGrandTotal_RecomputesAfterEveryMutation(t *testing.T) {
	products := []domain.Product{{ID: uuid.New(), Name: "Unit", Price: "1,000"}}
	s := NewSession(products)
	id := products[0].ID

	assert.Equal(t, 1000, s.GrandTotal())

	assert.NoError(t, s.SetCatalogQuantity(id, 3))
	assert.Equal(t, 3000, s.GrandTotal())

	assert.NoError(t, s.SetCatalogUnitPrice(id, "900"))
	assert.Equal(t, 2700, s.GrandTotal())

	s.AddCustomLine()
	assert.NoError(t, s.ApplyTemplate(0, "installation fee"))
	assert.Equal(t, 2700+3500, s.GrandTotal())
}

func TestGrandTotal_MalformedAndNegativePricesContributeZero(t *testing.T) {
	products := []domain.Product{{ID: uuid.New(), Name: "Unit", Price: "1,2x0"}}
	s := NewSession(products)
	assert.NoError(t, s.SetCatalogQuantity(products[0].ID, 2))
	assert.Equal(t, 0, s.GrandTotal())

	l := s.AddCustomLine()
	l.SetUnitPrice("-500")
	l.SetQuantity(4)
	assert.Equal(t, -2000, l.Price)
	// the cached line price may go negative but the document total clamps it
	assert.Equal(t, 0, s.GrandTotal())
}

func TestSetCatalogQuantity_FloorsToOne(t *testing.T) {
	products := pinnedFixture()
	s := NewSession(products)
	id := products[0].ID

	assert.NoError(t, s.SetCatalogQuantity(id, 0))
	assert.Equal(t, 1, s.CatalogLines[0].Quantity)

	assert.NoError(t, s.SetCatalogQuantity(id, -7))
	assert.Equal(t, 1, s.CatalogLines[0].Quantity)

	assert.ErrorIs(t, s.SetCatalogQuantity(uuid.New(), 2), domain.ErrLineNotFound)
}

func TestUnitPriceOverrideAndRevert(t *testing.T) {
	products := []domain.Product{{ID: uuid.New(), Name: "Unit", Price: "28,000"}}
	s := NewSession(products)
	id := products[0].ID

	assert.NoError(t, s.SetCatalogUnitPrice(id, "25,000"))
	assert.Equal(t, "25,000", s.CatalogLines[0].UnitPrice)
	assert.Equal(t, 25000, s.CatalogLines[0].Subtotal())

	// malformed text is preserved verbatim, subtotal degrades to zero
	assert.NoError(t, s.SetCatalogUnitPrice(id, "25,0oo"))
	assert.Equal(t, "25,0oo", s.CatalogLines[0].UnitPrice)
	assert.Equal(t, 0, s.CatalogLines[0].Subtotal())

	assert.NoError(t, s.RevertCatalogUnitPrice(id))
	assert.Equal(t, "28,000", s.CatalogLines[0].UnitPrice)
	assert.Equal(t, 28000, s.CatalogLines[0].Subtotal())
}

func TestCustomLinePriceCache_NeverLagsInputs(t *testing.T) {
	s := NewSession(nil)
	l := s.AddCustomLine()

	assert.Equal(t, 1, l.Quantity)
	assert.Equal(t, "0", l.UnitPrice)
	assert.Equal(t, 0, l.Price)

	l.SetUnitPrice("1,500")
	assert.Equal(t, 1500, l.Price)

	l.SetQuantity(3)
	assert.Equal(t, 4500, l.Price)

	l.SetName("crane rental")
	l.SetDescription("half day")
	assert.Equal(t, 4500, l.Price)
}

func TestApplyTemplate(t *testing.T) {
	s := NewSession(nil)
	s.AddCustomLine()

	assert.NoError(t, s.ApplyTemplate(0, "copper piping"))
	l := s.CustomLines[0]
	assert.Equal(t, "copper piping", l.Name)
	assert.Equal(t, "5000", l.UnitPrice)
	assert.Equal(t, 1, l.Quantity)
	assert.Equal(t, 5000, l.Price)

	// the "other" preset is a real entry that applies empty values
	assert.NoError(t, s.ApplyTemplate(0, "other"))
	assert.Equal(t, "other", s.CustomLines[0].Name)
	assert.Equal(t, 0, s.CustomLines[0].Price)

	assert.ErrorIs(t, s.ApplyTemplate(0, "no such preset"), domain.ErrUnknownTemplate)
	assert.ErrorIs(t, s.ApplyTemplate(5, "installation fee"), domain.ErrLineNotFound)
}

func TestApplyTemplate_BlankChoiceClearsButKeepsQuantity(t *testing.T) {
	s := NewSession(nil)
	l := s.AddCustomLine()
	l.SetQuantity(4)
	assert.NoError(t, s.ApplyTemplate(0, "installation fee"))
	l = &s.CustomLines[0]
	l.SetQuantity(4)

	assert.NoError(t, s.ApplyTemplate(0, ""))
	l = &s.CustomLines[0]
	assert.Empty(t, l.Name)
	assert.Empty(t, l.Description)
	assert.Equal(t, "0", l.UnitPrice)
	assert.Equal(t, 4, l.Quantity)
	assert.Equal(t, 0, l.Price)
}

func TestRemoveCustomLine_PreservesOrder(t *testing.T) {
	s := NewSession(nil)
	s.AddCustomLine()
	s.AddCustomLine()
	s.AddCustomLine()
	s.CustomLines[0].SetName("a")
	s.CustomLines[1].SetName("b")
	s.CustomLines[2].SetName("c")

	assert.NoError(t, s.RemoveCustomLine(1))
	assert.Len(t, s.CustomLines, 2)
	assert.Equal(t, "a", s.CustomLines[0].Name)
	assert.Equal(t, "c", s.CustomLines[1].Name)

	assert.ErrorIs(t, s.RemoveCustomLine(2), domain.ErrLineNotFound)
}

func TestEditFocus_SingleSlotPerKind(t *testing.T) {
	products := pinnedFixture()
	s := NewSession(products)
	a, b := products[0].ID, products[1].ID

	s.BeginEdit(FocusQuantity, a)
	assert.True(t, s.IsEditing(FocusQuantity, a))
	assert.False(t, s.IsEditing(FocusPrice, a))

	// last writer wins within a register
	s.BeginEdit(FocusQuantity, b)
	assert.False(t, s.IsEditing(FocusQuantity, a))
	assert.True(t, s.IsEditing(FocusQuantity, b))

	// the two registers are independent
	s.BeginEdit(FocusPrice, a)
	assert.True(t, s.IsEditing(FocusQuantity, b))
	assert.True(t, s.IsEditing(FocusPrice, a))

	s.CommitEdit(FocusQuantity)
	_, open := s.EditTarget(FocusQuantity)
	assert.False(t, open)
	assert.True(t, s.IsEditing(FocusPrice, a))
}

func TestCancelEdit_RestoresOriginalFieldValue(t *testing.T) {
	products := []domain.Product{{ID: uuid.New(), Name: "Unit", Price: "2,000"}}
	s := NewSession(products)
	id := products[0].ID

	s.BeginEdit(FocusPrice, id)
	assert.NoError(t, s.SetCatalogUnitPrice(id, "9,999"))
	s.CancelEdit(FocusPrice, "2,000")
	assert.Equal(t, "2,000", s.CatalogLines[0].UnitPrice)
	assert.False(t, s.IsEditing(FocusPrice, id))

	s.BeginEdit(FocusQuantity, id)
	assert.NoError(t, s.SetCatalogQuantity(id, 9))
	s.CancelEdit(FocusQuantity, "2")
	assert.Equal(t, 2, s.CatalogLines[0].Quantity)
}

func TestTitleEdit_CancelRestoresDefaultNotPriorValue(t *testing.T) {
	s := NewSession(nil)
	s.Title = "Spring promotion quote"

	s.BeginTitleEdit()
	assert.True(t, s.EditingTitle())
	s.Title = "Draft"
	s.CancelTitleEdit()

	// cancel always falls back to the stock title, not "Spring promotion quote"
	assert.Equal(t, DefaultTitle, s.Title)
	assert.False(t, s.EditingTitle())

	s.BeginTitleEdit()
	s.Title = "Summer install package"
	s.CommitTitleEdit()
	assert.Equal(t, "Summer install package", s.Title)
}

func TestSnapshot_IsolatedFromLaterEdits(t *testing.T) {
	products := pinnedFixture()
	s := NewSession(products)
	s.AddCustomLine()
	s.CustomLines[0].SetUnitPrice("500")

	snap := s.Snapshot()
	total := snap.GrandTotal()

	assert.NoError(t, s.SetCatalogQuantity(products[0].ID, 9))
	s.AddCustomLine()
	s.CustomLines[1].SetUnitPrice("7,000")

	assert.Len(t, snap.CatalogLines, 2)
	assert.Equal(t, 1, snap.CatalogLines[0].Quantity)
	assert.Len(t, snap.CustomLines, 1)
	assert.Equal(t, total, snap.GrandTotal())
}

func TestMetadataEdits_DoNotChangeGrandTotal(t *testing.T) {
	s := NewSession(pinnedFixture())
	s.AddCustomLine()
	s.CustomLines[0].SetUnitPrice("3,500")
	total := s.GrandTotal()

	s.CustomerName = "ACME Trading Co."
	s.CustomerAddress = "12 Harbor Rd."
	s.Notes = "Install within two weeks."
	s.Title = "Summer install package"
	s.QuoteDate = "2026-09-01"

	assert.Equal(t, total, s.GrandTotal())
}

func TestComputeGrandTotal_PureOverInputs(t *testing.T) {
	catalog := []CatalogLine{
		{Quantity: 2, UnitPrice: "1,000"},
		{Quantity: 1, UnitPrice: "garbage"},
		{Quantity: 3, UnitPrice: "-50"},
	}
	custom := []CustomLine{
		{Quantity: 2, UnitPrice: "250", Price: 500},
	}
	assert.Equal(t, 2500, ComputeGrandTotal(catalog, custom))
	assert.Equal(t, 0, ComputeGrandTotal(nil, nil))
}
