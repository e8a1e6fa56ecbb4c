// Package pdfexport renders quotation sessions as printable PDF documents
// using maroto/v2.
package pdfexport

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"airquote/internal/domain"
	"airquote/internal/numtext"
	"airquote/internal/port"
	"airquote/internal/quote"
)

type renderer struct{}

// NewRenderer creates the maroto-backed QuoteRenderer.
func NewRenderer() port.QuoteRenderer {
	return &renderer{}
}

func (r *renderer) Render(session *quote.Session, products map[uuid.UUID]domain.Product) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(12).
		WithTopMargin(12).
		WithRightMargin(12).
		WithPageNumber(props.PageNumber{
			Pattern: "Page {current} of {total}",
			Place:   props.RightBottom,
			Size:    7,
			Color:   &props.Color{Red: 120, Green: 120, Blue: 120},
		}).
		Build()

	m := maroto.New(cfg)

	addHeader(m, session)
	addCustomerBlock(m, session)
	addTableHeader(m)

	index := 1
	for i := range session.CatalogLines {
		l := &session.CatalogLines[i]
		name := "(removed product)"
		if p, ok := products[l.ProductID]; ok {
			name = p.Name
		}
		addTableRow(m, index, name, "", l.Quantity, l.UnitPrice, l.Subtotal())
		index++
	}
	for i := range session.CustomLines {
		l := &session.CustomLines[i]
		addTableRow(m, index, l.Name, l.Description, l.Quantity, l.UnitPrice, l.Price)
		index++
	}

	addTotal(m, session.GrandTotal())
	if session.Notes != "" {
		addNotes(m, session.Notes)
	}
	addFooter(m)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrExportFailed, err)
	}
	return doc.GetBytes(), nil
}

func addHeader(m core.Maroto, session *quote.Session) {
	m.AddRows(
		row.New(12).Add(
			col.New(12).Add(
				text.New(session.Title, props.Text{
					Size:  16,
					Style: fontstyle.Bold,
					Align: align.Center,
				}),
			),
		),
		row.New(8).Add(
			col.New(12).Add(
				text.New("Date: "+session.QuoteDate, props.Text{
					Size:  9,
					Align: align.Right,
					Color: &props.Color{Red: 80, Green: 80, Blue: 80},
				}),
			),
		),
	)
}

func addCustomerBlock(m core.Maroto, session *quote.Session) {
	label := props.Text{Size: 9, Style: fontstyle.Bold, Align: align.Left}
	value := props.Text{Size: 9, Align: align.Left}

	m.AddRows(
		row.New(6).Add(
			col.New(2).Add(text.New("Customer", label)),
			col.New(10).Add(text.New(session.CustomerName, value)),
		),
		row.New(6).Add(
			col.New(2).Add(text.New("Address", label)),
			col.New(10).Add(text.New(session.CustomerAddress, value)),
		),
		row.New(4),
	)
}

func addTableHeader(m core.Maroto) {
	headerBg := &props.Color{Red: 33, Green: 37, Blue: 41}
	headerText := props.Text{
		Size:  8,
		Style: fontstyle.Bold,
		Align: align.Center,
		Color: &props.Color{Red: 255, Green: 255, Blue: 255},
	}
	headerTextLeft := headerText
	headerTextLeft.Align = align.Left

	headerCell := props.Cell{BackgroundColor: headerBg}

	m.AddRows(
		row.New(8).Add(
			col.New(1).Add(text.New("#", headerText)).WithStyle(&headerCell),
			col.New(4).Add(text.New("Item", headerTextLeft)).WithStyle(&headerCell),
			col.New(3).Add(text.New("Description", headerTextLeft)).WithStyle(&headerCell),
			col.New(1).Add(text.New("Qty", headerText)).WithStyle(&headerCell),
			col.New(1).Add(text.New("Unit Price", headerText)).WithStyle(&headerCell),
			col.New(2).Add(text.New("Subtotal", headerText)).WithStyle(&headerCell),
		),
	)
}

func addTableRow(m core.Maroto, index int, name, description string, qty int, unitPrice string, subtotal int) {
	cell := props.Text{Size: 8, Align: align.Left}
	num := props.Text{Size: 8, Align: align.Right}
	center := props.Text{Size: 8, Align: align.Center}

	m.AddRows(
		row.New(7).Add(
			col.New(1).Add(text.New(fmt.Sprintf("%d", index), center)),
			col.New(4).Add(text.New(name, cell)),
			col.New(3).Add(text.New(description, cell)),
			col.New(1).Add(text.New(fmt.Sprintf("%d", qty), center)),
			col.New(1).Add(text.New(unitPrice, num)),
			col.New(2).Add(text.New(numtext.FormatAmount(subtotal), num)),
		),
	)
}

func addTotal(m core.Maroto, total int) {
	m.AddRows(
		row.New(4),
		row.New(9).Add(
			col.New(10).Add(
				text.New("Grand Total", props.Text{
					Size:  11,
					Style: fontstyle.Bold,
					Align: align.Right,
				}),
			),
			col.New(2).Add(
				text.New(numtext.FormatAmount(total), props.Text{
					Size:  11,
					Style: fontstyle.Bold,
					Align: align.Right,
				}),
			),
		),
	)
}

func addNotes(m core.Maroto, notes string) {
	m.AddRows(
		row.New(4),
		row.New(6).Add(
			col.New(12).Add(
				text.New("Notes", props.Text{Size: 9, Style: fontstyle.Bold, Align: align.Left}),
			),
		),
		row.New(8).Add(
			col.New(12).Add(
				text.New(notes, props.Text{Size: 8, Align: align.Left}),
			),
		),
	)
}

func addFooter(m core.Maroto) {
	generated := time.Now().Format("2006-01-02")
	m.AddRows(
		row.New(6),
		row.New(5).Add(
			col.New(12).Add(
				text.New("This quotation is valid for 30 days from the date of issue.", props.Text{
					Size:  7,
					Align: align.Left,
					Color: &props.Color{Red: 120, Green: 120, Blue: 120},
				}),
			),
		),
		row.New(5).Add(
			col.New(12).Add(
				text.New("Generated on "+generated, props.Text{
					Size:  7,
					Align: align.Left,
					Color: &props.Color{Red: 120, Green: 120, Blue: 120},
				}),
			),
		),
	)
}
