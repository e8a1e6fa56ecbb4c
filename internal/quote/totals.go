package quote

import "airquote/internal/numtext"

// ComputeGrandTotal sums the document from scratch. Each line contributes
// max(0, numeric unit price) times its quantity, so malformed or negative
// price text never drags the total down. Custom lines use the same funnel
// as their cached Price field, so the two can never disagree.
func ComputeGrandTotal(catalog []CatalogLine, custom []CustomLine) int {
	total := 0
	for i := range catalog {
		total += lineContribution(catalog[i].UnitPrice, catalog[i].Quantity)
	}
	for i := range custom {
		total += lineContribution(custom[i].UnitPrice, custom[i].Quantity)
	}
	return total
}

func lineContribution(unitPrice string, quantity int) int {
	unit := numtext.Amount(unitPrice)
	if unit < 0 {
		unit = 0
	}
	return unit * quantity
}
