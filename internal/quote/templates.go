package quote

// Template is a named preset for common labor and material line items.
type Template struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Quantity    int    `json:"quantity"`
	UnitPrice   string `json:"unit_price"`
}

// Templates is the fixed catalog of common custom line items, in menu order.
// The trailing "other" entry is a blank placeholder for ad-hoc items.
var Templates = []Template{
	{Name: "installation fee", Description: "Split-system installation labor, per set", Quantity: 1, UnitPrice: "3500"},
	{Name: "relocation fee", Description: "Removal and reinstallation labor, per set", Quantity: 1, UnitPrice: "4500"},
	{Name: "copper piping", Description: "Copper pipe and wiring, all rooms combined", Quantity: 1, UnitPrice: "5000"},
	{Name: "mounting bracket", Description: "Stainless L-bracket or deluxe rack for outdoor unit", Quantity: 1, UnitPrice: "2000"},
	{Name: "wall coring", Description: "Wall core-drilling, per hole", Quantity: 1, UnitPrice: "1000"},
	{Name: "welding fee", Description: "Brazing work", Quantity: 1, UnitPrice: "1500"},
	{Name: "pipe duct cover", Description: "Weather-proof decorative pipe duct", Quantity: 1, UnitPrice: "3000"},
	{Name: "high-altitude work", Description: "Elevated or hazardous work surcharge", Quantity: 1, UnitPrice: "5000"},
	{Name: "refrigerant line flush", Description: "Old-pipe refrigeration oil flush, per set", Quantity: 1, UnitPrice: "3000"},
	{Name: "cleaning service", Description: "Indoor/outdoor unit cleaning service, per set", Quantity: 1, UnitPrice: "3000"},
	{Name: "wall channel cutting", Description: "Wall chasing with cement backfill, per set", Quantity: 1, UnitPrice: "2000"},
	{Name: "other", Description: "", Quantity: 1, UnitPrice: "0"},
}

// FindTemplate looks a preset up by name.
func FindTemplate(name string) (Template, bool) {
	for _, t := range Templates {
		if t.Name == name {
			return t, true
		}
	}
	return Template{}, false
}
