package entities

// Dataset is the whole-dataset envelope exchanged with the remote document
// service: every read returns all of it, every write overwrites all of it.
type Dataset struct {
	Clients  []Client  `json:"clients"`
	Invoices []Invoice `json:"invoices"`
	Expenses []Expense `json:"expenses"`
	Settings Settings  `json:"settings"`
}

// Clone returns a deep copy. Invoices own their item slices, so those are
// copied as well; everything else is value data.
func (d Dataset) Clone() Dataset {
	out := Dataset{
		Clients:  append([]Client(nil), d.Clients...),
		Invoices: make([]Invoice, len(d.Invoices)),
		Expenses: append([]Expense(nil), d.Expenses...),
		Settings: d.Settings,
	}
	for i, inv := range d.Invoices {
		inv.Items = append([]ProductItem(nil), inv.Items...)
		out.Invoices[i] = inv
	}
	return out
}
