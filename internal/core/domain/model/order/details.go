package order

import "ordersheet/internal/core/domain/model/kernel"

// Details holds the scalar fields that every row of an order repeats.
type Details struct {
	Date          string
	SetName       string
	PageNo        string
	RecipientName string
	Address       string
	Phone         string
	Courier       string
}

// ForStorage returns a copy with the date and phone converted into text-forced cells.
func (d Details) ForStorage() Details {
	d.Date = kernel.FormatDate(d.Date)
	d.Phone = kernel.FormatPhone(d.Phone)
	return d
}
