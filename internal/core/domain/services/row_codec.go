package services

import (
	"ordersheet/internal/core/domain/model/order"
	"ordersheet/internal/core/domain/model/sheet"
)

// RowCodec converts between the Order aggregate and rows of the orders sheet.
//
// Encoding emits one row per item with the order's details repeated. Decoding groups
// rows by exact order number in storage order: the first row of an order supplies its
// details, every row (the first included) contributes one item. Details carried by
// later rows are ignored when they diverge; IntegrityAuditor reports that case.
//
// Example:
//
//	codec := services.NewRowCodec()
//	rows, err := codec.Encode(o)
//	book := codec.Decode(rows)
//	same, _ := book.Get(o.Number())
type RowCodec struct{}

// NewRowCodec creates a RowCodec.
func NewRowCodec() RowCodec {
	return RowCodec{}
}

// Encode returns the rows of o in item order. Details are written as they are;
// callers format them with Details.ForStorage beforehand.
func (RowCodec) Encode(o *order.Order) ([]sheet.Row, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}

	d := o.Details()
	items := o.Items()
	rows := make([]sheet.Row, 0, len(items))
	for _, item := range items {
		row := sheet.Blank(sheet.OrderWidth)
		row[sheet.ColumnDate] = d.Date
		row[sheet.ColumnOrderNo] = o.Number()
		row[sheet.ColumnSetName] = d.SetName
		row[sheet.ColumnPageNo] = d.PageNo
		row[sheet.ColumnRecipientName] = d.RecipientName
		row[sheet.ColumnAddress] = d.Address
		row[sheet.ColumnPhone] = d.Phone
		row[sheet.ColumnItemName] = item.Name()
		row[sheet.ColumnItemQty] = item.Qty()
		row[sheet.ColumnCourier] = d.Courier
		rows = append(rows, row)
	}

	return rows, nil
}

// Decode groups data rows (storage order, header excluded) into an OrderBook.
// Rows with an empty order number are skipped.
func (RowCodec) Decode(rows []sheet.Row) *OrderBook {
	book := newOrderBook()
	for _, row := range rows {
		number := row.Cell(sheet.ColumnOrderNo)
		if number == "" {
			continue
		}

		item := order.NewItem(row.Cell(sheet.ColumnItemName), row.Cell(sheet.ColumnItemQty))
		if existing, ok := book.index[number]; ok {
			existing.AddItem(item)
			continue
		}

		o, err := order.NewOrder(number, detailsOf(row), []order.Item{item})
		if err != nil {
			continue
		}
		book.add(o)
	}
	return book
}

func detailsOf(row sheet.Row) order.Details {
	return order.Details{
		Date:          row.Cell(sheet.ColumnDate),
		SetName:       row.Cell(sheet.ColumnSetName),
		PageNo:        row.Cell(sheet.ColumnPageNo),
		RecipientName: row.Cell(sheet.ColumnRecipientName),
		Address:       row.Cell(sheet.ColumnAddress),
		Phone:         row.Cell(sheet.ColumnPhone),
		Courier:       row.Cell(sheet.ColumnCourier),
	}
}
