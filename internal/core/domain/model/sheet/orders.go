package sheet

// Columns of the orders sheet, 0-based (A=0 ... J=9).
const (
	ColumnDate = iota
	ColumnOrderNo
	ColumnSetName
	ColumnPageNo
	ColumnRecipientName
	ColumnAddress
	ColumnPhone
	ColumnItemName
	ColumnItemQty
	ColumnCourier

	// OrderWidth is the fixed number of columns of the orders sheet.
	OrderWidth
)

// OrderHeader returns the header row of the orders sheet.
func OrderHeader() Row {
	return Row{
		"Date",
		"OrderNo",
		"SetName",
		"PageNo",
		"RecipientName",
		"Address",
		"Phone",
		"ItemName",
		"ItemQty",
		"Courier",
	}
}

// Default sheet names and reference columns.
const (
	DefaultOrdersSheet   = "Orders"
	DefaultProductsSheet = "Products"
	DefaultCouriersSheet = "Couriers"

	// ProductsColumn holds product names in the products sheet.
	ProductsColumn = "B"
	// CouriersColumn holds courier names in the couriers sheet.
	CouriersColumn = "A"
)
