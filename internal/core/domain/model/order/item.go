package order

// Item is one line of an order. The quantity is kept as entered.
type Item struct {
	name string
	qty  string
}

// NewItem creates an Item.
func NewItem(name, qty string) Item {
	return Item{name: name, qty: qty}
}

// Name returns the item name.
func (i Item) Name() string {
	return i.name
}

// Qty returns the item quantity.
func (i Item) Qty() string {
	return i.qty
}
