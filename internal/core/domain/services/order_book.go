package services

import (
	"slices"

	"ordersheet/internal/core/domain/model/order"
)

// OrderBook is the result of decoding: orders keyed by number, kept in the order
// their first row appeared in the sheet.
type OrderBook struct {
	orders []*order.Order
	index  map[string]*order.Order
}

func newOrderBook() *OrderBook {
	return &OrderBook{index: make(map[string]*order.Order)}
}

func (b *OrderBook) add(o *order.Order) {
	b.orders = append(b.orders, o)
	b.index[o.Number()] = o
}

// Get returns the order with the exact number.
func (b *OrderBook) Get(number string) (*order.Order, bool) {
	o, ok := b.index[number]
	return o, ok
}

// Len returns the number of distinct orders.
func (b *OrderBook) Len() int {
	return len(b.orders)
}

// Orders returns the orders in first-seen order.
func (b *OrderBook) Orders() []*order.Order {
	return slices.Clone(b.orders)
}

// Newest returns the orders in reverse first-seen order. Appends go to the end of the
// sheet, so this approximates newest first; it is not a sort on any date field.
func (b *OrderBook) Newest() []*order.Order {
	out := slices.Clone(b.orders)
	slices.Reverse(out)
	return out
}
