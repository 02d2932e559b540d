// Package order provides the Order aggregate: a customer order identified by its
// order number, carrying shared scalar details and an ordered list of items.
//
// The package includes:
//   - Order: the aggregate root, created only through NewOrder
//   - Details: the scalar fields repeated on every stored row of an order
//   - Item: one line item (name and quantity as entered)
//
// Key business rules:
//   - The order number is an opaque string; "123" and "123.0" are different orders
//   - An order has at least one item, otherwise it could not be stored
//   - Item order is significant and preserved
package order
