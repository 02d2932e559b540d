// Package services contains domain services of the order sheet:
//
//   - RowCodec maps an Order to its flat rows and groups flat rows back into orders
//   - IntegrityAuditor reports grouping anomalies without repairing them
//
// Both are stateless and operate on sheet.Row slices in storage order.
package services
