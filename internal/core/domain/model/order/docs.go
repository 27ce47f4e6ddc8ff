// Package order provides the Order aggregate root and its line items.
// It implements the order lifecycle as a table-driven state machine.
//
// The package includes:
//   - Order: the aggregate root owning identity, customer reference, items and lifecycle
//   - Item: an immutable line entry (product, quantity, unit price)
//   - Status and Action: the lifecycle states and the operations that move between them
//
// Key business rules:
//   - Orders start Pending and move Pending -> Confirmed -> Shipped -> Delivered, one step at a time
//   - Items can only be added or removed while the order is Pending
//   - All items of an order share one currency, fixed by the first item added
//   - A rejected operation leaves the order unchanged
//
// An Order is not safe for concurrent mutation; callers serialize access per order.
package order
