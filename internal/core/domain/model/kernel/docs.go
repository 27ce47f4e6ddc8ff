// Package kernel provides the shared value objects of the Arka domain model.
// Every aggregate depends on these primitives, and none of them depends on an aggregate.
//
// The package includes:
//   - Money: an immutable, currency-tagged decimal amount with currency-safe arithmetic
//   - ProductID, OrderID, CustomerID: opaque, non-blank identifiers
//   - Email: a validated e-mail address
//
// All values are immutable and safe for concurrent reads. Zero values are invalid
// and fail their Validate method.
package kernel
