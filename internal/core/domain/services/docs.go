// Package services provides domain services for rules that belong to no single
// aggregate of the Arka domain.
//
// The package includes:
//   - LowStockPolicy: the restock threshold applied to products (fixed at 10)
//   - ItemPricer: builds an order line from a product's current price
//
// Services read the aggregates they are given and never persist anything.
package services
