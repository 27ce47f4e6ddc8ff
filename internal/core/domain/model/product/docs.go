// Package product contains the Product aggregate of the catalog bounded context.
//
// A Product is identified by its ProductID and owns exactly one mutable field,
// its stock level. Stock never goes negative: ReduceStock rejects a quantity
// larger than the current stock and leaves the product unchanged. Every other
// field is fixed at construction time.
package product
