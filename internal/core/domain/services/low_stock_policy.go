package services

import (
	"github.com/ManuLasker/arka-hexagonal-simple/internal/core/domain/model/product"

	"github.com/samber/lo"
)

// DefaultLowStockThreshold is the stock level below which a product needs restocking.
const DefaultLowStockThreshold = 10

// LowStockPolicy decides which products need restocking. The threshold belongs to
// the policy, not to the product.
//
// Example usage:
//
//	policy := services.NewLowStockPolicy()
//	for _, p := range policy.Select(products) {
//	    // notify about p
//	}
type LowStockPolicy struct {
	threshold int
}

// NewLowStockPolicy returns the policy with DefaultLowStockThreshold.
func NewLowStockPolicy() LowStockPolicy {
	return LowStockPolicy{threshold: DefaultLowStockThreshold}
}

// Threshold returns the exclusive upper bound of a low stock level.
func (p LowStockPolicy) Threshold() int {
	return p.threshold
}

// IsLow reports whether the product's stock is strictly below the threshold.
// Invalid products are never low.
func (p LowStockPolicy) IsLow(item *product.Product) bool {
	if err := item.Validate(); err != nil {
		return false
	}
	return item.IsLowStock(p.threshold)
}

// Select returns the low-stock products in their original order.
func (p LowStockPolicy) Select(products []*product.Product) []*product.Product {
	return lo.Filter(products, func(item *product.Product, _ int) bool {
		return p.IsLow(item)
	})
}
