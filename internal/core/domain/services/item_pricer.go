package services

import (
	"github.com/ManuLasker/arka-hexagonal-simple/internal/core/domain/model/order"
	"github.com/ManuLasker/arka-hexagonal-simple/internal/core/domain/model/product"
)

// ItemPricer turns a product and a quantity into an order line priced at the
// product's current unit price. The product is only read.
type ItemPricer struct{}

func NewItemPricer() ItemPricer {
	return ItemPricer{}
}

// Price builds the order line.
//
// Returns:
//   - order.Item: a line for product with quantity units at the product's price
//   - error: product.ErrProductIsNotConstructed or the item validation errors
func (ItemPricer) Price(p *product.Product, quantity int) (order.Item, error) {
	if err := p.Validate(); err != nil {
		return order.Item{}, err
	}
	return order.NewItem(p.ID(), quantity, p.Price())
}
