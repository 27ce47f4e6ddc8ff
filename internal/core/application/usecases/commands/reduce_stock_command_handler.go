package commands

import (
	"context"

	"github.com/ManuLasker/arka-hexagonal-simple/internal/core/domain/model/product"
)

// ReduceStockCommandHandler takes units out of stock. product.ErrInsufficientStock
// propagates unchanged and nothing is saved.
type ReduceStockCommandHandler struct {
	uowFactory ProductUoWFactory
}

func NewReduceStockCommandHandler(uowFactory ProductUoWFactory) ReduceStockCommandHandler {
	return ReduceStockCommandHandler{uowFactory: uowFactory}
}

func (h ReduceStockCommandHandler) Handle(ctx context.Context, cmd ReduceStockCommand) (*product.Product, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	return adjustStock(ctx, h.uowFactory, cmd.ProductID(), func(p *product.Product) error {
		return p.ReduceStock(cmd.Quantity())
	})
}
