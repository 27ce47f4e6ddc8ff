package commands

import (
	"context"

	"github.com/ManuLasker/arka-hexagonal-simple/internal/core/domain/model/product"
)

// IncreaseStockCommandHandler adds restocked units to a product.
type IncreaseStockCommandHandler struct {
	uowFactory ProductUoWFactory
}

func NewIncreaseStockCommandHandler(uowFactory ProductUoWFactory) IncreaseStockCommandHandler {
	return IncreaseStockCommandHandler{uowFactory: uowFactory}
}

func (h IncreaseStockCommandHandler) Handle(ctx context.Context, cmd IncreaseStockCommand) (*product.Product, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	return adjustStock(ctx, h.uowFactory, cmd.ProductID(), func(p *product.Product) error {
		return p.IncreaseStock(cmd.Quantity())
	})
}
