package commands

import (
	"context"

	"github.com/ManuLasker/arka-hexagonal-simple/internal/core/domain/model/kernel"
	"github.com/ManuLasker/arka-hexagonal-simple/internal/core/domain/model/product"
)

// RegisterProductCommandHandler creates a product with a fresh identifier and stores it.
type RegisterProductCommandHandler struct {
	uowFactory ProductUoWFactory
}

func NewRegisterProductCommandHandler(uowFactory ProductUoWFactory) RegisterProductCommandHandler {
	return RegisterProductCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle builds the product, saves it and commits. The stored product is returned.
func (h RegisterProductCommandHandler) Handle(ctx context.Context, cmd RegisterProductCommand) (*product.Product, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	p, err := product.NewProduct(
		kernel.NewProductID(),
		cmd.Name(),
		cmd.Description(),
		cmd.Price(),
		cmd.Stock(),
		cmd.Category(),
	)
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.ProductRepository().Save(ctx, p); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return p, nil
}
