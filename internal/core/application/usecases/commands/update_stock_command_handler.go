package commands

import (
	"context"

	"github.com/ManuLasker/arka-hexagonal-simple/internal/core/domain/model/product"
)

// UpdateStockCommandHandler replaces the stock of an existing product.
type UpdateStockCommandHandler struct {
	uowFactory ProductUoWFactory
}

func NewUpdateStockCommandHandler(uowFactory ProductUoWFactory) UpdateStockCommandHandler {
	return UpdateStockCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle locks the product, swaps in the new stock and saves it.
// Returns errs.ErrObjectNotFound when the product does not exist.
func (h UpdateStockCommandHandler) Handle(ctx context.Context, cmd UpdateStockCommand) (*product.Product, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.ProductRepository()
	current, err := repo.FindByIDForUpdate(ctx, cmd.ProductID())
	if err != nil {
		return nil, err
	}

	updated, err := current.WithStock(cmd.NewStock())
	if err != nil {
		return nil, err
	}

	if err = repo.Save(ctx, updated); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return updated, nil
}
