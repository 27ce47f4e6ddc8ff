package commands

import (
	"context"
)

// DeleteProductCommandHandler removes a product. Deleting an unknown product succeeds.
type DeleteProductCommandHandler struct {
	uowFactory ProductUoWFactory
}

func NewDeleteProductCommandHandler(uowFactory ProductUoWFactory) DeleteProductCommandHandler {
	return DeleteProductCommandHandler{uowFactory: uowFactory}
}

func (h DeleteProductCommandHandler) Handle(ctx context.Context, cmd DeleteProductCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.ProductRepository().DeleteByID(ctx, cmd.ProductID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
