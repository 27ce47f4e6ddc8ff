package commands

import (
	"context"

	"github.com/ManuLasker/arka-hexagonal-simple/internal/core/domain/model/order"
)

// RemoveOrderItemCommandHandler removes a line from a pending order.
type RemoveOrderItemCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewRemoveOrderItemCommandHandler(uowFactory OrderUoWFactory) RemoveOrderItemCommandHandler {
	return RemoveOrderItemCommandHandler{uowFactory: uowFactory}
}

func (h RemoveOrderItemCommandHandler) Handle(ctx context.Context, cmd RemoveOrderItemCommand) (*order.Order, error) {
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

	repo := uow.OrderRepository()
	o, err := repo.FindByIDForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if err = o.RemoveItem(cmd.Item()); err != nil {
		return nil, err
	}

	if err = repo.Save(ctx, o); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return o, nil
}
