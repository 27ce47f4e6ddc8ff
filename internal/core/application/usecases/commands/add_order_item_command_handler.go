package commands

import (
	"context"

	"github.com/ManuLasker/arka-hexagonal-simple/internal/core/domain/model/order"
	"github.com/ManuLasker/arka-hexagonal-simple/internal/core/domain/services"
)

// AddOrderItemCommandHandler prices a line from the product's current price and
// adds it to the order. Only the order is written.
type AddOrderItemCommandHandler struct {
	uowFactory OrderUoWFactory
	pricer     services.ItemPricer
}

func NewAddOrderItemCommandHandler(uowFactory OrderUoWFactory) AddOrderItemCommandHandler {
	return AddOrderItemCommandHandler{
		uowFactory: uowFactory,
		pricer:     services.NewItemPricer(),
	}
}

// Handle returns the updated order. Domain errors (invalid transition, currency
// mismatch) propagate unchanged and the stored order is left as it was.
func (h AddOrderItemCommandHandler) Handle(ctx context.Context, cmd AddOrderItemCommand) (*order.Order, error) {
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

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.FindByIDForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	p, err := uow.ProductRepository().FindByID(ctx, cmd.ProductID())
	if err != nil {
		return nil, err
	}

	item, err := h.pricer.Price(p, cmd.Quantity())
	if err != nil {
		return nil, err
	}

	if err = o.AddItem(item); err != nil {
		return nil, err
	}

	if err = orderRepo.Save(ctx, o); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return o, nil
}
