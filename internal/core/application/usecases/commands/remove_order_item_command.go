package commands

import (
	"errors"

	"github.com/ManuLasker/arka-hexagonal-simple/internal/core/domain/model/kernel"
	"github.com/ManuLasker/arka-hexagonal-simple/internal/core/domain/model/order"
	"github.com/ManuLasker/arka-hexagonal-simple/internal/pkg/errs"
	"github.com/ManuLasker/arka-hexagonal-simple/internal/pkg/guard"
)

var ErrRemoveOrderItemCommandIsNotConstructed = errors.New(
	"RemoveOrderItemCommand must be created via NewRemoveOrderItemCommand constructor",
)

// RemoveOrderItemCommand removes the first line of an order equal to item.
type RemoveOrderItemCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.OrderID
	item    order.Item

	guard guard.ConstructorGuard
}

func NewRemoveOrderItemCommand(
	orderID kernel.OrderID,
	productID kernel.ProductID,
	quantity int,
	unitPrice kernel.Money,
) (RemoveOrderItemCommand, error) {
	item, itemErr := order.NewItem(productID, quantity, unitPrice)
	if err := errors.Join(orderID.Validate(), itemErr); err != nil {
		return RemoveOrderItemCommand{}, err
	}

	return RemoveOrderItemCommand{
		orderID: orderID,
		item:    item,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c RemoveOrderItemCommand) Validate() error {
	if err := c.guard.Validate(ErrRemoveOrderItemCommandIsNotConstructed); err != nil {
		return err
	}
	if err := c.item.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("item", err)
	}
	return nil
}

func (c RemoveOrderItemCommand) OrderID() kernel.OrderID { return c.orderID }
func (c RemoveOrderItemCommand) Item() order.Item        { return c.item }
