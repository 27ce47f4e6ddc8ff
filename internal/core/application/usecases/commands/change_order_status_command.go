package commands

import (
	"errors"

	"github.com/ManuLasker/arka-hexagonal-simple/internal/core/domain/model/kernel"
	"github.com/ManuLasker/arka-hexagonal-simple/internal/core/domain/model/order"
	"github.com/ManuLasker/arka-hexagonal-simple/internal/pkg/errs"
	"github.com/ManuLasker/arka-hexagonal-simple/internal/pkg/guard"
)

var ErrChangeOrderStatusCommandIsNotConstructed = errors.New(
	"ChangeOrderStatusCommand must be created via NewChangeOrderStatusCommand constructor",
)

// ChangeOrderStatusCommand moves an order one lifecycle step: confirm, ship or deliver.
//
// Example:
//
//	cmd, _ := NewChangeOrderStatusCommand(orderID, order.Confirm)
//	o, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, errs.ErrInvalidTransition) {
//	    // order is not pending
//	}
type ChangeOrderStatusCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.OrderID
	action  order.Action

	guard guard.ConstructorGuard
}

func NewChangeOrderStatusCommand(orderID kernel.OrderID, action order.Action) (ChangeOrderStatusCommand, error) {
	var actionErr error
	if !action.IsLifecycle() {
		actionErr = errs.NewValueIsInvalidError("action")
	}

	if err := errors.Join(orderID.Validate(), actionErr); err != nil {
		return ChangeOrderStatusCommand{}, err
	}

	return ChangeOrderStatusCommand{
		orderID: orderID,
		action:  action,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c ChangeOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeOrderStatusCommandIsNotConstructed)
}

func (c ChangeOrderStatusCommand) OrderID() kernel.OrderID { return c.orderID }
func (c ChangeOrderStatusCommand) Action() order.Action    { return c.action }
