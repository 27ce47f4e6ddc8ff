package commands

import (
	"errors"
	"fmt"

	"github.com/ManuLasker/arka-hexagonal-simple/internal/core/domain/model/kernel"
	"github.com/ManuLasker/arka-hexagonal-simple/internal/pkg/errs"
	"github.com/ManuLasker/arka-hexagonal-simple/internal/pkg/guard"
)

var ErrAddOrderItemCommandIsNotConstructed = errors.New(
	"AddOrderItemCommand must be created via NewAddOrderItemCommand constructor",
)

// AddOrderItemCommand adds quantity units of a product to a pending order.
// The unit price is taken from the product when the command is handled.
type AddOrderItemCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.OrderID
	productID kernel.ProductID
	quantity  int

	guard guard.ConstructorGuard
}

func NewAddOrderItemCommand(orderID kernel.OrderID, productID kernel.ProductID, quantity int) (AddOrderItemCommand, error) {
	var quantityErr error
	if quantity <= 0 {
		quantityErr = errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is not greater than 0", quantity))
	}

	if err := errors.Join(orderID.Validate(), productID.Validate(), quantityErr); err != nil {
		return AddOrderItemCommand{}, err
	}

	return AddOrderItemCommand{
		orderID:   orderID,
		productID: productID,
		quantity:  quantity,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c AddOrderItemCommand) Validate() error {
	return c.guard.Validate(ErrAddOrderItemCommandIsNotConstructed)
}

func (c AddOrderItemCommand) OrderID() kernel.OrderID     { return c.orderID }
func (c AddOrderItemCommand) ProductID() kernel.ProductID { return c.productID }
func (c AddOrderItemCommand) Quantity() int               { return c.quantity }
