package commands

import (
	"errors"

	"github.com/ManuLasker/arka-hexagonal-simple/internal/core/domain/model/kernel"
	"github.com/ManuLasker/arka-hexagonal-simple/internal/pkg/errs"
	"github.com/ManuLasker/arka-hexagonal-simple/internal/pkg/guard"
)

var ErrReduceStockCommandIsNotConstructed = errors.New(
	"ReduceStockCommand must be created via NewReduceStockCommand constructor",
)

// ReduceStockCommand takes units out of a product's stock.
//
// Example:
//
//	cmd, _ := NewReduceStockCommand(productID, 3)
//	_, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, product.ErrInsufficientStock) {
//	    // stock left unchanged
//	}
type ReduceStockCommand struct { //nolint:recvcheck //using for validation
	productID kernel.ProductID
	quantity  int

	guard guard.ConstructorGuard
}

func NewReduceStockCommand(productID kernel.ProductID, quantity int) (ReduceStockCommand, error) {
	cmd := ReduceStockCommand{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		productID.Validate(),
		validateStockQuantity(quantity),
	); err != nil {
		return ReduceStockCommand{}, err
	}
	cmd.productID = productID
	cmd.quantity = quantity

	return cmd, nil
}

func (c ReduceStockCommand) Validate() error {
	return c.guard.Validate(ErrReduceStockCommandIsNotConstructed)
}

func (c ReduceStockCommand) ProductID() kernel.ProductID { return c.productID }
func (c ReduceStockCommand) Quantity() int               { return c.quantity }

func validateStockQuantity(quantity int) error {
	if quantity < 0 {
		return errs.NewValueIsOutOfRangeError("quantity", quantity, 0, "unbounded")
	}
	return nil
}
