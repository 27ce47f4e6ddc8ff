package commands

import (
	"errors"

	"github.com/ManuLasker/arka-hexagonal-simple/internal/core/domain/model/kernel"
	"github.com/ManuLasker/arka-hexagonal-simple/internal/pkg/guard"
)

var ErrIncreaseStockCommandIsNotConstructed = errors.New(
	"IncreaseStockCommand must be created via NewIncreaseStockCommand constructor",
)

// IncreaseStockCommand adds restocked units to a product.
type IncreaseStockCommand struct { //nolint:recvcheck //using for validation
	productID kernel.ProductID
	quantity  int

	guard guard.ConstructorGuard
}

func NewIncreaseStockCommand(productID kernel.ProductID, quantity int) (IncreaseStockCommand, error) {
	cmd := IncreaseStockCommand{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		productID.Validate(),
		validateStockQuantity(quantity),
	); err != nil {
		return IncreaseStockCommand{}, err
	}
	cmd.productID = productID
	cmd.quantity = quantity

	return cmd, nil
}

func (c IncreaseStockCommand) Validate() error {
	return c.guard.Validate(ErrIncreaseStockCommandIsNotConstructed)
}

func (c IncreaseStockCommand) ProductID() kernel.ProductID { return c.productID }
func (c IncreaseStockCommand) Quantity() int               { return c.quantity }
