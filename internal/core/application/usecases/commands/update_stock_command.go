package commands

import (
	"errors"

	"github.com/ManuLasker/arka-hexagonal-simple/internal/core/domain/model/kernel"
	"github.com/ManuLasker/arka-hexagonal-simple/internal/pkg/errs"
	"github.com/ManuLasker/arka-hexagonal-simple/internal/pkg/guard"
)

var ErrUpdateStockCommandIsNotConstructed = errors.New(
	"UpdateStockCommand must be created via NewUpdateStockCommand constructor",
)

// UpdateStockCommand replaces a product's stock with an absolute value,
// e.g. after a physical inventory count.
type UpdateStockCommand struct { //nolint:recvcheck //using for validation
	productID kernel.ProductID
	newStock  int

	guard guard.ConstructorGuard
}

func NewUpdateStockCommand(productID kernel.ProductID, newStock int) (UpdateStockCommand, error) {
	cmd := UpdateStockCommand{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		cmd.setProductID(productID),
		cmd.setNewStock(newStock),
	); err != nil {
		return UpdateStockCommand{}, err
	}

	return cmd, nil
}

func (c UpdateStockCommand) Validate() error {
	return c.guard.Validate(ErrUpdateStockCommandIsNotConstructed)
}

func (c UpdateStockCommand) ProductID() kernel.ProductID { return c.productID }
func (c UpdateStockCommand) NewStock() int               { return c.newStock }

func (c *UpdateStockCommand) setProductID(productID kernel.ProductID) error {
	if err := productID.Validate(); err != nil {
		return err
	}
	c.productID = productID
	return nil
}

func (c *UpdateStockCommand) setNewStock(newStock int) error {
	if newStock < 0 {
		return errs.NewValueIsOutOfRangeError("stock", newStock, 0, "unbounded")
	}
	c.newStock = newStock
	return nil
}
