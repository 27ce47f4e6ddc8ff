package commands

import (
	"errors"

	"github.com/ManuLasker/arka-hexagonal-simple/internal/core/domain/model/kernel"
	"github.com/ManuLasker/arka-hexagonal-simple/internal/pkg/guard"
)

var ErrDeleteProductCommandIsNotConstructed = errors.New(
	"DeleteProductCommand must be created via NewDeleteProductCommand constructor",
)

// DeleteProductCommand removes a product from the catalog.
type DeleteProductCommand struct { //nolint:recvcheck //using for validation
	productID kernel.ProductID
	guard     guard.ConstructorGuard
}

func NewDeleteProductCommand(productID kernel.ProductID) (DeleteProductCommand, error) {
	if err := productID.Validate(); err != nil {
		return DeleteProductCommand{}, err
	}
	return DeleteProductCommand{productID: productID, guard: guard.NewConstructorGuard()}, nil
}

func (c DeleteProductCommand) Validate() error {
	return c.guard.Validate(ErrDeleteProductCommandIsNotConstructed)
}

func (c DeleteProductCommand) ProductID() kernel.ProductID { return c.productID }
