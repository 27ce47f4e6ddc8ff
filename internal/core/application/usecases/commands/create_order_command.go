package commands

import (
	"errors"

	"github.com/ManuLasker/arka-hexagonal-simple/internal/core/domain/model/kernel"
	"github.com/ManuLasker/arka-hexagonal-simple/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand opens an empty, pending order for a registered customer.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(customerID)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	o, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, errs.ErrObjectNotFound) {
//	    // unknown customer
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	customerID kernel.CustomerID

	guard guard.ConstructorGuard
}

func NewCreateOrderCommand(customerID kernel.CustomerID) (CreateOrderCommand, error) {
	if err := customerID.Validate(); err != nil {
		return CreateOrderCommand{}, err
	}
	return CreateOrderCommand{customerID: customerID, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) CustomerID() kernel.CustomerID {
	return c.customerID
}
