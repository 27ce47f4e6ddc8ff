package commands

import (
	"context"
	"errors"

	"github.com/ManuLasker/arka-hexagonal-simple/internal/core/domain/model/customer"
	"github.com/ManuLasker/arka-hexagonal-simple/internal/core/domain/model/kernel"
	"github.com/ManuLasker/arka-hexagonal-simple/internal/pkg/errs"
)

// ErrEmailAlreadyRegistered is the rule broken when a second customer uses an address.
var ErrEmailAlreadyRegistered = errors.New("email already registered")

// RegisterCustomerCommandHandler stores a new customer with a fresh identifier.
type RegisterCustomerCommandHandler struct {
	uowFactory CustomerUoWFactory
}

func NewRegisterCustomerCommandHandler(uowFactory CustomerUoWFactory) RegisterCustomerCommandHandler {
	return RegisterCustomerCommandHandler{uowFactory: uowFactory}
}

// Handle rejects an e-mail that is already in use with an invariant violation
// wrapping ErrEmailAlreadyRegistered.
func (h RegisterCustomerCommandHandler) Handle(ctx context.Context, cmd RegisterCustomerCommand) (*customer.Customer, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	c, err := customer.NewCustomer(kernel.NewCustomerID(), cmd.Name(), cmd.Email(), cmd.City())
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.CustomerRepository()
	_, err = repo.FindByEmail(ctx, cmd.Email())
	switch {
	case err == nil:
		return nil, errs.NewInvariantViolationError(ErrEmailAlreadyRegistered, cmd.Email().String())
	case !errors.Is(err, errs.ErrObjectNotFound):
		return nil, err
	}

	if err = repo.Save(ctx, c); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return c, nil
}
