package commands

import (
	"errors"
	"strings"

	"github.com/ManuLasker/arka-hexagonal-simple/internal/core/domain/model/kernel"
	"github.com/ManuLasker/arka-hexagonal-simple/internal/pkg/errs"
	"github.com/ManuLasker/arka-hexagonal-simple/internal/pkg/guard"
)

var ErrRegisterCustomerCommandIsNotConstructed = errors.New(
	"RegisterCustomerCommand must be created via NewRegisterCustomerCommand constructor",
)

// RegisterCustomerCommand represents a request to register a buyer.
type RegisterCustomerCommand struct { //nolint:recvcheck //using for validation
	name  string
	email kernel.Email
	city  string

	guard guard.ConstructorGuard
}

func NewRegisterCustomerCommand(name string, email kernel.Email, city string) (RegisterCustomerCommand, error) {
	cmd := RegisterCustomerCommand{guard: guard.NewConstructorGuard()}

	var errList []error
	if strings.TrimSpace(name) == "" {
		errList = append(errList, errs.NewValueIsRequiredError("name"))
	}
	if err := email.Validate(); err != nil {
		errList = append(errList, err)
	}
	if strings.TrimSpace(city) == "" {
		errList = append(errList, errs.NewValueIsRequiredError("city"))
	}
	if err := errors.Join(errList...); err != nil {
		return RegisterCustomerCommand{}, err
	}

	cmd.name = name
	cmd.email = email
	cmd.city = city
	return cmd, nil
}

func (c RegisterCustomerCommand) Validate() error {
	return c.guard.Validate(ErrRegisterCustomerCommandIsNotConstructed)
}

func (c RegisterCustomerCommand) Name() string        { return c.name }
func (c RegisterCustomerCommand) Email() kernel.Email { return c.email }
func (c RegisterCustomerCommand) City() string        { return c.city }
