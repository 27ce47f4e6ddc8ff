package queries

import (
	"errors"

	"github.com/ManuLasker/arka-hexagonal-simple/internal/core/domain/model/kernel"
	"github.com/ManuLasker/arka-hexagonal-simple/internal/pkg/guard"
)

var ErrGetCustomerQueryIsNotConstructed = errors.New(
	"GetCustomerQuery must be created via NewGetCustomerQuery or NewGetCustomerByEmailQuery constructor",
)

// GetCustomerQuery looks a customer up by identifier or by e-mail address.
type GetCustomerQuery struct {
	customerID kernel.CustomerID
	email      kernel.Email
	guard      guard.ConstructorGuard
}

func NewGetCustomerQuery(customerID kernel.CustomerID) (GetCustomerQuery, error) {
	if err := customerID.Validate(); err != nil {
		return GetCustomerQuery{}, err
	}
	return GetCustomerQuery{customerID: customerID, guard: guard.NewConstructorGuard()}, nil
}

// NewGetCustomerByEmailQuery matches the address case-insensitively.
func NewGetCustomerByEmailQuery(email kernel.Email) (GetCustomerQuery, error) {
	if err := email.Validate(); err != nil {
		return GetCustomerQuery{}, err
	}
	return GetCustomerQuery{email: email, guard: guard.NewConstructorGuard()}, nil
}

func (q GetCustomerQuery) Validate() error {
	return q.guard.Validate(ErrGetCustomerQueryIsNotConstructed)
}

// ByEmail reports whether the lookup is by address.
func (q GetCustomerQuery) ByEmail() bool {
	return q.email.Validate() == nil
}

func (q GetCustomerQuery) CustomerID() kernel.CustomerID { return q.customerID }
func (q GetCustomerQuery) Email() kernel.Email           { return q.email }

type CustomerResponse struct {
	ID    kernel.CustomerID
	Name  string
	Email kernel.Email
	City  string
}
