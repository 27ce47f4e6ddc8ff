// Package customer contains the Customer aggregate. Customers are immutable once
// registered and are referenced from orders by CustomerID.
package customer

import (
	"errors"
	"strings"

	"github.com/ManuLasker/arka-hexagonal-simple/internal/core/domain/model/kernel"
	"github.com/ManuLasker/arka-hexagonal-simple/internal/pkg/errs"
	"github.com/ManuLasker/arka-hexagonal-simple/internal/pkg/guard"
)

// ErrCustomerIsNotConstructed is returned when a Customer was not created through NewCustomer.
var ErrCustomerIsNotConstructed = errors.New("Customer must be created via NewCustomer or RestoreCustomer")

// Customer is a buyer with a contact e-mail and a city.
type Customer struct {
	id    kernel.CustomerID
	name  string
	email kernel.Email
	city  string

	guard guard.ConstructorGuard
}

// NewCustomer validates every field and joins all failures.
func NewCustomer(id kernel.CustomerID, name string, email kernel.Email, city string) (*Customer, error) {
	c := &Customer{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		c.setID(id),
		c.setName(name),
		c.setEmail(email),
		c.setCity(city),
	); err != nil {
		return nil, err
	}

	return c, nil
}

// RestoreCustomer rebuilds a Customer from persisted state.
func RestoreCustomer(id kernel.CustomerID, name string, email kernel.Email, city string) (*Customer, error) {
	return NewCustomer(id, name, email, city)
}

func (c *Customer) Validate() error {
	if c == nil {
		return ErrCustomerIsNotConstructed
	}
	return c.guard.Validate(ErrCustomerIsNotConstructed)
}

func (c *Customer) IsEqual(other *Customer) bool {
	return other != nil && c.id == other.id
}

func (c *Customer) ID() kernel.CustomerID { return c.id }
func (c *Customer) Name() string           { return c.name }
func (c *Customer) Email() kernel.Email    { return c.email }
func (c *Customer) City() string           { return c.city }

func (c *Customer) setID(id kernel.CustomerID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Customer) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	c.name = name
	return nil
}

func (c *Customer) setEmail(email kernel.Email) error {
	if err := email.Validate(); err != nil {
		return err
	}
	c.email = email
	return nil
}

func (c *Customer) setCity(city string) error {
	city = strings.TrimSpace(city)
	if city == "" {
		return errs.NewValueIsRequiredError("city")
	}
	c.city = city
	return nil
}
