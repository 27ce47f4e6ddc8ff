package kernel

import (
	"strings"

	"github.com/ManuLasker/arka-hexagonal-simple/internal/pkg/errs"

	"github.com/google/uuid"
)

// ProductID identifies a product. Identifiers are opaque: any non-blank string is
// accepted, and fresh identifiers are random UUIDs in canonical text form.
type ProductID string

// OrderID identifies an order.
type OrderID string

// CustomerID identifies a customer.
type CustomerID string

// NewProductID returns a fresh, globally unique ProductID.
func NewProductID() ProductID {
	return ProductID(uuid.NewString())
}

// NewOrderID returns a fresh, globally unique OrderID.
func NewOrderID() OrderID {
	return OrderID(uuid.NewString())
}

// NewCustomerID returns a fresh, globally unique CustomerID.
func NewCustomerID() CustomerID {
	return CustomerID(uuid.NewString())
}

// ParseProductID trims s and rejects blank input.
func ParseProductID(s string) (ProductID, error) {
	id := ProductID(strings.TrimSpace(s))
	if err := id.Validate(); err != nil {
		return "", err
	}
	return id, nil
}

// ParseOrderID trims s and rejects blank input.
func ParseOrderID(s string) (OrderID, error) {
	id := OrderID(strings.TrimSpace(s))
	if err := id.Validate(); err != nil {
		return "", err
	}
	return id, nil
}

// ParseCustomerID trims s and rejects blank input.
func ParseCustomerID(s string) (CustomerID, error) {
	id := CustomerID(strings.TrimSpace(s))
	if err := id.Validate(); err != nil {
		return "", err
	}
	return id, nil
}

func (id ProductID) Validate() error {
	return validateIdentifier("product id", string(id))
}

func (id OrderID) Validate() error {
	return validateIdentifier("order id", string(id))
}

func (id CustomerID) Validate() error {
	return validateIdentifier("customer id", string(id))
}

func (id ProductID) String() string  { return string(id) }
func (id OrderID) String() string    { return string(id) }
func (id CustomerID) String() string { return string(id) }

func validateIdentifier(paramName, value string) error {
	if strings.TrimSpace(value) == "" {
		return errs.NewValueIsRequiredError(paramName)
	}
	return nil
}
