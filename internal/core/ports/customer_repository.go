package ports

import (
	"context"

	"github.com/ManuLasker/arka-hexagonal-simple/internal/core/domain/model/customer"
	"github.com/ManuLasker/arka-hexagonal-simple/internal/core/domain/model/kernel"
)

// CustomerRepository defines the persistence contract for customers.
type CustomerRepository interface {
	Save(ctx context.Context, aggregate *customer.Customer) error

	// FindByID returns errs.ErrObjectNotFound when no customer has this id.
	FindByID(ctx context.Context, id kernel.CustomerID) (*customer.Customer, error)

	// FindByEmail matches the address case-insensitively and returns
	// errs.ErrObjectNotFound when nobody uses it.
	FindByEmail(ctx context.Context, email kernel.Email) (*customer.Customer, error)

	FindAll(ctx context.Context) ([]*customer.Customer, error)

	ExistsByID(ctx context.Context, id kernel.CustomerID) (bool, error)

	// DeleteByID removes the customer. Deleting an absent id is a no-op.
	DeleteByID(ctx context.Context, id kernel.CustomerID) error
}
