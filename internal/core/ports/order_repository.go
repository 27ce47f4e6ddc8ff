package ports

import (
	"context"

	"github.com/ManuLasker/arka-hexagonal-simple/internal/core/domain/model/kernel"
	"github.com/ManuLasker/arka-hexagonal-simple/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// An order is stored together with its items; items are never addressed on their own.
type OrderRepository interface {
	// Save inserts the order or replaces the stored order and its items.
	Save(ctx context.Context, aggregate *order.Order) error

	// FindByID returns errs.ErrObjectNotFound when no order has this id.
	FindByID(ctx context.Context, id kernel.OrderID) (*order.Order, error)

	// FindByIDForUpdate behaves like FindByID and locks the order row until the
	// surrounding transaction ends.
	FindByIDForUpdate(ctx context.Context, id kernel.OrderID) (*order.Order, error)

	// FindAll returns every order, newest first.
	FindAll(ctx context.Context) ([]*order.Order, error)

	// FindByCustomer returns the customer's orders, newest first.
	FindByCustomer(ctx context.Context, customerID kernel.CustomerID) ([]*order.Order, error)

	// FindByStatus returns the orders currently in status, newest first.
	FindByStatus(ctx context.Context, status order.Status) ([]*order.Order, error)

	ExistsByID(ctx context.Context, id kernel.OrderID) (bool, error)

	// DeleteByID removes the order and its items. Deleting an absent id is a no-op.
	DeleteByID(ctx context.Context, id kernel.OrderID) error
}
