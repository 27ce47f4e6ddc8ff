// Package ports defines the contracts between the Arka core and its adapters:
// one repository per aggregate, the unit of work that scopes a transaction,
// and the notification sink.
package ports

import (
	"context"

	"github.com/ManuLasker/arka-hexagonal-simple/internal/core/domain/model/kernel"
	"github.com/ManuLasker/arka-hexagonal-simple/internal/core/domain/model/product"
)

// ProductRepository defines the persistence contract for product aggregates.
// Every method operates on one aggregate at a time.
type ProductRepository interface {
	// Save inserts the product or replaces the stored state of the same id.
	Save(ctx context.Context, aggregate *product.Product) error

	// FindByID returns errs.ErrObjectNotFound when no product has this id.
	FindByID(ctx context.Context, id kernel.ProductID) (*product.Product, error)

	// FindByIDForUpdate behaves like FindByID and additionally locks the row
	// until the surrounding transaction ends. Use it before mutating a product.
	FindByIDForUpdate(ctx context.Context, id kernel.ProductID) (*product.Product, error)

	// FindAll returns every product ordered by name.
	FindAll(ctx context.Context) ([]*product.Product, error)

	// FindByCategory returns the products of one category ordered by name.
	FindByCategory(ctx context.Context, category product.Category) ([]*product.Product, error)

	// FindLowStock returns the products whose stock is strictly below threshold,
	// lowest stock first.
	FindLowStock(ctx context.Context, threshold int) ([]*product.Product, error)

	ExistsByID(ctx context.Context, id kernel.ProductID) (bool, error)

	// DeleteByID removes the product. Deleting an absent id is a no-op.
	DeleteByID(ctx context.Context, id kernel.ProductID) error
}
