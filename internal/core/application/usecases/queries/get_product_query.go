// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Handlers read the tables directly with SQL and return read models; they never
// load aggregates or open a unit of work.
package queries

import (
	"errors"

	"github.com/ManuLasker/arka-hexagonal-simple/internal/core/domain/model/kernel"
	"github.com/ManuLasker/arka-hexagonal-simple/internal/core/domain/model/product"
	"github.com/ManuLasker/arka-hexagonal-simple/internal/pkg/guard"
)

var ErrGetProductQueryIsNotConstructed = errors.New(
	"GetProductQuery must be created via NewGetProductQuery constructor",
)

// GetProductQuery retrieves one product by identifier.
//
// Example:
//
//	query, err := NewGetProductQuery(productID)
//	if err != nil {
//	    return err
//	}
//
//	p, err := NewGetProductQueryHandler(db).Handle(ctx, query)
//	if errors.Is(err, errs.ErrObjectNotFound) {
//	    // unknown product
//	}
//	fmt.Printf("%s: %d in stock at %s\n", p.Name, p.Stock, p.Price)
type GetProductQuery struct {
	productID kernel.ProductID
	guard     guard.ConstructorGuard
}

func NewGetProductQuery(productID kernel.ProductID) (GetProductQuery, error) {
	if err := productID.Validate(); err != nil {
		return GetProductQuery{}, err
	}
	return GetProductQuery{productID: productID, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetProductQuery) Validate() error {
	return q.guard.Validate(ErrGetProductQueryIsNotConstructed)
}

func (q GetProductQuery) ProductID() kernel.ProductID {
	return q.productID
}

// ProductResponse is the read model of a product shared by all product queries.
type ProductResponse struct {
	ID          kernel.ProductID
	Name        string
	Description string
	Price       kernel.Money
	Stock       int
	Category    product.Category
}
