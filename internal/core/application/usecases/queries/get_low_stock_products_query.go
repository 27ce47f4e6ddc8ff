package queries

import (
	"errors"

	"github.com/ManuLasker/arka-hexagonal-simple/internal/pkg/guard"
)

var ErrGetLowStockProductsQueryIsNotConstructed = errors.New(
	"GetLowStockProductsQuery must be created via NewGetLowStockProductsQuery constructor",
)

// GetLowStockProductsQuery lists the products the restock report would alert on.
type GetLowStockProductsQuery struct {
	guard guard.ConstructorGuard
}

func NewGetLowStockProductsQuery() GetLowStockProductsQuery {
	return GetLowStockProductsQuery{guard: guard.NewConstructorGuard()}
}

func (q GetLowStockProductsQuery) Validate() error {
	return q.guard.Validate(ErrGetLowStockProductsQueryIsNotConstructed)
}
