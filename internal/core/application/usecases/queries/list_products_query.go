package queries

import (
	"errors"

	"github.com/ManuLasker/arka-hexagonal-simple/internal/core/domain/model/product"
	"github.com/ManuLasker/arka-hexagonal-simple/internal/pkg/guard"
)

var ErrListProductsQueryIsNotConstructed = errors.New(
	"ListProductsQuery must be created via NewListProductsQuery or NewListProductsByCategoryQuery constructor",
)

// ListProductsQuery lists the catalog, optionally restricted to one category.
type ListProductsQuery struct {
	category product.Category
	guard    guard.ConstructorGuard
}

// NewListProductsQuery lists every product.
func NewListProductsQuery() ListProductsQuery {
	return ListProductsQuery{guard: guard.NewConstructorGuard()}
}

func NewListProductsByCategoryQuery(category product.Category) (ListProductsQuery, error) {
	if err := category.Validate(); err != nil {
		return ListProductsQuery{}, err
	}
	return ListProductsQuery{category: category, guard: guard.NewConstructorGuard()}, nil
}

func (q ListProductsQuery) Validate() error {
	return q.guard.Validate(ErrListProductsQueryIsNotConstructed)
}

// Category reports the filter; ok is false when every category is listed.
func (q ListProductsQuery) Category() (category product.Category, ok bool) {
	return q.category, q.category != product.UnknownCategory
}
