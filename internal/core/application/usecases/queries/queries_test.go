package queries_test

import (
	"testing"

	"github.com/ManuLasker/arka-hexagonal-simple/internal/core/application/usecases/queries"
	"github.com/ManuLasker/arka-hexagonal-simple/internal/core/domain/model/kernel"
	"github.com/ManuLasker/arka-hexagonal-simple/internal/core/domain/model/order"
	"github.com/ManuLasker/arka-hexagonal-simple/internal/core/domain/model/product"
	"github.com/ManuLasker/arka-hexagonal-simple/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueries_NotConstructedViaConstructor(t *testing.T) {
	tests := []struct {
		name     string
		validate func() error
		sentinel error
	}{
		{"get product", queries.GetProductQuery{}.Validate, queries.ErrGetProductQueryIsNotConstructed},
		{"list products", queries.ListProductsQuery{}.Validate, queries.ErrListProductsQueryIsNotConstructed},
		{"low stock", queries.GetLowStockProductsQuery{}.Validate, queries.ErrGetLowStockProductsQueryIsNotConstructed},
		{"get order", queries.GetOrderQuery{}.Validate, queries.ErrGetOrderQueryIsNotConstructed},
		{"list orders", queries.ListOrdersQuery{}.Validate, queries.ErrListOrdersQueryIsNotConstructed},
		{"get customer", queries.GetCustomerQuery{}.Validate, queries.ErrGetCustomerQueryIsNotConstructed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, tt.validate(), tt.sentinel)
		})
	}
}

func TestIDQueries_RejectBlankIdentifiers(t *testing.T) {
	_, err := queries.NewGetProductQuery(" ")
	require.ErrorIs(t, err, errs.ErrValueIsRequired)

	_, err = queries.NewGetOrderQuery("")
	require.ErrorIs(t, err, errs.ErrValueIsRequired)

	_, err = queries.NewGetCustomerQuery("")
	require.ErrorIs(t, err, errs.ErrValueIsRequired)

	_, err = queries.NewGetCustomerByEmailQuery(kernel.Email{})
	require.ErrorIs(t, err, kernel.ErrEmailIsNotConstructed)
}

func TestListProductsQuery_CategoryFilter(t *testing.T) {
	all := queries.NewListProductsQuery()
	require.NoError(t, all.Validate())
	_, ok := all.Category()
	assert.False(t, ok)

	food, err := queries.NewListProductsByCategoryQuery(product.Food)
	require.NoError(t, err)
	category, ok := food.Category()
	assert.True(t, ok)
	assert.Equal(t, product.Food, category)

	_, err = queries.NewListProductsByCategoryQuery(product.UnknownCategory)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestListOrdersQuery_Filters(t *testing.T) {
	customerID := kernel.NewCustomerID()

	tests := []struct {
		name           string
		customerID     kernel.CustomerID
		status         order.Status
		wantByCustomer bool
		wantByStatus   bool
	}{
		{"no filter", "", order.Unknown, false, false},
		{"customer only", customerID, order.Unknown, true, false},
		{"status only", "", order.Shipped, false, true},
		{"both", customerID, order.Pending, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, err := queries.NewListOrdersQuery(tt.customerID, tt.status)
			require.NoError(t, err)

			_, byCustomer := q.CustomerID()
			_, byStatus := q.Status()
			assert.Equal(t, tt.wantByCustomer, byCustomer)
			assert.Equal(t, tt.wantByStatus, byStatus)
		})
	}

	_, err := queries.NewListOrdersQuery("", order.Status(42))
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestGetCustomerQuery_ByEmail(t *testing.T) {
	email, err := kernel.NewEmail("ana@arka.co")
	require.NoError(t, err)

	byEmail, err := queries.NewGetCustomerByEmailQuery(email)
	require.NoError(t, err)
	assert.True(t, byEmail.ByEmail())

	byID, err := queries.NewGetCustomerQuery(kernel.NewCustomerID())
	require.NoError(t, err)
	assert.False(t, byID.ByEmail())
}
