package queries

import (
	"errors"

	"github.com/ManuLasker/arka-hexagonal-simple/internal/core/domain/model/kernel"
	"github.com/ManuLasker/arka-hexagonal-simple/internal/core/domain/model/order"
	"github.com/ManuLasker/arka-hexagonal-simple/internal/pkg/guard"
)

var ErrListOrdersQueryIsNotConstructed = errors.New(
	"ListOrdersQuery must be created via NewListOrdersQuery constructor",
)

// ListOrdersQuery lists orders, newest first. Both filters are optional and
// combine with AND.
//
// Example:
//
//	query, err := NewListOrdersQuery(customerID, order.Pending)
//	// pending orders of one customer
//
//	query, err = NewListOrdersQuery("", order.Unknown)
//	// every order
type ListOrdersQuery struct {
	customerID kernel.CustomerID
	status     order.Status
	guard      guard.ConstructorGuard
}

// NewListOrdersQuery treats a blank customerID and order.Unknown as "no filter".
func NewListOrdersQuery(customerID kernel.CustomerID, status order.Status) (ListOrdersQuery, error) {
	if status != order.Unknown {
		if err := status.Validate(); err != nil {
			return ListOrdersQuery{}, err
		}
	}

	return ListOrdersQuery{
		customerID: customerID,
		status:     status,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

func (q ListOrdersQuery) CustomerID() (kernel.CustomerID, bool) {
	return q.customerID, q.customerID.Validate() == nil
}

func (q ListOrdersQuery) Status() (order.Status, bool) {
	return q.status, q.status != order.Unknown
}
