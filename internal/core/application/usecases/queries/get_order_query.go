package queries

import (
	"errors"
	"time"

	"github.com/ManuLasker/arka-hexagonal-simple/internal/core/domain/model/kernel"
	"github.com/ManuLasker/arka-hexagonal-simple/internal/core/domain/model/order"
	"github.com/ManuLasker/arka-hexagonal-simple/internal/pkg/guard"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery retrieves one order with its lines and total.
type GetOrderQuery struct {
	orderID kernel.OrderID
	guard   guard.ConstructorGuard
}

func NewGetOrderQuery(orderID kernel.OrderID) (GetOrderQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderQuery{}, err
	}
	return GetOrderQuery{orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

func (q GetOrderQuery) OrderID() kernel.OrderID {
	return q.orderID
}

// OrderResponse is the read model of an order. Total is zero in
// order.DefaultCurrency for an order without lines.
//
// Example:
//
//	resp := OrderResponse{
//	    ID:     "0b8f...",
//	    Status: order.Pending,
//	    Items:  []OrderItemResponse{{Quantity: 2, UnitPrice: tenCOP, TotalPrice: twentyCOP}},
//	    Total:  twentyCOP,
//	}
type OrderResponse struct {
	ID         kernel.OrderID
	CustomerID kernel.CustomerID
	Status     order.Status
	CreatedAt  time.Time
	Items      []OrderItemResponse
	Total      kernel.Money
}

type OrderItemResponse struct {
	ProductID  kernel.ProductID
	Quantity   int
	UnitPrice  kernel.Money
	TotalPrice kernel.Money
}
