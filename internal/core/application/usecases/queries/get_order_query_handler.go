package queries

import (
	"context"

	"github.com/ManuLasker/arka-hexagonal-simple/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetOrderQueryHandler reads one order and its lines.
//
// Example:
//
//	query, _ := NewGetOrderQuery(orderID)
//	o, err := NewGetOrderQueryHandler(db).Handle(ctx, query)
//	if err != nil {
//	    return err
//	}
//	fmt.Printf("order %s is %s, total %s\n", o.ID, o.Status, o.Total)
type GetOrderQueryHandler struct {
	db *gorm.DB
}

func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle returns an ObjectNotFoundError when no order has the identifier.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderResponse{}, err
	}

	orders, err := loadOrders(ctx, h.db, selectOrders+`
		WHERE id = ?
	`, query.OrderID().String())
	if err != nil {
		return OrderResponse{}, err
	}
	if len(orders) == 0 {
		return OrderResponse{}, errs.NewObjectNotFoundError("order", query.OrderID().String())
	}

	return orders[0], nil
}
