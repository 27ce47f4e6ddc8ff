package queries

import (
	"context"
	"strings"

	"gorm.io/gorm"
)

// ListOrdersQueryHandler lists orders with their lines.
type ListOrdersQueryHandler struct {
	db *gorm.DB
}

func NewListOrdersQueryHandler(db *gorm.DB) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{db: db}
}

func (h ListOrdersQueryHandler) Handle(ctx context.Context, query ListOrdersQuery) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var (
		conditions []string
		args       []any
	)
	if customerID, ok := query.CustomerID(); ok {
		conditions = append(conditions, "customer_id = ?")
		args = append(args, customerID.String())
	}
	if status, ok := query.Status(); ok {
		conditions = append(conditions, "status = ?")
		args = append(args, status.String())
	}

	stmt := selectOrders
	if len(conditions) > 0 {
		stmt += " WHERE " + strings.Join(conditions, " AND ")
	}
	stmt += " ORDER BY created_at DESC, id"

	return loadOrders(ctx, h.db, stmt, args...)
}
