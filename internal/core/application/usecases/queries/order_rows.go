package queries

import (
	"context"

	"github.com/ManuLasker/arka-hexagonal-simple/internal/core/domain/model/kernel"
	"github.com/ManuLasker/arka-hexagonal-simple/internal/core/domain/model/order"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const selectOrders = `
	SELECT
		id,
		customer_id,
		status,
		created_at
	FROM orders
`

type orderItemRow struct {
	OrderID           string
	ProductID         string
	Quantity          int
	UnitPriceAmount   decimal.Decimal
	UnitPriceCurrency string
}

// loadOrders runs an order statement built on selectOrders, then fetches the
// lines of all returned orders with one more statement.
func loadOrders(ctx context.Context, db *gorm.DB, stmt string, args ...any) ([]OrderResponse, error) {
	rows, err := db.WithContext(ctx).Raw(stmt, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]OrderResponse, 0)
	for rows.Next() {
		var (
			resp                       OrderResponse
			id, customerID, statusCode string
		)

		if err = rows.Scan(&id, &customerID, &statusCode, &resp.CreatedAt); err != nil {
			return nil, err
		}

		status, statusErr := order.ParseStatus(statusCode)
		if statusErr != nil {
			return nil, statusErr
		}

		resp.ID = kernel.OrderID(id)
		resp.CustomerID = kernel.CustomerID(customerID)
		resp.Status = status
		resp.CreatedAt = resp.CreatedAt.UTC()
		orders = append(orders, resp)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	if err = attachItems(ctx, db, orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// attachItems loads the lines of orders and fills Items and Total. Each order
// is restored through order.RestoreOrder so the total follows Order.Total.
func attachItems(ctx context.Context, db *gorm.DB, orders []OrderResponse) error {
	if len(orders) == 0 {
		return nil
	}

	ids := lo.Map(orders, func(o OrderResponse, _ int) string { return o.ID.String() })

	var itemRows []orderItemRow
	err := db.WithContext(ctx).Raw(`
		SELECT
			order_id,
			product_id,
			quantity,
			unit_price_amount,
			unit_price_currency
		FROM order_items
		WHERE order_id IN ?
		ORDER BY order_id, position
	`, ids).Scan(&itemRows).Error
	if err != nil {
		return err
	}

	byOrder := lo.GroupBy(itemRows, func(r orderItemRow) string { return r.OrderID })
	for i := range orders {
		items := make([]order.Item, 0, len(byOrder[orders[i].ID.String()]))
		for _, line := range byOrder[orders[i].ID.String()] {
			item, itemErr := toOrderItem(line)
			if itemErr != nil {
				return itemErr
			}
			items = append(items, item)
		}

		o, restoreErr := order.RestoreOrder(
			orders[i].ID,
			orders[i].CustomerID,
			orders[i].Status,
			items,
			orders[i].CreatedAt,
		)
		if restoreErr != nil {
			return restoreErr
		}

		total, totalErr := o.Total()
		if totalErr != nil {
			return totalErr
		}

		orders[i].Items = lo.Map(o.Items(), func(item order.Item, _ int) OrderItemResponse {
			return OrderItemResponse{
				ProductID:  item.ProductID(),
				Quantity:   item.Quantity(),
				UnitPrice:  item.UnitPrice(),
				TotalPrice: item.TotalPrice(),
			}
		})
		orders[i].Total = total
	}

	return nil
}

func toOrderItem(row orderItemRow) (order.Item, error) {
	unitPrice, err := kernel.NewMoney(row.UnitPriceAmount, row.UnitPriceCurrency)
	if err != nil {
		return order.Item{}, err
	}
	return order.NewItem(kernel.ProductID(row.ProductID), row.Quantity, unitPrice)
}
