// Package orderrepo persists order aggregates with GORM. An order is one row in
// orders plus one row per line in order_items, kept in insertion order by position.
package orderrepo

import (
	"time"

	"github.com/ManuLasker/arka-hexagonal-simple/internal/core/domain/model/kernel"
	"github.com/ManuLasker/arka-hexagonal-simple/internal/core/domain/model/order"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

// OrderDTO is the row layout of the orders table. customer_id has no foreign
// key; an order outlives the customer record.
type OrderDTO struct {
	ID         string         `gorm:"type:varchar(64);primaryKey"`
	CustomerID string         `gorm:"type:varchar(64);not null;index"`
	Status     string         `gorm:"type:varchar(16);not null;index"`
	CreatedAt  time.Time      `gorm:"not null"`
	Items      []OrderItemDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO is one order line. Unit prices are a snapshot taken when the
// line was added, so product_id has no foreign key either.
type OrderItemDTO struct {
	ID                uint            `gorm:"primaryKey;autoIncrement"`
	OrderID           string          `gorm:"type:varchar(64);not null;index"`
	Position          int             `gorm:"type:int;not null"`
	ProductID         string          `gorm:"type:varchar(64);not null"`
	Quantity          int             `gorm:"type:int;not null;check:chk_order_items_quantity,quantity > 0"`
	UnitPriceAmount   decimal.Decimal `gorm:"type:numeric(19,4);not null"`
	UnitPriceCurrency string          `gorm:"type:char(3);not null"`
}

func (OrderItemDTO) TableName() string {
	return "order_items"
}

func fromDomain(o *order.Order) OrderDTO {
	orderID := o.ID().String()

	return OrderDTO{
		ID:         orderID,
		CustomerID: o.CustomerID().String(),
		Status:     o.Status().String(),
		CreatedAt:  o.CreatedAt(),
		Items: lo.Map(o.Items(), func(item order.Item, position int) OrderItemDTO {
			return OrderItemDTO{
				OrderID:           orderID,
				Position:          position,
				ProductID:         item.ProductID().String(),
				Quantity:          item.Quantity(),
				UnitPriceAmount:   item.UnitPrice().Amount(),
				UnitPriceCurrency: item.UnitPrice().Currency().String(),
			}
		}),
	}
}

// toDomain expects dto.Items sorted by position.
func toDomain(dto OrderDTO) (*order.Order, error) {
	status, err := order.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	items := make([]order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := itemToDomain(itemDTO)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return order.RestoreOrder(
		kernel.OrderID(dto.ID),
		kernel.CustomerID(dto.CustomerID),
		status,
		items,
		dto.CreatedAt.UTC(),
	)
}

func itemToDomain(dto OrderItemDTO) (order.Item, error) {
	unitPrice, err := kernel.NewMoney(dto.UnitPriceAmount, dto.UnitPriceCurrency)
	if err != nil {
		return order.Item{}, err
	}
	return order.NewItem(kernel.ProductID(dto.ProductID), dto.Quantity, unitPrice)
}

func toDomainList(dtos []OrderDTO) ([]*order.Order, error) {
	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, nil
}
