package http

import (
	"time"

	"github.com/ManuLasker/arka-hexagonal-simple/internal/core/application/usecases/queries"
	"github.com/ManuLasker/arka-hexagonal-simple/internal/core/domain/model/customer"
	"github.com/ManuLasker/arka-hexagonal-simple/internal/core/domain/model/kernel"
	"github.com/ManuLasker/arka-hexagonal-simple/internal/core/domain/model/order"
	"github.com/ManuLasker/arka-hexagonal-simple/internal/core/domain/model/product"
	"github.com/ManuLasker/arka-hexagonal-simple/internal/pkg/errs"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

// Error is the body of every non-2xx JSON response.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Money carries the amount as a decimal string to keep exact precision.
type Money struct {
	Amount   string `json:"amount"`
	Currency string `json:"currency"`
}

type NewProduct struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       Money  `json:"price"`
	Stock       int    `json:"stock"`
	Category    string `json:"category"`
}

type Product struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       Money  `json:"price"`
	Stock       int    `json:"stock"`
	Category    string `json:"category"`
}

type UpdateStock struct {
	Stock int `json:"stock"`
}

type StockQuantity struct {
	Quantity int `json:"quantity"`
}

type NewOrder struct {
	CustomerID string `json:"customerId"`
}

type NewOrderItem struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

type RemovedOrderItem struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
	UnitPrice Money  `json:"unitPrice"`
}

type OrderItem struct {
	ProductID  string `json:"productId"`
	Quantity   int    `json:"quantity"`
	UnitPrice  Money  `json:"unitPrice"`
	TotalPrice Money  `json:"totalPrice"`
}

type Order struct {
	ID         string      `json:"id"`
	CustomerID string      `json:"customerId"`
	Status     string      `json:"status"`
	CreatedAt  time.Time   `json:"createdAt"`
	Items      []OrderItem `json:"items"`
	Total      Money       `json:"total"`
}

type NewCustomer struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	City  string `json:"city"`
}

type Customer struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	City  string `json:"city"`
}

type RestockReport struct {
	Alerts int `json:"alerts"`
}

func (m Money) toDomain() (kernel.Money, error) {
	amount, err := decimal.NewFromString(m.Amount)
	if err != nil {
		return kernel.Money{}, errs.NewValueIsInvalidErrorWithCause("amount", err)
	}
	return kernel.NewMoney(amount, m.Currency)
}

func moneyFrom(m kernel.Money) Money {
	return Money{
		Amount:   m.Amount().String(),
		Currency: m.Currency().String(),
	}
}

func productFromResponse(p queries.ProductResponse) Product {
	return Product{
		ID:          p.ID.String(),
		Name:        p.Name,
		Description: p.Description,
		Price:       moneyFrom(p.Price),
		Stock:       p.Stock,
		Category:    p.Category.String(),
	}
}

func productFromDomain(p *product.Product) Product {
	return Product{
		ID:          p.ID().String(),
		Name:        p.Name(),
		Description: p.Description(),
		Price:       moneyFrom(p.Price()),
		Stock:       p.Stock(),
		Category:    p.Category().String(),
	}
}

func productsFromResponse(products []queries.ProductResponse) []Product {
	return lo.Map(products, func(p queries.ProductResponse, _ int) Product {
		return productFromResponse(p)
	})
}

func orderFromResponse(o queries.OrderResponse) Order {
	return Order{
		ID:         o.ID.String(),
		CustomerID: o.CustomerID.String(),
		Status:     o.Status.String(),
		CreatedAt:  o.CreatedAt.UTC(),
		Items: lo.Map(o.Items, func(item queries.OrderItemResponse, _ int) OrderItem {
			return OrderItem{
				ProductID:  item.ProductID.String(),
				Quantity:   item.Quantity,
				UnitPrice:  moneyFrom(item.UnitPrice),
				TotalPrice: moneyFrom(item.TotalPrice),
			}
		}),
		Total: moneyFrom(o.Total),
	}
}

func orderFromDomain(o *order.Order) (Order, error) {
	total, err := o.Total()
	if err != nil {
		return Order{}, err
	}

	return Order{
		ID:         o.ID().String(),
		CustomerID: o.CustomerID().String(),
		Status:     o.Status().String(),
		CreatedAt:  o.CreatedAt().UTC(),
		Items: lo.Map(o.Items(), func(item order.Item, _ int) OrderItem {
			return OrderItem{
				ProductID:  item.ProductID().String(),
				Quantity:   item.Quantity(),
				UnitPrice:  moneyFrom(item.UnitPrice()),
				TotalPrice: moneyFrom(item.TotalPrice()),
			}
		}),
		Total: moneyFrom(total),
	}, nil
}

func ordersFromResponse(orders []queries.OrderResponse) []Order {
	return lo.Map(orders, func(o queries.OrderResponse, _ int) Order {
		return orderFromResponse(o)
	})
}

func customerFromResponse(c queries.CustomerResponse) Customer {
	return Customer{
		ID:    c.ID.String(),
		Name:  c.Name,
		Email: c.Email.String(),
		City:  c.City,
	}
}

func customerFromDomain(c *customer.Customer) Customer {
	return Customer{
		ID:    c.ID().String(),
		Name:  c.Name(),
		Email: c.Email().String(),
		City:  c.City(),
	}
}
