// Package http exposes the application over a JSON REST API.
package http

import (
	"context"
	"net/http"

	"github.com/ManuLasker/arka-hexagonal-simple/internal/core/application/usecases/commands"
	"github.com/ManuLasker/arka-hexagonal-simple/internal/core/application/usecases/queries"
	"github.com/ManuLasker/arka-hexagonal-simple/internal/core/domain/model/customer"
	"github.com/ManuLasker/arka-hexagonal-simple/internal/core/domain/model/order"
	"github.com/ManuLasker/arka-hexagonal-simple/internal/core/domain/model/product"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// Handler is a command or query handler producing a result.
type Handler[In any, Out any] interface {
	Handle(ctx context.Context, in In) (Out, error)
}

// VoidHandler is a command handler with no result.
type VoidHandler[In any] interface {
	Handle(ctx context.Context, in In) error
}

// Handlers groups every use case the API exposes.
type Handlers struct {
	// Inventory
	RegisterProduct     Handler[commands.RegisterProductCommand, *product.Product]
	UpdateStock         Handler[commands.UpdateStockCommand, *product.Product]
	ReduceStock         Handler[commands.ReduceStockCommand, *product.Product]
	IncreaseStock       Handler[commands.IncreaseStockCommand, *product.Product]
	DeleteProduct       VoidHandler[commands.DeleteProductCommand]
	GetProduct          Handler[queries.GetProductQuery, queries.ProductResponse]
	ListProducts        Handler[queries.ListProductsQuery, []queries.ProductResponse]
	GetLowStockProducts Handler[queries.GetLowStockProductsQuery, []queries.ProductResponse]
	RestockReport       Handler[commands.GenerateRestockReportCommand, int]

	// Orders
	CreateOrder       Handler[commands.CreateOrderCommand, *order.Order]
	AddOrderItem      Handler[commands.AddOrderItemCommand, *order.Order]
	RemoveOrderItem   Handler[commands.RemoveOrderItemCommand, *order.Order]
	ChangeOrderStatus Handler[commands.ChangeOrderStatusCommand, *order.Order]
	DeleteOrder       VoidHandler[commands.DeleteOrderCommand]
	GetOrder          Handler[queries.GetOrderQuery, queries.OrderResponse]
	ListOrders        Handler[queries.ListOrdersQuery, []queries.OrderResponse]

	// Customers
	RegisterCustomer Handler[commands.RegisterCustomerCommand, *customer.Customer]
	GetCustomer      Handler[queries.GetCustomerQuery, queries.CustomerResponse]
}

// Server translates HTTP requests into commands and queries.
type Server struct {
	h      Handlers
	logger *zap.Logger
}

func NewServer(handlers Handlers, logger *zap.Logger) *Server {
	return &Server{
		h:      handlers,
		logger: logger.Named("http"),
	}
}

// RegisterRoutes mounts /health and the /api/v1 routes on e.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	api := e.Group("/api/v1")

	api.POST("/products", s.RegisterProduct)
	api.GET("/products", s.ListProducts)
	api.GET("/products/low-stock", s.GetLowStockProducts)
	api.GET("/products/:id", s.GetProduct)
	api.DELETE("/products/:id", s.DeleteProduct)
	api.PUT("/products/:id/stock", s.UpdateStock)
	api.POST("/products/:id/stock/reduce", s.ReduceStock)
	api.POST("/products/:id/stock/increase", s.IncreaseStock)

	api.POST("/orders", s.CreateOrder)
	api.GET("/orders", s.ListOrders)
	api.GET("/orders/:id", s.GetOrder)
	api.DELETE("/orders/:id", s.DeleteOrder)
	api.POST("/orders/:id/items", s.AddOrderItem)
	api.DELETE("/orders/:id/items", s.RemoveOrderItem)
	api.POST("/orders/:id/confirm", s.changeOrderStatus(order.Confirm))
	api.POST("/orders/:id/ship", s.changeOrderStatus(order.Ship))
	api.POST("/orders/:id/deliver", s.changeOrderStatus(order.Deliver))

	api.POST("/customers", s.RegisterCustomer)
	api.GET("/customers", s.GetCustomerByEmail)
	api.GET("/customers/:id", s.GetCustomer)

	api.POST("/reports/restock", s.GenerateRestockReport)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Healthy")
}
