package cmd

import (
	httpadapter "github.com/ManuLasker/arka-hexagonal-simple/internal/adapters/in/http"
	"github.com/ManuLasker/arka-hexagonal-simple/internal/adapters/out/postgres"
	"github.com/ManuLasker/arka-hexagonal-simple/internal/core/application/usecases/commands"
	"github.com/ManuLasker/arka-hexagonal-simple/internal/core/application/usecases/queries"
	"github.com/ManuLasker/arka-hexagonal-simple/internal/core/ports"
	"github.com/ManuLasker/arka-hexagonal-simple/internal/jobs"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	sink       ports.NotificationSink
	logger     *zap.Logger
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, sink ports.NotificationSink, logger *zap.Logger) CompositionRoot {
	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		sink:       sink,
		logger:     logger,
	}
}

func (c *CompositionRoot) productUoWFactory() commands.ProductUoWFactory {
	return FuncProductUoWFactory(func() commands.ProductUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) customerUoWFactory() commands.CustomerUoWFactory {
	return FuncCustomerUoWFactory(func() commands.CustomerUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateRegisterProductCommandHandler() commands.RegisterProductCommandHandler {
	return commands.NewRegisterProductCommandHandler(c.productUoWFactory())
}

func (c *CompositionRoot) CreateUpdateStockCommandHandler() commands.UpdateStockCommandHandler {
	return commands.NewUpdateStockCommandHandler(c.productUoWFactory())
}

func (c *CompositionRoot) CreateReduceStockCommandHandler() commands.ReduceStockCommandHandler {
	return commands.NewReduceStockCommandHandler(c.productUoWFactory())
}

func (c *CompositionRoot) CreateIncreaseStockCommandHandler() commands.IncreaseStockCommandHandler {
	return commands.NewIncreaseStockCommandHandler(c.productUoWFactory())
}

func (c *CompositionRoot) CreateDeleteProductCommandHandler() commands.DeleteProductCommandHandler {
	return commands.NewDeleteProductCommandHandler(c.productUoWFactory())
}

func (c *CompositionRoot) CreateGenerateRestockReportCommandHandler() commands.GenerateRestockReportCommandHandler {
	return commands.NewGenerateRestockReportCommandHandler(c.productUoWFactory(), c.sink, c.logger)
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateAddOrderItemCommandHandler() commands.AddOrderItemCommandHandler {
	return commands.NewAddOrderItemCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateRemoveOrderItemCommandHandler() commands.RemoveOrderItemCommandHandler {
	return commands.NewRemoveOrderItemCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateChangeOrderStatusCommandHandler() commands.ChangeOrderStatusCommandHandler {
	return commands.NewChangeOrderStatusCommandHandler(c.orderUoWFactory(), c.sink, c.logger)
}

func (c *CompositionRoot) CreateDeleteOrderCommandHandler() commands.DeleteOrderCommandHandler {
	return commands.NewDeleteOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateRegisterCustomerCommandHandler() commands.RegisterCustomerCommandHandler {
	return commands.NewRegisterCustomerCommandHandler(c.customerUoWFactory())
}

func (c *CompositionRoot) CreateGetProductQueryHandler() queries.GetProductQueryHandler {
	return queries.NewGetProductQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListProductsQueryHandler() queries.ListProductsQueryHandler {
	return queries.NewListProductsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetLowStockProductsQueryHandler() queries.GetLowStockProductsQueryHandler {
	return queries.NewGetLowStockProductsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListOrdersQueryHandler() queries.ListOrdersQueryHandler {
	return queries.NewListOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetCustomerQueryHandler() queries.GetCustomerQueryHandler {
	return queries.NewGetCustomerQueryHandler(c.gormDB)
}

// CreateHTTPServer wires every use case into the REST API.
func (c *CompositionRoot) CreateHTTPServer() *httpadapter.Server {
	return httpadapter.NewServer(httpadapter.Handlers{
		RegisterProduct:     c.CreateRegisterProductCommandHandler(),
		UpdateStock:         c.CreateUpdateStockCommandHandler(),
		ReduceStock:         c.CreateReduceStockCommandHandler(),
		IncreaseStock:       c.CreateIncreaseStockCommandHandler(),
		DeleteProduct:       c.CreateDeleteProductCommandHandler(),
		GetProduct:          c.CreateGetProductQueryHandler(),
		ListProducts:        c.CreateListProductsQueryHandler(),
		GetLowStockProducts: c.CreateGetLowStockProductsQueryHandler(),
		RestockReport:       c.CreateGenerateRestockReportCommandHandler(),

		CreateOrder:       c.CreateCreateOrderCommandHandler(),
		AddOrderItem:      c.CreateAddOrderItemCommandHandler(),
		RemoveOrderItem:   c.CreateRemoveOrderItemCommandHandler(),
		ChangeOrderStatus: c.CreateChangeOrderStatusCommandHandler(),
		DeleteOrder:       c.CreateDeleteOrderCommandHandler(),
		GetOrder:          c.CreateGetOrderQueryHandler(),
		ListOrders:        c.CreateListOrdersQueryHandler(),

		RegisterCustomer: c.CreateRegisterCustomerCommandHandler(),
		GetCustomer:      c.CreateGetCustomerQueryHandler(),
	}, c.logger)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateGenerateRestockReportCommandHandler(),
		c.config.RestockReportSchedule,
		c.logger,
	)
}

type FuncProductUoWFactory func() commands.ProductUoW

func (f FuncProductUoWFactory) Create() commands.ProductUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncCustomerUoWFactory func() commands.CustomerUoW

func (f FuncCustomerUoWFactory) Create() commands.CustomerUoW {
	return f()
}
