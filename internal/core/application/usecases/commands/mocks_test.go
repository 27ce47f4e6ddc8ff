package commands_test

import (
	"context"
	"testing"

	"github.com/ManuLasker/arka-hexagonal-simple/internal/core/application/usecases/commands"
	"github.com/ManuLasker/arka-hexagonal-simple/internal/core/domain/model/customer"
	"github.com/ManuLasker/arka-hexagonal-simple/internal/core/domain/model/kernel"
	"github.com/ManuLasker/arka-hexagonal-simple/internal/core/domain/model/order"
	"github.com/ManuLasker/arka-hexagonal-simple/internal/core/domain/model/product"
	"github.com/ManuLasker/arka-hexagonal-simple/internal/core/ports"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockProductRepository struct{ mock.Mock }

func (m *MockProductRepository) Save(ctx context.Context, p *product.Product) error {
	return m.Called(ctx, p).Error(0)
}

func (m *MockProductRepository) FindByID(ctx context.Context, id kernel.ProductID) (*product.Product, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(*product.Product)
	return p, args.Error(1)
}

func (m *MockProductRepository) FindByIDForUpdate(ctx context.Context, id kernel.ProductID) (*product.Product, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(*product.Product)
	return p, args.Error(1)
}

func (m *MockProductRepository) FindAll(ctx context.Context) ([]*product.Product, error) {
	args := m.Called(ctx)
	p, _ := args.Get(0).([]*product.Product)
	return p, args.Error(1)
}

func (m *MockProductRepository) FindByCategory(ctx context.Context, c product.Category) ([]*product.Product, error) {
	args := m.Called(ctx, c)
	p, _ := args.Get(0).([]*product.Product)
	return p, args.Error(1)
}

func (m *MockProductRepository) FindLowStock(ctx context.Context, threshold int) ([]*product.Product, error) {
	args := m.Called(ctx, threshold)
	p, _ := args.Get(0).([]*product.Product)
	return p, args.Error(1)
}

func (m *MockProductRepository) ExistsByID(ctx context.Context, id kernel.ProductID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockProductRepository) DeleteByID(ctx context.Context, id kernel.ProductID) error {
	return m.Called(ctx, id).Error(0)
}

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Save(ctx context.Context, o *order.Order) error {
	return m.Called(ctx, o).Error(0)
}

func (m *MockOrderRepository) FindByID(ctx context.Context, id kernel.OrderID) (*order.Order, error) {
	args := m.Called(ctx, id)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

func (m *MockOrderRepository) FindByIDForUpdate(ctx context.Context, id kernel.OrderID) (*order.Order, error) {
	args := m.Called(ctx, id)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

func (m *MockOrderRepository) FindAll(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	o, _ := args.Get(0).([]*order.Order)
	return o, args.Error(1)
}

func (m *MockOrderRepository) FindByCustomer(ctx context.Context, id kernel.CustomerID) ([]*order.Order, error) {
	args := m.Called(ctx, id)
	o, _ := args.Get(0).([]*order.Order)
	return o, args.Error(1)
}

func (m *MockOrderRepository) FindByStatus(ctx context.Context, s order.Status) ([]*order.Order, error) {
	args := m.Called(ctx, s)
	o, _ := args.Get(0).([]*order.Order)
	return o, args.Error(1)
}

func (m *MockOrderRepository) ExistsByID(ctx context.Context, id kernel.OrderID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockOrderRepository) DeleteByID(ctx context.Context, id kernel.OrderID) error {
	return m.Called(ctx, id).Error(0)
}

type MockCustomerRepository struct{ mock.Mock }

func (m *MockCustomerRepository) Save(ctx context.Context, c *customer.Customer) error {
	return m.Called(ctx, c).Error(0)
}

func (m *MockCustomerRepository) FindByID(ctx context.Context, id kernel.CustomerID) (*customer.Customer, error) {
	args := m.Called(ctx, id)
	c, _ := args.Get(0).(*customer.Customer)
	return c, args.Error(1)
}

func (m *MockCustomerRepository) FindByEmail(ctx context.Context, email kernel.Email) (*customer.Customer, error) {
	args := m.Called(ctx, email)
	c, _ := args.Get(0).(*customer.Customer)
	return c, args.Error(1)
}

func (m *MockCustomerRepository) FindAll(ctx context.Context) ([]*customer.Customer, error) {
	args := m.Called(ctx)
	c, _ := args.Get(0).([]*customer.Customer)
	return c, args.Error(1)
}

func (m *MockCustomerRepository) ExistsByID(ctx context.Context, id kernel.CustomerID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockCustomerRepository) DeleteByID(ctx context.Context, id kernel.CustomerID) error {
	return m.Called(ctx, id).Error(0)
}

type MockTx struct{ mock.Mock }

func (m *MockTx) Begin(ctx context.Context) error    { return m.Called(ctx).Error(0) }
func (m *MockTx) Commit(ctx context.Context) error   { return m.Called(ctx).Error(0) }
func (m *MockTx) Rollback(ctx context.Context) error { return m.Called(ctx).Error(0) }

type MockProductUoW struct{ MockTx }

func (m *MockProductUoW) ProductRepository() ports.ProductRepository {
	return m.Called().Get(0).(ports.ProductRepository)
}

type MockProductUoWFactory struct{ mock.Mock }

func (m *MockProductUoWFactory) Create() commands.ProductUoW {
	return m.Called().Get(0).(commands.ProductUoW)
}

type MockOrderUoW struct{ MockTx }

func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	return m.Called().Get(0).(ports.OrderRepository)
}

func (m *MockOrderUoW) ProductRepository() ports.ProductRepository {
	return m.Called().Get(0).(ports.ProductRepository)
}

func (m *MockOrderUoW) CustomerRepository() ports.CustomerRepository {
	return m.Called().Get(0).(ports.CustomerRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	return m.Called().Get(0).(commands.OrderUoW)
}

type MockCustomerUoW struct{ MockTx }

func (m *MockCustomerUoW) CustomerRepository() ports.CustomerRepository {
	return m.Called().Get(0).(ports.CustomerRepository)
}

type MockCustomerUoWFactory struct{ mock.Mock }

func (m *MockCustomerUoWFactory) Create() commands.CustomerUoW {
	return m.Called().Get(0).(commands.CustomerUoW)
}

type MockNotificationSink struct{ mock.Mock }

func (m *MockNotificationSink) NotifyOrderStatusChange(
	ctx context.Context,
	orderID kernel.OrderID,
	email kernel.Email,
	status order.Status,
) {
	m.Called(ctx, orderID, email, status)
}

func (m *MockNotificationSink) NotifyLowStockAlert(ctx context.Context, productName string, stock int) {
	m.Called(ctx, productName, stock)
}

func testMoney(t *testing.T, amount int64, code string) kernel.Money {
	t.Helper()
	m, err := kernel.NewMoney(decimal.NewFromInt(amount), code)
	require.NoError(t, err)
	return m
}

func testProduct(t *testing.T, name string, stock int) *product.Product {
	t.Helper()
	p, err := product.NewProduct(kernel.NewProductID(), name, "", testMoney(t, 10, "COP"), stock, product.Electronics)
	require.NoError(t, err)
	return p
}

func testOrder(t *testing.T, customerID kernel.CustomerID) *order.Order {
	t.Helper()
	o, err := order.NewOrder(kernel.NewOrderID(), customerID)
	require.NoError(t, err)
	return o
}

func testCustomer(t *testing.T) *customer.Customer {
	t.Helper()
	email, err := kernel.NewEmail("ana@arka.co")
	require.NoError(t, err)
	c, err := customer.NewCustomer(kernel.NewCustomerID(), "Ana", email, "Medellín")
	require.NoError(t, err)
	return c
}
