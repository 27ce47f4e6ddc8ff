// Package postgres provides the GORM implementation of the Unit of Work pattern
// and the schema migration for every persisted aggregate.
//
// A unit of work is single use: Begin opens a transaction, repositories obtained
// afterwards are bound to it, and Commit or Rollback closes it. Repositories
// obtained without Begin run each statement on the base connection, which is how
// the query side reads.
//
// Usage:
//
//	uow := NewGormUnitOfWorkFactory(db).Create()
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() { _ = uow.Rollback(ctx) }()
//
//	p, err := uow.ProductRepository().FindByIDForUpdate(ctx, id)
//	if err != nil {
//	    return err
//	}
//	if err = p.ReduceStock(2); err != nil {
//	    return err
//	}
//	if err = uow.ProductRepository().Save(ctx, p); err != nil {
//	    return err
//	}
//	return uow.Commit(ctx)
//
// Concurrency:
//   - Each UnitOfWork instance owns one transaction; do not share it between goroutines
//   - FindByIDForUpdate serializes writers of the same aggregate with a row lock
package postgres

import (
	"context"

	"github.com/ManuLasker/arka-hexagonal-simple/internal/adapters/out/postgres/customerrepo"
	"github.com/ManuLasker/arka-hexagonal-simple/internal/adapters/out/postgres/orderrepo"
	"github.com/ManuLasker/arka-hexagonal-simple/internal/adapters/out/postgres/productrepo"
	"github.com/ManuLasker/arka-hexagonal-simple/internal/core/ports"

	"gorm.io/gorm"
)

// TrackedAggregate is an aggregate saved through a repository of the unit of work.
type TrackedAggregate struct {
	ID        string
	Aggregate any
}

// Migrate creates or updates the tables of all aggregates.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&productrepo.ProductDTO{},
		&customerrepo.CustomerDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.OrderItemDTO{},
	)
}

// GormUnitOfWorkFactory creates UnitOfWork instances sharing one connection pool.
//
// Example:
//
//	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
//	if err != nil {
//	    log.Fatal("failed to connect database")
//	}
//	factory := NewGormUnitOfWorkFactory(db)
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

// Create returns a fresh unit of work with no transaction and nothing tracked.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return f.CreateGorm()
}

// CreateGorm is Create without the interface conversion, for callers that need
// TrackedAggregates.
func (f *GormUnitOfWorkFactory) CreateGorm() *GormUnitOfWork {
	return &GormUnitOfWork{
		db:                f.db,
		trackedAggregates: make([]TrackedAggregate, 0),
	}
}

// GormUnitOfWork coordinates one GORM transaction and records every aggregate
// saved within it.
type GormUnitOfWork struct {
	db                *gorm.DB
	tx                *gorm.DB
	trackedAggregates []TrackedAggregate
}

// Begin starts the transaction. Calling it again while a transaction is open
// is a no-op.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		err := uow.tx.Error
		uow.tx = nil
		return err
	}

	return nil
}

// Commit returns gorm.ErrInvalidTransaction when no transaction is open.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	return err
}

// Rollback returns gorm.ErrInvalidTransaction when no transaction is open, so a
// deferred Rollback after a successful Commit reports that and changes nothing.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	return err
}

func (uow *GormUnitOfWork) ProductRepository() ports.ProductRepository {
	return productrepo.NewGormProductRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) OrderRepository() ports.OrderRepository {
	return orderrepo.NewGormOrderRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) CustomerRepository() ports.CustomerRepository {
	return customerrepo.NewGormCustomerRepository(uow.conn(), uow)
}

// TrackAggregate is called by the repositories after every successful save.
func (uow *GormUnitOfWork) TrackAggregate(id string, aggregate any) {
	uow.trackedAggregates = append(uow.trackedAggregates, TrackedAggregate{
		ID:        id,
		Aggregate: aggregate,
	})
}

// TrackedAggregates returns the saved aggregates in save order. Entries are
// kept after Rollback; they describe what was attempted.
func (uow *GormUnitOfWork) TrackedAggregates() []TrackedAggregate {
	return append([]TrackedAggregate(nil), uow.trackedAggregates...)
}

func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}
