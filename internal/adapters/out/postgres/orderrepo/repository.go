package orderrepo

import (
	"context"
	"errors"

	"github.com/ManuLasker/arka-hexagonal-simple/internal/adapters/out/postgres/pgerr"
	"github.com/ManuLasker/arka-hexagonal-simple/internal/core/domain/model/kernel"
	"github.com/ManuLasker/arka-hexagonal-simple/internal/core/domain/model/order"
	"github.com/ManuLasker/arka-hexagonal-simple/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormOrderRepository implements ports.OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id string, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Save upserts the order row and replaces its lines. Both statements run in one
// transaction, which is a savepoint when the repository is already bound to one.
func (r *GormOrderRepository) Save(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Omit(clause.Associations).
			Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "id"}},
				DoUpdates: clause.AssignmentColumns([]string{"customer_id", "status"}),
			}).
			Create(&dto).Error
		if err != nil {
			return err
		}

		if err = tx.Where("order_id = ?", dto.ID).Delete(&OrderItemDTO{}).Error; err != nil {
			return err
		}

		if len(dto.Items) == 0 {
			return nil
		}
		return tx.Create(&dto.Items).Error
	})
	if err != nil {
		return pgerr.Translate("orderrepo.Save", err)
	}

	r.tracker.TrackAggregate(aggregate.ID().String(), aggregate)
	return nil
}

// FindByID retrieves an order with its lines.
func (r *GormOrderRepository) FindByID(ctx context.Context, id kernel.OrderID) (*order.Order, error) {
	return r.find(r.db.WithContext(ctx), id)
}

// FindByIDForUpdate locks the order row only. Lines are always rewritten
// together with their order, so the order lock guards them as well.
func (r *GormOrderRepository) FindByIDForUpdate(ctx context.Context, id kernel.OrderID) (*order.Order, error) {
	return r.find(r.db.WithContext(ctx).Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate}), id)
}

func (r *GormOrderRepository) FindAll(ctx context.Context) ([]*order.Order, error) {
	return r.findMany(r.db.WithContext(ctx), "orderrepo.FindAll")
}

func (r *GormOrderRepository) FindByCustomer(ctx context.Context, customerID kernel.CustomerID) ([]*order.Order, error) {
	if err := customerID.Validate(); err != nil {
		return nil, err
	}
	return r.findMany(r.db.WithContext(ctx).Where("customer_id = ?", customerID.String()), "orderrepo.FindByCustomer")
}

func (r *GormOrderRepository) FindByStatus(ctx context.Context, status order.Status) ([]*order.Order, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}
	return r.findMany(r.db.WithContext(ctx).Where("status = ?", status.String()), "orderrepo.FindByStatus")
}

func (r *GormOrderRepository) ExistsByID(ctx context.Context, id kernel.OrderID) (bool, error) {
	if err := id.Validate(); err != nil {
		return false, err
	}

	var count int64
	if err := r.db.WithContext(ctx).Model(&OrderDTO{}).Where("id = ?", id.String()).Count(&count).Error; err != nil {
		return false, pgerr.Translate("orderrepo.ExistsByID", err)
	}
	return count > 0, nil
}

// DeleteByID removes the order; its lines go with it through ON DELETE CASCADE.
func (r *GormOrderRepository) DeleteByID(ctx context.Context, id kernel.OrderID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	err := r.db.WithContext(ctx).Delete(&OrderDTO{}, "id = ?", id.String()).Error
	return pgerr.Translate("orderrepo.DeleteByID", err)
}

func (r *GormOrderRepository) find(db *gorm.DB, id kernel.OrderID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := db.Preload("Items", orderedItems).First(&dto, "id = ?", id.String()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, pgerr.Translate("orderrepo.FindByID", err)
	}

	return toDomain(dto)
}

// findMany returns the matching orders, newest first.
func (r *GormOrderRepository) findMany(db *gorm.DB, op string) ([]*order.Order, error) {
	var dtos []OrderDTO
	if err := db.Preload("Items", orderedItems).Order("created_at DESC, id").Find(&dtos).Error; err != nil {
		return nil, pgerr.Translate(op, err)
	}
	return toDomainList(dtos)
}

func orderedItems(db *gorm.DB) *gorm.DB {
	return db.Order("position")
}
