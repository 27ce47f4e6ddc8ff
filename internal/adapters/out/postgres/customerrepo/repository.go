package customerrepo

import (
	"context"
	"errors"

	"github.com/ManuLasker/arka-hexagonal-simple/internal/adapters/out/postgres/pgerr"
	"github.com/ManuLasker/arka-hexagonal-simple/internal/core/domain/model/customer"
	"github.com/ManuLasker/arka-hexagonal-simple/internal/core/domain/model/kernel"
	"github.com/ManuLasker/arka-hexagonal-simple/internal/pkg/errs"

	"github.com/samber/lo"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormCustomerRepository implements ports.CustomerRepository using GORM.
type GormCustomerRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id string, aggregate any)
}

func NewGormCustomerRepository(db *gorm.DB, tracker aggregateTracker) *GormCustomerRepository {
	return &GormCustomerRepository{
		db:      db,
		tracker: tracker,
	}
}

// Save upserts the customer. A second customer with an address already in use
// fails with an invariant violation from the unique index.
func (r *GormCustomerRepository) Save(ctx context.Context, aggregate *customer.Customer) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			UpdateAll: true,
		}).
		Create(&dto).Error
	if err != nil {
		return pgerr.Translate("customerrepo.Save", err)
	}

	r.tracker.TrackAggregate(aggregate.ID().String(), aggregate)
	return nil
}

func (r *GormCustomerRepository) FindByID(ctx context.Context, id kernel.CustomerID) (*customer.Customer, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto CustomerDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.String()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("customer", id.String())
		}
		return nil, pgerr.Translate("customerrepo.FindByID", err)
	}

	return toDomain(dto)
}

func (r *GormCustomerRepository) FindByEmail(ctx context.Context, email kernel.Email) (*customer.Customer, error) {
	if err := email.Validate(); err != nil {
		return nil, err
	}

	var dto CustomerDTO
	if err := r.db.WithContext(ctx).First(&dto, "LOWER(email) = LOWER(?)", email.String()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("customer", email.String())
		}
		return nil, pgerr.Translate("customerrepo.FindByEmail", err)
	}

	return toDomain(dto)
}

func (r *GormCustomerRepository) FindAll(ctx context.Context) ([]*customer.Customer, error) {
	var dtos []CustomerDTO
	if err := r.db.WithContext(ctx).Order("name, id").Find(&dtos).Error; err != nil {
		return nil, pgerr.Translate("customerrepo.FindAll", err)
	}

	customers := make([]*customer.Customer, 0, len(dtos))
	for _, dto := range dtos {
		c, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		customers = append(customers, c)
	}
	return customers, nil
}

func (r *GormCustomerRepository) ExistsByID(ctx context.Context, id kernel.CustomerID) (bool, error) {
	if err := id.Validate(); err != nil {
		return false, err
	}

	var ids []string
	err := r.db.WithContext(ctx).Model(&CustomerDTO{}).Where("id = ?", id.String()).Limit(1).Pluck("id", &ids).Error
	if err != nil {
		return false, pgerr.Translate("customerrepo.ExistsByID", err)
	}
	return lo.Contains(ids, id.String()), nil
}

func (r *GormCustomerRepository) DeleteByID(ctx context.Context, id kernel.CustomerID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	err := r.db.WithContext(ctx).Delete(&CustomerDTO{}, "id = ?", id.String()).Error
	return pgerr.Translate("customerrepo.DeleteByID", err)
}
