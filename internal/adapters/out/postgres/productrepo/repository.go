package productrepo

import (
	"context"
	"errors"

	"github.com/ManuLasker/arka-hexagonal-simple/internal/adapters/out/postgres/pgerr"
	"github.com/ManuLasker/arka-hexagonal-simple/internal/core/domain/model/kernel"
	"github.com/ManuLasker/arka-hexagonal-simple/internal/core/domain/model/product"
	"github.com/ManuLasker/arka-hexagonal-simple/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormProductRepository implements ports.ProductRepository using GORM.
type GormProductRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id string, aggregate any)
}

func NewGormProductRepository(db *gorm.DB, tracker aggregateTracker) *GormProductRepository {
	return &GormProductRepository{
		db:      db,
		tracker: tracker,
	}
}

// Save upserts the product row keyed by id.
func (r *GormProductRepository) Save(ctx context.Context, aggregate *product.Product) error {
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
		return pgerr.Translate("productrepo.Save", err)
	}

	r.tracker.TrackAggregate(aggregate.ID().String(), aggregate)
	return nil
}

func (r *GormProductRepository) FindByID(ctx context.Context, id kernel.ProductID) (*product.Product, error) {
	return r.find(r.db.WithContext(ctx), id)
}

// FindByIDForUpdate issues SELECT ... FOR UPDATE. Outside a transaction the
// lock is released as soon as the statement completes.
func (r *GormProductRepository) FindByIDForUpdate(ctx context.Context, id kernel.ProductID) (*product.Product, error) {
	return r.find(r.db.WithContext(ctx).Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate}), id)
}

func (r *GormProductRepository) FindAll(ctx context.Context) ([]*product.Product, error) {
	var dtos []ProductDTO
	if err := r.db.WithContext(ctx).Order("name, id").Find(&dtos).Error; err != nil {
		return nil, pgerr.Translate("productrepo.FindAll", err)
	}
	return toDomainList(dtos)
}

func (r *GormProductRepository) FindByCategory(ctx context.Context, category product.Category) ([]*product.Product, error) {
	if err := category.Validate(); err != nil {
		return nil, err
	}

	var dtos []ProductDTO
	err := r.db.WithContext(ctx).
		Where("category = ?", category.String()).
		Order("name, id").
		Find(&dtos).Error
	if err != nil {
		return nil, pgerr.Translate("productrepo.FindByCategory", err)
	}
	return toDomainList(dtos)
}

func (r *GormProductRepository) FindLowStock(ctx context.Context, threshold int) ([]*product.Product, error) {
	var dtos []ProductDTO
	err := r.db.WithContext(ctx).
		Where("stock < ?", threshold).
		Order("stock, name, id").
		Find(&dtos).Error
	if err != nil {
		return nil, pgerr.Translate("productrepo.FindLowStock", err)
	}
	return toDomainList(dtos)
}

func (r *GormProductRepository) ExistsByID(ctx context.Context, id kernel.ProductID) (bool, error) {
	if err := id.Validate(); err != nil {
		return false, err
	}

	var count int64
	err := r.db.WithContext(ctx).Model(&ProductDTO{}).Where("id = ?", id.String()).Count(&count).Error
	if err != nil {
		return false, pgerr.Translate("productrepo.ExistsByID", err)
	}
	return count > 0, nil
}

func (r *GormProductRepository) DeleteByID(ctx context.Context, id kernel.ProductID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	err := r.db.WithContext(ctx).Delete(&ProductDTO{}, "id = ?", id.String()).Error
	return pgerr.Translate("productrepo.DeleteByID", err)
}

func (r *GormProductRepository) find(db *gorm.DB, id kernel.ProductID) (*product.Product, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ProductDTO
	if err := db.First(&dto, "id = ?", id.String()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("product", id.String())
		}
		return nil, pgerr.Translate("productrepo.FindByID", err)
	}

	return toDomain(dto)
}
