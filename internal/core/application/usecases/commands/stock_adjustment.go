package commands

import (
	"context"

	"github.com/ManuLasker/arka-hexagonal-simple/internal/core/domain/model/kernel"
	"github.com/ManuLasker/arka-hexagonal-simple/internal/core/domain/model/product"
)

// adjustStock runs one lock-mutate-save cycle on a product. A failing mutate
// leaves the stored product untouched because nothing is saved.
func adjustStock(
	ctx context.Context,
	uowFactory ProductUoWFactory,
	productID kernel.ProductID,
	mutate func(*product.Product) error,
) (*product.Product, error) {
	uow := uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.ProductRepository()
	p, err := repo.FindByIDForUpdate(ctx, productID)
	if err != nil {
		return nil, err
	}

	if err = mutate(p); err != nil {
		return nil, err
	}

	if err = repo.Save(ctx, p); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return p, nil
}
