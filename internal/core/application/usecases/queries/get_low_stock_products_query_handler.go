package queries

import (
	"context"

	"github.com/ManuLasker/arka-hexagonal-simple/internal/core/domain/services"

	"gorm.io/gorm"
)

// GetLowStockProductsQueryHandler lists products whose stock is strictly below
// the low-stock policy threshold, lowest stock first.
type GetLowStockProductsQueryHandler struct {
	db     *gorm.DB
	policy services.LowStockPolicy
}

func NewGetLowStockProductsQueryHandler(db *gorm.DB) GetLowStockProductsQueryHandler {
	return GetLowStockProductsQueryHandler{
		db:     db,
		policy: services.NewLowStockPolicy(),
	}
}

func (h GetLowStockProductsQueryHandler) Handle(
	ctx context.Context,
	query GetLowStockProductsQuery,
) ([]ProductResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(selectProducts+`
		WHERE stock < ?
		ORDER BY stock, name, id
	`, h.policy.Threshold()).Rows()
	if err != nil {
		return nil, err
	}

	return scanProducts(rows)
}
