package queries

import (
	"context"

	"github.com/ManuLasker/arka-hexagonal-simple/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetProductQueryHandler reads one product row.
type GetProductQueryHandler struct {
	db *gorm.DB
}

func NewGetProductQueryHandler(db *gorm.DB) GetProductQueryHandler {
	return GetProductQueryHandler{db: db}
}

// Handle returns an ObjectNotFoundError when no product has the identifier.
func (h GetProductQueryHandler) Handle(ctx context.Context, query GetProductQuery) (ProductResponse, error) {
	if err := query.Validate(); err != nil {
		return ProductResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(selectProducts+`
		WHERE id = ?
	`, query.ProductID().String()).Rows()
	if err != nil {
		return ProductResponse{}, err
	}

	products, err := scanProducts(rows)
	if err != nil {
		return ProductResponse{}, err
	}
	if len(products) == 0 {
		return ProductResponse{}, errs.NewObjectNotFoundError("product", query.ProductID().String())
	}

	return products[0], nil
}
