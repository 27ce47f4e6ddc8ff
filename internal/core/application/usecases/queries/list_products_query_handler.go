package queries

import (
	"context"

	"gorm.io/gorm"
)

// ListProductsQueryHandler lists products ordered by name.
type ListProductsQueryHandler struct {
	db *gorm.DB
}

func NewListProductsQueryHandler(db *gorm.DB) ListProductsQueryHandler {
	return ListProductsQueryHandler{db: db}
}

func (h ListProductsQueryHandler) Handle(ctx context.Context, query ListProductsQuery) ([]ProductResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	stmt := selectProducts + ` ORDER BY name, id`
	var args []any
	if category, ok := query.Category(); ok {
		stmt = selectProducts + ` WHERE category = ? ORDER BY name, id`
		args = append(args, category.String())
	}

	rows, err := h.db.WithContext(ctx).Raw(stmt, args...).Rows()
	if err != nil {
		return nil, err
	}

	return scanProducts(rows)
}
