package queries

import (
	"context"

	"github.com/ManuLasker/arka-hexagonal-simple/internal/core/domain/model/kernel"
	"github.com/ManuLasker/arka-hexagonal-simple/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetCustomerQueryHandler reads one customer row.
type GetCustomerQueryHandler struct {
	db *gorm.DB
}

func NewGetCustomerQueryHandler(db *gorm.DB) GetCustomerQueryHandler {
	return GetCustomerQueryHandler{db: db}
}

// Handle returns an ObjectNotFoundError naming the identifier or address used.
func (h GetCustomerQueryHandler) Handle(ctx context.Context, query GetCustomerQuery) (CustomerResponse, error) {
	if err := query.Validate(); err != nil {
		return CustomerResponse{}, err
	}

	where, key := "id = ?", query.CustomerID().String()
	if query.ByEmail() {
		where, key = "LOWER(email) = LOWER(?)", query.Email().String()
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			email,
			city
		FROM customers
		WHERE `+where, key).Rows()
	if err != nil {
		return CustomerResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return CustomerResponse{}, err
		}
		return CustomerResponse{}, errs.NewObjectNotFoundError("customer", key)
	}

	var (
		resp    CustomerResponse
		id      string
		address string
	)
	if err = rows.Scan(&id, &resp.Name, &address, &resp.City); err != nil {
		return CustomerResponse{}, err
	}

	email, err := kernel.NewEmail(address)
	if err != nil {
		return CustomerResponse{}, err
	}
	resp.ID = kernel.CustomerID(id)
	resp.Email = email

	return resp, nil
}
