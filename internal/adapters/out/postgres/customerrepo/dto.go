// Package customerrepo persists customers with GORM.
package customerrepo

import (
	"github.com/ManuLasker/arka-hexagonal-simple/internal/core/domain/model/customer"
	"github.com/ManuLasker/arka-hexagonal-simple/internal/core/domain/model/kernel"
)

// CustomerDTO is the row layout of the customers table.
type CustomerDTO struct {
	ID    string `gorm:"type:varchar(64);primaryKey"`
	Name  string `gorm:"type:varchar(255);not null"`
	Email string `gorm:"type:varchar(320);not null;uniqueIndex:idx_customers_email"`
	City  string `gorm:"type:varchar(255);not null"`
}

func (CustomerDTO) TableName() string {
	return "customers"
}

func fromDomain(c *customer.Customer) CustomerDTO {
	return CustomerDTO{
		ID:    c.ID().String(),
		Name:  c.Name(),
		Email: c.Email().String(),
		City:  c.City(),
	}
}

func toDomain(dto CustomerDTO) (*customer.Customer, error) {
	email, err := kernel.NewEmail(dto.Email)
	if err != nil {
		return nil, err
	}
	return customer.RestoreCustomer(kernel.CustomerID(dto.ID), dto.Name, email, dto.City)
}
