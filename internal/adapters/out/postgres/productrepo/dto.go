// Package productrepo persists product aggregates with GORM. Prices are stored
// as an exact numeric amount plus an ISO-4217 code column.
package productrepo

import (
	"github.com/ManuLasker/arka-hexagonal-simple/internal/core/domain/model/kernel"
	"github.com/ManuLasker/arka-hexagonal-simple/internal/core/domain/model/product"

	"github.com/shopspring/decimal"
)

// ProductDTO is the row layout of the products table. The stock check
// constraint backs up the domain rule that stock never goes negative.
type ProductDTO struct {
	ID            string          `gorm:"type:varchar(64);primaryKey"`
	Name          string          `gorm:"type:varchar(255);not null;index"`
	Description   string          `gorm:"type:text;not null;default:''"`
	PriceAmount   decimal.Decimal `gorm:"type:numeric(19,4);not null"`
	PriceCurrency string          `gorm:"type:char(3);not null"`
	Stock         int             `gorm:"type:int;not null;check:chk_products_stock,stock >= 0"`
	Category      string          `gorm:"type:varchar(32);not null;index"`
}

// TableName overrides GORM's default "product_dtos".
func (ProductDTO) TableName() string {
	return "products"
}

func fromDomain(p *product.Product) ProductDTO {
	return ProductDTO{
		ID:            p.ID().String(),
		Name:          p.Name(),
		Description:   p.Description(),
		PriceAmount:   p.Price().Amount(),
		PriceCurrency: p.Price().Currency().String(),
		Stock:         p.Stock(),
		Category:      p.Category().String(),
	}
}

// toDomain rebuilds the aggregate through RestoreProduct, so a row that breaks
// a domain rule surfaces as a validation error instead of a corrupt product.
func toDomain(dto ProductDTO) (*product.Product, error) {
	price, err := kernel.NewMoney(dto.PriceAmount, dto.PriceCurrency)
	if err != nil {
		return nil, err
	}

	category, err := product.ParseCategory(dto.Category)
	if err != nil {
		return nil, err
	}

	return product.RestoreProduct(
		kernel.ProductID(dto.ID),
		dto.Name,
		dto.Description,
		price,
		dto.Stock,
		category,
	)
}

func toDomainList(dtos []ProductDTO) ([]*product.Product, error) {
	products := make([]*product.Product, 0, len(dtos))
	for _, dto := range dtos {
		p, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, nil
}
