package queries

import (
	"database/sql"

	"github.com/ManuLasker/arka-hexagonal-simple/internal/core/domain/model/kernel"
	"github.com/ManuLasker/arka-hexagonal-simple/internal/core/domain/model/product"

	"github.com/shopspring/decimal"
)

const selectProducts = `
	SELECT
		id,
		name,
		description,
		price_amount,
		price_currency,
		stock,
		category
	FROM products
`

// scanProducts reads every row produced by a selectProducts statement.
func scanProducts(rows *sql.Rows) ([]ProductResponse, error) {
	defer rows.Close()

	products := make([]ProductResponse, 0)
	for rows.Next() {
		var (
			resp         ProductResponse
			id           string
			amount       decimal.Decimal
			currencyCode string
			categoryCode string
		)

		err := rows.Scan(
			&id,
			&resp.Name,
			&resp.Description,
			&amount,
			&currencyCode,
			&resp.Stock,
			&categoryCode,
		)
		if err != nil {
			return nil, err
		}

		resp.ID = kernel.ProductID(id)

		price, priceErr := kernel.NewMoney(amount, currencyCode)
		if priceErr != nil {
			return nil, priceErr
		}
		resp.Price = price

		category, catErr := product.ParseCategory(categoryCode)
		if catErr != nil {
			return nil, catErr
		}
		resp.Category = category

		products = append(products, resp)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return products, nil
}
