package http

import (
	"errors"
	"net/http"

	"github.com/ManuLasker/arka-hexagonal-simple/internal/core/application/usecases/commands"
	"github.com/ManuLasker/arka-hexagonal-simple/internal/core/application/usecases/queries"
	"github.com/ManuLasker/arka-hexagonal-simple/internal/core/domain/model/kernel"
	"github.com/ManuLasker/arka-hexagonal-simple/internal/core/domain/model/product"
	"github.com/ManuLasker/arka-hexagonal-simple/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// RegisterProduct handles POST /api/v1/products.
func (s *Server) RegisterProduct(ctx echo.Context) error {
	var body NewProduct
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	price, priceErr := body.Price.toDomain()
	category, categoryErr := product.ParseCategory(body.Category)
	if err := errors.Join(priceErr, categoryErr); err != nil {
		return s.writeError(ctx, err)
	}

	cmd, err := commands.NewRegisterProductCommand(body.Name, body.Description, price, body.Stock, category)
	if err != nil {
		return s.writeError(ctx, err)
	}

	p, err := s.h.RegisterProduct.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, productFromDomain(p))
}

// ListProducts handles GET /api/v1/products with an optional ?category= filter.
func (s *Server) ListProducts(ctx echo.Context) error {
	query := queries.NewListProductsQuery()
	if code := ctx.QueryParam("category"); code != "" {
		category, err := product.ParseCategory(code)
		if err != nil {
			return s.writeError(ctx, err)
		}
		if query, err = queries.NewListProductsByCategoryQuery(category); err != nil {
			return s.writeError(ctx, err)
		}
	}

	products, err := s.h.ListProducts.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, productsFromResponse(products))
}

// GetLowStockProducts handles GET /api/v1/products/low-stock.
func (s *Server) GetLowStockProducts(ctx echo.Context) error {
	products, err := s.h.GetLowStockProducts.Handle(ctx.Request().Context(), queries.NewGetLowStockProductsQuery())
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, productsFromResponse(products))
}

// GetProduct handles GET /api/v1/products/:id.
func (s *Server) GetProduct(ctx echo.Context) error {
	id, err := kernel.ParseProductID(ctx.Param("id"))
	if err != nil {
		return s.writeError(ctx, err)
	}

	query, err := queries.NewGetProductQuery(id)
	if err != nil {
		return s.writeError(ctx, err)
	}

	p, err := s.h.GetProduct.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, productFromResponse(p))
}

// DeleteProduct handles DELETE /api/v1/products/:id. Deleting an unknown id succeeds.
func (s *Server) DeleteProduct(ctx echo.Context) error {
	id, err := kernel.ParseProductID(ctx.Param("id"))
	if err != nil {
		return s.writeError(ctx, err)
	}

	cmd, err := commands.NewDeleteProductCommand(id)
	if err != nil {
		return s.writeError(ctx, err)
	}

	if err := s.h.DeleteProduct.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// UpdateStock handles PUT /api/v1/products/:id/stock.
func (s *Server) UpdateStock(ctx echo.Context) error {
	id, err := kernel.ParseProductID(ctx.Param("id"))
	if err != nil {
		return s.writeError(ctx, err)
	}

	var body UpdateStock
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewUpdateStockCommand(id, body.Stock)
	if err != nil {
		return s.writeError(ctx, err)
	}

	p, err := s.h.UpdateStock.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, productFromDomain(p))
}

// ReduceStock handles POST /api/v1/products/:id/stock/reduce.
func (s *Server) ReduceStock(ctx echo.Context) error {
	id, quantity, err := stockRequest(ctx)
	if err != nil {
		return s.writeError(ctx, err)
	}

	cmd, err := commands.NewReduceStockCommand(id, quantity)
	if err != nil {
		return s.writeError(ctx, err)
	}

	p, err := s.h.ReduceStock.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, productFromDomain(p))
}

// IncreaseStock handles POST /api/v1/products/:id/stock/increase.
func (s *Server) IncreaseStock(ctx echo.Context) error {
	id, quantity, err := stockRequest(ctx)
	if err != nil {
		return s.writeError(ctx, err)
	}

	cmd, err := commands.NewIncreaseStockCommand(id, quantity)
	if err != nil {
		return s.writeError(ctx, err)
	}

	p, err := s.h.IncreaseStock.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, productFromDomain(p))
}

// GenerateRestockReport handles POST /api/v1/reports/restock.
func (s *Server) GenerateRestockReport(ctx echo.Context) error {
	alerts, err := s.h.RestockReport.Handle(ctx.Request().Context(), commands.NewGenerateRestockReportCommand())
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, RestockReport{Alerts: alerts})
}

func stockRequest(ctx echo.Context) (kernel.ProductID, int, error) {
	id, err := kernel.ParseProductID(ctx.Param("id"))
	if err != nil {
		return "", 0, err
	}

	var body StockQuantity
	if err := ctx.Bind(&body); err != nil {
		return "", 0, errs.NewValueIsInvalidErrorWithCause("request body", err)
	}

	return id, body.Quantity, nil
}
