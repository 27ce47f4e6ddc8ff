package http

import (
	"net/http"

	"github.com/ManuLasker/arka-hexagonal-simple/internal/core/application/usecases/commands"
	"github.com/ManuLasker/arka-hexagonal-simple/internal/core/application/usecases/queries"
	"github.com/ManuLasker/arka-hexagonal-simple/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// RegisterCustomer handles POST /api/v1/customers.
func (s *Server) RegisterCustomer(ctx echo.Context) error {
	var body NewCustomer
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	email, err := kernel.NewEmail(body.Email)
	if err != nil {
		return s.writeError(ctx, err)
	}

	cmd, err := commands.NewRegisterCustomerCommand(body.Name, email, body.City)
	if err != nil {
		return s.writeError(ctx, err)
	}

	c, err := s.h.RegisterCustomer.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, customerFromDomain(c))
}

// GetCustomer handles GET /api/v1/customers/:id.
func (s *Server) GetCustomer(ctx echo.Context) error {
	id, err := kernel.ParseCustomerID(ctx.Param("id"))
	if err != nil {
		return s.writeError(ctx, err)
	}

	query, err := queries.NewGetCustomerQuery(id)
	if err != nil {
		return s.writeError(ctx, err)
	}

	return s.getCustomer(ctx, query)
}

// GetCustomerByEmail handles GET /api/v1/customers?email=.
func (s *Server) GetCustomerByEmail(ctx echo.Context) error {
	email, err := kernel.NewEmail(ctx.QueryParam("email"))
	if err != nil {
		return s.writeError(ctx, err)
	}

	query, err := queries.NewGetCustomerByEmailQuery(email)
	if err != nil {
		return s.writeError(ctx, err)
	}

	return s.getCustomer(ctx, query)
}

func (s *Server) getCustomer(ctx echo.Context, query queries.GetCustomerQuery) error {
	c, err := s.h.GetCustomer.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, customerFromResponse(c))
}
