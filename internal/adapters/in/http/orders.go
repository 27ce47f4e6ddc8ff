package http

import (
	"net/http"

	"github.com/ManuLasker/arka-hexagonal-simple/internal/core/application/usecases/commands"
	"github.com/ManuLasker/arka-hexagonal-simple/internal/core/application/usecases/queries"
	"github.com/ManuLasker/arka-hexagonal-simple/internal/core/domain/model/kernel"
	"github.com/ManuLasker/arka-hexagonal-simple/internal/core/domain/model/order"

	"github.com/labstack/echo/v4"
)

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var body NewOrder
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	customerID, err := kernel.ParseCustomerID(body.CustomerID)
	if err != nil {
		return s.writeError(ctx, err)
	}

	cmd, err := commands.NewCreateOrderCommand(customerID)
	if err != nil {
		return s.writeError(ctx, err)
	}

	o, err := s.h.CreateOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.writeError(ctx, err)
	}

	return s.writeOrder(ctx, http.StatusCreated, o)
}

// ListOrders handles GET /api/v1/orders with optional ?customerId= and ?status= filters.
func (s *Server) ListOrders(ctx echo.Context) error {
	status := order.Unknown
	if code := ctx.QueryParam("status"); code != "" {
		parsed, err := order.ParseStatus(code)
		if err != nil {
			return s.writeError(ctx, err)
		}
		status = parsed
	}

	query, err := queries.NewListOrdersQuery(kernel.CustomerID(ctx.QueryParam("customerId")), status)
	if err != nil {
		return s.writeError(ctx, err)
	}

	orders, err := s.h.ListOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, ordersFromResponse(orders))
}

// GetOrder handles GET /api/v1/orders/:id.
func (s *Server) GetOrder(ctx echo.Context) error {
	id, err := kernel.ParseOrderID(ctx.Param("id"))
	if err != nil {
		return s.writeError(ctx, err)
	}

	query, err := queries.NewGetOrderQuery(id)
	if err != nil {
		return s.writeError(ctx, err)
	}

	o, err := s.h.GetOrder.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderFromResponse(o))
}

// DeleteOrder handles DELETE /api/v1/orders/:id.
func (s *Server) DeleteOrder(ctx echo.Context) error {
	id, err := kernel.ParseOrderID(ctx.Param("id"))
	if err != nil {
		return s.writeError(ctx, err)
	}

	cmd, err := commands.NewDeleteOrderCommand(id)
	if err != nil {
		return s.writeError(ctx, err)
	}

	if err := s.h.DeleteOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AddOrderItem handles POST /api/v1/orders/:id/items. The unit price is the
// product's current price.
func (s *Server) AddOrderItem(ctx echo.Context) error {
	id, err := kernel.ParseOrderID(ctx.Param("id"))
	if err != nil {
		return s.writeError(ctx, err)
	}

	var body NewOrderItem
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewAddOrderItemCommand(id, kernel.ProductID(body.ProductID), body.Quantity)
	if err != nil {
		return s.writeError(ctx, err)
	}

	o, err := s.h.AddOrderItem.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.writeError(ctx, err)
	}

	return s.writeOrder(ctx, http.StatusOK, o)
}

// RemoveOrderItem handles DELETE /api/v1/orders/:id/items. The body must
// describe the line exactly as it was added.
func (s *Server) RemoveOrderItem(ctx echo.Context) error {
	id, err := kernel.ParseOrderID(ctx.Param("id"))
	if err != nil {
		return s.writeError(ctx, err)
	}

	var body RemovedOrderItem
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	unitPrice, err := body.UnitPrice.toDomain()
	if err != nil {
		return s.writeError(ctx, err)
	}

	cmd, err := commands.NewRemoveOrderItemCommand(id, kernel.ProductID(body.ProductID), body.Quantity, unitPrice)
	if err != nil {
		return s.writeError(ctx, err)
	}

	o, err := s.h.RemoveOrderItem.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.writeError(ctx, err)
	}

	return s.writeOrder(ctx, http.StatusOK, o)
}

// changeOrderStatus builds the handler for POST /api/v1/orders/:id/{confirm,ship,deliver}.
func (s *Server) changeOrderStatus(action order.Action) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		id, err := kernel.ParseOrderID(ctx.Param("id"))
		if err != nil {
			return s.writeError(ctx, err)
		}

		cmd, err := commands.NewChangeOrderStatusCommand(id, action)
		if err != nil {
			return s.writeError(ctx, err)
		}

		o, err := s.h.ChangeOrderStatus.Handle(ctx.Request().Context(), cmd)
		if err != nil {
			return s.writeError(ctx, err)
		}

		return s.writeOrder(ctx, http.StatusOK, o)
	}
}

func (s *Server) writeOrder(ctx echo.Context, status int, o *order.Order) error {
	body, err := orderFromDomain(o)
	if err != nil {
		return s.writeError(ctx, err)
	}
	return ctx.JSON(status, body)
}
