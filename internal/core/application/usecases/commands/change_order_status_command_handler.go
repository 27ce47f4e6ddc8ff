package commands

import (
	"context"
	"errors"

	"github.com/ManuLasker/arka-hexagonal-simple/internal/core/domain/model/kernel"
	"github.com/ManuLasker/arka-hexagonal-simple/internal/core/domain/model/order"
	"github.com/ManuLasker/arka-hexagonal-simple/internal/core/ports"
	"github.com/ManuLasker/arka-hexagonal-simple/internal/pkg/errs"

	"go.uber.org/zap"
)

// ChangeOrderStatusCommandHandler applies a lifecycle action and, once the change
// is committed, notifies the customer.
//
// Example:
//
//	handler := NewChangeOrderStatusCommandHandler(uowFactory, sink, logger)
//	cmd, _ := NewChangeOrderStatusCommand(orderID, order.Ship)
//	o, err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, errs.ErrObjectNotFound):
//	    // unknown order
//	case errors.Is(err, errs.ErrInvalidTransition):
//	    // order is not confirmed
//	}
type ChangeOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
	sink       ports.NotificationSink
	logger     *zap.Logger
}

func NewChangeOrderStatusCommandHandler(
	uowFactory OrderUoWFactory,
	sink ports.NotificationSink,
	logger *zap.Logger,
) ChangeOrderStatusCommandHandler {
	return ChangeOrderStatusCommandHandler{
		uowFactory: uowFactory,
		sink:       sink,
		logger:     logger,
	}
}

// Handle locks the order, applies the action, saves and commits. The customer's
// e-mail is read in the same transaction; if the customer is gone the status
// still changes and only the notification is skipped.
func (h ChangeOrderStatusCommandHandler) Handle(ctx context.Context, cmd ChangeOrderStatusCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.FindByIDForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if err = o.Apply(cmd.Action()); err != nil {
		return nil, err
	}

	if err = orderRepo.Save(ctx, o); err != nil {
		return nil, err
	}

	var email kernel.Email
	c, err := uow.CustomerRepository().FindByID(ctx, o.CustomerID())
	switch {
	case err == nil:
		email = c.Email()
	case errors.Is(err, errs.ErrObjectNotFound):
		h.logger.Warn("customer not found, status change will not be notified",
			zap.String("order_id", o.ID().String()),
			zap.String("customer_id", o.CustomerID().String()),
		)
	default:
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.logger.Info("order status changed",
		zap.String("order_id", o.ID().String()),
		zap.String("action", cmd.Action().String()),
		zap.String("status", o.Status().String()),
	)

	if email.Validate() == nil {
		h.sink.NotifyOrderStatusChange(ctx, o.ID(), email, o.Status())
	}

	return o, nil
}
