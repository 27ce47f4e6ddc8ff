package commands

import (
	"context"

	"github.com/ManuLasker/arka-hexagonal-simple/internal/core/domain/services"
	"github.com/ManuLasker/arka-hexagonal-simple/internal/core/ports"

	"go.uber.org/zap"
)

// GenerateRestockReportCommandHandler emits a low-stock alert for every product
// below the policy threshold. It writes nothing.
//
// Example:
//
//	handler := NewGenerateRestockReportCommandHandler(uowFactory, sink, logger)
//	alerts, err := handler.Handle(ctx, NewGenerateRestockReportCommand())
//	if err != nil {
//	    return fmt.Errorf("restock report failed: %w", err)
//	}
//	logger.Info("restock report sent", zap.Int("alerts", alerts))
type GenerateRestockReportCommandHandler struct {
	uowFactory ProductUoWFactory
	sink       ports.NotificationSink
	policy     services.LowStockPolicy
	logger     *zap.Logger
}

func NewGenerateRestockReportCommandHandler(
	uowFactory ProductUoWFactory,
	sink ports.NotificationSink,
	logger *zap.Logger,
) GenerateRestockReportCommandHandler {
	return GenerateRestockReportCommandHandler{
		uowFactory: uowFactory,
		sink:       sink,
		policy:     services.NewLowStockPolicy(),
		logger:     logger,
	}
}

// Handle reads the low-stock products in one transaction, then notifies once per
// product after the transaction has ended. It returns the number of alerts sent.
func (h GenerateRestockReportCommandHandler) Handle(ctx context.Context, cmd GenerateRestockReportCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	candidates, err := uow.ProductRepository().FindLowStock(ctx, h.policy.Threshold())
	if err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	lowStock := h.policy.Select(candidates)
	for _, p := range lowStock {
		h.sink.NotifyLowStockAlert(ctx, p.Name(), p.Stock())
	}

	h.logger.Info("restock report generated",
		zap.Int("threshold", h.policy.Threshold()),
		zap.Int("alerts", len(lowStock)),
	)

	return len(lowStock), nil
}
