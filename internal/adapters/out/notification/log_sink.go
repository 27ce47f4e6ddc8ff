// Package notification delivers business events out of the service.
// Every sink is fire-and-forget: failures are logged, never returned.
package notification

import (
	"context"

	"github.com/ManuLasker/arka-hexagonal-simple/internal/core/domain/model/kernel"
	"github.com/ManuLasker/arka-hexagonal-simple/internal/core/domain/model/order"
	"github.com/ManuLasker/arka-hexagonal-simple/internal/core/ports"

	"go.uber.org/zap"
)

var _ ports.NotificationSink = (*LogSink)(nil)

// LogSink writes each event as a structured log line.
type LogSink struct {
	logger *zap.Logger
}

func NewLogSink(logger *zap.Logger) *LogSink {
	return &LogSink{logger: logger.Named("notification")}
}

func (s *LogSink) NotifyOrderStatusChange(
	_ context.Context,
	orderID kernel.OrderID,
	customerEmail kernel.Email,
	newStatus order.Status,
) {
	s.logger.Info("Order Status Change",
		zap.String("order_id", orderID.String()),
		zap.String("customer_email", customerEmail.String()),
		zap.String("new_status", newStatus.String()),
	)
}

func (s *LogSink) NotifyLowStockAlert(_ context.Context, productName string, currentStock int) {
	s.logger.Warn("Low Stock Alert",
		zap.String("product_name", productName),
		zap.Int("current_stock", currentStock),
	)
}
