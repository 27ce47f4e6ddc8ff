package notification

import (
	"context"

	"github.com/ManuLasker/arka-hexagonal-simple/internal/core/domain/model/kernel"
	"github.com/ManuLasker/arka-hexagonal-simple/internal/core/domain/model/order"
	"github.com/ManuLasker/arka-hexagonal-simple/internal/core/ports"

	"github.com/samber/lo"
)

var _ ports.NotificationSink = FanOut{}

// FanOut forwards every event to each sink in order. Nil sinks are dropped.
type FanOut struct {
	sinks []ports.NotificationSink
}

func NewFanOut(sinks ...ports.NotificationSink) FanOut {
	return FanOut{
		sinks: lo.Filter(sinks, func(s ports.NotificationSink, _ int) bool { return s != nil }),
	}
}

func (f FanOut) Len() int {
	return len(f.sinks)
}

func (f FanOut) NotifyOrderStatusChange(
	ctx context.Context,
	orderID kernel.OrderID,
	customerEmail kernel.Email,
	newStatus order.Status,
) {
	for _, s := range f.sinks {
		s.NotifyOrderStatusChange(ctx, orderID, customerEmail, newStatus)
	}
}

func (f FanOut) NotifyLowStockAlert(ctx context.Context, productName string, currentStock int) {
	for _, s := range f.sinks {
		s.NotifyLowStockAlert(ctx, productName, currentStock)
	}
}
