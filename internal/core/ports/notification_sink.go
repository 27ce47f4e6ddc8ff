package ports

import (
	"context"

	"github.com/ManuLasker/arka-hexagonal-simple/internal/core/domain/model/kernel"
	"github.com/ManuLasker/arka-hexagonal-simple/internal/core/domain/model/order"
)

// NotificationSink receives business events. Delivery is fire-and-forget:
// implementations log their own failures and never report them to the caller.
type NotificationSink interface {
	NotifyOrderStatusChange(ctx context.Context, orderID kernel.OrderID, customerEmail kernel.Email, newStatus order.Status)
	NotifyLowStockAlert(ctx context.Context, productName string, currentStock int)
}
