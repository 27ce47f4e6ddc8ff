package notification

import (
	"time"
)

const (
	DefaultExchange = "arka.notifications"

	RoutingKeyOrderStatusChanged = "order.status_changed"
	RoutingKeyLowStock           = "product.low_stock"

	eventVersion = "1.0"
)

// Event is the JSON envelope published for every notification.
type Event[P any] struct {
	Version   string    `json:"version"`
	EventType string    `json:"event_type"`
	Timestamp time.Time `json:"timestamp"`
	Payload   P         `json:"payload"`
}

type OrderStatusChangedPayload struct {
	OrderID       string `json:"order_id"`
	CustomerEmail string `json:"customer_email"`
	NewStatus     string `json:"new_status"`
}

type LowStockPayload struct {
	ProductName  string `json:"product_name"`
	CurrentStock int    `json:"current_stock"`
}

func newEvent[P any](eventType string, at time.Time, payload P) Event[P] {
	return Event[P]{
		Version:   eventVersion,
		EventType: eventType,
		Timestamp: at.UTC(),
		Payload:   payload,
	}
}
