package notification

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/ManuLasker/arka-hexagonal-simple/internal/core/domain/model/kernel"
	"github.com/ManuLasker/arka-hexagonal-simple/internal/core/domain/model/order"
	"github.com/ManuLasker/arka-hexagonal-simple/internal/core/ports"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

var _ ports.NotificationSink = (*RabbitMQSink)(nil)

// Channel is the subset of *amqp.Channel the sink needs.
type Channel interface {
	ExchangeDeclare(name, kind string, durable, autoDelete, internal, noWait bool, args amqp.Table) error
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
}

// RabbitMQSink publishes events to a durable topic exchange.
type RabbitMQSink struct {
	channel  Channel
	exchange string
	logger   *zap.Logger
	now      func() time.Time
	timeout  time.Duration
}

type RabbitMQSinkOption func(*RabbitMQSink)

// WithClock overrides the event timestamp source.
func WithClock(now func() time.Time) RabbitMQSinkOption {
	return func(s *RabbitMQSink) { s.now = now }
}

// WithPublishTimeout bounds each publish call. Zero means no extra bound.
func WithPublishTimeout(timeout time.Duration) RabbitMQSinkOption {
	return func(s *RabbitMQSink) { s.timeout = timeout }
}

// NewRabbitMQSink declares the exchange and returns a sink publishing to it.
// An empty exchange name selects DefaultExchange.
func NewRabbitMQSink(
	channel Channel,
	exchange string,
	logger *zap.Logger,
	opts ...RabbitMQSinkOption,
) (*RabbitMQSink, error) {
	if channel == nil {
		return nil, errors.New("rabbitmq channel is required")
	}
	if exchange == "" {
		exchange = DefaultExchange
	}

	err := channel.ExchangeDeclare(
		exchange, // name
		"topic",  // type
		true,     // durable
		false,    // auto-deleted
		false,    // internal
		false,    // no-wait
		nil,      // arguments
	)
	if err != nil {
		return nil, fmt.Errorf("failed to declare exchange %s: %w", exchange, err)
	}

	s := &RabbitMQSink{
		channel:  channel,
		exchange: exchange,
		logger:   logger.Named("rabbitmq"),
		now:      time.Now,
		timeout:  5 * time.Second,
	}
	for _, opt := range opts {
		opt(s)
	}

	return s, nil
}

func (s *RabbitMQSink) NotifyOrderStatusChange(
	ctx context.Context,
	orderID kernel.OrderID,
	customerEmail kernel.Email,
	newStatus order.Status,
) {
	event := newEvent(RoutingKeyOrderStatusChanged, s.now(), OrderStatusChangedPayload{
		OrderID:       orderID.String(),
		CustomerEmail: customerEmail.String(),
		NewStatus:     newStatus.String(),
	})
	s.publish(ctx, RoutingKeyOrderStatusChanged, event)
}

func (s *RabbitMQSink) NotifyLowStockAlert(ctx context.Context, productName string, currentStock int) {
	event := newEvent(RoutingKeyLowStock, s.now(), LowStockPayload{
		ProductName:  productName,
		CurrentStock: currentStock,
	})
	s.publish(ctx, RoutingKeyLowStock, event)
}

func (s *RabbitMQSink) publish(ctx context.Context, routingKey string, event any) {
	body, err := json.Marshal(event)
	if err != nil {
		s.logger.Error("failed to marshal event", zap.String("routing_key", routingKey), zap.Error(err))
		return
	}

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	err = s.channel.PublishWithContext(
		ctx,
		s.exchange, // exchange
		routingKey, // routing key
		false,      // mandatory
		false,      // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			Body:         body,
			DeliveryMode: amqp.Persistent,
			Timestamp:    s.now(),
		},
	)
	if err != nil {
		s.logger.Error("failed to publish event",
			zap.String("exchange", s.exchange),
			zap.String("routing_key", routingKey),
			zap.Error(err),
		)
		return
	}

	s.logger.Debug("event published",
		zap.String("exchange", s.exchange),
		zap.String("routing_key", routingKey),
	)
}

// Connection owns one AMQP connection and the channel opened on it.
type Connection struct {
	mu      sync.Mutex
	conn    *amqp.Connection
	channel *amqp.Channel
}

// Dial connects to the broker at url and opens a channel.
func Dial(url string) (*Connection, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}

	return &Connection{conn: conn, channel: ch}, nil
}

func (c *Connection) Channel() *amqp.Channel {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.channel
}

func (c *Connection) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	var chErr error
	if c.channel != nil {
		chErr = c.channel.Close()
		c.channel = nil
	}
	if c.conn != nil {
		err := c.conn.Close()
		c.conn = nil
		return errors.Join(chErr, err)
	}
	return chErr
}
