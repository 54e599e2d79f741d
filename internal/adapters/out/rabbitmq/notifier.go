// Package rabbitmq provides the RabbitMQ-backed Notification Gateway.
// Notifications are published to a fanout exchange; delivery to buyers and
// read-state tracking belong to the downstream notification service.
package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"tracking/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/rabbitmq/amqp091-go"
)

const (
	// notificationsExchange is the fanout exchange notification consumers bind to.
	notificationsExchange = "shipping_notifications"

	publishTimeout = 10 * time.Second
)

// notificationMessage is the wire payload of a shipping progress notification.
type notificationMessage struct {
	MessageID         string    `json:"message_id"`
	BuyerID           int64     `json:"buyer_id"`
	TrackedOrderID    int64     `json:"tracked_order_id"`
	Status            string    `json:"status"`
	EstimatedDelivery time.Time `json:"estimated_delivery"`
	SentAt            time.Time `json:"sent_at"`
}

// NotificationPublisher implements ports.NotificationGateway over RabbitMQ.
// It keeps a single channel and reconnects lazily when the broker connection
// was lost between publishes.
type NotificationPublisher struct {
	mu      sync.Mutex
	conn    *amqp091.Connection
	channel *amqp091.Channel
	url     string
	logger  *slog.Logger
}

// NewNotificationPublisher connects to the broker and declares the fanout
// exchange. The connection is verified eagerly so a misconfigured broker URL
// fails at startup, not on the first notification.
func NewNotificationPublisher(url string, logger *slog.Logger) (*NotificationPublisher, error) {
	p := &NotificationPublisher{
		url:    url,
		logger: logger.With("component", "notification_publisher"),
	}

	if err := p.connect(); err != nil {
		return nil, fmt.Errorf("failed to establish initial connection: %w", err)
	}

	return p, nil
}

func (p *NotificationPublisher) connect() error {
	conn, err := amqp091.Dial(p.url)
	if err != nil {
		return fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return fmt.Errorf("failed to open channel: %w", err)
	}

	err = channel.ExchangeDeclare(
		notificationsExchange,
		"fanout",
		true,  // durable
		false, // auto-deleted
		false, // internal
		false, // no-wait
		nil,
	)
	if err != nil {
		channel.Close()
		conn.Close()
		return fmt.Errorf("failed to declare %s exchange: %w", notificationsExchange, err)
	}

	p.conn = conn
	p.channel = channel
	return nil
}

// SendShippingProgressNotification publishes one notification request to the
// fanout exchange. Each message carries a fresh uuid so downstream consumers
// can deduplicate redeliveries.
func (p *NotificationPublisher) SendShippingProgressNotification(
	ctx context.Context,
	buyerID kernel.ID,
	trackedOrderID kernel.ID,
	statusText string,
	estimatedDelivery time.Time,
) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.conn == nil || p.conn.IsClosed() {
		if err := p.connect(); err != nil {
			return fmt.Errorf("failed to reconnect: %w", err)
		}
		p.logger.InfoContext(ctx, "Reconnected to RabbitMQ")
	}

	message := notificationMessage{
		MessageID:         uuid.NewString(),
		BuyerID:           buyerID.Int64(),
		TrackedOrderID:    trackedOrderID.Int64(),
		Status:            statusText,
		EstimatedDelivery: estimatedDelivery,
		SentAt:            time.Now(),
	}

	body, err := json.Marshal(message)
	if err != nil {
		return fmt.Errorf("failed to marshal notification: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	err = p.channel.PublishWithContext(
		ctx,
		notificationsExchange,
		"",    // routing key (ignored for fanout)
		false, // mandatory
		false, // immediate
		amqp091.Publishing{
			ContentType:  "application/json",
			Body:         body,
			DeliveryMode: amqp091.Persistent,
			MessageId:    message.MessageID,
			Timestamp:    message.SentAt,
		},
	)
	if err != nil {
		return fmt.Errorf("failed to publish notification: %w", err)
	}

	p.logger.DebugContext(ctx, "Published shipping notification",
		"message_id", message.MessageID,
		"tracked_order_id", message.TrackedOrderID,
		"status", message.Status)
	return nil
}

// Close releases the channel and the broker connection.
func (p *NotificationPublisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.channel != nil {
		p.channel.Close()
	}
	if p.conn != nil {
		return p.conn.Close()
	}
	return nil
}
