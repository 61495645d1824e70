package rabbitmq_adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"listings-gateway/internal/contextkeys"
	"listings-gateway/internal/core/domain"
	"listings-gateway/internal/core/port"
)

const publishTimeout = 10 * time.Second

// RabbitMQEnquiryQueueAdapter publishes enquiry.created events to a topic
// exchange for downstream notification consumers.
type RabbitMQEnquiryQueueAdapter struct {
	connection *amqp.Connection
	channel    *amqp.Channel
	exchange   string
}

func NewRabbitMQEnquiryQueueAdapter(url, exchange string) (*RabbitMQEnquiryQueueAdapter, error) {
	if exchange == "" {
		return nil, fmt.Errorf("rabbitmq adapter: exchange name is required")
	}

	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("rabbitmq adapter: failed to dial RabbitMQ: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("rabbitmq adapter: failed to open a channel: %w", err)
	}

	if err := ch.ExchangeDeclare(
		exchange,
		"topic",
		true,  // durable
		false, // auto-delete
		false, // internal
		false, // no-wait
		nil,
	); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("rabbitmq adapter: failed to declare exchange '%s': %w", exchange, err)
	}

	return &RabbitMQEnquiryQueueAdapter{
		connection: conn,
		channel:    ch,
		exchange:   exchange,
	}, nil
}

type enquiryCreatedEvent struct {
	ID              string `json:"id"`
	Kind            string `json:"kind"`
	Name            string `json:"name"`
	Email           string `json:"email"`
	Phone           string `json:"phone,omitempty"`
	Message         string `json:"message,omitempty"`
	PropertyAddress string `json:"propertyAddress,omitempty"`
	PropertyType    string `json:"propertyType,omitempty"`
	ListingID       string `json:"listingID,omitempty"`
	SubmittedAt     string `json:"submittedAt"`
}

// PublishEnquiryCreated publishes one persistent JSON event with routing key
// "enquiry.created.<kind>".
func (a *RabbitMQEnquiryQueueAdapter) PublishEnquiryCreated(ctx context.Context, enquiry domain.Enquiry) error {
	logger := contextkeys.LoggerFromContext(ctx)
	adapterLogger := logger.WithFields(port.Fields{
		"component":  "RabbitMQEnquiryQueueAdapter",
		"enquiry_id": enquiry.ID.String(),
		"kind":       enquiry.Kind,
	})

	if a.channel == nil || a.connection == nil || a.connection.IsClosed() {
		return fmt.Errorf("rabbitmq adapter: not connected or channel/connection is closed")
	}

	event := enquiryCreatedEvent{
		ID:              enquiry.ID.String(),
		Kind:            string(enquiry.Kind),
		Name:            enquiry.Name,
		Email:           enquiry.Email,
		Phone:           enquiry.Phone,
		Message:         enquiry.Message,
		PropertyAddress: enquiry.PropertyAddress,
		PropertyType:    enquiry.PropertyType,
		ListingID:       enquiry.ListingID,
		SubmittedAt:     enquiry.SubmittedAt.UTC().Format(time.RFC3339),
	}
	body, err := json.Marshal(event)
	if err != nil {
		adapterLogger.Error("Failed to marshal enquiry event to JSON", err, nil)
		return fmt.Errorf("rabbitmq adapter: failed to marshal enquiry event: %w", err)
	}

	msg := amqp.Publishing{
		ContentType:  "application/json",
		Body:         body,
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now(),
		Headers:      make(amqp.Table),
	}

	traceID := contextkeys.TraceIDFromContext(ctx)
	if traceID != "" {
		msg.Headers["x-trace-id"] = traceID
	}

	publishCtx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	routingKey := "enquiry.created." + string(enquiry.Kind)
	if err := a.channel.PublishWithContext(
		publishCtx,
		a.exchange,
		routingKey,
		false, // mandatory
		false, // immediate
		msg,
	); err != nil {
		adapterLogger.Error("Failed to publish enquiry event", err, port.Fields{"routing_key": routingKey})
		return fmt.Errorf("rabbitmq adapter: failed to publish enquiry event: %w", err)
	}

	adapterLogger.Info("Published enquiry event", port.Fields{"routing_key": routingKey})
	return nil
}

func (a *RabbitMQEnquiryQueueAdapter) Close() error {
	var firstErr error
	if a.channel != nil {
		if err := a.channel.Close(); err != nil {
			firstErr = err
		}
		a.channel = nil
	}
	if a.connection != nil {
		if err := a.connection.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
		a.connection = nil
	}
	return firstErr
}
