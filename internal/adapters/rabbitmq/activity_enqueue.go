package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"homenest/internal/contextkeys"
	"homenest/internal/contracts"
	"homenest/internal/core/domain"
	"homenest/internal/core/port"

	amqp "github.com/rabbitmq/amqp091-go"
)

// Publisher is the part of rabbitmq_producer.Publisher the adapter needs.
type Publisher interface {
	Publish(ctx context.Context, routingKey string, msg amqp.Publishing) error
}

// ActivityQueueAdapter implements ActivityPublisherPort on top of a RabbitMQ topic exchange.
type ActivityQueueAdapter struct {
	producer       Publisher
	publishTimeout time.Duration
}

func NewActivityQueueAdapter(producer Publisher) (*ActivityQueueAdapter, error) {
	if producer == nil {
		return nil, fmt.Errorf("rabbitmq adapter: producer cannot be nil")
	}
	return &ActivityQueueAdapter{producer: producer, publishTimeout: 10 * time.Second}, nil
}

// PublishActivity routes the event by its type.
func (a *ActivityQueueAdapter) PublishActivity(ctx context.Context, event domain.ActivityEvent) error {
	routingKey := string(event.Type)
	adapterLogger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"component":   "ActivityQueueAdapter",
		"routing_key": routingKey,
		"event_id":    event.ID,
		"property_id": event.PropertyID,
	})

	body, err := json.Marshal(activityMessageFrom(event))
	if err != nil {
		adapterLogger.Error("Failed to marshal activity event", err, nil)
		return fmt.Errorf("rabbitmq adapter: failed to marshal event %s: %w", event.ID, err)
	}
	if err := contracts.Validate(contracts.ActivityPayloadV1, body); err != nil {
		adapterLogger.Error("Activity event violates contract", err, nil)
		return fmt.Errorf("rabbitmq adapter: invalid event %s: %w", event.ID, err)
	}

	msg := amqp.Publishing{
		ContentType:  "application/json",
		Body:         body,
		DeliveryMode: amqp.Persistent,
		Timestamp:    event.OccurredAt,
		MessageId:    event.ID,
		Type:         routingKey,
		Headers:      make(amqp.Table),
	}
	if traceID := contextkeys.TraceIDFromContext(ctx); traceID != "" {
		msg.Headers["x-trace-id"] = traceID
	}

	publishCtx, cancel := context.WithTimeout(ctx, a.publishTimeout)
	defer cancel()

	if err := a.producer.Publish(publishCtx, routingKey, msg); err != nil {
		adapterLogger.Error("Failed to publish activity event", err, nil)
		return fmt.Errorf("rabbitmq adapter: failed to publish event %s: %w", event.ID, err)
	}

	adapterLogger.Info("Successfully published activity event", nil)
	return nil
}

// NoopActivityPublisher is used when the broker is disabled.
type NoopActivityPublisher struct{}

func (NoopActivityPublisher) PublishActivity(ctx context.Context, event domain.ActivityEvent) error {
	contextkeys.LoggerFromContext(ctx).Debug("Activity publishing disabled, event dropped", port.Fields{
		"event_type": string(event.Type),
	})
	return nil
}
