// Package eventbus publishes a change feed of committed mutations.
package eventbus

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill-nats/v2/pkg/nats"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
	nc "github.com/nats-io/nats.go"
)

// ErrNoSubscriber is returned by Subscribe on a bus built without one.
var ErrNoSubscriber = errors.New("event bus has no subscriber")

// SubjectMetadataKey carries the topic on every message, like the subject
// header NATS consumers filter on.
const SubjectMetadataKey = "subject"

// EventBus wraps a watermill publisher and, when available, a subscriber.
type EventBus struct {
	publisher  message.Publisher
	subscriber message.Subscriber
	logger     *slog.Logger
}

// NewInProcess returns a bus backed by a watermill gochannel pubsub.
func NewInProcess(logger *slog.Logger) *EventBus {
	if logger == nil {
		logger = slog.Default()
	}
	pubsub := gochannel.NewGoChannel(gochannel.Config{OutputChannelBuffer: 64}, watermill.NewSlogLogger(logger))
	return &EventBus{publisher: pubsub, subscriber: pubsub, logger: logger}
}

// NewNATS returns a bus that publishes to core NATS subjects at natsURL.
// JetStream is not used; the feed is fire-and-forget.
func NewNATS(natsURL string, logger *slog.Logger) (*EventBus, error) {
	if logger == nil {
		logger = slog.Default()
	}
	watermillLogger := watermill.NewSlogLogger(logger)
	marshaler := &nats.NATSMarshaler{}
	options := []nc.Option{
		nc.RetryOnFailedConnect(true),
		nc.Name("golf-tracker"),
	}

	publisher, err := nats.NewPublisher(
		nats.PublisherConfig{
			URL:         natsURL,
			Marshaler:   marshaler,
			NatsOptions: options,
			JetStream:   nats.JetStreamConfig{Disabled: true},
		},
		watermillLogger,
	)
	if err != nil {
		logger.Error("Failed to create NATS publisher", slog.Any("error", err))
		return nil, fmt.Errorf("failed to create NATS publisher: %w", err)
	}

	subscriber, err := nats.NewSubscriber(
		nats.SubscriberConfig{
			URL:         natsURL,
			Unmarshaler: marshaler,
			NatsOptions: options,
			JetStream:   nats.JetStreamConfig{Disabled: true},
		},
		watermillLogger,
	)
	if err != nil {
		_ = publisher.Close()
		logger.Error("Failed to create NATS subscriber", slog.Any("error", err))
		return nil, fmt.Errorf("failed to create NATS subscriber: %w", err)
	}

	return &EventBus{publisher: publisher, subscriber: subscriber, logger: logger}, nil
}

// Publish marshals payload as JSON and publishes it on topic.
func (eb *EventBus) Publish(ctx context.Context, topic string, payload any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal %s payload: %w", topic, err)
	}

	msg := message.NewMessage(uuid.NewString(), data)
	msg.Metadata.Set(SubjectMetadataKey, topic)
	msg.SetContext(ctx)

	if err := eb.publisher.Publish(topic, msg); err != nil {
		eb.logger.ErrorContext(ctx, "Failed to publish event",
			slog.String("topic", topic),
			slog.Any("error", err),
		)
		return fmt.Errorf("failed to publish %s: %w", topic, err)
	}

	eb.logger.DebugContext(ctx, "Event published",
		slog.String("topic", topic),
		slog.String("message_id", msg.UUID),
	)
	return nil
}

// Subscribe returns the message stream of topic. Messages must be acked.
func (eb *EventBus) Subscribe(ctx context.Context, topic string) (<-chan *message.Message, error) {
	if eb.subscriber == nil {
		return nil, ErrNoSubscriber
	}
	messages, err := eb.subscriber.Subscribe(ctx, topic)
	if err != nil {
		return nil, fmt.Errorf("failed to subscribe to %s: %w", topic, err)
	}
	eb.logger.Info("Subscription started", slog.String("topic", topic))
	return messages, nil
}

// Close shuts the publisher and subscriber down.
func (eb *EventBus) Close() error {
	var errs []error
	if eb.publisher != nil {
		errs = append(errs, eb.publisher.Close())
	}
	if eb.subscriber != nil && any(eb.subscriber) != any(eb.publisher) {
		errs = append(errs, eb.subscriber.Close())
	}
	return errors.Join(errs...)
}
