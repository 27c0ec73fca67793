package external

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"floodwatch.app/internal/ports"
	"floodwatch.app/pkg/errors"
	kafkago "github.com/segmentio/kafka-go"
)

const alertCreatedEventType = "alert.created"

// MessageWriter is the subset of kafka-go's Writer used for publishing
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafkago.Message) error
	Close() error
}

// KafkaAlertPublisher writes AlertCreated events to a Kafka topic keyed by location
type KafkaAlertPublisher struct {
	writer MessageWriter
	topic  string
}

// NewKafkaAlertPublisher creates a Kafka producer for the configured alert topic
func NewKafkaAlertPublisher(cfg ports.AlertsConfig) *KafkaAlertPublisher {
	w := &kafkago.Writer{
		Addr:                   kafkago.TCP(cfg.KafkaBrokers...),
		Topic:                  cfg.KafkaTopic,
		Balancer:               &kafkago.Hash{},
		RequiredAcks:           kafkago.RequireAll,
		AllowAutoTopicCreation: true,
		WriteTimeout:           10 * time.Second,
	}
	return NewKafkaAlertPublisherWithWriter(w, cfg.KafkaTopic)
}

// NewKafkaAlertPublisherWithWriter wraps an existing writer
func NewKafkaAlertPublisherWithWriter(writer MessageWriter, topic string) *KafkaAlertPublisher {
	return &KafkaAlertPublisher{writer: writer, topic: topic}
}

// PublishAlertCreated serializes and writes one event
func (p *KafkaAlertPublisher) PublishAlertCreated(ctx context.Context, event ports.AlertEvent) error {
	msg, err := alertEventToMessage(event)
	if err != nil {
		return err
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return errors.NewPublishError("failed to publish alert event to "+p.topic, err)
	}
	return nil
}

func (p *KafkaAlertPublisher) Close() error {
	return p.writer.Close()
}

func alertEventToMessage(event ports.AlertEvent) (kafkago.Message, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return kafkago.Message{}, errors.NewPublishError("failed to serialize alert event", err)
	}
	return kafkago.Message{
		Key:   []byte(strconv.FormatUint(uint64(event.LocationID), 10)),
		Value: data,
		Headers: []kafkago.Header{
			{Key: "event_type", Value: []byte(alertCreatedEventType)},
			{Key: "level", Value: []byte(event.Level)},
			{Key: "starts_at", Value: []byte(event.StartsAt.UTC().Format(time.RFC3339))},
		},
	}, nil
}

// NoopAlertPublisher discards events when no broker is configured
type NoopAlertPublisher struct{}

func NewNoopAlertPublisher() *NoopAlertPublisher {
	return &NoopAlertPublisher{}
}

func (NoopAlertPublisher) PublishAlertCreated(context.Context, ports.AlertEvent) error { return nil }

func (NoopAlertPublisher) Close() error { return nil }

// NewAlertPublisher returns a Kafka publisher when brokers are configured, otherwise a no-op
func NewAlertPublisher(cfg ports.AlertsConfig) ports.AlertPublisher {
	if len(cfg.KafkaBrokers) == 0 {
		return NewNoopAlertPublisher()
	}
	return NewKafkaAlertPublisher(cfg)
}
