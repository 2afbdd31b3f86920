package kafka

import (
	"context"
	"encoding/json"
	"fmt"

	kafkago "github.com/segmentio/kafka-go"

	"github.com/hszk-dev/catalog/internal/domain/model"
	"github.com/hszk-dev/catalog/internal/domain/repository"
	"github.com/hszk-dev/catalog/internal/infrastructure/metrics"
)

// messageWriter abstracts kafkago.Writer for testability.
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafkago.Message) error
	Close() error
}

// Producer publishes integration events to a Kafka topic.
type Producer struct {
	writer messageWriter
}

var _ repository.EventDispatcher = (*Producer)(nil)

func NewProducer(brokers []string, topic string) *Producer {
	return &Producer{
		writer: &kafkago.Writer{
			Addr:     kafkago.TCP(brokers...),
			Topic:    topic,
			Balancer: &kafkago.LeastBytes{},
		},
	}
}

// Dispatch writes event as a JSON message. Media events are keyed by resource id
// so updates for the same video land on one partition.
func (p *Producer) Dispatch(ctx context.Context, event model.IntegrationEvent) error {
	value, err := json.Marshal(event)
	if err != nil {
		p.record(event, metrics.ResultError)
		return fmt.Errorf("kafka marshal: %w", err)
	}

	err = p.writer.WriteMessages(ctx, kafkago.Message{
		Key:   []byte(messageKey(event)),
		Value: value,
		Headers: []kafkago.Header{
			{Key: "event", Value: []byte(event.EventName())},
		},
	})
	if err != nil {
		p.record(event, metrics.ResultError)
		return fmt.Errorf("kafka publish: %w", err)
	}

	p.record(event, metrics.ResultSuccess)
	return nil
}

func (p *Producer) record(event model.IntegrationEvent, result string) {
	metrics.IntegrationEventsPublishedTotal.WithLabelValues(event.EventName(), metrics.BrokerKafka, result).Inc()
}

func messageKey(event model.IntegrationEvent) string {
	switch e := event.(type) {
	case model.AudioVideoMediaUpdatedIntegrationEvent:
		return e.ResourceID
	default:
		return event.EventName()
	}
}

func (p *Producer) Close() error {
	return p.writer.Close()
}
