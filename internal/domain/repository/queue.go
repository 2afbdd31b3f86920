package repository

import (
	"context"

	"github.com/hszk-dev/catalog/internal/domain/model"
)

// EventDispatcher publishes integration events to an external bus.
// Implementations should be provided by the infrastructure layer (e.g., RabbitMQ, Kafka).
type EventDispatcher interface {
	Dispatch(ctx context.Context, event model.IntegrationEvent) error
}

// ConversionResult is the message the encoder publishes once a media file was processed.
type ConversionResult struct {
	Error string                `json:"error"`
	Video ConversionResultVideo `json:"video"`
	// Status is COMPLETED or ERROR.
	Status string `json:"status"`
}

// ConversionResultVideo identifies the converted resource.
// ResourceID has the form "<video id>.<media type>".
type ConversionResultVideo struct {
	ResourceID         string `json:"resource_id"`
	EncodedVideoFolder string `json:"encoded_video_folder"`
}

// ConversionConsumer receives encoder results.
type ConversionConsumer interface {
	// ConsumeConversionResults blocks, calling handler for each received result,
	// until ctx is cancelled or the subscription ends.
	ConsumeConversionResults(ctx context.Context, handler func(result ConversionResult) error) error

	Close() error
}
