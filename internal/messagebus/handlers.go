package messagebus

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/hszk-dev/catalog/internal/domain/model"
	"github.com/hszk-dev/catalog/internal/domain/repository"
)

// PublishAudioVideoMediaUpdatedHandler forwards AudioVideoMediaUpdated to the encoder
// as an AudioVideoMediaUpdatedIntegrationEvent.
type PublishAudioVideoMediaUpdatedHandler struct {
	dispatcher repository.EventDispatcher
}

func NewPublishAudioVideoMediaUpdatedHandler(dispatcher repository.EventDispatcher) *PublishAudioVideoMediaUpdatedHandler {
	return &PublishAudioVideoMediaUpdatedHandler{dispatcher: dispatcher}
}

func (h *PublishAudioVideoMediaUpdatedHandler) Handle(ctx context.Context, event model.DomainEvent) error {
	e, ok := event.(model.AudioVideoMediaUpdated)
	if !ok {
		return fmt.Errorf("unexpected event type %T", event)
	}

	if err := h.dispatcher.Dispatch(ctx, model.NewAudioVideoMediaUpdatedIntegrationEvent(e)); err != nil {
		return fmt.Errorf("dispatch integration event: %w", err)
	}
	return nil
}

// NewDefault builds the bus with the catalog's handler registrations.
func NewDefault(dispatcher repository.EventDispatcher, logger *slog.Logger) *MessageBus {
	b := New(logger)
	b.Register(model.EventAudioVideoMediaUpdated, NewPublishAudioVideoMediaUpdatedHandler(dispatcher))
	return b
}
