package model

import (
	"fmt"

	"github.com/google/uuid"
)

// Event names used for message bus routing.
const (
	EventAudioVideoMediaUpdated = "AudioVideoMediaUpdated"
)

// DomainEvent is a fact recorded by an aggregate, pending dispatch.
type DomainEvent interface {
	EventName() string
}

// IntegrationEvent is the externally published form of a domain event.
type IntegrationEvent interface {
	EventName() string
}

// AudioVideoMediaUpdated is recorded when a Video receives new audio/video media.
type AudioVideoMediaUpdated struct {
	AggregateID uuid.UUID
	FilePath    string
	MediaType   MediaType
}

func (AudioVideoMediaUpdated) EventName() string { return EventAudioVideoMediaUpdated }

// AudioVideoMediaUpdatedIntegrationEvent asks the encoder to convert an uploaded file.
type AudioVideoMediaUpdatedIntegrationEvent struct {
	ResourceID string `json:"resource_id"`
	FilePath   string `json:"file_path"`
}

func (AudioVideoMediaUpdatedIntegrationEvent) EventName() string {
	return "AudioVideoMediaUpdatedIntegrationEvent"
}

// NewAudioVideoMediaUpdatedIntegrationEvent translates the domain event.
// ResourceID has the form "<aggregate id>.<media type>".
func NewAudioVideoMediaUpdatedIntegrationEvent(e AudioVideoMediaUpdated) AudioVideoMediaUpdatedIntegrationEvent {
	return AudioVideoMediaUpdatedIntegrationEvent{
		ResourceID: fmt.Sprintf("%s.%s", e.AggregateID, e.MediaType),
		FilePath:   e.FilePath,
	}
}
