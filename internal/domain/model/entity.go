package model

import (
	"reflect"

	"github.com/google/uuid"
)

const maxNameLength = 255

// Aggregate is implemented by every aggregate root in the catalog.
type Aggregate interface {
	AggregateID() uuid.UUID
	Validate() error
	PullEvents() []DomainEvent
}

// Entity holds the identity and pending domain events shared by all aggregates.
// Embed it by value.
type Entity struct {
	ID     uuid.UUID
	events []DomainEvent
}

// NewEntity returns an Entity with the given id, generating one when id is uuid.Nil.
func NewEntity(id uuid.UUID) Entity {
	if id == uuid.Nil {
		id = uuid.New()
	}
	return Entity{ID: id}
}

// AggregateID returns the entity identifier.
func (e *Entity) AggregateID() uuid.UUID {
	return e.ID
}

// Events returns the pending domain events without clearing them.
func (e *Entity) Events() []DomainEvent {
	out := make([]DomainEvent, len(e.events))
	copy(out, e.events)
	return out
}

// PullEvents returns the pending domain events and clears the queue.
func (e *Entity) PullEvents() []DomainEvent {
	out := e.events
	e.events = nil
	return out
}

func (e *Entity) record(event DomainEvent) {
	e.events = append(e.events, event)
}

// SameEntity reports whether a and b are the same concrete aggregate type with the same ID.
// Other fields are ignored.
func SameEntity(a, b Aggregate) bool {
	if a == nil || b == nil {
		return false
	}
	if reflect.TypeOf(a) != reflect.TypeOf(b) {
		return false
	}
	return a.AggregateID() == b.AggregateID()
}
