// Package messagebus routes domain events recorded by aggregates to their handlers.
package messagebus

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/hszk-dev/catalog/internal/domain/model"
	"github.com/hszk-dev/catalog/internal/infrastructure/metrics"
)

// Handler reacts to one domain event.
type Handler interface {
	Handle(ctx context.Context, event model.DomainEvent) error
}

// HandlerFunc adapts a function to Handler.
type HandlerFunc func(ctx context.Context, event model.DomainEvent) error

func (f HandlerFunc) Handle(ctx context.Context, event model.DomainEvent) error {
	return f(ctx, event)
}

// Bus is what use cases depend on to forward pulled events.
type Bus interface {
	Handle(ctx context.Context, events []model.DomainEvent)
}

// MessageBus is a static, in-process registry of event name to ordered handlers.
// Register everything at startup; Handle is safe for concurrent use afterwards.
type MessageBus struct {
	handlers map[string][]Handler
	logger   *slog.Logger
}

var _ Bus = (*MessageBus)(nil)

// New creates an empty MessageBus. A nil logger falls back to slog.Default().
func New(logger *slog.Logger) *MessageBus {
	if logger == nil {
		logger = slog.Default()
	}
	return &MessageBus{
		handlers: make(map[string][]Handler),
		logger:   logger,
	}
}

// Register appends h to the handlers of eventName.
func (b *MessageBus) Register(eventName string, h Handler) {
	b.handlers[eventName] = append(b.handlers[eventName], h)
}

// Handle runs every handler registered for each event's exact name, in order.
// A failing or panicking handler is logged and skipped; errors never reach the caller.
func (b *MessageBus) Handle(ctx context.Context, events []model.DomainEvent) {
	for _, event := range events {
		for _, h := range b.handlers[event.EventName()] {
			if err := b.invoke(ctx, h, event); err != nil {
				metrics.EventHandlersTotal.WithLabelValues(event.EventName(), metrics.ResultError).Inc()
				b.logger.Error("event handler failed",
					slog.String("event", event.EventName()),
					slog.String("handler", fmt.Sprintf("%T", h)),
					slog.String("error", err.Error()),
				)
				continue
			}
			metrics.EventHandlersTotal.WithLabelValues(event.EventName(), metrics.ResultSuccess).Inc()
		}
	}
}

func (b *MessageBus) invoke(ctx context.Context, h Handler, event model.DomainEvent) (err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("handler panic: %v", rec)
		}
	}()
	return h.Handle(ctx, event)
}
