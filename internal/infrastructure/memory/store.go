// Package memory provides in-memory repositories for tests and local runs.
package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/hszk-dev/catalog/internal/domain/model"
	"github.com/hszk-dev/catalog/internal/domain/repository"
)

// store keeps copies so callers cannot mutate stored aggregates.
type store[T model.Aggregate] struct {
	mu    sync.RWMutex
	data  map[uuid.UUID]T
	clone func(T) T
}

func newStore[T model.Aggregate](clone func(T) T) *store[T] {
	return &store[T]{
		data:  make(map[uuid.UUID]T),
		clone: clone,
	}
}

func (s *store[T]) save(ctx context.Context, item T) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	id := item.AggregateID()
	if _, exists := s.data[id]; exists {
		return repository.ErrDuplicate
	}
	s.data[id] = s.clone(item)
	return nil
}

func (s *store[T]) get(ctx context.Context, id uuid.UUID) (T, error) {
	var zero T
	if err := ctx.Err(); err != nil {
		return zero, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	item, ok := s.data[id]
	if !ok {
		return zero, repository.ErrNotFound
	}
	return s.clone(item), nil
}

func (s *store[T]) delete(ctx context.Context, id uuid.UUID) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.data[id]; !ok {
		return repository.ErrNotFound
	}
	delete(s.data, id)
	return nil
}

func (s *store[T]) update(ctx context.Context, item T) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	id := item.AggregateID()
	if _, ok := s.data[id]; !ok {
		return repository.ErrNotFound
	}
	s.data[id] = s.clone(item)
	return nil
}

func (s *store[T]) list(ctx context.Context) ([]T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]T, 0, len(s.data))
	for _, item := range s.data {
		out = append(out, s.clone(item))
	}
	return out, nil
}
