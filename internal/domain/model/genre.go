package model

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// ErrCategoryNotInGenre is returned when removing a category the genre does not reference.
var ErrCategoryNotInGenre = errors.New("category not in genre")

// Genre classifies videos and references the categories it belongs to.
// Category existence is checked by the caller, not by the Genre.
type Genre struct {
	Entity
	Name       string
	IsActive   bool
	Categories IDSet
}

var _ Aggregate = (*Genre)(nil)

// NewGenre creates an active Genre. A uuid.Nil id is replaced by a generated one.
func NewGenre(id uuid.UUID, name string, categories IDSet) (*Genre, error) {
	g := &Genre{
		Entity:     NewEntity(id),
		Name:       name,
		IsActive:   true,
		Categories: categories.Clone(),
	}
	if err := g.Validate(); err != nil {
		return nil, err
	}
	return g, nil
}

func (g *Genre) Validate() error {
	n := NewNotification()
	validateName(n, g.Name)
	return n.Err()
}

func (g *Genre) ChangeName(name string) error {
	next := *g
	next.Name = name
	if err := next.Validate(); err != nil {
		return err
	}
	*g = next
	return nil
}

func (g *Genre) Activate() {
	g.IsActive = true
}

func (g *Genre) Deactivate() {
	g.IsActive = false
}

func (g *Genre) AddCategory(id uuid.UUID) {
	if g.Categories == nil {
		g.Categories = make(IDSet)
	}
	g.Categories[id] = struct{}{}
}

// RemoveCategory fails with ErrCategoryNotInGenre when id is not referenced.
func (g *Genre) RemoveCategory(id uuid.UUID) error {
	if !g.Categories.Has(id) {
		return fmt.Errorf("%w: %s", ErrCategoryNotInGenre, id)
	}
	delete(g.Categories, id)
	return nil
}

// ReplaceCategories swaps the whole category set.
func (g *Genre) ReplaceCategories(ids IDSet) {
	g.Categories = ids.Clone()
}
