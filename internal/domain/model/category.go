package model

import (
	"unicode/utf8"

	"github.com/google/uuid"
)

const maxCategoryDescriptionLength = 1024

// Category groups videos and genres by subject.
type Category struct {
	Entity
	Name        string
	Description string
	IsActive    bool
}

var _ Aggregate = (*Category)(nil)

// NewCategory creates an active Category. A uuid.Nil id is replaced by a generated one.
func NewCategory(id uuid.UUID, name, description string) (*Category, error) {
	c := &Category{
		Entity:      NewEntity(id),
		Name:        name,
		Description: description,
		IsActive:    true,
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Validate checks the Category invariants with a fresh Notification.
func (c *Category) Validate() error {
	n := NewNotification()
	validateName(n, c.Name)
	if utf8.RuneCountInString(c.Description) > maxCategoryDescriptionLength {
		n.AddError("Description must have less than 1025 characters")
	}
	return n.Err()
}

// Update replaces name and description.
func (c *Category) Update(name, description string) error {
	return c.apply(func(next *Category) {
		next.Name = name
		next.Description = description
	})
}

func (c *Category) Activate() error {
	return c.apply(func(next *Category) { next.IsActive = true })
}

func (c *Category) Deactivate() error {
	return c.apply(func(next *Category) { next.IsActive = false })
}

// apply validates the mutated copy and commits it only when valid.
func (c *Category) apply(mutate func(next *Category)) error {
	next := *c
	mutate(&next)
	if err := next.Validate(); err != nil {
		return err
	}
	*c = next
	return nil
}

func validateName(n *Notification, name string) {
	if name == "" {
		n.AddError("Name cannot be empty")
	}
	if utf8.RuneCountInString(name) > maxNameLength {
		n.AddError("Name must have less than 256 characters")
	}
}
