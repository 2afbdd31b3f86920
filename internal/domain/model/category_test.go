package model

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
)

func TestNewCategory(t *testing.T) {
	tests := []struct {
		name        string
		catName     string
		description string
		wantErr     string
	}{
		{name: "valid", catName: "Action", description: "Action movies"},
		{name: "name at max length", catName: strings.Repeat("a", 255)},
		{name: "multi-byte name at max length", catName: strings.Repeat("é", 255)},
		{name: "multi-byte name too long", catName: strings.Repeat("映", 256), wantErr: "Name must have less than 256 characters"},
		{name: "multi-byte description at max length", catName: "Drama", description: strings.Repeat("ü", 1024)},
		{name: "empty name", catName: "", wantErr: "Name cannot be empty"},
		{name: "name too long", catName: strings.Repeat("a", 256), wantErr: "Name must have less than 256 characters"},
		{
			name:        "name and description too long",
			catName:     strings.Repeat("a", 256),
			description: strings.Repeat("d", 1025),
			wantErr:     "Name must have less than 256 characters,Description must have less than 1025 characters",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := NewCategory(uuid.Nil, tt.catName, tt.description)

			if tt.wantErr != "" {
				var vErr *ValidationError
				if !errors.As(err, &vErr) {
					t.Fatalf("NewCategory() error = %v, want *ValidationError", err)
				}
				if err.Error() != tt.wantErr {
					t.Errorf("NewCategory() error = %q, want %q", err.Error(), tt.wantErr)
				}
				if c != nil {
					t.Error("NewCategory() should return nil on error")
				}
				return
			}

			if err != nil {
				t.Fatalf("NewCategory() unexpected error = %v", err)
			}
			if c.ID == uuid.Nil {
				t.Error("NewCategory() should generate an id")
			}
			if !c.IsActive {
				t.Error("NewCategory() should be active by default")
			}
		})
	}
}

func TestCategory_Update(t *testing.T) {
	c, _ := NewCategory(uuid.Nil, "Action", "desc")

	if err := c.Update("Drama", "new desc"); err != nil {
		t.Fatalf("Update() unexpected error = %v", err)
	}
	if c.Name != "Drama" || c.Description != "new desc" {
		t.Errorf("Update() got name=%q description=%q", c.Name, c.Description)
	}

	err := c.Update("", "ignored")
	if err == nil || err.Error() != "Name cannot be empty" {
		t.Fatalf("Update() error = %v, want Name cannot be empty", err)
	}
	if c.Name != "Drama" || c.Description != "new desc" {
		t.Error("rejected Update() must not change the category")
	}
}

func TestCategory_ActivateDeactivate(t *testing.T) {
	c, _ := NewCategory(uuid.Nil, "Action", "")

	if err := c.Deactivate(); err != nil {
		t.Fatalf("Deactivate() error = %v", err)
	}
	if c.IsActive {
		t.Error("Deactivate() should set IsActive to false")
	}

	if err := c.Activate(); err != nil {
		t.Fatalf("Activate() error = %v", err)
	}
	if !c.IsActive {
		t.Error("Activate() should set IsActive to true")
	}
}

func TestCategory_ValidationDoesNotAccumulate(t *testing.T) {
	c, _ := NewCategory(uuid.Nil, "Action", "")

	_ = c.Update("", "")
	err := c.Update(strings.Repeat("a", 256), "")
	if err == nil {
		t.Fatal("expected error")
	}
	if strings.Contains(err.Error(), "Name cannot be empty") {
		t.Errorf("stale message from a previous pass leaked: %q", err.Error())
	}
}
