package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/hszk-dev/catalog/internal/domain/model"
	"github.com/hszk-dev/catalog/internal/domain/repository"
)

func boolPtr(b bool) *bool { return &b }
func strPtr(s string) *string { return &s }

func TestCategoryService_CreateCategory(t *testing.T) {
	testCases := []struct {
		name       string
		input      CreateCategoryInput
		wantErr    error
		wantActive bool
	}{
		{
			name:       "defaults to active",
			input:      CreateCategoryInput{Name: "Action"},
			wantActive: true,
		},
		{
			name:       "explicitly inactive",
			input:      CreateCategoryInput{Name: "Action", IsActive: boolPtr(false)},
			wantActive: false,
		},
		{
			name:    "empty name",
			input:   CreateCategoryInput{Name: ""},
			wantErr: ErrInvalidCategory,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var saved *model.Category
			repo := &mockCategoryRepository{
				saveFn: func(ctx context.Context, category *model.Category) error {
					saved = category
					return nil
				},
			}
			svc := NewCategoryService(repo, DefaultConfig())

			got, err := svc.CreateCategory(context.Background(), tc.input)

			if tc.wantErr != nil {
				if !errors.Is(err, tc.wantErr) {
					t.Fatalf("error = %v, want %v", err, tc.wantErr)
				}
				if saved != nil {
					t.Error("invalid category must not be saved")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.ID == uuid.Nil {
				t.Error("expected generated ID")
			}
			if got.IsActive != tc.wantActive {
				t.Errorf("IsActive = %v, want %v", got.IsActive, tc.wantActive)
			}
			if saved != got {
				t.Error("created category was not saved")
			}
		})
	}
}

func TestCategoryService_CreateCategory_ValidationMessage(t *testing.T) {
	svc := NewCategoryService(&mockCategoryRepository{}, DefaultConfig())

	_, err := svc.CreateCategory(context.Background(), CreateCategoryInput{Name: ""})

	var verr *model.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("error = %v, want *model.ValidationError", err)
	}
	if verr.Error() != "Name cannot be empty" {
		t.Errorf("message = %q", verr.Error())
	}
}

func TestCategoryService_UpdateCategory(t *testing.T) {
	existing, err := model.NewCategory(uuid.Nil, "Action", "old")
	if err != nil {
		t.Fatalf("NewCategory: %v", err)
	}

	var updated *model.Category
	repo := &mockCategoryRepository{
		getByIDFn: func(ctx context.Context, id uuid.UUID) (*model.Category, error) {
			return existing, nil
		},
		updateFn: func(ctx context.Context, category *model.Category) error {
			updated = category
			return nil
		},
	}
	svc := NewCategoryService(repo, DefaultConfig())

	err = svc.UpdateCategory(context.Background(), UpdateCategoryInput{
		ID:          existing.ID,
		Description: strPtr("new"),
		IsActive:    boolPtr(false),
	})
	if err != nil {
		t.Fatalf("UpdateCategory failed: %v", err)
	}

	if updated == nil {
		t.Fatal("category was not persisted")
	}
	if updated.Name != "Action" {
		t.Errorf("Name = %q, want unchanged", updated.Name)
	}
	if updated.Description != "new" {
		t.Errorf("Description = %q, want %q", updated.Description, "new")
	}
	if updated.IsActive {
		t.Error("expected category to be deactivated")
	}
}

func TestCategoryService_UpdateCategory_Errors(t *testing.T) {
	testCases := []struct {
		name    string
		getErr  error
		input   UpdateCategoryInput
		wantErr error
	}{
		{
			name:    "not found",
			getErr:  repository.ErrNotFound,
			input:   UpdateCategoryInput{ID: uuid.New()},
			wantErr: ErrCategoryNotFound,
		},
		{
			name:    "invalid name",
			input:   UpdateCategoryInput{ID: uuid.New(), Name: strPtr("")},
			wantErr: ErrInvalidCategory,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			updateCalled := false
			repo := &mockCategoryRepository{
				getByIDFn: func(ctx context.Context, id uuid.UUID) (*model.Category, error) {
					if tc.getErr != nil {
						return nil, tc.getErr
					}
					return model.NewCategory(id, "Action", "")
				},
				updateFn: func(ctx context.Context, category *model.Category) error {
					updateCalled = true
					return nil
				},
			}
			svc := NewCategoryService(repo, DefaultConfig())

			err := svc.UpdateCategory(context.Background(), tc.input)
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("error = %v, want %v", err, tc.wantErr)
			}
			if updateCalled {
				t.Error("Update must not be called on failure")
			}
		})
	}
}

func TestCategoryService_DeleteCategory_NotFound(t *testing.T) {
	repo := &mockCategoryRepository{
		getByIDFn: func(ctx context.Context, id uuid.UUID) (*model.Category, error) {
			return nil, repository.ErrNotFound
		},
		deleteFn: func(ctx context.Context, id uuid.UUID) error {
			t.Error("Delete must not be called")
			return nil
		},
	}
	svc := NewCategoryService(repo, DefaultConfig())

	err := svc.DeleteCategory(context.Background(), uuid.New())
	if !errors.Is(err, ErrCategoryNotFound) {
		t.Fatalf("error = %v, want %v", err, ErrCategoryNotFound)
	}
}

func TestCategoryService_GetCategory_RepositoryError(t *testing.T) {
	dbErr := errors.New("connection refused")
	repo := &mockCategoryRepository{
		getByIDFn: func(ctx context.Context, id uuid.UUID) (*model.Category, error) {
			return nil, dbErr
		},
	}
	svc := NewCategoryService(repo, DefaultConfig())

	_, err := svc.GetCategory(context.Background(), uuid.New())
	if !errors.Is(err, dbErr) {
		t.Fatalf("error = %v, want wrapped %v", err, dbErr)
	}
	if errors.Is(err, ErrCategoryNotFound) {
		t.Error("infrastructure errors must not be reported as not found")
	}
}

func TestCategoryService_ListCategories(t *testing.T) {
	var categories []*model.Category
	for _, name := range []string{"Drama", "Action", "Comedy"} {
		c, err := model.NewCategory(uuid.Nil, name, "")
		if err != nil {
			t.Fatalf("NewCategory: %v", err)
		}
		categories = append(categories, c)
	}

	repo := &mockCategoryRepository{
		listFn: func(ctx context.Context) ([]*model.Category, error) {
			return categories, nil
		},
	}
	svc := NewCategoryService(repo, Config{PageSize: 2})

	testCases := []struct {
		name      string
		input     ListInput
		wantNames []string
		wantErr   error
	}{
		{"default order first page", ListInput{}, []string{"Action", "Comedy"}, nil},
		{"second page", ListInput{CurrentPage: 2}, []string{"Drama"}, nil},
		{"descending", ListInput{OrderBy: "-name"}, []string{"Drama", "Comedy"}, nil},
		{"past the end", ListInput{CurrentPage: 5}, []string{}, nil},
		{"unknown field", ListInput{OrderBy: "color"}, nil, ErrInvalidOrderBy},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			out, err := svc.ListCategories(context.Background(), tc.input)
			if tc.wantErr != nil {
				if !errors.Is(err, tc.wantErr) {
					t.Fatalf("error = %v, want %v", err, tc.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if len(out.Data) != len(tc.wantNames) {
				t.Fatalf("len(Data) = %d, want %d", len(out.Data), len(tc.wantNames))
			}
			for i, name := range tc.wantNames {
				if out.Data[i].Name != name {
					t.Errorf("Data[%d].Name = %q, want %q", i, out.Data[i].Name, name)
				}
			}
			if out.Meta.Total != 3 {
				t.Errorf("Total = %d, want 3", out.Meta.Total)
			}
			if out.Meta.PerPage != 2 {
				t.Errorf("PerPage = %d, want 2", out.Meta.PerPage)
			}
		})
	}
}
