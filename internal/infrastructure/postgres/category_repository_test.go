package postgres

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"

	"github.com/hszk-dev/catalog/internal/domain/model"
	"github.com/hszk-dev/catalog/internal/domain/repository"
)

func newTestCategory(t *testing.T) *model.Category {
	t.Helper()
	c, err := model.NewCategory(uuid.Nil, "Action", "Explosions")
	if err != nil {
		t.Fatalf("NewCategory: %v", err)
	}
	return c
}

func TestCategoryRepository_Save(t *testing.T) {
	tests := []struct {
		name    string
		mockFn  func(mock pgxmock.PgxPoolIface, c *model.Category)
		wantErr error
	}{
		{
			name: "successful creation",
			mockFn: func(mock pgxmock.PgxPoolIface, c *model.Category) {
				mock.ExpectExec("INSERT INTO categories").
					WithArgs(c.ID, "Action", "Explosions", true).
					WillReturnResult(pgxmock.NewResult("INSERT", 1))
			},
		},
		{
			name: "duplicate category",
			mockFn: func(mock pgxmock.PgxPoolIface, c *model.Category) {
				mock.ExpectExec("INSERT INTO categories").
					WithArgs(c.ID, "Action", "Explosions", true).
					WillReturnError(&pgconn.PgError{Code: "23505"})
			},
			wantErr: repository.ErrDuplicate,
		},
		{
			name: "database error",
			mockFn: func(mock pgxmock.PgxPoolIface, c *model.Category) {
				mock.ExpectExec("INSERT INTO categories").
					WithArgs(c.ID, "Action", "Explosions", true).
					WillReturnError(errors.New("connection refused"))
			},
			wantErr: errors.New("failed to create category"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock, err := pgxmock.NewPool()
			if err != nil {
				t.Fatalf("failed to create mock: %v", err)
			}
			defer mock.Close()

			category := newTestCategory(t)
			tt.mockFn(mock, category)

			repo := NewCategoryRepository(mock)
			err = repo.Save(context.Background(), category)

			if tt.wantErr != nil {
				if err == nil {
					t.Errorf("Save() expected error, got nil")
					return
				}
				if !errors.Is(err, tt.wantErr) && !containsError(err, tt.wantErr) {
					t.Errorf("Save() error = %v, wantErr %v", err, tt.wantErr)
				}
				return
			}

			if err != nil {
				t.Errorf("Save() unexpected error = %v", err)
			}

			if err := mock.ExpectationsWereMet(); err != nil {
				t.Errorf("unfulfilled expectations: %v", err)
			}
		})
	}
}

func TestCategoryRepository_GetByID(t *testing.T) {
	categoryID := uuid.New()

	tests := []struct {
		name    string
		mockFn  func(mock pgxmock.PgxPoolIface)
		wantErr error
	}{
		{
			name: "successful retrieval",
			mockFn: func(mock pgxmock.PgxPoolIface) {
				rows := pgxmock.NewRows([]string{"id", "name", "description", "is_active"}).
					AddRow(categoryID, "Action", "Explosions", false)
				mock.ExpectQuery("SELECT .* FROM categories WHERE id").
					WithArgs(categoryID).
					WillReturnRows(rows)
			},
		},
		{
			name: "category not found",
			mockFn: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery("SELECT .* FROM categories WHERE id").
					WithArgs(categoryID).
					WillReturnError(pgx.ErrNoRows)
			},
			wantErr: repository.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock, err := pgxmock.NewPool()
			if err != nil {
				t.Fatalf("failed to create mock: %v", err)
			}
			defer mock.Close()

			tt.mockFn(mock)

			repo := NewCategoryRepository(mock)
			got, err := repo.GetByID(context.Background(), categoryID)

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("GetByID() error = %v, wantErr %v", err, tt.wantErr)
				}
				return
			}

			if err != nil {
				t.Fatalf("GetByID() unexpected error = %v", err)
			}

			if got.ID != categoryID || got.Name != "Action" || got.Description != "Explosions" || got.IsActive {
				t.Errorf("GetByID() = %+v", got)
			}

			if err := mock.ExpectationsWereMet(); err != nil {
				t.Errorf("unfulfilled expectations: %v", err)
			}
		})
	}
}

func TestCategoryRepository_UpdateAndDelete_NotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("failed to create mock: %v", err)
	}
	defer mock.Close()

	category := newTestCategory(t)
	mock.ExpectExec("UPDATE categories").
		WithArgs(category.ID, "Action", "Explosions", true).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))
	mock.ExpectExec("DELETE FROM categories").
		WithArgs(category.ID).
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	repo := NewCategoryRepository(mock)

	if err := repo.Update(context.Background(), category); !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("Update() error = %v, want %v", err, repository.ErrNotFound)
	}
	if err := repo.Delete(context.Background(), category.ID); !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("Delete() error = %v, want %v", err, repository.ErrNotFound)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled expectations: %v", err)
	}
}

func TestCategoryRepository_List(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("failed to create mock: %v", err)
	}
	defer mock.Close()

	id1, id2 := uuid.New(), uuid.New()
	rows := pgxmock.NewRows([]string{"id", "name", "description", "is_active"}).
		AddRow(id1, "Action", "", true).
		AddRow(id2, "Drama", "", false)
	mock.ExpectQuery("SELECT .* FROM categories").WillReturnRows(rows)

	repo := NewCategoryRepository(mock)
	got, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("List() unexpected error = %v", err)
	}

	if len(got) != 2 {
		t.Fatalf("List() returned %d categories, want 2", len(got))
	}
	if got[0].ID != id1 || got[1].ID != id2 {
		t.Errorf("List() ids = %v, %v", got[0].ID, got[1].ID)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled expectations: %v", err)
	}
}

// containsError checks if err's message starts with the expected error's message.
func containsError(err, expected error) bool {
	if err == nil || expected == nil {
		return false
	}
	return len(err.Error()) >= len(expected.Error()) &&
		err.Error()[:len(expected.Error())] == expected.Error()
}
