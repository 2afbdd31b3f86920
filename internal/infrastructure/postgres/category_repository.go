package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/hszk-dev/catalog/internal/domain/model"
	"github.com/hszk-dev/catalog/internal/domain/repository"
	"github.com/hszk-dev/catalog/internal/infrastructure/metrics"
)

// CategoryRepository implements repository.CategoryRepository using PostgreSQL.
type CategoryRepository struct {
	db DBTX
}

// NewCategoryRepository creates a new CategoryRepository instance.
func NewCategoryRepository(db DBTX) *CategoryRepository {
	return &CategoryRepository{db: db}
}

// Save persists a new category.
func (r *CategoryRepository) Save(ctx context.Context, category *model.Category) error {
	const query = `
		INSERT INTO categories (id, name, description, is_active)
		VALUES ($1, $2, $3, $4)
	`

	countQuery(metrics.DBQueryInsert, metrics.TableCategories)
	_, err := r.db.Exec(ctx, query, category.ID, category.Name, category.Description, category.IsActive)
	if err != nil {
		if isUniqueViolation(err) {
			return repository.ErrDuplicate
		}
		return fmt.Errorf("failed to create category: %w", err)
	}

	return nil
}

// GetByID retrieves a category by its unique identifier.
func (r *CategoryRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Category, error) {
	const query = `
		SELECT id, name, description, is_active
		FROM categories
		WHERE id = $1
	`

	countQuery(metrics.DBQuerySelect, metrics.TableCategories)
	category, err := scanCategory(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get category by ID: %w", err)
	}

	return category, nil
}

// Delete removes a category.
func (r *CategoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	const query = `DELETE FROM categories WHERE id = $1`

	countQuery(metrics.DBQueryDelete, metrics.TableCategories)
	if err := execAffectingOne(ctx, r.db, query, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return err
		}
		return fmt.Errorf("failed to delete category: %w", err)
	}

	return nil
}

// Update persists changes to an existing category.
func (r *CategoryRepository) Update(ctx context.Context, category *model.Category) error {
	const query = `
		UPDATE categories
		SET name = $2, description = $3, is_active = $4
		WHERE id = $1
	`

	countQuery(metrics.DBQueryUpdate, metrics.TableCategories)
	err := execAffectingOne(ctx, r.db, query, category.ID, category.Name, category.Description, category.IsActive)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return err
		}
		return fmt.Errorf("failed to update category: %w", err)
	}

	return nil
}

// List retrieves every category.
func (r *CategoryRepository) List(ctx context.Context) ([]*model.Category, error) {
	const query = `
		SELECT id, name, description, is_active
		FROM categories
	`

	countQuery(metrics.DBQuerySelect, metrics.TableCategories)
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query categories: %w", err)
	}
	defer rows.Close()

	categories := []*model.Category{}
	for rows.Next() {
		category, err := scanCategory(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}
		categories = append(categories, category)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating categories: %w", err)
	}

	return categories, nil
}

// scanCategory scans a single row into a Category model.
// pgx.Rows satisfies pgx.Row, so the same function serves QueryRow and Query.
func scanCategory(row pgx.Row) (*model.Category, error) {
	var (
		id       uuid.UUID
		category model.Category
	)

	if err := row.Scan(&id, &category.Name, &category.Description, &category.IsActive); err != nil {
		return nil, err
	}

	category.Entity = model.NewEntity(id)
	return &category, nil
}

// Compile-time verification that CategoryRepository implements repository.CategoryRepository.
var _ repository.CategoryRepository = (*CategoryRepository)(nil)
