package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/hszk-dev/catalog/internal/domain/model"
	"github.com/hszk-dev/catalog/internal/domain/repository"
)

// CreateCategoryInput contains the input parameters for creating a category.
// A nil IsActive creates an active category.
type CreateCategoryInput struct {
	Name        string
	Description string
	IsActive    *bool
}

// UpdateCategoryInput contains the fields to change; nil fields are left as they are.
type UpdateCategoryInput struct {
	ID          uuid.UUID
	Name        *string
	Description *string
	IsActive    *bool
}

// CategoryService defines the category use cases.
type CategoryService interface {
	CreateCategory(ctx context.Context, input CreateCategoryInput) (*model.Category, error)

	// UpdateCategory applies the given fields. An explicit IsActive toggles
	// Activate/Deactivate; nothing is persisted when the result is invalid.
	UpdateCategory(ctx context.Context, input UpdateCategoryInput) error

	DeleteCategory(ctx context.Context, id uuid.UUID) error
	GetCategory(ctx context.Context, id uuid.UUID) (*model.Category, error)
	ListCategories(ctx context.Context, input ListInput) (*ListOutput[*model.Category], error)
}

type categoryService struct {
	repo     repository.CategoryRepository
	pageSize int
}

// NewCategoryService creates a new CategoryService instance.
func NewCategoryService(repo repository.CategoryRepository, cfg Config) CategoryService {
	return &categoryService{repo: repo, pageSize: cfg.pageSize()}
}

func (s *categoryService) CreateCategory(ctx context.Context, input CreateCategoryInput) (*model.Category, error) {
	category, err := model.NewCategory(uuid.Nil, input.Name, input.Description)
	if err != nil {
		return nil, invalid(ErrInvalidCategory, err)
	}
	if input.IsActive != nil && !*input.IsActive {
		if err := category.Deactivate(); err != nil {
			return nil, invalid(ErrInvalidCategory, err)
		}
	}

	if err := s.repo.Save(ctx, category); err != nil {
		return nil, fmt.Errorf("save category: %w", err)
	}
	return category, nil
}

func (s *categoryService) UpdateCategory(ctx context.Context, input UpdateCategoryInput) error {
	category, err := s.repo.GetByID(ctx, input.ID)
	if err != nil {
		return lookupError(err, ErrCategoryNotFound, input.ID)
	}

	name, description := category.Name, category.Description
	if input.Name != nil {
		name = *input.Name
	}
	if input.Description != nil {
		description = *input.Description
	}
	if err := category.Update(name, description); err != nil {
		return invalid(ErrInvalidCategory, err)
	}

	if input.IsActive != nil {
		if *input.IsActive {
			err = category.Activate()
		} else {
			err = category.Deactivate()
		}
		if err != nil {
			return invalid(ErrInvalidCategory, err)
		}
	}

	if err := s.repo.Update(ctx, category); err != nil {
		return fmt.Errorf("update category: %w", err)
	}
	return nil
}

func (s *categoryService) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return lookupError(err, ErrCategoryNotFound, id)
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete category: %w", err)
	}
	return nil
}

func (s *categoryService) GetCategory(ctx context.Context, id uuid.UUID) (*model.Category, error) {
	category, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, lookupError(err, ErrCategoryNotFound, id)
	}
	return category, nil
}

var categoryOrderings = orderings[*model.Category]{
	"name":        func(a, b *model.Category) int { return strings.Compare(a.Name, b.Name) },
	"description": func(a, b *model.Category) int { return strings.Compare(a.Description, b.Description) },
	"id":          func(a, b *model.Category) int { return strings.Compare(a.ID.String(), b.ID.String()) },
}

func (s *categoryService) ListCategories(ctx context.Context, input ListInput) (*ListOutput[*model.Category], error) {
	categories, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return paginate(categories, categoryOrderings, "name", input, s.pageSize)
}
