package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/hszk-dev/catalog/internal/domain/model"
)

// CategoryRepository defines persistence operations for categories.
// Implementations are provided by the infrastructure layer (PostgreSQL, in-memory).
type CategoryRepository interface {
	// Save persists a new category. Returns ErrDuplicate if the id already exists.
	Save(ctx context.Context, category *model.Category) error

	// GetByID returns ErrNotFound if the category does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*model.Category, error)

	// Delete returns ErrNotFound if the category does not exist.
	Delete(ctx context.Context, id uuid.UUID) error

	// Update returns ErrNotFound if the category does not exist.
	Update(ctx context.Context, category *model.Category) error

	// List returns every category in no particular order.
	List(ctx context.Context) ([]*model.Category, error)
}

// CastMemberRepository defines persistence operations for cast members.
type CastMemberRepository interface {
	Save(ctx context.Context, member *model.CastMember) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.CastMember, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Update(ctx context.Context, member *model.CastMember) error
	List(ctx context.Context) ([]*model.CastMember, error)
}

// GenreRepository defines persistence operations for genres, including their category ids.
type GenreRepository interface {
	Save(ctx context.Context, genre *model.Genre) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Genre, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Update(ctx context.Context, genre *model.Genre) error
	List(ctx context.Context) ([]*model.Genre, error)
}

// VideoRepository defines persistence operations for videos, including
// their reference sets and media value objects.
type VideoRepository interface {
	Save(ctx context.Context, video *model.Video) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Video, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Update(ctx context.Context, video *model.Video) error
	List(ctx context.Context) ([]*model.Video, error)
}
