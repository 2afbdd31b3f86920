package usecase

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/hszk-dev/catalog/internal/domain/repository"
)

var (
	// ErrCategoryNotFound is returned when a category cannot be found.
	ErrCategoryNotFound = errors.New("category not found")
	// ErrCastMemberNotFound is returned when a cast member cannot be found.
	ErrCastMemberNotFound = errors.New("cast member not found")
	// ErrGenreNotFound is returned when a genre cannot be found.
	ErrGenreNotFound = errors.New("genre not found")
	// ErrVideoNotFound is returned when a video cannot be found.
	ErrVideoNotFound = errors.New("video not found")
	// ErrMediaNotFound is returned when processing a media slot the video has not been given.
	ErrMediaNotFound = errors.New("media not found")

	ErrInvalidCategory   = errors.New("invalid category data")
	ErrInvalidCastMember = errors.New("invalid cast member data")
	ErrInvalidGenre      = errors.New("invalid genre data")
	ErrInvalidVideo      = errors.New("invalid video data")

	// ErrRelatedCategoriesNotFound is returned when a genre references unknown categories.
	// The wrapping message lists every missing id.
	ErrRelatedCategoriesNotFound = errors.New("related categories not found")
	// ErrRelatedEntitiesNotFound is returned when a video references unknown
	// categories, genres or cast members.
	ErrRelatedEntitiesNotFound = errors.New("related entities not found")

	// ErrInvalidOrderBy is returned when listing by a field that cannot be sorted on.
	ErrInvalidOrderBy = errors.New("invalid order by field")
)

// lookupError translates a repository lookup failure into the use case's not-found error.
func lookupError(err error, notFound error, id uuid.UUID) error {
	if errors.Is(err, repository.ErrNotFound) {
		return fmt.Errorf("%w: %s", notFound, id)
	}
	return fmt.Errorf("get %s: %w", id, err)
}

// invalid wraps an aggregate validation failure with the use case's invalid-data error.
func invalid(kind error, err error) error {
	return fmt.Errorf("%w: %w", kind, err)
}
