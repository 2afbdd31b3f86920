package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/hszk-dev/catalog/internal/domain/model"
	"github.com/hszk-dev/catalog/internal/domain/repository"
)

// CreateGenreInput contains the input parameters for creating a genre.
// A nil IsActive creates an active genre.
type CreateGenreInput struct {
	Name       string
	Categories model.IDSet
	IsActive   *bool
}

// UpdateGenreInput replaces every mutable attribute of a genre.
type UpdateGenreInput struct {
	ID         uuid.UUID
	Name       string
	IsActive   bool
	Categories model.IDSet
}

// GenreService defines the genre use cases.
type GenreService interface {
	// CreateGenre fails with ErrRelatedCategoriesNotFound when any category id is unknown.
	CreateGenre(ctx context.Context, input CreateGenreInput) (*model.Genre, error)

	// UpdateGenre re-checks the category ids, so a category deleted after the
	// genre was created makes the update fail.
	UpdateGenre(ctx context.Context, input UpdateGenreInput) error

	DeleteGenre(ctx context.Context, id uuid.UUID) error
	GetGenre(ctx context.Context, id uuid.UUID) (*model.Genre, error)
	ListGenres(ctx context.Context, input ListInput) (*ListOutput[*model.Genre], error)
}

type genreService struct {
	repo         repository.GenreRepository
	categoryRepo repository.CategoryRepository
	pageSize     int
}

// NewGenreService creates a new GenreService instance.
func NewGenreService(repo repository.GenreRepository, categoryRepo repository.CategoryRepository, cfg Config) GenreService {
	return &genreService{
		repo:         repo,
		categoryRepo: categoryRepo,
		pageSize:     cfg.pageSize(),
	}
}

func (s *genreService) CreateGenre(ctx context.Context, input CreateGenreInput) (*model.Genre, error) {
	if err := s.checkCategories(ctx, input.Categories); err != nil {
		return nil, err
	}

	genre, err := model.NewGenre(uuid.Nil, input.Name, input.Categories)
	if err != nil {
		return nil, invalid(ErrInvalidGenre, err)
	}
	if input.IsActive != nil && !*input.IsActive {
		genre.Deactivate()
	}

	if err := s.repo.Save(ctx, genre); err != nil {
		return nil, fmt.Errorf("save genre: %w", err)
	}
	return genre, nil
}

func (s *genreService) UpdateGenre(ctx context.Context, input UpdateGenreInput) error {
	genre, err := s.repo.GetByID(ctx, input.ID)
	if err != nil {
		return lookupError(err, ErrGenreNotFound, input.ID)
	}

	if err := s.checkCategories(ctx, input.Categories); err != nil {
		return err
	}

	if err := genre.ChangeName(input.Name); err != nil {
		return invalid(ErrInvalidGenre, err)
	}
	if input.IsActive {
		genre.Activate()
	} else {
		genre.Deactivate()
	}
	genre.ReplaceCategories(input.Categories)

	if err := s.repo.Update(ctx, genre); err != nil {
		return fmt.Errorf("update genre: %w", err)
	}
	return nil
}

func (s *genreService) DeleteGenre(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return lookupError(err, ErrGenreNotFound, id)
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete genre: %w", err)
	}
	return nil
}

func (s *genreService) GetGenre(ctx context.Context, id uuid.UUID) (*model.Genre, error) {
	genre, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, lookupError(err, ErrGenreNotFound, id)
	}
	return genre, nil
}

var genreOrderings = orderings[*model.Genre]{
	"name": func(a, b *model.Genre) int { return strings.Compare(a.Name, b.Name) },
	"id":   func(a, b *model.Genre) int { return strings.Compare(a.ID.String(), b.ID.String()) },
}

func (s *genreService) ListGenres(ctx context.Context, input ListInput) (*ListOutput[*model.Genre], error) {
	genres, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list genres: %w", err)
	}
	return paginate(genres, genreOrderings, "name", input, s.pageSize)
}

func (s *genreService) checkCategories(ctx context.Context, ids model.IDSet) error {
	missing, err := missingIDs(ctx, ids, s.categoryRepo.List)
	if err != nil {
		return fmt.Errorf("list categories: %w", err)
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrRelatedCategoriesNotFound, missing)
	}
	return nil
}
