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

// GenreRepository implements repository.GenreRepository using PostgreSQL.
// Category references are stored as a uuid[] column.
type GenreRepository struct {
	db DBTX
}

// NewGenreRepository creates a new GenreRepository instance.
func NewGenreRepository(db DBTX) *GenreRepository {
	return &GenreRepository{db: db}
}

func (r *GenreRepository) Save(ctx context.Context, genre *model.Genre) error {
	const query = `
		INSERT INTO genres (id, name, is_active, category_ids)
		VALUES ($1, $2, $3, $4)
	`

	countQuery(metrics.DBQueryInsert, metrics.TableGenres)
	_, err := r.db.Exec(ctx, query, genre.ID, genre.Name, genre.IsActive, genre.Categories.Slice())
	if err != nil {
		if isUniqueViolation(err) {
			return repository.ErrDuplicate
		}
		return fmt.Errorf("failed to create genre: %w", err)
	}

	return nil
}

func (r *GenreRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Genre, error) {
	const query = `
		SELECT id, name, is_active, category_ids
		FROM genres
		WHERE id = $1
	`

	countQuery(metrics.DBQuerySelect, metrics.TableGenres)
	genre, err := scanGenre(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get genre by ID: %w", err)
	}

	return genre, nil
}

func (r *GenreRepository) Delete(ctx context.Context, id uuid.UUID) error {
	const query = `DELETE FROM genres WHERE id = $1`

	countQuery(metrics.DBQueryDelete, metrics.TableGenres)
	if err := execAffectingOne(ctx, r.db, query, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return err
		}
		return fmt.Errorf("failed to delete genre: %w", err)
	}

	return nil
}

func (r *GenreRepository) Update(ctx context.Context, genre *model.Genre) error {
	const query = `
		UPDATE genres
		SET name = $2, is_active = $3, category_ids = $4
		WHERE id = $1
	`

	countQuery(metrics.DBQueryUpdate, metrics.TableGenres)
	err := execAffectingOne(ctx, r.db, query, genre.ID, genre.Name, genre.IsActive, genre.Categories.Slice())
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return err
		}
		return fmt.Errorf("failed to update genre: %w", err)
	}

	return nil
}

func (r *GenreRepository) List(ctx context.Context) ([]*model.Genre, error) {
	const query = `SELECT id, name, is_active, category_ids FROM genres`

	countQuery(metrics.DBQuerySelect, metrics.TableGenres)
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query genres: %w", err)
	}
	defer rows.Close()

	genres := []*model.Genre{}
	for rows.Next() {
		genre, err := scanGenre(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan genre: %w", err)
		}
		genres = append(genres, genre)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating genres: %w", err)
	}

	return genres, nil
}

func scanGenre(row pgx.Row) (*model.Genre, error) {
	var (
		id          uuid.UUID
		categoryIDs []uuid.UUID
		genre       model.Genre
	)

	if err := row.Scan(&id, &genre.Name, &genre.IsActive, &categoryIDs); err != nil {
		return nil, err
	}

	genre.Entity = model.NewEntity(id)
	genre.Categories = model.NewIDSet(categoryIDs...)
	return &genre, nil
}

var _ repository.GenreRepository = (*GenreRepository)(nil)
