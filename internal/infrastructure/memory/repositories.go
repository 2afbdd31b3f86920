package memory

import (
	"context"

	"github.com/google/uuid"

	"github.com/hszk-dev/catalog/internal/domain/model"
	"github.com/hszk-dev/catalog/internal/domain/repository"
)

// Stored copies drop pending domain events; events belong to the use case
// that recorded them, not to the repository.

// CategoryRepository is an in-memory repository.CategoryRepository.
type CategoryRepository struct {
	s *store[*model.Category]
}

var _ repository.CategoryRepository = (*CategoryRepository)(nil)

func NewCategoryRepository() *CategoryRepository {
	return &CategoryRepository{s: newStore(func(c *model.Category) *model.Category {
		cp := *c
		cp.Entity = model.NewEntity(c.ID)
		return &cp
	})}
}

func (r *CategoryRepository) Save(ctx context.Context, c *model.Category) error {
	return r.s.save(ctx, c)
}

func (r *CategoryRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Category, error) {
	return r.s.get(ctx, id)
}

func (r *CategoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.s.delete(ctx, id)
}

func (r *CategoryRepository) Update(ctx context.Context, c *model.Category) error {
	return r.s.update(ctx, c)
}

func (r *CategoryRepository) List(ctx context.Context) ([]*model.Category, error) {
	return r.s.list(ctx)
}

// CastMemberRepository is an in-memory repository.CastMemberRepository.
type CastMemberRepository struct {
	s *store[*model.CastMember]
}

var _ repository.CastMemberRepository = (*CastMemberRepository)(nil)

func NewCastMemberRepository() *CastMemberRepository {
	return &CastMemberRepository{s: newStore(func(m *model.CastMember) *model.CastMember {
		cp := *m
		cp.Entity = model.NewEntity(m.ID)
		return &cp
	})}
}

func (r *CastMemberRepository) Save(ctx context.Context, m *model.CastMember) error {
	return r.s.save(ctx, m)
}

func (r *CastMemberRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.CastMember, error) {
	return r.s.get(ctx, id)
}

func (r *CastMemberRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.s.delete(ctx, id)
}

func (r *CastMemberRepository) Update(ctx context.Context, m *model.CastMember) error {
	return r.s.update(ctx, m)
}

func (r *CastMemberRepository) List(ctx context.Context) ([]*model.CastMember, error) {
	return r.s.list(ctx)
}

// GenreRepository is an in-memory repository.GenreRepository.
type GenreRepository struct {
	s *store[*model.Genre]
}

var _ repository.GenreRepository = (*GenreRepository)(nil)

func NewGenreRepository() *GenreRepository {
	return &GenreRepository{s: newStore(func(g *model.Genre) *model.Genre {
		cp := *g
		cp.Entity = model.NewEntity(g.ID)
		cp.Categories = g.Categories.Clone()
		return &cp
	})}
}

func (r *GenreRepository) Save(ctx context.Context, g *model.Genre) error {
	return r.s.save(ctx, g)
}

func (r *GenreRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Genre, error) {
	return r.s.get(ctx, id)
}

func (r *GenreRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.s.delete(ctx, id)
}

func (r *GenreRepository) Update(ctx context.Context, g *model.Genre) error {
	return r.s.update(ctx, g)
}

func (r *GenreRepository) List(ctx context.Context) ([]*model.Genre, error) {
	return r.s.list(ctx)
}

// VideoRepository is an in-memory repository.VideoRepository.
type VideoRepository struct {
	s *store[*model.Video]
}

var _ repository.VideoRepository = (*VideoRepository)(nil)

func NewVideoRepository() *VideoRepository {
	return &VideoRepository{s: newStore(cloneVideo)}
}

func (r *VideoRepository) Save(ctx context.Context, v *model.Video) error {
	return r.s.save(ctx, v)
}

func (r *VideoRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Video, error) {
	return r.s.get(ctx, id)
}

func (r *VideoRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.s.delete(ctx, id)
}

func (r *VideoRepository) Update(ctx context.Context, v *model.Video) error {
	return r.s.update(ctx, v)
}

func (r *VideoRepository) List(ctx context.Context) ([]*model.Video, error) {
	return r.s.list(ctx)
}

func cloneVideo(v *model.Video) *model.Video {
	cp := *v
	cp.Entity = model.NewEntity(v.ID)
	cp.Categories = v.Categories.Clone()
	cp.Genres = v.Genres.Clone()
	cp.CastMembers = v.CastMembers.Clone()
	cp.Banner = clonePtr(v.Banner)
	cp.Thumbnail = clonePtr(v.Thumbnail)
	cp.ThumbnailHalf = clonePtr(v.ThumbnailHalf)
	cp.Trailer = clonePtr(v.Trailer)
	cp.Video = clonePtr(v.Video)
	return &cp
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	cp := *p
	return &cp
}
