package usecase

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/hszk-dev/catalog/internal/domain/model"
)

// mockCategoryRepository provides a configurable mock for CategoryRepository.
type mockCategoryRepository struct {
	saveFn    func(ctx context.Context, category *model.Category) error
	getByIDFn func(ctx context.Context, id uuid.UUID) (*model.Category, error)
	deleteFn  func(ctx context.Context, id uuid.UUID) error
	updateFn  func(ctx context.Context, category *model.Category) error
	listFn    func(ctx context.Context) ([]*model.Category, error)
}

func (m *mockCategoryRepository) Save(ctx context.Context, category *model.Category) error {
	if m.saveFn != nil {
		return m.saveFn(ctx, category)
	}
	return nil
}

func (m *mockCategoryRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Category, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, nil
}

func (m *mockCategoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}

func (m *mockCategoryRepository) Update(ctx context.Context, category *model.Category) error {
	if m.updateFn != nil {
		return m.updateFn(ctx, category)
	}
	return nil
}

func (m *mockCategoryRepository) List(ctx context.Context) ([]*model.Category, error) {
	if m.listFn != nil {
		return m.listFn(ctx)
	}
	return nil, nil
}

// mockCastMemberRepository provides a configurable mock for CastMemberRepository.
type mockCastMemberRepository struct {
	saveFn    func(ctx context.Context, member *model.CastMember) error
	getByIDFn func(ctx context.Context, id uuid.UUID) (*model.CastMember, error)
	deleteFn  func(ctx context.Context, id uuid.UUID) error
	updateFn  func(ctx context.Context, member *model.CastMember) error
	listFn    func(ctx context.Context) ([]*model.CastMember, error)
}

func (m *mockCastMemberRepository) Save(ctx context.Context, member *model.CastMember) error {
	if m.saveFn != nil {
		return m.saveFn(ctx, member)
	}
	return nil
}

func (m *mockCastMemberRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.CastMember, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, nil
}

func (m *mockCastMemberRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}

func (m *mockCastMemberRepository) Update(ctx context.Context, member *model.CastMember) error {
	if m.updateFn != nil {
		return m.updateFn(ctx, member)
	}
	return nil
}

func (m *mockCastMemberRepository) List(ctx context.Context) ([]*model.CastMember, error) {
	if m.listFn != nil {
		return m.listFn(ctx)
	}
	return nil, nil
}

// mockGenreRepository provides a configurable mock for GenreRepository.
type mockGenreRepository struct {
	saveFn    func(ctx context.Context, genre *model.Genre) error
	getByIDFn func(ctx context.Context, id uuid.UUID) (*model.Genre, error)
	deleteFn  func(ctx context.Context, id uuid.UUID) error
	updateFn  func(ctx context.Context, genre *model.Genre) error
	listFn    func(ctx context.Context) ([]*model.Genre, error)
}

func (m *mockGenreRepository) Save(ctx context.Context, genre *model.Genre) error {
	if m.saveFn != nil {
		return m.saveFn(ctx, genre)
	}
	return nil
}

func (m *mockGenreRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Genre, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, nil
}

func (m *mockGenreRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}

func (m *mockGenreRepository) Update(ctx context.Context, genre *model.Genre) error {
	if m.updateFn != nil {
		return m.updateFn(ctx, genre)
	}
	return nil
}

func (m *mockGenreRepository) List(ctx context.Context) ([]*model.Genre, error) {
	if m.listFn != nil {
		return m.listFn(ctx)
	}
	return nil, nil
}

// mockVideoRepository provides a configurable mock for VideoRepository.
type mockVideoRepository struct {
	saveFn    func(ctx context.Context, video *model.Video) error
	getByIDFn func(ctx context.Context, id uuid.UUID) (*model.Video, error)
	deleteFn  func(ctx context.Context, id uuid.UUID) error
	updateFn  func(ctx context.Context, video *model.Video) error
	listFn    func(ctx context.Context) ([]*model.Video, error)
}

func (m *mockVideoRepository) Save(ctx context.Context, video *model.Video) error {
	if m.saveFn != nil {
		return m.saveFn(ctx, video)
	}
	return nil
}

func (m *mockVideoRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Video, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, nil
}

func (m *mockVideoRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}

func (m *mockVideoRepository) Update(ctx context.Context, video *model.Video) error {
	if m.updateFn != nil {
		return m.updateFn(ctx, video)
	}
	return nil
}

func (m *mockVideoRepository) List(ctx context.Context) ([]*model.Video, error) {
	if m.listFn != nil {
		return m.listFn(ctx)
	}
	return nil, nil
}

// mockObjectStorage provides a configurable mock for ObjectStorage.
type mockObjectStorage struct {
	storeFn func(ctx context.Context, path string, content []byte, contentType string) error
}

func (m *mockObjectStorage) Store(ctx context.Context, path string, content []byte, contentType string) error {
	if m.storeFn != nil {
		return m.storeFn(ctx, path, content, contentType)
	}
	return nil
}

// recordingBus captures the events handed to the message bus.
type recordingBus struct {
	mu     sync.Mutex
	events []model.DomainEvent
}

func (b *recordingBus) Handle(_ context.Context, events []model.DomainEvent) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.events = append(b.events, events...)
}

func (b *recordingBus) handled() []model.DomainEvent {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]model.DomainEvent(nil), b.events...)
}
