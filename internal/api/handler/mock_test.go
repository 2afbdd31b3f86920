package handler

import (
	"context"

	"github.com/google/uuid"

	"github.com/hszk-dev/catalog/internal/domain/model"
	"github.com/hszk-dev/catalog/internal/usecase"
)

type mockCategoryService struct {
	createFn func(ctx context.Context, input usecase.CreateCategoryInput) (*model.Category, error)
	updateFn func(ctx context.Context, input usecase.UpdateCategoryInput) error
	deleteFn func(ctx context.Context, id uuid.UUID) error
	getFn    func(ctx context.Context, id uuid.UUID) (*model.Category, error)
	listFn   func(ctx context.Context, input usecase.ListInput) (*usecase.ListOutput[*model.Category], error)
}

func (m *mockCategoryService) CreateCategory(ctx context.Context, input usecase.CreateCategoryInput) (*model.Category, error) {
	return m.createFn(ctx, input)
}

func (m *mockCategoryService) UpdateCategory(ctx context.Context, input usecase.UpdateCategoryInput) error {
	return m.updateFn(ctx, input)
}

func (m *mockCategoryService) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	return m.deleteFn(ctx, id)
}

func (m *mockCategoryService) GetCategory(ctx context.Context, id uuid.UUID) (*model.Category, error) {
	return m.getFn(ctx, id)
}

func (m *mockCategoryService) ListCategories(ctx context.Context, input usecase.ListInput) (*usecase.ListOutput[*model.Category], error) {
	return m.listFn(ctx, input)
}

type mockCastMemberService struct {
	createFn func(ctx context.Context, input usecase.CreateCastMemberInput) (*model.CastMember, error)
	updateFn func(ctx context.Context, input usecase.UpdateCastMemberInput) error
	deleteFn func(ctx context.Context, id uuid.UUID) error
	getFn    func(ctx context.Context, id uuid.UUID) (*model.CastMember, error)
	listFn   func(ctx context.Context, input usecase.ListInput) (*usecase.ListOutput[*model.CastMember], error)
}

func (m *mockCastMemberService) CreateCastMember(ctx context.Context, input usecase.CreateCastMemberInput) (*model.CastMember, error) {
	return m.createFn(ctx, input)
}

func (m *mockCastMemberService) UpdateCastMember(ctx context.Context, input usecase.UpdateCastMemberInput) error {
	return m.updateFn(ctx, input)
}

func (m *mockCastMemberService) DeleteCastMember(ctx context.Context, id uuid.UUID) error {
	return m.deleteFn(ctx, id)
}

func (m *mockCastMemberService) GetCastMember(ctx context.Context, id uuid.UUID) (*model.CastMember, error) {
	return m.getFn(ctx, id)
}

func (m *mockCastMemberService) ListCastMembers(ctx context.Context, input usecase.ListInput) (*usecase.ListOutput[*model.CastMember], error) {
	return m.listFn(ctx, input)
}

type mockGenreService struct {
	createFn func(ctx context.Context, input usecase.CreateGenreInput) (*model.Genre, error)
	updateFn func(ctx context.Context, input usecase.UpdateGenreInput) error
	deleteFn func(ctx context.Context, id uuid.UUID) error
	getFn    func(ctx context.Context, id uuid.UUID) (*model.Genre, error)
	listFn   func(ctx context.Context, input usecase.ListInput) (*usecase.ListOutput[*model.Genre], error)
}

func (m *mockGenreService) CreateGenre(ctx context.Context, input usecase.CreateGenreInput) (*model.Genre, error) {
	return m.createFn(ctx, input)
}

func (m *mockGenreService) UpdateGenre(ctx context.Context, input usecase.UpdateGenreInput) error {
	return m.updateFn(ctx, input)
}

func (m *mockGenreService) DeleteGenre(ctx context.Context, id uuid.UUID) error {
	return m.deleteFn(ctx, id)
}

func (m *mockGenreService) GetGenre(ctx context.Context, id uuid.UUID) (*model.Genre, error) {
	return m.getFn(ctx, id)
}

func (m *mockGenreService) ListGenres(ctx context.Context, input usecase.ListInput) (*usecase.ListOutput[*model.Genre], error) {
	return m.listFn(ctx, input)
}

type mockVideoService struct {
	createFn       func(ctx context.Context, input usecase.CreateVideoInput) (*model.Video, error)
	updateFn       func(ctx context.Context, input usecase.UpdateVideoInput) error
	uploadVideoFn  func(ctx context.Context, input usecase.UploadVideoInput) error
	uploadImageFn  func(ctx context.Context, input usecase.UploadImageInput) error
	processMediaFn func(ctx context.Context, input usecase.ProcessMediaInput) error
	getFn          func(ctx context.Context, id uuid.UUID) (*model.Video, error)
	deleteFn       func(ctx context.Context, id uuid.UUID) error
	listFn         func(ctx context.Context, input usecase.ListInput) (*usecase.ListOutput[*model.Video], error)
}

func (m *mockVideoService) CreateVideoWithoutMedia(ctx context.Context, input usecase.CreateVideoInput) (*model.Video, error) {
	return m.createFn(ctx, input)
}

func (m *mockVideoService) UpdateVideoWithoutMedia(ctx context.Context, input usecase.UpdateVideoInput) error {
	return m.updateFn(ctx, input)
}

func (m *mockVideoService) UploadVideo(ctx context.Context, input usecase.UploadVideoInput) error {
	return m.uploadVideoFn(ctx, input)
}

func (m *mockVideoService) UploadImage(ctx context.Context, input usecase.UploadImageInput) error {
	return m.uploadImageFn(ctx, input)
}

func (m *mockVideoService) ProcessAudioVideoMedia(ctx context.Context, input usecase.ProcessMediaInput) error {
	return m.processMediaFn(ctx, input)
}

func (m *mockVideoService) GetVideo(ctx context.Context, id uuid.UUID) (*model.Video, error) {
	return m.getFn(ctx, id)
}

func (m *mockVideoService) DeleteVideo(ctx context.Context, id uuid.UUID) error {
	return m.deleteFn(ctx, id)
}

func (m *mockVideoService) ListVideos(ctx context.Context, input usecase.ListInput) (*usecase.ListOutput[*model.Video], error) {
	return m.listFn(ctx, input)
}
