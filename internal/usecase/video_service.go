package usecase

import (
	"cmp"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/hszk-dev/catalog/internal/domain/model"
	"github.com/hszk-dev/catalog/internal/domain/repository"
	"github.com/hszk-dev/catalog/internal/messagebus"
)

// CreateVideoInput contains the input parameters for creating a video without media.
type CreateVideoInput struct {
	Title       string
	Description string
	LaunchYear  int
	Duration    decimal.Decimal
	Rating      model.Rating
	Categories  model.IDSet
	Genres      model.IDSet
	CastMembers model.IDSet
}

// UpdateVideoInput replaces the descriptive attributes and reference sets of a video.
type UpdateVideoInput struct {
	ID          uuid.UUID
	Title       string
	Description string
	LaunchYear  int
	Duration    decimal.Decimal
	Rating      model.Rating
	Published   bool
	Categories  model.IDSet
	Genres      model.IDSet
	CastMembers model.IDSet
}

// UploadVideoInput carries the raw bytes of a video's main media.
type UploadVideoInput struct {
	VideoID     uuid.UUID
	FileName    string
	Content     []byte
	ContentType string
}

// UploadImageInput carries the raw bytes of one of a video's images.
type UploadImageInput struct {
	VideoID     uuid.UUID
	ImageType   model.ImageType
	FileName    string
	Content     []byte
	ContentType string
}

// ProcessMediaInput is the encoder's result for one media slot of a video.
type ProcessMediaInput struct {
	VideoID         uuid.UUID
	EncodedLocation string
	Status          model.MediaStatus
	MediaType       model.MediaType
}

// VideoService defines the video use cases.
type VideoService interface {
	// CreateVideoWithoutMedia checks every referenced category, genre and cast
	// member and reports all missing ids in one ErrRelatedEntitiesNotFound.
	CreateVideoWithoutMedia(ctx context.Context, input CreateVideoInput) (*model.Video, error)

	// UpdateVideoWithoutMedia checks the reference sets the same way as create.
	UpdateVideoWithoutMedia(ctx context.Context, input UpdateVideoInput) error

	// UploadVideo stores the file at videos/<id>/<file_name> and sets the
	// video's media to PENDING. The resulting domain events reach the message bus.
	UploadVideo(ctx context.Context, input UploadVideoInput) error

	// UploadImage stores the file at images/<id>/<file_name> in the slot named by ImageType.
	UploadImage(ctx context.Context, input UploadImageInput) error

	// ProcessAudioVideoMedia applies an encoder result. The addressed media
	// must have been uploaded, otherwise ErrMediaNotFound is returned.
	ProcessAudioVideoMedia(ctx context.Context, input ProcessMediaInput) error

	GetVideo(ctx context.Context, id uuid.UUID) (*model.Video, error)
	DeleteVideo(ctx context.Context, id uuid.UUID) error
	ListVideos(ctx context.Context, input ListInput) (*ListOutput[*model.Video], error)
}

type videoService struct {
	repo           repository.VideoRepository
	categoryRepo   repository.CategoryRepository
	genreRepo      repository.GenreRepository
	castMemberRepo repository.CastMemberRepository
	storage        repository.ObjectStorage
	bus            messagebus.Bus

	pageSize int
}

// VideoServiceDeps groups the collaborators of VideoService.
type VideoServiceDeps struct {
	Videos      repository.VideoRepository
	Categories  repository.CategoryRepository
	Genres      repository.GenreRepository
	CastMembers repository.CastMemberRepository
	Storage     repository.ObjectStorage
	Bus         messagebus.Bus
}

// NewVideoService creates a new VideoService instance.
func NewVideoService(deps VideoServiceDeps, cfg Config) VideoService {
	return &videoService{
		repo:           deps.Videos,
		categoryRepo:   deps.Categories,
		genreRepo:      deps.Genres,
		castMemberRepo: deps.CastMembers,
		storage:        deps.Storage,
		bus:            deps.Bus,
		pageSize:       cfg.pageSize(),
	}
}

func (s *videoService) CreateVideoWithoutMedia(ctx context.Context, input CreateVideoInput) (*model.Video, error) {
	if err := s.checkReferences(ctx, input.Categories, input.Genres, input.CastMembers); err != nil {
		return nil, err
	}

	video, err := model.NewVideo(uuid.Nil, model.VideoDetails{
		Title:       input.Title,
		Description: input.Description,
		LaunchYear:  input.LaunchYear,
		Duration:    input.Duration,
		Rating:      input.Rating,
	}, input.Categories, input.Genres, input.CastMembers)
	if err != nil {
		return nil, invalid(ErrInvalidVideo, err)
	}

	if err := s.repo.Save(ctx, video); err != nil {
		return nil, fmt.Errorf("save video: %w", err)
	}
	return video, nil
}

func (s *videoService) UpdateVideoWithoutMedia(ctx context.Context, input UpdateVideoInput) error {
	video, err := s.repo.GetByID(ctx, input.ID)
	if err != nil {
		return lookupError(err, ErrVideoNotFound, input.ID)
	}

	if err := s.checkReferences(ctx, input.Categories, input.Genres, input.CastMembers); err != nil {
		return err
	}

	if err := video.Update(model.VideoDetails{
		Title:       input.Title,
		Description: input.Description,
		LaunchYear:  input.LaunchYear,
		Duration:    input.Duration,
		Rating:      input.Rating,
		Published:   input.Published,
	}); err != nil {
		return invalid(ErrInvalidVideo, err)
	}

	video.RemoveCategories(video.Categories.Difference(input.Categories))
	video.AddCategories(input.Categories)
	video.RemoveGenres(video.Genres.Difference(input.Genres))
	video.AddGenres(input.Genres)
	video.RemoveCastMembers(video.CastMembers.Difference(input.CastMembers))
	video.AddCastMembers(input.CastMembers)

	if err := s.repo.Update(ctx, video); err != nil {
		return fmt.Errorf("update video: %w", err)
	}
	return nil
}

func (s *videoService) UploadVideo(ctx context.Context, input UploadVideoInput) error {
	video, err := s.repo.GetByID(ctx, input.VideoID)
	if err != nil {
		return lookupError(err, ErrVideoNotFound, input.VideoID)
	}
	if err := validateFileName(input.FileName); err != nil {
		return err
	}

	location := videoMediaPath(video.ID, input.FileName)
	if err := s.storage.Store(ctx, location, input.Content, input.ContentType); err != nil {
		return fmt.Errorf("store video media: %w", err)
	}

	if err := video.UpdateVideoMedia(model.AudioVideoMedia{
		Name:        input.FileName,
		RawLocation: location,
		Status:      model.MediaStatusPending,
		MediaType:   model.MediaTypeVideo,
		CheckSum:    checksum(input.Content),
	}); err != nil {
		return invalid(ErrInvalidVideo, err)
	}

	if err := s.repo.Update(ctx, video); err != nil {
		return fmt.Errorf("update video: %w", err)
	}

	s.bus.Handle(ctx, video.PullEvents())
	return nil
}

func (s *videoService) UploadImage(ctx context.Context, input UploadImageInput) error {
	video, err := s.repo.GetByID(ctx, input.VideoID)
	if err != nil {
		return lookupError(err, ErrVideoNotFound, input.VideoID)
	}
	if !input.ImageType.IsValid() {
		return fmt.Errorf("%w: unknown image type %q", ErrInvalidVideo, input.ImageType)
	}
	if err := validateFileName(input.FileName); err != nil {
		return err
	}

	location := imageMediaPath(video.ID, input.FileName)
	if err := s.storage.Store(ctx, location, input.Content, input.ContentType); err != nil {
		return fmt.Errorf("store image media: %w", err)
	}

	if err := video.UpdateImage(model.ImageMedia{
		Name:      input.FileName,
		Location:  location,
		ImageType: input.ImageType,
		CheckSum:  checksum(input.Content),
	}); err != nil {
		return invalid(ErrInvalidVideo, err)
	}

	if err := s.repo.Update(ctx, video); err != nil {
		return fmt.Errorf("update video: %w", err)
	}
	return nil
}

func (s *videoService) ProcessAudioVideoMedia(ctx context.Context, input ProcessMediaInput) error {
	video, err := s.repo.GetByID(ctx, input.VideoID)
	if err != nil {
		return lookupError(err, ErrVideoNotFound, input.VideoID)
	}

	ok, err := video.ProcessMedia(input.MediaType, input.Status, input.EncodedLocation)
	if err != nil {
		return invalid(ErrInvalidVideo, err)
	}
	if !ok {
		return fmt.Errorf("%w: video %s has no %s media", ErrMediaNotFound, video.ID, input.MediaType)
	}

	if err := s.repo.Update(ctx, video); err != nil {
		return fmt.Errorf("update video: %w", err)
	}
	return nil
}

func (s *videoService) GetVideo(ctx context.Context, id uuid.UUID) (*model.Video, error) {
	video, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, lookupError(err, ErrVideoNotFound, id)
	}
	return video, nil
}

func (s *videoService) DeleteVideo(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return lookupError(err, ErrVideoNotFound, id)
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete video: %w", err)
	}
	return nil
}

var videoOrderings = orderings[*model.Video]{
	"title":       func(a, b *model.Video) int { return strings.Compare(a.Title, b.Title) },
	"launch_year": func(a, b *model.Video) int { return cmp.Compare(a.LaunchYear, b.LaunchYear) },
	"duration":    func(a, b *model.Video) int { return a.Duration.Cmp(b.Duration) },
	"rating":      func(a, b *model.Video) int { return strings.Compare(string(a.Rating), string(b.Rating)) },
	"id":          func(a, b *model.Video) int { return strings.Compare(a.ID.String(), b.ID.String()) },
}

func (s *videoService) ListVideos(ctx context.Context, input ListInput) (*ListOutput[*model.Video], error) {
	videos, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list videos: %w", err)
	}
	return paginate(videos, videoOrderings, "title", input, s.pageSize)
}

func (s *videoService) checkReferences(ctx context.Context, categories, genres, castMembers model.IDSet) error {
	rc := newReferenceCheck()
	check(ctx, rc, "categories", categories, s.categoryRepo.List)
	check(ctx, rc, "genres", genres, s.genreRepo.List)
	check(ctx, rc, "cast members", castMembers, s.castMemberRepo.List)
	return rc.Err()
}

// videoMediaPath creates the storage key for a video's main media.
// Format: videos/{video_id}/{filename}
func videoMediaPath(videoID uuid.UUID, filename string) string {
	return "videos/" + videoID.String() + "/" + filename
}

// imageMediaPath creates the storage key for a video's images.
// Format: images/{video_id}/{filename}
func imageMediaPath(videoID uuid.UUID, filename string) string {
	return "images/" + videoID.String() + "/" + filename
}

// validateFileName accepts only a single path segment so the key stays under the video's prefix.
func validateFileName(name string) error {
	if name == "" || name == "." || name == ".." || strings.ContainsAny(name, `/\`) {
		return fmt.Errorf("%w: invalid file name %q", ErrInvalidVideo, name)
	}
	return nil
}

func checksum(content []byte) string {
	sum := sha256.Sum256(content)
	return hex.EncodeToString(sum[:])
}
