package usecase

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"

	"github.com/hszk-dev/catalog/internal/domain/model"
	"github.com/hszk-dev/catalog/internal/infrastructure/cache"
	"github.com/hszk-dev/catalog/internal/infrastructure/metrics"
)

// CachedVideoServiceConfig holds configuration for CachedVideoService.
type CachedVideoServiceConfig struct {
	// CacheTTL is the TTL for cached videos.
	CacheTTL time.Duration
}

// DefaultCachedVideoServiceConfig returns the default configuration.
func DefaultCachedVideoServiceConfig() CachedVideoServiceConfig {
	return CachedVideoServiceConfig{
		CacheTTL: 5 * time.Minute,
	}
}

// cachedVideoService wraps VideoService with caching capabilities.
// It implements the decorator pattern to add caching without modifying the original service.
type cachedVideoService struct {
	delegate VideoService
	cache    cache.VideoCache
	sfGroup  singleflight.Group

	cacheTTL time.Duration
}

// NewCachedVideoService creates a new CachedVideoService wrapping the provided VideoService.
func NewCachedVideoService(
	delegate VideoService,
	videoCache cache.VideoCache,
	cfg CachedVideoServiceConfig,
) VideoService {
	return &cachedVideoService{
		delegate: delegate,
		cache:    videoCache,
		cacheTTL: cfg.CacheTTL,
	}
}

// CreateVideoWithoutMedia delegates to the underlying service.
// A new video cannot be cached yet, so there is nothing to invalidate.
func (s *cachedVideoService) CreateVideoWithoutMedia(ctx context.Context, input CreateVideoInput) (*model.Video, error) {
	return s.delegate.CreateVideoWithoutMedia(ctx, input)
}

func (s *cachedVideoService) UpdateVideoWithoutMedia(ctx context.Context, input UpdateVideoInput) error {
	defer s.invalidate(ctx, input.ID)
	return s.delegate.UpdateVideoWithoutMedia(ctx, input)
}

func (s *cachedVideoService) UploadVideo(ctx context.Context, input UploadVideoInput) error {
	defer s.invalidate(ctx, input.VideoID)
	return s.delegate.UploadVideo(ctx, input)
}

func (s *cachedVideoService) UploadImage(ctx context.Context, input UploadImageInput) error {
	defer s.invalidate(ctx, input.VideoID)
	return s.delegate.UploadImage(ctx, input)
}

func (s *cachedVideoService) ProcessAudioVideoMedia(ctx context.Context, input ProcessMediaInput) error {
	defer s.invalidate(ctx, input.VideoID)
	return s.delegate.ProcessAudioVideoMedia(ctx, input)
}

func (s *cachedVideoService) DeleteVideo(ctx context.Context, id uuid.UUID) error {
	defer s.invalidate(ctx, id)
	return s.delegate.DeleteVideo(ctx, id)
}

// ListVideos is not cached; pages change with every write.
func (s *cachedVideoService) ListVideos(ctx context.Context, input ListInput) (*ListOutput[*model.Video], error) {
	return s.delegate.ListVideos(ctx, input)
}

// GetVideo retrieves a video with caching.
// Uses singleflight to prevent cache stampede on concurrent requests for the same video.
func (s *cachedVideoService) GetVideo(ctx context.Context, videoID uuid.UUID) (*model.Video, error) {
	key := videoID.String()
	result, err, shared := s.sfGroup.Do(key, func() (any, error) {
		return s.getVideoWithCache(ctx, videoID)
	})

	if shared {
		metrics.SingleflightRequestsTotal.WithLabelValues(metrics.SingleflightShared).Inc()
	} else {
		metrics.SingleflightRequestsTotal.WithLabelValues(metrics.SingleflightInitiated).Inc()
	}

	if err != nil {
		return nil, err
	}

	return result.(*model.Video), nil
}

// getVideoWithCache implements the cache-aside pattern.
func (s *cachedVideoService) getVideoWithCache(ctx context.Context, videoID uuid.UUID) (*model.Video, error) {
	video, err := s.cache.Get(ctx, videoID)
	if err != nil {
		// Log cache error but continue to the repository
		slog.Warn("cache get failed, falling back to database",
			"video_id", videoID,
			"error", err,
		)
	}

	if video != nil {
		return video, nil
	}

	video, err = s.delegate.GetVideo(ctx, videoID)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(ctx, video, s.cacheTTL); err != nil {
		slog.Warn("failed to cache video",
			"video_id", videoID,
			"error", err,
		)
	}

	return video, nil
}

// invalidate runs after the delegate so a concurrent GetVideo cannot
// repopulate the entry with the pre-write state.
func (s *cachedVideoService) invalidate(ctx context.Context, videoID uuid.UUID) {
	if err := s.cache.Delete(ctx, videoID); err != nil {
		// cache invalidation failure is non-critical
		slog.Warn("failed to invalidate video cache",
			"video_id", videoID,
			"error", err,
		)
	}
}
