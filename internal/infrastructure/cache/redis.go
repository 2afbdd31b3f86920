package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"

	"github.com/hszk-dev/catalog/internal/domain/model"
	"github.com/hszk-dev/catalog/internal/infrastructure/metrics"
)

const (
	// videoCacheKeyPrefix is the prefix for video cache keys in Redis.
	videoCacheKeyPrefix = "video:"
)

// videoJSON is the JSON representation of a Video for caching.
// Using explicit struct avoids coupling to domain model's JSON tags.
type videoJSON struct {
	ID            string          `json:"id"`
	Title         string          `json:"title"`
	Description   string          `json:"description"`
	LaunchYear    int             `json:"launch_year"`
	Duration      decimal.Decimal `json:"duration"`
	Published     bool            `json:"published"`
	Rating        string          `json:"rating"`
	Categories    []uuid.UUID     `json:"categories"`
	Genres        []uuid.UUID     `json:"genres"`
	CastMembers   []uuid.UUID     `json:"cast_members"`
	Banner        *imageJSON      `json:"banner,omitempty"`
	Thumbnail     *imageJSON      `json:"thumbnail,omitempty"`
	ThumbnailHalf *imageJSON      `json:"thumbnail_half,omitempty"`
	Trailer       *audioVideoJSON `json:"trailer,omitempty"`
	Video         *audioVideoJSON `json:"video,omitempty"`
}

type imageJSON struct {
	Name      string `json:"name"`
	Location  string `json:"location"`
	ImageType string `json:"image_type"`
	CheckSum  string `json:"check_sum"`
}

type audioVideoJSON struct {
	Name            string `json:"name"`
	RawLocation     string `json:"raw_location"`
	EncodedLocation string `json:"encoded_location"`
	Status          string `json:"status"`
	MediaType       string `json:"media_type"`
	CheckSum        string `json:"check_sum"`
}

// RedisVideoCache implements VideoCache using Redis as the backing store.
type RedisVideoCache struct {
	client *redis.Client
}

var _ VideoCache = (*RedisVideoCache)(nil)

// NewRedisVideoCache creates a new Redis-backed video cache.
func NewRedisVideoCache(client *redis.Client) *RedisVideoCache {
	return &RedisVideoCache{
		client: client,
	}
}

// Get retrieves a video from Redis cache.
// Returns nil, nil on cache miss.
func (c *RedisVideoCache) Get(ctx context.Context, videoID uuid.UUID) (*model.Video, error) {
	key := c.buildKey(videoID)

	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			record(metrics.CacheOpGet, metrics.CacheStatusMiss)
			return nil, nil
		}
		record(metrics.CacheOpGet, metrics.CacheStatusError)
		return nil, fmt.Errorf("redis get: %w", err)
	}

	video, err := c.deserialize(data)
	if err != nil {
		record(metrics.CacheOpGet, metrics.CacheStatusError)
		return nil, fmt.Errorf("deserialize video: %w", err)
	}

	record(metrics.CacheOpGet, metrics.CacheStatusHit)
	return video, nil
}

// Set stores a video in Redis cache with the specified TTL.
func (c *RedisVideoCache) Set(ctx context.Context, video *model.Video, ttl time.Duration) error {
	key := c.buildKey(video.ID)

	data, err := c.serialize(video)
	if err != nil {
		record(metrics.CacheOpSet, metrics.CacheStatusError)
		return fmt.Errorf("serialize video: %w", err)
	}

	if err := c.client.Set(ctx, key, data, ttl).Err(); err != nil {
		record(metrics.CacheOpSet, metrics.CacheStatusError)
		return fmt.Errorf("redis set: %w", err)
	}

	record(metrics.CacheOpSet, metrics.CacheStatusSuccess)
	return nil
}

// Delete removes a video from Redis cache.
func (c *RedisVideoCache) Delete(ctx context.Context, videoID uuid.UUID) error {
	key := c.buildKey(videoID)

	if err := c.client.Del(ctx, key).Err(); err != nil {
		record(metrics.CacheOpDelete, metrics.CacheStatusError)
		return fmt.Errorf("redis del: %w", err)
	}

	record(metrics.CacheOpDelete, metrics.CacheStatusSuccess)
	return nil
}

// buildKey constructs the Redis key for a video.
func (c *RedisVideoCache) buildKey(videoID uuid.UUID) string {
	return videoCacheKeyPrefix + videoID.String()
}

func record(op, status string) {
	metrics.CacheOperationsTotal.WithLabelValues(op, status, metrics.CacheTypeRedis).Inc()
}

// serialize converts a Video to JSON bytes.
func (c *RedisVideoCache) serialize(video *model.Video) ([]byte, error) {
	v := videoJSON{
		ID:            video.ID.String(),
		Title:         video.Title,
		Description:   video.Description,
		LaunchYear:    video.LaunchYear,
		Duration:      video.Duration,
		Published:     video.Published,
		Rating:        string(video.Rating),
		Categories:    video.Categories.Slice(),
		Genres:        video.Genres.Slice(),
		CastMembers:   video.CastMembers.Slice(),
		Banner:        toImageJSON(video.Banner),
		Thumbnail:     toImageJSON(video.Thumbnail),
		ThumbnailHalf: toImageJSON(video.ThumbnailHalf),
		Trailer:       toAudioVideoJSON(video.Trailer),
		Video:         toAudioVideoJSON(video.Video),
	}
	return json.Marshal(v)
}

// deserialize converts JSON bytes to a Video.
func (c *RedisVideoCache) deserialize(data []byte) (*model.Video, error) {
	var v videoJSON
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, err
	}

	id, err := uuid.Parse(v.ID)
	if err != nil {
		return nil, fmt.Errorf("parse video ID: %w", err)
	}

	return &model.Video{
		Entity: model.NewEntity(id),
		VideoDetails: model.VideoDetails{
			Title:       v.Title,
			Description: v.Description,
			LaunchYear:  v.LaunchYear,
			Duration:    v.Duration,
			Published:   v.Published,
			Rating:      model.Rating(v.Rating),
		},
		Categories:    model.NewIDSet(v.Categories...),
		Genres:        model.NewIDSet(v.Genres...),
		CastMembers:   model.NewIDSet(v.CastMembers...),
		Banner:        fromImageJSON(v.Banner),
		Thumbnail:     fromImageJSON(v.Thumbnail),
		ThumbnailHalf: fromImageJSON(v.ThumbnailHalf),
		Trailer:       fromAudioVideoJSON(v.Trailer),
		Video:         fromAudioVideoJSON(v.Video),
	}, nil
}

func toImageJSON(m *model.ImageMedia) *imageJSON {
	if m == nil {
		return nil
	}
	return &imageJSON{
		Name:      m.Name,
		Location:  m.Location,
		ImageType: string(m.ImageType),
		CheckSum:  m.CheckSum,
	}
}

func fromImageJSON(j *imageJSON) *model.ImageMedia {
	if j == nil {
		return nil
	}
	return &model.ImageMedia{
		Name:      j.Name,
		Location:  j.Location,
		ImageType: model.ImageType(j.ImageType),
		CheckSum:  j.CheckSum,
	}
}

func toAudioVideoJSON(m *model.AudioVideoMedia) *audioVideoJSON {
	if m == nil {
		return nil
	}
	return &audioVideoJSON{
		Name:            m.Name,
		RawLocation:     m.RawLocation,
		EncodedLocation: m.EncodedLocation,
		Status:          string(m.Status),
		MediaType:       string(m.MediaType),
		CheckSum:        m.CheckSum,
	}
}

func fromAudioVideoJSON(j *audioVideoJSON) *model.AudioVideoMedia {
	if j == nil {
		return nil
	}
	return &model.AudioVideoMedia{
		Name:            j.Name,
		RawLocation:     j.RawLocation,
		EncodedLocation: j.EncodedLocation,
		Status:          model.MediaStatus(j.Status),
		MediaType:       model.MediaType(j.MediaType),
		CheckSum:        j.CheckSum,
	}
}
