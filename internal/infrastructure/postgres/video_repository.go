package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/hszk-dev/catalog/internal/domain/model"
	"github.com/hszk-dev/catalog/internal/domain/repository"
	"github.com/hszk-dev/catalog/internal/infrastructure/metrics"
)

// VideoRepository implements repository.VideoRepository using PostgreSQL.
// Reference sets are uuid[] columns; media value objects are JSONB columns
// that are NULL while the slot is empty.
type VideoRepository struct {
	db DBTX
}

// NewVideoRepository creates a new VideoRepository instance.
func NewVideoRepository(db DBTX) *VideoRepository {
	return &VideoRepository{db: db}
}

const videoColumns = `id, title, description, launch_year, duration::text, published, rating,
		category_ids, genre_ids, cast_member_ids,
		banner, thumbnail, thumbnail_half, trailer, video`

// Save persists a new video entity.
func (r *VideoRepository) Save(ctx context.Context, video *model.Video) error {
	const query = `
		INSERT INTO videos (id, title, description, launch_year, duration, published, rating,
			category_ids, genre_ids, cast_member_ids,
			banner, thumbnail, thumbnail_half, trailer, video)
		VALUES ($1, $2, $3, $4, $5::text::numeric, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
	`

	args, err := videoArgs(video)
	if err != nil {
		return err
	}

	countQuery(metrics.DBQueryInsert, metrics.TableVideos)
	if _, err := r.db.Exec(ctx, query, args...); err != nil {
		if isUniqueViolation(err) {
			return repository.ErrDuplicate
		}
		return fmt.Errorf("failed to create video: %w", err)
	}

	return nil
}

// GetByID retrieves a video by its unique identifier.
func (r *VideoRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Video, error) {
	query := `SELECT ` + videoColumns + ` FROM videos WHERE id = $1`

	countQuery(metrics.DBQuerySelect, metrics.TableVideos)
	video, err := scanVideo(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get video by ID: %w", err)
	}

	return video, nil
}

func (r *VideoRepository) Delete(ctx context.Context, id uuid.UUID) error {
	const query = `DELETE FROM videos WHERE id = $1`

	countQuery(metrics.DBQueryDelete, metrics.TableVideos)
	if err := execAffectingOne(ctx, r.db, query, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return err
		}
		return fmt.Errorf("failed to delete video: %w", err)
	}

	return nil
}

// Update persists changes to an existing video entity.
func (r *VideoRepository) Update(ctx context.Context, video *model.Video) error {
	const query = `
		UPDATE videos
		SET title = $2, description = $3, launch_year = $4, duration = $5::text::numeric,
			published = $6, rating = $7,
			category_ids = $8, genre_ids = $9, cast_member_ids = $10,
			banner = $11, thumbnail = $12, thumbnail_half = $13, trailer = $14, video = $15
		WHERE id = $1
	`

	args, err := videoArgs(video)
	if err != nil {
		return err
	}

	countQuery(metrics.DBQueryUpdate, metrics.TableVideos)
	if err := execAffectingOne(ctx, r.db, query, args...); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return err
		}
		return fmt.Errorf("failed to update video: %w", err)
	}

	return nil
}

func (r *VideoRepository) List(ctx context.Context) ([]*model.Video, error) {
	query := `SELECT ` + videoColumns + ` FROM videos`

	countQuery(metrics.DBQuerySelect, metrics.TableVideos)
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query videos: %w", err)
	}
	defer rows.Close()

	videos := []*model.Video{}
	for rows.Next() {
		video, err := scanVideo(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan video: %w", err)
		}
		videos = append(videos, video)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating videos: %w", err)
	}

	return videos, nil
}

func videoArgs(v *model.Video) ([]any, error) {
	media := []any{v.Banner, v.Thumbnail, v.ThumbnailHalf, v.Trailer, v.Video}
	encoded := make([]any, len(media))
	for i, m := range media {
		b, err := mediaJSON(m)
		if err != nil {
			return nil, fmt.Errorf("failed to encode video media: %w", err)
		}
		encoded[i] = b
	}

	args := []any{
		v.ID,
		v.Title,
		v.Description,
		v.LaunchYear,
		v.Duration.String(),
		v.Published,
		v.Rating.String(),
		v.Categories.Slice(),
		v.Genres.Slice(),
		v.CastMembers.Slice(),
	}
	return append(args, encoded...), nil
}

// mediaJSON returns nil for an empty slot so the column stays NULL.
func mediaJSON(m any) ([]byte, error) {
	switch m := m.(type) {
	case *model.ImageMedia:
		if m == nil {
			return nil, nil
		}
		return json.Marshal(imageRecord{
			Name:      m.Name,
			Location:  m.Location,
			ImageType: string(m.ImageType),
			CheckSum:  m.CheckSum,
		})
	case *model.AudioVideoMedia:
		if m == nil {
			return nil, nil
		}
		return json.Marshal(audioVideoRecord{
			Name:            m.Name,
			RawLocation:     m.RawLocation,
			EncodedLocation: m.EncodedLocation,
			Status:          string(m.Status),
			MediaType:       string(m.MediaType),
			CheckSum:        m.CheckSum,
		})
	default:
		return nil, fmt.Errorf("unsupported media %T", m)
	}
}

type imageRecord struct {
	Name      string `json:"name"`
	Location  string `json:"location"`
	ImageType string `json:"image_type"`
	CheckSum  string `json:"check_sum"`
}

type audioVideoRecord struct {
	Name            string `json:"name"`
	RawLocation     string `json:"raw_location"`
	EncodedLocation string `json:"encoded_location"`
	Status          string `json:"status"`
	MediaType       string `json:"media_type"`
	CheckSum        string `json:"check_sum"`
}

// scanVideo scans a single row into a Video model.
func scanVideo(row pgx.Row) (*model.Video, error) {
	var (
		id                                   uuid.UUID
		duration, rating                     string
		categoryIDs, genreIDs, castMemberIDs []uuid.UUID
		banner, thumbnail, thumbnailHalf     []byte
		trailer, main                        []byte
		video                                model.Video
	)

	err := row.Scan(
		&id,
		&video.Title,
		&video.Description,
		&video.LaunchYear,
		&duration,
		&video.Published,
		&rating,
		&categoryIDs,
		&genreIDs,
		&castMemberIDs,
		&banner,
		&thumbnail,
		&thumbnailHalf,
		&trailer,
		&main,
	)
	if err != nil {
		return nil, err
	}

	d, err := decimal.NewFromString(duration)
	if err != nil {
		return nil, fmt.Errorf("parse duration: %w", err)
	}

	video.Entity = model.NewEntity(id)
	video.Duration = d
	video.Rating = model.Rating(rating)
	video.Categories = model.NewIDSet(categoryIDs...)
	video.Genres = model.NewIDSet(genreIDs...)
	video.CastMembers = model.NewIDSet(castMemberIDs...)

	for _, slot := range []struct {
		data []byte
		dst  **model.ImageMedia
	}{
		{banner, &video.Banner},
		{thumbnail, &video.Thumbnail},
		{thumbnailHalf, &video.ThumbnailHalf},
	} {
		if *slot.dst, err = decodeImage(slot.data); err != nil {
			return nil, err
		}
	}
	if video.Trailer, err = decodeAudioVideo(trailer); err != nil {
		return nil, err
	}
	if video.Video, err = decodeAudioVideo(main); err != nil {
		return nil, err
	}

	return &video, nil
}

func decodeImage(data []byte) (*model.ImageMedia, error) {
	if data == nil {
		return nil, nil
	}
	var rec imageRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("decode image media: %w", err)
	}
	return &model.ImageMedia{
		Name:      rec.Name,
		Location:  rec.Location,
		ImageType: model.ImageType(rec.ImageType),
		CheckSum:  rec.CheckSum,
	}, nil
}

func decodeAudioVideo(data []byte) (*model.AudioVideoMedia, error) {
	if data == nil {
		return nil, nil
	}
	var rec audioVideoRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("decode audio video media: %w", err)
	}
	return &model.AudioVideoMedia{
		Name:            rec.Name,
		RawLocation:     rec.RawLocation,
		EncodedLocation: rec.EncodedLocation,
		Status:          model.MediaStatus(rec.Status),
		MediaType:       model.MediaType(rec.MediaType),
		CheckSum:        rec.CheckSum,
	}, nil
}

// Compile-time verification that VideoRepository implements repository.VideoRepository.
var _ repository.VideoRepository = (*VideoRepository)(nil)
