package model

import (
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Durations are stored as NUMERIC(10, 2).
var durationLimit = decimal.New(1, 8)

// VideoDetails holds the descriptive, non-media attributes of a Video.
type VideoDetails struct {
	Title       string
	Description string
	LaunchYear  int
	Duration    decimal.Decimal
	Published   bool
	Rating      Rating
}

// Video is the catalog entry for a playable title and its media.
// Referenced categories, genres and cast members are validated by the caller.
type Video struct {
	Entity
	VideoDetails

	Categories  IDSet
	Genres      IDSet
	CastMembers IDSet

	Banner        *ImageMedia
	Thumbnail     *ImageMedia
	ThumbnailHalf *ImageMedia
	Trailer       *AudioVideoMedia
	Video         *AudioVideoMedia
}

var _ Aggregate = (*Video)(nil)

// NewVideo creates an unpublished Video without media.
// A uuid.Nil id is replaced by a generated one.
func NewVideo(id uuid.UUID, details VideoDetails, categories, genres, castMembers IDSet) (*Video, error) {
	details.Published = false
	v := &Video{
		Entity:       NewEntity(id),
		VideoDetails: details,
		Categories:   categories.Clone(),
		Genres:       genres.Clone(),
		CastMembers:  castMembers.Clone(),
	}
	if err := v.Validate(); err != nil {
		return nil, err
	}
	return v, nil
}

func (v *Video) Validate() error {
	n := NewNotification()
	if v.Title == "" {
		n.AddError("Title cannot be empty")
	}
	if utf8.RuneCountInString(v.Title) > maxNameLength {
		n.AddError("Title must have less than 256 characters")
	}
	if !v.Rating.IsValid() {
		n.AddError("Rating must be one of ER, L, AGE_10, AGE_12, AGE_14, AGE_16, AGE_18")
	}
	if v.Duration.IsNegative() {
		n.AddError("Duration cannot be negative")
	}
	if !v.Duration.Equal(v.Duration.Round(2)) {
		n.AddError("Duration must have at most 2 decimal places")
	}
	if v.Duration.GreaterThanOrEqual(durationLimit) {
		n.AddError("Duration must be less than 100000000")
	}
	return n.Err()
}

// Update replaces the descriptive attributes.
func (v *Video) Update(details VideoDetails) error {
	return v.apply(func(next *Video) { next.VideoDetails = details })
}

func (v *Video) AddCategories(ids IDSet) { v.Categories = union(v.Categories, ids) }
func (v *Video) AddGenres(ids IDSet)     { v.Genres = union(v.Genres, ids) }
func (v *Video) AddCastMembers(ids IDSet) {
	v.CastMembers = union(v.CastMembers, ids)
}

func (v *Video) RemoveCategories(ids IDSet)  { v.Categories = v.Categories.Difference(ids) }
func (v *Video) RemoveGenres(ids IDSet)      { v.Genres = v.Genres.Difference(ids) }
func (v *Video) RemoveCastMembers(ids IDSet) { v.CastMembers = v.CastMembers.Difference(ids) }

func (v *Video) UpdateBanner(m ImageMedia) error {
	return v.apply(func(next *Video) { next.Banner = &m })
}

func (v *Video) UpdateThumbnail(m ImageMedia) error {
	return v.apply(func(next *Video) { next.Thumbnail = &m })
}

func (v *Video) UpdateThumbnailHalf(m ImageMedia) error {
	return v.apply(func(next *Video) { next.ThumbnailHalf = &m })
}

// UpdateImage routes m to the slot named by its ImageType.
func (v *Video) UpdateImage(m ImageMedia) error {
	switch m.ImageType {
	case ImageTypeBanner:
		return v.UpdateBanner(m)
	case ImageTypeThumbnail:
		return v.UpdateThumbnail(m)
	case ImageTypeThumbnailHalf:
		return v.UpdateThumbnailHalf(m)
	default:
		return &ValidationError{Messages: []string{"Image type must be one of BANNER, THUMBNAIL, THUMBNAIL_HALF"}}
	}
}

func (v *Video) UpdateTrailer(m AudioVideoMedia) error {
	return v.apply(func(next *Video) { next.Trailer = &m })
}

// UpdateVideoMedia replaces the main media and records an AudioVideoMediaUpdated event.
func (v *Video) UpdateVideoMedia(m AudioVideoMedia) error {
	if err := v.apply(func(next *Video) { next.Video = &m }); err != nil {
		return err
	}
	v.record(AudioVideoMediaUpdated{
		AggregateID: v.ID,
		FilePath:    m.RawLocation,
		MediaType:   m.MediaType,
	})
	return nil
}

// ProcessMedia applies an encoder result to the media slot named by mediaType.
// COMPLETED stores encodedLocation; any other status marks the media as failed.
// The slot must be populated; ok is false otherwise.
func (v *Video) ProcessMedia(mediaType MediaType, status MediaStatus, encodedLocation string) (ok bool, err error) {
	var current *AudioVideoMedia
	switch mediaType {
	case MediaTypeVideo:
		current = v.Video
	case MediaTypeTrailer:
		current = v.Trailer
	}
	if current == nil {
		return false, nil
	}

	var processed AudioVideoMedia
	if status == MediaStatusCompleted {
		processed = current.CompleteEncoding(encodedLocation)
	} else {
		processed = current.FailEncoding()
	}

	return true, v.apply(func(next *Video) {
		if mediaType == MediaTypeVideo {
			next.Video = &processed
		} else {
			next.Trailer = &processed
		}
	})
}

func (v *Video) apply(mutate func(next *Video)) error {
	next := *v
	mutate(&next)
	if err := next.Validate(); err != nil {
		return err
	}
	*v = next
	return nil
}

func union(a, b IDSet) IDSet {
	out := a.Clone()
	for id := range b {
		out[id] = struct{}{}
	}
	return out
}
