package model

import "strings"

// Rating is the content rating of a Video.
type Rating string

const (
	RatingER    Rating = "ER"
	RatingL     Rating = "L"
	RatingAge10 Rating = "AGE_10"
	RatingAge12 Rating = "AGE_12"
	RatingAge14 Rating = "AGE_14"
	RatingAge16 Rating = "AGE_16"
	RatingAge18 Rating = "AGE_18"
)

var ratings = []Rating{RatingER, RatingL, RatingAge10, RatingAge12, RatingAge14, RatingAge16, RatingAge18}

func (r Rating) IsValid() bool {
	for _, v := range ratings {
		if r == v {
			return true
		}
	}
	return false
}

func (r Rating) String() string {
	return string(r)
}

// MediaStatus is the encoding state of an AudioVideoMedia.
type MediaStatus string

const (
	MediaStatusPending    MediaStatus = "PENDING"
	MediaStatusProcessing MediaStatus = "PROCESSING"
	MediaStatusCompleted  MediaStatus = "COMPLETED"
	MediaStatusError      MediaStatus = "ERROR"
)

func (s MediaStatus) IsValid() bool {
	switch s {
	case MediaStatusPending, MediaStatusProcessing, MediaStatusCompleted, MediaStatusError:
		return true
	default:
		return false
	}
}

func (s MediaStatus) String() string {
	return string(s)
}

// MediaType identifies which audio/video slot of a Video a media belongs to.
type MediaType string

const (
	MediaTypeVideo   MediaType = "VIDEO"
	MediaTypeTrailer MediaType = "TRAILER"
)

func (t MediaType) IsValid() bool {
	return t == MediaTypeVideo || t == MediaTypeTrailer
}

func (t MediaType) String() string {
	return string(t)
}

// ImageType identifies which image slot of a Video an image belongs to.
type ImageType string

const (
	ImageTypeBanner        ImageType = "BANNER"
	ImageTypeThumbnail     ImageType = "THUMBNAIL"
	ImageTypeThumbnailHalf ImageType = "THUMBNAIL_HALF"
)

func (t ImageType) IsValid() bool {
	switch t {
	case ImageTypeBanner, ImageTypeThumbnail, ImageTypeThumbnailHalf:
		return true
	default:
		return false
	}
}

func (t ImageType) String() string {
	return string(t)
}

// ParseImageType accepts the type name case-insensitively.
func ParseImageType(s string) (ImageType, bool) {
	t := ImageType(strings.ToUpper(strings.TrimSpace(s)))
	return t, t.IsValid()
}

// ImageMedia is an immutable reference to a stored image.
type ImageMedia struct {
	Name      string
	Location  string
	ImageType ImageType
	CheckSum  string
}

// AudioVideoMedia is an immutable reference to a raw upload and its encoded output.
type AudioVideoMedia struct {
	Name            string
	RawLocation     string
	EncodedLocation string
	Status          MediaStatus
	MediaType       MediaType
	CheckSum        string
}

// CompleteEncoding returns a copy marked COMPLETED at encodedLocation.
func (m AudioVideoMedia) CompleteEncoding(encodedLocation string) AudioVideoMedia {
	m.EncodedLocation = encodedLocation
	m.Status = MediaStatusCompleted
	return m
}

// FailEncoding returns a copy marked ERROR.
func (m AudioVideoMedia) FailEncoding() AudioVideoMedia {
	m.Status = MediaStatusError
	return m
}
