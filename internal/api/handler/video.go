package handler

import (
	"errors"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/hszk-dev/catalog/internal/domain/model"
	"github.com/hszk-dev/catalog/internal/usecase"
)

// DefaultMaxUploadBytes bounds multipart uploads when no limit is configured.
const DefaultMaxUploadBytes = 1 << 30

// VideoRequest is the body of both create and update; Published is ignored on create.
type VideoRequest struct {
	Title       string          `json:"title"`
	Description string          `json:"description"`
	LaunchYear  int             `json:"launch_year"`
	Duration    decimal.Decimal `json:"duration"`
	Rating      string          `json:"rating"`
	Published   bool            `json:"published"`
	Categories  []uuid.UUID     `json:"categories"`
	Genres      []uuid.UUID     `json:"genres"`
	CastMembers []uuid.UUID     `json:"cast_members"`
}

type ImageMediaResponse struct {
	Name      string `json:"name"`
	Location  string `json:"location"`
	ImageType string `json:"image_type"`
	CheckSum  string `json:"check_sum"`
}

type AudioVideoMediaResponse struct {
	Name            string `json:"name"`
	RawLocation     string `json:"raw_location"`
	EncodedLocation string `json:"encoded_location,omitempty"`
	Status          string `json:"status"`
	MediaType       string `json:"media_type"`
	CheckSum        string `json:"check_sum"`
}

type VideoResponse struct {
	ID            string                   `json:"id"`
	Title         string                   `json:"title"`
	Description   string                   `json:"description"`
	LaunchYear    int                      `json:"launch_year"`
	Duration      decimal.Decimal          `json:"duration"`
	Published     bool                     `json:"published"`
	Rating        string                   `json:"rating"`
	Categories    []string                 `json:"categories"`
	Genres        []string                 `json:"genres"`
	CastMembers   []string                 `json:"cast_members"`
	Banner        *ImageMediaResponse      `json:"banner,omitempty"`
	Thumbnail     *ImageMediaResponse      `json:"thumbnail,omitempty"`
	ThumbnailHalf *ImageMediaResponse      `json:"thumbnail_half,omitempty"`
	Trailer       *AudioVideoMediaResponse `json:"trailer,omitempty"`
	Video         *AudioVideoMediaResponse `json:"video,omitempty"`
}

// VideoHandler handles video-related HTTP requests.
type VideoHandler struct {
	svc            usecase.VideoService
	maxUploadBytes int64
}

// NewVideoHandler creates a new VideoHandler. A non-positive maxUploadBytes
// falls back to DefaultMaxUploadBytes.
func NewVideoHandler(svc usecase.VideoService, maxUploadBytes int64) *VideoHandler {
	if maxUploadBytes <= 0 {
		maxUploadBytes = DefaultMaxUploadBytes
	}
	return &VideoHandler{svc: svc, maxUploadBytes: maxUploadBytes}
}

// Create handles POST /v1/videos
func (h *VideoHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req VideoRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	video, err := h.svc.CreateVideoWithoutMedia(r.Context(), usecase.CreateVideoInput{
		Title:       req.Title,
		Description: req.Description,
		LaunchYear:  req.LaunchYear,
		Duration:    req.Duration,
		Rating:      model.Rating(req.Rating),
		Categories:  model.NewIDSet(req.Categories...),
		Genres:      model.NewIDSet(req.Genres...),
		CastMembers: model.NewIDSet(req.CastMembers...),
	})
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	JSON(w, http.StatusCreated, toVideoResponse(video))
}

// Get handles GET /v1/videos/{id}
func (h *VideoHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	video, err := h.svc.GetVideo(r.Context(), id)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	JSON(w, http.StatusOK, toVideoResponse(video))
}

// List handles GET /v1/videos
func (h *VideoHandler) List(w http.ResponseWriter, r *http.Request) {
	input, ok := listInput(w, r)
	if !ok {
		return
	}

	out, err := h.svc.ListVideos(r.Context(), input)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	JSON(w, http.StatusOK, toListResponse(out, toVideoResponse))
}

// Update handles PUT /v1/videos/{id}
func (h *VideoHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req VideoRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	err := h.svc.UpdateVideoWithoutMedia(r.Context(), usecase.UpdateVideoInput{
		ID:          id,
		Title:       req.Title,
		Description: req.Description,
		LaunchYear:  req.LaunchYear,
		Duration:    req.Duration,
		Rating:      model.Rating(req.Rating),
		Published:   req.Published,
		Categories:  model.NewIDSet(req.Categories...),
		Genres:      model.NewIDSet(req.Genres...),
		CastMembers: model.NewIDSet(req.CastMembers...),
	})
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Delete handles DELETE /v1/videos/{id}
func (h *VideoHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.svc.DeleteVideo(r.Context(), id); err != nil {
		handleServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// UploadVideo handles POST /v1/videos/{id}/media with a multipart "video_file" field.
func (h *VideoHandler) UploadVideo(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	file, ok := h.readFile(w, r, "video_file")
	if !ok {
		return
	}

	err := h.svc.UploadVideo(r.Context(), usecase.UploadVideoInput{
		VideoID:     id,
		FileName:    file.name,
		Content:     file.content,
		ContentType: file.contentType,
	})
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusAccepted)
}

// UploadImage handles POST /v1/videos/{id}/images/{type} with a multipart "image_file" field.
func (h *VideoHandler) UploadImage(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	imageType, valid := model.ParseImageType(chi.URLParam(r, "type"))
	if !valid {
		Error(w, http.StatusBadRequest, "invalid_image_type", "Image type must be one of banner, thumbnail, thumbnail_half")
		return
	}

	file, ok := h.readFile(w, r, "image_file")
	if !ok {
		return
	}

	err := h.svc.UploadImage(r.Context(), usecase.UploadImageInput{
		VideoID:     id,
		ImageType:   imageType,
		FileName:    file.name,
		Content:     file.content,
		ContentType: file.contentType,
	})
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type uploadedFile struct {
	name        string
	content     []byte
	contentType string
}

// readFile reads a single multipart file field, writing a 400 or 413 on failure.
func (h *VideoHandler) readFile(w http.ResponseWriter, r *http.Request, field string) (uploadedFile, bool) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadBytes)

	file, header, err := r.FormFile(field)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			Error(w, http.StatusRequestEntityTooLarge, "file_too_large", "Uploaded file exceeds the size limit")
			return uploadedFile{}, false
		}
		Error(w, http.StatusBadRequest, "invalid_file", "Multipart field "+field+" is required")
		return uploadedFile{}, false
	}
	defer func(f multipart.File) { _ = f.Close() }(file)

	content, err := io.ReadAll(file)
	if err != nil {
		Error(w, http.StatusBadRequest, "invalid_file", "Failed to read uploaded file")
		return uploadedFile{}, false
	}

	return uploadedFile{
		name:        header.Filename,
		content:     content,
		contentType: header.Header.Get("Content-Type"),
	}, true
}

func toVideoResponse(v *model.Video) VideoResponse {
	return VideoResponse{
		ID:            v.ID.String(),
		Title:         v.Title,
		Description:   v.Description,
		LaunchYear:    v.LaunchYear,
		Duration:      v.Duration,
		Published:     v.Published,
		Rating:        v.Rating.String(),
		Categories:    idStrings(v.Categories),
		Genres:        idStrings(v.Genres),
		CastMembers:   idStrings(v.CastMembers),
		Banner:        toImageMediaResponse(v.Banner),
		Thumbnail:     toImageMediaResponse(v.Thumbnail),
		ThumbnailHalf: toImageMediaResponse(v.ThumbnailHalf),
		Trailer:       toAudioVideoMediaResponse(v.Trailer),
		Video:         toAudioVideoMediaResponse(v.Video),
	}
}

func toImageMediaResponse(m *model.ImageMedia) *ImageMediaResponse {
	if m == nil {
		return nil
	}
	return &ImageMediaResponse{
		Name:      m.Name,
		Location:  m.Location,
		ImageType: m.ImageType.String(),
		CheckSum:  m.CheckSum,
	}
}

func toAudioVideoMediaResponse(m *model.AudioVideoMedia) *AudioVideoMediaResponse {
	if m == nil {
		return nil
	}
	return &AudioVideoMediaResponse{
		Name:            m.Name,
		RawLocation:     m.RawLocation,
		EncodedLocation: m.EncodedLocation,
		Status:          m.Status.String(),
		MediaType:       m.MediaType.String(),
		CheckSum:        m.CheckSum,
	}
}
