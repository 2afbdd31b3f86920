package handler

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/hszk-dev/catalog/internal/domain/model"
	"github.com/hszk-dev/catalog/internal/usecase"
)

type CreateGenreRequest struct {
	Name       string      `json:"name"`
	Categories []uuid.UUID `json:"categories"`
	IsActive   *bool       `json:"is_active"`
}

// UpdateGenreRequest replaces every attribute of the genre.
type UpdateGenreRequest struct {
	Name       string      `json:"name"`
	Categories []uuid.UUID `json:"categories"`
	IsActive   bool        `json:"is_active"`
}

type GenreResponse struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	IsActive   bool     `json:"is_active"`
	Categories []string `json:"categories"`
}

// GenreHandler handles genre HTTP requests.
type GenreHandler struct {
	svc usecase.GenreService
}

func NewGenreHandler(svc usecase.GenreService) *GenreHandler {
	return &GenreHandler{svc: svc}
}

// Create handles POST /v1/genres
func (h *GenreHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateGenreRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	genre, err := h.svc.CreateGenre(r.Context(), usecase.CreateGenreInput{
		Name:       req.Name,
		Categories: model.NewIDSet(req.Categories...),
		IsActive:   req.IsActive,
	})
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	JSON(w, http.StatusCreated, toGenreResponse(genre))
}

// Get handles GET /v1/genres/{id}
func (h *GenreHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	genre, err := h.svc.GetGenre(r.Context(), id)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	JSON(w, http.StatusOK, toGenreResponse(genre))
}

// List handles GET /v1/genres
func (h *GenreHandler) List(w http.ResponseWriter, r *http.Request) {
	input, ok := listInput(w, r)
	if !ok {
		return
	}

	out, err := h.svc.ListGenres(r.Context(), input)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	JSON(w, http.StatusOK, toListResponse(out, toGenreResponse))
}

// Update handles PUT /v1/genres/{id}
func (h *GenreHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req UpdateGenreRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	err := h.svc.UpdateGenre(r.Context(), usecase.UpdateGenreInput{
		ID:         id,
		Name:       req.Name,
		IsActive:   req.IsActive,
		Categories: model.NewIDSet(req.Categories...),
	})
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Delete handles DELETE /v1/genres/{id}
func (h *GenreHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.svc.DeleteGenre(r.Context(), id); err != nil {
		handleServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func toGenreResponse(g *model.Genre) GenreResponse {
	return GenreResponse{
		ID:         g.ID.String(),
		Name:       g.Name,
		IsActive:   g.IsActive,
		Categories: idStrings(g.Categories),
	}
}
