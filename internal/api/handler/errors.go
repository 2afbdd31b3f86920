package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/hszk-dev/catalog/internal/domain/model"
	"github.com/hszk-dev/catalog/internal/domain/repository"
	"github.com/hszk-dev/catalog/internal/usecase"
)

type errorMapping struct {
	err    error
	status int
	code   string
}

var serviceErrors = []errorMapping{
	{usecase.ErrCategoryNotFound, http.StatusNotFound, "category_not_found"},
	{usecase.ErrCastMemberNotFound, http.StatusNotFound, "cast_member_not_found"},
	{usecase.ErrGenreNotFound, http.StatusNotFound, "genre_not_found"},
	{usecase.ErrVideoNotFound, http.StatusNotFound, "video_not_found"},
	{usecase.ErrMediaNotFound, http.StatusNotFound, "media_not_found"},
	{usecase.ErrInvalidCategory, http.StatusBadRequest, "invalid_category"},
	{usecase.ErrInvalidCastMember, http.StatusBadRequest, "invalid_cast_member"},
	{usecase.ErrInvalidGenre, http.StatusBadRequest, "invalid_genre"},
	{usecase.ErrInvalidVideo, http.StatusBadRequest, "invalid_video"},
	{usecase.ErrRelatedCategoriesNotFound, http.StatusBadRequest, "related_categories_not_found"},
	{usecase.ErrRelatedEntitiesNotFound, http.StatusBadRequest, "related_entities_not_found"},
	{usecase.ErrInvalidOrderBy, http.StatusBadRequest, "invalid_order_by"},
	{model.ErrCategoryNotInGenre, http.StatusBadRequest, "category_not_in_genre"},
	{repository.ErrDuplicate, http.StatusConflict, "duplicate"},
}

// handleServiceError maps use case errors to HTTP responses.
// The message carries the wrapped detail, e.g. the missing ids or validation messages.
func handleServiceError(w http.ResponseWriter, r *http.Request, err error) {
	for _, m := range serviceErrors {
		if errors.Is(err, m.err) {
			Error(w, m.status, m.code, err.Error())
			return
		}
	}

	slog.ErrorContext(r.Context(), "unhandled service error",
		slog.String("method", r.Method),
		slog.String("path", r.URL.Path),
		slog.Any("error", err),
	)
	Error(w, http.StatusInternalServerError, "internal_error", "An unexpected error occurred")
}
