package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/hszk-dev/catalog/internal/domain/model"
	"github.com/hszk-dev/catalog/internal/usecase"
)

func JSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			http.Error(w, "failed to encode response", http.StatusInternalServerError)
		}
	}
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

func Error(w http.ResponseWriter, status int, err string, message string) {
	JSON(w, status, ErrorResponse{
		Error:   err,
		Message: message,
	})
}

// ListResponse is one page of a listing.
type ListResponse[T any] struct {
	Data []T                    `json:"data"`
	Meta usecase.ListOutputMeta `json:"meta"`
}

func toListResponse[T, R any](out *usecase.ListOutput[T], convert func(T) R) ListResponse[R] {
	data := make([]R, len(out.Data))
	for i, item := range out.Data {
		data[i] = convert(item)
	}
	return ListResponse[R]{Data: data, Meta: out.Meta}
}

// decodeJSON writes a 400 and returns false when the body is not valid JSON for dst.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		Error(w, http.StatusBadRequest, "invalid_request", "Invalid JSON body")
		return false
	}
	return true
}

// pathID parses the {id} URL parameter, writing a 400 on failure.
func pathID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		Error(w, http.StatusBadRequest, "invalid_id", "ID must be a valid UUID")
		return uuid.Nil, false
	}
	return id, true
}

// listInput reads ?order_by= and ?current_page= query parameters.
func listInput(w http.ResponseWriter, r *http.Request) (usecase.ListInput, bool) {
	input := usecase.ListInput{OrderBy: r.URL.Query().Get("order_by"), CurrentPage: 1}

	if page := r.URL.Query().Get("current_page"); page != "" {
		n, err := strconv.Atoi(page)
		if err != nil || n < 1 {
			Error(w, http.StatusBadRequest, "invalid_page", "current_page must be a positive integer")
			return input, false
		}
		input.CurrentPage = n
	}
	return input, true
}

func idStrings(set model.IDSet) []string {
	ids := set.Slice()
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = id.String()
	}
	return out
}
