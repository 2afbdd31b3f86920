package handler

import (
	"net/http"

	"github.com/hszk-dev/catalog/internal/domain/model"
	"github.com/hszk-dev/catalog/internal/usecase"
)

type CreateCastMemberRequest struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

type UpdateCastMemberRequest struct {
	Name *string `json:"name"`
	Type *string `json:"type"`
}

type CastMemberResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Type string `json:"type"`
}

// CastMemberHandler handles cast member HTTP requests.
type CastMemberHandler struct {
	svc usecase.CastMemberService
}

func NewCastMemberHandler(svc usecase.CastMemberService) *CastMemberHandler {
	return &CastMemberHandler{svc: svc}
}

// Create handles POST /v1/cast_members
func (h *CastMemberHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateCastMemberRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	member, err := h.svc.CreateCastMember(r.Context(), usecase.CreateCastMemberInput{
		Name: req.Name,
		Type: model.ParseCastMemberType(req.Type),
	})
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	JSON(w, http.StatusCreated, toCastMemberResponse(member))
}

// Get handles GET /v1/cast_members/{id}
func (h *CastMemberHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	member, err := h.svc.GetCastMember(r.Context(), id)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	JSON(w, http.StatusOK, toCastMemberResponse(member))
}

// List handles GET /v1/cast_members
func (h *CastMemberHandler) List(w http.ResponseWriter, r *http.Request) {
	input, ok := listInput(w, r)
	if !ok {
		return
	}

	out, err := h.svc.ListCastMembers(r.Context(), input)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	JSON(w, http.StatusOK, toListResponse(out, toCastMemberResponse))
}

// Update handles PATCH /v1/cast_members/{id}
func (h *CastMemberHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req UpdateCastMemberRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	input := usecase.UpdateCastMemberInput{ID: id, Name: req.Name}
	if req.Type != nil {
		t := model.ParseCastMemberType(*req.Type)
		input.Type = &t
	}

	if err := h.svc.UpdateCastMember(r.Context(), input); err != nil {
		handleServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Delete handles DELETE /v1/cast_members/{id}
func (h *CastMemberHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.svc.DeleteCastMember(r.Context(), id); err != nil {
		handleServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func toCastMemberResponse(m *model.CastMember) CastMemberResponse {
	return CastMemberResponse{
		ID:   m.ID.String(),
		Name: m.Name,
		Type: m.Type.String(),
	}
}
