package handler

import (
	"net/http"

	"github.com/hszk-dev/catalog/internal/domain/model"
	"github.com/hszk-dev/catalog/internal/usecase"
)

type CreateCategoryRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	IsActive    *bool  `json:"is_active"`
}

// UpdateCategoryRequest leaves omitted fields unchanged.
type UpdateCategoryRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	IsActive    *bool   `json:"is_active"`
}

type CategoryResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	IsActive    bool   `json:"is_active"`
}

// CategoryHandler handles category-related HTTP requests.
type CategoryHandler struct {
	svc usecase.CategoryService
}

func NewCategoryHandler(svc usecase.CategoryService) *CategoryHandler {
	return &CategoryHandler{svc: svc}
}

// Create handles POST /v1/categories
func (h *CategoryHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateCategoryRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	category, err := h.svc.CreateCategory(r.Context(), usecase.CreateCategoryInput{
		Name:        req.Name,
		Description: req.Description,
		IsActive:    req.IsActive,
	})
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	JSON(w, http.StatusCreated, toCategoryResponse(category))
}

// Get handles GET /v1/categories/{id}
func (h *CategoryHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	category, err := h.svc.GetCategory(r.Context(), id)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	JSON(w, http.StatusOK, toCategoryResponse(category))
}

// List handles GET /v1/categories
func (h *CategoryHandler) List(w http.ResponseWriter, r *http.Request) {
	input, ok := listInput(w, r)
	if !ok {
		return
	}

	out, err := h.svc.ListCategories(r.Context(), input)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	JSON(w, http.StatusOK, toListResponse(out, toCategoryResponse))
}

// Update handles PATCH /v1/categories/{id}
func (h *CategoryHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req UpdateCategoryRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	err := h.svc.UpdateCategory(r.Context(), usecase.UpdateCategoryInput{
		ID:          id,
		Name:        req.Name,
		Description: req.Description,
		IsActive:    req.IsActive,
	})
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Delete handles DELETE /v1/categories/{id}
func (h *CategoryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.svc.DeleteCategory(r.Context(), id); err != nil {
		handleServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func toCategoryResponse(c *model.Category) CategoryResponse {
	return CategoryResponse{
		ID:          c.ID.String(),
		Name:        c.Name,
		Description: c.Description,
		IsActive:    c.IsActive,
	}
}
