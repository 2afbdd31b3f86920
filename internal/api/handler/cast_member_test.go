package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/hszk-dev/catalog/internal/domain/model"
	"github.com/hszk-dev/catalog/internal/usecase"
)

func TestCastMemberHandler_Create(t *testing.T) {
	tests := []struct {
		name           string
		requestBody    string
		setupMock      func(m *mockCastMemberService)
		wantStatusCode int
	}{
		{
			name:        "type is case-insensitive",
			requestBody: `{"name":"Zoe","type":"actor"}`,
			setupMock: func(m *mockCastMemberService) {
				m.createFn = func(ctx context.Context, input usecase.CreateCastMemberInput) (*model.CastMember, error) {
					if input.Type != model.CastMemberTypeActor {
						t.Errorf("Type = %s, want ACTOR", input.Type)
					}
					return model.NewCastMember(uuid.Nil, input.Name, input.Type)
				}
			},
			wantStatusCode: http.StatusCreated,
		},
		{
			name:        "invalid type",
			requestBody: `{"name":"Zoe","type":"producer"}`,
			setupMock: func(m *mockCastMemberService) {
				m.createFn = func(ctx context.Context, input usecase.CreateCastMemberInput) (*model.CastMember, error) {
					return nil, fmt.Errorf("%w: %w", usecase.ErrInvalidCastMember,
						&model.ValidationError{Messages: []string{"Type must be ACTOR or DIRECTOR"}})
				}
			},
			wantStatusCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := &mockCastMemberService{}
			tt.setupMock(mock)
			h := NewCastMemberHandler(mock)

			req := httptest.NewRequest(http.MethodPost, "/v1/cast_members", strings.NewReader(tt.requestBody))
			rec := httptest.NewRecorder()

			h.Create(rec, req)

			if rec.Code != tt.wantStatusCode {
				t.Errorf("expected status %d, got %d", tt.wantStatusCode, rec.Code)
			}
		})
	}
}

func TestCastMemberHandler_UpdateAndGet(t *testing.T) {
	id := uuid.New()
	member, _ := model.NewCastMember(id, "Zoe", model.CastMemberTypeActor)

	mock := &mockCastMemberService{
		updateFn: func(ctx context.Context, input usecase.UpdateCastMemberInput) error {
			if input.Name != nil {
				t.Errorf("Name should be nil, got %v", *input.Name)
			}
			if input.Type == nil || *input.Type != model.CastMemberTypeDirector {
				t.Errorf("Type = %v, want DIRECTOR", input.Type)
			}
			member.Type = *input.Type
			return nil
		},
		getFn: func(ctx context.Context, got uuid.UUID) (*model.CastMember, error) {
			return member, nil
		},
	}

	h := NewCastMemberHandler(mock)
	r := chi.NewRouter()
	r.Patch("/v1/cast_members/{id}", h.Update)
	r.Get("/v1/cast_members/{id}", h.Get)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPatch, "/v1/cast_members/"+id.String(), strings.NewReader(`{"type":"director"}`)))
	if rec.Code != http.StatusNoContent {
		t.Fatalf("update: expected status %d, got %d", http.StatusNoContent, rec.Code)
	}

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/cast_members/"+id.String(), nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("get: expected status %d, got %d", http.StatusOK, rec.Code)
	}

	var resp CastMemberResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}
	if resp.Type != "DIRECTOR" || resp.ID != id.String() {
		t.Errorf("unexpected response %+v", resp)
	}
}
