package middleware

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/hszk-dev/catalog/internal/auth"
)

type stubAuthenticator map[string]auth.Service

func (s stubAuthenticator) ForToken(token string) auth.Service {
	if svc, ok := s[token]; ok {
		return svc
	}
	return auth.Anonymous{}
}

type roleService struct {
	roles   []string
	subject string
}

func (s roleService) IsAuthenticated() bool { return true }
func (s roleService) Subject() string       { return s.subject }
func (s roleService) HasRole(role string) bool {
	for _, r := range s.roles {
		if r == role {
			return true
		}
	}
	return false
}

func TestRequireRole(t *testing.T) {
	authenticator := stubAuthenticator{
		"admin-token":  roleService{roles: []string{"admin"}, subject: "alice"},
		"viewer-token": roleService{roles: []string{"viewer"}, subject: "bob"},
	}

	tests := []struct {
		name           string
		authenticator  Authenticator
		header         string
		wantStatusCode int
		wantError      string
	}{
		{name: "admin passes", authenticator: authenticator, header: "Bearer admin-token", wantStatusCode: http.StatusOK},
		{name: "scheme is case-insensitive", authenticator: authenticator, header: "bearer admin-token", wantStatusCode: http.StatusOK},
		{name: "missing header", authenticator: authenticator, wantStatusCode: http.StatusUnauthorized, wantError: "unauthorized"},
		{name: "unknown token", authenticator: authenticator, header: "Bearer nope", wantStatusCode: http.StatusUnauthorized, wantError: "unauthorized"},
		{name: "basic auth", authenticator: authenticator, header: "Basic YWRtaW46YWRtaW4=", wantStatusCode: http.StatusUnauthorized, wantError: "unauthorized"},
		{name: "missing role", authenticator: authenticator, header: "Bearer viewer-token", wantStatusCode: http.StatusForbidden, wantError: "forbidden"},
		{name: "disabled", authenticator: nil, wantStatusCode: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var seen auth.Service
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				seen = auth.FromContext(r.Context())
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/v1/categories", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()

			RequireRole(tt.authenticator, "admin")(next).ServeHTTP(rec, req)

			if rec.Code != tt.wantStatusCode {
				t.Fatalf("expected status %d, got %d", tt.wantStatusCode, rec.Code)
			}

			if tt.wantError != "" {
				var body map[string]string
				if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
					t.Fatalf("failed to unmarshal response: %v", err)
				}
				if body["error"] != tt.wantError {
					t.Errorf("error = %s, want %s", body["error"], tt.wantError)
				}
				return
			}

			if seen == nil || !seen.HasRole("admin") {
				t.Errorf("expected the caller's auth.Service in the request context")
			}
		})
	}
}

func TestLogger_RecordsSubjectAndStatus(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	authenticator := stubAuthenticator{"t": roleService{roles: []string{"admin"}, subject: "alice"}}
	final := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	chain := chimw.RequestID(RequestID(Logger(logger)(RequireRole(authenticator, "admin")(final))))

	req := httptest.NewRequest(http.MethodGet, "/v1/videos", nil)
	req.Header.Set("Authorization", "Bearer t")
	rec := httptest.NewRecorder()
	chain.ServeHTTP(rec, req)

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("failed to parse log line %q: %v", buf.String(), err)
	}

	if entry["subject"] != "alice" {
		t.Errorf("subject = %v, want alice", entry["subject"])
	}
	if entry["status"] != float64(http.StatusTeapot) {
		t.Errorf("status = %v, want %d", entry["status"], http.StatusTeapot)
	}
	if entry["level"] != "WARN" {
		t.Errorf("level = %v, want WARN", entry["level"])
	}
	if entry["request_id"] == "" || rec.Header().Get("X-Request-Id") == "" {
		t.Errorf("expected a request id in log and response header")
	}
}

func TestRecoverer(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	panicking := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	})

	rec := httptest.NewRecorder()
	Recoverer(logger)(panicking).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/genres", nil))

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("expected status %d, got %d", http.StatusInternalServerError, rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %s, want application/json", ct)
	}
	if !bytes.Contains(buf.Bytes(), []byte("panic recovered")) {
		t.Errorf("expected panic to be logged, got %s", buf.String())
	}
	if !bytes.Contains(rec.Body.Bytes(), []byte(`"error":"internal_error"`)) {
		t.Errorf("body = %s, want internal_error code", rec.Body.String())
	}
}

func TestRecoverer_LogsSubject(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	panicking := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		setSubject(r.Context(), "alice")
		panic("boom")
	})
	withHolder := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, _ := withSubjectHolder(r.Context())
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}

	rec := httptest.NewRecorder()
	withHolder(Recoverer(logger)(panicking)).ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/v1/videos/1", nil))

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("expected status %d, got %d", http.StatusInternalServerError, rec.Code)
	}
	if !bytes.Contains(buf.Bytes(), []byte(`"subject":"alice"`)) {
		t.Errorf("expected subject in log, got %s", buf.String())
	}
}
