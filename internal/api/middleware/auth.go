package middleware

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/hszk-dev/catalog/internal/auth"
)

// Authenticator resolves the caller of a bearer token.
type Authenticator interface {
	ForToken(token string) auth.Service
}

// RequireRole rejects callers without a valid token (401) or without role (403).
// A nil authenticator admits every request.
func RequireRole(authenticator Authenticator, role string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var svc auth.Service = auth.AllowAll{}
			if authenticator != nil {
				svc = authenticator.ForToken(bearerToken(r))
			}

			if !svc.IsAuthenticated() {
				w.Header().Set("WWW-Authenticate", `Bearer realm="catalog"`)
				writeError(w, http.StatusUnauthorized, "unauthorized", "missing or invalid bearer token")
				return
			}
			if !svc.HasRole(role) {
				writeError(w, http.StatusForbidden, "forbidden", "role "+role+" required")
				return
			}

			setSubject(r.Context(), svc.Subject())
			next.ServeHTTP(w, r.WithContext(auth.WithService(r.Context(), svc)))
		})
	}
}

func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	scheme, token, ok := strings.Cut(header, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}

// writeError mirrors handler.Error; middleware cannot import the handler package.
func writeError(w http.ResponseWriter, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": code, "message": message})
}
