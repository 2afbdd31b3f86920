package middleware

import (
	"context"
	"net/http"

	chimw "github.com/go-chi/chi/v5/middleware"
)

type ctxKey int

const (
	RequestIDKey ctxKey = iota
	subjectKey
)

// RequestID is a middleware that propagates chi's request ID to our context key.
// It must be used AFTER chi's RequestID middleware in the chain.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := chimw.GetReqID(r.Context())
		ctx := context.WithValue(r.Context(), RequestIDKey, requestID)
		w.Header().Set("X-Request-Id", requestID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetRequestID retrieves the request ID from context.
func GetRequestID(ctx context.Context) string {
	if id, ok := ctx.Value(RequestIDKey).(string); ok {
		return id
	}
	return ""
}

// subjectHolder is filled in by RequireRole and read by Logger once the request finished.
type subjectHolder struct {
	subject string
}

func withSubjectHolder(ctx context.Context) (context.Context, *subjectHolder) {
	h := &subjectHolder{}
	return context.WithValue(ctx, subjectKey, h), h
}

func setSubject(ctx context.Context, subject string) {
	if h, ok := ctx.Value(subjectKey).(*subjectHolder); ok {
		h.subject = subject
	}
}

func subjectFrom(ctx context.Context) string {
	if h, ok := ctx.Value(subjectKey).(*subjectHolder); ok {
		return h.subject
	}
	return ""
}
