// Package auth decides whether an HTTP caller may use the admin API.
package auth

import "context"

// Service answers authorization questions for a single caller.
type Service interface {
	IsAuthenticated() bool
	HasRole(role string) bool
	// Subject identifies the caller for logging; empty when unauthenticated.
	Subject() string
}

// Anonymous is the Service of a caller that presented no valid credentials.
type Anonymous struct{}

func (Anonymous) IsAuthenticated() bool { return false }
func (Anonymous) HasRole(string) bool   { return false }
func (Anonymous) Subject() string       { return "" }

// AllowAll grants every role. Used when authentication is disabled.
type AllowAll struct{}

func (AllowAll) IsAuthenticated() bool { return true }
func (AllowAll) HasRole(string) bool   { return true }
func (AllowAll) Subject() string       { return "anonymous" }

type ctxKey struct{}

// WithService returns a copy of ctx carrying s.
func WithService(ctx context.Context, s Service) context.Context {
	return context.WithValue(ctx, ctxKey{}, s)
}

// FromContext returns the Service stored in ctx, or Anonymous.
func FromContext(ctx context.Context) Service {
	if s, ok := ctx.Value(ctxKey{}).(Service); ok {
		return s
	}
	return Anonymous{}
}
