// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with the request context, request identifiers,
// HTTP response writing and client address resolution, the HTTP client
// used by the admin CLI, and JWT token generation and validation.
package utils

import (
	"context"

	"github.com/MKhiriev/billiard-pos/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// RequestCtxKey is the key the *models.RequestContext is stored under.
var RequestCtxKey = contextKey("request")

// BodyCtxKey is the key the decoded request body is stored under.
var BodyCtxKey = contextKey("body")

// WithRequestContext returns a copy of ctx carrying rc.
func WithRequestContext(ctx context.Context, rc *models.RequestContext) context.Context {
	return context.WithValue(ctx, RequestCtxKey, rc)
}

// GetRequestContext retrieves the request context stored by the request
// identifier middleware.
//
// Returns the *models.RequestContext and an ok flag which is false when the
// value is missing or has an unexpected type.
func GetRequestContext(ctx context.Context) (*models.RequestContext, bool) {
	rc, ok := ctx.Value(RequestCtxKey).(*models.RequestContext)
	return rc, ok && rc != nil
}

// GetRequestIDFromContext returns the identifier of the current request, or
// an empty string when the request was not enriched.
func GetRequestIDFromContext(ctx context.Context) string {
	if rc, ok := GetRequestContext(ctx); ok {
		return rc.ID
	}
	return ""
}

// GetIdentityFromContext returns the identity attached by the
// authentication guard.
//
// The ok flag is false for anonymous requests; callers must treat that as
// "not authenticated" and never as "any role allowed".
func GetIdentityFromContext(ctx context.Context) (models.Identity, bool) {
	rc, ok := GetRequestContext(ctx)
	if !ok || rc.Identity == nil {
		return models.Identity{}, false
	}
	return *rc.Identity, true
}

// WithBody returns a copy of ctx carrying the decoded request body.
func WithBody(ctx context.Context, body map[string]any) context.Context {
	return context.WithValue(ctx, BodyCtxKey, body)
}

// GetBodyFromContext returns the decoded JSON or form body. The map is nil
// when the request had no decodable body.
func GetBodyFromContext(ctx context.Context) map[string]any {
	body, _ := ctx.Value(BodyCtxKey).(map[string]any)
	return body
}
