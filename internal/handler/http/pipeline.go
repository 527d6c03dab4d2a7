package http

import (
	"context"
	"net/http"

	"github.com/MKhiriev/billiard-pos/internal/validators"
	"github.com/MKhiriev/billiard-pos/models"
	"github.com/go-chi/chi/v5"
)

// RoutePolicy is the per-route gate run before the handler: authentication,
// then role authorization, then schema validation.
type RoutePolicy struct {
	// Authenticate requires a verified credential.
	Authenticate bool

	// Roles lists the roles allowed to call the route. Empty means any
	// authenticated caller.
	Roles []models.Role

	// Schema validates path, query and body parameters. Nil skips validation.
	Schema *validators.Schema
}

// Common policies.
var (
	public    = RoutePolicy{}
	signedIn  = RoutePolicy{Authenticate: true}
	staffOnly = []models.Role{models.RoleStaff, models.RoleAdmin}
	adminOnly = []models.Role{models.RoleAdmin}
)

func staff(schema *validators.Schema) RoutePolicy {
	return RoutePolicy{Authenticate: true, Roles: staffOnly, Schema: schema}
}

func admin(schema *validators.Schema) RoutePolicy {
	return RoutePolicy{Authenticate: true, Roles: adminOnly, Schema: schema}
}

// handlerFunc is a route handler that reports failures instead of writing
// them. Returned errors go to the classifier.
type handlerFunc func(w http.ResponseWriter, r *http.Request) error

// endpoint binds a method and path to a policy and a handler.
type endpoint struct {
	method  string
	pattern string
	policy  RoutePolicy
	handle  handlerFunc
}

func registerEndpoints(r chi.Router, h *Handler, endpoints []endpoint) {
	for _, e := range endpoints {
		r.Method(e.method, e.pattern, h.bind(e.policy, e.handle))
	}
}

// bind runs policy and then next. The first failing stage short-circuits
// the chain; its error is handed to the classifier.
func (h *Handler) bind(policy RoutePolicy, next handlerFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := h.runPolicy(policy, w, r, next); err != nil {
			h.fail(w, r, err)
		}
	})
}

func (h *Handler) runPolicy(policy RoutePolicy, w http.ResponseWriter, r *http.Request, next handlerFunc) error {
	if policy.Authenticate {
		var err error
		if r, err = h.authenticate(r); err != nil {
			return err
		}
		if err = authorize(r.Context(), policy.Roles); err != nil {
			return err
		}
	}

	if policy.Schema != nil {
		values, err := validate(r, policy.Schema)
		if err != nil {
			return err
		}
		r = r.WithContext(withValues(r.Context(), values))
	}

	return next(w, r)
}

type valuesCtxKey struct{}

func withValues(ctx context.Context, values validators.Values) context.Context {
	return context.WithValue(ctx, valuesCtxKey{}, values)
}

// valuesFrom returns the validated parameters of the request. The map is
// empty for routes without a schema.
func valuesFrom(r *http.Request) validators.Values {
	values, _ := r.Context().Value(valuesCtxKey{}).(validators.Values)
	if values == nil {
		return validators.Values{}
	}
	return values
}
