package models

// RequestContext is the per-request state shared by the HTTP pipeline
// stages. It lives in the request's context.Context from the moment the
// request identifier is generated until the response completes.
type RequestContext struct {
	// ID is the request identifier. It is set once and never changed.
	ID string

	// ClientIP is the caller address resolved with the trusted proxy depth.
	ClientIP string

	// Identity is attached by the authentication guard; nil for anonymous
	// requests.
	Identity *Identity

	// Locals are values exposed to server-rendered views.
	Locals map[string]any
}

// NewRequestContext creates a RequestContext for the given identifier.
func NewRequestContext(id string) *RequestContext {
	return &RequestContext{
		ID:     id,
		Locals: make(map[string]any),
	}
}
