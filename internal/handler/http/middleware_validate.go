package http

import (
	"net/http"

	"github.com/MKhiriev/billiard-pos/internal/utils"
	"github.com/MKhiriev/billiard-pos/internal/validators"
	"github.com/go-chi/chi/v5"
)

// validate runs schema against the path parameters, the query string and
// the decoded body of r.
func validate(r *http.Request, schema validators.Validator) (validators.Values, error) {
	return schema.Validate(r.Context(), validators.Input{
		Path:  pathParams(r),
		Query: r.URL.Query(),
		Body:  utils.GetBodyFromContext(r.Context()),
	})
}

func pathParams(r *http.Request) map[string]string {
	rctx := chi.RouteContext(r.Context())
	if rctx == nil {
		return nil
	}
	params := make(map[string]string, len(rctx.URLParams.Keys))
	for i, key := range rctx.URLParams.Keys {
		if key == "*" {
			continue
		}
		params[key] = rctx.URLParams.Values[i]
	}
	return params
}
