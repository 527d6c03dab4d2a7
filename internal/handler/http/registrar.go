package http

import (
	"github.com/MKhiriev/billiard-pos/internal/config"
	"github.com/go-chi/chi/v5"
)

// Registrar adds a group of routes to a router.
type Registrar interface {
	Register(r chi.Router)
}

// routeTable is a Registrar over a fixed list of endpoints.
type routeTable struct {
	h         *Handler
	endpoints []endpoint
}

func (t routeTable) Register(r chi.Router) {
	registerEndpoints(r, t.h, t.endpoints)
}

// tables returns the enabled route tables keyed by mount point. Disabled
// tables are logged and skipped.
func (h *Handler) tables() map[string]Registrar {
	candidates := []struct {
		feature string
		mount   string
		table   func() Registrar
	}{
		{config.FeatureAPI, apiV1Prefix, h.apiRoutes},
		{config.FeatureWeb, "/", h.webRoutes},
	}

	out := make(map[string]Registrar, len(candidates))
	for _, c := range candidates {
		if !h.options.Features.Enabled(c.feature) {
			h.logger.Warn().Str("feature", c.feature).Str("mount", c.mount).Msg("route table disabled")
			continue
		}
		out[c.mount] = c.table()
	}
	return out
}
