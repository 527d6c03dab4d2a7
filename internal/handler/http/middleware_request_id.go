package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/billiard-pos/internal/utils"
	"github.com/MKhiriev/billiard-pos/models"
)

// withRequestContext is the first stage of the pipeline. It assigns a fresh
// request identifier, resolves the client address, attaches a request-scoped
// logger and exposes the identifier in the X-Request-Id response header
// before anything else runs.
//
// An inbound X-Request-Id is never reused; it is only logged as
// upstream_request_id.
func (h *Handler) withRequestContext(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rc := models.NewRequestContext(h.requestIDs.Generate())
		rc.ClientIP = utils.ClientIP(r, h.options.TrustProxy)
		rc.Locals["appName"] = h.options.AppName
		rc.Locals["year"] = time.Now().Year()
		rc.Locals["requestId"] = rc.ID

		upstream := r.Header.Get(requestIDHeader)

		l := h.logger.ForRequest(rc.ID, rc.ClientIP, upstream)

		ctx := utils.WithRequestContext(r.Context(), rc)
		ctx = l.WithContext(ctx)

		w.Header().Set(requestIDHeader, rc.ID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
