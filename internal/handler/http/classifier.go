package http

import (
	"net/http"
	"strings"

	"github.com/MKhiriev/billiard-pos/internal/app"
	"github.com/MKhiriev/billiard-pos/internal/logger"
	"github.com/MKhiriev/billiard-pos/internal/utils"
	"github.com/MKhiriev/billiard-pos/models"
)

const (
	apiPrefix       = "/api"
	requestIDHeader = "X-Request-Id"
)

// isAPIRequest reports whether r targets the JSON API.
func isAPIRequest(r *http.Request) bool {
	return r.URL.Path == apiPrefix || strings.HasPrefix(r.URL.Path, apiPrefix+"/")
}

// notFound answers unmatched paths: a JSON envelope under /api, a rendered
// page elsewhere. Method mismatches end here too, so the existence of a
// route is never revealed.
func (h *Handler) notFound(w http.ResponseWriter, r *http.Request) {
	if isAPIRequest(r) {
		h.fail(w, r, app.NotFound(app.MsgAPIRouteNotFound))
		return
	}
	h.fail(w, r, app.NotFound(app.MsgNotFound))
}

// fail is the terminal error stage of the pipeline.
func (h *Handler) fail(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)
	appErr := classify(err)
	status := appErr.Status()

	event := log.Info()
	if appErr.Kind == app.KindInternal {
		event = log.Error()
	}
	event.Err(err).Str("kind", appErr.Kind.String()).Int("status", status).Msg("request failed")

	if responseStarted(r) {
		return
	}

	requestID := utils.GetRequestIDFromContext(r.Context())
	if requestID != "" {
		w.Header().Set(requestIDHeader, requestID)
	}

	if isAPIRequest(r) {
		envelope := models.ErrorEnvelope{
			Status:  status,
			Message: appErr.Message,
			Errors:  appErr.Fields,
		}
		if requestID != "" {
			envelope.RequestID = &requestID
		}
		if h.options.Development && appErr.Err != nil {
			envelope.Detail = appErr.Err.Error()
		}
		if _, werr := utils.WriteJSON(w, envelope, status); werr != nil {
			log.Err(werr).Msg("error writing error envelope")
		}
		return
	}

	page := errorPage{
		Status:    status,
		Message:   appErr.Message,
		RequestID: requestID,
		Fields:    appErr.Fields,
	}
	if h.options.Development && appErr.Err != nil {
		page.Detail = appErr.Err.Error()
	}
	h.render(w, r, status, pageError, page)
}
