package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/billiard-pos/internal/logger"
)

// withLogging writes exactly one access log line per request once the
// response is complete.
func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		start := time.Now()
		method := r.Method
		path := r.URL.Path

		lw := &responseWriter{
			ResponseWriter: w,
		}

		next.ServeHTTP(lw, r.WithContext(withResponseWriter(r.Context(), lw)))

		log.Info().
			Str("method", method).
			Str("path", path).
			Int("status", lw.statusOrOK()).
			Dur("duration", time.Since(start)).
			Int("size", lw.size).
			Msg("request completed")
	})
}
