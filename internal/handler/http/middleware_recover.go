package http

import (
	"errors"
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/MKhiriev/billiard-pos/internal/logger"
)

// withRecover turns a handler panic into an Internal failure answered by the
// classifier. http.ErrAbortHandler is re-raised.
func (h *Handler) withRecover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if err, ok := rec.(error); ok && errors.Is(err, http.ErrAbortHandler) {
				panic(rec)
			}

			logger.FromRequest(r).Error().
				Str("panic", fmt.Sprint(rec)).
				Bytes("stack", debug.Stack()).
				Msg("recovered from panic")
			h.fail(w, r, fmt.Errorf("%w: %v", ErrPanic, rec))
		}()

		next.ServeHTTP(w, r)
	})
}
