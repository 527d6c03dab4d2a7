package http

import (
	"context"
	"net/http"
)

// withTimeout bounds the request context with the configured timeout. Work
// that honors the context fails with context.DeadlineExceeded, which the
// classifier reports as a timeout.
//
// The same deadline is set on the connection read side, so a client that
// sends its body too slowly fails the body decoder instead of holding the
// request open. Writers without deadline support are left as they are.
func (h *Handler) withTimeout(next http.Handler) http.Handler {
	if h.options.RequestTimeout <= 0 {
		return next
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), h.options.RequestTimeout)
		defer cancel()

		if deadline, ok := ctx.Deadline(); ok {
			_ = http.NewResponseController(w).SetReadDeadline(deadline)
		}

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
