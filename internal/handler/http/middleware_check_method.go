// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
)

// methodNotAllowed is registered as the router's MethodNotAllowed handler.
// Unsupported methods on a known path are reported as not found.
func (h *Handler) methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	w.Header().Del("Allow")
	h.notFound(w, r)
}
