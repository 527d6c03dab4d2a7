package http

import "net/http"

func (h *Handler) health(w http.ResponseWriter, r *http.Request) error {
	return writeOK(w, r, "OK", h.services.AppInfoService.Health(r.Context()))
}
