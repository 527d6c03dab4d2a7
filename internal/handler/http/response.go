package http

import (
	"net/http"

	"github.com/MKhiriev/billiard-pos/internal/logger"
	"github.com/MKhiriev/billiard-pos/internal/utils"
	"github.com/MKhiriev/billiard-pos/models"
)

// writeOK writes the success envelope with status 200.
func writeOK(w http.ResponseWriter, r *http.Request, message string, data any) error {
	return writeStatus(w, r, http.StatusOK, message, data)
}

func writeStatus(w http.ResponseWriter, r *http.Request, status int, message string, data any) error {
	_, err := utils.WriteJSON(w, models.Response{Status: status, Message: message, Data: data}, status)
	if err != nil {
		// The header is already out; the classifier would only log it.
		logger.FromRequest(r).Err(err).Msg("error writing response")
	}
	return nil
}
