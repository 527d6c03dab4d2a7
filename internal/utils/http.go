package utils

import (
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"strings"
)

// WriteJSON serializes the given data to JSON and writes it to the HTTP response.
//
// It sets the "Content-Type" header to "application/json" and writes
// the provided HTTP status code before sending the response body.
//
// If marshaling fails, it responds with 500 Internal Server Error
// and returns a wrapped error.
//
// Example usage:
//
//	WriteJSON(w, models.Response{Status: "success"}, http.StatusOK)
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	return w.Write(jsonData)
}

// ClientIP resolves the caller address of r trusting at most trustedHops
// reverse proxies.
//
// The address chain is the X-Forwarded-For entries followed by the socket
// peer. With zero trusted hops the socket peer is returned. Each trusted hop
// moves one entry to the left; the leftmost entry is the limit.
func ClientIP(r *http.Request, trustedHops int) string {
	chain := forwardedChain(r.Header.Values("X-Forwarded-For"))
	chain = append(chain, remoteHost(r.RemoteAddr))

	idx := len(chain) - 1 - max(trustedHops, 0)
	if idx < 0 {
		idx = 0
	}
	return chain[idx]
}

func forwardedChain(values []string) []string {
	var chain []string
	for _, value := range values {
		for _, part := range strings.Split(value, ",") {
			if part = strings.TrimSpace(part); part != "" {
				chain = append(chain, part)
			}
		}
	}
	return chain
}

func remoteHost(addr string) string {
	host, _, err := net.SplitHostPort(addr)
	if err != nil {
		return addr
	}
	return host
}
