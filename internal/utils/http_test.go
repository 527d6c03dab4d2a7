package utils

import (
	"encoding/json"
	"math"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteJSON_Success(t *testing.T) {
	w := httptest.NewRecorder()
	data := map[string]string{"key": "value"}

	n, err := WriteJSON(w, data, http.StatusOK)
	require.NoError(t, err)

	assert.NotZero(t, n)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	expected, _ := json.Marshal(data)
	assert.JSONEq(t, string(expected), w.Body.String())
}

func TestWriteJSON_CustomStatusCode(t *testing.T) {
	w := httptest.NewRecorder()

	_, err := WriteJSON(w, map[string]string{"status": "error"}, http.StatusNotFound)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestWriteJSON_MarshalError(t *testing.T) {
	w := httptest.NewRecorder()

	_, err := WriteJSON(w, math.Inf(1), http.StatusOK)
	assert.Error(t, err)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestClientIP_TableTest(t *testing.T) {
	tests := []struct {
		name      string
		remote    string
		forwarded []string
		hops      int
		want      string
	}{
		{
			name:      "no proxy trusted",
			remote:    "10.0.0.1:5555",
			forwarded: []string{"203.0.113.9"},
			hops:      0,
			want:      "10.0.0.1",
		},
		{
			name:      "one hop",
			remote:    "10.0.0.1:5555",
			forwarded: []string{"198.51.100.7, 203.0.113.9"},
			hops:      1,
			want:      "203.0.113.9",
		},
		{
			name:      "two hops across header lines",
			remote:    "10.0.0.1:5555",
			forwarded: []string{"198.51.100.7", "203.0.113.9"},
			hops:      2,
			want:      "198.51.100.7",
		},
		{
			name:      "more hops than entries",
			remote:    "10.0.0.1:5555",
			forwarded: []string{"203.0.113.9"},
			hops:      5,
			want:      "203.0.113.9",
		},
		{
			name:   "trusted hop without header",
			remote: "10.0.0.1:5555",
			hops:   1,
			want:   "10.0.0.1",
		},
		{
			name:   "remote without port",
			remote: "10.0.0.2",
			want:   "10.0.0.2",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/", nil)
			r.RemoteAddr = tt.remote
			for _, v := range tt.forwarded {
				r.Header.Add("X-Forwarded-For", v)
			}
			assert.Equal(t, tt.want, ClientIP(r, tt.hops))
		})
	}
}
