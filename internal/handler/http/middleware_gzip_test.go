// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"compress/gzip"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/MKhiriev/billiard-pos/internal/config"
	"github.com/MKhiriev/billiard-pos/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const catalogJSON = `{"items":[{"sku":"CUE-01","name":"Maple cue","price":450000},{"sku":"CHK-12","name":"Chalk box","price":60000}]}`

func gzipBytes(t *testing.T, data string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	_, err := zw.Write([]byte(data))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func gunzip(t *testing.T, r io.Reader) string {
	t.Helper()
	zr, err := gzip.NewReader(r)
	require.NoError(t, err)
	defer zr.Close()
	out, err := io.ReadAll(zr)
	require.NoError(t, err)
	return string(out)
}

// echoHandler answers with the (decoded) request body, or catalogJSON when
// the request has none.
func echoHandler(t *testing.T) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		assert.Empty(t, r.Header.Get("Content-Encoding"))
		if len(body) == 0 {
			body = []byte(catalogJSON)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write(body)
	})
}

func TestGZip(t *testing.T) {
	tests := []struct {
		name            string
		acceptEncoding  string
		contentEncoding string
		body            []byte
		wantGzipped     bool
		wantBody        string
	}{
		{
			name:           "compresses catalog for gzip clients",
			acceptEncoding: "gzip",
			wantGzipped:    true,
			wantBody:       catalogJSON,
		},
		{
			name:     "plain response without Accept-Encoding",
			wantBody: catalogJSON,
		},
		{
			name:           "gzip among several encodings",
			acceptEncoding: "deflate, gzip;q=1.0, br",
			wantGzipped:    true,
			wantBody:       catalogJSON,
		},
		{
			name:            "decodes gzip request body",
			contentEncoding: "gzip",
			body:            gzipBytes(t, `{"login":"desk"}`),
			wantBody:        `{"login":"desk"}`,
		},
		{
			name:            "decodes request and compresses response",
			acceptEncoding:  "gzip",
			contentEncoding: "gzip",
			body:            gzipBytes(t, `{"price":120000}`),
			wantGzipped:     true,
			wantBody:        `{"price":120000}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, _ := newTestHandler(t)

			req := httptest.NewRequest(http.MethodPost, "/api/v1/products", bytes.NewReader(tt.body))
			if tt.acceptEncoding != "" {
				req.Header.Set("Accept-Encoding", tt.acceptEncoding)
			}
			if tt.contentEncoding != "" {
				req.Header.Set("Content-Encoding", tt.contentEncoding)
			}
			rr := httptest.NewRecorder()

			h.withGZip(echoHandler(t)).ServeHTTP(rr, req)

			assert.Equal(t, http.StatusOK, rr.Code)
			if tt.wantGzipped {
				assert.Equal(t, "gzip", rr.Header().Get("Content-Encoding"))
				assert.Equal(t, tt.wantBody, gunzip(t, rr.Body))
				return
			}
			assert.Empty(t, rr.Header().Get("Content-Encoding"))
			assert.Equal(t, tt.wantBody, rr.Body.String())
		})
	}
}

func TestGZip_InvalidRequestBodyOnAPI(t *testing.T) {
	h, _ := newTestHandler(t)
	middleware := h.withGZip(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run")
	}))

	req := httptest.NewRequest(http.MethodPost, "/api/v1/products", strings.NewReader("not gzipped data"))
	req.Header.Set("Content-Encoding", "gzip")
	rr := httptest.NewRecorder()

	middleware.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, "Invalid gzip data", decodeEnvelope(t, rr).Message)
}

func TestGZip_Headers(t *testing.T) {
	h, _ := newTestHandler(t)
	middleware := h.withGZip(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Length", "13")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte("Hello, World!"))
	}))

	req := httptest.NewRequest(http.MethodPost, "/api/v1/products", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	rr := httptest.NewRecorder()

	middleware.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusCreated, rr.Code)
	assert.Equal(t, "gzip", rr.Header().Get("Content-Encoding"))
	assert.Equal(t, "Accept-Encoding", rr.Header().Get("Vary"))
	assert.Empty(t, rr.Header().Get("Content-Length"))
	assert.Equal(t, "Hello, World!", gunzip(t, rr.Body))
}

func TestGZip_NoContent(t *testing.T) {
	h, _ := newTestHandler(t)
	middleware := h.withGZip(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/products", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	rr := httptest.NewRecorder()

	middleware.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNoContent, rr.Code)
	assert.Empty(t, rr.Header().Get("Content-Encoding"))
	assert.Zero(t, rr.Body.Len())
}

func TestGZip_CompressionRatio(t *testing.T) {
	page := strings.Repeat(`<tr><td>Maple cue</td><td>450.000 ₫</td></tr>`, 500)
	h, _ := newTestHandler(t)
	middleware := h.withGZip(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(page))
	}))

	req := httptest.NewRequest(http.MethodGet, "/products", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	rr := httptest.NewRecorder()

	middleware.ServeHTTP(rr, req)

	assert.Less(t, rr.Body.Len(), len(page)/10)
	assert.Equal(t, page, gunzip(t, rr.Body))
}

// Pooled readers and writers must not leak state between requests.
func TestGZip_ConcurrentPoolReuse(t *testing.T) {
	h, _ := newTestHandler(t)
	middleware := h.withGZip(echoHandler(t))

	const n = 40
	var wg sync.WaitGroup
	wg.Add(n)
	for i := range n {
		go func() {
			defer wg.Done()
			want := strings.Repeat("x", i+1)

			req := httptest.NewRequest(http.MethodPost, "/api/v1/products", bytes.NewReader(gzipBytes(t, want)))
			req.Header.Set("Content-Encoding", "gzip")
			req.Header.Set("Accept-Encoding", "gzip")
			rr := httptest.NewRecorder()

			middleware.ServeHTTP(rr, req)

			assert.Equal(t, want, gunzip(t, rr.Body))
		}()
	}
	wg.Wait()
}

// A gzip-encoded JSON body reaches the body decoder and the validation
// layer when the compression feature is on.
func TestGZip_Pipeline(t *testing.T) {
	h, svc := newTestHandler(t, func(o *Options) {
		o.Features = mustFeatures(t, config.FeatureAPI, config.FeatureCompression)
	})
	svc.info.EXPECT().Health(gomock.Any()).Return(models.HealthResponse{Status: "ok", Name: "Billiard POS", Version: "test"})
	router := h.Init()

	rr := serve(router, testRequest{
		method:  http.MethodGet,
		target:  "/api/v1/health",
		headers: map[string]string{"Accept-Encoding": "gzip"},
	})
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "gzip", rr.Header().Get("Content-Encoding"))
	assert.Contains(t, gunzip(t, rr.Body), `"version":"test"`)

	rr = serve(router, testRequest{
		method:  http.MethodPost,
		target:  "/api/v1/auth/login",
		body:    string(gzipBytes(t, `{}`)),
		headers: map[string]string{"Content-Encoding": "gzip"},
	})
	assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
	assert.ElementsMatch(t, []string{"login", "password"}, violatedFields(decodeEnvelope(t, rr)))
}

func TestWrappedReadCloser_Close(t *testing.T) {
	closed := false
	wrapped := &wrappedReadCloser{Reader: strings.NewReader("test"), OnClose: func() { closed = true }}

	assert.NoError(t, wrapped.Close())
	assert.True(t, closed)

	assert.NoError(t, (&wrappedReadCloser{Reader: strings.NewReader("test")}).Close())
}
