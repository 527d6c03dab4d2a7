package http

import (
	"bufio"
	"context"
	"encoding/json"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/billiard-pos/internal/app"
	"github.com/MKhiriev/billiard-pos/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestWithTimeout(t *testing.T) {
	h, svc := newTestHandler(t, func(o *Options) { o.RequestTimeout = 20 * time.Millisecond })
	svc.expectTokens()
	svc.product.EXPECT().Get(gomock.Any(), int64(1)).DoAndReturn(func(ctx context.Context, _ int64) (models.Product, error) {
		<-ctx.Done()
		return models.Product{}, ctx.Err()
	})

	rr := serve(h.Init(), testRequest{method: http.MethodGet, target: "/api/v1/products/1", token: staffToken})

	assert.Equal(t, http.StatusGatewayTimeout, rr.Code)
	assert.Equal(t, app.MsgTimeout, decodeEnvelope(t, rr).Message)
}

func TestWithTimeout_Disabled(t *testing.T) {
	h, _ := newTestHandler(t, func(o *Options) { o.RequestTimeout = 0 })

	var hasDeadline bool
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, hasDeadline = r.Context().Deadline()
	})

	serve(h.withTimeout(next), testRequest{method: http.MethodGet, target: "/"})

	assert.False(t, hasDeadline)
}

// A client that stalls mid-body is cut off by the request deadline while
// the body decoder is still reading.
func TestWithTimeout_SlowRequestBody(t *testing.T) {
	h, _ := newTestHandler(t, func(o *Options) { o.RequestTimeout = 100 * time.Millisecond })
	server := httptest.NewServer(h.Init())
	defer server.Close()

	conn, err := net.Dial("tcp", server.Listener.Addr().String())
	require.NoError(t, err)
	defer conn.Close()
	require.NoError(t, conn.SetDeadline(time.Now().Add(5*time.Second)))

	_, err = io.WriteString(conn, "POST /api/v1/auth/login HTTP/1.1\r\n"+
		"Host: pos.test\r\n"+
		"Content-Type: application/json\r\n"+
		"Content-Length: 100\r\n\r\n"+
		`{"login":`)
	require.NoError(t, err)

	started := time.Now()
	resp, err := http.ReadResponse(bufio.NewReader(conn), nil)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Less(t, time.Since(started), 3*time.Second)
	assert.Equal(t, http.StatusGatewayTimeout, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get(requestIDHeader))

	var envelope models.ErrorEnvelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
	assert.Equal(t, app.MsgTimeout, envelope.Message)
}

func TestRoutes_TimeoutWrapsBodyDecoder(t *testing.T) {
	h, _ := newTestHandler(t, func(o *Options) { o.RequestTimeout = time.Minute })

	var hasDeadline bool
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, hasDeadline = r.Context().Deadline()
		w.WriteHeader(http.StatusNoContent)
	})

	rr := serve(h.withTimeout(h.withBody(next)), testRequest{method: http.MethodPost, target: "/api/v1/auth/login", body: `{"login":"desk"}`})

	assert.Equal(t, http.StatusNoContent, rr.Code)
	assert.True(t, hasDeadline)
}
