package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/billiard-pos/internal/app"
	"github.com/MKhiriev/billiard-pos/internal/service"
	"github.com/MKhiriev/billiard-pos/internal/store"
	"github.com/MKhiriev/billiard-pos/internal/utils"
	"github.com/MKhiriev/billiard-pos/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantKind    app.Kind
		wantStatus  int
		wantMessage string
	}{
		{
			name:        "classified error is kept",
			err:         app.BadRequest("bad things"),
			wantKind:    app.KindBadRequest,
			wantStatus:  http.StatusBadRequest,
			wantMessage: "bad things",
		},
		{
			name:        "wrapped classified error",
			err:         fmt.Errorf("outer: %w", app.Forbidden("")),
			wantKind:    app.KindForbidden,
			wantStatus:  http.StatusForbidden,
			wantMessage: app.MsgForbidden,
		},
		{
			name:        "body too large",
			err:         &http.MaxBytesError{Limit: 10},
			wantKind:    app.KindPayloadTooLarge,
			wantStatus:  http.StatusRequestEntityTooLarge,
			wantMessage: app.MsgPayloadTooLarge,
		},
		{
			name:        "deadline",
			err:         fmt.Errorf("query: %w", context.DeadlineExceeded),
			wantKind:    app.KindTimeout,
			wantStatus:  http.StatusGatewayTimeout,
			wantMessage: app.MsgTimeout,
		},
		{
			name:        "product not found",
			err:         fmt.Errorf("get: %w", store.ErrProductNotFound),
			wantKind:    app.KindNotFound,
			wantStatus:  http.StatusNotFound,
			wantMessage: app.MsgProductNotFound,
		},
		{
			name:        "duplicate sku",
			err:         store.ErrProductSKUExists,
			wantKind:    app.KindConflict,
			wantStatus:  http.StatusConflict,
			wantMessage: app.MsgProductSKUExists,
		},
		{
			name:        "inactive account",
			err:         service.ErrUserIsInactive,
			wantKind:    app.KindUnauthenticated,
			wantStatus:  http.StatusUnauthorized,
			wantMessage: app.MsgInvalidLoginPassword,
		},
		{
			name:        "sentinel without message uses status text",
			err:         store.ErrNoUserWasFound,
			wantKind:    app.KindNotFound,
			wantStatus:  http.StatusNotFound,
			wantMessage: http.StatusText(http.StatusNotFound),
		},
		{
			name:        "unknown error",
			err:         errors.New("dial tcp: connection refused"),
			wantKind:    app.KindInternal,
			wantStatus:  http.StatusInternalServerError,
			wantMessage: app.MsgInternalServerError,
		},
		{
			name:        "recovered panic",
			err:         fmt.Errorf("%w: boom", ErrPanic),
			wantKind:    app.KindInternal,
			wantStatus:  http.StatusInternalServerError,
			wantMessage: app.MsgInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := classify(tt.err)

			assert.Equal(t, tt.wantKind, got.Kind)
			assert.Equal(t, tt.wantStatus, got.Status())
			assert.Equal(t, tt.wantMessage, got.Message)
		})
	}
}

func TestFail_ResponseAlreadyStarted(t *testing.T) {
	h, _ := newTestHandler(t)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"status":200}`))
		h.fail(w, r, errors.New("late failure"))
	})

	rr := httptest.NewRecorder()
	h.withLogging(next).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/v1/health", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, `{"status":200}`, rr.Body.String())
}

func TestFail_WebPage(t *testing.T) {
	h, _ := newTestHandler(t, func(o *Options) { o.Development = true })

	rc := models.NewRequestContext("req-42")
	req := httptest.NewRequest(http.MethodGet, "/products", nil)
	req = req.WithContext(utils.WithRequestContext(req.Context(), rc))

	rr := httptest.NewRecorder()
	h.fail(rr, req, app.Wrap(app.KindNotFound, app.MsgProductNotFound, errors.New("no rows")))

	require.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, "req-42", rr.Header().Get(requestIDHeader))
	body := rr.Body.String()
	assert.Contains(t, body, app.MsgProductNotFound)
	assert.Contains(t, body, "req-42")
	assert.Contains(t, body, "no rows")
}

func TestFail_APIEnvelopeWithoutRequestID(t *testing.T) {
	h, _ := newTestHandler(t)

	rr := httptest.NewRecorder()
	h.fail(rr, httptest.NewRequest(http.MethodGet, "/api/v1/x", nil), app.NotFound(app.MsgAPIRouteNotFound))

	assert.JSONEq(t, `{"status":404,"message":"API route not found","requestId":null}`, rr.Body.String())
}
