package app

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKind_Status_TableTest(t *testing.T) {
	tests := []struct {
		kind       Kind
		wantStatus int
		wantName   string
	}{
		{KindInternal, http.StatusInternalServerError, "Internal"},
		{KindUnauthenticated, http.StatusUnauthorized, "Unauthenticated"},
		{KindForbidden, http.StatusForbidden, "Forbidden"},
		{KindValidationFailed, http.StatusUnprocessableEntity, "ValidationFailed"},
		{KindBadRequest, http.StatusBadRequest, "BadRequest"},
		{KindPayloadTooLarge, http.StatusRequestEntityTooLarge, "PayloadTooLarge"},
		{KindNotFound, http.StatusNotFound, "NotFound"},
		{KindTimeout, http.StatusGatewayTimeout, "Timeout"},
		{KindConflict, http.StatusConflict, "Conflict"},
		{KindTooManyRequests, http.StatusTooManyRequests, "TooManyRequests"},
		{Kind(99), http.StatusInternalServerError, "Internal"},
	}

	for _, tt := range tests {
		t.Run(tt.wantName, func(t *testing.T) {
			assert.Equal(t, tt.wantStatus, tt.kind.Status())
			assert.Equal(t, tt.wantName, tt.kind.String())
		})
	}
}

func TestNew_EmptyMessageUsesStatusText(t *testing.T) {
	err := New(KindNotFound, "")
	assert.Equal(t, "Not Found", err.Message)
}

func TestAs_FindsWrappedError(t *testing.T) {
	cause := errors.New("db down")
	wrapped := fmt.Errorf("service: %w", Internal(cause))

	appErr, ok := As(wrapped)
	require.True(t, ok)
	assert.Equal(t, KindInternal, appErr.Kind)
	assert.Equal(t, MsgInternalServerError, appErr.Message)
	assert.ErrorIs(t, wrapped, cause)
}

func TestKindOf_UnclassifiedIsInternal(t *testing.T) {
	assert.Equal(t, KindInternal, KindOf(errors.New("boom")))
	assert.Equal(t, KindForbidden, KindOf(Forbidden("")))
}

func TestUnauthenticated_DefaultMessage(t *testing.T) {
	assert.Equal(t, MsgUnauthenticated, Unauthenticated("").Message)
	assert.Equal(t, MsgForbidden, Forbidden("").Message)
}
