package http

import (
	"context"
	"errors"
	"net/http"
	"os"

	"github.com/MKhiriev/billiard-pos/internal/app"
	"github.com/MKhiriev/billiard-pos/internal/service"
	"github.com/MKhiriev/billiard-pos/internal/store"
)

type kindMessage struct {
	kind    app.Kind
	message string
}

// errorKindMap classifies the sentinels of the lower layers. Entries
// without a message use the standard status text of the kind.
var errorKindMap = map[error]kindMessage{
	service.ErrInvalidDataProvided:     {app.KindBadRequest, "invalid data provided"},
	service.ErrInvalidCredentials:      {app.KindUnauthenticated, app.MsgInvalidLoginPassword},
	service.ErrUserIsInactive:          {app.KindUnauthenticated, app.MsgInvalidLoginPassword},
	service.ErrTokenIsExpiredOrInvalid: {app.KindUnauthenticated, app.MsgInvalidToken},

	store.ErrProductNotFound:     {app.KindNotFound, app.MsgProductNotFound},
	store.ErrProductSKUExists:    {app.KindConflict, app.MsgProductSKUExists},
	store.ErrLoginAlreadyExists:  {app.KindConflict, "login already exists"},
	store.ErrNoUserWasFound:      {app.KindNotFound, ""},
	store.ErrUploadNameExhausted: {app.KindInternal, ""},

	ErrNoCredentials:       {app.KindUnauthenticated, app.MsgUnauthenticated},
	ErrBodyNotObject:       {app.KindBadRequest, app.MsgInvalidJSON},
	ErrUploadTooLarge:      {app.KindPayloadTooLarge, app.MsgPayloadTooLarge},
	ErrUnsupportedFileType: {app.KindBadRequest, app.MsgUnsupportedFileType},
	ErrNoFileUploaded:      {app.KindBadRequest, app.MsgNoFileUploaded},
}

// classify resolves err into a classified failure:
//   - an *app.Error is used as is;
//   - a body over the limit is PayloadTooLarge;
//   - an expired request or connection read deadline is Timeout;
//   - known sentinels are looked up in errorKindMap;
//   - everything else is Internal with the generic message.
func classify(err error) *app.Error {
	if appErr, ok := app.As(err); ok {
		return appErr
	}

	var maxBytesErr *http.MaxBytesError
	if errors.As(err, &maxBytesErr) {
		return app.Wrap(app.KindPayloadTooLarge, app.MsgPayloadTooLarge, err)
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, os.ErrDeadlineExceeded) {
		return app.Wrap(app.KindTimeout, app.MsgTimeout, err)
	}

	for target, km := range errorKindMap {
		if errors.Is(err, target) {
			return app.Wrap(km.kind, km.message, err)
		}
	}

	return app.Internal(err)
}
