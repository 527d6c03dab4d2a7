package app

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/billiard-pos/models"
)

// Kind classifies a failure. The zero value is [KindInternal], so an
// unclassified failure is never reported as anything milder.
type Kind int

const (
	KindInternal Kind = iota
	KindUnauthenticated
	KindForbidden
	KindValidationFailed
	KindBadRequest
	KindPayloadTooLarge
	KindNotFound
	KindTimeout
	KindConflict
	KindTooManyRequests
)

var kindNames = map[Kind]string{
	KindInternal:         "Internal",
	KindUnauthenticated:  "Unauthenticated",
	KindForbidden:        "Forbidden",
	KindValidationFailed: "ValidationFailed",
	KindBadRequest:       "BadRequest",
	KindPayloadTooLarge:  "PayloadTooLarge",
	KindNotFound:         "NotFound",
	KindTimeout:          "Timeout",
	KindConflict:         "Conflict",
	KindTooManyRequests:  "TooManyRequests",
}

var kindStatuses = map[Kind]int{
	KindInternal:         http.StatusInternalServerError,
	KindUnauthenticated:  http.StatusUnauthorized,
	KindForbidden:        http.StatusForbidden,
	KindValidationFailed: http.StatusUnprocessableEntity,
	KindBadRequest:       http.StatusBadRequest,
	KindPayloadTooLarge:  http.StatusRequestEntityTooLarge,
	KindNotFound:         http.StatusNotFound,
	KindTimeout:          http.StatusGatewayTimeout,
	KindConflict:         http.StatusConflict,
	KindTooManyRequests:  http.StatusTooManyRequests,
}

// String returns the taxonomy name of the kind.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return kindNames[KindInternal]
}

// Status returns the HTTP status code of the kind.
func (k Kind) Status() int {
	if status, ok := kindStatuses[k]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// Error is a classified failure travelling from a guard, the validation
// layer or a handler to the error classifier.
type Error struct {
	// Kind selects the status code and the taxonomy name.
	Kind Kind

	// Message is safe to show to the caller.
	Message string

	// Fields is the validation report of a KindValidationFailed error.
	Fields []models.FieldViolation

	// Err is the internal cause. It is only exposed in development mode.
	Err error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Err != nil {
		return e.Kind.String() + ": " + e.Message + ": " + e.Err.Error()
	}
	return e.Kind.String() + ": " + e.Message
}

// Unwrap returns the internal cause.
func (e *Error) Unwrap() error {
	return e.Err
}

// Status returns the HTTP status code of the failure.
func (e *Error) Status() int {
	return e.Kind.Status()
}

// New creates a classified failure. An empty message is replaced by the
// standard status text of the kind.
func New(kind Kind, message string) *Error {
	if message == "" {
		message = http.StatusText(kind.Status())
	}
	return &Error{Kind: kind, Message: message}
}

// Wrap classifies cause under kind with a caller-safe message.
func Wrap(kind Kind, message string, cause error) *Error {
	e := New(kind, message)
	e.Err = cause
	return e
}

// Unauthenticated reports a missing or invalid credential.
func Unauthenticated(message string) *Error {
	if message == "" {
		message = MsgUnauthenticated
	}
	return New(KindUnauthenticated, message)
}

// Forbidden reports an identity lacking the required roles.
func Forbidden(message string) *Error {
	if message == "" {
		message = MsgForbidden
	}
	return New(KindForbidden, message)
}

// ValidationFailed reports the complete list of violated fields.
func ValidationFailed(fields []models.FieldViolation) *Error {
	e := New(KindValidationFailed, MsgValidationFailed)
	e.Fields = fields
	return e
}

// BadRequest reports a malformed request.
func BadRequest(message string) *Error {
	return New(KindBadRequest, message)
}

// NotFound reports a missing route or resource.
func NotFound(message string) *Error {
	return New(KindNotFound, message)
}

// Internal wraps an unexpected failure. The caller only ever sees the
// generic message.
func Internal(cause error) *Error {
	return Wrap(KindInternal, MsgInternalServerError, cause)
}

// As extracts a classified failure from err.
func As(err error) (*Error, bool) {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// KindOf returns the kind of err, or KindInternal when err is not classified.
func KindOf(err error) Kind {
	if appErr, ok := As(err); ok {
		return appErr.Kind
	}
	return KindInternal
}
