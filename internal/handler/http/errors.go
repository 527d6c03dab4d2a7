// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors raised inside the pipeline before a handler runs.
// Callers can match against them with [errors.Is].
var (
	// ErrNoCredentials is returned by the authentication guard when neither
	// the "Authorization" header nor the access token cookie is present.
	ErrNoCredentials = errors.New("no credentials presented")

	// ErrBodyNotObject is returned when a JSON body is valid JSON but not an
	// object.
	ErrBodyNotObject = errors.New("json body is not an object")

	// ErrUploadTooLarge is returned when an uploaded file exceeds the
	// configured maximum size.
	ErrUploadTooLarge = errors.New("upload exceeds maximum size")

	// ErrUnsupportedFileType is returned for uploads outside the allowed
	// image types.
	ErrUnsupportedFileType = errors.New("unsupported file type")

	// ErrNoFileUploaded is returned when a multipart request carries no
	// file in the upload field.
	ErrNoFileUploaded = errors.New("no file uploaded")

	// ErrNoRequestContext is returned by a guard running outside the
	// request context stage.
	ErrNoRequestContext = errors.New("request context is missing")

	// ErrPanic wraps a recovered handler panic.
	ErrPanic = errors.New("handler panicked")
)
