// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the application-wide failure taxonomy and the shared
// message constants used by the HTTP pipeline and the services.
//
// All Msg* constants are human-readable strings written into response
// bodies or log entries. Keeping them in one place keeps the wording of the
// API consistent.
package app

const (
	// MsgInternalServerError is the only message an unclassified failure
	// exposes outside development mode.
	MsgInternalServerError = "Internal Server Error"

	// MsgUnauthenticated is returned when no valid credential was presented.
	MsgUnauthenticated = "Authentication required"

	// MsgInvalidToken is returned when the presented credential cannot be verified.
	MsgInvalidToken = "Invalid or expired token"

	// MsgForbidden is returned when the caller's roles do not allow the route.
	MsgForbidden = "Insufficient permissions"

	// MsgValidationFailed is the envelope message of a validation report.
	MsgValidationFailed = "Validation failed"

	// MsgPayloadTooLarge is returned when a body exceeds the configured limit.
	MsgPayloadTooLarge = "Payload too large"

	// MsgInvalidJSON is returned when a JSON body cannot be decoded.
	MsgInvalidJSON = "Invalid JSON was passed"

	// MsgAPIRouteNotFound is returned for unmatched paths under the API prefix.
	MsgAPIRouteNotFound = "API route not found"

	// MsgNotFound is rendered for unmatched web paths.
	MsgNotFound = "Not Found"

	// MsgTimeout is returned when a request exceeds its deadline.
	MsgTimeout = "Request timed out"

	// MsgNoFileUploaded is returned when the upload field carries no file.
	MsgNoFileUploaded = "No file uploaded"

	// MsgUnsupportedFileType is returned for uploads outside the allowed image types.
	MsgUnsupportedFileType = "Unsupported file type"

	// MsgTooManyRequests is returned by the rate limiter.
	MsgTooManyRequests = "Too many requests"

	// MsgInvalidLoginPassword is returned when a login/password pair does not match.
	MsgInvalidLoginPassword = "invalid login/password"

	// MsgProductNotFound is returned when a product ID does not exist.
	MsgProductNotFound = "Product not found"

	// MsgProductSKUExists is returned when a SKU is already taken.
	MsgProductSKUExists = "Product SKU already exists"
)
