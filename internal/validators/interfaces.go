// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators provides declarative request validation for the HTTP
// pipeline.
//
// Core concepts:
//   - Schema: an ordered list of Field rules over path, query and body
//     parameters.
//   - Input: the raw parameters of one request.
//   - Values: the normalized, typed parameters returned when a request
//     satisfies its schema.
//
// Validation never stops at the first problem: every violated field is
// reported at once, and Values are only returned when there are none.
package validators

import "context"

// Validator checks the raw parameters of a request.
//
// On success it returns the normalized Values. On failure it returns an
// *app.Error of kind ValidationFailed listing every violation.
type Validator interface {
	Validate(ctx context.Context, in Input) (Values, error)
}
