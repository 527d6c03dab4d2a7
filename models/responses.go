// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Response is the success body of every API endpoint.
type Response struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

// FieldViolation is one entry of a validation report.
type FieldViolation struct {
	// Field is the parameter or body field name.
	Field string `json:"field"`

	// In is where the field was read from: "path", "query" or "body".
	In string `json:"in"`

	// Message describes the violated rule.
	Message string `json:"message"`
}

// ErrorEnvelope is the body of every failed API response.
type ErrorEnvelope struct {
	Status    int              `json:"status"`
	Message   string           `json:"message"`
	RequestID *string          `json:"requestId"`
	Errors    []FieldViolation `json:"errors,omitempty"`

	// Detail carries the internal failure description. It is only filled
	// in development mode.
	Detail string `json:"detail,omitempty"`
}

// LoginResponse is returned by a successful login.
type LoginResponse struct {
	Token     string `json:"token"`
	ExpiresAt int64  `json:"expires_at"`
	User      User   `json:"user"`
}

// HealthResponse is returned by the health endpoint.
type HealthResponse struct {
	Status  string `json:"status"`
	Name    string `json:"name"`
	Version string `json:"version"`
	Uptime  string `json:"uptime"`
}
