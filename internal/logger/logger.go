// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package logger wraps zerolog.Logger with the constructors and
// request-scoped helpers used by the billiard-pos server and posctl.
//
// Logger embeds zerolog.Logger, so the whole zerolog API is available on
// *Logger. Request handlers obtain their logger with FromRequest or
// FromContext; it carries the request_id of the request being served.
package logger

import (
	"context"
	"io"
	"net/http"
	"os"
	"runtime"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type Logger struct {
	zerolog.Logger
}

// NewLogger constructs a JSON logger writing to stdout. See [NewLoggerTo].
func NewLogger(role string) *Logger {
	return NewLoggerTo(role, os.Stdout)
}

// NewLoggerTo constructs a JSON logger writing to w. Every entry carries
// the role label, a timestamp and the calling function under "func".
//
// The global level is reset to Debug; call SetEnvironment afterwards to
// raise it.
func NewLoggerTo(role string, w io.Writer) *Logger {
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	zerolog.CallerMarshalFunc = func(pc uintptr, file string, line int) string {
		return runtime.FuncForPC(pc).Name()
	}
	zerolog.CallerFieldName = "func"

	logger := zerolog.New(w).With().
		Str("role", role).
		Timestamp().
		Caller().
		Logger()

	return &Logger{logger}
}

// SetEnvironment adjusts the global log level for the runtime environment:
// development keeps Debug, every other environment logs from Info up.
func SetEnvironment(env string) {
	if env == "development" {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
		return
	}
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
}

// Nop returns a *Logger that discards all log output.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// GetChildLogger returns a copy of the receiver that can be enriched
// without affecting the parent.
func (l *Logger) GetChildLogger() *Logger {
	return &Logger{l.With().Logger()}
}

// ForRequest returns a child logger carrying the request identifier and
// client address. upstreamID, the X-Request-Id sent by the caller, is added
// only when present.
func (l *Logger) ForRequest(requestID, clientIP, upstreamID string) *Logger {
	c := l.With().Str("request_id", requestID).Str("client_ip", clientIP)
	if upstreamID != "" {
		c = c.Str("upstream_request_id", upstreamID)
	}
	return &Logger{c.Logger()}
}

// FromRequest returns the logger attached to the request context.
func FromRequest(r *http.Request) *Logger {
	return FromContext(r.Context())
}

// FromContext returns the logger attached to ctx. When none is attached
// zerolog falls back to its default logger, so the result is never nil.
func FromContext(ctx context.Context) *Logger {
	return &Logger{*log.Ctx(ctx)}
}
