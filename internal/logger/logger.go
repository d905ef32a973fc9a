// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package logger wraps zerolog for the tempest server. Loggers are passed
// around as *Logger; request handlers pick the request-scoped one out of the
// context with FromRequest or FromContext.
package logger

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"runtime"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const (
	roleField   = "role"
	callerField = "func"
)

// Logger embeds zerolog.Logger, so the whole zerolog API is available.
type Logger struct {
	zerolog.Logger
}

// NewLogger returns a JSON logger writing to stdout. Every entry carries
// the role, a timestamp and the name of the calling function.
func NewLogger(role string) *Logger {
	return newLogger(os.Stdout, role)
}

func newLogger(w io.Writer, role string) *Logger {
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	zerolog.CallerFieldName = callerField
	zerolog.CallerMarshalFunc = funcName

	zl := zerolog.New(w).
		With().
		Timestamp().
		Str(roleField, role).
		Caller().
		Logger()
	return &Logger{Logger: zl}
}

func funcName(pc uintptr, _ string, _ int) string {
	if fn := runtime.FuncForPC(pc); fn != nil {
		return fn.Name()
	}
	return "unknown"
}

// SetLevel switches the global level by name. An empty name is a no-op.
func SetLevel(level string) error {
	if level == "" {
		return nil
	}
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("unknown log level %q: %w", level, err)
	}
	zerolog.SetGlobalLevel(lvl)
	return nil
}

// Nop discards everything. Used in tests.
func Nop() *Logger {
	return &Logger{Logger: zerolog.Nop()}
}

// GetChildLogger copies l so that fields added to the copy stay off l.
func (l *Logger) GetChildLogger() *Logger {
	return &Logger{Logger: l.With().Logger()}
}

// FromContext returns the logger attached to ctx, or zerolog's default
// logger when there is none. It never returns nil.
func FromContext(ctx context.Context) *Logger {
	return &Logger{Logger: *log.Ctx(ctx)}
}

// FromRequest is FromContext for r's context.
func FromRequest(r *http.Request) *Logger {
	return FromContext(r.Context())
}
