// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package logger

import (
	"context"
	"log/slog"
)

var _ slog.Handler = (*mockHandler)(nil)

type mockHandler struct{}

func (h mockHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (h mockHandler) Handle(context.Context, slog.Record) error { return nil }
func (h mockHandler) WithAttrs([]slog.Attr) slog.Handler        { return h }
func (h mockHandler) WithGroup(string) slog.Handler             { return h }

// NewMock returns a logger that discards all records. Used in tests.
func NewMock() *slog.Logger {
	return slog.New(mockHandler{})
}
