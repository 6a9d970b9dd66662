// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package consoleui

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	json "github.com/goccy/go-json"
)

// logRecordMsg delivers a slog record to the app for display in the
// status line.
type logRecordMsg struct {
	// Summary is the one-line "message (key=value, ...)" form.
	Summary string

	// Structured is the full record as JSON.
	Structured string

	Level slog.Level
}

// noticeFadeMsg clears the status line notice it was scheduled for.
// A newer notice bumps the sequence, so an older fade is ignored.
type noticeFadeMsg struct {
	sequence uint64
}

// noticeFadeDelay is how long a notice or log record stays in the
// status line.
const noticeFadeDelay = 5 * time.Second

// TUILogHandler is a slog.Handler that routes records into a
// bubbletea program as messages. Records below the configured level
// are dropped, as are records that arrive before SetProgram.
//
// Handlers derived through WithAttrs and WithGroup share the program
// pointer, so one SetProgram call reaches all of them.
type TUILogHandler struct {
	level   slog.Level
	program *atomic.Pointer[tea.Program]
	attrs   []slog.Attr
	groups  []string
}

// NewTUILogHandler creates a handler for records at or above level.
func NewTUILogHandler(level slog.Level) *TUILogHandler {
	return &TUILogHandler{
		level:   level,
		program: &atomic.Pointer[tea.Program]{},
	}
}

// SetProgram sets the program that receives log messages. Safe to
// call from any goroutine.
func (handler *TUILogHandler) SetProgram(program *tea.Program) {
	handler.program.Store(program)
}

// Enabled reports whether records at level are delivered.
func (handler *TUILogHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= handler.level
}

// Handle formats the record and sends it to the program.
func (handler *TUILogHandler) Handle(_ context.Context, record slog.Record) error {
	program := handler.program.Load()
	if program == nil {
		return nil
	}
	program.Send(handler.format(record))
	return nil
}

// format builds the message for a record. Split out of Handle so it
// can be checked without a running program.
func (handler *TUILogHandler) format(record slog.Record) logRecordMsg {
	prefix := ""
	if len(handler.groups) > 0 {
		prefix = strings.Join(handler.groups, ".") + "."
	}

	var parts []string
	fields := map[string]any{
		"time":  record.Time.Format(time.RFC3339),
		"level": record.Level.String(),
		"msg":   record.Message,
	}
	add := func(name string, value slog.Value) {
		parts = append(parts, fmt.Sprintf("%s=%s", name, value))
		fields[name] = value.String()
	}
	// Handler attrs were prefixed when they were attached.
	for _, attr := range handler.attrs {
		add(attr.Key, attr.Value)
	}
	record.Attrs(func(attr slog.Attr) bool {
		add(prefix+attr.Key, attr.Value)
		return true
	})

	summary := record.Message
	if len(parts) > 0 {
		summary += " (" + strings.Join(parts, ", ") + ")"
	}

	structured, err := json.Marshal(fields)
	if err != nil {
		structured = fmt.Appendf(nil, `{"msg":%q,"error":"marshal failed"}`, record.Message)
	}
	return logRecordMsg{
		Summary:    summary,
		Structured: string(structured),
		Level:      record.Level,
	}
}

// WithAttrs returns a handler with attrs appended under the current
// groups. It shares the program pointer with its parent.
func (handler *TUILogHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	prefix := ""
	if len(handler.groups) > 0 {
		prefix = strings.Join(handler.groups, ".") + "."
	}
	combined := slices.Clone(handler.attrs)
	for _, attr := range attrs {
		combined = append(combined, slog.Attr{Key: prefix + attr.Key, Value: attr.Value})
	}
	return &TUILogHandler{
		level:   handler.level,
		program: handler.program,
		attrs:   combined,
		groups:  slices.Clone(handler.groups),
	}
}

// WithGroup returns a handler that prefixes later attribute keys with
// name. It shares the program pointer with its parent.
func (handler *TUILogHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return handler
	}
	return &TUILogHandler{
		level:   handler.level,
		program: handler.program,
		attrs:   slices.Clone(handler.attrs),
		groups:  append(slices.Clone(handler.groups), name),
	}
}
