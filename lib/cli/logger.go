// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"

	"golang.org/x/term"
)

// NewCommandLogger creates a structured logger for work done outside
// the TUI (plain output, bundle export). When stderr is a terminal it
// uses slog.TextHandler; when piped it uses slog.JSONHandler.
func NewCommandLogger(level slog.Level) *slog.Logger {
	var handler slog.Handler
	options := &slog.HandlerOptions{Level: level}
	if term.IsTerminal(int(os.Stderr.Fd())) {
		handler = slog.NewTextHandler(os.Stderr, options)
	} else {
		handler = slog.NewJSONHandler(os.Stderr, options)
	}
	return slog.New(handler)
}

// NewFileHandler opens path for appending and returns a JSON handler
// writing to it, plus the file's Close.
func NewFileHandler(path string, level slog.Level) (slog.Handler, io.Closer, error) {
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, err
	}
	return slog.NewJSONHandler(file, &slog.HandlerOptions{Level: level}), file, nil
}

// FanoutHandler sends every record to each of its handlers. A record
// is enabled if any handler wants it.
type FanoutHandler struct {
	handlers []slog.Handler
}

// NewFanoutHandler combines handlers. Nil handlers are skipped.
func NewFanoutHandler(handlers ...slog.Handler) *FanoutHandler {
	fanout := &FanoutHandler{}
	for _, handler := range handlers {
		if handler != nil {
			fanout.handlers = append(fanout.handlers, handler)
		}
	}
	return fanout
}

func (fanout *FanoutHandler) Enabled(ctx context.Context, level slog.Level) bool {
	for _, handler := range fanout.handlers {
		if handler.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

func (fanout *FanoutHandler) Handle(ctx context.Context, record slog.Record) error {
	var errs []error
	for _, handler := range fanout.handlers {
		if !handler.Enabled(ctx, record.Level) {
			continue
		}
		if err := handler.Handle(ctx, record.Clone()); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (fanout *FanoutHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	derived := &FanoutHandler{handlers: make([]slog.Handler, len(fanout.handlers))}
	for index, handler := range fanout.handlers {
		derived.handlers[index] = handler.WithAttrs(attrs)
	}
	return derived
}

func (fanout *FanoutHandler) WithGroup(name string) slog.Handler {
	derived := &FanoutHandler{handlers: make([]slog.Handler, len(fanout.handlers))}
	for index, handler := range fanout.handlers {
		derived.handlers[index] = handler.WithGroup(name)
	}
	return derived
}
