// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package provider

import (
	"context"
	"slices"
)

// Provider supplies the records of one collection.
type Provider[T any] interface {
	// List returns the current records in display order. The caller
	// owns the returned slice.
	List(ctx context.Context) ([]T, error)
}

// Static is a Provider over a fixed slice.
type Static[T any] []T

// List returns a copy of the slice.
func (static Static[T]) List(context.Context) ([]T, error) {
	return slices.Clone([]T(static)), nil
}

// Func adapts a function to the Provider interface.
type Func[T any] func(ctx context.Context) ([]T, error)

// List calls the function.
func (function Func[T]) List(ctx context.Context) ([]T, error) {
	return function(ctx)
}
