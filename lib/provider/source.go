// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package provider

import (
	"context"
	"log/slog"
	"reflect"
	"slices"
	"sync"

	"github.com/scalefield/console/lib/console"
)

// BundleSource holds the bundle the console is showing. Collection
// providers read the current bundle on every List call, so a Reload
// is visible to the next page load. Safe for concurrent use.
type BundleSource struct {
	mu     sync.RWMutex
	bundle *console.Bundle

	// load re-reads the bundle for Reload. Nil for static sources.
	load   func() (*console.Bundle, error)
	path   string
	tables Provider[console.Table]
	logger *slog.Logger
}

// NewStaticSource serves a fixed bundle. Reload is a no-op.
func NewStaticSource(bundle *console.Bundle) *BundleSource {
	return &BundleSource{bundle: bundle, logger: slog.New(slog.DiscardHandler)}
}

// OpenBundle loads the bundle at path and returns a source that
// reloads from the same path.
func OpenBundle(path string, options LoadOptions, logger *slog.Logger) (*BundleSource, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	load := func() (*console.Bundle, error) { return LoadFile(path, options) }
	bundle, err := load()
	if err != nil {
		return nil, err
	}
	logger.Info("bundle loaded", "path", path, "deployments", len(bundle.Deployments), "projects", len(bundle.Projects))
	return &BundleSource{bundle: bundle, load: load, path: path, logger: logger}, nil
}

// Path returns the bundle file, or "" for a static source.
func (source *BundleSource) Path() string { return source.path }

// Bundle returns the current bundle. Callers must not modify it.
func (source *BundleSource) Bundle() *console.Bundle {
	source.mu.RLock()
	defer source.mu.RUnlock()
	return source.bundle
}

// SetTables replaces the table editor's provider, typically with a
// [TableCatalog]. Nil restores the bundle's own tables.
func (source *BundleSource) SetTables(tables Provider[console.Table]) {
	source.mu.Lock()
	defer source.mu.Unlock()
	source.tables = tables
}

// Reload re-reads the bundle. On error the previous bundle stays in
// place. Returns the ids that are new or changed, per kind.
func (source *BundleSource) Reload() (Changes, error) {
	if source.load == nil {
		return nil, nil
	}
	bundle, err := source.load()
	if err != nil {
		source.logger.Warn("bundle reload failed", "path", source.path, "error", err)
		return nil, err
	}

	source.mu.Lock()
	previous := source.bundle
	source.bundle = bundle
	source.mu.Unlock()

	changes := Diff(previous, bundle)
	source.logger.Info("bundle reloaded", "path", source.path, "changed", changes.Count())
	return changes, nil
}

// Tables lists the table editor's tables.
func (source *BundleSource) Tables() Provider[console.Table] {
	return Func[console.Table](func(ctx context.Context) ([]console.Table, error) {
		source.mu.RLock()
		tables := source.tables
		source.mu.RUnlock()
		if tables != nil {
			return tables.List(ctx)
		}
		return collection(source, func(bundle *console.Bundle) []console.Table { return bundle.Tables }).List(ctx)
	})
}

func (source *BundleSource) Projects() Provider[console.Project] {
	return collection(source, func(bundle *console.Bundle) []console.Project { return bundle.Projects })
}

func (source *BundleSource) Deployments() Provider[console.Deployment] {
	return collection(source, func(bundle *console.Bundle) []console.Deployment { return bundle.Deployments })
}

func (source *BundleSource) Services() Provider[console.Service] {
	return collection(source, func(bundle *console.Bundle) []console.Service { return bundle.Services })
}

func (source *BundleSource) Logs() Provider[console.LogEntry] {
	return collection(source, func(bundle *console.Bundle) []console.LogEntry { return bundle.Logs })
}

func (source *BundleSource) Webhooks() Provider[console.Webhook] {
	return collection(source, func(bundle *console.Bundle) []console.Webhook { return bundle.Webhooks })
}

func (source *BundleSource) APIKeys() Provider[console.APIKey] {
	return collection(source, func(bundle *console.Bundle) []console.APIKey { return bundle.APIKeys })
}

func (source *BundleSource) Members() Provider[console.Member] {
	return collection(source, func(bundle *console.Bundle) []console.Member { return bundle.Members })
}

func (source *BundleSource) Invoices() Provider[console.Invoice] {
	return collection(source, func(bundle *console.Bundle) []console.Invoice { return bundle.Invoices })
}

func collection[T any](source *BundleSource, pick func(*console.Bundle) []T) Provider[T] {
	return Func[T](func(ctx context.Context) ([]T, error) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		source.mu.RLock()
		defer source.mu.RUnlock()
		return slices.Clone(pick(source.bundle)), nil
	})
}

// Changes lists new or modified record ids per kind.
type Changes map[console.Kind][]string

// Count returns the total number of changed records.
func (changes Changes) Count() int {
	total := 0
	for _, ids := range changes {
		total += len(ids)
	}
	return total
}

// Diff compares two bundles record by record. Removed records are not
// reported; the list simply no longer shows them.
func Diff(previous, current *console.Bundle) Changes {
	changes := Changes{}
	if current == nil {
		return changes
	}
	if previous == nil {
		previous = &console.Bundle{}
	}
	diffInto(changes, console.KindTable, previous.Tables, current.Tables, console.Table.EntityID)
	diffInto(changes, console.KindProject, previous.Projects, current.Projects, console.Project.EntityID)
	diffInto(changes, console.KindDeployment, previous.Deployments, current.Deployments, console.Deployment.EntityID)
	diffInto(changes, console.KindService, previous.Services, current.Services, console.Service.EntityID)
	diffInto(changes, console.KindLog, previous.Logs, current.Logs, console.LogEntry.EntityID)
	diffInto(changes, console.KindWebhook, previous.Webhooks, current.Webhooks, console.Webhook.EntityID)
	diffInto(changes, console.KindAPIKey, previous.APIKeys, current.APIKeys, console.APIKey.EntityID)
	diffInto(changes, console.KindMember, previous.Members, current.Members, console.Member.EntityID)
	diffInto(changes, console.KindInvoice, previous.Invoices, current.Invoices, console.Invoice.EntityID)
	return changes
}

func diffInto[T any](changes Changes, kind console.Kind, previous, current []T, id func(T) string) {
	old := make(map[string]T, len(previous))
	for _, record := range previous {
		old[id(record)] = record
	}
	for _, record := range current {
		before, exists := old[id(record)]
		if !exists || !reflect.DeepEqual(before, record) {
			changes[kind] = append(changes[kind], id(record))
		}
	}
}
