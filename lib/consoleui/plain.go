// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package consoleui

import (
	"context"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/scalefield/console/lib/console"
	"github.com/scalefield/console/lib/listview"
	"github.com/scalefield/console/lib/provider"
)

// WritePlain prints the records of kind that pass the status and
// search filters as an aligned text table, one row per record, the id
// first. An empty status means the page's starting filter. Returns the
// number of rows written.
//
// This is the non-interactive rendition of a list page, used when
// stdout is not a terminal or --plain is given.
func WritePlain(ctx context.Context, w io.Writer, kind console.Kind, source *provider.BundleSource, status, search string) (int, error) {
	switch kind {
	case console.KindTable:
		return writePlain(ctx, w, tableSpec, source, status, search)
	case console.KindProject:
		return writePlain(ctx, w, projectSpec, source, status, search)
	case console.KindDeployment:
		return writePlain(ctx, w, deploymentSpec, source, status, search)
	case console.KindService:
		return writePlain(ctx, w, serviceSpec, source, status, search)
	case console.KindLog:
		return writePlain(ctx, w, logSpec, source, status, search)
	case console.KindWebhook:
		return writePlain(ctx, w, webhookSpec, source, status, search)
	case console.KindAPIKey:
		return writePlain(ctx, w, apiKeySpec, source, status, search)
	case console.KindMember:
		return writePlain(ctx, w, memberSpec, source, status, search)
	case console.KindInvoice:
		return writePlain(ctx, w, invoiceSpec, source, status, search)
	default:
		return 0, fmt.Errorf("no list page for %q", kind)
	}
}

func writePlain[T record](ctx context.Context, w io.Writer, spec kindSpec[T], source *provider.BundleSource, status, search string) (int, error) {
	items, err := spec.list(source).List(ctx)
	if err != nil {
		return 0, fmt.Errorf("listing %s: %w", spec.kind.Noun(), err)
	}

	filter := listview.NewFilterModel(nil)
	filter.Status = status
	if status == "" {
		filter.Status = spec.initialStatus
	}
	if filter.Status == "" {
		filter.Status = listview.StatusAll
	}
	filter.Input = search
	visible := listview.Visible(items, filter.State())

	writer := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	titles := []string{"ID"}
	for _, column := range spec.columns {
		titles = append(titles, strings.ToUpper(column.Title))
	}
	fmt.Fprintln(writer, strings.Join(titles, "\t"))
	for _, item := range visible {
		cells := []string{item.EntityID()}
		for _, column := range spec.columns {
			cells = append(cells, plainCell(column.Cell(item)))
		}
		fmt.Fprintln(writer, strings.Join(cells, "\t"))
	}
	if err := writer.Flush(); err != nil {
		return 0, err
	}
	return len(visible), nil
}

// plainCell keeps a cell on one line and out of the column separator.
func plainCell(text string) string {
	if text == "" {
		return "-"
	}
	return strings.NewReplacer("\t", " ", "\n", " ").Replace(text)
}
