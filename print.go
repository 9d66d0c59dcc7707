package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/ralim/nxmissing/dataset"
	"github.com/ralim/nxmissing/query"
	"github.com/ralim/nxmissing/webui"
)

var (
	ErrUnknownKind   = errors.New("unknown kind")
	ErrUnknownColumn = errors.New("unknown sort column")
)

type printOptions struct {
	Kind   string
	Search string
	Sort   string
	Desc   bool
}

// printTable loads the data once and prints one kind as a table, for use without the server
func printTable(ctx context.Context, w io.Writer, src dataset.Source, opts printOptions) error {
	kind := dataset.Kind(opts.Kind)
	if !kind.Valid() {
		return fmt.Errorf("%w %q", ErrUnknownKind, opts.Kind)
	}
	q := query.Query{Search: opts.Search, Page: 1, PageSize: query.PageSizeAll}
	if opts.Sort != "" {
		key := query.Field(opts.Sort)
		if !query.HasColumn(kind, key) {
			return fmt.Errorf("%w %q for %s", ErrUnknownColumn, opts.Sort, kind)
		}
		q.Sort = query.Sort{Key: key, Dir: query.Ascending}
		if opts.Desc {
			q.Sort.Dir = query.Descending
		}
	}

	ds, err := dataset.Load(ctx, src)
	if err != nil {
		return err
	}
	result := query.Run(query.Flatten(ds, kind), q)

	columns := query.Columns(kind)
	header := table.Row{}
	for _, f := range columns {
		header = append(header, string(f))
	}
	tw := table.NewWriter()
	tw.SetOutputMirror(w)
	tw.SetStyle(table.StyleLight)
	tw.AppendHeader(header)
	for _, r := range result.Rows {
		row := table.Row{}
		for _, f := range columns {
			if f == query.FieldSize {
				row = append(row, webui.FormatSize(r.Size))
				continue
			}
			row = append(row, r.Value(f))
		}
		tw.AppendRow(row)
	}
	tw.AppendFooter(table.Row{fmt.Sprintf("%d rows", result.Total)})
	tw.Render()
	return nil
}
