package render

import (
	"context"

	"github.com/goliatone/go-datagrid/pkg/grid"
)

// Data carries the paginated resultset a renderer consumes for the current
// request: the records of the visible page plus the total count across all
// pages, as reported by the data source.
type Data struct {
	Records    []grid.Record
	TotalCount int
}

// Renderer converts a grid plus its current page of records into an output
// representation (HTML fragment, CSV file path, etc.).
type Renderer interface {
	Name() string
	ContentType() string
	Render(ctx context.Context, g *grid.Grid, data Data, options Options) (*Result, error)
}
