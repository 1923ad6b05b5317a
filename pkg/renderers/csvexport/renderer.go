// Package csvexport renders a grid's full resultset as a CSV file on disk
// and reports the file path, leaving the transfer to the caller.
package csvexport

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"

	"github.com/goliatone/go-datagrid/pkg/grid"
	"github.com/goliatone/go-datagrid/pkg/render"
)

// Renderer implements render.Renderer for CSV export. Only columns marked
// for CSV output participate; the header row carries their labels in
// declaration order.
type Renderer struct {
	dir       string
	delimiter rune
}

var _ render.Renderer = (*Renderer)(nil)

// Option configures a Renderer.
type Option func(*Renderer)

// WithDir writes export files under dir instead of the system temp
// directory.
func WithDir(dir string) Option {
	return func(r *Renderer) {
		r.dir = dir
	}
}

// WithDelimiter overrides the comma as field separator.
func WithDelimiter(d rune) Option {
	return func(r *Renderer) {
		if d != 0 {
			r.delimiter = d
		}
	}
}

// New builds a CSV renderer.
func New(options ...Option) *Renderer {
	r := &Renderer{delimiter: ','}
	for _, opt := range options {
		if opt != nil {
			opt(r)
		}
	}
	return r
}

func (r *Renderer) Name() string { return "csv" }

func (r *Renderer) ContentType() string { return "text/csv" }

// Render writes the export file and returns a result pointing at it. The
// caller is expected to hand data covering the entire resultset; pagination
// does not apply to exports.
func (r *Renderer) Render(ctx context.Context, g *grid.Grid, data render.Data, opts render.Options) (*render.Result, error) {
	if g == nil {
		return nil, fmt.Errorf("csvexport: nil grid")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	cols := csvColumns(g.Columns())
	if len(cols) == 0 {
		return nil, fmt.Errorf("csvexport: grid %q declares no CSV columns", g.Name())
	}

	file, err := os.CreateTemp(r.dir, g.Name()+"-*.csv")
	if err != nil {
		return nil, fmt.Errorf("csvexport: create export file for grid %q: %w", g.Name(), err)
	}

	// A failed export must not leave a partial file behind.
	fail := func(err error) (*render.Result, error) {
		file.Close()
		os.Remove(file.Name())
		return nil, err
	}

	w := csv.NewWriter(file)
	w.Comma = r.delimiter

	header := make([]string, len(cols))
	for i, col := range cols {
		header[i] = col.HeaderLabel()
	}
	if err := w.Write(header); err != nil {
		return fail(fmt.Errorf("csvexport: write header for grid %q: %w", g.Name(), err))
	}

	row := make([]string, len(cols))
	for _, rec := range data.Records {
		for i, col := range cols {
			out, err := col.Renderer()(rec)
			if err != nil {
				return fail(fmt.Errorf("csvexport: rendering column %q for grid %q: %w", col.HeaderLabel(), g.Name(), err))
			}
			if !out.Built() {
				return fail(fmt.Errorf("csvexport: column %q of grid %q returned a cell output that was not constructed with Cell or CellWithAttrs", col.HeaderLabel(), g.Name()))
			}
			row[i] = out.Value()
		}
		if err := w.Write(row); err != nil {
			return fail(fmt.Errorf("csvexport: write row for grid %q: %w", g.Name(), err))
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fail(fmt.Errorf("csvexport: flush export for grid %q: %w", g.Name(), err))
	}
	if err := file.Close(); err != nil {
		os.Remove(file.Name())
		return nil, fmt.Errorf("csvexport: close export for grid %q: %w", g.Name(), err)
	}

	result := render.NewCSVResult(file.Name())
	if err := g.StoreResult(result); err != nil {
		os.Remove(file.Name())
		return nil, err
	}
	return result, nil
}

func csvColumns(cols []grid.Column) []grid.Column {
	out := make([]grid.Column, 0, len(cols))
	for _, c := range cols {
		if c.InCSV {
			out = append(out, c)
		}
	}
	return out
}
