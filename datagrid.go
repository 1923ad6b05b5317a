// Package datagrid renders interactive, filterable, sortable, paginated
// HTML tables (and their CSV exports) for server-rendered pages. It is the
// facade over the building blocks under pkg/: declare a grid with a Builder,
// read its state from the request, fetch a page of records through a data
// source, and hand everything to Render.
package datagrid

import (
	"context"
	"net/http"

	"github.com/goliatone/go-datagrid/pkg/grid"
	"github.com/goliatone/go-datagrid/pkg/params"
	"github.com/goliatone/go-datagrid/pkg/render"
	"github.com/goliatone/go-datagrid/pkg/renderers/csvexport"
	"github.com/goliatone/go-datagrid/pkg/renderers/htmlgrid"
)

// Re-exported core types so simple integrations need only this package.
type (
	Grid       = grid.Grid
	Builder    = grid.Builder
	Column     = grid.Column
	State      = grid.State
	Record     = grid.Record
	LOVItem    = grid.LOVItem
	CellOutput = grid.CellOutput
	Direction  = grid.Direction

	Options = render.Options
	Result  = render.Result
	Data    = render.Data
)

const (
	DirectionAsc  = grid.DirectionAsc
	DirectionDesc = grid.DirectionDesc

	FilterText   = grid.FilterText
	FilterSelect = grid.FilterSelect
	FilterBool   = grid.FilterBool
)

// NewBuilder starts a grid declaration.
func NewBuilder(name string) *Builder { return grid.NewBuilder(name) }

// Cell wraps a plain cell value.
func Cell(value any) CellOutput { return grid.Cell(value) }

// CellWithAttrs wraps a cell value plus extra cell attributes.
func CellWithAttrs(value any, attrs map[string]string) CellOutput {
	return grid.CellWithAttrs(value, attrs)
}

// StateFromRequest reads a grid's namespaced query parameters off a request.
func StateFromRequest(r *http.Request, gridName string, defaults State) (State, error) {
	return params.FromRequest(r, gridName, defaults)
}

// DefaultRegistry carries the built-in HTML and CSV renderers.
var DefaultRegistry = newDefaultRegistry()

func newDefaultRegistry() *render.Registry {
	registry := render.NewRegistry()
	registry.MustRegister(htmlgrid.MustNew())
	registry.MustRegister(csvexport.New())
	return registry
}

// Render dispatches on the grid's state: export requests go to the CSV
// renderer, everything else renders HTML. The grid memoises the result, so
// repeated calls follow the replay rules of the chosen renderer.
func Render(ctx context.Context, g *Grid, data Data, options Options) (*Result, error) {
	name := "html"
	if g != nil && g.State().Export {
		name = "csv"
	}
	renderer, err := DefaultRegistry.Get(name)
	if err != nil {
		return nil, err
	}
	return renderer.Render(ctx, g, data, options)
}

// DetachedFilter returns the named detached filter fragment of an already
// rendered grid.
func DetachedFilter(g *Grid, key string) (string, error) {
	if g == nil {
		return "", grid.ErrNoStoredResult
	}
	stored, ok := g.StoredResult()
	if !ok {
		return "", grid.ErrNoStoredResult
	}
	result, ok := stored.(*render.Result)
	if !ok {
		return "", grid.ErrNoStoredResult
	}
	return result.DetachedFilter(key)
}

// SubmitTrigger renders a button that submits the named grid's filters from
// anywhere on the page.
func SubmitTrigger(gridName, label string, attrs map[string]string) string {
	return htmlgrid.SubmitTrigger(gridName, label, attrs)
}

// ResetTrigger renders a button that clears the named grid's filters.
func ResetTrigger(gridName, label string, attrs map[string]string) string {
	return htmlgrid.ResetTrigger(gridName, label, attrs)
}
