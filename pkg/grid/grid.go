package grid

import (
	"errors"
	"fmt"
	"net/url"
)

// ErrNoStoredResult reports that a grid accessor needing the memoised render
// result ran before the grid was rendered.
var ErrNoStoredResult = errors.New("grid: no stored render result; render the grid first")

// RenderedResult is the contract a renderer's result satisfies so the grid
// can memoise its first render within a request. Replayable results (those
// carrying detached filter fragments) are handed back verbatim on a second
// render; anything else makes a repeat render an error.
type RenderedResult interface {
	Replayable() bool
}

// Grid is a named, stateful, paginated+filterable+sortable view over a
// collection. Build one with a Builder; a Grid is request-scoped and must
// not be shared across requests.
type Grid struct {
	name        string
	title       string
	columns     []Column
	state       State
	blankSlate  string
	extraParams url.Values

	stored RenderedResult
}

// Title returns the human-facing caption, defaulting to a humanised name.
func (g *Grid) Title() string {
	if g.title != "" {
		return g.title
	}
	return humanize(g.name)
}

// Name returns the grid identifier used for CSS ids, parameter namespacing
// and the client-side controller instance.
func (g *Grid) Name() string { return g.name }

// Columns returns the declared columns in declaration order.
func (g *Grid) Columns() []Column { return g.columns }

// State returns the request-scoped sort/filter/pagination state.
func (g *Grid) State() State { return g.state }

// BlankSlate returns the fragment shown when the unfiltered grid is empty,
// or "" when no blank-slate handler was declared.
func (g *Grid) BlankSlate() string { return g.blankSlate }

// ExtraParams returns additional query parameters preserved across every
// link the grid generates.
func (g *Grid) ExtraParams() url.Values { return g.extraParams }

// HasDetachedFilters reports whether any column requests out-of-table filter
// rendering.
func (g *Grid) HasDetachedFilters() bool {
	for _, col := range g.columns {
		if col.Detached() {
			return true
		}
	}
	return false
}

// StoreResult memoises the first render of the grid. A second call is a
// misuse and returns an error naming the grid.
func (g *Grid) StoreResult(result RenderedResult) error {
	if result == nil {
		return fmt.Errorf("grid: nil result for grid %q", g.name)
	}
	if g.stored != nil {
		return fmt.Errorf("grid: grid %q already has a stored render result", g.name)
	}
	g.stored = result
	return nil
}

// StoredResult returns the memoised render result, if any.
func (g *Grid) StoredResult() (RenderedResult, bool) {
	if g.stored == nil {
		return nil, false
	}
	return g.stored, true
}
