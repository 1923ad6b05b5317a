// Package datasource defines the contract grids fetch their records through,
// plus a translation from request-scoped grid state into a backend-neutral
// query.
package datasource

import (
	"context"

	"github.com/goliatone/go-datagrid/pkg/grid"
	"github.com/goliatone/go-datagrid/pkg/render"
)

// Query is the backend-neutral description of one page of a grid's data.
type Query struct {
	// Filters maps field names to requested values. Multiple values for one
	// field are alternatives (IN semantics).
	Filters map[string][]string

	OrderBy   string
	Direction grid.Direction

	// Limit/Offset page the resultset. Limit <= 0 means no paging (the
	// all-records mode and CSV export use this).
	Limit  int
	Offset int
}

// Source supplies records and counts for a grid.
type Source interface {
	Count(ctx context.Context, q Query) (int, error)
	Fetch(ctx context.Context, q Query) ([]grid.Record, error)
}

// FromState translates request-scoped grid state into a Query. Export and
// all-records modes disable paging.
func FromState(state grid.State) Query {
	q := Query{
		Filters:   state.Filters,
		OrderBy:   state.OrderBy,
		Direction: state.Direction,
	}
	if state.OrderBy != "" && !q.Direction.Valid() {
		q.Direction = grid.DirectionAsc
	}
	if state.AllRecords || state.Export {
		return q
	}

	perPage := state.PerPage
	if perPage <= 0 {
		perPage = render.DefaultPerPage
	}
	page := state.Page
	if page < 1 {
		page = 1
	}
	q.Limit = perPage
	q.Offset = (page - 1) * perPage
	return q
}

// LoadPage runs Count and Fetch against a source and packs the outcome into
// renderer input.
func LoadPage(ctx context.Context, src Source, state grid.State) (render.Data, error) {
	q := FromState(state)
	total, err := src.Count(ctx, q)
	if err != nil {
		return render.Data{}, err
	}
	records, err := src.Fetch(ctx, q)
	if err != nil {
		return render.Data{}, err
	}
	return render.Data{Records: records, TotalCount: total}, nil
}
