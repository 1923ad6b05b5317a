// Package params maps HTTP query parameters to grid state and back. Every
// parameter is namespaced by the grid name (tasks[order], tasks[page],
// tasks[f][status], ...) so several grids can share one page.
package params

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/goliatone/go-datagrid/pkg/grid"
)

// Namespaced query parameter keys, relative to the grid name.
const (
	KeyOrder          = "order"
	KeyOrderDirection = "order_direction"
	KeyPage           = "page"
	KeyPerPage        = "pp"
	KeyAllRecords     = "all"
	KeyExport         = "export"
	KeySavedQuery     = "q"
)

// Name returns the namespaced parameter name for a grid-level key,
// e.g. Name("tasks", KeyPage) == "tasks[page]".
func Name(gridName, key string) string {
	return gridName + "[" + key + "]"
}

// FilterName returns the namespaced parameter name for a column filter,
// e.g. FilterName("tasks", "status") == "tasks[f][status]".
func FilterName(gridName, field string) string {
	return gridName + "[f][" + field + "]"
}

// FromRequest extracts the grid state for the named grid from the request's
// query parameters, filling gaps from defaults. Unparseable numeric values
// and unknown directions fall back to the defaults rather than failing the
// request; state errors are reserved for programmer misuse.
func FromRequest(r *http.Request, gridName string, defaults grid.State) (grid.State, error) {
	if r == nil {
		return grid.State{}, fmt.Errorf("params: request is required")
	}
	if strings.TrimSpace(gridName) == "" {
		return grid.State{}, fmt.Errorf("params: grid name is required")
	}
	return FromValues(r.URL.Query(), gridName, defaults), nil
}

// FromValues is FromRequest over already-parsed query values.
func FromValues(q url.Values, gridName string, defaults grid.State) grid.State {
	state := defaults

	if v := q.Get(Name(gridName, KeyOrder)); v != "" {
		state.OrderBy = v
	}
	if v := q.Get(Name(gridName, KeyOrderDirection)); v != "" {
		if d := grid.Direction(strings.ToLower(v)); d.Valid() {
			state.Direction = d
		}
	}
	if v := q.Get(Name(gridName, KeyPage)); v != "" {
		if page, err := strconv.Atoi(v); err == nil && page > 0 {
			state.Page = page
		}
	}
	if v := q.Get(Name(gridName, KeyPerPage)); v != "" {
		if pp, err := strconv.Atoi(v); err == nil && pp > 0 {
			state.PerPage = pp
		}
	}
	if v := q.Get(Name(gridName, KeyAllRecords)); v != "" {
		state.AllRecords = v == "1" || v == "true"
	}
	if v := q.Get(Name(gridName, KeyExport)); v != "" {
		state.Export = v == "csv" || v == "1" || v == "true"
	}
	if v := q.Get(Name(gridName, KeySavedQuery)); v != "" {
		state.SavedQuery = v
	}

	filters := parseFilters(q, gridName)
	if len(filters) > 0 {
		merged := make(map[string][]string, len(filters)+len(state.Filters))
		for k, v := range state.Filters {
			merged[k] = v
		}
		for k, v := range filters {
			merged[k] = v
		}
		state.Filters = merged
	}

	if state.Page == 0 {
		state.Page = 1
	}
	return state
}

func parseFilters(q url.Values, gridName string) map[string][]string {
	prefix := gridName + "[f]["
	var filters map[string][]string
	for key, values := range q {
		if !strings.HasPrefix(key, prefix) || !strings.HasSuffix(key, "]") {
			continue
		}
		field := strings.TrimSuffix(strings.TrimPrefix(key, prefix), "]")
		if field == "" {
			continue
		}
		kept := values[:0:0]
		for _, v := range values {
			if strings.TrimSpace(v) != "" {
				kept = append(kept, v)
			}
		}
		if len(kept) == 0 {
			continue
		}
		if filters == nil {
			filters = make(map[string][]string)
		}
		filters[field] = kept
	}
	return filters
}
