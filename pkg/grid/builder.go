package grid

import (
	"fmt"
	"net/url"
	"strings"
)

// Builder assembles a Grid from an ordered list of column declarations. It
// replaces ad-hoc declaration blocks with an explicit registration API that
// validates the whole declaration when Build is called.
type Builder struct {
	name        string
	title       string
	columns     []Column
	state       State
	blankSlate  string
	extraParams url.Values
}

// NewBuilder starts a grid declaration under the given name.
func NewBuilder(name string) *Builder {
	return &Builder{name: strings.TrimSpace(name)}
}

// Column appends a column declaration. Declaration order is rendering order.
// Columns participate in both HTML and CSV output; use ColumnHTMLOnly or
// ColumnCSVOnly to restrict a column to one output.
func (b *Builder) Column(col Column) *Builder {
	col.InHTML = true
	col.InCSV = true
	b.columns = append(b.columns, col)
	return b
}

// ColumnHTMLOnly appends a column excluded from CSV export.
func (b *Builder) ColumnHTMLOnly(col Column) *Builder {
	col.InHTML = true
	col.InCSV = false
	b.columns = append(b.columns, col)
	return b
}

// ColumnCSVOnly appends a column excluded from HTML output.
func (b *Builder) ColumnCSVOnly(col Column) *Builder {
	col.InHTML = false
	col.InCSV = true
	b.columns = append(b.columns, col)
	return b
}

// Title sets the caption rendered in the grid's title bar.
func (b *Builder) Title(title string) *Builder {
	b.title = strings.TrimSpace(title)
	return b
}

// State sets the request-scoped grid state.
func (b *Builder) State(s State) *Builder {
	b.state = s
	return b
}

// BlankSlate declares the fragment shown when the unfiltered grid has no
// records. The HTML renderer sanitises it before output.
func (b *Builder) BlankSlate(fragment string) *Builder {
	b.blankSlate = fragment
	return b
}

// ExtraParam adds a query parameter preserved across generated links.
func (b *Builder) ExtraParam(key, value string) *Builder {
	if b.extraParams == nil {
		b.extraParams = url.Values{}
	}
	b.extraParams.Add(key, value)
	return b
}

// Build validates the declaration and returns the Grid.
func (b *Builder) Build() (*Grid, error) {
	if b.name == "" {
		return nil, fmt.Errorf("grid: a grid needs a name")
	}
	if len(b.columns) == 0 {
		return nil, fmt.Errorf("grid: grid %q declares no columns", b.name)
	}

	detachKeys := make(map[string]struct{})
	for i, col := range b.columns {
		where := fmt.Sprintf("grid %q column %d", b.name, i+1)

		if col.Label == "" && col.Field == "" {
			return nil, fmt.Errorf("grid: %s needs a label or a bound field", where)
		}
		if col.Sortable && col.Field == "" {
			return nil, fmt.Errorf("grid: %s is sortable but binds no field", where)
		}
		if col.Filterable && col.Field == "" {
			return nil, fmt.Errorf("grid: %s is filterable but binds no field", where)
		}
		if !col.Filterable && col.DetachKey != "" {
			return nil, fmt.Errorf("grid: %s sets a detach key but is not filterable", where)
		}
		if col.Render == nil && col.Field == "" {
			return nil, fmt.Errorf("grid: %s binds no field and has no cell renderer", where)
		}

		switch col.FilterKindOrDefault() {
		case FilterText, FilterBool:
		case FilterSelect:
			if len(col.Options) == 0 {
				return nil, fmt.Errorf("grid: %s declares a select filter without options", where)
			}
		default:
			return nil, fmt.Errorf("grid: %s uses unknown filter kind %q", where, col.Filter)
		}

		if col.DetachKey != "" {
			if _, dup := detachKeys[col.DetachKey]; dup {
				return nil, fmt.Errorf("grid: %s reuses detach key %q", where, col.DetachKey)
			}
			detachKeys[col.DetachKey] = struct{}{}
		}
	}

	if b.state.Direction != "" && !b.state.Direction.Valid() {
		return nil, fmt.Errorf("grid: grid %q has invalid sort direction %q", b.name, b.state.Direction)
	}

	return &Grid{
		name:        b.name,
		title:       b.title,
		columns:     append([]Column(nil), b.columns...),
		state:       b.state,
		blankSlate:  b.blankSlate,
		extraParams: b.extraParams,
	}, nil
}
