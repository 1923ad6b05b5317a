package grid

import "strings"

// Direction is the sort direction applied to the grid's order column.
type Direction string

const (
	DirectionAsc  Direction = "asc"
	DirectionDesc Direction = "desc"
)

// Toggle returns the opposite direction. Unrecognised values toggle to
// descending so a header link always changes the current order.
func (d Direction) Toggle() Direction {
	if d == DirectionDesc {
		return DirectionAsc
	}
	return DirectionDesc
}

// Valid reports whether the direction is one of the two canonical values.
func (d Direction) Valid() bool {
	return d == DirectionAsc || d == DirectionDesc
}

// FilterKind selects the widget rendered for a filterable column.
type FilterKind string

const (
	FilterText   FilterKind = "text"
	FilterSelect FilterKind = "select"
	FilterBool   FilterKind = "boolean"
)

// LOVItem is one choice offered by a select filter.
type LOVItem struct {
	Value string `json:"value" yaml:"value"`
	Label string `json:"label" yaml:"label"`
}

// Record is a single row of the bound collection, keyed by field name.
type Record map[string]any

// State captures the request-scoped sort/filter/pagination state of a grid.
// It is typically populated from query parameters (see pkg/params) and is
// immutable for the duration of a render.
type State struct {
	// OrderBy names the field the collection is currently ordered by. Empty
	// means no explicit order.
	OrderBy   string
	Direction Direction

	// Filters holds active filter values keyed by field name. A field may
	// carry multiple values (multi-select filters).
	Filters map[string][]string

	// Page is 1-based. PerPage is the page size; zero falls back to the
	// renderer default.
	Page    int
	PerPage int

	// AllRecords bypasses pagination and shows the whole collection.
	AllRecords bool

	// Export requests CSV output instead of HTML.
	Export bool

	// SavedQuery names a stored filter set applied on top of Filters.
	SavedQuery string
}

// Filtered reports whether any filter carries a non-blank value.
func (s State) Filtered() bool {
	for _, values := range s.Filters {
		for _, v := range values {
			if strings.TrimSpace(v) != "" {
				return true
			}
		}
	}
	return s.SavedQuery != ""
}

// FilterValue returns the first non-blank filter value for a field.
func (s State) FilterValue(field string) string {
	for _, v := range s.Filters[field] {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}

// OrderedBy reports whether the grid is currently ordered by the field.
func (s State) OrderedBy(field string) bool {
	return field != "" && s.OrderBy == field
}
