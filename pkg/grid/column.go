package grid

import "strings"

// Column declares one cell-rendering unit of a grid. A column may be bound to
// a record field (enabling sorting and filtering) or be a pure rendering
// column driven entirely by its Render callback.
type Column struct {
	// Label is the header text. Falls back to a humanised Field when empty.
	Label string

	// Field is the bound record attribute. Required for sortable or
	// filterable columns.
	Field string

	Sortable   bool
	Filterable bool

	// Filter selects the widget for a filterable column. Defaults to
	// FilterText.
	Filter FilterKind

	// Options supplies the choices for a select filter.
	Options []LOVItem

	// DetachKey, when set, moves the column's filter widget out of the table:
	// the widget is not emitted in the filter row but stored on the render
	// result under this key, to be placed elsewhere on the page.
	DetachKey string

	// Attrs/HeaderAttrs are extra HTML attributes for body and header cells.
	Attrs       map[string]string
	HeaderAttrs map[string]string

	// Render produces the cell output for a record. When nil a bound column
	// falls back to FieldRenderer(Field).
	Render CellRenderer

	// InHTML/InCSV select which outputs the column participates in. The
	// builder manages both flags.
	InHTML bool
	InCSV  bool
}

// HeaderLabel returns the effective header text.
func (c Column) HeaderLabel() string {
	if c.Label != "" {
		return c.Label
	}
	return humanize(c.Field)
}

// Renderer returns the effective cell renderer.
func (c Column) Renderer() CellRenderer {
	if c.Render != nil {
		return c.Render
	}
	return FieldRenderer(c.Field)
}

// FilterKindOrDefault returns the filter widget kind, defaulting to text.
func (c Column) FilterKindOrDefault() FilterKind {
	if c.Filter == "" {
		return FilterText
	}
	return c.Filter
}

// Detached reports whether the column's filter renders out of the table.
func (c Column) Detached() bool {
	return c.Filterable && c.DetachKey != ""
}

// CanHostFilterIcons reports whether the column can absorb the filter action
// icons instead of the grid appending a dedicated trailing column. Only an
// HTML-rendered column with no sort/filter capability of its own qualifies.
func (c Column) CanHostFilterIcons() bool {
	return c.InHTML && !c.Sortable && !c.Filterable && c.Field == ""
}

func humanize(field string) string {
	if field == "" {
		return ""
	}
	parts := strings.Split(field, "_")
	for i, p := range parts {
		if p == "" {
			continue
		}
		parts[i] = strings.ToUpper(p[:1]) + p[1:]
	}
	return strings.Join(parts, " ")
}
