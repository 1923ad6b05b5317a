package htmlgrid

import (
	"fmt"
	"strings"

	"github.com/goliatone/go-datagrid/pkg/grid"
	"github.com/goliatone/go-datagrid/pkg/render"
)

// tableParts holds the prerendered fragments the grid template assembles.
type tableParts struct {
	Header    string
	FilterRow string
	Body      string
	Detached  map[string]string
}

// buildTable renders the header row, the filter row, and the body rows of a
// grid, collecting detached filter fragments along the way.
func buildTable(g *grid.Grid, data render.Data, options renderOptions, lb *linkBuilder) (*tableParts, error) {
	htmlCols := htmlColumns(g.Columns())
	if len(htmlCols) == 0 {
		return nil, fmt.Errorf("htmlgrid: grid %q declares no HTML columns", g.Name())
	}

	state := g.State()
	hasFilters := anyFilterable(htmlCols)
	wantFilterRow := hasFilters && options.FilterPolicy != render.FilterNever

	// The filter action icons live in a trailing controls cell. Walk the
	// columns in declaration order; the last HTML column absorbs the
	// controls only when it carries no behaviour of its own. Otherwise a
	// dedicated column is appended.
	reuseLast := wantFilterRow && htmlCols[len(htmlCols)-1].CanHostFilterIcons()
	appendControls := wantFilterRow && !reuseLast

	parts := &tableParts{}

	header, err := buildHeaderRow(g, htmlCols, state, options, lb, wantFilterRow, reuseLast, appendControls)
	if err != nil {
		return nil, err
	}
	parts.Header = header

	if wantFilterRow {
		row, detached, err := buildFilterRow(g, htmlCols, state, options, lb, reuseLast, appendControls)
		if err != nil {
			return nil, err
		}
		parts.FilterRow = row
		parts.Detached = detached
	}

	body, err := buildBodyRows(g, htmlCols, data, state, options, appendControls)
	if err != nil {
		return nil, err
	}
	parts.Body = body

	return parts, nil
}

func htmlColumns(cols []grid.Column) []grid.Column {
	out := make([]grid.Column, 0, len(cols))
	for _, c := range cols {
		if c.InHTML {
			out = append(out, c)
		}
	}
	return out
}

func anyFilterable(cols []grid.Column) bool {
	for _, c := range cols {
		if c.Filterable {
			return true
		}
	}
	return false
}

func buildHeaderRow(g *grid.Grid, cols []grid.Column, state grid.State, options renderOptions, lb *linkBuilder, wantFilterRow, reuseLast, appendControls bool) (string, error) {
	var b strings.Builder
	b.WriteString(`<tr`)
	writeAttrs(&b, mergeClass(options.HeaderAttrs, ClassHeaderRow))
	b.WriteByte('>')

	// When several columns bind the same field, only the first carries the
	// sorted marker.
	sortedSeen := false
	for i, col := range cols {
		attrs := col.HeaderAttrs
		active := col.Field != "" && state.OrderedBy(col.Field)
		sorted := active && !sortedSeen
		if sorted {
			sortedSeen = true
			attrs = mergeClass(attrs, ClassSorted)
		}
		b.WriteString(`<th`)
		writeAttrs(&b, attrs)
		b.WriteByte('>')

		if col.Sortable {
			next := grid.DirectionAsc
			if active {
				dir := state.Direction
				if !dir.Valid() {
					dir = grid.DirectionAsc
				}
				next = dir.Toggle()
			}
			b.WriteString(`<a class="datagrid-sort" href="`)
			b.WriteString(escape(lb.sortLink(col.Field, next)))
			b.WriteString(`">`)
			b.WriteString(escape(col.HeaderLabel()))
			b.WriteString(`</a>`)
			if sorted {
				if state.Direction == grid.DirectionDesc {
					b.WriteString(`<span class="datagrid-sort-marker">&#9660;</span>`)
				} else {
					b.WriteString(`<span class="datagrid-sort-marker">&#9650;</span>`)
				}
			}
		} else {
			b.WriteString(escape(col.HeaderLabel()))
		}

		if reuseLast && i == len(cols)-1 {
			b.WriteString(buildFilterToggle(g.Name()))
		}
		b.WriteString(`</th>`)
	}

	if appendControls {
		b.WriteString(`<th class="` + ClassControlsCell + `">`)
		if wantFilterRow {
			b.WriteString(buildFilterToggle(g.Name()))
		}
		b.WriteString(`</th>`)
	}

	b.WriteString(`</tr>`)
	return b.String(), nil
}

func buildFilterRow(g *grid.Grid, cols []grid.Column, state grid.State, options renderOptions, lb *linkBuilder, reuseLast, appendControls bool) (string, map[string]string, error) {
	detached := map[string]string{}

	exportURL := ""
	if !options.HideCSVButton && anyCSVColumn(g.Columns()) {
		exportURL = lb.exportLink(state)
	}
	controls := buildFilterControls(g.Name(), options, exportURL)

	var b strings.Builder
	b.WriteString(`<tr class="` + ClassFilterRow + `"`)
	if options.FilterPolicy == render.FilterWhenFiltered && !state.Filtered() {
		b.WriteString(` style="display:none"`)
	}
	b.WriteByte('>')

	for i, col := range cols {
		b.WriteString(`<td class="` + ClassFilterCell + `">`)
		if col.Filterable {
			widget, err := buildFilterWidget(g.Name(), col, state)
			if err != nil {
				return "", nil, err
			}
			if col.Detached() {
				detached[col.DetachKey] = widget
			} else {
				b.WriteString(widget)
			}
		}
		if reuseLast && i == len(cols)-1 {
			b.WriteString(controls)
		}
		b.WriteString(`</td>`)
	}

	if appendControls {
		b.WriteString(`<td class="` + ClassFilterCell + ` ` + ClassControlsCell + `">`)
		b.WriteString(controls)
		b.WriteString(`</td>`)
	}

	b.WriteString(`</tr>`)
	return b.String(), detached, nil
}

func anyCSVColumn(cols []grid.Column) bool {
	for _, c := range cols {
		if c.InCSV {
			return true
		}
	}
	return false
}

func buildBodyRows(g *grid.Grid, cols []grid.Column, data render.Data, state grid.State, options renderOptions, appendControls bool) (string, error) {
	var b strings.Builder
	stripe := newRowStriper(g.Columns(), state.OrderBy, options.CycleRowsByValue)

	for _, rec := range data.Records {
		rowClass, err := stripe.next(rec)
		if err != nil {
			return "", fmt.Errorf("htmlgrid: striping rows of grid %q by %q: %w", g.Name(), state.OrderBy, err)
		}
		attrs := mergeClass(options.RowAttrs, rowClass)

		b.WriteString(`<tr`)
		writeAttrs(&b, attrs)
		b.WriteByte('>')

		for _, col := range cols {
			out, err := col.Renderer()(rec)
			if err != nil {
				return "", fmt.Errorf("htmlgrid: rendering column %q for grid %q: %w", col.HeaderLabel(), g.Name(), err)
			}
			if !out.Built() {
				return "", fmt.Errorf("htmlgrid: column %q of grid %q returned a cell output that was not constructed with Cell or CellWithAttrs", col.HeaderLabel(), g.Name())
			}

			cellAttrs := col.Attrs
			if extra := out.Attrs(); len(extra) > 0 {
				merged := make(map[string]string, len(cellAttrs)+len(extra))
				for k, v := range cellAttrs {
					merged[k] = v
				}
				for k, v := range extra {
					merged[k] = v
				}
				cellAttrs = merged
			}

			b.WriteString(`<td`)
			writeAttrs(&b, cellAttrs)
			b.WriteByte('>')
			if col.Render != nil {
				// Custom renderers may emit markup; it passes through the
				// sanitizer rather than being escaped away.
				b.WriteString(sanitizeFragment(out.Value()))
			} else {
				b.WriteString(escape(out.Value()))
			}
			b.WriteString(`</td>`)
		}

		if appendControls {
			b.WriteString(`<td></td>`)
		}

		b.WriteString(`</tr>`)
	}

	return b.String(), nil
}

// rowStriper cycles rows through odd/even classes. With value cycling the
// class advances only when the ordered column's rendered value changes, so
// runs of equal rendered values share a stripe.
type rowStriper struct {
	key     grid.CellRenderer
	started bool
	last    string
	odd     bool
}

func newRowStriper(cols []grid.Column, orderField string, byValue bool) *rowStriper {
	s := &rowStriper{}
	if !byValue || orderField == "" {
		return s
	}
	s.key = grid.FieldRenderer(orderField)
	for _, col := range cols {
		if col.Field == orderField {
			s.key = col.Renderer()
			break
		}
	}
	return s
}

func (s *rowStriper) next(rec grid.Record) (string, error) {
	if s.key != nil {
		out, err := s.key(rec)
		if err != nil {
			return "", err
		}
		if !out.Built() {
			return "", fmt.Errorf("cell output was not constructed with Cell or CellWithAttrs")
		}
		current := out.Value()
		if !s.started {
			s.started = true
			s.odd = true
			s.last = current
		} else if current != s.last {
			s.odd = !s.odd
			s.last = current
		}
	} else {
		s.odd = !s.odd
	}
	if s.odd {
		return ClassRowOdd, nil
	}
	return ClassRowEven, nil
}
