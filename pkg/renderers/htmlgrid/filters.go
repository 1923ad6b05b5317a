package htmlgrid

import (
	"fmt"
	"strings"

	"github.com/goliatone/go-datagrid/pkg/grid"
	"github.com/goliatone/go-datagrid/pkg/params"
)

// buildFilterWidget renders the filter control for one column. The same
// markup serves the inline filter row and detached placement; only the
// surrounding cell differs.
func buildFilterWidget(gridName string, col grid.Column, state grid.State) (string, error) {
	name := params.FilterName(gridName, col.Field)
	id := controlID(gridName, "f", col.Field)
	current := state.FilterValue(col.Field)

	var b strings.Builder
	switch col.FilterKindOrDefault() {
	case grid.FilterText:
		b.WriteString(`<input type="text" class="datagrid-filter-input" id="`)
		b.WriteString(escape(id))
		b.WriteString(`" name="`)
		b.WriteString(escape(name))
		b.WriteString(`" value="`)
		b.WriteString(escape(current))
		b.WriteString(`" data-grid="`)
		b.WriteString(escape(gridName))
		b.WriteString(`"/>`)

	case grid.FilterSelect:
		b.WriteString(`<select class="datagrid-filter-input" id="`)
		b.WriteString(escape(id))
		b.WriteString(`" name="`)
		b.WriteString(escape(name))
		b.WriteString(`" data-grid="`)
		b.WriteString(escape(gridName))
		b.WriteString(`">`)
		b.WriteString(`<option value=""></option>`)
		for _, item := range col.Options {
			b.WriteString(`<option value="`)
			b.WriteString(escape(item.Value))
			b.WriteByte('"')
			if current != "" && current == item.Value {
				b.WriteString(` selected="selected"`)
			}
			b.WriteByte('>')
			b.WriteString(escape(item.Label))
			b.WriteString(`</option>`)
		}
		b.WriteString(`</select>`)

	case grid.FilterBool:
		b.WriteString(`<select class="datagrid-filter-input" id="`)
		b.WriteString(escape(id))
		b.WriteString(`" name="`)
		b.WriteString(escape(name))
		b.WriteString(`" data-grid="`)
		b.WriteString(escape(gridName))
		b.WriteString(`">`)
		for _, opt := range []struct{ value, label string }{
			{"", "--"},
			{"true", "Yes"},
			{"false", "No"},
		} {
			b.WriteString(`<option value="`)
			b.WriteString(opt.value)
			b.WriteByte('"')
			if current != "" && current == opt.value {
				b.WriteString(` selected="selected"`)
			}
			b.WriteByte('>')
			b.WriteString(opt.label)
			b.WriteString(`</option>`)
		}
		b.WriteString(`</select>`)

	default:
		return "", fmt.Errorf("htmlgrid: column %q uses unknown filter kind %q", col.Field, col.Filter)
	}

	return b.String(), nil
}

// buildFilterControls renders the submit/reset/export action controls hosted
// by the trailing filter-row cell.
func buildFilterControls(gridName string, options renderOptions, exportURL string) string {
	var b strings.Builder
	if !options.HideSubmitButton {
		b.WriteString(`<button type="button" class="datagrid-filter-submit" data-grid="`)
		b.WriteString(escape(gridName))
		b.WriteString(`" title="Apply filters">&#10003;</button>`)
	}
	if !options.HideResetButton {
		b.WriteString(`<button type="button" class="datagrid-filter-reset" data-grid="`)
		b.WriteString(escape(gridName))
		b.WriteString(`" title="Reset filters">&#10007;</button>`)
	}
	if !options.HideCSVButton && exportURL != "" {
		b.WriteString(`<a class="datagrid-export-csv" href="`)
		b.WriteString(escape(exportURL))
		b.WriteString(`" title="Export to CSV">CSV</a>`)
	}
	return b.String()
}

// buildFilterToggle is the header control that shows/hides the filter row.
func buildFilterToggle(gridName string) string {
	var b strings.Builder
	b.WriteString(`<button type="button" class="datagrid-filter-toggle" data-grid="`)
	b.WriteString(escape(gridName))
	b.WriteString(`" title="Toggle filters">&#8645;</button>`)
	return b.String()
}
