package htmlgrid

import "strings"

// buildProcessorScript emits the inline script wiring the rendered table to
// the client-side DataGridProcessor controller shipped with the assets.
func buildProcessorScript(gridName, filterBaseURL, exportURL, environment string) string {
	var b strings.Builder
	b.WriteString(`<script type="text/javascript">`)
	b.WriteString(`document.addEventListener("DOMContentLoaded", function () {`)
	b.WriteString(`new DataGridProcessor({`)
	b.WriteString(`name: ` + jsString(gridName) + `,`)
	b.WriteString(`baseURL: ` + jsString(filterBaseURL) + `,`)
	b.WriteString(`exportURL: ` + jsString(exportURL) + `,`)
	b.WriteString(`environment: ` + jsString(environment))
	b.WriteString(`});`)
	b.WriteString(`});`)
	b.WriteString(`</script>`)
	return b.String()
}

// SubmitTrigger returns a fragment that submits the named grid's filters when
// clicked. Callers place it anywhere on the page, typically next to detached
// filters.
func SubmitTrigger(gridName, label string, attrs map[string]string) string {
	return trigger("datagrid-filter-submit", gridName, label, attrs)
}

// ResetTrigger returns a fragment that clears the named grid's filters when
// clicked.
func ResetTrigger(gridName, label string, attrs map[string]string) string {
	return trigger("datagrid-filter-reset", gridName, label, attrs)
}

func trigger(class, gridName, label string, attrs map[string]string) string {
	merged := mergeClass(attrs, class)
	merged["data-grid"] = gridName
	var b strings.Builder
	b.WriteString(`<button type="button"`)
	writeAttrs(&b, merged)
	b.WriteByte('>')
	b.WriteString(escape(label))
	b.WriteString(`</button>`)
	return b.String()
}
