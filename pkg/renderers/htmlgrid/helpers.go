package htmlgrid

import (
	"html"
	"net/url"
	"sort"
	"strconv"
	"strings"

	"github.com/goliatone/go-datagrid/pkg/grid"
	"github.com/goliatone/go-datagrid/pkg/params"
)

// writeAttrs appends HTML attributes in deterministic (sorted) key order.
// Values are escaped; keys are trusted (they come from typed options or
// column declarations, not request data).
func writeAttrs(b *strings.Builder, attrs map[string]string) {
	if len(attrs) == 0 {
		return
	}
	keys := make([]string, 0, len(attrs))
	for k := range attrs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		b.WriteByte(' ')
		b.WriteString(k)
		b.WriteString(`="`)
		b.WriteString(html.EscapeString(attrs[k]))
		b.WriteByte('"')
	}
}

// mergeClass folds an extra class token into an attribute map without
// mutating the input.
func mergeClass(attrs map[string]string, class string) map[string]string {
	if class == "" {
		return attrs
	}
	out := make(map[string]string, len(attrs)+1)
	for k, v := range attrs {
		out[k] = v
	}
	if existing := out["class"]; existing != "" {
		out["class"] = existing + " " + class
	} else {
		out["class"] = class
	}
	return out
}

func escape(s string) string {
	return html.EscapeString(s)
}

// jsString renders a Go string as a JavaScript string literal.
func jsString(s string) string {
	return strconv.Quote(s)
}

// controlID builds a DOM id namespaced by the grid name.
func controlID(gridName string, parts ...string) string {
	id := "dg-" + gridName
	for _, p := range parts {
		if p == "" {
			continue
		}
		id += "-" + p
	}
	return id
}

// linkBuilder assembles grid URLs: base path plus preserved extra params
// plus the grid's namespaced state parameters.
type linkBuilder struct {
	gridName string
	basePath string
	baseline url.Values
}

func newLinkBuilder(g *grid.Grid, options renderOptions) *linkBuilder {
	baseline := url.Values{}
	for key, values := range g.ExtraParams() {
		for _, v := range values {
			baseline.Add(key, v)
		}
	}
	for key, values := range options.ExtraParams {
		for _, v := range values {
			baseline.Add(key, v)
		}
	}

	state := g.State()
	// Active filter values survive sorting and paging.
	for field, values := range state.Filters {
		for _, v := range values {
			if strings.TrimSpace(v) == "" {
				continue
			}
			baseline.Add(params.FilterName(g.Name(), field), v)
		}
	}
	if state.SavedQuery != "" {
		baseline.Set(params.Name(g.Name(), params.KeySavedQuery), state.SavedQuery)
	}
	if state.PerPage > 0 {
		baseline.Set(params.Name(g.Name(), params.KeyPerPage), strconv.Itoa(state.PerPage))
	}

	return &linkBuilder{
		gridName: g.Name(),
		basePath: options.BasePath,
		baseline: baseline,
	}
}

func (lb *linkBuilder) build(overrides url.Values) string {
	merged := url.Values{}
	for k, vs := range lb.baseline {
		merged[k] = append([]string(nil), vs...)
	}
	for k, vs := range overrides {
		merged[k] = append([]string(nil), vs...)
	}
	query := merged.Encode()
	if query == "" {
		return lb.basePath
	}
	return lb.basePath + "?" + query
}

// sortLink orders by field in the given direction and rewinds to page 1.
func (lb *linkBuilder) sortLink(field string, dir grid.Direction) string {
	o := url.Values{}
	o.Set(params.Name(lb.gridName, params.KeyOrder), field)
	o.Set(params.Name(lb.gridName, params.KeyOrderDirection), string(dir))
	o.Set(params.Name(lb.gridName, params.KeyPage), "1")
	return lb.build(o)
}

func (lb *linkBuilder) pageLink(page int, state grid.State) string {
	o := url.Values{}
	o.Set(params.Name(lb.gridName, params.KeyPage), strconv.Itoa(page))
	lb.keepOrder(o, state)
	return lb.build(o)
}

func (lb *linkBuilder) showAllLink(state grid.State) string {
	o := url.Values{}
	o.Set(params.Name(lb.gridName, params.KeyAllRecords), "1")
	lb.keepOrder(o, state)
	return lb.build(o)
}

func (lb *linkBuilder) backToPaginationLink(state grid.State) string {
	o := url.Values{}
	o.Set(params.Name(lb.gridName, params.KeyAllRecords), "0")
	o.Set(params.Name(lb.gridName, params.KeyPage), "1")
	lb.keepOrder(o, state)
	return lb.build(o)
}

func (lb *linkBuilder) exportLink(state grid.State) string {
	o := url.Values{}
	o.Set(params.Name(lb.gridName, params.KeyExport), "csv")
	lb.keepOrder(o, state)
	return lb.build(o)
}

// filterBase is the URL the client-side controller submits filters to: the
// baseline without filter values, so the controller replaces rather than
// appends them.
func (lb *linkBuilder) filterBase(state grid.State) string {
	stripped := url.Values{}
	prefix := lb.gridName + "[f]["
	for k, vs := range lb.baseline {
		if strings.HasPrefix(k, prefix) {
			continue
		}
		stripped[k] = append([]string(nil), vs...)
	}
	keep := &linkBuilder{gridName: lb.gridName, basePath: lb.basePath, baseline: stripped}
	o := url.Values{}
	o.Set(params.Name(lb.gridName, params.KeyPage), "1")
	keep.keepOrder(o, state)
	return keep.build(o)
}

func (lb *linkBuilder) keepOrder(o url.Values, state grid.State) {
	if state.OrderBy != "" {
		o.Set(params.Name(lb.gridName, params.KeyOrder), state.OrderBy)
		dir := state.Direction
		if !dir.Valid() {
			dir = grid.DirectionAsc
		}
		o.Set(params.Name(lb.gridName, params.KeyOrderDirection), string(dir))
	}
	if state.AllRecords && !o.Has(params.Name(lb.gridName, params.KeyAllRecords)) {
		o.Set(params.Name(lb.gridName, params.KeyAllRecords), "1")
	}
}
