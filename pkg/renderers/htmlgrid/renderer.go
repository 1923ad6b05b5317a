// Package htmlgrid renders grids as interactive HTML table fragments:
// sortable headers, an in-table (or detached) filter row, striped body rows,
// pagination and CSV export links, plus the inline script wiring the
// fragment to the client-side controller shipped under assets/.
package htmlgrid

import (
	"context"
	"fmt"
	"io/fs"
	"sort"
	"strconv"
	"strings"

	"github.com/goliatone/go-datagrid/pkg/grid"
	"github.com/goliatone/go-datagrid/pkg/render"
	"github.com/goliatone/go-datagrid/pkg/render/template"
	"github.com/goliatone/go-datagrid/pkg/render/template/pongo2adapter"
)

const (
	gridTemplate       = "grid"
	blankSlateTemplate = "blank_slate"
)

// renderOptions is the per-render view of the caller's options after
// Normalize has filled defaults.
type renderOptions struct {
	render.Options
}

// Renderer implements render.Renderer for HTML output.
type Renderer struct {
	templates template.TemplateRenderer
	paginator Paginator
}

var _ render.Renderer = (*Renderer)(nil)

// Option configures a Renderer.
type Option func(*Renderer)

// WithTemplateRenderer swaps the template engine. The engine must resolve
// the "grid" and "blank_slate" templates.
func WithTemplateRenderer(tr template.TemplateRenderer) Option {
	return func(r *Renderer) {
		if tr != nil {
			r.templates = tr
		}
	}
}

// WithTemplatesDir loads the grid templates from a directory instead of the
// embedded bundle.
func WithTemplatesDir(dir string) Option {
	return func(r *Renderer) {
		engine, err := pongo2adapter.New(pongo2adapter.WithBaseDir(dir))
		if err == nil {
			r.templates = engine
		}
	}
}

// WithPaginator swaps the pagination strategy.
func WithPaginator(p Paginator) Option {
	return func(r *Renderer) {
		if p != nil {
			r.paginator = p
		}
	}
}

// New builds an HTML renderer backed by the embedded templates unless an
// option overrides them.
func New(options ...Option) (*Renderer, error) {
	r := &Renderer{
		paginator: WindowedPaginator{},
	}
	for _, opt := range options {
		if opt != nil {
			opt(r)
		}
	}

	if r.templates == nil {
		templates, err := fs.Sub(TemplatesFS, "templates")
		if err != nil {
			return nil, fmt.Errorf("htmlgrid: embedded templates: %w", err)
		}
		engine, err := pongo2adapter.New(pongo2adapter.WithFS(templates))
		if err != nil {
			return nil, fmt.Errorf("htmlgrid: template engine: %w", err)
		}
		r.templates = engine
	}

	return r, nil
}

// MustNew is New panicking on error, for package-level renderer variables.
func MustNew(options ...Option) *Renderer {
	r, err := New(options...)
	if err != nil {
		panic(err)
	}
	return r
}

func (r *Renderer) Name() string { return "html" }

func (r *Renderer) ContentType() string { return "text/html; charset=utf-8" }

// Render produces the HTML fragment for a grid and memoises it on the grid.
// Rendering the same grid twice is an error unless the first render carried
// detached filters, in which case the stored result is replayed verbatim.
func (r *Renderer) Render(ctx context.Context, g *grid.Grid, data render.Data, opts render.Options) (*render.Result, error) {
	if g == nil {
		return nil, fmt.Errorf("htmlgrid: nil grid")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	if stored, ok := g.StoredResult(); ok {
		if !stored.Replayable() {
			return nil, fmt.Errorf("htmlgrid: grid %q was already rendered; repeat renders are only supported when the grid declares detached filters", g.Name())
		}
		result, ok := stored.(*render.Result)
		if !ok {
			return nil, fmt.Errorf("htmlgrid: grid %q stored an incompatible render result", g.Name())
		}
		return result, nil
	}

	options := renderOptions{Options: opts.Normalize()}
	state := g.State()

	if len(data.Records) == 0 && !state.Filtered() && g.BlankSlate() != "" {
		fragment, err := r.templates.RenderTemplate(r.templateName(options, blankSlateTemplate), map[string]any{
			"grid_name": g.Name(),
			"content":   sanitizeFragment(g.BlankSlate()),
		})
		if err != nil {
			return nil, fmt.Errorf("htmlgrid: render blank slate for grid %q: %w", g.Name(), err)
		}
		result := render.NewBlankSlateResult(fragment)
		if err := g.StoreResult(result); err != nil {
			return nil, err
		}
		return result, nil
	}

	lb := newLinkBuilder(g, options)

	parts, err := buildTable(g, data, options, lb)
	if err != nil {
		return nil, err
	}

	pagination := r.buildPagination(g, data, state, options, lb)
	showAll := buildShowAllControls(g, data, state, options, lb)

	exportURL := ""
	if !options.HideCSVButton && anyCSVColumn(g.Columns()) {
		exportURL = lb.exportLink(state)
	}
	script := buildProcessorScript(g.Name(), lb.filterBase(state), exportURL, options.Environment)

	var tableAttrs strings.Builder
	writeAttrs(&tableAttrs, mergeClass(options.TableAttrs, ClassGrid))

	fragment, err := r.templates.RenderTemplate(r.templateName(options, gridTemplate), map[string]any{
		"grid_name":        g.Name(),
		"title":            g.Title(),
		"table_attrs":      tableAttrs.String(),
		"wrapper_style":    themeStyle(options.Theme),
		"header":           parts.Header,
		"filter_row":       parts.FilterRow,
		"body":             parts.Body,
		"pagination":       pagination,
		"upper_pagination": options.UpperPagination,
		"show_all":         showAll,
		"total_count":      data.TotalCount,
		"script":           script,
	})
	if err != nil {
		return nil, fmt.Errorf("htmlgrid: render grid %q: %w", g.Name(), err)
	}

	result := render.NewHTMLResult(fragment, parts.Detached)
	if err := g.StoreResult(result); err != nil {
		return nil, err
	}
	return result, nil
}

// templateName lets a resolved theme override the built-in partials.
func (r *Renderer) templateName(options renderOptions, name string) string {
	if options.Theme != nil {
		if override, ok := options.Theme.Partials[name]; ok && override != "" {
			return override
		}
	}
	return name
}

func (r *Renderer) buildPagination(g *grid.Grid, data render.Data, state grid.State, options renderOptions, lb *linkBuilder) string {
	if state.AllRecords {
		return ""
	}
	perPage := state.PerPage
	if perPage <= 0 {
		perPage = render.DefaultPerPage
	}
	pages := totalPages(data.TotalCount, perPage)
	return r.paginator.Paginate(state.Page, pages, func(page int) string {
		return lb.pageLink(page, state)
	})
}

// buildShowAllControls emits the pagination-bypass link, or the way back to
// paginated mode once all records are on screen.
func buildShowAllControls(g *grid.Grid, data render.Data, state grid.State, options renderOptions, lb *linkBuilder) string {
	if !options.AllowShowingAllRecords {
		return ""
	}

	var b strings.Builder
	if state.AllRecords {
		b.WriteString(`<a class="datagrid-back-to-pagination" href="`)
		b.WriteString(escape(lb.backToPaginationLink(state)))
		b.WriteString(`">back to pagination</a>`)
		return b.String()
	}

	perPage := state.PerPage
	if perPage <= 0 {
		perPage = render.DefaultPerPage
	}
	if data.TotalCount <= perPage {
		return ""
	}

	b.WriteString(`<a class="datagrid-show-all" href="`)
	b.WriteString(escape(lb.showAllLink(state)))
	b.WriteByte('"')
	if options.ShowAllConfirmThreshold > 0 && data.TotalCount > options.ShowAllConfirmThreshold {
		b.WriteString(` data-confirm="Show all `)
		b.WriteString(strconv.Itoa(data.TotalCount))
		b.WriteString(` records?"`)
	}
	b.WriteString(`>show all records</a>`)
	return b.String()
}

// themeStyle flattens the resolved theme's CSS custom properties into an
// inline style for the wrapper element.
func themeStyle(cfg *render.ThemeConfig) string {
	if cfg == nil || len(cfg.CSSVars) == 0 {
		return ""
	}
	keys := make([]string, 0, len(cfg.CSSVars))
	for k := range cfg.CSSVars {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for _, k := range keys {
		b.WriteString(k)
		b.WriteString(": ")
		b.WriteString(cfg.CSSVars[k])
		b.WriteString("; ")
	}
	return strings.TrimSpace(b.String())
}
