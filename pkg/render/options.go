package render

import (
	"fmt"
	"net/url"
)

// FilterPolicy controls whether the filter row is visible when the grid
// first renders. The toggle button can always reveal a hidden row; Never
// suppresses the row entirely.
type FilterPolicy string

const (
	// FilterWhenFiltered shows the filter row only when a filter is active.
	FilterWhenFiltered FilterPolicy = "when_filtered"
	FilterAlways       FilterPolicy = "always"
	FilterNever        FilterPolicy = "no"
)

// DefaultPerPage is the page size used when the grid state does not carry
// one.
const DefaultPerPage = 20

// Options is the typed render configuration. The zero value is usable;
// Normalize fills defaults and Validate rejects out-of-range fields before
// any markup is produced.
type Options struct {
	// TableAttrs/HeaderAttrs/RowAttrs add HTML attributes to the <table>,
	// header <tr> and body <tr> elements.
	TableAttrs  map[string]string
	HeaderAttrs map[string]string
	RowAttrs    map[string]string

	// FilterPolicy defaults to FilterWhenFiltered.
	FilterPolicy FilterPolicy

	// UpperPagination duplicates the pagination block above the table.
	UpperPagination bool

	// ExtraParams are query parameters appended to every generated link, on
	// top of the grid's own extra params.
	ExtraParams url.Values

	// CycleRowsByValue switches row striping from strict alternation to
	// value-driven cycling: the stripe class flips only when the sorted
	// column's rendered value changes between consecutive rows.
	CycleRowsByValue bool

	// AllowShowingAllRecords permits the "show all records" pagination
	// bypass link.
	AllowShowingAllRecords bool

	// ShowAllConfirmThreshold asks the user for confirmation before entering
	// all-records mode when the total count exceeds it. Zero disables the
	// prompt.
	ShowAllConfirmThreshold int

	// HideSubmitButton/HideResetButton/HideCSVButton drop the corresponding
	// filter action controls.
	HideSubmitButton bool
	HideResetButton  bool
	HideCSVButton    bool

	// BasePath is the URL path generated links point at. Defaults to the
	// current path on the client side when empty.
	BasePath string

	// Environment is an opaque tag handed to the client-side controller.
	Environment string

	// Theme carries resolved theme configuration (see ResolveTheme). Nil
	// renders with the built-in chrome classes.
	Theme *ThemeConfig
}

// Normalize returns a copy with defaults applied.
func (o Options) Normalize() Options {
	if o.FilterPolicy == "" {
		o.FilterPolicy = FilterWhenFiltered
	}
	return o
}

// Validate rejects unusable option values. It is called by renderers before
// building any output so misconfiguration fails the whole render.
func (o Options) Validate() error {
	switch o.FilterPolicy {
	case "", FilterWhenFiltered, FilterAlways, FilterNever:
	default:
		return fmt.Errorf("render: unknown filter policy %q", o.FilterPolicy)
	}
	if o.ShowAllConfirmThreshold < 0 {
		return fmt.Errorf("render: negative show-all confirm threshold %d", o.ShowAllConfirmThreshold)
	}
	return nil
}
