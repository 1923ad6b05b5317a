package render

import (
	"fmt"
	"sort"
)

// Kind discriminates the three possible render outcomes.
type Kind string

const (
	// KindHTML is a full table fragment.
	KindHTML Kind = "html"
	// KindCSV is a file path to the exported spreadsheet.
	KindCSV Kind = "csv"
	// KindBlankSlate is the fallback fragment for an empty, unfiltered grid.
	KindBlankSlate Kind = "blank_slate"
)

// Result is the explicit value a render produces, replacing implicit output
// buffering: the fragment (or file path) plus any detached filter fragments
// keyed by the declaring column's detach key.
type Result struct {
	Kind     Kind
	Fragment string
	FilePath string

	detached map[string]string
}

// NewHTMLResult builds a table-fragment result. detached may be nil.
func NewHTMLResult(fragment string, detached map[string]string) *Result {
	return &Result{Kind: KindHTML, Fragment: fragment, detached: detached}
}

// NewBlankSlateResult builds a blank-slate result.
func NewBlankSlateResult(fragment string) *Result {
	return &Result{Kind: KindBlankSlate, Fragment: fragment}
}

// NewCSVResult builds an export result pointing at the written file.
func NewCSVResult(path string) *Result {
	return &Result{Kind: KindCSV, FilePath: path}
}

// Replayable reports whether the result can stand in for a repeated render
// of the same grid. Only results carrying detached filters qualify.
func (r *Result) Replayable() bool {
	return r != nil && len(r.detached) > 0
}

// DetachedFilter returns the filter widget fragment stored under key.
func (r *Result) DetachedFilter(key string) (string, error) {
	if r == nil {
		return "", fmt.Errorf("render: no render result available")
	}
	if len(r.detached) == 0 {
		return "", fmt.Errorf("render: this render produced no detached filters; declare a detach key on a filterable column first")
	}
	fragment, ok := r.detached[key]
	if !ok {
		return "", fmt.Errorf("render: no detached filter under key %q (have %v)", key, r.detachedKeys())
	}
	return fragment, nil
}

// DetachedKeys lists the available detach keys, sorted.
func (r *Result) DetachedKeys() []string {
	return r.detachedKeys()
}

func (r *Result) detachedKeys() []string {
	if r == nil || len(r.detached) == 0 {
		return nil
	}
	keys := make([]string, 0, len(r.detached))
	for k := range r.detached {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
