package htmlgrid

// Semantic CSS classes the grid chrome emits. The stylesheet in assets/
// targets these; callers extend (rather than replace) them through the
// attribute maps on render.Options.
const (
	ClassGrid         = "datagrid"
	ClassTitleBar     = "datagrid-title-bar"
	ClassHeaderRow    = "datagrid-header-row"
	ClassFilterRow    = "datagrid-filter-row"
	ClassFilterCell   = "datagrid-filter"
	ClassControlsCell = "datagrid-controls"
	ClassFooter       = "datagrid-footer"
	ClassPagination   = "datagrid-pagination"
	ClassBlankSlate   = "datagrid-blank-slate"
	ClassSorted       = "sorted"
	ClassRowOdd       = "odd"
	ClassRowEven      = "even"
)
