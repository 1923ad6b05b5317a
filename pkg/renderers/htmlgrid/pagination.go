package htmlgrid

import (
	"fmt"
	"strings"
)

// Paginator renders page navigation for a grid. Implementations receive the
// current page, the total page count, and a link builder producing URLs for
// any page number.
type Paginator interface {
	Paginate(current, total int, pageURL func(page int) string) string
}

// WindowedPaginator is the default Paginator. It shows first/last pages, a
// window of pages around the current one, and prev/next arrows.
type WindowedPaginator struct {
	// Window is the number of pages shown on each side of the current page.
	Window int
}

func (p WindowedPaginator) window() int {
	if p.Window <= 0 {
		return 2
	}
	return p.Window
}

func (p WindowedPaginator) Paginate(current, total int, pageURL func(page int) string) string {
	if total <= 1 {
		return ""
	}
	if current < 1 {
		current = 1
	}
	if current > total {
		current = total
	}

	var b strings.Builder
	b.WriteString(`<div class="` + ClassPagination + `">`)

	if current > 1 {
		writePageLink(&b, pageURL(current-1), "&laquo;", "datagrid-page-prev")
	}

	win := p.window()
	lo := current - win
	if lo < 1 {
		lo = 1
	}
	hi := current + win
	if hi > total {
		hi = total
	}

	if lo > 1 {
		writePageLink(&b, pageURL(1), "1", "datagrid-page")
		if lo > 2 {
			b.WriteString(`<span class="datagrid-page-gap">&hellip;</span>`)
		}
	}

	for page := lo; page <= hi; page++ {
		if page == current {
			fmt.Fprintf(&b, `<span class="datagrid-page-current">%d</span>`, page)
			continue
		}
		writePageLink(&b, pageURL(page), fmt.Sprintf("%d", page), "datagrid-page")
	}

	if hi < total {
		if hi < total-1 {
			b.WriteString(`<span class="datagrid-page-gap">&hellip;</span>`)
		}
		writePageLink(&b, pageURL(total), fmt.Sprintf("%d", total), "datagrid-page")
	}

	if current < total {
		writePageLink(&b, pageURL(current+1), "&raquo;", "datagrid-page-next")
	}

	b.WriteString(`</div>`)
	return b.String()
}

func writePageLink(b *strings.Builder, href, label, class string) {
	b.WriteString(`<a class="`)
	b.WriteString(class)
	b.WriteString(`" href="`)
	b.WriteString(escape(href))
	b.WriteString(`">`)
	b.WriteString(label)
	b.WriteString(`</a>`)
}

// totalPages derives the page count from a record total and page size.
func totalPages(totalCount, perPage int) int {
	if perPage <= 0 || totalCount <= 0 {
		return 1
	}
	pages := totalCount / perPage
	if totalCount%perPage != 0 {
		pages++
	}
	return pages
}
