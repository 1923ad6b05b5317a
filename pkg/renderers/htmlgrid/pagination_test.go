package htmlgrid

import (
	"fmt"
	"strings"
	"testing"
)

func TestTotalPages(t *testing.T) {
	cases := []struct {
		total, perPage, want int
	}{
		{0, 10, 1},
		{5, 10, 1},
		{10, 10, 1},
		{11, 10, 2},
		{30, 10, 3},
		{30, 0, 1},
	}
	for _, tc := range cases {
		if got := totalPages(tc.total, tc.perPage); got != tc.want {
			t.Fatalf("totalPages(%d, %d) = %d, want %d", tc.total, tc.perPage, got, tc.want)
		}
	}
}

func TestWindowedPaginator(t *testing.T) {
	pageURL := func(page int) string { return fmt.Sprintf("/tasks?page=%d", page) }
	p := WindowedPaginator{Window: 2}

	if got := p.Paginate(1, 1, pageURL); got != "" {
		t.Fatalf("Paginate() for a single page = %q, want empty", got)
	}

	out := p.Paginate(5, 10, pageURL)
	for _, want := range []string{
		`class="datagrid-pagination"`,
		`class="datagrid-page-current">5<`,
		"/tasks?page=4",
		"/tasks?page=6",
		"/tasks?page=1",
		"/tasks?page=10",
		"datagrid-page-prev",
		"datagrid-page-next",
		"datagrid-page-gap",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("Paginate(5, 10) missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "/tasks?page=2\"") {
		t.Fatalf("Paginate(5, 10) rendered a page outside the window:\n%s", out)
	}

	first := p.Paginate(1, 3, pageURL)
	if strings.Contains(first, "datagrid-page-prev") {
		t.Fatalf("first page rendered a previous arrow:\n%s", first)
	}
	last := p.Paginate(3, 3, pageURL)
	if strings.Contains(last, "datagrid-page-next") {
		t.Fatalf("last page rendered a next arrow:\n%s", last)
	}
}
