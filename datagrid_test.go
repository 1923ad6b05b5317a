package datagrid

import (
	"context"
	"errors"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/goliatone/go-datagrid/pkg/grid"
	"github.com/goliatone/go-datagrid/pkg/render"
)

func testGrid(t *testing.T, state State) *Grid {
	t.Helper()
	g, err := NewBuilder("tasks").
		Column(Column{Field: "title", Sortable: true, Filterable: true}).
		Column(Column{Field: "status", Filterable: true, DetachKey: "status"}).
		State(state).
		Build()
	if err != nil {
		t.Fatalf("Build() returned error: %v", err)
	}
	return g
}

func testData() Data {
	return Data{
		Records: []Record{
			{"title": "Fix login", "status": "open"},
			{"title": "Write docs", "status": "done"},
		},
		TotalCount: 2,
	}
}

func TestDefaultRegistry(t *testing.T) {
	for _, name := range []string{"html", "csv"} {
		if !DefaultRegistry.Has(name) {
			t.Fatalf("default registry missing %q renderer", name)
		}
	}
}

func TestRenderDispatchesOnState(t *testing.T) {
	result, err := Render(context.Background(), testGrid(t, State{}), testData(), Options{})
	if err != nil {
		t.Fatalf("Render() returned error: %v", err)
	}
	if result.Kind != render.KindHTML {
		t.Fatalf("Kind = %q, want %q", result.Kind, render.KindHTML)
	}

	csvResult, err := Render(context.Background(), testGrid(t, State{Export: true}), testData(), Options{})
	if err != nil {
		t.Fatalf("Render() returned error: %v", err)
	}
	if csvResult.Kind != render.KindCSV {
		t.Fatalf("Kind = %q, want %q", csvResult.Kind, render.KindCSV)
	}
	if csvResult.FilePath == "" {
		t.Fatal("csv result has no file path")
	}
}

func TestDetachedFilterRequiresRender(t *testing.T) {
	g := testGrid(t, State{})

	if _, err := DetachedFilter(g, "status"); !errors.Is(err, grid.ErrNoStoredResult) {
		t.Fatalf("DetachedFilter() before render: %v, want ErrNoStoredResult", err)
	}

	if _, err := Render(context.Background(), g, testData(), Options{}); err != nil {
		t.Fatalf("Render() returned error: %v", err)
	}

	widget, err := DetachedFilter(g, "status")
	if err != nil {
		t.Fatalf("DetachedFilter() returned error: %v", err)
	}
	if !strings.Contains(widget, `name="tasks[f][status]"`) {
		t.Fatalf("widget = %q", widget)
	}

	if _, err := DetachedFilter(g, "missing"); err == nil {
		t.Fatal("DetachedFilter() for unknown key succeeded")
	}
}

func TestStateFromRequest(t *testing.T) {
	r := httptest.NewRequest("GET", "/?tasks[page]=2&tasks[f][title]=fix", nil)
	state, err := StateFromRequest(r, "tasks", State{PerPage: 10})
	if err != nil {
		t.Fatalf("StateFromRequest() returned error: %v", err)
	}
	if state.Page != 2 || state.PerPage != 10 {
		t.Fatalf("state = %+v", state)
	}
	if state.FilterValue("title") != "fix" {
		t.Fatalf("filter value = %q", state.FilterValue("title"))
	}
}

func TestTriggers(t *testing.T) {
	submit := SubmitTrigger("tasks", "Apply", map[string]string{"class": "btn"})
	for _, want := range []string{"datagrid-filter-submit", `data-grid="tasks"`, "Apply", "btn"} {
		if !strings.Contains(submit, want) {
			t.Fatalf("SubmitTrigger() missing %q: %s", want, submit)
		}
	}

	reset := ResetTrigger("tasks", "Clear", nil)
	if !strings.Contains(reset, "datagrid-filter-reset") || !strings.Contains(reset, "Clear") {
		t.Fatalf("ResetTrigger() = %s", reset)
	}
}

func TestAssets(t *testing.T) {
	fsys := Assets()
	for _, name := range []string{"datagrid.css", "datagrid-processor.js"} {
		f, err := fsys.Open(name)
		if err != nil {
			t.Fatalf("Assets() missing %s: %v", name, err)
		}
		f.Close()
	}
}
