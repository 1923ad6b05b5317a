package csvexport

import (
	"context"
	"encoding/csv"
	"os"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-datagrid/pkg/grid"
	"github.com/goliatone/go-datagrid/pkg/render"
)

func exportGrid(t *testing.T) *grid.Grid {
	t.Helper()
	g, err := grid.NewBuilder("tasks").
		Column(grid.Column{Field: "title", Label: "Title"}).
		Column(grid.Column{Field: "status"}).
		ColumnHTMLOnly(grid.Column{Label: "Actions", Render: func(grid.Record) (grid.CellOutput, error) {
			return grid.Cell("<a>edit</a>"), nil
		}}).
		ColumnCSVOnly(grid.Column{Field: "internal_id", Label: "ID"}).
		Build()
	if err != nil {
		t.Fatalf("Build() returned error: %v", err)
	}
	return g
}

func TestRenderWritesCSV(t *testing.T) {
	r := New(WithDir(t.TempDir()))
	g := exportGrid(t)

	data := render.Data{
		Records: []grid.Record{
			{"title": "Fix login", "status": "open", "internal_id": 7},
			{"title": "Write docs", "status": "done", "internal_id": 9},
		},
		TotalCount: 2,
	}

	result, err := r.Render(context.Background(), g, data, render.Options{})
	if err != nil {
		t.Fatalf("Render() returned error: %v", err)
	}

	if result.Kind != render.KindCSV {
		t.Fatalf("Kind = %q, want %q", result.Kind, render.KindCSV)
	}
	if result.FilePath == "" {
		t.Fatal("FilePath is empty")
	}

	f, err := os.Open(result.FilePath)
	if err != nil {
		t.Fatalf("opening export file: %v", err)
	}
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("reading export file: %v", err)
	}

	want := [][]string{
		{"Title", "Status", "ID"},
		{"Fix login", "open", "7"},
		{"Write docs", "done", "9"},
	}
	if diff := cmp.Diff(want, rows); diff != "" {
		t.Fatalf("export content mismatch (-want +got):\n%s", diff)
	}

	// The export is memoised on the grid like any other render.
	if _, ok := g.StoredResult(); !ok {
		t.Fatal("export result not stored on the grid")
	}
}

func TestRenderRequiresCSVColumns(t *testing.T) {
	r := New()
	g, err := grid.NewBuilder("tasks").
		ColumnHTMLOnly(grid.Column{Field: "title"}).
		Build()
	if err != nil {
		t.Fatalf("Build() returned error: %v", err)
	}

	_, err = r.Render(context.Background(), g, render.Data{}, render.Options{})
	if err == nil {
		t.Fatal("Render() succeeded without CSV columns")
	}
	if !strings.Contains(err.Error(), "no CSV columns") {
		t.Fatalf("Render() error = %q", err)
	}
}

func TestRenderRejectsMalformedCellOutput(t *testing.T) {
	r := New(WithDir(t.TempDir()))
	g, err := grid.NewBuilder("tasks").
		Column(grid.Column{Label: "Broken", Render: func(grid.Record) (grid.CellOutput, error) {
			return grid.CellOutput{}, nil
		}}).
		Build()
	if err != nil {
		t.Fatalf("Build() returned error: %v", err)
	}

	_, err = r.Render(context.Background(), g,
		render.Data{Records: []grid.Record{{}}, TotalCount: 1}, render.Options{})
	if err == nil {
		t.Fatal("Render() succeeded with a malformed cell output")
	}
}

func TestFailedRenderRemovesExportFile(t *testing.T) {
	dir := t.TempDir()
	r := New(WithDir(dir))
	g, err := grid.NewBuilder("tasks").
		Column(grid.Column{Field: "title"}).
		Column(grid.Column{Label: "Broken", Render: func(grid.Record) (grid.CellOutput, error) {
			return grid.CellOutput{}, nil
		}}).
		Build()
	if err != nil {
		t.Fatalf("Build() returned error: %v", err)
	}

	_, err = r.Render(context.Background(), g,
		render.Data{Records: []grid.Record{{"title": "Fix login"}}, TotalCount: 1}, render.Options{})
	if err == nil {
		t.Fatal("Render() succeeded with a malformed cell output")
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("reading export dir: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("export dir holds %d files after a failed render, want none", len(entries))
	}
}

func TestRendererIdentity(t *testing.T) {
	r := New()
	if r.Name() != "csv" {
		t.Fatalf("Name() = %q, want %q", r.Name(), "csv")
	}
	if r.ContentType() != "text/csv" {
		t.Fatalf("ContentType() = %q", r.ContentType())
	}
}
