package grid

import (
	"strings"
	"testing"
)

func TestBuilderBuildsGrid(t *testing.T) {
	g, err := NewBuilder("tasks").
		Title("Open Tasks").
		Column(Column{Field: "title", Sortable: true, Filterable: true}).
		ColumnHTMLOnly(Column{Label: "Actions", Render: func(Record) (CellOutput, error) {
			return Cell("x"), nil
		}}).
		ColumnCSVOnly(Column{Field: "internal_id"}).
		ExtraParam("project", "42").
		Build()
	if err != nil {
		t.Fatalf("Build() returned error: %v", err)
	}

	if got := g.Name(); got != "tasks" {
		t.Fatalf("Name() = %q, want %q", got, "tasks")
	}
	if got := g.Title(); got != "Open Tasks" {
		t.Fatalf("Title() = %q, want %q", got, "Open Tasks")
	}

	cols := g.Columns()
	if len(cols) != 3 {
		t.Fatalf("Columns() returned %d columns, want 3", len(cols))
	}
	if !cols[0].InHTML || !cols[0].InCSV {
		t.Fatalf("plain column should be in both outputs, got html=%v csv=%v", cols[0].InHTML, cols[0].InCSV)
	}
	if !cols[1].InHTML || cols[1].InCSV {
		t.Fatalf("html-only column flags wrong: html=%v csv=%v", cols[1].InHTML, cols[1].InCSV)
	}
	if cols[2].InHTML || !cols[2].InCSV {
		t.Fatalf("csv-only column flags wrong: html=%v csv=%v", cols[2].InHTML, cols[2].InCSV)
	}

	if got := g.ExtraParams().Get("project"); got != "42" {
		t.Fatalf("ExtraParams()[project] = %q, want %q", got, "42")
	}
}

func TestBuilderTitleFallsBackToHumanizedName(t *testing.T) {
	g, err := NewBuilder("open_tasks").
		Column(Column{Field: "title"}).
		Build()
	if err != nil {
		t.Fatalf("Build() returned error: %v", err)
	}
	if got := g.Title(); got != "Open Tasks" {
		t.Fatalf("Title() = %q, want %q", got, "Open Tasks")
	}
}

func TestBuilderValidation(t *testing.T) {
	render := func(Record) (CellOutput, error) { return Cell("x"), nil }

	cases := []struct {
		name    string
		builder *Builder
		wantErr string
	}{
		{
			name:    "missing name",
			builder: NewBuilder("").Column(Column{Field: "a"}),
			wantErr: "needs a name",
		},
		{
			name:    "no columns",
			builder: NewBuilder("g"),
			wantErr: "declares no columns",
		},
		{
			name:    "no label or field",
			builder: NewBuilder("g").Column(Column{Render: render}),
			wantErr: "needs a label or a bound field",
		},
		{
			name:    "sortable without field",
			builder: NewBuilder("g").Column(Column{Label: "A", Sortable: true, Render: render}),
			wantErr: "sortable but binds no field",
		},
		{
			name:    "filterable without field",
			builder: NewBuilder("g").Column(Column{Label: "A", Filterable: true, Render: render}),
			wantErr: "filterable but binds no field",
		},
		{
			name:    "detach key without filter",
			builder: NewBuilder("g").Column(Column{Field: "a", DetachKey: "k"}),
			wantErr: "detach key but is not filterable",
		},
		{
			name:    "no field and no renderer",
			builder: NewBuilder("g").Column(Column{Label: "A"}),
			wantErr: "binds no field and has no cell renderer",
		},
		{
			name: "select filter without options",
			builder: NewBuilder("g").Column(Column{
				Field: "a", Filterable: true, Filter: FilterSelect,
			}),
			wantErr: "select filter without options",
		},
		{
			name: "unknown filter kind",
			builder: NewBuilder("g").Column(Column{
				Field: "a", Filterable: true, Filter: FilterKind("regex"),
			}),
			wantErr: "unknown filter kind",
		},
		{
			name: "duplicate detach keys",
			builder: NewBuilder("g").
				Column(Column{Field: "a", Filterable: true, DetachKey: "k"}).
				Column(Column{Field: "b", Filterable: true, DetachKey: "k"}),
			wantErr: "reuses detach key",
		},
		{
			name: "invalid direction",
			builder: NewBuilder("g").
				Column(Column{Field: "a"}).
				State(State{Direction: Direction("sideways")}),
			wantErr: "invalid sort direction",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := tc.builder.Build()
			if err == nil {
				t.Fatalf("Build() succeeded, want error containing %q", tc.wantErr)
			}
			if !strings.Contains(err.Error(), tc.wantErr) {
				t.Fatalf("Build() error = %q, want it to contain %q", err, tc.wantErr)
			}
		})
	}
}
