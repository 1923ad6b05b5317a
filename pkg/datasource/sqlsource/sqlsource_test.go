package sqlsource

import (
	"database/sql"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-datagrid/pkg/datasource"
	"github.com/goliatone/go-datagrid/pkg/grid"
)

// testDB returns a handle without connecting; sql.Open defers dialing until
// the first query, which these tests never issue.
func testDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("postgres", "dbname=unused")
	if err != nil {
		t.Fatalf("sql.Open returned error: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func testSource(t *testing.T) *Source {
	t.Helper()
	src, err := New(testDB(t), Config{
		Table:  "employees",
		Fields: []string{"name", "department", "active"},
		FieldTypes: map[string]FieldType{
			"department": TypeExact,
			"active":     TypeBool,
		},
	})
	if err != nil {
		t.Fatalf("New() returned error: %v", err)
	}
	return src
}

func TestNewValidation(t *testing.T) {
	db := testDB(t)

	if _, err := New(nil, Config{Table: "t", Fields: []string{"a"}}); err == nil {
		t.Fatal("New(nil db) succeeded")
	}
	if _, err := New(db, Config{Fields: []string{"a"}}); err == nil {
		t.Fatal("New() without table succeeded")
	}
	if _, err := New(db, Config{Table: "t"}); err == nil {
		t.Fatal("New() without fields succeeded")
	}
	if _, err := New(db, Config{Table: "t", Fields: []string{" "}}); err == nil {
		t.Fatal("New() with blank field succeeded")
	}
}

func TestBuildWhere(t *testing.T) {
	src := testSource(t)

	where, args := src.buildWhere(datasource.Query{})
	if where != "" || len(args) != 0 {
		t.Fatalf("empty query produced where=%q args=%v", where, args)
	}

	where, args = src.buildWhere(datasource.Query{
		Filters: map[string][]string{
			"name":       {"ali"},
			"department": {"sales", "support"},
			"active":     {"true"},
			"dropped":    {"x"}, // not whitelisted
		},
	})

	for _, want := range []string{
		`"name"::text ILIKE $`,
		`"department" IN (`,
		`"active" = $`,
		" WHERE ",
	} {
		if !strings.Contains(where, want) {
			t.Fatalf("where clause %q missing %q", where, want)
		}
	}
	if strings.Contains(where, "dropped") {
		t.Fatalf("where clause %q references a non-whitelisted field", where)
	}

	wantArgs := []any{"%ali%", "sales", "support", true}
	if diff := cmp.Diff(wantArgs, args); diff != "" {
		t.Fatalf("args mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildWhereSkipsBlankAndBogusValues(t *testing.T) {
	src := testSource(t)

	where, args := src.buildWhere(datasource.Query{
		Filters: map[string][]string{
			"name":   {"  "},
			"active": {"maybe"},
		},
	})
	if where != "" || len(args) != 0 {
		t.Fatalf("blank/bogus filters produced where=%q args=%v", where, args)
	}
}

func TestBuildOrder(t *testing.T) {
	src := testSource(t)

	if got := src.buildOrder(datasource.Query{}); got != "" {
		t.Fatalf("buildOrder() without order = %q", got)
	}
	if got := src.buildOrder(datasource.Query{OrderBy: "missing"}); got != "" {
		t.Fatalf("buildOrder() for a non-whitelisted field = %q", got)
	}
	if got := src.buildOrder(datasource.Query{OrderBy: "name"}); got != ` ORDER BY "name" ASC` {
		t.Fatalf("buildOrder() = %q", got)
	}
	if got := src.buildOrder(datasource.Query{OrderBy: "name", Direction: grid.DirectionDesc}); got != ` ORDER BY "name" DESC` {
		t.Fatalf("buildOrder() = %q", got)
	}
}
