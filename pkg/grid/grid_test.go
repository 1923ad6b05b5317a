package grid

import (
	"strings"
	"testing"
)

type fakeResult struct {
	replayable bool
}

func (f fakeResult) Replayable() bool { return f.replayable }

func TestGridStoreResult(t *testing.T) {
	g, err := NewBuilder("tasks").Column(Column{Field: "a"}).Build()
	if err != nil {
		t.Fatalf("Build() returned error: %v", err)
	}

	if _, ok := g.StoredResult(); ok {
		t.Fatal("StoredResult() reported a result before any render")
	}

	if err := g.StoreResult(nil); err == nil {
		t.Fatal("StoreResult(nil) succeeded, want error")
	}

	first := fakeResult{replayable: true}
	if err := g.StoreResult(first); err != nil {
		t.Fatalf("StoreResult() returned error: %v", err)
	}

	stored, ok := g.StoredResult()
	if !ok {
		t.Fatal("StoredResult() reported no result after StoreResult")
	}
	if stored != RenderedResult(first) {
		t.Fatal("StoredResult() returned a different result")
	}

	err = g.StoreResult(fakeResult{})
	if err == nil {
		t.Fatal("second StoreResult() succeeded, want error")
	}
	if !strings.Contains(err.Error(), `grid "tasks" already has a stored render result`) {
		t.Fatalf("second StoreResult() error = %q, want it to name the grid", err)
	}
}

func TestGridHasDetachedFilters(t *testing.T) {
	plain, err := NewBuilder("a").Column(Column{Field: "x", Filterable: true}).Build()
	if err != nil {
		t.Fatalf("Build() returned error: %v", err)
	}
	if plain.HasDetachedFilters() {
		t.Fatal("HasDetachedFilters() = true for a grid without detach keys")
	}

	detached, err := NewBuilder("b").
		Column(Column{Field: "x", Filterable: true, DetachKey: "x"}).
		Build()
	if err != nil {
		t.Fatalf("Build() returned error: %v", err)
	}
	if !detached.HasDetachedFilters() {
		t.Fatal("HasDetachedFilters() = false for a grid with a detach key")
	}
}

func TestStateFiltered(t *testing.T) {
	if (State{}).Filtered() {
		t.Fatal("empty state reported as filtered")
	}
	if (State{Filters: map[string][]string{"a": {"  "}}}).Filtered() {
		t.Fatal("blank filter value reported as filtered")
	}
	if !(State{Filters: map[string][]string{"a": {"x"}}}).Filtered() {
		t.Fatal("state with filter value not reported as filtered")
	}
	if !(State{SavedQuery: "mine"}).Filtered() {
		t.Fatal("state with saved query not reported as filtered")
	}
}

func TestDirectionToggle(t *testing.T) {
	if got := DirectionAsc.Toggle(); got != DirectionDesc {
		t.Fatalf("asc.Toggle() = %q, want desc", got)
	}
	if got := DirectionDesc.Toggle(); got != DirectionAsc {
		t.Fatalf("desc.Toggle() = %q, want asc", got)
	}
	if got := Direction("").Toggle(); got != DirectionDesc {
		t.Fatalf("empty.Toggle() = %q, want desc", got)
	}
}
