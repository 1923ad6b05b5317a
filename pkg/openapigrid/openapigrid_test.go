package openapigrid

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-datagrid/pkg/grid"
)

const listSpec = `{
  "openapi": "3.0.3",
  "info": {"title": "Tasks", "version": "1.0.0"},
  "paths": {
    "/tasks": {
      "get": {
        "operationId": "listTasks",
        "responses": {
          "200": {
            "description": "task collection",
            "content": {
              "application/json": {
                "schema": {
                  "type": "object",
                  "properties": {
                    "items": {
                      "type": "array",
                      "items": {
                        "type": "object",
                        "properties": {
                          "title": {"type": "string", "title": "Task"},
                          "done": {"type": "boolean"},
                          "status": {"type": "string", "enum": ["open", "closed"]},
                          "meta": {"type": "object"}
                        }
                      }
                    },
                    "total": {"type": "integer"}
                  }
                }
              }
            }
          }
        }
      }
    },
    "/tags": {
      "get": {
        "operationId": "listTags",
        "responses": {
          "200": {
            "description": "tag collection",
            "content": {
              "application/json": {
                "schema": {
                  "type": "array",
                  "items": {
                    "type": "object",
                    "properties": {
                      "name": {"type": "string"}
                    }
                  }
                }
              }
            }
          }
        }
      }
    }
  }
}`

func TestColumnsFromDocument(t *testing.T) {
	cols, err := ColumnsFromDocument(context.Background(), []byte(listSpec), "listTasks")
	if err != nil {
		t.Fatalf("ColumnsFromDocument() returned error: %v", err)
	}

	want := []grid.Column{
		{Field: "done", Sortable: true, Filterable: true, Filter: grid.FilterBool, InHTML: true, InCSV: true},
		{Field: "meta", InHTML: true, InCSV: true},
		{Field: "status", Sortable: true, Filterable: true, Filter: grid.FilterSelect,
			Options: []grid.LOVItem{
				{Value: "open", Label: "open"},
				{Value: "closed", Label: "closed"},
			}, InHTML: true, InCSV: true},
		{Field: "title", Label: "Task", Sortable: true, Filterable: true, Filter: grid.FilterText, InHTML: true, InCSV: true},
	}
	if diff := cmp.Diff(want, cols); diff != "" {
		t.Fatalf("columns mismatch (-want +got):\n%s", diff)
	}
}

func TestColumnsFromArrayResponse(t *testing.T) {
	cols, err := ColumnsFromDocument(context.Background(), []byte(listSpec), "listTags")
	if err != nil {
		t.Fatalf("ColumnsFromDocument() returned error: %v", err)
	}
	if len(cols) != 1 || cols[0].Field != "name" {
		t.Fatalf("columns = %+v", cols)
	}
}

func TestColumnsFromDocumentErrors(t *testing.T) {
	ctx := context.Background()

	if _, err := ColumnsFromDocument(ctx, nil, "listTasks"); err == nil {
		t.Fatal("empty document accepted")
	}
	if _, err := ColumnsFromDocument(ctx, []byte(listSpec), ""); err == nil {
		t.Fatal("empty operation id accepted")
	}

	_, err := ColumnsFromDocument(ctx, []byte(listSpec), "deleteTask")
	if !errors.Is(err, ErrOperationNotFound) {
		t.Fatalf("error = %v, want ErrOperationNotFound", err)
	}
}
