// Package openapigrid derives grid column declarations from the response
// schema of an OpenAPI list operation, so a grid over an API collection
// stays aligned with the contract that produces it.
package openapigrid

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-datagrid/pkg/grid"
)

// ErrOperationNotFound reports that the document declares no operation under
// the requested id.
var ErrOperationNotFound = errors.New("openapigrid: operation not found")

// collectionKeys are the envelope properties scanned, in order, when a list
// operation wraps its items in an object.
var collectionKeys = []string{"items", "data", "results", "records"}

// ColumnsFromDocument loads an OpenAPI document and derives columns from the
// JSON response schema of the operation with the given id. Array responses
// use their item schema; object responses are unwrapped through the usual
// collection envelope properties.
func ColumnsFromDocument(ctx context.Context, raw []byte, operationID string) ([]grid.Column, error) {
	if len(raw) == 0 {
		return nil, errors.New("openapigrid: document payload is empty")
	}
	if operationID == "" {
		return nil, errors.New("openapigrid: operation id is required")
	}

	loader := &openapi3.Loader{Context: ctx}
	doc, err := loader.LoadFromData(raw)
	if err != nil {
		return nil, fmt.Errorf("openapigrid: load document: %w", err)
	}

	op := findOperation(doc, operationID)
	if op == nil {
		return nil, fmt.Errorf("%w: %q", ErrOperationNotFound, operationID)
	}

	itemSchema, err := itemSchemaOf(op, operationID)
	if err != nil {
		return nil, err
	}

	return columnsFromSchema(itemSchema)
}

func findOperation(doc *openapi3.T, operationID string) *openapi3.Operation {
	if doc.Paths == nil {
		return nil
	}
	for _, item := range doc.Paths.Map() {
		if item == nil {
			continue
		}
		for _, op := range item.Operations() {
			if op != nil && op.OperationID == operationID {
				return op
			}
		}
	}
	return nil
}

// itemSchemaOf digs the per-record schema out of the operation's success
// response.
func itemSchemaOf(op *openapi3.Operation, operationID string) (*openapi3.Schema, error) {
	if op.Responses == nil {
		return nil, fmt.Errorf("openapigrid: operation %q declares no responses", operationID)
	}

	response := op.Responses.Status(200)
	if response == nil || response.Value == nil {
		return nil, fmt.Errorf("openapigrid: operation %q has no 200 response", operationID)
	}

	media := response.Value.Content.Get("application/json")
	if media == nil || media.Schema == nil || media.Schema.Value == nil {
		return nil, fmt.Errorf("openapigrid: operation %q has no JSON response schema", operationID)
	}
	schema := media.Schema.Value

	if schema.Type != nil && schema.Type.Is(openapi3.TypeArray) {
		if schema.Items == nil || schema.Items.Value == nil {
			return nil, fmt.Errorf("openapigrid: operation %q returns an array without an item schema", operationID)
		}
		return schema.Items.Value, nil
	}

	for _, key := range collectionKeys {
		prop, ok := schema.Properties[key]
		if !ok || prop.Value == nil {
			continue
		}
		inner := prop.Value
		if inner.Type != nil && inner.Type.Is(openapi3.TypeArray) && inner.Items != nil && inner.Items.Value != nil {
			return inner.Items.Value, nil
		}
	}

	return nil, fmt.Errorf("openapigrid: operation %q response is not a recognisable collection", operationID)
}

func columnsFromSchema(schema *openapi3.Schema) ([]grid.Column, error) {
	if len(schema.Properties) == 0 {
		return nil, errors.New("openapigrid: item schema declares no properties")
	}

	names := make([]string, 0, len(schema.Properties))
	for name := range schema.Properties {
		names = append(names, name)
	}
	sort.Strings(names)

	cols := make([]grid.Column, 0, len(names))
	for _, name := range names {
		ref := schema.Properties[name]
		if ref == nil || ref.Value == nil {
			continue
		}
		cols = append(cols, columnFromProperty(name, ref.Value))
	}
	if len(cols) == 0 {
		return nil, errors.New("openapigrid: item schema declares no usable properties")
	}
	return cols, nil
}

func columnFromProperty(name string, prop *openapi3.Schema) grid.Column {
	col := grid.Column{
		Field:  name,
		Label:  prop.Title,
		InHTML: true,
		InCSV:  true,
	}

	switch {
	case prop.Type == nil:
		// Untyped properties render but never sort or filter.

	case prop.Type.Is(openapi3.TypeBoolean):
		col.Sortable = true
		col.Filterable = true
		col.Filter = grid.FilterBool

	case prop.Type.Is(openapi3.TypeString) && len(prop.Enum) > 0:
		col.Sortable = true
		col.Filterable = true
		col.Filter = grid.FilterSelect
		for _, v := range prop.Enum {
			literal := fmt.Sprintf("%v", v)
			col.Options = append(col.Options, grid.LOVItem{Value: literal, Label: literal})
		}

	case prop.Type.Is(openapi3.TypeString),
		prop.Type.Is(openapi3.TypeInteger),
		prop.Type.Is(openapi3.TypeNumber):
		col.Sortable = true
		col.Filterable = true
		col.Filter = grid.FilterText
	}

	return col
}
