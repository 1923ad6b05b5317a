// Package gridconfig loads declarative grid definitions from YAML or JSON
// and bridges them onto the builder API. JSON documents are validated
// against the embedded schema before they are decoded.
package gridconfig

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/xeipuuv/gojsonschema"
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-datagrid/pkg/grid"
)

// Definition is the serialisable description of a grid: identity, column
// declarations and default state. It carries no request state and no cell
// renderers; columns declared here render their bound field.
type Definition struct {
	Name       string      `json:"name" yaml:"name"`
	Title      string      `json:"title,omitempty" yaml:"title,omitempty"`
	BlankSlate string      `json:"blank_slate,omitempty" yaml:"blank_slate,omitempty"`
	Defaults   Defaults    `json:"defaults,omitempty" yaml:"defaults,omitempty"`
	Columns    []ColumnDef `json:"columns" yaml:"columns"`
}

// Defaults supplies the initial state used when a request carries no
// corresponding parameter.
type Defaults struct {
	PerPage   int    `json:"per_page,omitempty" yaml:"per_page,omitempty"`
	OrderBy   string `json:"order_by,omitempty" yaml:"order_by,omitempty"`
	Direction string `json:"direction,omitempty" yaml:"direction,omitempty"`
}

// ColumnDef declares one column. Output restricts the column to one
// representation: "html", "csv", or empty for both.
type ColumnDef struct {
	Field      string         `json:"field,omitempty" yaml:"field,omitempty"`
	Label      string         `json:"label,omitempty" yaml:"label,omitempty"`
	Sortable   bool           `json:"sortable,omitempty" yaml:"sortable,omitempty"`
	Filterable bool           `json:"filterable,omitempty" yaml:"filterable,omitempty"`
	Filter     string         `json:"filter,omitempty" yaml:"filter,omitempty"`
	DetachKey  string         `json:"detach_key,omitempty" yaml:"detach_key,omitempty"`
	Options    []grid.LOVItem `json:"options,omitempty" yaml:"options,omitempty"`
	Output     string         `json:"output,omitempty" yaml:"output,omitempty"`
}

// LoadYAML decodes a YAML definition.
func LoadYAML(r io.Reader) (*Definition, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("gridconfig: read definition: %w", err)
	}

	var def Definition
	if err := yaml.Unmarshal(raw, &def); err != nil {
		return nil, fmt.Errorf("gridconfig: parse yaml definition: %w", err)
	}
	if err := def.check(); err != nil {
		return nil, err
	}
	return &def, nil
}

// LoadYAMLFile decodes a YAML definition from a file.
func LoadYAMLFile(path string) (*Definition, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("gridconfig: open %s: %w", path, err)
	}
	defer f.Close()
	return LoadYAML(f)
}

// LoadJSON validates a JSON definition against the embedded schema, then
// decodes it.
func LoadJSON(r io.Reader) (*Definition, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("gridconfig: read definition: %w", err)
	}

	if err := ValidateJSON(raw); err != nil {
		return nil, err
	}

	var def Definition
	if err := yaml.Unmarshal(raw, &def); err != nil {
		return nil, fmt.Errorf("gridconfig: parse json definition: %w", err)
	}
	if err := def.check(); err != nil {
		return nil, err
	}
	return &def, nil
}

// LoadJSONFile validates and decodes a JSON definition from a file.
func LoadJSONFile(path string) (*Definition, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("gridconfig: open %s: %w", path, err)
	}
	defer f.Close()
	return LoadJSON(f)
}

// ValidateJSON checks a raw JSON definition against the embedded schema and
// reports every violation in one error.
func ValidateJSON(raw []byte) error {
	schemaLoader := gojsonschema.NewBytesLoader(definitionSchema)
	documentLoader := gojsonschema.NewBytesLoader(raw)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return fmt.Errorf("gridconfig: validate definition: %w", err)
	}
	if result.Valid() {
		return nil
	}

	var b strings.Builder
	b.WriteString("gridconfig: definition is invalid:")
	for _, issue := range result.Errors() {
		b.WriteString("\n  - ")
		b.WriteString(issue.String())
	}
	return fmt.Errorf("%s", b.String())
}

func (d *Definition) check() error {
	if strings.TrimSpace(d.Name) == "" {
		return fmt.Errorf("gridconfig: definition needs a name")
	}
	if len(d.Columns) == 0 {
		return fmt.Errorf("gridconfig: definition %q declares no columns", d.Name)
	}
	if d.Defaults.Direction != "" && !grid.Direction(d.Defaults.Direction).Valid() {
		return fmt.Errorf("gridconfig: definition %q has invalid default direction %q", d.Name, d.Defaults.Direction)
	}
	for i, col := range d.Columns {
		switch col.Output {
		case "", "html", "csv":
		default:
			return fmt.Errorf("gridconfig: definition %q column %d has unknown output %q", d.Name, i+1, col.Output)
		}
	}
	return nil
}

// DefaultState translates the definition's defaults into initial grid state.
func (d *Definition) DefaultState() grid.State {
	return grid.State{
		OrderBy:   d.Defaults.OrderBy,
		Direction: grid.Direction(d.Defaults.Direction),
		PerPage:   d.Defaults.PerPage,
		Page:      1,
	}
}

// Builder translates the definition into a grid builder. Callers attach the
// request state (see pkg/params) before calling Build.
func (d *Definition) Builder() *grid.Builder {
	b := grid.NewBuilder(d.Name).Title(d.Title)
	if d.BlankSlate != "" {
		b.BlankSlate(d.BlankSlate)
	}

	for _, def := range d.Columns {
		col := grid.Column{
			Field:      def.Field,
			Label:      def.Label,
			Sortable:   def.Sortable,
			Filterable: def.Filterable,
			Filter:     grid.FilterKind(def.Filter),
			DetachKey:  def.DetachKey,
			Options:    def.Options,
		}
		switch def.Output {
		case "html":
			b.ColumnHTMLOnly(col)
		case "csv":
			b.ColumnCSVOnly(col)
		default:
			b.Column(col)
		}
	}
	return b
}
