package main

import (
	"fmt"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-datagrid/pkg/grid"
	"github.com/goliatone/go-datagrid/pkg/gridconfig"
)

// runScaffold walks the user through a grid definition and writes it as
// YAML.
func runScaffold(logger zerolog.Logger, output string) error {
	def := gridconfig.Definition{}

	if err := survey.AskOne(&survey.Input{
		Message: "Grid name:",
		Help:    "Used for CSS ids and query parameter namespacing.",
	}, &def.Name, survey.WithValidator(nonBlank)); err != nil {
		return err
	}

	if err := survey.AskOne(&survey.Input{
		Message: "Title (optional):",
	}, &def.Title); err != nil {
		return err
	}

	for {
		col, err := askColumn(len(def.Columns) + 1)
		if err != nil {
			return err
		}
		def.Columns = append(def.Columns, col)

		again := false
		if err := survey.AskOne(&survey.Confirm{
			Message: "Add another column?",
			Default: true,
		}, &again); err != nil {
			return err
		}
		if !again {
			break
		}
	}

	if len(def.Columns) > 0 && def.Columns[0].Field != "" {
		def.Defaults.OrderBy = def.Columns[0].Field
		def.Defaults.Direction = "asc"
	}

	raw, err := yaml.Marshal(def)
	if err != nil {
		return fmt.Errorf("encode definition: %w", err)
	}

	logger.Info().Str("grid", def.Name).Int("columns", len(def.Columns)).Msg("definition scaffolded")
	return write(output, string(raw))
}

func askColumn(n int) (gridconfig.ColumnDef, error) {
	col := gridconfig.ColumnDef{}

	if err := survey.AskOne(&survey.Input{
		Message: fmt.Sprintf("Column %d field:", n),
	}, &col.Field, survey.WithValidator(nonBlank)); err != nil {
		return col, err
	}

	if err := survey.AskOne(&survey.Input{
		Message: "Label (blank to derive from field):",
	}, &col.Label); err != nil {
		return col, err
	}

	if err := survey.AskOne(&survey.Confirm{
		Message: "Sortable?",
		Default: true,
	}, &col.Sortable); err != nil {
		return col, err
	}

	if err := survey.AskOne(&survey.Confirm{
		Message: "Filterable?",
		Default: false,
	}, &col.Filterable); err != nil {
		return col, err
	}

	if col.Filterable {
		if err := survey.AskOne(&survey.Select{
			Message: "Filter widget:",
			Options: []string{"text", "select", "boolean"},
			Default: "text",
		}, &col.Filter); err != nil {
			return col, err
		}
		if col.Filter == "select" {
			if err := askOptions(&col); err != nil {
				return col, err
			}
		}
	}

	return col, nil
}

func askOptions(col *gridconfig.ColumnDef) error {
	var raw string
	if err := survey.AskOne(&survey.Input{
		Message: "Select options (comma-separated value:label pairs):",
		Help:    "Example: a:Active, i:Inactive",
	}, &raw, survey.WithValidator(nonBlank)); err != nil {
		return err
	}

	for _, pair := range strings.Split(raw, ",") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		value, label, found := strings.Cut(pair, ":")
		if !found {
			label = value
		}
		col.Options = append(col.Options, grid.LOVItem{
			Value: strings.TrimSpace(value),
			Label: strings.TrimSpace(label),
		})
	}
	return nil
}

func nonBlank(val any) error {
	s, _ := val.(string)
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("a value is required")
	}
	return nil
}
