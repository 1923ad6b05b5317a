package grid

import (
	"fmt"
	"strconv"
	"time"
)

// CellOutput is the value a cell renderer hands back to the grid: either a
// plain value or a value plus extra cell attributes. Construct it with Cell
// or CellWithAttrs; the zero value is rejected at render time so malformed
// renderer results surface immediately.
type CellOutput struct {
	value string
	attrs map[string]string
	built bool
}

// Cell wraps a plain value. Values are formatted with FormatValue.
func Cell(value any) CellOutput {
	return CellOutput{value: FormatValue(value), built: true}
}

// CellWithAttrs wraps a value together with extra HTML attributes applied to
// the enclosing table cell.
func CellWithAttrs(value any, attrs map[string]string) CellOutput {
	out := Cell(value)
	if len(attrs) > 0 {
		out.attrs = make(map[string]string, len(attrs))
		for k, v := range attrs {
			out.attrs[k] = v
		}
	}
	return out
}

// Value returns the formatted cell value.
func (c CellOutput) Value() string { return c.value }

// Attrs returns the extra cell attributes, nil when none were supplied.
func (c CellOutput) Attrs() map[string]string { return c.attrs }

// Built reports whether the output came from one of the constructors.
func (c CellOutput) Built() bool { return c.built }

// CellRenderer produces the output for one cell of a record.
type CellRenderer func(Record) (CellOutput, error)

// FieldRenderer returns the default renderer for a bound column: it reads
// the named field from the record and formats it.
func FieldRenderer(field string) CellRenderer {
	return func(rec Record) (CellOutput, error) {
		return Cell(rec[field]), nil
	}
}

// FormatValue renders an arbitrary record value as display text. Byte slices
// are treated as strings (database drivers commonly return them for text
// columns), times use a date-time layout without a zone.
func FormatValue(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case []byte:
		return string(v)
	case bool:
		return strconv.FormatBool(v)
	case time.Time:
		return v.Format("2006-01-02 15:04:05")
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32)
	default:
		return fmt.Sprintf("%v", v)
	}
}
