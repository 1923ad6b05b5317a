// Package sqlsource backs a grid with a PostgreSQL table through
// database/sql. Field names are whitelisted at construction; anything a
// request names outside the whitelist is ignored rather than interpolated.
package sqlsource

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/lib/pq"

	"github.com/goliatone/go-datagrid/pkg/datasource"
	"github.com/goliatone/go-datagrid/pkg/grid"
)

// FieldType selects how filter values for a field translate to SQL.
type FieldType string

const (
	// TypeText matches with case-insensitive substring search.
	TypeText FieldType = "text"
	// TypeExact matches with equality (IN for multiple values).
	TypeExact FieldType = "exact"
	// TypeBool parses "true"/"false" into a boolean equality match.
	TypeBool FieldType = "boolean"
)

// Config declares the table and the queryable fields.
type Config struct {
	Table string

	// Fields lists the selectable columns in SELECT order.
	Fields []string

	// FieldTypes assigns filter semantics per field. Fields without an entry
	// filter as TypeText.
	FieldTypes map[string]FieldType
}

// Source implements datasource.Source over a *sql.DB.
type Source struct {
	db     *sql.DB
	cfg    Config
	fields map[string]bool
}

var _ datasource.Source = (*Source)(nil)

// New validates the configuration and builds a source.
func New(db *sql.DB, cfg Config) (*Source, error) {
	if db == nil {
		return nil, fmt.Errorf("sqlsource: nil database handle")
	}
	if strings.TrimSpace(cfg.Table) == "" {
		return nil, fmt.Errorf("sqlsource: table name is required")
	}
	if len(cfg.Fields) == 0 {
		return nil, fmt.Errorf("sqlsource: at least one field is required")
	}

	fields := make(map[string]bool, len(cfg.Fields))
	for _, f := range cfg.Fields {
		if strings.TrimSpace(f) == "" {
			return nil, fmt.Errorf("sqlsource: empty field name in table %q", cfg.Table)
		}
		fields[f] = true
	}

	return &Source{db: db, cfg: cfg, fields: fields}, nil
}

func (s *Source) Count(ctx context.Context, q datasource.Query) (int, error) {
	where, args := s.buildWhere(q)
	query := fmt.Sprintf("SELECT COUNT(*) FROM %s%s", pq.QuoteIdentifier(s.cfg.Table), where)

	var total int
	if err := s.db.QueryRowContext(ctx, query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("sqlsource: count %s: %w", s.cfg.Table, err)
	}
	return total, nil
}

func (s *Source) Fetch(ctx context.Context, q datasource.Query) ([]grid.Record, error) {
	where, args := s.buildWhere(q)

	cols := make([]string, len(s.cfg.Fields))
	for i, f := range s.cfg.Fields {
		cols[i] = pq.QuoteIdentifier(f)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "SELECT %s FROM %s%s%s",
		strings.Join(cols, ", "), pq.QuoteIdentifier(s.cfg.Table), where, s.buildOrder(q))
	if q.Limit > 0 {
		fmt.Fprintf(&b, " LIMIT %d OFFSET %d", q.Limit, q.Offset)
	}

	rows, err := s.db.QueryContext(ctx, b.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("sqlsource: query %s: %w", s.cfg.Table, err)
	}
	defer rows.Close()

	var records []grid.Record
	for rows.Next() {
		values := make([]any, len(s.cfg.Fields))
		ptrs := make([]any, len(values))
		for i := range values {
			ptrs[i] = &values[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, fmt.Errorf("sqlsource: scan %s: %w", s.cfg.Table, err)
		}

		rec := make(grid.Record, len(values))
		for i, field := range s.cfg.Fields {
			// Text columns come back as []byte from the driver.
			if b, ok := values[i].([]byte); ok {
				rec[field] = string(b)
			} else {
				rec[field] = values[i]
			}
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("sqlsource: iterate %s: %w", s.cfg.Table, err)
	}
	return records, nil
}

// buildWhere translates whitelisted filters into a WHERE clause with
// positional placeholders.
func (s *Source) buildWhere(q datasource.Query) (string, []any) {
	var clauses []string
	var args []any
	argIdx := 1

	for _, field := range s.cfg.Fields {
		values, ok := q.Filters[field]
		if !ok {
			continue
		}

		switch s.fieldType(field) {
		case TypeText:
			var parts []string
			for _, v := range values {
				v = strings.TrimSpace(v)
				if v == "" {
					continue
				}
				parts = append(parts, fmt.Sprintf("%s::text ILIKE $%d", pq.QuoteIdentifier(field), argIdx))
				args = append(args, "%"+v+"%")
				argIdx++
			}
			if len(parts) > 0 {
				clauses = append(clauses, "("+strings.Join(parts, " OR ")+")")
			}

		case TypeBool:
			for _, v := range values {
				v = strings.TrimSpace(v)
				if v != "true" && v != "false" {
					continue
				}
				clauses = append(clauses, fmt.Sprintf("%s = $%d", pq.QuoteIdentifier(field), argIdx))
				args = append(args, v == "true")
				argIdx++
				break
			}

		case TypeExact:
			var placeholders []string
			for _, v := range values {
				v = strings.TrimSpace(v)
				if v == "" {
					continue
				}
				placeholders = append(placeholders, fmt.Sprintf("$%d", argIdx))
				args = append(args, v)
				argIdx++
			}
			if len(placeholders) > 0 {
				clauses = append(clauses, fmt.Sprintf("%s IN (%s)", pq.QuoteIdentifier(field), strings.Join(placeholders, ", ")))
			}
		}
	}

	if len(clauses) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(clauses, " AND "), args
}

func (s *Source) buildOrder(q datasource.Query) string {
	if q.OrderBy == "" || !s.fields[q.OrderBy] {
		return ""
	}
	dir := "ASC"
	if q.Direction == grid.DirectionDesc {
		dir = "DESC"
	}
	return fmt.Sprintf(" ORDER BY %s %s", pq.QuoteIdentifier(q.OrderBy), dir)
}

func (s *Source) fieldType(field string) FieldType {
	if t, ok := s.cfg.FieldTypes[field]; ok {
		switch t {
		case TypeText, TypeExact, TypeBool:
			return t
		}
	}
	return TypeText
}
