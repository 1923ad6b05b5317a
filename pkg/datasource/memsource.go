package datasource

import (
	"context"
	"sort"
	"strings"

	"github.com/goliatone/go-datagrid/pkg/grid"
)

// MemSource serves records from memory. It exists for demos and tests, and
// as the reference for how sources are expected to interpret a Query:
// filter, then order, then page.
type MemSource struct {
	records []grid.Record
}

var _ Source = (*MemSource)(nil)

// NewMemSource copies records into a new source.
func NewMemSource(records []grid.Record) *MemSource {
	out := make([]grid.Record, len(records))
	copy(out, records)
	return &MemSource{records: out}
}

func (s *MemSource) Count(ctx context.Context, q Query) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	return len(s.filtered(q)), nil
}

func (s *MemSource) Fetch(ctx context.Context, q Query) ([]grid.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	matched := s.filtered(q)

	if q.OrderBy != "" {
		desc := q.Direction == grid.DirectionDesc
		sort.SliceStable(matched, func(i, j int) bool {
			a := grid.FormatValue(matched[i][q.OrderBy])
			b := grid.FormatValue(matched[j][q.OrderBy])
			if desc {
				return a > b
			}
			return a < b
		})
	}

	if q.Limit <= 0 {
		return matched, nil
	}
	if q.Offset >= len(matched) {
		return nil, nil
	}
	end := q.Offset + q.Limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[q.Offset:end], nil
}

// filtered applies case-insensitive substring matching per field; multiple
// values for one field match as alternatives.
func (s *MemSource) filtered(q Query) []grid.Record {
	if len(q.Filters) == 0 {
		return append([]grid.Record(nil), s.records...)
	}

	var out []grid.Record
	for _, rec := range s.records {
		if matchesFilters(rec, q.Filters) {
			out = append(out, rec)
		}
	}
	return out
}

func matchesFilters(rec grid.Record, filters map[string][]string) bool {
	for field, values := range filters {
		actual := strings.ToLower(grid.FormatValue(rec[field]))
		matched := false
		for _, v := range values {
			v = strings.TrimSpace(v)
			if v == "" {
				matched = true
				break
			}
			if strings.Contains(actual, strings.ToLower(v)) {
				matched = true
				break
			}
		}
		if !matched {
			return false
		}
	}
	return true
}
