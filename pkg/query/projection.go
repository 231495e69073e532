// Package query provides a projection-mapped SQL query builder for
// PostgreSQL. Projections translate API-facing field names into aliased
// column references so handlers never leak raw column names.
package query

import (
	"fmt"
	"strings"
)

// ProjectionMap associates view field names with table columns for a
// single aliased table.
type ProjectionMap struct {
	schema  string
	table   string
	alias   string
	fields  map[string]string
	ordered []string
}

// NewProjectionMap creates a projection for schema.table with the given alias.
func NewProjectionMap(schema, table, alias string) *ProjectionMap {
	return &ProjectionMap{
		schema: schema,
		table:  table,
		alias:  alias,
		fields: make(map[string]string),
	}
}

// Project registers a column under the given view field name.
// Registration order determines column order in generated SELECT lists.
func (p *ProjectionMap) Project(column, field string) *ProjectionMap {
	p.fields[field] = p.alias + "." + column
	p.ordered = append(p.ordered, field)
	return p
}

// Alias returns the table alias.
func (p *ProjectionMap) Alias() string {
	return p.alias
}

// Table returns the aliased table reference for FROM clauses.
func (p *ProjectionMap) Table() string {
	return fmt.Sprintf("%s.%s %s", p.schema, p.table, p.alias)
}

// Column resolves a view field name to its aliased column reference.
// Unknown fields are returned unchanged.
func (p *ProjectionMap) Column(field string) string {
	if col, ok := p.fields[field]; ok {
		return col
	}
	return field
}

// Columns returns the comma-separated column list in registration order.
func (p *ProjectionMap) Columns() string {
	return strings.Join(p.ColumnList(), ", ")
}

// ColumnList returns the aliased columns in registration order.
func (p *ProjectionMap) ColumnList() []string {
	cols := make([]string, len(p.ordered))
	for i, field := range p.ordered {
		cols[i] = p.fields[field]
	}
	return cols
}

// SortField represents a single sort criterion on a view field.
type SortField struct {
	Field      string `json:"field"`
	Descending bool   `json:"descending"`
}

// ParseSortFields parses a comma-separated sort expression. A "-" prefix
// marks a field as descending, e.g. "-created_at,name".
func ParseSortFields(expr string) []SortField {
	if expr == "" {
		return nil
	}

	var fields []SortField
	for _, part := range strings.Split(expr, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if strings.HasPrefix(part, "-") {
			fields = append(fields, SortField{Field: part[1:], Descending: true})
		} else {
			fields = append(fields, SortField{Field: part})
		}
	}
	return fields
}
