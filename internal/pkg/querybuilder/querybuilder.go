// Package querybuilder translates normalized search/sort/pagination requests
// into parameterized SQL shared by the college, program and student
// repositories. Identifiers are only ever taken from per-entity metadata;
// values are always bound as positional arguments.
package querybuilder

import (
	"fmt"
	"strings"
)

// SearchType selects the LIKE pattern applied to the search value.
type SearchType string

const (
	SearchStartsWith SearchType = "Starts With"
	SearchContains   SearchType = "Contains"
	SearchEndsWith   SearchType = "Ends With"
)

// Pattern returns the ILIKE pattern for the given value. Unrecognized search
// types degrade to an exact match; the strict check lives in the parameter
// validator, the builder trusts its inputs.
func (t SearchType) Pattern(value string) string {
	switch t {
	case SearchStartsWith:
		return value + "%"
	case SearchEndsWith:
		return "%" + value
	case SearchContains:
		return "%" + value + "%"
	default:
		return value
	}
}

// SortOrder selects the emitted sort direction.
type SortOrder string

const (
	SortAscending  SortOrder = "Ascending"
	SortDescending SortOrder = "Descending"
)

// SQL returns the SQL direction keyword. Anything that is not "Ascending"
// sorts descending.
func (o SortOrder) SQL() string {
	if o == SortAscending {
		return "ASC"
	}
	return "DESC"
}

// Page describes a 1-based pagination window. RowsPerPage of zero is a valid
// request for an empty page.
type Page struct {
	RowsPerPage int
	PageNumber  int
}

// Offset converts the 1-based page number into a row offset.
func (p Page) Offset() int {
	if p.PageNumber <= 0 {
		return 0
	}
	return (p.PageNumber - 1) * p.RowsPerPage
}

// SearchFilter is a free-text search against one allow-listed field.
type SearchFilter struct {
	Label string
	Type  SearchType
	Value string
}

// ExactFilter matches one entity column against a single value.
type ExactFilter struct {
	Column string
	Value  string
}

// Filter resolves to at most one active filter mode. Mutual exclusion between
// search and exact filters is enforced by the validator before a Filter is
// built.
type Filter struct {
	Search *SearchFilter
	Exact  *ExactFilter
}

// NoFilter is the zero filter, matching all rows.
var NoFilter = Filter{}

// Entity holds the fixed identifiers the builder may emit for one table.
type Entity struct {
	Table      string
	PrimaryKey string
	// Columns is the full column list in select/insert/scan order,
	// primary key first.
	Columns []string
	// SearchBy and SortFields are the user-facing labels accepted for
	// searching and sorting.
	SearchBy   []string
	SortFields []string
}

// columnForLabel maps a user-facing field label to its storage column:
// lowercased, spaces replaced with underscores. Only labels in the given
// allow-list are mapped.
func columnForLabel(label string, allowed []string) (string, bool) {
	for _, a := range allowed {
		if a == label {
			return strings.ReplaceAll(strings.ToLower(label), " ", "_"), true
		}
	}
	return "", false
}

// SearchColumn resolves a searchable-field label to its column name.
func (e Entity) SearchColumn(label string) (string, bool) {
	return columnForLabel(label, e.SearchBy)
}

// SortColumn resolves a sortable-field label to its column name.
func (e Entity) SortColumn(label string) (string, bool) {
	return columnForLabel(label, e.SortFields)
}

func (e Entity) hasColumn(column string) bool {
	for _, c := range e.Columns {
		if c == column {
			return true
		}
	}
	return false
}

// Builder constructs the statements for a single entity.
type Builder struct {
	entity Entity
}

// New validates the entity metadata and returns a builder for it. Incomplete
// metadata is a programmer error, not a request error.
func New(entity Entity) (*Builder, error) {
	switch {
	case entity.Table == "":
		return nil, fmt.Errorf("querybuilder: entity table name is empty")
	case entity.PrimaryKey == "":
		return nil, fmt.Errorf("querybuilder: entity %q has no primary key", entity.Table)
	case len(entity.Columns) == 0:
		return nil, fmt.Errorf("querybuilder: entity %q has no columns", entity.Table)
	case len(entity.SearchBy) == 0 || len(entity.SortFields) == 0:
		return nil, fmt.Errorf("querybuilder: entity %q has an empty field allow-list", entity.Table)
	}
	return &Builder{entity: entity}, nil
}

// MustNew is New for package-level entity metadata that is known at compile
// time.
func MustNew(entity Entity) *Builder {
	b, err := New(entity)
	if err != nil {
		panic(err)
	}
	return b
}

// Entity returns the metadata the builder was constructed with.
func (b *Builder) Entity() Entity {
	return b.entity
}

// whereClause renders the active filter mode into a WHERE fragment and its
// bound arguments. argOffset is the number of arguments already bound.
func (b *Builder) whereClause(f Filter, argOffset int) (string, []any, error) {
	switch {
	case f.Search != nil && f.Exact != nil:
		return "", nil, fmt.Errorf("querybuilder: search and exact filters are mutually exclusive")
	case f.Search != nil:
		column, ok := b.entity.SearchColumn(f.Search.Label)
		if !ok {
			return "", nil, fmt.Errorf("querybuilder: %q is not a searchable field of %q", f.Search.Label, b.entity.Table)
		}
		clause := fmt.Sprintf(" WHERE %s ILIKE $%d", column, argOffset+1)
		return clause, []any{f.Search.Type.Pattern(f.Search.Value)}, nil
	case f.Exact != nil:
		if !b.entity.hasColumn(f.Exact.Column) {
			return "", nil, fmt.Errorf("querybuilder: %q is not a column of %q", f.Exact.Column, b.entity.Table)
		}
		clause := fmt.Sprintf(" WHERE %s = $%d", f.Exact.Column, argOffset+1)
		return clause, []any{f.Exact.Value}, nil
	default:
		return "", nil, nil
	}
}

// CountQuery builds the row-count statement for the active filter, or a total
// count when no filter is set.
func (b *Builder) CountQuery(f Filter) (string, []any, error) {
	where, args, err := b.whereClause(f, 0)
	if err != nil {
		return "", nil, err
	}
	return fmt.Sprintf("SELECT COUNT(*) FROM %s%s", b.entity.Table, where), args, nil
}

// PageQuery builds the ordered, bounded select for one page of results.
// sortField is a user-facing label from the entity's sortable allow-list.
func (b *Builder) PageQuery(f Filter, sortField string, order SortOrder, page Page) (string, []any, error) {
	sortColumn, ok := b.entity.SortColumn(sortField)
	if !ok {
		return "", nil, fmt.Errorf("querybuilder: %q is not a sortable field of %q", sortField, b.entity.Table)
	}

	where, args, err := b.whereClause(f, 0)
	if err != nil {
		return "", nil, err
	}

	query := fmt.Sprintf("SELECT %s FROM %s%s ORDER BY %s %s LIMIT $%d OFFSET $%d",
		strings.Join(b.entity.Columns, ", "), b.entity.Table, where,
		sortColumn, order.SQL(), len(args)+1, len(args)+2)
	args = append(args, page.RowsPerPage, page.Offset())
	return query, args, nil
}

// GetByPKQuery builds the single-row lookup by primary key.
func (b *Builder) GetByPKQuery() string {
	return fmt.Sprintf("SELECT %s FROM %s WHERE %s = $1 LIMIT 1",
		strings.Join(b.entity.Columns, ", "), b.entity.Table, b.entity.PrimaryKey)
}

// InsertQuery builds the insert over the full column list.
func (b *Builder) InsertQuery() string {
	placeholders := make([]string, len(b.entity.Columns))
	for i := range b.entity.Columns {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
	}
	return fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		b.entity.Table, strings.Join(b.entity.Columns, ", "), strings.Join(placeholders, ", "))
}

// UpdateByPKQuery builds the full-row update keyed by the current primary key
// value, which is bound last. The primary key column itself is updatable: a
// rename moves the row to a new key.
func (b *Builder) UpdateByPKQuery() string {
	assignments := make([]string, len(b.entity.Columns))
	for i, column := range b.entity.Columns {
		assignments[i] = fmt.Sprintf("%s = $%d", column, i+1)
	}
	return fmt.Sprintf("UPDATE %s SET %s WHERE %s = $%d",
		b.entity.Table, strings.Join(assignments, ", "), b.entity.PrimaryKey, len(b.entity.Columns)+1)
}

// DeleteByPKQuery builds the physical delete by primary key.
func (b *Builder) DeleteByPKQuery() string {
	return fmt.Sprintf("DELETE FROM %s WHERE %s = $1", b.entity.Table, b.entity.PrimaryKey)
}

// ListKeysQuery builds the listing of all primary keys plus one extra column,
// ordered ascending by the given column.
func (b *Builder) ListKeysQuery(extraColumn, orderColumn string) (string, error) {
	if !b.entity.hasColumn(extraColumn) {
		return "", fmt.Errorf("querybuilder: %q is not a column of %q", extraColumn, b.entity.Table)
	}
	if !b.entity.hasColumn(orderColumn) {
		return "", fmt.Errorf("querybuilder: %q is not a column of %q", orderColumn, b.entity.Table)
	}
	return fmt.Sprintf("SELECT %s, %s FROM %s ORDER BY %s ASC",
		b.entity.PrimaryKey, extraColumn, b.entity.Table, orderColumn), nil
}

// ExistsQuery builds a row-existence check against one column.
func (b *Builder) ExistsQuery(column string) (string, error) {
	if !b.entity.hasColumn(column) {
		return "", fmt.Errorf("querybuilder: %q is not a column of %q", column, b.entity.Table)
	}
	return fmt.Sprintf("SELECT EXISTS (SELECT 1 FROM %s WHERE %s = $1)", b.entity.Table, column), nil
}

// GetByColumnQuery builds a single-row lookup by an arbitrary entity column.
func (b *Builder) GetByColumnQuery(column string) (string, error) {
	if !b.entity.hasColumn(column) {
		return "", fmt.Errorf("querybuilder: %q is not a column of %q", column, b.entity.Table)
	}
	return fmt.Sprintf("SELECT %s FROM %s WHERE %s = $1 LIMIT 1",
		strings.Join(b.entity.Columns, ", "), b.entity.Table, column), nil
}
