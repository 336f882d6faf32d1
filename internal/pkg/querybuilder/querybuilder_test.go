package querybuilder

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testEntity = Entity{
	Table:      "programs",
	PrimaryKey: "program_code",
	Columns:    []string{"program_code", "program_name", "college_code"},
	SearchBy:   []string{"Program Code", "Program Name", "College Code"},
	SortFields: []string{"Program Code", "Program Name", "College Code"},
}

func TestSearchTypePattern(t *testing.T) {
	tests := []struct {
		searchType SearchType
		want       string
	}{
		{SearchStartsWith, "v%"},
		{SearchContains, "%v%"},
		{SearchEndsWith, "%v"},
		{SearchType("Fuzzy"), "v"},
		{SearchType(""), "v"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.searchType.Pattern("v"), "search type %q", tt.searchType)
	}
}

func TestSortOrderSQL(t *testing.T) {
	assert.Equal(t, "ASC", SortAscending.SQL())
	assert.Equal(t, "DESC", SortDescending.SQL())
	assert.Equal(t, "DESC", SortOrder("Sideways").SQL())
	assert.Equal(t, "DESC", SortOrder("").SQL())
}

func TestPageOffset(t *testing.T) {
	tests := []struct {
		name string
		page Page
		want int
	}{
		{"first page", Page{RowsPerPage: 10, PageNumber: 1}, 0},
		{"third page", Page{RowsPerPage: 10, PageNumber: 3}, 20},
		{"page zero", Page{RowsPerPage: 10, PageNumber: 0}, 0},
		{"negative page", Page{RowsPerPage: 10, PageNumber: -4}, 0},
		{"zero rows per page", Page{RowsPerPage: 0, PageNumber: 7}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.page.Offset())
		})
	}
}

func TestLabelToColumnMapping(t *testing.T) {
	for _, label := range testEntity.SearchBy {
		column, ok := testEntity.SearchColumn(label)
		require.True(t, ok, "label %q should map", label)
		assert.Regexp(t, `^[a-z_]+$`, column)
	}

	column, ok := testEntity.SearchColumn("Program Code")
	require.True(t, ok)
	assert.Equal(t, "program_code", column)

	_, ok = testEntity.SearchColumn("Secret Column")
	assert.False(t, ok)
	_, ok = testEntity.SortColumn("program_code") // raw column names are not labels
	assert.False(t, ok)
}

func TestNewRejectsIncompleteMetadata(t *testing.T) {
	_, err := New(Entity{})
	assert.Error(t, err)

	_, err = New(Entity{Table: "t", PrimaryKey: "pk", Columns: []string{"pk"}})
	assert.Error(t, err, "empty allow-lists are a programmer error")

	_, err = New(testEntity)
	assert.NoError(t, err)
}

func TestCountQuery(t *testing.T) {
	b := MustNew(testEntity)

	query, args, err := b.CountQuery(NoFilter)
	require.NoError(t, err)
	assert.Equal(t, "SELECT COUNT(*) FROM programs", query)
	assert.Empty(t, args)

	query, args, err = b.CountQuery(Filter{Search: &SearchFilter{
		Label: "Program Name", Type: SearchContains, Value: "science",
	}})
	require.NoError(t, err)
	assert.Equal(t, "SELECT COUNT(*) FROM programs WHERE program_name ILIKE $1", query)
	assert.Equal(t, []any{"%science%"}, args)

	query, args, err = b.CountQuery(Filter{Exact: &ExactFilter{Column: "college_code", Value: "CCS"}})
	require.NoError(t, err)
	assert.Equal(t, "SELECT COUNT(*) FROM programs WHERE college_code = $1", query)
	assert.Equal(t, []any{"CCS"}, args)
}

func TestCountQueryRejectsUnknownIdentifiers(t *testing.T) {
	b := MustNew(testEntity)

	_, _, err := b.CountQuery(Filter{Search: &SearchFilter{Label: "Nope", Type: SearchContains, Value: "x"}})
	assert.Error(t, err)

	_, _, err = b.CountQuery(Filter{Exact: &ExactFilter{Column: "evil; DROP TABLE", Value: "x"}})
	assert.Error(t, err)

	_, _, err = b.CountQuery(Filter{
		Search: &SearchFilter{Label: "Program Name", Type: SearchContains, Value: "x"},
		Exact:  &ExactFilter{Column: "college_code", Value: "CCS"},
	})
	assert.Error(t, err, "both filter modes at once is invalid internal state")
}

func TestPageQuery(t *testing.T) {
	b := MustNew(testEntity)

	query, args, err := b.PageQuery(
		Filter{Search: &SearchFilter{Label: "Program Code", Type: SearchStartsWith, Value: "BS"}},
		"Program Name", SortAscending, Page{RowsPerPage: 10, PageNumber: 3})
	require.NoError(t, err)
	assert.Equal(t,
		"SELECT program_code, program_name, college_code FROM programs "+
			"WHERE program_code ILIKE $1 ORDER BY program_name ASC LIMIT $2 OFFSET $3",
		query)
	assert.Equal(t, []any{"BS%", 10, 20}, args)
}

func TestPageQueryWithoutFilter(t *testing.T) {
	b := MustNew(testEntity)

	query, args, err := b.PageQuery(NoFilter, "Program Code", SortDescending, Page{RowsPerPage: 25, PageNumber: 1})
	require.NoError(t, err)
	assert.Equal(t,
		"SELECT program_code, program_name, college_code FROM programs "+
			"ORDER BY program_code DESC LIMIT $1 OFFSET $2",
		query)
	assert.Equal(t, []any{25, 0}, args)
}

func TestPageQueryZeroRowsPerPage(t *testing.T) {
	b := MustNew(testEntity)

	query, args, err := b.PageQuery(NoFilter, "Program Code", SortAscending, Page{RowsPerPage: 0, PageNumber: 5})
	require.NoError(t, err)
	assert.Contains(t, query, "LIMIT $1 OFFSET $2")
	assert.Equal(t, []any{0, 0}, args, "rowsPerPage 0 must yield an empty page, not an error")
}

func TestPageQueryRejectsUnknownSortField(t *testing.T) {
	b := MustNew(testEntity)
	_, _, err := b.PageQuery(NoFilter, "Nope", SortAscending, Page{RowsPerPage: 10, PageNumber: 1})
	assert.Error(t, err)
}

func TestFixedStatements(t *testing.T) {
	b := MustNew(testEntity)

	assert.Equal(t,
		"SELECT program_code, program_name, college_code FROM programs WHERE program_code = $1 LIMIT 1",
		b.GetByPKQuery())

	assert.Equal(t,
		"INSERT INTO programs (program_code, program_name, college_code) VALUES ($1, $2, $3)",
		b.InsertQuery())

	assert.Equal(t,
		"UPDATE programs SET program_code = $1, program_name = $2, college_code = $3 WHERE program_code = $4",
		b.UpdateByPKQuery())

	assert.Equal(t, "DELETE FROM programs WHERE program_code = $1", b.DeleteByPKQuery())

	listKeys, err := b.ListKeysQuery("college_code", "college_code")
	require.NoError(t, err)
	assert.Equal(t, "SELECT program_code, college_code FROM programs ORDER BY college_code ASC", listKeys)

	exists, err := b.ExistsQuery("program_name")
	require.NoError(t, err)
	assert.Equal(t, "SELECT EXISTS (SELECT 1 FROM programs WHERE program_name = $1)", exists)

	byColumn, err := b.GetByColumnQuery("college_code")
	require.NoError(t, err)
	assert.Equal(t,
		"SELECT program_code, program_name, college_code FROM programs WHERE college_code = $1 LIMIT 1",
		byColumn)
}

func TestFixedStatementsRejectUnknownColumns(t *testing.T) {
	b := MustNew(testEntity)

	_, err := b.ListKeysQuery("nope", "college_code")
	assert.Error(t, err)
	_, err = b.ListKeysQuery("college_code", "nope")
	assert.Error(t, err)
	_, err = b.ExistsQuery("nope")
	assert.Error(t, err)
	_, err = b.GetByColumnQuery("nope")
	assert.Error(t, err)
}
