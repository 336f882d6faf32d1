package querybuilder

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validListParams() ListParams {
	return ListParams{
		RowsPerPage: 10,
		PageNumber:  1,
		SearchValue: "",
		SearchBy:    "Program Code",
		SearchType:  "Contains",
		SortField:   "Program Name",
		SortOrder:   "Ascending",
	}
}

func TestValidateListAccepts(t *testing.T) {
	assert.NoError(t, testEntity.ValidateList(validListParams()))

	p := validListParams()
	p.RowsPerPage = 0
	assert.NoError(t, testEntity.ValidateList(p), "rowsPerPage 0 is a valid empty-page request")
}

func TestValidateListRejections(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*ListParams)
		param  string
	}{
		{"negative rowsPerPage", func(p *ListParams) { p.RowsPerPage = -1 }, "rowsPerPage"},
		{"negative pageNumber", func(p *ListParams) { p.PageNumber = -1 }, "pageNumber"},
		{"unknown searchBy", func(p *ListParams) { p.SearchBy = "Shoe Size" }, "searchBy"},
		{"unknown searchType", func(p *ListParams) { p.SearchType = "Fuzzy" }, "searchType"},
		{"empty searchType", func(p *ListParams) { p.SearchType = "" }, "searchType"},
		{"unknown sortField", func(p *ListParams) { p.SortField = "Shoe Size" }, "sortField"},
		{"unknown sortOrder", func(p *ListParams) { p.SortOrder = "Sideways" }, "sortOrder"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := validListParams()
			tt.mutate(&p)
			err := testEntity.ValidateList(p)
			require.Error(t, err)

			var paramErr *ParamError
			require.ErrorAs(t, err, &paramErr)
			assert.Equal(t, tt.param, paramErr.Param)
			assert.Contains(t, err.Error(), tt.param, "message must name the offending parameter")
		})
	}
}

func TestParamErrorNamesPermittedValues(t *testing.T) {
	err := testEntity.ValidateList(ListParams{
		RowsPerPage: 10, PageNumber: 1,
		SearchBy: "Shoe Size", SearchType: "Contains",
		SortField: "Program Name", SortOrder: "Ascending",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Program Code")
	assert.Contains(t, err.Error(), "College Code")
}

func TestValidateSearch(t *testing.T) {
	assert.NoError(t, testEntity.ValidateSearch("", "", ""), "no search filter at all")
	assert.NoError(t, testEntity.ValidateSearch("sci", "Program Name", "Contains"))

	assert.Error(t, testEntity.ValidateSearch("sci", "Shoe Size", "Contains"))
	assert.Error(t, testEntity.ValidateSearch("sci", "Program Name", "Fuzzy"))
	assert.Error(t, testEntity.ValidateSearch("sci", "", ""), "a search value requires a searchBy field")
}

func TestValidateExclusive(t *testing.T) {
	assert.NoError(t, ValidateExclusive())
	assert.NoError(t, ValidateExclusive("", "", ""))
	assert.NoError(t, ValidateExclusive("a", "", ""))
	assert.NoError(t, ValidateExclusive("", "", "c"))

	err := ValidateExclusive("a", "b", "")
	assert.ErrorIs(t, err, ErrExclusiveFilters)
	assert.ErrorIs(t, ValidateExclusive("a", "b", "c"), ErrExclusiveFilters)
}

func TestSearchFrom(t *testing.T) {
	assert.Nil(t, SearchFrom("", "Program Code", "Contains"))

	f := SearchFrom("BS", "Program Code", "Starts With")
	require.NotNil(t, f)
	assert.Equal(t, "Program Code", f.Label)
	assert.Equal(t, SearchStartsWith, f.Type)
	assert.Equal(t, "BS", f.Value)
}
