package helpers

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campushub/sis-backend/internal/pkg/querybuilder"
)

func testContext(t *testing.T, query string) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/?"+query, nil)
	return c
}

func TestParseListParamsDefaults(t *testing.T) {
	c := testContext(t, "")

	params, err := ParseListParams(c, "College Code", "College Name")
	require.NoError(t, err)

	assert.Equal(t, querybuilder.ListParams{
		RowsPerPage: 10,
		PageNumber:  1,
		SearchBy:    "College Code",
		SearchType:  "Starts With",
		SortField:   "College Name",
		SortOrder:   "Ascending",
	}, params)
}

func TestParseListParamsExplicit(t *testing.T) {
	c := testContext(t, "rowsPerPage=25&pageNumber=3&searchValue=eng&searchBy=College+Name&searchType=Contains&sortField=College+Code&sortOrder=Descending")

	params, err := ParseListParams(c, "College Code", "College Code")
	require.NoError(t, err)

	assert.Equal(t, querybuilder.ListParams{
		RowsPerPage: 25,
		PageNumber:  3,
		SearchValue: "eng",
		SearchBy:    "College Name",
		SearchType:  "Contains",
		SortField:   "College Code",
		SortOrder:   "Descending",
	}, params)
}

func TestParseListParamsRejectsBadIntegers(t *testing.T) {
	tests := []struct {
		name  string
		query string
		param string
	}{
		{"non-numeric rows", "rowsPerPage=ten", "rowsPerPage"},
		{"negative rows", "rowsPerPage=-1", "rowsPerPage"},
		{"non-numeric page", "pageNumber=x", "pageNumber"},
		{"negative page", "pageNumber=-2", "pageNumber"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := testContext(t, tt.query)

			_, err := ParseListParams(c, "College Code", "College Code")
			var paramErr *querybuilder.ParamError
			require.ErrorAs(t, err, &paramErr)
			assert.Equal(t, tt.param, paramErr.Param)
		})
	}
}

func TestParseListParamsZeroRowsPerPage(t *testing.T) {
	c := testContext(t, "rowsPerPage=0")

	params, err := ParseListParams(c, "College Code", "College Code")
	require.NoError(t, err)
	assert.Equal(t, 0, params.RowsPerPage)
}

func TestParseSearchParams(t *testing.T) {
	c := testContext(t, "searchValue=abc&searchBy=College+Name&searchType=Ends+With")

	search := ParseSearchParams(c)
	assert.Equal(t, SearchParams{SearchValue: "abc", SearchBy: "College Name", SearchType: "Ends With"}, search)
}

func TestNilIfEmpty(t *testing.T) {
	assert.Nil(t, NilIfEmpty(""))
	assert.Nil(t, NilIfEmpty("   "))
	assert.Nil(t, NilIfEmpty("N/A"))

	ptr := NilIfEmpty("  BSCS ")
	require.NotNil(t, ptr)
	assert.Equal(t, "BSCS", *ptr)
}

func TestTextOrNA(t *testing.T) {
	assert.Equal(t, "N/A", TextOrNA(nil))

	empty := ""
	assert.Equal(t, "N/A", TextOrNA(&empty))

	code := "COE"
	assert.Equal(t, "COE", TextOrNA(&code))
}
