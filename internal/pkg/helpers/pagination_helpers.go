package helpers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/campushub/sis-backend/internal/pkg/querybuilder"
)

const (
	DefaultRowsPerPage = 10
	DefaultPageNumber  = 1 // Page numbers are 1-based
)

// nonNegativeIntQuery parses a non-negative integer query parameter, falling
// back to def when the parameter is absent.
func nonNegativeIntQuery(c *gin.Context, name string, def int) (int, error) {
	raw := c.DefaultQuery(name, strconv.Itoa(def))
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		return 0, &querybuilder.ParamError{Param: name, Value: raw}
	}
	return v, nil
}

// ParseListParams extracts the paged-list parameters from the query string.
// Absent parameters take defaults that always pass validation: ten rows,
// first page, prefix search against the entity's default search field,
// ascending sort on the default sort field.
func ParseListParams(c *gin.Context, defaultSearchBy, defaultSortField string) (querybuilder.ListParams, error) {
	rowsPerPage, err := nonNegativeIntQuery(c, "rowsPerPage", DefaultRowsPerPage)
	if err != nil {
		return querybuilder.ListParams{}, err
	}
	pageNumber, err := nonNegativeIntQuery(c, "pageNumber", DefaultPageNumber)
	if err != nil {
		return querybuilder.ListParams{}, err
	}

	return querybuilder.ListParams{
		RowsPerPage: rowsPerPage,
		PageNumber:  pageNumber,
		SearchValue: c.Query("searchValue"),
		SearchBy:    c.DefaultQuery("searchBy", defaultSearchBy),
		SearchType:  c.DefaultQuery("searchType", string(querybuilder.SearchStartsWith)),
		SortField:   c.DefaultQuery("sortField", defaultSortField),
		SortOrder:   c.DefaultQuery("sortOrder", string(querybuilder.SortAscending)),
	}, nil
}

// SearchParams is the optional search triple accepted by count endpoints.
type SearchParams struct {
	SearchValue string
	SearchBy    string
	SearchType  string
}

// ParseSearchParams extracts the optional search triple from the query
// string. Empty values mean "no search filter".
func ParseSearchParams(c *gin.Context) SearchParams {
	return SearchParams{
		SearchValue: c.Query("searchValue"),
		SearchBy:    c.Query("searchBy"),
		SearchType:  c.Query("searchType"),
	}
}
