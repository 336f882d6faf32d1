package querybuilder

import (
	"errors"
	"fmt"
	"strings"
)

// ErrExclusiveFilters is returned when more than one filter mode is requested
// at once.
var ErrExclusiveFilters = errors.New("only one filter may be active at a time")

// ParamError reports a request parameter outside its allow-list, naming the
// parameter, the rejected value and the permitted values.
type ParamError struct {
	Param   string
	Value   string
	Allowed []string
}

func (e *ParamError) Error() string {
	if len(e.Allowed) == 0 {
		return fmt.Sprintf("invalid '%s' value: '%s'", e.Param, e.Value)
	}
	return fmt.Sprintf("invalid '%s' value: '%s'. Must be one of: ['%s']",
		e.Param, e.Value, strings.Join(e.Allowed, "', '"))
}

// SearchTypes and SortOrders are the only accepted request values; anything
// else is rejected by the validator even though the builder would degrade
// gracefully.
var (
	SearchTypes = []string{string(SearchStartsWith), string(SearchContains), string(SearchEndsWith)}
	SortOrders  = []string{string(SortAscending), string(SortDescending)}
)

func contains(set []string, value string) bool {
	for _, s := range set {
		if s == value {
			return true
		}
	}
	return false
}

// ListParams is the raw shape of a paged-list request before validation.
type ListParams struct {
	RowsPerPage int
	PageNumber  int
	SearchValue string
	SearchBy    string
	SearchType  string
	SortField   string
	SortOrder   string
}

// ValidateList checks every list parameter against the entity's allow-lists.
// All fields are required for a paged list, mirroring the count/search rules
// plus sorting and pagination.
func (e Entity) ValidateList(p ListParams) error {
	if p.RowsPerPage < 0 {
		return &ParamError{Param: "rowsPerPage", Value: fmt.Sprintf("%d", p.RowsPerPage)}
	}
	if p.PageNumber < 0 {
		return &ParamError{Param: "pageNumber", Value: fmt.Sprintf("%d", p.PageNumber)}
	}
	if !contains(e.SearchBy, p.SearchBy) {
		return &ParamError{Param: "searchBy", Value: p.SearchBy, Allowed: e.SearchBy}
	}
	if !contains(SearchTypes, p.SearchType) {
		return &ParamError{Param: "searchType", Value: p.SearchType, Allowed: SearchTypes}
	}
	if !contains(e.SortFields, p.SortField) {
		return &ParamError{Param: "sortField", Value: p.SortField, Allowed: e.SortFields}
	}
	if !contains(SortOrders, p.SortOrder) {
		return &ParamError{Param: "sortOrder", Value: p.SortOrder, Allowed: SortOrders}
	}
	return nil
}

// ValidateSearch checks the optional search triple used by count requests.
// Empty values mean "no search filter" and are accepted.
func (e Entity) ValidateSearch(searchValue, searchBy, searchType string) error {
	if searchBy != "" && !contains(e.SearchBy, searchBy) {
		return &ParamError{Param: "searchBy", Value: searchBy, Allowed: e.SearchBy}
	}
	if searchType != "" && !contains(SearchTypes, searchType) {
		return &ParamError{Param: "searchType", Value: searchType, Allowed: SearchTypes}
	}
	if searchValue != "" && searchBy == "" {
		return &ParamError{Param: "searchBy", Value: searchBy, Allowed: e.SearchBy}
	}
	return nil
}

// ValidateExclusive enforces that at most one of the given filter values is
// set. The shared rule replaces the per-endpoint truthy-count checks of the
// individual list handlers.
func ValidateExclusive(values ...string) error {
	active := 0
	for _, v := range values {
		if v != "" {
			active++
		}
	}
	if active > 1 {
		return ErrExclusiveFilters
	}
	return nil
}

// SearchFrom builds the search filter from validated request values, or nil
// when no search is requested.
func SearchFrom(searchValue, searchBy, searchType string) *SearchFilter {
	if searchValue == "" {
		return nil
	}
	return &SearchFilter{Label: searchBy, Type: SearchType(searchType), Value: searchValue}
}
