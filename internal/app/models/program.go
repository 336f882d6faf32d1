package models

// Program represents an academic program offered by a college. CollegeCode is
// nil when the program is not assigned to a college; the service layer
// substitutes the "N/A" sentinel for presentation.
type Program struct {
	ProgramCode string  `json:"programCode"`
	ProgramName string  `json:"programName"`
	CollegeCode *string `json:"collegeCode"`
}

// ProgramCodePair is one row of the program identifier listing: a program
// code with its parent college code, if any.
type ProgramCodePair struct {
	ProgramCode string
	CollegeCode *string
}
