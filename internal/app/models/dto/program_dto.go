package dto

// ProgramDetails is the client-supplied program payload. CollegeCode may be
// empty for a program without a parent college.
type ProgramDetails struct {
	ProgramCode string `json:"programCode" binding:"required"`
	ProgramName string `json:"programName" binding:"required"`
	CollegeCode string `json:"collegeCode"`
}

// ProgramRequest wraps create and update payloads for programs.
type ProgramRequest struct {
	EntityDetails ProgramDetails `json:"entityDetails" binding:"required"`
}

// ProgramResponse is the wire shape of a program. CollegeCode carries the
// "N/A" sentinel instead of null.
type ProgramResponse struct {
	ProgramCode string `json:"programCode"`
	ProgramName string `json:"programName"`
	CollegeCode string `json:"collegeCode"`
}

// GroupedProgramCodes maps a college code (or "N/A") to the sorted program
// codes under it.
type GroupedProgramCodes map[string][]string
