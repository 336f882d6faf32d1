package models

// College represents a college, keyed by its uppercase college code.
type College struct {
	CollegeCode string `json:"collegeCode"`
	CollegeName string `json:"collegeName"`
}
