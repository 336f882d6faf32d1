package dto

// CollegeDetails is the client-supplied college payload.
type CollegeDetails struct {
	CollegeCode string `json:"collegeCode" binding:"required"`
	CollegeName string `json:"collegeName" binding:"required"`
}

// CollegeRequest wraps create and update payloads for colleges.
type CollegeRequest struct {
	EntityDetails CollegeDetails `json:"entityDetails" binding:"required"`
}

// CollegeIdentifier is one row of the college identifier listing.
type CollegeIdentifier struct {
	CollegeCode string `json:"collegeCode"`
	CollegeName string `json:"collegeName"`
}
