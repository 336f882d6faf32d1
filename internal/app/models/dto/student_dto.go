package dto

// StudentDetails is the client-supplied student payload, posted as multipart
// form fields so an avatar file can ride along on create.
type StudentDetails struct {
	IDNumber    string `json:"idNumber" form:"idNumber" binding:"required"`
	FirstName   string `json:"firstName" form:"firstName" binding:"required"`
	LastName    string `json:"lastName" form:"lastName" binding:"required"`
	YearLevel   string `json:"yearLevel" form:"yearLevel" binding:"required"`
	Gender      string `json:"gender" form:"gender" binding:"required"`
	ProgramCode string `json:"programCode" form:"programCode"`
}

// StudentRequest wraps JSON update payloads for students.
type StudentRequest struct {
	EntityDetails StudentDetails `json:"entityDetails" binding:"required"`
}

// StudentResponse is the wire shape of a student. Gender is capitalized for
// display and ProgramCode carries the "N/A" sentinel instead of null.
type StudentResponse struct {
	IDNumber    string  `json:"idNumber"`
	FirstName   string  `json:"firstName"`
	LastName    string  `json:"lastName"`
	YearLevel   string  `json:"yearLevel"`
	Gender      string  `json:"gender"`
	AvatarURL   *string `json:"avatarUrl"`
	ProgramCode string  `json:"programCode"`
}

// YearLevelDemographic is one bucket of the year-level aggregation.
type YearLevelDemographic struct {
	YearLevel string `json:"yearLevel"`
	Count     int64  `json:"count"`
}

// GenderDemographic is one bucket of the gender aggregation.
type GenderDemographic struct {
	Gender string `json:"gender"`
	Count  int64  `json:"count"`
}
