package models

// Year levels and genders mirror the year_level_enum and gender_enum types in
// the database, in enum order. Demographics are driven from these domains so
// zero-count categories still appear.
var (
	YearLevels = []string{"1st", "2nd", "3rd", "4th", "4th+"}
	Genders    = []string{"male", "female", "others", "prefer not to say"}
)

// Student represents an enrolled student, keyed by the NNNN-NNNN ID number.
// Gender is stored lowercase and capitalized for display. ProgramCode and
// AvatarURL are nil when unset.
type Student struct {
	IDNumber    string  `json:"idNumber"`
	FirstName   string  `json:"firstName"`
	LastName    string  `json:"lastName"`
	YearLevel   string  `json:"yearLevel"`
	Gender      string  `json:"gender"`
	AvatarURL   *string `json:"avatarUrl"`
	ProgramCode *string `json:"programCode"`
}
