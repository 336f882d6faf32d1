package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campushub/sis-backend/internal/app/models"
	"github.com/campushub/sis-backend/internal/app/models/dto"
	"github.com/campushub/sis-backend/internal/pkg/querybuilder"
)

func validStudentDetails() dto.StudentDetails {
	return dto.StudentDetails{
		IDNumber:    "2021-0001",
		FirstName:   "Mary Jane",
		LastName:    "O'Neil",
		YearLevel:   "2nd",
		Gender:      "Female",
		ProgramCode: "BSCS",
	}
}

func TestNormalizeStudent(t *testing.T) {
	details := dto.StudentDetails{
		IDNumber:    " 2021-0001 ",
		FirstName:   " Mary Jane ",
		LastName:    " O'Neil ",
		YearLevel:   " 2nd ",
		Gender:      " Female ",
		ProgramCode: " bscs ",
	}

	student := normalizeStudent(details)

	assert.Equal(t, "2021-0001", student.IDNumber)
	assert.Equal(t, "Mary Jane", student.FirstName)
	assert.Equal(t, "O'Neil", student.LastName)
	assert.Equal(t, "2nd", student.YearLevel)
	assert.Equal(t, "female", student.Gender)
	require.NotNil(t, student.ProgramCode)
	assert.Equal(t, "BSCS", *student.ProgramCode)
}

func TestNormalizeStudentWithoutProgram(t *testing.T) {
	for _, programCode := range []string{"", "  ", "N/A"} {
		details := validStudentDetails()
		details.ProgramCode = programCode
		assert.Nil(t, normalizeStudent(details).ProgramCode)
	}
}

func TestValidateStudent(t *testing.T) {
	assert.NoError(t, validateStudent(validStudentDetails()))

	unassigned := validStudentDetails()
	unassigned.ProgramCode = "N/A"
	assert.NoError(t, validateStudent(unassigned))

	tests := []struct {
		name   string
		mutate func(*dto.StudentDetails)
	}{
		{"bad id number", func(d *dto.StudentDetails) { d.IDNumber = "20210001" }},
		{"bad first name", func(d *dto.StudentDetails) { d.FirstName = "J0hn" }},
		{"bad last name", func(d *dto.StudentDetails) { d.LastName = "Sm1th" }},
		{"bad year level", func(d *dto.StudentDetails) { d.YearLevel = "5th" }},
		{"bad gender", func(d *dto.StudentDetails) { d.Gender = "unknown" }},
		{"bad program code", func(d *dto.StudentDetails) { d.ProgramCode = "B5CS" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			details := validStudentDetails()
			tt.mutate(&details)
			assert.Error(t, validateStudent(details))
		})
	}
}

func TestCapitalizeFirst(t *testing.T) {
	assert.Equal(t, "Female", capitalizeFirst("female"))
	assert.Equal(t, "Prefer not to say", capitalizeFirst("prefer not to say"))
	assert.Equal(t, "", capitalizeFirst(""))
}

func TestStudentResponsePresentation(t *testing.T) {
	response := studentResponse(models.Student{
		IDNumber:    "2021-0001",
		FirstName:   "Mary Jane",
		LastName:    "O'Neil",
		YearLevel:   "2nd",
		Gender:      "female",
		ProgramCode: nil,
	})

	assert.Equal(t, "Female", response.Gender)
	assert.Equal(t, "N/A", response.ProgramCode)
	assert.Nil(t, response.AvatarURL)
}

func TestValidateScope(t *testing.T) {
	assert.NoError(t, validateScope("", "", ""))
	assert.NoError(t, validateScope("abc", "", ""))
	assert.NoError(t, validateScope("", "BSCS", ""))
	assert.NoError(t, validateScope("", "", "COE"))

	assert.ErrorIs(t, validateScope("abc", "BSCS", ""), querybuilder.ErrExclusiveFilters)
	assert.ErrorIs(t, validateScope("abc", "", "COE"), querybuilder.ErrExclusiveFilters)
	assert.ErrorIs(t, validateScope("", "BSCS", "COE"), querybuilder.ErrExclusiveFilters)
}
