package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campushub/sis-backend/internal/app/models"
	"github.com/campushub/sis-backend/internal/app/models/dto"
	"github.com/campushub/sis-backend/internal/pkg/querybuilder"
)

func strPtr(s string) *string {
	return &s
}

func TestGroupProgramCodes(t *testing.T) {
	pairs := []models.ProgramCodePair{
		{ProgramCode: "CS2", CollegeCode: strPtr("ENG")},
		{ProgramCode: "CS1", CollegeCode: strPtr("ENG")},
		{ProgramCode: "ART1", CollegeCode: nil},
	}

	grouped := GroupProgramCodes(pairs)

	assert.Equal(t, dto.GroupedProgramCodes{
		"ENG": {"CS1", "CS2"},
		"N/A": {"ART1"},
	}, grouped)
}

func TestGroupProgramCodesEmpty(t *testing.T) {
	grouped := GroupProgramCodes(nil)
	assert.Empty(t, grouped)
}

func TestNormalizeProgram(t *testing.T) {
	program := normalizeProgram(dto.ProgramDetails{
		ProgramCode: " bscs ",
		ProgramName: "  Computer Science ",
		CollegeCode: " coe ",
	})

	assert.Equal(t, "BSCS", program.ProgramCode)
	assert.Equal(t, "Computer Science", program.ProgramName)
	require.NotNil(t, program.CollegeCode)
	assert.Equal(t, "COE", *program.CollegeCode)
}

func TestNormalizeProgramWithoutCollege(t *testing.T) {
	for _, collegeCode := range []string{"", "  ", "N/A"} {
		program := normalizeProgram(dto.ProgramDetails{
			ProgramCode: "BSCS",
			ProgramName: "Computer Science",
			CollegeCode: collegeCode,
		})
		assert.Nil(t, program.CollegeCode)
	}
}

func TestProgramResponseSentinel(t *testing.T) {
	response := programResponse(models.Program{
		ProgramCode: "BSCS",
		ProgramName: "Computer Science",
		CollegeCode: nil,
	})
	assert.Equal(t, "N/A", response.CollegeCode)

	response = programResponse(models.Program{
		ProgramCode: "BSCS",
		ProgramName: "Computer Science",
		CollegeCode: strPtr("COE"),
	})
	assert.Equal(t, "COE", response.CollegeCode)
}

func TestProgramFilterExclusivity(t *testing.T) {
	_, err := programFilter("eng", "Program Name", "Contains", "COE")
	assert.ErrorIs(t, err, querybuilder.ErrExclusiveFilters)
}

func TestProgramFilterModes(t *testing.T) {
	filter, err := programFilter("", "", "", "coe")
	require.NoError(t, err)
	require.NotNil(t, filter.Exact)
	assert.Nil(t, filter.Search)
	assert.Equal(t, querybuilder.ExactFilter{Column: "college_code", Value: "COE"}, *filter.Exact)

	filter, err = programFilter("eng", "Program Name", "Contains", "")
	require.NoError(t, err)
	require.NotNil(t, filter.Search)
	assert.Nil(t, filter.Exact)

	filter, err = programFilter("", "", "", "")
	require.NoError(t, err)
	assert.Nil(t, filter.Search)
	assert.Nil(t, filter.Exact)
}

func TestValidateProgram(t *testing.T) {
	valid := dto.ProgramDetails{ProgramCode: "BSCS", ProgramName: "Computer Science", CollegeCode: "COE"}
	assert.NoError(t, validateProgram(valid))

	// The presentation sentinel is accepted and treated as "no college"
	valid.CollegeCode = "N/A"
	assert.NoError(t, validateProgram(valid))

	invalid := valid
	invalid.ProgramCode = "b1"
	assert.Error(t, validateProgram(invalid))

	invalid = valid
	invalid.ProgramName = "CS"
	assert.Error(t, validateProgram(invalid))

	invalid = valid
	invalid.CollegeCode = "C0E"
	assert.Error(t, validateProgram(invalid))
}
