package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/campushub/sis-backend/internal/app/models/dto"
)

func TestNormalizeCollege(t *testing.T) {
	college := normalizeCollege(dto.CollegeDetails{
		CollegeCode: " coe ",
		CollegeName: "  College of Engineering ",
	})

	assert.Equal(t, "COE", college.CollegeCode)
	assert.Equal(t, "College of Engineering", college.CollegeName)
}

func TestValidateCollege(t *testing.T) {
	valid := dto.CollegeDetails{CollegeCode: "COE", CollegeName: "College of Engineering"}
	assert.NoError(t, validateCollege(valid))

	invalid := valid
	invalid.CollegeCode = "C0E"
	assert.Error(t, validateCollege(invalid))

	invalid = valid
	invalid.CollegeName = "Engineering 101"
	assert.Error(t, validateCollege(invalid))
}
