package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campushub/sis-backend/internal/pkg/apperrors"
)

func TestCollegeCode(t *testing.T) {
	tests := []struct {
		name    string
		code    string
		wantErr bool
	}{
		{"valid short", "CS", false},
		{"valid with hyphen", "COE-X", false},
		{"lowercase is normalized", "coe", false},
		{"blank", "", true},
		{"too short", "C", true},
		{"digits rejected", "C0E", true},
		{"spaces rejected", "C E", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CollegeCode(tt.code)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestOptionalCollegeCode(t *testing.T) {
	assert.NoError(t, OptionalCollegeCode(""))
	assert.NoError(t, OptionalCollegeCode("COE"))
	assert.Error(t, OptionalCollegeCode("C0E"))
}

func TestCollegeName(t *testing.T) {
	assert.NoError(t, CollegeName("College of Engineering"))
	assert.Error(t, CollegeName(""))
	assert.Error(t, CollegeName("ab"))
	assert.Error(t, CollegeName("Engineering 101"))
}

func TestIDNumber(t *testing.T) {
	assert.NoError(t, IDNumber("2021-0001"))
	assert.Error(t, IDNumber(""))
	assert.Error(t, IDNumber("20210001"))
	assert.Error(t, IDNumber("2021-001"))
	assert.Error(t, IDNumber("abcd-0001"))
}

func TestPersonName(t *testing.T) {
	assert.NoError(t, PersonName("Mary Jane", "first"))
	assert.NoError(t, PersonName("O'Neil-Smith", "last"))
	assert.Error(t, PersonName("", "first"))
	assert.Error(t, PersonName("J0hn", "first"))
}

func TestYearLevel(t *testing.T) {
	for _, yl := range []string{"1st", "2nd", "3rd", "4th", "4th+"} {
		assert.NoError(t, YearLevel(yl))
	}

	err := YearLevel("5th")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "'5th'")
	assert.Contains(t, err.Error(), "1st")
}

func TestGender(t *testing.T) {
	for _, g := range []string{"male", "female", "others", "prefer not to say"} {
		assert.NoError(t, Gender(g))
	}
	// Case-insensitive on input
	assert.NoError(t, Gender("Male"))

	err := Gender("unknown")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "'unknown'")
}

func TestUsername(t *testing.T) {
	assert.NoError(t, Username("admin"))
	assert.NoError(t, Username("user_1.name-x"))
	assert.Error(t, Username(""))
	assert.Error(t, Username("ab"))
	assert.Error(t, Username(strings.Repeat("a", 21)))
	assert.Error(t, Username("bad name"))
}

func TestEmail(t *testing.T) {
	assert.NoError(t, Email("admin@campushub.edu"))
	assert.Error(t, Email(""))
	assert.Error(t, Email("not-an-email"))
	assert.Error(t, Email("missing@tld"))
}

func TestPassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
		wantErr  string
	}{
		{"valid", "Sup3rSecret!x?&", ""},
		{"valid minimal", "Abcdef1!", ""},
		{"blank", "", "cannot be blank"},
		{"too short", "Ab1!xyz", "at least 8"},
		{"too long", "Ab1!" + strings.Repeat("x", 64), "must not exceed 64"},
		{"with space", "Abcdef1! x", "cannot contain spaces"},
		{"no uppercase", "abcdef1!", "uppercase"},
		{"no lowercase", "ABCDEF1!", "lowercase"},
		{"no digit", "Abcdefg!", "number"},
		{"no special", "Abcdefg1", "special"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Password(tt.password)
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}
