package validation

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/campushub/sis-backend/internal/app/models"
	"github.com/campushub/sis-backend/internal/pkg/apperrors"
)

// Validation rule patterns
var (
	// Entity codes: trimmed, uppercased, letters and hyphens only
	CodePattern = `^[A-Z-]{2,}$`

	// Entity names: letters, hyphens and spaces
	EntityNamePattern = `^[A-Za-z- ]{3,}$`

	// Student ID numbers: NNNN-NNNN
	IDNumberPattern = `^\d{4}-\d{4}$`

	// Person names: letters, apostrophes, hyphens and whitespace
	PersonNamePattern = `^[A-Za-z\s'-]{1,}$`

	// Account identity
	UsernamePattern = `^[A-Za-z0-9_.-]{3,20}$`
	EmailPattern    = `^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`

	// Password length bounds
	PasswordMinLength = 8
	PasswordMaxLength = 64
)

// CompiledPatterns caches compiled regex patterns for better performance
var CompiledPatterns = struct {
	Code       *regexp.Regexp
	EntityName *regexp.Regexp
	IDNumber   *regexp.Regexp
	PersonName *regexp.Regexp
	Username   *regexp.Regexp
	Email      *regexp.Regexp
}{
	Code:       regexp.MustCompile(CodePattern),
	EntityName: regexp.MustCompile(EntityNamePattern),
	IDNumber:   regexp.MustCompile(IDNumberPattern),
	PersonName: regexp.MustCompile(PersonNamePattern),
	Username:   regexp.MustCompile(UsernamePattern),
	Email:      regexp.MustCompile(EmailPattern),
}

// validateCode applies the shared entity-code rules. kind names the field in
// error messages ("college_code" or "program_code").
func validateCode(code, kind string, optional bool) error {
	if code == "" {
		if optional {
			return nil
		}
		return apperrors.NewValidationError(fmt.Sprintf("A %s cannot be blank.", kind))
	}

	code = strings.ToUpper(strings.TrimSpace(code))
	if len(code) < 2 {
		return apperrors.NewValidationError(fmt.Sprintf("A %s must be at least 2 characters long.", kind))
	}
	if !CompiledPatterns.Code.MatchString(code) {
		return apperrors.NewValidationError(fmt.Sprintf("The %s '%s' is not in the proper format.", kind, code))
	}
	return nil
}

// CollegeCode validates a required college code.
func CollegeCode(code string) error {
	return validateCode(code, "college_code", false)
}

// OptionalCollegeCode validates a college code that may be blank.
func OptionalCollegeCode(code string) error {
	return validateCode(code, "college_code", true)
}

// ProgramCode validates a required program code.
func ProgramCode(code string) error {
	return validateCode(code, "program_code", false)
}

// OptionalProgramCode validates a program code that may be blank.
func OptionalProgramCode(code string) error {
	return validateCode(code, "program_code", true)
}

// validateEntityName applies the shared entity-name rules.
func validateEntityName(name, kind string) error {
	if name == "" {
		return apperrors.NewValidationError(fmt.Sprintf("%s cannot be blank.", kind))
	}

	name = strings.TrimSpace(name)
	if len(name) < 3 {
		return apperrors.NewValidationError(fmt.Sprintf("%s must be at least 3 characters long.", kind))
	}
	if !CompiledPatterns.EntityName.MatchString(name) {
		return apperrors.NewValidationError(fmt.Sprintf("The %s '%s' is not in the proper format.", strings.ToLower(strings.ReplaceAll(kind, " ", "_")), name))
	}
	return nil
}

// CollegeName validates a college name.
func CollegeName(name string) error {
	return validateEntityName(name, "College name")
}

// ProgramName validates a program name.
func ProgramName(name string) error {
	return validateEntityName(name, "Program name")
}

// IDNumber validates a student ID number.
func IDNumber(idNumber string) error {
	if idNumber == "" {
		return apperrors.NewValidationError("An ID number cannot be blank.")
	}
	if !CompiledPatterns.IDNumber.MatchString(strings.TrimSpace(idNumber)) {
		return apperrors.NewValidationError(fmt.Sprintf("The id_number '%s' is not in the proper format.", strings.TrimSpace(idNumber)))
	}
	return nil
}

// PersonName validates a first or last name. nameType names the field in
// error messages ("first" or "last").
func PersonName(name, nameType string) error {
	if name == "" {
		return apperrors.NewValidationError(fmt.Sprintf("%s name cannot be blank.", capitalize(nameType)))
	}
	if !CompiledPatterns.PersonName.MatchString(strings.TrimSpace(name)) {
		return apperrors.NewValidationError(fmt.Sprintf("The name '%s' is not in the proper format.", strings.TrimSpace(name)))
	}
	return nil
}

// YearLevel validates a student year level against the enum domain.
func YearLevel(yearLevel string) error {
	if yearLevel == "" {
		return apperrors.NewValidationError("Year level cannot be blank.")
	}

	yearLevel = strings.TrimSpace(yearLevel)
	for _, allowed := range models.YearLevels {
		if yearLevel == allowed {
			return nil
		}
	}
	return apperrors.NewValidationError(fmt.Sprintf(
		"Invalid 'year_level' value: '%s'. Must be one of: ['%s'].",
		yearLevel, strings.Join(models.YearLevels, "', '")))
}

// Gender validates a student gender against the enum domain. Comparison is
// case-insensitive; storage is lowercase.
func Gender(gender string) error {
	if gender == "" {
		return apperrors.NewValidationError("Gender cannot be blank.")
	}

	gender = strings.ToLower(strings.TrimSpace(gender))
	for _, allowed := range models.Genders {
		if gender == allowed {
			return nil
		}
	}
	return apperrors.NewValidationError(fmt.Sprintf(
		"Invalid 'gender' value: '%s'. Must be one of: ['%s'].",
		gender, strings.Join(models.Genders, "', '")))
}

// Username validates an account username.
func Username(username string) error {
	username = strings.TrimSpace(username)
	if username == "" {
		return apperrors.NewValidationError("Username cannot be blank.")
	}
	if len(username) < 3 {
		return apperrors.NewValidationError("Username must be at least 3 characters long.")
	}
	if len(username) > 20 {
		return apperrors.NewValidationError("Username must not exceed 20 characters.")
	}
	if !CompiledPatterns.Username.MatchString(username) {
		return apperrors.NewValidationError(fmt.Sprintf("The username '%s' is not in the proper format.", username))
	}
	return nil
}

// Email validates an account email address.
func Email(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return apperrors.NewValidationError("Email cannot be blank.")
	}
	if !CompiledPatterns.Email.MatchString(email) {
		return apperrors.NewValidationError(fmt.Sprintf("The email '%s' is not in the proper format.", email))
	}
	return nil
}

// Password validates the account password policy: 8-64 characters, at least
// one uppercase letter, lowercase letter, digit and special character, no
// spaces.
func Password(password string) error {
	password = strings.TrimSpace(password)
	if password == "" {
		return apperrors.NewValidationError("Password cannot be blank.")
	}
	if strings.Contains(password, " ") {
		return apperrors.NewValidationError("Password cannot contain spaces.")
	}
	if len(password) < PasswordMinLength {
		return apperrors.NewValidationError("Password must be at least 8 characters long.")
	}
	if len(password) > PasswordMaxLength {
		return apperrors.NewValidationError("Password must not exceed 64 characters.")
	}

	var hasUpper, hasLower, hasDigit, hasSpecial bool
	for _, r := range password {
		switch {
		case r >= 'A' && r <= 'Z':
			hasUpper = true
		case r >= 'a' && r <= 'z':
			hasLower = true
		case r >= '0' && r <= '9':
			hasDigit = true
		case strings.ContainsRune("@$!%*?&", r):
			hasSpecial = true
		}
	}
	switch {
	case !hasUpper:
		return apperrors.NewValidationError("Password must contain at least one uppercase letter.")
	case !hasLower:
		return apperrors.NewValidationError("Password must contain at least one lowercase letter.")
	case !hasDigit:
		return apperrors.NewValidationError("Password must contain at least one number.")
	case !hasSpecial:
		return apperrors.NewValidationError("Password must contain at least one special character (@$!%*?&).")
	}
	return nil
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
