package services

import (
	"fmt"

	"github.com/campushub/sis-backend/internal/app/repositories"
	"github.com/campushub/sis-backend/internal/pkg/apperrors"
	"github.com/campushub/sis-backend/internal/pkg/auth"
	"github.com/campushub/sis-backend/internal/pkg/dberrors"
	"github.com/campushub/sis-backend/internal/pkg/filestorage"
)

// Services holds all the service instances
type Services struct {
	CollegeService *CollegeService
	ProgramService *ProgramService
	StudentService *StudentService
	AuthService    *AuthService
}

// NewServices initializes all services
func NewServices(repos *repositories.Repositories, jwtService *auth.JWTService, storage filestorage.FileStorage) *Services {
	return &Services{
		CollegeService: NewCollegeService(repos.CollegeRepository),
		ProgramService: NewProgramService(repos.ProgramRepository),
		StudentService: NewStudentService(repos.StudentRepository, repos.ProgramRepository, repos.CollegeRepository, storage),
		AuthService:    NewAuthService(repos.UserRepository, jwtService),
	}
}

// uniqueConstraintMessages maps each named unique or primary-key constraint
// to its field-level conflict message.
var uniqueConstraintMessages = map[string]string{
	"colleges_pkey":                     "College code already exists.",
	"colleges_college_name_key":         "College name already exists.",
	"programs_pkey":                     "Program code already exists.",
	"programs_program_name_key":         "Program name already exists.",
	"students_pkey":                     "ID number already exists.",
	"students_first_name_last_name_key": "A student with this first and last name already exists.",
	"users_pkey":                        "User ID already exists.",
	"users_username_key":                "Username already exists.",
	"users_email_key":                   "Email already exists.",
}

// translateConflict converts a unique-violation database error into a
// field-specific conflict error. Other errors pass through unchanged.
func translateConflict(err error) error {
	constraint, ok := dberrors.UniqueViolation(err)
	if !ok {
		return err
	}
	message, known := uniqueConstraintMessages[constraint]
	if !known {
		message = "A record with these values already exists."
	}
	return apperrors.NewConflictError(message)
}

// translateWriteError converts constraint-violation database errors into
// caller-facing errors. fkField and fkValue name the referenced parent value
// reported when a foreign-key check fails.
func translateWriteError(err error, fkField string, fkValue *string) error {
	if err == nil {
		return nil
	}
	if _, ok := dberrors.ForeignKeyViolation(err); ok && fkValue != nil {
		return apperrors.NewForeignKeyError(fmt.Sprintf("The %s '%s' does not exist.", fkField, *fkValue))
	}
	return translateConflict(err)
}
