package services

import (
	"errors"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"github.com/campushub/sis-backend/internal/pkg/apperrors"
)

func uniqueViolation(constraint string) error {
	return &pgconn.PgError{Code: "23505", ConstraintName: constraint}
}

func fkViolation(constraint string) error {
	return &pgconn.PgError{Code: "23503", ConstraintName: constraint}
}

func TestTranslateConflictKnownConstraints(t *testing.T) {
	tests := []struct {
		constraint string
		message    string
	}{
		{"colleges_pkey", "College code already exists."},
		{"colleges_college_name_key", "College name already exists."},
		{"programs_pkey", "Program code already exists."},
		{"programs_program_name_key", "Program name already exists."},
		{"students_pkey", "ID number already exists."},
		{"students_first_name_last_name_key", "A student with this first and last name already exists."},
		{"users_username_key", "Username already exists."},
		{"users_email_key", "Email already exists."},
	}

	for _, tt := range tests {
		t.Run(tt.constraint, func(t *testing.T) {
			err := translateConflict(uniqueViolation(tt.constraint))
			assert.ErrorIs(t, err, apperrors.ErrConflict)
			assert.Contains(t, err.Error(), tt.message)
		})
	}
}

func TestTranslateConflictUnknownConstraint(t *testing.T) {
	err := translateConflict(uniqueViolation("something_else_key"))
	assert.ErrorIs(t, err, apperrors.ErrConflict)
	assert.Contains(t, err.Error(), "A record with these values already exists.")
}

func TestTranslateConflictPassThrough(t *testing.T) {
	original := errors.New("connection reset")
	assert.Equal(t, original, translateConflict(original))
}

func TestTranslateWriteErrorForeignKey(t *testing.T) {
	code := "XYZ"
	err := translateWriteError(fkViolation("programs_college_code_fkey"), "college_code", &code)
	assert.ErrorIs(t, err, apperrors.ErrForeignKeyViolation)
	assert.Contains(t, err.Error(), "The college_code 'XYZ' does not exist.")
}

func TestTranslateWriteErrorNil(t *testing.T) {
	assert.NoError(t, translateWriteError(nil, "college_code", nil))
}
