package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campushub/sis-backend/internal/app/models/dto"
	"github.com/campushub/sis-backend/internal/pkg/apperrors"
	"github.com/campushub/sis-backend/internal/pkg/querybuilder"
)

func handleError(t *testing.T, err error) (*httptest.ResponseRecorder, dto.ErrorResponse) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	recorder := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(recorder)
	c.Request = httptest.NewRequest("GET", "/api/v1/colleges", nil)

	HandleAPIError(c, err)

	var body dto.ErrorResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	return recorder, body
}

func TestHandleAPIErrorParamError(t *testing.T) {
	err := &querybuilder.ParamError{Param: "sortOrder", Value: "Sideways", Allowed: querybuilder.SortOrders}

	recorder, body := handleError(t, err)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.False(t, body.Success)
	require.NotNil(t, body.Error)
	assert.Equal(t, dto.ErrorCodeInvalidParameter, body.Error.Code)
	assert.Equal(t, "sortOrder", body.Error.Field)
	assert.Contains(t, body.Error.Message, "'Sideways'")
}

func TestHandleAPIErrorExclusiveFilters(t *testing.T) {
	recorder, body := handleError(t, querybuilder.ErrExclusiveFilters)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Equal(t, dto.ErrorCodeInvalidParameter, body.Error.Code)
}

func TestHandleAPIErrorStatusMapping(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		code   dto.ErrorCode
	}{
		{"validation", apperrors.NewValidationError("The college_code 'c' is not in the proper format."), http.StatusBadRequest, dto.ErrorCodeValidationFailed},
		{"invalid parameter", apperrors.NewInvalidParameterError("Invalid parameter."), http.StatusBadRequest, dto.ErrorCodeInvalidParameter},
		{"foreign key", apperrors.NewForeignKeyError("The college_code 'XYZ' does not exist."), http.StatusBadRequest, dto.ErrorCodeForeignKeyViolation},
		{"not found", apperrors.NewNotFoundError("College with code 'XYZ' not found."), http.StatusNotFound, dto.ErrorCodeResourceNotFound},
		{"conflict", apperrors.NewConflictError("College code already exists."), http.StatusConflict, dto.ErrorCodeResourceAlreadyExists},
		{"credentials", apperrors.ErrInvalidCredentials, http.StatusUnauthorized, dto.ErrorCodeInvalidCredentials},
		{"expired token", apperrors.ErrTokenExpired, http.StatusUnauthorized, dto.ErrorCodeExpiredToken},
		{"invalid token", apperrors.ErrTokenInvalid, http.StatusUnauthorized, dto.ErrorCodeInvalidToken},
		{"unknown", errors.New("connection reset"), http.StatusInternalServerError, dto.ErrorCodeInternalServer},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder, body := handleError(t, tt.err)

			assert.Equal(t, tt.status, recorder.Code)
			assert.False(t, body.Success)
			require.NotNil(t, body.Error)
			assert.Equal(t, tt.code, body.Error.Code)
		})
	}
}

func TestHandleAPIErrorCarriesCustomMessage(t *testing.T) {
	_, body := handleError(t, apperrors.NewNotFoundError("Student with ID number '2021-0001' not found."))
	assert.Equal(t, "Student with ID number '2021-0001' not found.", body.Error.Message)
}
