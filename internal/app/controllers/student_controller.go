package controllers

import (
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campushub/sis-backend/internal/app/models/dto"
	"github.com/campushub/sis-backend/internal/app/services"
	"github.com/campushub/sis-backend/internal/middleware"
	"github.com/campushub/sis-backend/internal/pkg/helpers"
)

// StudentController handles student-related endpoints
type StudentController struct {
	studentService *services.StudentService
}

// NewStudentController creates a new StudentController
func NewStudentController(studentService *services.StudentService) *StudentController {
	return &StudentController{
		studentService: studentService,
	}
}

// avatarFile returns the optional uploaded avatar. A request without one is
// not an error.
func avatarFile(ctx *gin.Context) *multipart.FileHeader {
	file, err := ctx.FormFile("avatar")
	if err != nil {
		return nil
	}
	return file
}

// GetTotalCount returns the number of students matching the optional search,
// programCode scope or collegeCode scope.
func (c *StudentController) GetTotalCount(ctx *gin.Context) {
	count, err := c.studentService.Count(ctx, helpers.ParseSearchParams(ctx),
		ctx.Query("programCode"), ctx.Query("collegeCode"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.TotalCountResponse{TotalCount: count})
}

// ListStudents returns one sorted page of students.
func (c *StudentController) ListStudents(ctx *gin.Context) {
	params, err := helpers.ParseListParams(ctx, "ID Number", "ID Number")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	students, err := c.studentService.List(ctx, params,
		ctx.Query("programCode"), ctx.Query("collegeCode"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.EntitiesResponse{Entities: students})
}

// GetStudent returns a single student by ID number.
func (c *StudentController) GetStudent(ctx *gin.Context) {
	student, err := c.studentService.Get(ctx, ctx.Param("idNumber"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, student)
}

// CreateStudent adds a new student. The payload arrives as multipart form
// fields so an avatar image can be uploaded in the same request.
func (c *StudentController) CreateStudent(ctx *gin.Context) {
	var details dto.StudentDetails
	if err := ctx.ShouldBind(&details); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid student data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	if err := c.studentService.Create(ctx, details, avatarFile(ctx)); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.MessageResponse{Message: "Student added successfully."})
}

// UpdateStudent rewrites the student identified by the idNumber path
// parameter. A supplied avatar replaces the stored one.
func (c *StudentController) UpdateStudent(ctx *gin.Context) {
	var details dto.StudentDetails
	if err := ctx.ShouldBind(&details); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid student data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	if err := c.studentService.Update(ctx, ctx.Param("idNumber"), details, avatarFile(ctx)); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Student updated successfully."})
}

// DeleteStudent removes the student identified by the idNumber path
// parameter.
func (c *StudentController) DeleteStudent(ctx *gin.Context) {
	if err := c.studentService.Delete(ctx, ctx.Param("idNumber")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Student deleted successfully."})
}

// GetYearLevelDemographics returns the count of students per year level.
func (c *StudentController) GetYearLevelDemographics(ctx *gin.Context) {
	demographics, err := c.studentService.YearLevelDemographics(ctx,
		ctx.Query("programCode"), ctx.Query("collegeCode"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.EntitiesResponse{Entities: demographics})
}

// GetGenderDemographics returns the count of students per gender.
func (c *StudentController) GetGenderDemographics(ctx *gin.Context) {
	demographics, err := c.studentService.GenderDemographics(ctx,
		ctx.Query("programCode"), ctx.Query("collegeCode"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.EntitiesResponse{Entities: demographics})
}
