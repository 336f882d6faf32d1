package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campushub/sis-backend/internal/app/models/dto"
	"github.com/campushub/sis-backend/internal/app/services"
	"github.com/campushub/sis-backend/internal/middleware"
	"github.com/campushub/sis-backend/internal/pkg/helpers"
)

// ProgramController handles program-related endpoints
type ProgramController struct {
	programService *services.ProgramService
}

// NewProgramController creates a new ProgramController
func NewProgramController(programService *services.ProgramService) *ProgramController {
	return &ProgramController{
		programService: programService,
	}
}

// GetTotalCount returns the number of programs matching the optional search
// or the optional collegeCode scope.
func (c *ProgramController) GetTotalCount(ctx *gin.Context) {
	count, err := c.programService.Count(ctx, helpers.ParseSearchParams(ctx), ctx.Query("collegeCode"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.TotalCountResponse{TotalCount: count})
}

// ListPrograms returns one sorted page of programs.
func (c *ProgramController) ListPrograms(ctx *gin.Context) {
	params, err := helpers.ParseListParams(ctx, "Program Code", "Program Code")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	programs, err := c.programService.List(ctx, params, ctx.Query("collegeCode"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.EntitiesResponse{Entities: programs})
}

// GetProgram returns a single program by code.
func (c *ProgramController) GetProgram(ctx *gin.Context) {
	program, err := c.programService.Get(ctx, ctx.Param("code"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, program)
}

// CreateProgram adds a new program.
func (c *ProgramController) CreateProgram(ctx *gin.Context) {
	var req dto.ProgramRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid program data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	if err := c.programService.Create(ctx, req.EntityDetails); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.MessageResponse{Message: "Program added successfully."})
}

// UpdateProgram rewrites the program identified by the code path parameter.
func (c *ProgramController) UpdateProgram(ctx *gin.Context) {
	var req dto.ProgramRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid program data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	if err := c.programService.Update(ctx, ctx.Param("code"), req.EntityDetails); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Program updated successfully."})
}

// DeleteProgram removes the program identified by the code path parameter.
func (c *ProgramController) DeleteProgram(ctx *gin.Context) {
	if err := c.programService.Delete(ctx, ctx.Param("code")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Program deleted successfully."})
}

// GetIdentifiers returns every program code grouped by its parent college.
func (c *ProgramController) GetIdentifiers(ctx *gin.Context) {
	grouped, err := c.programService.GroupedCodes(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.EntitiesResponse{Entities: grouped})
}
