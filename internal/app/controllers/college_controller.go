package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campushub/sis-backend/internal/app/models/dto"
	"github.com/campushub/sis-backend/internal/app/services"
	"github.com/campushub/sis-backend/internal/middleware"
	"github.com/campushub/sis-backend/internal/pkg/helpers"
)

// CollegeController handles college-related endpoints
type CollegeController struct {
	collegeService *services.CollegeService
}

// NewCollegeController creates a new CollegeController
func NewCollegeController(collegeService *services.CollegeService) *CollegeController {
	return &CollegeController{
		collegeService: collegeService,
	}
}

// GetTotalCount returns the number of colleges matching the optional search.
func (c *CollegeController) GetTotalCount(ctx *gin.Context) {
	count, err := c.collegeService.Count(ctx, helpers.ParseSearchParams(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.TotalCountResponse{TotalCount: count})
}

// ListColleges returns one sorted page of colleges.
func (c *CollegeController) ListColleges(ctx *gin.Context) {
	params, err := helpers.ParseListParams(ctx, "College Code", "College Code")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	colleges, err := c.collegeService.List(ctx, params)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.EntitiesResponse{Entities: colleges})
}

// GetCollege returns a single college by code.
func (c *CollegeController) GetCollege(ctx *gin.Context) {
	college, err := c.collegeService.Get(ctx, ctx.Param("code"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, college)
}

// CreateCollege adds a new college.
func (c *CollegeController) CreateCollege(ctx *gin.Context) {
	var req dto.CollegeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid college data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	if err := c.collegeService.Create(ctx, req.EntityDetails); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.MessageResponse{Message: "College added successfully."})
}

// UpdateCollege rewrites the college identified by the code path parameter.
func (c *CollegeController) UpdateCollege(ctx *gin.Context) {
	var req dto.CollegeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid college data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	if err := c.collegeService.Update(ctx, ctx.Param("code"), req.EntityDetails); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "College updated successfully."})
}

// DeleteCollege removes the college identified by the code path parameter.
func (c *CollegeController) DeleteCollege(ctx *gin.Context) {
	if err := c.collegeService.Delete(ctx, ctx.Param("code")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "College deleted successfully."})
}

// GetIdentifiers returns every college code with its name.
func (c *CollegeController) GetIdentifiers(ctx *gin.Context) {
	identifiers, err := c.collegeService.Identifiers(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.EntitiesResponse{Entities: identifiers})
}
