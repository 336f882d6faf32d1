package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campushub/sis-backend/internal/app/models/dto"
	"github.com/campushub/sis-backend/internal/app/services"
	"github.com/campushub/sis-backend/internal/middleware"
	"github.com/campushub/sis-backend/internal/pkg/apperrors"
)

// AuthController handles authentication endpoints
type AuthController struct {
	authService  *services.AuthService
	cookieName   string
	cookieSecure bool
}

// NewAuthController creates a new AuthController
func NewAuthController(authService *services.AuthService, cookieName string, cookieSecure bool) *AuthController {
	return &AuthController{
		authService:  authService,
		cookieName:   cookieName,
		cookieSecure: cookieSecure,
	}
}

// Signup registers a new administrative account.
func (c *AuthController) Signup(ctx *gin.Context) {
	var req dto.SignupRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid signup data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	if err := c.authService.Signup(ctx, req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.MessageResponse{Message: "User registered successfully."})
}

// Login verifies the credentials, sets the HTTP-only access token cookie and
// echoes the token in the body for header-based clients.
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid login data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	response, expiresIn, err := c.authService.Login(ctx, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.SetCookie(c.cookieName, response.AccessToken, expiresIn, "/", "", c.cookieSecure, true)
	ctx.JSON(http.StatusOK, response)
}

// Logout clears the access token cookie.
func (c *AuthController) Logout(ctx *gin.Context) {
	ctx.SetCookie(c.cookieName, "", -1, "/", "", c.cookieSecure, true)
	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Logged out successfully."})
}

// Me returns the authenticated user's profile.
func (c *AuthController) Me(ctx *gin.Context) {
	userID, exists := ctx.Get("userID")
	if !exists {
		middleware.HandleAPIError(ctx, apperrors.ErrTokenNotFound)
		return
	}

	user, err := c.authService.CurrentUser(ctx, userID.(string))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, user)
}
