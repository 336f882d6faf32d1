package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/campushub/sis-backend/internal/app/models"
	"github.com/campushub/sis-backend/internal/app/models/dto"
	"github.com/campushub/sis-backend/internal/app/repositories"
	"github.com/campushub/sis-backend/internal/pkg/apperrors"
	"github.com/campushub/sis-backend/internal/pkg/auth"
	"github.com/campushub/sis-backend/internal/pkg/logger"
	"github.com/campushub/sis-backend/internal/pkg/validation"
)

// AuthService handles authentication and account registration
type AuthService struct {
	userRepo   *repositories.UserRepository
	jwtService *auth.JWTService
}

// NewAuthService creates a new auth service instance
func NewAuthService(userRepo *repositories.UserRepository, jwtService *auth.JWTService) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		jwtService: jwtService,
	}
}

// Signup registers a new administrative account.
func (s *AuthService) Signup(ctx context.Context, req dto.SignupRequest) error {
	username := strings.TrimSpace(req.Username)
	email := strings.ToLower(strings.TrimSpace(req.Email))

	if err := validation.Username(username); err != nil {
		return err
	}
	if err := validation.Email(email); err != nil {
		return err
	}
	if err := validation.Password(req.Password); err != nil {
		return err
	}

	// Uniqueness is ultimately enforced by the database; these checks just
	// produce friendlier errors for the common case.
	if exists, err := s.userRepo.ExistsByUsername(ctx, username); err != nil {
		return err
	} else if exists {
		return apperrors.NewConflictError("Username already exists.")
	}
	if exists, err := s.userRepo.ExistsByEmail(ctx, email); err != nil {
		return err
	} else if exists {
		return apperrors.NewConflictError("Email already exists.")
	}

	passwordHash, err := auth.HashPassword(strings.TrimSpace(req.Password))
	if err != nil {
		return fmt.Errorf("error hashing password: %w", err)
	}

	user := models.User{
		UserID:       uuid.New().String(),
		Username:     username,
		Email:        email,
		PasswordHash: passwordHash,
	}
	if err := s.userRepo.Create(ctx, &user); err != nil {
		return translateConflict(err)
	}

	logger.Info().Str("username", username).Msg("User account registered")
	return nil
}

// Login verifies the credentials and returns a signed access token. A wrong
// email and a wrong password produce the same error.
func (s *AuthService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, int, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, 0, err
	}
	if user == nil || !auth.CheckPassword(user.PasswordHash, req.Password) {
		return nil, 0, apperrors.ErrInvalidCredentials
	}

	token, expiresIn, err := s.jwtService.GenerateToken(user)
	if err != nil {
		return nil, 0, err
	}

	logger.Info().Str("username", user.Username).Msg("User logged in")
	return &dto.LoginResponse{
		AccessToken: token,
		Username:    user.Username,
	}, expiresIn, nil
}

// CurrentUser resolves the authenticated user's profile by ID.
func (s *AuthService) CurrentUser(ctx context.Context, userID string) (*dto.UserResponse, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperrors.ErrUserNotFound
	}

	return &dto.UserResponse{
		UserID:   user.UserID,
		Username: user.Username,
		Email:    user.Email,
	}, nil
}
