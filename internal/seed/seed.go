package seed

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	appModels "github.com/campushub/sis-backend/internal/app/models"
	appRepos "github.com/campushub/sis-backend/internal/app/repositories"
	"github.com/campushub/sis-backend/internal/pkg/auth"
	"github.com/campushub/sis-backend/internal/pkg/dberrors"
)

// CreateDefaultData creates a couple of starter colleges and programs plus
// the default admin account if they don't exist yet. Duplicate errors are
// expected on every start after the first and are ignored.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	collegeRepo := appRepos.NewCollegeRepository(dbPool)
	programRepo := appRepos.NewProgramRepository(dbPool)
	userRepo := appRepos.NewUserRepository(dbPool)

	lgr.Info().Msg("Checking/Creating default data (Colleges/Programs)...")
	var finalErr error

	colleges := []appModels.College{
		{CollegeCode: "COE", CollegeName: "College of Engineering"},
		{CollegeCode: "CAS", CollegeName: "College of Arts and Sciences"},
	}
	for i := range colleges {
		if err := collegeRepo.Create(ctx, &colleges[i]); err != nil {
			if _, ok := dberrors.UniqueViolation(err); !ok {
				lgr.Error().Err(err).Str("collegeCode", colleges[i].CollegeCode).Msg("Error creating default college")
				finalErr = errors.Join(finalErr, err)
			}
		}
	}

	coe := "COE"
	cas := "CAS"
	programs := []appModels.Program{
		{ProgramCode: "BSCS", ProgramName: "Bachelor of Science in Computer Science", CollegeCode: &coe},
		{ProgramCode: "BSCE", ProgramName: "Bachelor of Science in Civil Engineering", CollegeCode: &coe},
		{ProgramCode: "BAEL", ProgramName: "Bachelor of Arts in English Language", CollegeCode: &cas},
	}
	for i := range programs {
		if err := programRepo.Create(ctx, &programs[i]); err != nil {
			if _, ok := dberrors.UniqueViolation(err); !ok {
				lgr.Error().Err(err).Str("programCode", programs[i].ProgramCode).Msg("Error creating default program")
				finalErr = errors.Join(finalErr, err)
			}
		}
	}

	// --- Create Default Admin User --- //
	exists, err := userRepo.ExistsByEmail(ctx, "admin@campushub.edu")
	if err != nil {
		lgr.Error().Err(err).Msg("Error checking if admin user exists")
		return errors.Join(finalErr, err)
	}
	if exists {
		lgr.Info().Msg("Admin user already exists, skipping creation")
		return finalErr
	}

	lgr.Info().Msg("Creating default admin user...")
	passwordHash, err := auth.HashPassword("Admin123!")
	if err != nil {
		lgr.Error().Err(err).Msg("Error hashing admin password")
		return errors.Join(finalErr, err)
	}

	admin := &appModels.User{
		UserID:       uuid.New().String(),
		Username:     "admin",
		Email:        "admin@campushub.edu",
		PasswordHash: passwordHash,
	}
	if err := userRepo.Create(ctx, admin); err != nil {
		lgr.Error().Err(err).Msg("Error creating admin user")
		return errors.Join(finalErr, err)
	}
	lgr.Info().Str("userID", admin.UserID).Msg("Default admin user created successfully")

	return finalErr
}
