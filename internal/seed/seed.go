package seed

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	appModels "github.com/campusplacement/portal/internal/app/models"
	appRepos "github.com/campusplacement/portal/internal/app/repositories"
	"github.com/campusplacement/portal/internal/pkg/apperrors"
)

// CreateDefaultData creates the default placement office and admin user if
// they don't exist yet. Errors are collected rather than aborting startup.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	officeRepo := appRepos.NewOfficeRepository(dbPool)
	userRepo := appRepos.NewUserRepository(dbPool)

	lgr.Info().Msg("Checking/Creating default data (Placement office / admin user)...")
	var finalErr error

	// --- Default Placement Office --- //
	offices, err := officeRepo.GetAll(ctx)
	if err != nil {
		lgr.Error().Err(err).Msg("Error listing placement offices")
		finalErr = errors.Join(finalErr, err)
	} else if len(offices) == 0 {
		location := "Main Campus, Administration Block"
		contactEmail := "placement@campus.edu"
		office := &appModels.PlacementOffice{
			Name:         "Central Placement Cell",
			Location:     &location,
			ContactEmail: &contactEmail,
		}
		if _, err := officeRepo.Create(ctx, office); err != nil && !errors.Is(err, apperrors.ErrResourceAlreadyExists) {
			lgr.Error().Err(err).Msg("Error creating default placement office")
			finalErr = errors.Join(finalErr, err)
		} else {
			lgr.Info().Str("name", office.Name).Msg("Default placement office created")
		}
	}

	// --- Default Admin User --- //
	_, err = userRepo.GetByUsername(ctx, "admin")
	if err == nil {
		return finalErr
	}
	if !errors.Is(err, apperrors.ErrUserNotFound) {
		lgr.Error().Err(err).Msg("Error checking if admin user exists")
		return errors.Join(finalErr, err)
	}

	lgr.Info().Msg("Creating default admin user...")
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte("Admin123!"), bcrypt.DefaultCost)
	if err != nil {
		lgr.Error().Err(err).Msg("Error hashing admin password")
		return errors.Join(finalErr, err)
	}

	admin := &appModels.User{
		Username:     "admin",
		PasswordHash: string(hashedPassword),
		Role:         appModels.RoleAdmin,
	}
	if _, err := userRepo.Create(ctx, admin); err != nil && !errors.Is(err, apperrors.ErrUsernameExists) {
		lgr.Error().Err(err).Msg("Error creating default admin user")
		finalErr = errors.Join(finalErr, err)
	} else {
		lgr.Info().Str("username", admin.Username).Msg("Default admin user created")
	}

	return finalErr
}
