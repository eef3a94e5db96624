package seed

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	appModels "github.com/clubhub-app/clubhub-api/internal/app/models"
	appRepos "github.com/clubhub-app/clubhub-api/internal/app/repositories"
	"github.com/clubhub-app/clubhub-api/internal/config"
	"github.com/clubhub-app/clubhub-api/internal/pkg/auth"
)

// CreateDefaultAdmin inserts the configured admin account if none exists with
// the configured email. Admin accounts have no registration route; seeding is
// the only way one comes into being.
func CreateDefaultAdmin(ctx context.Context, dbPool *pgxpool.Pool, cfg *config.Config, verifier auth.CredentialVerifier, lgr zerolog.Logger) error {
	adminRepo := appRepos.NewAdminUserRepository(dbPool)

	existing, err := adminRepo.FindByEmail(ctx, cfg.Auth.SeedAdminEmail)
	if err != nil {
		return err
	}
	if existing != nil {
		lgr.Debug().Str("email", cfg.Auth.SeedAdminEmail).Msg("Default admin already present")
		return nil
	}

	hashed, err := verifier.Hash(cfg.Auth.SeedAdminPass)
	if err != nil {
		return err
	}

	id, err := adminRepo.Create(ctx, &appModels.AdminUser{
		Email:    cfg.Auth.SeedAdminEmail,
		Password: hashed,
		Role:     "Admin",
	})
	if err != nil {
		return err
	}

	lgr.Info().Int64("userID", id).Str("email", cfg.Auth.SeedAdminEmail).Msg("Default admin created")
	return nil
}
