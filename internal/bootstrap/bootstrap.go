package bootstrap

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/clubhub-app/clubhub-api/internal/app/controllers"
	appMigrations "github.com/clubhub-app/clubhub-api/internal/app/migrations"
	appRepos "github.com/clubhub-app/clubhub-api/internal/app/repositories"
	appRoutes "github.com/clubhub-app/clubhub-api/internal/app/routes"
	appServices "github.com/clubhub-app/clubhub-api/internal/app/services"
	"github.com/clubhub-app/clubhub-api/internal/config"
	"github.com/clubhub-app/clubhub-api/internal/db"
	pkgAuth "github.com/clubhub-app/clubhub-api/internal/pkg/auth"
	"github.com/clubhub-app/clubhub-api/internal/pkg/logger"
	"github.com/clubhub-app/clubhub-api/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	AuthService         appServices.AuthService
	ClubService         appServices.ClubService
	MembershipService   appServices.MembershipService
	AnnouncementService appServices.AnnouncementService
	EventService        appServices.EventService
	UserService         appServices.UserService
	MemberService       appServices.MemberService
	StatsService        appServices.StatsService

	AuthController         *appControllers.AuthController
	ClubController         *appControllers.ClubController
	MembershipController   *appControllers.MembershipController
	AnnouncementController *appControllers.AnnouncementController
	EventController        *appControllers.EventController
	UserController         *appControllers.UserController
	MemberController       *appControllers.MemberController
	StatsController        *appControllers.StatsController

	Repos    *appRepos.Repositories
	Verifier pkgAuth.CredentialVerifier
	Logger   zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr := log.Logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase establishes the database connection, runs migrations and
// seeds the default admin.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*pgxpool.Pool, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	dbPool := database.Pool

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := dbPool.Ping(ctx); err != nil {
		lgr.Error().Err(err).Msg("Failed to ping database")
		dbPool.Close()
		return nil, err
	}

	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(dbPool)

	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}
	if err := migrator.MigrateFromDirectory(migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}

	verifier, err := pkgAuth.NewVerifier(cfg.Auth.CredentialScheme)
	if err != nil {
		dbPool.Close()
		return nil, err
	}
	if err := seed.CreateDefaultAdmin(context.Background(), dbPool, cfg, verifier, lgr); err != nil {
		// Seeding is best-effort; a reachable database with no admin is
		// still a runnable service
		lgr.Error().Err(err).Msg("Failed to seed default admin, proceeding anyway...")
	}

	return dbPool, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(dbPool)

	verifier, err := pkgAuth.NewVerifier(cfg.Auth.CredentialScheme)
	if err != nil {
		return nil, err
	}
	deps.Verifier = verifier

	deps.AuthService = appServices.NewAuthService(
		deps.Repos.AdminUserRepository,
		deps.Repos.MemberRepository,
		deps.Repos.ClubRepository,
		deps.Repos.ClubMemberLinkRepository,
		deps.Verifier,
	)
	deps.ClubService = appServices.NewClubService(
		deps.Repos.ClubRepository,
		deps.Repos.ClubMemberLinkRepository,
		deps.Repos.AnnouncementRepository,
		deps.Repos.EventRepository,
	)
	deps.MembershipService = appServices.NewMembershipService(deps.Repos.MembershipRepository)
	deps.AnnouncementService = appServices.NewAnnouncementService(
		deps.Repos.AnnouncementRepository,
		deps.Repos.ClubRepository,
	)
	deps.EventService = appServices.NewEventService(deps.Repos.EventRepository, deps.Repos.ClubRepository)
	deps.UserService = appServices.NewUserService(deps.Repos.AdminUserRepository, deps.Verifier)
	deps.MemberService = appServices.NewMemberService(
		deps.Repos.MemberRepository,
		deps.Repos.ClubRepository,
		deps.Repos.ClubMemberLinkRepository,
	)
	deps.StatsService = appServices.NewStatsService(
		deps.Repos.ClubRepository,
		deps.Repos.MemberRepository,
		deps.Repos.EventRepository,
		deps.Repos.AdminUserRepository,
	)

	deps.AuthController = appControllers.NewAuthController(deps.AuthService)
	deps.ClubController = appControllers.NewClubController(deps.ClubService)
	deps.MembershipController = appControllers.NewMembershipController(deps.MembershipService)
	deps.AnnouncementController = appControllers.NewAnnouncementController(deps.AnnouncementService)
	deps.EventController = appControllers.NewEventController(deps.EventService)
	deps.UserController = appControllers.NewUserController(deps.UserService)
	deps.MemberController = appControllers.NewMemberController(deps.MemberService)
	deps.StatsController = appControllers.NewStatsController(deps.StatsService, dbPool)

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.New()
	router.Use(gin.Recovery())

	appRoutes.SetupRouter(router,
		deps.AuthController,
		deps.ClubController,
		deps.MembershipController,
		deps.AnnouncementController,
		deps.EventController,
		deps.UserController,
		deps.MemberController,
		deps.StatsController,
	)

	return router
}
