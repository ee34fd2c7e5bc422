package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/campusplacement/portal/internal/app/controllers"
	appMigrations "github.com/campusplacement/portal/internal/app/migrations"
	appRepos "github.com/campusplacement/portal/internal/app/repositories"
	appRoutes "github.com/campusplacement/portal/internal/app/routes"
	appServices "github.com/campusplacement/portal/internal/app/services"
	"github.com/campusplacement/portal/internal/config"
	"github.com/campusplacement/portal/internal/db"
	appMiddleware "github.com/campusplacement/portal/internal/middleware"
	pkgAuth "github.com/campusplacement/portal/internal/pkg/auth"
	"github.com/campusplacement/portal/internal/pkg/filestorage"
	"github.com/campusplacement/portal/internal/pkg/helpers"
	"github.com/campusplacement/portal/internal/pkg/logger"
	"github.com/campusplacement/portal/internal/pkg/websocket"
	"github.com/campusplacement/portal/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	Services       *appServices.Services
	Controllers    appRoutes.Controllers
	AuthMiddleware *appMiddleware.AuthMiddleware
	Repos          *appRepos.Repositories
	JWTService     *pkgAuth.JWTService
	FileStorage    *filestorage.LocalStorage
	Hub            *websocket.Hub
	Logger         zerolog.Logger
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

// SetupDatabase establishes the database connection, runs migrations, and
// seeds default data.
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
	lgr.Info().Msg("Database connection successfully established.")

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

	lgr.Info().Msg("Database migrations successfully applied.")

	if err := seed.CreateDefaultData(context.Background(), dbPool, lgr); err != nil {
		// Seeding problems are logged but do not abort startup.
		lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
	}

	return dbPool, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(dbPool)

	// File storage serves saved resumes under the static /uploads route.
	var err error
	baseURL := "http://localhost:" + cfg.Server.Port
	fileStorageBaseURL := baseURL + "/uploads"
	deps.FileStorage, err = filestorage.NewLocalStorage(cfg.Server.StoragePath, fileStorageBaseURL)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to initialize file storage")
		return nil, fmt.Errorf("failed to initialize file storage: %w", err)
	}

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:       cfg.JWT.Secret,
		AccessTokenExp:  helpers.ParseDuration(cfg.JWT.AccessTokenExpiration, 1*time.Hour),
		RefreshTokenExp: helpers.ParseDuration(cfg.JWT.RefreshTokenExpiration, 720*time.Hour),
		TokenIssuer:     cfg.JWT.Issuer,
	})

	// Websocket hub broadcasting new announcements to connected clients.
	deps.Hub = websocket.NewHub(lgr)
	go deps.Hub.Run()

	deps.Services = appServices.NewServices(deps.Repos, deps.JWTService, deps.FileStorage, deps.Hub, lgr)

	// Hourly sweep of expired refresh tokens.
	go deps.Services.AuthService.RunTokenSweeper(context.Background(), time.Hour)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService)

	deps.Controllers = appRoutes.Controllers{
		Auth:         appControllers.NewAuthController(deps.Services.AuthService),
		Student:      appControllers.NewStudentController(deps.Services.StudentService),
		Profile:      appControllers.NewProfileController(deps.Services.StudentService, deps.Services.ApplicationService, deps.Services.InterviewService),
		Opportunity:  appControllers.NewOpportunityController(deps.Services.OpportunityService, deps.Services.StudentService),
		Application:  appControllers.NewApplicationController(deps.Services.ApplicationService),
		Interview:    appControllers.NewInterviewController(deps.Services.InterviewService),
		Assessment:   appControllers.NewAssessmentController(deps.Services.AssessmentService),
		Announcement: appControllers.NewAnnouncementController(deps.Services.AnnouncementService),
		Office:       appControllers.NewOfficeController(deps.Services.OfficeService),
		User:         appControllers.NewUserController(deps.Services.UserService),
		Report:       appControllers.NewReportController(deps.Services.ReportService),
	}

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.Default()

	appRoutes.SetupSwagger(router)

	appRoutes.SetupRouter(router, deps.Controllers, deps.AuthMiddleware, deps.Hub, lgr)

	// Test endpoint
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong", "status": "success"})
	})

	return router
}
