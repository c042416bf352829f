package bootstrap

import (
	"context"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "campusblog/internal/app/controllers"
	appRepos "campusblog/internal/app/repositories"
	appRoutes "campusblog/internal/app/routes"
	appServices "campusblog/internal/app/services"
	"campusblog/internal/config"
	"campusblog/internal/db"
	appMiddleware "campusblog/internal/middleware"
	"campusblog/internal/pkg/logger"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	ArticleService    appServices.ArticleService
	UserService       appServices.UserService
	CourseService     appServices.CourseService
	ProfileService    appServices.ProfileService
	ReviewService     appServices.ReviewService
	EnrollmentService appServices.EnrollmentService

	ArticleController *appControllers.ArticleController
	UserController    *appControllers.UserController
	ProfileController *appControllers.ProfileController
	CourseController  *appControllers.CourseController
	ReviewController  *appControllers.ReviewController
	HealthController  *appControllers.HealthController

	Repos  *appRepos.Repositories
	Logger zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	// A missing .env file is fine; real deployments set the environment directly.
	if err := godotenv.Load(); err != nil {
		logger.Debug().Msg("No .env file found")
	}

	configPath := "configs/config.yaml"
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

// SetupDatabase establishes the MongoDB connection.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*db.MongoDB, error) {
	lgr.Info().Str("database", cfg.Database.Name).Msg("Establishing database connection...")
	database, err := db.NewMongoDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := database.Ping(ctx); err != nil {
		lgr.Error().Err(err).Msg("Failed to ping database")
		_ = database.Close(context.Background())
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")

	return database, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(database *db.MongoDB, lgr zerolog.Logger) *Dependencies {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(database.Database)

	deps.ArticleService = appServices.NewArticleService(deps.Repos.Article)
	deps.UserService = appServices.NewUserService(deps.Repos.User, deps.Repos.Course)
	deps.CourseService = appServices.NewCourseService(deps.Repos.Course)
	deps.ProfileService = appServices.NewProfileService(deps.Repos.Profile, deps.Repos.User)
	deps.ReviewService = appServices.NewReviewService(deps.Repos.Review, deps.Repos.Course)
	deps.EnrollmentService = appServices.NewEnrollmentService(deps.Repos.Course, deps.Repos.User)

	deps.ArticleController = appControllers.NewArticleController(deps.ArticleService)
	deps.UserController = appControllers.NewUserController(deps.UserService)
	deps.ProfileController = appControllers.NewProfileController(deps.ProfileService)
	deps.CourseController = appControllers.NewCourseController(deps.CourseService, deps.EnrollmentService)
	deps.ReviewController = appControllers.NewReviewController(deps.ReviewService)
	deps.HealthController = appControllers.NewHealthController(database)

	return deps
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
	router.Use(appMiddleware.RequestLogger())
	router.Use(appMiddleware.Metrics())

	// Prometheus exposition
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	appRoutes.SetupRouter(router,
		deps.ArticleController,
		deps.UserController,
		deps.ProfileController,
		deps.CourseController,
		deps.ReviewController,
		deps.HealthController,
	)

	return router
}
