package bootstrap

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/asthait/studentms/internal/app/controllers"
	"github.com/asthait/studentms/internal/app/repositories"
	"github.com/asthait/studentms/internal/app/routes"
	"github.com/asthait/studentms/internal/app/services"
	"github.com/asthait/studentms/internal/config"
	"github.com/asthait/studentms/internal/db"
	"github.com/asthait/studentms/internal/middleware"
	"github.com/asthait/studentms/internal/pkg/auth"
	"github.com/asthait/studentms/internal/pkg/helpers"
	"github.com/asthait/studentms/internal/pkg/logger"
)

const defaultTokenExpiration = 24 * time.Hour

// Dependencies holds the wired application components
type Dependencies struct {
	Config         *config.Config
	JWTService     *auth.JWTService
	Repositories   *repositories.Repositories
	AuthService    services.AuthService
	StudentService services.StudentService
	TeacherService services.TeacherService
	Controllers    routes.Controllers
	AuthMiddleware *middleware.AuthMiddleware
}

// LoadConfigAndSetupLogger loads configuration and configures the global logger
func LoadConfigAndSetupLogger(configPath string) (*config.Config, error) {
	// Missing .env is fine; the environment may already be populated
	_ = godotenv.Load()

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger.Configure(logger.Config{
		Level:  logger.LogLevel(cfg.Logging.Level),
		Pretty: strings.EqualFold(cfg.Logging.Format, "console"),
	})

	logger.Info().
		Str("port", cfg.Server.Port).
		Str("mode", cfg.Server.Mode).
		Msg("Configuration loaded")

	return cfg, nil
}

// SetupDatabase connects to MongoDB and ensures the unique indexes exist
func SetupDatabase(ctx context.Context, cfg *config.Config) (*db.MongoDB, error) {
	mongodb, err := db.NewMongoDB(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := mongodb.EnsureIndexes(ctx); err != nil {
		return nil, fmt.Errorf("failed to ensure indexes: %w", err)
	}

	logger.Info().Str("database", cfg.Database.Name).Msg("Connected to MongoDB")
	return mongodb, nil
}

// BuildDependencies constructs the service graph on top of the database
func BuildDependencies(cfg *config.Config, mongodb *db.MongoDB) *Dependencies {
	repos := repositories.NewRepositories(mongodb.Database)

	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey: cfg.JWT.Secret,
		TokenExp:  helpers.ParseDuration(cfg.JWT.TokenExpiration, defaultTokenExpiration),
	})

	authService := services.NewAuthService(cfg.Auth.Username, cfg.Auth.Password, jwtService)
	studentService := services.NewStudentService(repos.Student)
	teacherService := services.NewTeacherService(repos.Teacher)

	return &Dependencies{
		Config:         cfg,
		JWTService:     jwtService,
		Repositories:   repos,
		AuthService:    authService,
		StudentService: studentService,
		TeacherService: teacherService,
		Controllers: routes.Controllers{
			Auth:    controllers.NewAuthController(authService),
			Student: controllers.NewStudentController(studentService),
			Teacher: controllers.NewTeacherController(teacherService),
		},
		AuthMiddleware: middleware.NewAuthMiddleware(jwtService),
	}
}

// SetupRouter configures gin and registers all routes
func SetupRouter(deps *Dependencies) *gin.Engine {
	if deps.Config.Server.Mode == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Reject request bodies carrying fields outside the schema
	gin.EnableJsonDecoderDisallowUnknownFields()

	router := gin.Default()
	routes.SetupRoutes(router, deps.Controllers, deps.AuthMiddleware)
	return router
}
