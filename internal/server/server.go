package server

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	_ "github.com/h2grid/h2grid-api/docs"
	"github.com/h2grid/h2grid-api/internal/charts/render"
	authclient "github.com/h2grid/h2grid-api/internal/client/auth"
	awsclient "github.com/h2grid/h2grid-api/internal/client/aws"
	"github.com/h2grid/h2grid-api/internal/db"
	"github.com/h2grid/h2grid-api/internal/handlers"
	"github.com/h2grid/h2grid-api/internal/helpers"
	"github.com/h2grid/h2grid-api/internal/interfaces"
	"github.com/h2grid/h2grid-api/internal/logger"
	"github.com/h2grid/h2grid-api/internal/middleware"
	"github.com/h2grid/h2grid-api/internal/services"
	"github.com/hashicorp/go-multierror"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

// Handler Definitions
var (
	healthHandler    *handlers.HealthHandler
	authHandler      *handlers.AuthHandler
	projectHandler   *handlers.ProjectHandler
	dashboardHandler *handlers.DashboardHandler

	tokenVerifier    *middleware.TokenVerifier
	dashboardService *services.DashboardService
	snapshotListener *services.SnapshotListener

	// Database
	dbPool *pgxpool.Pool
)

// Dependencies are the services the routes are served by
type Dependencies struct {
	Dashboard interfaces.DashboardService
	Auth      interfaces.AuthService
	// Verifier may be nil, in which case protected routes only require a
	// bearer token to be present
	Verifier *middleware.TokenVerifier
	Logger   *zap.Logger
}

// SetDependencies builds the handlers from already constructed services
func SetDependencies(deps Dependencies) {
	handlerFactory := handlers.NewHandlerFactory(handlers.HandlerFactoryConfig{
		DashboardService: deps.Dashboard,
		AuthService:      deps.Auth,
		Logger:           deps.Logger,
	})

	healthHandler = handlerFactory.NewHealthHandler()
	authHandler = handlerFactory.NewAuthHandler()
	projectHandler = handlerFactory.NewProjectHandler()
	dashboardHandler = handlerFactory.NewDashboardHandler()
	tokenVerifier = deps.Verifier
}

func InitializeHandlers() {
	// Load environment variables from .env file for local development
	err := godotenv.Load()
	if err != nil && !os.IsNotExist(err) {
		log.Printf("Warning: Error loading .env file: %v", err) // Use basic log before logger init
	}

	// --- Determine and Validate Stage ---
	stage := os.Getenv("STAGE")
	if stage == "" {
		stage = helpers.StageLocal
		log.Printf("Warning: STAGE environment variable not set, defaulting to '%s'", stage)
	}
	if !helpers.IsValidStage(stage) {
		log.Fatalf("Invalid STAGE environment variable: '%s'. Must be one of: %s, %s, %s",
			stage, helpers.StageProd, helpers.StageDev, helpers.StageLocal)
	}

	logger.InitLogger(stage)
	logger.Info("Initializing handlers for stage", zap.String("stage", stage))

	ctx := context.Background()

	// --- AWS ---
	awsCfg, err := awsclient.LoadConfig(ctx)
	if err != nil {
		logger.Fatal("Failed to load AWS configuration", zap.Error(err))
	}
	secretsClient := awsclient.NewSecretsManagerClient(awsCfg)

	// --- Snapshot store ---
	dsn, err := db.ResolveDSN(ctx, stage, secretsClient)
	if err != nil {
		logger.Fatal("Failed to resolve database connection string", zap.Error(err))
	}

	var store db.SnapshotStore
	if dsn == "" {
		logger.Warn("DATABASE_URL not set, snapshots are kept in memory")
		store = db.NewMemoryStore()
	} else {
		dbPool, err = db.Connect(ctx, dsn)
		if err != nil {
			logger.Fatal("Unable to connect to database", zap.Error(err))
		}
		pgStore := db.NewPostgresStore(dbPool)
		if err := pgStore.EnsureSchema(ctx); err != nil {
			logger.Fatal("Unable to create snapshot table", zap.Error(err))
		}
		store = pgStore
	}

	// --- Chart rendering ---
	format, err := render.ParseFormat(helpers.GetEnvWithDefault("CHART_FORMAT", string(render.FormatPNG)))
	if err != nil {
		logger.Fatal("Invalid CHART_FORMAT", zap.Error(err))
	}
	width := helpers.GetEnvInt("CHART_WIDTH", render.DefaultWidth)
	height := helpers.GetEnvInt("CHART_HEIGHT", render.DefaultHeight)
	factory := render.NewFactory(
		render.WithFormat(format),
		render.WithSize(width, height),
		render.WithFactoryLogger(logger.Log),
	)

	dashboardService = services.NewDashboardService(services.DashboardServiceConfig{
		Store:           store,
		Factory:         factory,
		SessionTTL:      helpers.GetEnvDuration("DASHBOARD_SESSION_TTL", services.DefaultSessionTTL),
		JanitorInterval: helpers.GetEnvDuration("DASHBOARD_JANITOR_INTERVAL", services.DefaultJanitorInterval),
		CanvasWidth:     width,
		CanvasHeight:    height,
		Logger:          logger.Log,
	})
	dashboardService.Start()

	// --- Auth ---
	authAPIURL := os.Getenv("AUTH_API_URL")
	if authAPIURL == "" {
		logger.Fatal("AUTH_API_URL environment variable is required")
	}
	authAPI := authclient.NewClient(authAPIURL)

	var emailSender interfaces.EmailSender
	if resendAPIKey, err := secretsClient.GetSecretString(ctx, "RESEND_API_KEY_ARN", "RESEND_API_KEY"); err == nil {
		emailSender = services.NewEmailService(
			resendAPIKey,
			helpers.GetEnvWithDefault("EMAIL_FROM_ADDRESS", "noreply@h2grid.in"),
			helpers.GetEnvWithDefault("EMAIL_FROM_NAME", "H2Grid"),
			logger.Log,
		)
	} else {
		logger.Info("RESEND_API_KEY not configured, welcome emails are disabled")
	}

	authService := services.NewAuthService(authAPI, emailSender, logger.Log)

	verifier, err := newTokenVerifier(ctx, secretsClient)
	if err != nil {
		logger.Fatal("Failed to initialize session token verifier", zap.Error(err))
	}
	if verifier == nil {
		logger.Warn("Neither AUTH_JWKS_URL nor AUTH_JWT_SECRET is set, bearer tokens are not verified")
	}

	SetDependencies(Dependencies{
		Dashboard: dashboardService,
		Auth:      authService,
		Verifier:  verifier,
		Logger:    logger.Log,
	})

	// --- Snapshot notifications ---
	if queueURL := os.Getenv("SNAPSHOT_QUEUE_URL"); queueURL != "" {
		snapshotListener = services.NewSnapshotListener(
			awsclient.NewSQSClient(awsCfg, queueURL),
			dashboardService,
			logger.Log,
		)
		snapshotListener.Start()
		logger.Info("Snapshot listener started", zap.String("queue_url", queueURL))
	}
}

// newTokenVerifier prefers a JWKS endpoint over a shared secret. It returns
// nil when neither is configured.
func newTokenVerifier(ctx context.Context, secrets *awsclient.SecretsManagerClient) (*middleware.TokenVerifier, error) {
	opts := middleware.VerifierOptions{
		Issuer:   os.Getenv("AUTH_ISSUER"),
		Audience: os.Getenv("AUTH_AUDIENCE"),
	}

	if jwksURL := os.Getenv("AUTH_JWKS_URL"); jwksURL != "" {
		return middleware.NewJWKSVerifier(jwksURL, opts)
	}

	if os.Getenv("AUTH_JWT_SECRET_ARN") == "" && os.Getenv("AUTH_JWT_SECRET") == "" {
		return nil, nil
	}
	secret, err := secrets.GetSecretString(ctx, "AUTH_JWT_SECRET_ARN", "AUTH_JWT_SECRET")
	if err != nil {
		return nil, err
	}
	return middleware.NewHMACVerifier(secret, opts), nil
}

func InitializeRoutes(router *gin.Engine) {
	router.Use(configureCORS())
	router.Use(middleware.CorrelationIDMiddleware())

	isDevelopment := os.Getenv("GIN_MODE") != "release"
	router.Use(middleware.EnhancedLoggingMiddleware(isDevelopment))
	if !isDevelopment {
		router.Use(middleware.RequestLoggingMiddleware())
	}

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health for raw lambda url check
	router.GET("/:stage/health", healthHandler.Health)
	router.GET("/health", healthHandler.Health)

	v1 := router.Group("/api/v1")
	{
		auth := v1.Group("/auth")
		auth.Use(middleware.StrictRateLimiter.Middleware())
		{
			auth.POST("/login", authHandler.Login)
			auth.POST("/register", authHandler.Register)
		}

		protected := v1.Group("")
		protected.Use(middleware.RequireBearerToken(tokenVerifier))
		{
			api := protected.Group("")
			api.Use(middleware.DefaultRateLimiter.Middleware())
			{
				projects := api.Group("/projects/:project_id")
				{
					projects.POST("/snapshot", projectHandler.PutSnapshot)
					projects.GET("/snapshot", projectHandler.GetSnapshot)
					projects.GET("/visualization", projectHandler.GetVisualization)
					projects.GET("/cost-comparison", projectHandler.GetCostComparison)
				}

				dashboard := api.Group("/dashboard")
				{
					dashboard.GET("/overview", dashboardHandler.GetOverview)
					dashboard.POST("/sessions", dashboardHandler.CreateSession)
					dashboard.GET("/sessions/:session_id", dashboardHandler.GetSession)
					dashboard.PUT("/sessions/:session_id/tab", dashboardHandler.SetTab)
					dashboard.POST("/sessions/:session_id/data", dashboardHandler.PushData)
					dashboard.GET("/sessions/:session_id/charts", dashboardHandler.ListCharts)
					dashboard.DELETE("/sessions/:session_id", dashboardHandler.DeleteSession)
				}
			}

			// Chart images are polled by every open view
			images := protected.Group("/dashboard/sessions/:session_id/charts")
			images.Use(middleware.RelaxedRateLimiter.Middleware())
			{
				images.GET("/:slot", dashboardHandler.GetChartImage)
			}
		}
	}
}

// Shutdown stops background work and releases connections. It is safe to
// call when InitializeHandlers never ran.
func Shutdown() error {
	var result *multierror.Error

	if snapshotListener != nil {
		snapshotListener.Stop()
	}
	if dashboardService != nil {
		dashboardService.Stop()
		dashboardService.CloseAll()
	}
	tokenVerifier.Close()
	if dbPool != nil {
		dbPool.Close()
	}
	if err := logger.Sync(); err != nil && !isIgnorableSyncError(err) {
		result = multierror.Append(result, fmt.Errorf("failed to sync logger: %w", err))
	}

	return result.ErrorOrNil()
}

// Syncing stdout/stderr returns EINVAL or ENOTTY on most terminals
func isIgnorableSyncError(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "invalid argument") || strings.Contains(msg, "inappropriate ioctl")
}

// configureCORS returns a configured CORS middleware
func configureCORS() gin.HandlerFunc {
	corsConfig := cors.DefaultConfig()

	corsConfig.AllowOrigins = envList("CORS_ALLOWED_ORIGINS", []string{"http://localhost:3000"})
	corsConfig.AllowMethods = envList("CORS_ALLOWED_METHODS", []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"})
	corsConfig.AllowHeaders = envList("CORS_ALLOWED_HEADERS", []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Correlation-ID"})
	corsConfig.ExposeHeaders = envList("CORS_EXPOSED_HEADERS", []string{
		"X-RateLimit-Remaining",
		"Retry-After",
		"X-Correlation-ID",
		"Last-Modified",
	})
	corsConfig.AllowCredentials = os.Getenv("CORS_ALLOW_CREDENTIALS") == "true"

	return cors.New(corsConfig)
}

func envList(key string, defaults []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaults
	}
	items := strings.Split(value, ",")
	for i, item := range items {
		items[i] = strings.TrimSpace(item)
	}
	return items
}
