package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	coreport "github.com/amirhossein-jamali/transform-studio/internal/domain/port/core"
	"github.com/amirhossein-jamali/transform-studio/internal/domain/port/external"
	imageUseCase "github.com/amirhossein-jamali/transform-studio/internal/domain/usecase/image"
	navigationUseCase "github.com/amirhossein-jamali/transform-studio/internal/domain/usecase/navigation"
	transformationUseCase "github.com/amirhossein-jamali/transform-studio/internal/domain/usecase/transformation"
	userUseCase "github.com/amirhossein-jamali/transform-studio/internal/domain/usecase/user"

	"github.com/amirhossein-jamali/transform-studio/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/transform-studio/internal/infrastructure/adapter/api/middleware"
	"github.com/amirhossein-jamali/transform-studio/internal/infrastructure/adapter/api/routes"
	"github.com/amirhossein-jamali/transform-studio/internal/infrastructure/adapter/cache"
	"github.com/amirhossein-jamali/transform-studio/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/transform-studio/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/transform-studio/internal/infrastructure/adapter/media"
	"github.com/amirhossein-jamali/transform-studio/internal/infrastructure/adapter/metrics"
	"github.com/amirhossein-jamali/transform-studio/internal/infrastructure/adapter/repository"
	timeProvider "github.com/amirhossein-jamali/transform-studio/internal/infrastructure/adapter/time"
	"github.com/amirhossein-jamali/transform-studio/internal/infrastructure/config"

	"github.com/gin-gonic/gin"
)

// recorder is everything the metrics backend has to accept
type recorder interface {
	coreport.Metrics
	middleware.HTTPRecorder
	media.RequestObserver
}

const rateLimitCleanupInterval = 10 * time.Minute

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := validateConfig(cfg); err != nil {
		log.Fatalf("Configuration validation failed: %v", err)
	}

	if cfg.Environment == config.Production {
		gin.SetMode(gin.ReleaseMode)
	}

	appLogger := logger.NewLoggerFromConfig(cfg.Environment == config.Production, cfg.Logger.Level)
	defer func() { _ = appLogger.Flush() }()

	tp := timeProvider.NewRealTimeProvider()

	// Metrics backend
	var appMetrics recorder = metrics.NewNoop()
	dbObserver := database.NoopObserver()
	var promMetrics *metrics.Prometheus
	if cfg.Metrics.Enabled {
		promMetrics = metrics.NewPrometheus()
		appMetrics = promMetrics
		dbObserver = promMetrics
	}

	// Database
	dbManager := database.NewManager(database.NewConfig(cfg.Database, cfg.Logger.Level), appLogger, tp, dbObserver)
	startupCtx, cancelStartup := context.WithTimeout(context.Background(), 2*time.Minute)
	if _, err := dbManager.Connect(startupCtx); err != nil {
		cancelStartup()
		appLogger.Error("Failed to connect to database", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}
	defer dbManager.Close()

	if err := dbManager.Migrate(startupCtx); err != nil {
		cancelStartup()
		appLogger.Error("Failed to run migrations", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}
	cancelStartup()

	// Repositories
	userRepo := repository.NewUserRepository(dbManager.DB(), tp, appLogger)
	imageRepo := repository.NewImageRepository(dbManager.DB(), appLogger)
	uow := dbManager.CreateUnitOfWork()

	// External collaborators
	mediaClient := media.NewClient(cfg.Media, nil, tp, appLogger, appMetrics)

	var invalidator external.CacheInvalidator = cache.NewNoopInvalidator()
	if cfg.Cache.Enabled {
		redisClient := cache.NewRedisClient(cfg.Cache)
		defer redisClient.Close()
		invalidator = cache.NewRedisInvalidator(redisClient, cfg.Cache.Channel, tp, appLogger)
	}

	// Use cases
	userUseCaseImpl := userUseCase.NewUserUseCase(userRepo, uow, invalidator, tp, appLogger, cfg.Credits.InitialBalance)
	imageUseCaseImpl := imageUseCase.NewImageUseCase(imageRepo, userRepo, mediaClient, invalidator, tp, appLogger)
	navigationUseCaseImpl := navigationUseCase.NewNavigationUseCase()

	sessionManager := transformationUseCase.NewSessionManager(appLogger, tp, appMetrics, transformationUseCase.SessionConfig{
		TTL:             cfg.Transformation.SessionTTL,
		MaxSessions:     cfg.Transformation.MaxSessions,
		QueueSize:       cfg.Transformation.QueueSize,
		JanitorInterval: cfg.Transformation.JanitorInterval,
	})
	sessionManager.Start()

	transformationUseCaseImpl := transformationUseCase.NewTransformationService(
		sessionManager,
		userUseCaseImpl,
		imageUseCaseImpl,
		mediaClient,
		appMetrics,
		tp,
		appLogger,
		transformationUseCase.ServiceConfig{
			CreditFee:  cfg.Credits.TransformationFee,
			EditWindow: cfg.Transformation.EditCoalesceWindow(),
		},
	)

	// HTTP layer
	handlers := routes.Handlers{
		User:           handler.NewUserHandler(userUseCaseImpl, appLogger),
		Image:          handler.NewImageHandler(imageUseCaseImpl, appLogger),
		Transformation: handler.NewTransformationHandler(transformationUseCaseImpl, appLogger),
		Navigation:     handler.NewNavigationHandler(navigationUseCaseImpl),
		Webhook:        handler.NewWebhookHandler(userUseCaseImpl, cfg.Auth.WebhookSecret, appLogger),
		Health:         handler.NewHealthHandler(dbManager, appLogger),
	}

	options := routes.Options{
		Auth:        middleware.NewAuthenticator(cfg.Auth, userUseCaseImpl, appLogger),
		MetricsPath: cfg.Metrics.Path,
	}
	if promMetrics != nil {
		options.Metrics = promMetrics.Handler()
	}
	if cfg.RateLimit.Enabled {
		limiter := middleware.NewRateLimiter(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst, tp, appLogger)
		limiter.StartCleanup(rateLimitCleanupInterval)
		defer limiter.Stop()
		options.RateLimiter = limiter
	}

	router := gin.New()
	routes.SetupMiddlewares(router, appLogger, cfg.Server.AllowedOrigins, appMetrics)
	routes.SetupRoutes(router, handlers, options)

	server := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:           router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	go func() {
		appLogger.Info("Starting server", map[string]any{
			"addr": server.Addr,
			"env":  cfg.Environment,
		})

		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Error("Failed to start server", map[string]any{
				"error": err.Error(),
			})
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...", nil)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		appLogger.Error("Server forced to shutdown", map[string]any{
			"error": err.Error(),
		})
	}

	appLogger.Info("Shutting down transformation sessions...", nil)
	sessionManager.Shutdown()

	appLogger.Info("Server exited gracefully", nil)
}

// validateConfig ensures all required configuration values are present
func validateConfig(cfg *config.Config) error {
	var missingConfigs []string

	if cfg.Server.Port == 0 {
		missingConfigs = append(missingConfigs, "server.port")
	}
	if cfg.Server.ReadTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.readTimeout")
	}
	if cfg.Server.WriteTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.writeTimeout")
	}
	if cfg.Server.ShutdownTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.shutdownTimeout")
	}

	requireWithEnv := func(value, key, env string) {
		if value != "" {
			return
		}
		if cfg.Environment == config.Production {
			missingConfigs = append(missingConfigs, fmt.Sprintf("%s (or %s environment variable)", key, env))
			return
		}
		missingConfigs = append(missingConfigs, key)
	}

	requireWithEnv(cfg.Database.Host, "database.host", "TS_DB_HOST")
	requireWithEnv(cfg.Database.Port, "database.port", "TS_DB_PORT")
	requireWithEnv(cfg.Database.Username, "database.username", "TS_DB_USERNAME")
	requireWithEnv(cfg.Database.Database, "database.database", "TS_DB_NAME")
	if cfg.Database.QueryTimeout == 0 {
		missingConfigs = append(missingConfigs, "database.queryTimeout")
	}

	requireWithEnv(cfg.Auth.JWTSecret, "auth.jwtSecret", "TS_AUTH_JWT_SECRET")
	requireWithEnv(cfg.Auth.WebhookSecret, "auth.webhookSecret", "TS_WEBHOOK_SECRET")

	requireWithEnv(cfg.Media.CloudName, "media.cloudName", "TS_MEDIA_CLOUD_NAME")
	requireWithEnv(cfg.Media.APIKey, "media.apiKey", "TS_MEDIA_API_KEY")
	requireWithEnv(cfg.Media.APISecret, "media.apiSecret", "TS_MEDIA_API_SECRET")

	if cfg.Cache.Enabled {
		requireWithEnv(cfg.Cache.RedisAddr, "cache.redisAddr", "TS_REDIS_ADDR")
		if cfg.Cache.Channel == "" {
			missingConfigs = append(missingConfigs, "cache.channel")
		}
	}

	if cfg.Credits.TransformationFee < 0 {
		return fmt.Errorf("credits.transformationFee must not be negative, got %d", cfg.Credits.TransformationFee)
	}
	if cfg.Credits.InitialBalance < 0 {
		return fmt.Errorf("credits.initialBalance must not be negative, got %d", cfg.Credits.InitialBalance)
	}
	if cfg.Transformation.EditCoalesceWindowMs < 0 {
		return fmt.Errorf("transformation.editCoalesceWindowMs must not be negative, got %d", cfg.Transformation.EditCoalesceWindowMs)
	}

	if cfg.RateLimit.Enabled && cfg.RateLimit.RequestsPerSecond <= 0 {
		missingConfigs = append(missingConfigs, "rateLimit.requestsPerSecond")
	}
	if cfg.Metrics.Enabled && !strings.HasPrefix(cfg.Metrics.Path, "/") {
		return fmt.Errorf("metrics.path must start with '/', got %q", cfg.Metrics.Path)
	}

	if cfg.Environment == "" {
		missingConfigs = append(missingConfigs, "environment")
	} else if cfg.Environment != config.Development &&
		cfg.Environment != config.Production &&
		cfg.Environment != config.Test {
		return fmt.Errorf("invalid environment value: %s, must be one of: %s, %s, or %s",
			cfg.Environment, config.Development, config.Production, config.Test)
	}

	if cfg.Logger.Level == "" {
		missingConfigs = append(missingConfigs, "logger.level")
	}

	if len(missingConfigs) > 0 {
		return fmt.Errorf("missing required configurations: %v", missingConfigs)
	}

	if cfg.Environment == config.Production {
		var warnings []string

		sslMode := strings.ToLower(cfg.Database.SSLMode)
		if sslMode != "require" && sslMode != "verify-ca" && sslMode != "verify-full" {
			warnings = append(warnings, "database.sslMode should be set to 'require', 'verify-ca', or 'verify-full' in production")
		}
		if cfg.Server.ReadTimeout < 5*time.Second {
			warnings = append(warnings, "server.readTimeout is too low for production")
		}
		if cfg.Server.WriteTimeout < 5*time.Second {
			warnings = append(warnings, "server.writeTimeout is too low for production")
		}
		for _, origin := range cfg.Server.AllowedOrigins {
			if origin == "*" {
				warnings = append(warnings, "server.allowedOrigins allows any origin")
			}
		}

		if len(warnings) > 0 {
			log.Printf("Warning: potential security issues in production configuration: %v", warnings)
		}
	}

	return nil
}
