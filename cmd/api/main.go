package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/amirhossein-jamali/smartlens-backend/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/smartlens-backend/internal/infrastructure/adapter/api/routes"
	"github.com/amirhossein-jamali/smartlens-backend/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/smartlens-backend/internal/infrastructure/config"
	"github.com/amirhossein-jamali/smartlens-backend/internal/infrastructure/container"

	"github.com/gin-gonic/gin"
)

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

	appLogger := logger.NewZapLogger(cfg.Logger.Production || cfg.Environment == config.Production, cfg.Logger.Level)
	defer func() { _ = appLogger.Flush() }()

	ctx := context.Background()

	services, err := container.New(ctx, cfg, appLogger, container.Options{WithVision: true})
	if err != nil {
		appLogger.Error("Failed to initialize services", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}
	defer services.Close()

	if err := services.UserUseCase.SeedUsers(ctx, cfg.Accounts.SeedEmails); err != nil {
		appLogger.Error("Failed to create seed users", map[string]any{
			"error": err.Error(),
		})
	}

	healthHandler := handler.NewHealthHandler(services.DBManager)
	userHandler := handler.NewUserHandler(services.UserUseCase, appLogger)
	ocrHandler := handler.NewOCRHandler(services.OCRUseCase, appLogger)

	router := gin.New()
	routes.SetupMiddlewares(router, appLogger, routes.MiddlewareConfig{
		CORSOrigins:  cfg.Server.CORSOrigins,
		MaxBodyBytes: cfg.Server.MaxBodyBytes,
	})
	routes.SetupRoutes(router, healthHandler, userHandler, ocrHandler)

	server := &http.Server{
		Addr:              net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:           router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	go func() {
		appLogger.Info("Starting server", map[string]any{
			"addr":         server.Addr,
			"env":          cfg.Environment,
			"db_driver":    cfg.Database.Driver,
			"vision":       cfg.Vision.Provider,
			"vision_ready": services.OCRUseCase.Available() == nil,
		})

		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
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

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		appLogger.Error("Server forced to shutdown", map[string]any{
			"error": err.Error(),
		})
	}

	appLogger.Info("Server exited gracefully", nil)
}

// validateConfig ensures all required configuration values are present.
// A missing vision key is allowed; OCR endpoints then report the service as misconfigured.
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

	switch cfg.Database.Driver {
	case config.DriverSQLite:
		if cfg.Database.Path == "" {
			missingConfigs = append(missingConfigs, "database.path (or DATABASE_PATH environment variable)")
		}
	case config.DriverPostgres:
		if cfg.Database.URL == "" {
			missingConfigs = append(missingConfigs, "database.url (or DATABASE_URL environment variable)")
		}
	default:
		return fmt.Errorf("invalid database driver: %s, must be one of: %s or %s",
			cfg.Database.Driver, config.DriverSQLite, config.DriverPostgres)
	}

	switch cfg.Vision.Provider {
	case config.ProviderGemini, config.ProviderOpenAI:
	default:
		return fmt.Errorf("invalid vision provider: %s, must be one of: %s or %s",
			cfg.Vision.Provider, config.ProviderGemini, config.ProviderOpenAI)
	}

	if cfg.Logger.Level == "" {
		missingConfigs = append(missingConfigs, "logger.level")
	}

	if len(missingConfigs) > 0 {
		return fmt.Errorf("missing required configurations: %v", missingConfigs)
	}

	if cfg.Environment == config.Production {
		var warnings []string

		if cfg.Vision.APIKey == "" {
			warnings = append(warnings, "vision.apiKey is empty, OCR endpoints will fail")
		}
		if cfg.Database.Driver == config.DriverSQLite {
			warnings = append(warnings, "sqlite serializes writes through a single connection")
		}
		if cfg.Server.WriteTimeout < 30*time.Second {
			warnings = append(warnings, "server.writeTimeout is shorter than typical vision model latency")
		}

		if len(warnings) > 0 {
			log.Printf("Warning: potential issues in production configuration: %v", warnings)
		}
	}

	return nil
}
