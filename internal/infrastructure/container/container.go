package container

import (
	"context"
	"fmt"

	coreport "github.com/amirhossein-jamali/smartlens-backend/internal/domain/port/core"
	"github.com/amirhossein-jamali/smartlens-backend/internal/domain/usecase/ocr"
	"github.com/amirhossein-jamali/smartlens-backend/internal/domain/usecase/user"
	"github.com/amirhossein-jamali/smartlens-backend/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/smartlens-backend/internal/infrastructure/adapter/idgen"
	"github.com/amirhossein-jamali/smartlens-backend/internal/infrastructure/adapter/repository"
	timeProvider "github.com/amirhossein-jamali/smartlens-backend/internal/infrastructure/adapter/time"
	"github.com/amirhossein-jamali/smartlens-backend/internal/infrastructure/adapter/vision"
	"github.com/amirhossein-jamali/smartlens-backend/internal/infrastructure/config"
)

// Container holds the wired services shared by the API server and the admin CLI
type Container struct {
	DBManager    *database.Manager
	TimeProvider coreport.TimeProvider
	UserUseCase  *user.UserUseCase
	OCRUseCase   *ocr.OCRUseCase
}

// Options selects optional parts of the graph
type Options struct {
	// WithVision builds the vision model client. The admin CLI skips it.
	WithVision bool
}

// New connects and migrates the database, then builds repositories and use cases.
// The caller owns Close.
func New(ctx context.Context, cfg *config.Config, logger coreport.Logger, opts Options) (*Container, error) {
	tp := timeProvider.NewRealTimeProvider()

	dbConfig := database.FromAppConfig(cfg)
	if err := dbConfig.Validate(); err != nil {
		return nil, fmt.Errorf("invalid database configuration: %w", err)
	}

	dbManager := database.NewManager(dbConfig, logger, tp)
	if _, err := dbManager.Connect(); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := dbManager.Migrate(); err != nil {
		_ = dbManager.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	db := dbManager.DB()
	userRepo := repository.NewUserRepository(db, logger)
	transactionRepo := repository.NewTransactionRepository(db, logger)
	logRepo := repository.NewProcessingLogRepository(db, logger)
	ids := idgen.NewUUIDGenerator(tp)

	var model coreport.VisionModel
	if opts.WithVision {
		m, err := vision.NewFromConfig(ctx, cfg.Vision, logger)
		if err != nil {
			_ = dbManager.Close()
			return nil, fmt.Errorf("failed to create vision model: %w", err)
		}
		model = m
	}

	return &Container{
		DBManager:    dbManager,
		TimeProvider: tp,
		UserUseCase: user.NewUserUseCase(
			dbManager.CreateUnitOfWork(),
			userRepo,
			transactionRepo,
			ids,
			tp,
			logger,
			cfg.Accounts.InitialCredits,
		),
		OCRUseCase: ocr.NewOCRUseCase(model, userRepo, logRepo, ids, tp, logger, ocr.Config{
			Provider:         cfg.Vision.Provider,
			MaxImageBytes:    cfg.OCR.MaxImageBytes,
			SupportedFormats: cfg.OCR.SupportedFormats,
		}),
	}, nil
}

// Close releases the database connection
func (c *Container) Close() error {
	return c.DBManager.Close()
}
