package database

import (
	"context"
	"fmt"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	coreport "github.com/amirhossein-jamali/smartlens-backend/internal/domain/port/core"
	"github.com/amirhossein-jamali/smartlens-backend/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/smartlens-backend/internal/infrastructure/adapter/database/migration"
)

// Manager manages database connections
type Manager struct {
	config       *Config
	db           *gorm.DB
	logger       coreport.Logger
	errorMapper  *ErrorMapper
	timeProvider coreport.TimeProvider
}

// NewManager creates a new database manager
func NewManager(config *Config, logger coreport.Logger, timeProvider coreport.TimeProvider) *Manager {
	return &Manager{
		config:       config,
		logger:       logger,
		errorMapper:  NewErrorMapper(),
		timeProvider: timeProvider,
	}
}

// Connect opens the store. There is no retry loop: a store that cannot be
// opened at startup is fatal.
func (m *Manager) Connect() (*gorm.DB, error) {
	if err := m.config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid database configuration: %w", err)
	}

	m.logger.Info("Connecting to database", map[string]any{
		"driver": m.config.Driver,
		"path":   m.config.Path,
	})

	var dialector gorm.Dialector
	switch m.config.Driver {
	case DriverSQLite:
		dialector = sqlite.Open(m.config.DSN())
	case DriverPostgres:
		dialector = postgres.Open(m.config.DSN())
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", m.config.Driver)
	}

	gormDB, err := gorm.Open(dialector, &gorm.Config{
		Logger: NewDatabaseLogger(m.logger, m.timeProvider, m.config.LogLevel, m.config.SlowThreshold),
		NowFunc: func() time.Time {
			return m.timeProvider.Now()
		},
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database connection: %w", err)
	}

	// Connections are acquired per operation and closed on release.
	sqlDB.SetMaxOpenConns(m.config.EffectiveMaxOpenConns())
	sqlDB.SetMaxIdleConns(0)
	sqlDB.SetConnMaxLifetime(m.config.ConnMaxLifetime)

	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("failed to reach database: %w", err)
	}

	m.logger.Info("Successfully connected to database", map[string]any{
		"driver":         m.config.Driver,
		"max_open_conns": m.config.EffectiveMaxOpenConns(),
	})

	m.db = gormDB
	return m.db, nil
}

// DB returns the GORM database instance
func (m *Manager) DB() *gorm.DB {
	return m.db
}

// Ping checks that the store is reachable
func (m *Manager) Ping(ctx context.Context) error {
	sqlDB, err := m.db.DB()
	if err != nil {
		return m.errorMapper.MapError(err, "ping")
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return m.errorMapper.MapError(err, "ping")
	}
	return nil
}

// Close closes the database connection
func (m *Manager) Close() error {
	if m.db == nil {
		return nil
	}

	m.logger.Info("Closing database connection", m.Stats().LogFields())

	sqlDB, err := m.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database connection: %w", err)
	}

	return sqlDB.Close()
}

// Migrate brings the schema up to date
func (m *Manager) Migrate() error {
	return migration.NewMigrationManager(m.db, m.logger, m.timeProvider).MigrateAll()
}

// CreateUnitOfWork creates a new UnitOfWork instance
func (m *Manager) CreateUnitOfWork() persistence.UnitOfWork {
	return NewUnitOfWork(m.db, m.logger)
}
