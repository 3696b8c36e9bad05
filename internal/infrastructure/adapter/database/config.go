package database

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/amirhossein-jamali/smartlens-backend/internal/infrastructure/config"
)

// Supported drivers
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// sqlitePragmas keeps writers waiting on each other instead of failing with
// SQLITE_BUSY, and lets readers proceed while a write is in progress.
const sqlitePragmas = "_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)&_pragma=foreign_keys(1)"

// Config represents database configuration
type Config struct {
	Driver          string
	Path            string // sqlite file
	URL             string // postgres DSN
	MaxOpenConns    int
	ConnMaxLifetime time.Duration
	SlowThreshold   time.Duration
	LogLevel        string
}

// DefaultConfig returns the configuration used when nothing is set:
// a sqlite file in the working directory.
func DefaultConfig() *Config {
	return &Config{
		Driver:          DriverSQLite,
		Path:            "smartlensocr.db",
		MaxOpenConns:    10,
		ConnMaxLifetime: 30 * time.Minute,
		SlowThreshold:   200 * time.Millisecond,
		LogLevel:        "warn",
	}
}

// FromAppConfig adapts the application configuration to database configuration
func FromAppConfig(conf *config.Config) *Config {
	dbConf := DefaultConfig()

	if conf.Database.Driver != "" {
		dbConf.Driver = strings.ToLower(conf.Database.Driver)
	}
	if conf.Database.Path != "" {
		dbConf.Path = conf.Database.Path
	}
	dbConf.URL = conf.Database.URL
	if conf.Database.MaxOpenConns > 0 {
		dbConf.MaxOpenConns = conf.Database.MaxOpenConns
	}
	if conf.Database.ConnMaxLifetime > 0 {
		dbConf.ConnMaxLifetime = conf.Database.ConnMaxLifetime
	}
	if conf.Database.SlowThreshold > 0 {
		dbConf.SlowThreshold = conf.Database.SlowThreshold
	}
	if conf.Database.LogLevel != "" {
		dbConf.LogLevel = conf.Database.LogLevel
	}

	return dbConf
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	switch c.Driver {
	case DriverSQLite:
		if c.Path == "" {
			return errors.New("database path is required for sqlite")
		}
	case DriverPostgres:
		if c.URL == "" {
			return errors.New("database url is required for postgres")
		}
	default:
		return fmt.Errorf("unsupported database driver: %s", c.Driver)
	}

	if c.MaxOpenConns <= 0 {
		return fmt.Errorf("max open connections must be positive, got: %d", c.MaxOpenConns)
	}

	validLogLevels := map[string]bool{
		"silent": true,
		"error":  true,
		"warn":   true,
		"info":   true,
	}
	if !validLogLevels[strings.ToLower(c.LogLevel)] {
		return fmt.Errorf("invalid log level: %s", c.LogLevel)
	}

	return nil
}

// DSN returns the connection string for the configured driver
func (c *Config) DSN() string {
	if c.Driver == DriverPostgres {
		return c.URL
	}
	if strings.Contains(c.Path, "?") {
		return c.Path + "&" + sqlitePragmas
	}
	return c.Path + "?" + sqlitePragmas
}

// EffectiveMaxOpenConns is the pool size actually applied.
// SQLite allows one writer, so it always gets a single connection.
func (c *Config) EffectiveMaxOpenConns() int {
	if c.Driver == DriverSQLite {
		return 1
	}
	return c.MaxOpenConns
}
