package config

import "time"

// Config holds all configuration for the application
type Config struct {
	Environment string         `mapstructure:"environment"`
	Server      ServerConfig   `mapstructure:"server"`
	Database    DatabaseConfig `mapstructure:"database"`
	Logger      LoggerConfig   `mapstructure:"logger"`
	Vision      VisionConfig   `mapstructure:"vision"`
	OCR         OCRConfig      `mapstructure:"ocr"`
	Accounts    AccountsConfig `mapstructure:"accounts"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host              string        `mapstructure:"host"`
	Port              int           `mapstructure:"port"`
	ReadTimeout       time.Duration `mapstructure:"readTimeout"`       // seconds
	WriteTimeout      time.Duration `mapstructure:"writeTimeout"`      // seconds
	IdleTimeout       time.Duration `mapstructure:"idleTimeout"`       // seconds
	ReadHeaderTimeout time.Duration `mapstructure:"readHeaderTimeout"` // seconds
	ShutdownTimeout   time.Duration `mapstructure:"shutdownTimeout"`   // seconds
	CORSOrigins       []string      `mapstructure:"corsOrigins"`
	MaxBodyBytes      int64         `mapstructure:"maxBodyBytes"`
}

// DatabaseConfig contains database connection settings
type DatabaseConfig struct {
	Driver          string        `mapstructure:"driver"` // sqlite or postgres
	Path            string        `mapstructure:"path"`   // sqlite file
	URL             string        `mapstructure:"url"`    // postgres DSN
	MaxOpenConns    int           `mapstructure:"maxOpenConns"`
	ConnMaxLifetime time.Duration `mapstructure:"connMaxLifetime"` // minutes
	SlowThreshold   time.Duration `mapstructure:"slowThreshold"`   // milliseconds
	LogLevel        string        `mapstructure:"logLevel"`
}

// LoggerConfig contains logger settings
type LoggerConfig struct {
	Level      string `mapstructure:"level"`
	Production bool   `mapstructure:"production"`
}

// VisionConfig selects and configures the hosted vision model
type VisionConfig struct {
	Provider       string        `mapstructure:"provider"` // gemini or openai
	APIKey         string        `mapstructure:"apiKey"`
	Model          string        `mapstructure:"model"`
	BaseURL        string        `mapstructure:"baseURL"`
	ThinkingBudget int32         `mapstructure:"thinkingBudget"`
	Timeout        time.Duration `mapstructure:"timeout"` // seconds
}

// OCRConfig bounds the images accepted for processing
type OCRConfig struct {
	MaxImageBytes    int64    `mapstructure:"maxImageBytes"`
	SupportedFormats []string `mapstructure:"supportedFormats"`
}

// AccountsConfig contains credit ledger settings
type AccountsConfig struct {
	InitialCredits int64    `mapstructure:"initialCredits"`
	SeedEmails     []string `mapstructure:"seedEmails"`
}
