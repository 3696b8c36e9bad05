package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Environment constants
const (
	Development = "development"
	Production  = "production"
	Test        = "test"
)

// Vision providers
const (
	ProviderGemini = "gemini"
	ProviderOpenAI = "openai"
)

// Database drivers
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// ConfigPaths defines the paths to look for config files
var ConfigPaths = []string{
	"./configs",
	"../configs",
	"../../configs",
}

// DotEnvPaths defines the paths to look for .env files
var DotEnvPaths = []string{
	".env",
	"../.env",
	"../../.env",
	"./configs/.env",
}

var environmentAliases = map[string]string{
	"dev":         Development,
	"development": Development,
	"prod":        Production,
	"production":  Production,
	"test":        Test,
	"testing":     Test,
}

// LoadConfig loads configuration for the current environment.
// A missing YAML file is not an error; defaults and the environment still apply.
func LoadConfig() (*Config, error) {
	if err := loadDotEnvFile(); err != nil {
		fmt.Fprintln(os.Stderr, "Warning: Could not load .env file:", err)
	}

	env, err := getEnvironment()
	if err != nil {
		return nil, err
	}

	v := viper.New()
	v.SetConfigName(env)
	v.SetConfigType("yaml")
	for _, path := range ConfigPaths {
		v.AddConfigPath(path)
	}

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	v.SetEnvPrefix("SL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	processEnvOverrides(v)

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config into struct: %w", err)
	}

	config.Environment = env
	config.Database.Driver = strings.ToLower(config.Database.Driver)
	config.Vision.Provider = strings.ToLower(config.Vision.Provider)
	config.Server.CORSOrigins = splitList(config.Server.CORSOrigins)
	config.Accounts.SeedEmails = splitList(config.Accounts.SeedEmails)
	config.OCR.SupportedFormats = splitList(config.OCR.SupportedFormats)

	processDurations(&config)

	return &config, nil
}

func loadDotEnvFile() error {
	for _, path := range DotEnvPaths {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		return godotenv.Load(path)
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8000)
	v.SetDefault("server.readTimeout", 30)
	v.SetDefault("server.writeTimeout", 120) // vision calls are slow
	v.SetDefault("server.idleTimeout", 60)
	v.SetDefault("server.readHeaderTimeout", 10)
	v.SetDefault("server.shutdownTimeout", 10)
	v.SetDefault("server.corsOrigins", []string{"http://localhost:5173"})
	v.SetDefault("server.maxBodyBytes", 32<<20)

	v.SetDefault("database.driver", DriverSQLite)
	v.SetDefault("database.path", "smartlensocr.db")
	v.SetDefault("database.url", "")
	v.SetDefault("database.maxOpenConns", 10)
	v.SetDefault("database.connMaxLifetime", 30)
	v.SetDefault("database.slowThreshold", 200)
	v.SetDefault("database.logLevel", "warn")

	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.production", false)

	v.SetDefault("vision.provider", ProviderGemini)
	v.SetDefault("vision.apiKey", "")
	v.SetDefault("vision.model", "gemini-2.0-flash")
	v.SetDefault("vision.baseURL", "")
	v.SetDefault("vision.thinkingBudget", 4000)
	v.SetDefault("vision.timeout", 0) // seconds, 0 leaves the request context in charge

	v.SetDefault("ocr.maxImageBytes", 20<<20)
	v.SetDefault("ocr.supportedFormats", []string{"png", "jpeg", "gif", "webp"})

	v.SetDefault("accounts.initialCredits", 5)
	v.SetDefault("accounts.seedEmails", []string{})
}

// getEnvironment reads ENVIRONMENT (or SL_ENV) and resolves the short aliases
func getEnvironment() (string, error) {
	env := os.Getenv("ENVIRONMENT")
	if env == "" {
		env = os.Getenv("SL_ENV")
	}
	if env == "" {
		return Development, nil
	}
	return NormalizeEnvironment(env)
}

// NormalizeEnvironment maps an environment name or alias to its canonical form
func NormalizeEnvironment(env string) (string, error) {
	canonical, ok := environmentAliases[strings.ToLower(strings.TrimSpace(env))]
	if !ok {
		return "", fmt.Errorf("invalid environment value: %s, must be one of: %s, %s, or %s",
			env, Development, Production, Test)
	}
	return canonical, nil
}

// processEnvOverrides applies the service's unprefixed environment variables.
// They win over both the YAML file and the SL_ prefixed keys.
func processEnvOverrides(v *viper.Viper) {
	if host := os.Getenv("HOST"); host != "" {
		v.Set("server.host", host)
	}
	if port := getEnvInt("PORT", 0); port > 0 {
		v.Set("server.port", port)
	}
	if origins := os.Getenv("FRONTEND_URL"); origins != "" {
		v.Set("server.corsOrigins", origins)
	}

	if path := os.Getenv("DATABASE_PATH"); path != "" {
		v.Set("database.path", path)
	}
	if url := os.Getenv("DATABASE_URL"); url != "" {
		v.Set("database.url", url)
		if os.Getenv("SL_DATABASE_DRIVER") == "" {
			v.Set("database.driver", DriverPostgres)
		}
	}

	if os.Getenv("SL_VISION_APIKEY") != "" {
		return
	}
	gemini := os.Getenv("GEMINI_API_KEY")
	openai := os.Getenv("OPENAI_API_KEY")
	switch strings.ToLower(v.GetString("vision.provider")) {
	case ProviderOpenAI:
		if openai != "" {
			v.Set("vision.apiKey", openai)
		}
	default:
		if gemini != "" {
			v.Set("vision.apiKey", gemini)
		}
	}
}

func getEnvInt(name string, defaultVal int) int {
	valStr := os.Getenv(name)
	if valStr == "" {
		return defaultVal
	}

	val, err := strconv.Atoi(valStr)
	if err != nil {
		return defaultVal
	}
	return val
}

// splitList flattens comma separated entries coming from the environment
func splitList(values []string) []string {
	var out []string
	for _, value := range values {
		for _, part := range strings.Split(value, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}

// processDurations converts raw numeric fields into real durations
func processDurations(config *Config) {
	config.Server.ReadTimeout = time.Duration(config.Server.ReadTimeout) * time.Second
	config.Server.WriteTimeout = time.Duration(config.Server.WriteTimeout) * time.Second
	config.Server.IdleTimeout = time.Duration(config.Server.IdleTimeout) * time.Second
	config.Server.ReadHeaderTimeout = time.Duration(config.Server.ReadHeaderTimeout) * time.Second
	config.Server.ShutdownTimeout = time.Duration(config.Server.ShutdownTimeout) * time.Second

	config.Database.ConnMaxLifetime = time.Duration(config.Database.ConnMaxLifetime) * time.Minute
	config.Database.SlowThreshold = time.Duration(config.Database.SlowThreshold) * time.Millisecond

	config.Vision.Timeout = time.Duration(config.Vision.Timeout) * time.Second
}
