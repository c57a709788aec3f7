package config

import (
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

// EnvPrefix prefixes every environment override
const EnvPrefix = "TS"

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
	"../configs/.env",
	"../../configs/.env",
}

// LoadConfig loads configuration from file based on the environment
func LoadConfig() (*Config, error) {
	// Load environment variables from .env file first
	if err := loadDotEnvFile(); err != nil {
		fmt.Println("Warning: Could not load .env file:", err)
	}

	return LoadConfigFrom(getEnvironment(), ConfigPaths...)
}

// LoadConfigFrom reads configs/<env>.yaml from the first matching path and applies overrides
func LoadConfigFrom(env string, paths ...string) (*Config, error) {
	v := viper.New()
	v.SetConfigName(env)
	v.SetConfigType("yaml")

	for _, path := range paths {
		v.AddConfigPath(path)
	}

	// Set default values for non-critical settings
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	// Set environment variables to override config
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Process environment variable overrides for sensitive values
	processEnvOverrides(v)

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config into struct: %w", err)
	}

	config.Environment = env

	// Convert time.Duration fields from their raw values
	processDurations(&config)

	return &config, nil
}

// loadDotEnvFile attempts to load environment variables from .env files
func loadDotEnvFile() error {
	var lastError error

	for _, path := range DotEnvPaths {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := godotenv.Load(path); err != nil {
			lastError = err
			continue
		}
		return nil
	}

	if lastError != nil {
		return fmt.Errorf("could not load any .env file: %w", lastError)
	}
	return fmt.Errorf("no .env file found in search paths")
}

// setDefaults sets default values for non-critical configuration
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.readTimeout", 15)       // seconds
	v.SetDefault("server.writeTimeout", 30)      // seconds
	v.SetDefault("server.idleTimeout", 60)       // seconds
	v.SetDefault("server.readHeaderTimeout", 10) // seconds
	v.SetDefault("server.shutdownTimeout", 10)   // seconds
	v.SetDefault("server.allowedOrigins", []string{"*"})

	v.SetDefault("database.driver", "postgres")
	v.SetDefault("database.port", "5432")
	v.SetDefault("database.sslMode", "disable")
	v.SetDefault("database.maxOpenConns", 25)
	v.SetDefault("database.maxIdleConns", 10)
	v.SetDefault("database.connMaxLifetime", 30) // minutes
	v.SetDefault("database.connMaxIdleTime", 15) // minutes
	v.SetDefault("database.queryTimeout", 5)     // seconds
	v.SetDefault("database.retryAttempts", 3)
	v.SetDefault("database.retryDelay", 1)       // seconds
	v.SetDefault("database.monitorInterval", 30) // seconds

	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "json")
	v.SetDefault("logger.output", "stdout")
	v.SetDefault("logger.callerInfo", true)

	v.SetDefault("media.folder", "imaginify")
	v.SetDefault("media.apiBaseURL", "https://api.cloudinary.com")
	v.SetDefault("media.deliveryBaseURL", "https://res.cloudinary.com")
	v.SetDefault("media.timeout", 10) // seconds
	v.SetDefault("media.retryAttempts", 2)

	v.SetDefault("cache.enabled", false)
	v.SetDefault("cache.redisAddr", "localhost:6379")
	v.SetDefault("cache.db", 0)
	v.SetDefault("cache.channel", "transform-studio:invalidate")

	v.SetDefault("credits.initialBalance", 10)
	v.SetDefault("credits.transformationFee", 1)

	v.SetDefault("transformation.editCoalesceWindowMs", 1000)
	v.SetDefault("transformation.sessionTTL", 30)      // minutes
	v.SetDefault("transformation.janitorInterval", 60) // seconds
	v.SetDefault("transformation.maxSessions", 10000)
	v.SetDefault("transformation.queueSize", 16)

	v.SetDefault("rateLimit.enabled", true)
	v.SetDefault("rateLimit.requestsPerSecond", 10)
	v.SetDefault("rateLimit.burst", 20)

	v.SetDefault("metrics.enabled", true)
	v.SetDefault("metrics.path", "/metrics")
}

// getEnvironment determines the environment to use based on TS_ENV
func getEnvironment() string {
	env := os.Getenv(EnvPrefix + "_ENV")
	if env == "" {
		env = Development
	}
	return strings.ToLower(env)
}

// processEnvOverrides ensures environment variables override config values
func processEnvOverrides(v *viper.Viper) {
	stringOverrides := map[string]string{
		"TS_DB_HOST":          "database.host",
		"TS_DB_PORT":          "database.port",
		"TS_DB_USERNAME":      "database.username",
		"TS_DB_PASSWORD":      "database.password",
		"TS_DB_NAME":          "database.database",
		"TS_DB_SSL_MODE":      "database.sslMode",
		"TS_SERVER_HOST":      "server.host",
		"TS_LOGGER_LEVEL":     "logger.level",
		"TS_AUTH_JWT_SECRET":  "auth.jwtSecret",
		"TS_AUTH_ISSUER":      "auth.issuer",
		"TS_WEBHOOK_SECRET":   "auth.webhookSecret",
		"TS_MEDIA_CLOUD_NAME": "media.cloudName",
		"TS_MEDIA_API_KEY":    "media.apiKey",
		"TS_MEDIA_API_SECRET": "media.apiSecret",
		"TS_REDIS_ADDR":       "cache.redisAddr",
		"TS_REDIS_PASSWORD":   "cache.password",
	}
	for env, key := range stringOverrides {
		if value := os.Getenv(env); value != "" {
			v.Set(key, value)
		}
	}

	intOverrides := map[string]string{
		"TS_SERVER_PORT":                 "server.port",
		"TS_DB_MAX_OPEN_CONNS":           "database.maxOpenConns",
		"TS_DB_MAX_IDLE_CONNS":           "database.maxIdleConns",
		"TS_DB_QUERY_TIMEOUT_SECONDS":    "database.queryTimeout",
		"TS_CREDITS_INITIAL_BALANCE":     "credits.initialBalance",
		"TS_CREDITS_TRANSFORMATION_FEE":  "credits.transformationFee",
		"TS_EDIT_COALESCE_WINDOW_MS":     "transformation.editCoalesceWindowMs",
		"TS_TRANSFORMATION_MAX_SESSIONS": "transformation.maxSessions",
		"TS_RATE_LIMIT_BURST":            "rateLimit.burst",
	}
	for env, key := range intOverrides {
		if value := getEnvInt(env, -1); value > 0 {
			v.Set(key, value)
		}
	}

	if enabled := os.Getenv("TS_CACHE_ENABLED"); enabled != "" {
		if b, err := strconv.ParseBool(enabled); err == nil {
			v.Set("cache.enabled", b)
		}
	}
}

// Helper function to get environment variable as int
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

// processDurations converts time.Duration fields from their raw values to actual durations
func processDurations(config *Config) {
	// Convert seconds to time.Duration
	config.Server.ReadTimeout = time.Duration(config.Server.ReadTimeout) * time.Second
	config.Server.WriteTimeout = time.Duration(config.Server.WriteTimeout) * time.Second
	config.Server.IdleTimeout = time.Duration(config.Server.IdleTimeout) * time.Second
	config.Server.ReadHeaderTimeout = time.Duration(config.Server.ReadHeaderTimeout) * time.Second
	config.Server.ShutdownTimeout = time.Duration(config.Server.ShutdownTimeout) * time.Second

	// Convert minutes to time.Duration
	config.Database.ConnMaxLifetime = time.Duration(config.Database.ConnMaxLifetime) * time.Minute
	config.Database.ConnMaxIdleTime = time.Duration(config.Database.ConnMaxIdleTime) * time.Minute
	config.Transformation.SessionTTL = time.Duration(config.Transformation.SessionTTL) * time.Minute

	// Convert seconds to time.Duration
	config.Database.QueryTimeout = time.Duration(config.Database.QueryTimeout) * time.Second
	config.Database.RetryDelay = time.Duration(config.Database.RetryDelay) * time.Second
	config.Database.MonitorInterval = time.Duration(config.Database.MonitorInterval) * time.Second
	config.Media.Timeout = time.Duration(config.Media.Timeout) * time.Second
	config.Transformation.JanitorInterval = time.Duration(config.Transformation.JanitorInterval) * time.Second
}
