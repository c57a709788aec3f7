package config

import "time"

// Config holds all configuration for the application
type Config struct {
	Environment    string               `mapstructure:"environment"`
	Server         ServerConfig         `mapstructure:"server"`
	Database       DatabaseConfig       `mapstructure:"database"`
	Logger         LoggerConfig         `mapstructure:"logger"`
	Auth           AuthConfig           `mapstructure:"auth"`
	Media          MediaConfig          `mapstructure:"media"`
	Cache          CacheConfig          `mapstructure:"cache"`
	Credits        CreditsConfig        `mapstructure:"credits"`
	Transformation TransformationConfig `mapstructure:"transformation"`
	RateLimit      RateLimitConfig      `mapstructure:"rateLimit"`
	Metrics        MetricsConfig        `mapstructure:"metrics"`
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
	AllowedOrigins    []string      `mapstructure:"allowedOrigins"`
}

// DatabaseConfig contains database connection settings
type DatabaseConfig struct {
	Driver          string        `mapstructure:"driver"`
	Host            string        `mapstructure:"host"`
	Port            string        `mapstructure:"port"`
	Username        string        `mapstructure:"username"`
	Password        string        `mapstructure:"password"`
	Database        string        `mapstructure:"database"`
	SSLMode         string        `mapstructure:"sslMode"`
	MaxOpenConns    int           `mapstructure:"maxOpenConns"`
	MaxIdleConns    int           `mapstructure:"maxIdleConns"`
	ConnMaxLifetime time.Duration `mapstructure:"connMaxLifetime"` // minutes
	ConnMaxIdleTime time.Duration `mapstructure:"connMaxIdleTime"` // minutes
	QueryTimeout    time.Duration `mapstructure:"queryTimeout"`    // seconds
	RetryAttempts   int           `mapstructure:"retryAttempts"`
	RetryDelay      time.Duration `mapstructure:"retryDelay"`      // seconds
	MonitorInterval time.Duration `mapstructure:"monitorInterval"` // seconds
}

// LoggerConfig contains logger settings
type LoggerConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	Output     string `mapstructure:"output"`
	TimeFormat string `mapstructure:"timeFormat"`
	CallerInfo bool   `mapstructure:"callerInfo"`
}

// AuthConfig contains identity provider settings
type AuthConfig struct {
	JWTSecret     string `mapstructure:"jwtSecret"`
	Issuer        string `mapstructure:"issuer"`
	WebhookSecret string `mapstructure:"webhookSecret"`
}

// MediaConfig contains media service settings
type MediaConfig struct {
	CloudName       string        `mapstructure:"cloudName"`
	APIKey          string        `mapstructure:"apiKey"`
	APISecret       string        `mapstructure:"apiSecret"`
	Folder          string        `mapstructure:"folder"`
	APIBaseURL      string        `mapstructure:"apiBaseURL"`
	DeliveryBaseURL string        `mapstructure:"deliveryBaseURL"`
	Timeout         time.Duration `mapstructure:"timeout"` // seconds
	RetryAttempts   int           `mapstructure:"retryAttempts"`
}

// CacheConfig contains cache invalidation settings
type CacheConfig struct {
	Enabled   bool   `mapstructure:"enabled"`
	RedisAddr string `mapstructure:"redisAddr"`
	Password  string `mapstructure:"password"`
	DB        int    `mapstructure:"db"`
	Channel   string `mapstructure:"channel"`
}

// CreditsConfig contains credit accounting settings
type CreditsConfig struct {
	InitialBalance    int64 `mapstructure:"initialBalance"`
	TransformationFee int64 `mapstructure:"transformationFee"`
}

// TransformationConfig contains transformation form settings
type TransformationConfig struct {
	EditCoalesceWindowMs int64         `mapstructure:"editCoalesceWindowMs"`
	SessionTTL           time.Duration `mapstructure:"sessionTTL"`      // minutes
	JanitorInterval      time.Duration `mapstructure:"janitorInterval"` // seconds
	MaxSessions          int           `mapstructure:"maxSessions"`
	QueueSize            int           `mapstructure:"queueSize"`
}

// EditCoalesceWindow returns the edit coalescing window as a duration
func (t TransformationConfig) EditCoalesceWindow() time.Duration {
	return time.Duration(t.EditCoalesceWindowMs) * time.Millisecond
}

// RateLimitConfig contains API rate limiting settings
type RateLimitConfig struct {
	Enabled           bool    `mapstructure:"enabled"`
	RequestsPerSecond float64 `mapstructure:"requestsPerSecond"`
	Burst             int     `mapstructure:"burst"`
}

// MetricsConfig contains metrics exposition settings
type MetricsConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Path    string `mapstructure:"path"`
}
