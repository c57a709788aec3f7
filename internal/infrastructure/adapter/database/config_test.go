package database

import (
	"testing"
	"time"

	"github.com/amirhossein-jamali/transform-studio/internal/infrastructure/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	return NewConfig(config.DatabaseConfig{
		Driver:          "postgres",
		Host:            "localhost",
		Port:            "5432",
		Username:        "studio",
		Password:        "secret",
		Database:        "transform_studio",
		SSLMode:         "disable",
		MaxOpenConns:    10,
		MaxIdleConns:    5,
		QueryTimeout:    5 * time.Second,
		RetryAttempts:   3,
		RetryDelay:      time.Second,
		MonitorInterval: 30 * time.Second,
	}, "info")
}

func TestConfig_Validate(t *testing.T) {
	require.NoError(t, validConfig().Validate())

	tests := []struct {
		name   string
		mutate func(c *Config)
	}{
		{"missing host", func(c *Config) { c.Host = "" }},
		{"bad port", func(c *Config) { c.Port = 0 }},
		{"missing user", func(c *Config) { c.Username = "" }},
		{"missing database", func(c *Config) { c.Database = "" }},
		{"unsupported driver", func(c *Config) { c.Driver = "mysql" }},
		{"bad ssl mode", func(c *Config) { c.SSLMode = "sometimes" }},
		{"no open conns", func(c *Config) { c.MaxOpenConns = 0 }},
		{"no query timeout", func(c *Config) { c.QueryTimeout = 0 }},
		{"no attempts", func(c *Config) { c.RetryAttempts = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := validConfig()
			tt.mutate(c)
			assert.Error(t, c.Validate())
		})
	}
}

func TestConfig_DSN(t *testing.T) {
	assert.Equal(t,
		"host=localhost port=5432 user=studio password=secret dbname=transform_studio sslmode=disable",
		validConfig().DSN())
}

func TestParsePort(t *testing.T) {
	assert.Equal(t, 5432, ParsePort("5432"))
	assert.Equal(t, 0, ParsePort("abc"))
	assert.Equal(t, 0, ParsePort("70000"))
}
