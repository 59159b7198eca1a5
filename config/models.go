package config

import (
	"errors"
	"fmt"
	"time"
)

const (
	// BackendPostgres selects the PostgreSQL user store.
	BackendPostgres = "postgres"
	// BackendMemory selects the in-process user store.
	BackendMemory = "memory"
)

// Config holds application configuration.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Storage  StorageConfig  `mapstructure:"storage"`
	Postgres PostgresConfig `mapstructure:"postgres"`
	HTTP     HTTPConfig     `mapstructure:"http"`
	Logging  LoggingConfig  `mapstructure:"logging"`
}

// Validate ensures required fields are present.
func (c Config) Validate() error {
	if c.Server.Port == 0 {
		return errors.New("server.port is required")
	}
	if c.HTTP.RequestTimeout <= 0 {
		return errors.New("http.request_timeout must be positive")
	}
	switch c.Storage.Backend {
	case BackendMemory:
		return nil
	case BackendPostgres:
	default:
		return fmt.Errorf("unknown storage.backend: %q", c.Storage.Backend)
	}
	if c.Postgres.User == "" || c.Postgres.Password == "" || c.Postgres.DBName == "" {
		return errors.New("postgres credentials are required")
	}
	if c.Postgres.Host == "" {
		return errors.New("postgres.host is required")
	}
	return nil
}

// ServerAddr returns host:port for HTTP server binding.
func (c Config) ServerAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

// ServerConfig contains HTTP server options.
type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// HTTPConfig contains transport settings.
type HTTPConfig struct {
	RequestTimeout time.Duration   `mapstructure:"request_timeout"`
	BodyLimit      int             `mapstructure:"body_limit"`
	RateLimit      RateLimitConfig `mapstructure:"rate_limit"`
}

// RateLimitConfig bounds requests per client IP within a window.
type RateLimitConfig struct {
	Enabled bool          `mapstructure:"enabled"`
	Max     int           `mapstructure:"max"`
	Window  time.Duration `mapstructure:"window"`
}

// StorageConfig picks the user store implementation.
type StorageConfig struct {
	Backend string `mapstructure:"backend"`
}

// LoggingConfig contains logger preferences.
type LoggingConfig struct {
	Level string `mapstructure:"level"`
}

// PostgresConfig describes database connection parameters.
type PostgresConfig struct {
	Host          string        `mapstructure:"host"`
	Port          int           `mapstructure:"port"`
	User          string        `mapstructure:"user"`
	Password      string        `mapstructure:"password"`
	DBName        string        `mapstructure:"db_name"`
	SSLMode       string        `mapstructure:"ssl_mode"`
	SchemaTimeout time.Duration `mapstructure:"schema_timeout"`
	QueryTimeout  time.Duration `mapstructure:"query_timeout"`
	MaxConns      int32         `mapstructure:"max_conns"`
	MinConns      int32         `mapstructure:"min_conns"`
}

// DSN returns a Postgres connection string.
func (p PostgresConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		p.Host, p.Port, p.User, p.Password, p.DBName, p.SSLMode,
	)
}
