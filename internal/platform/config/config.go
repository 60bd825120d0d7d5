// Package config loads the service configuration with koanf.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Default configuration values.
const (
	DefaultServerPort     = 8080
	DefaultMaxRequestSize = 1 << 20

	DefaultDatabasePort         = 3306
	DefaultDatabaseMaxOpenConns = 10
	DefaultDatabaseMaxIdleConns = 5

	DefaultMaxPageSize      = 1000
	DefaultPageSize         = 10
	DefaultRandomRetryLimit = 3
	DefaultImportWorkers    = 1

	DefaultLogFileMaxSizeMB  = 100
	DefaultLogFileMaxBackups = 3
	DefaultLogFileMaxAgeDays = 28
)

// EnvPrefix prefixes every environment override. A double underscore
// separates levels: APP_DATABASE__MAX_OPEN_CONNS sets database.max_open_conns.
const EnvPrefix = "APP_"

// DefaultDir is where Load looks for base.yaml and {profile}.yaml.
const DefaultDir = "configs"

// Config is the root configuration structure.
type Config struct {
	App       AppConfig       `koanf:"app"       validate:"required"`
	Server    ServerConfig    `koanf:"server"    validate:"required"`
	Log       LogConfig       `koanf:"log"       validate:"required"`
	Telemetry TelemetryConfig `koanf:"telemetry"`
	Database  DatabaseConfig  `koanf:"database"  validate:"required"`
	Quotes    QuotesConfig    `koanf:"quotes"    validate:"required"`
}

// AppConfig contains application-level settings.
type AppConfig struct {
	Name        string `koanf:"name"        validate:"required"`
	Version     string `koanf:"version"     validate:"required"`
	Environment string `koanf:"environment" validate:"required,oneof=local dev qa prod test"`
	Debug       bool   `koanf:"debug"`
}

// ServerConfig contains HTTP server settings.
type ServerConfig struct {
	Port            int           `koanf:"port"             validate:"required,min=1,max=65535"`
	Host            string        `koanf:"host"             validate:"required"`
	ReadTimeout     time.Duration `koanf:"read_timeout"     validate:"required,min=1s"`
	WriteTimeout    time.Duration `koanf:"write_timeout"    validate:"required,min=1s"`
	IdleTimeout     time.Duration `koanf:"idle_timeout"     validate:"required,min=1s"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout" validate:"required,min=1s"`
	RequestTimeout  time.Duration `koanf:"request_timeout"  validate:"required,min=100ms"`
	MaxRequestSize  int64         `koanf:"max_request_size" validate:"required,min=1"`
}

// LogConfig contains logging settings.
type LogConfig struct {
	Level     string        `koanf:"level"      validate:"required,oneof=trace debug info warn error"`
	Format    string        `koanf:"format"     validate:"required,oneof=json text pretty"`
	AddSource bool          `koanf:"add_source"`
	File      LogFileConfig `koanf:"file"`
}

// LogFileConfig contains rolling log file settings.
type LogFileConfig struct {
	Enabled    bool   `koanf:"enabled"`
	Path       string `koanf:"path"        validate:"required_if=Enabled true"`
	MaxSizeMB  int    `koanf:"max_size"    validate:"omitempty,min=1,max=1024"`
	MaxBackups int    `koanf:"max_backups" validate:"omitempty,min=0,max=100"`
	MaxAgeDays int    `koanf:"max_age"     validate:"omitempty,min=0,max=365"`
	Compress   bool   `koanf:"compress"`
}

// TelemetryConfig contains OpenTelemetry settings.
type TelemetryConfig struct {
	Enabled      bool    `koanf:"enabled"`
	Endpoint     string  `koanf:"endpoint"      validate:"required_if=Enabled true"`
	ServiceName  string  `koanf:"service_name"  validate:"required_if=Enabled true"`
	SamplingRate float64 `koanf:"sampling_rate" validate:"min=0,max=1"`
}

// DatabaseConfig contains the MySQL connection settings.
type DatabaseConfig struct {
	Host            string        `koanf:"host"               validate:"required,hostname_rfc1123|ip"`
	Port            int           `koanf:"port"               validate:"required,min=1,max=65535"`
	Name            string        `koanf:"name"               validate:"required"`
	User            string        `koanf:"user"               validate:"required"`
	Password        string        `koanf:"password"`
	Pooling         bool          `koanf:"pooling"`
	MaxOpenConns    int           `koanf:"max_open_conns"     validate:"min=0"`
	MaxIdleConns    int           `koanf:"max_idle_conns"     validate:"min=0"`
	ConnMaxIdleTime time.Duration `koanf:"conn_max_idle_time"`
	ConnMaxLifetime time.Duration `koanf:"conn_max_lifetime"`
	DialTimeout     time.Duration `koanf:"dial_timeout"       validate:"required,min=100ms"`
	MigrateOnStart  bool          `koanf:"migrate_on_start"`
}

// QuotesConfig contains paging and random-pick limits.
type QuotesConfig struct {
	MaxPageSize      uint32 `koanf:"max_page_size"      validate:"required,min=1"`
	DefaultPageSize  uint32 `koanf:"default_page_size"  validate:"required,min=1,ltefield=MaxPageSize"`
	RandomRetryLimit int    `koanf:"random_retry_limit" validate:"required,min=1,max=10"`
	ImportWorkers    int    `koanf:"import_workers"     validate:"required,min=1,max=32"`
}

// defaults returns the default configuration values.
func defaults() map[string]any {
	return map[string]any{
		"app.name":        "quotes-api",
		"app.version":     "dev",
		"app.environment": "local",
		"app.debug":       false,

		"server.port":             DefaultServerPort,
		"server.host":             "0.0.0.0",
		"server.read_timeout":     "30s",
		"server.write_timeout":    "30s",
		"server.idle_timeout":     "120s",
		"server.shutdown_timeout": "10s",
		"server.request_timeout":  "15s",
		"server.max_request_size": DefaultMaxRequestSize,

		"log.level":            "info",
		"log.format":           "json",
		"log.add_source":       false,
		"log.file.enabled":     false,
		"log.file.path":        "./logs/quotes-api.log",
		"log.file.max_size":    DefaultLogFileMaxSizeMB,
		"log.file.max_backups": DefaultLogFileMaxBackups,
		"log.file.max_age":     DefaultLogFileMaxAgeDays,
		"log.file.compress":    true,

		"telemetry.enabled":       false,
		"telemetry.endpoint":      "",
		"telemetry.service_name":  "quotes-api",
		"telemetry.sampling_rate": 1.0,

		"database.host":               "localhost",
		"database.port":               DefaultDatabasePort,
		"database.name":               "quotes",
		"database.user":               "quotes",
		"database.password":           "",
		"database.pooling":            true,
		"database.max_open_conns":     DefaultDatabaseMaxOpenConns,
		"database.max_idle_conns":     DefaultDatabaseMaxIdleConns,
		"database.conn_max_idle_time": "5m",
		"database.conn_max_lifetime":  "1h",
		"database.dial_timeout":       "5s",
		"database.migrate_on_start":   false,

		"quotes.max_page_size":      DefaultMaxPageSize,
		"quotes.default_page_size":  DefaultPageSize,
		"quotes.random_retry_limit": DefaultRandomRetryLimit,
		"quotes.import_workers":     DefaultImportWorkers,
	}
}

// Load reads configuration from DefaultDir. See LoadFrom.
func Load(profile string) (*Config, error) {
	return LoadFrom(DefaultDir, profile)
}

// LoadFrom loads configuration with the following precedence (highest to lowest):
//  1. Environment variables (APP_ prefix)
//  2. Profile config file ({dir}/{profile}.yaml)
//  3. Base config file ({dir}/base.yaml)
//  4. Default values
func LoadFrom(dir, profile string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("loading defaults: %w", err)
	}

	if err := loadFileIfExists(k, filepath.Join(dir, "base.yaml")); err != nil {
		return nil, fmt.Errorf("loading base config: %w", err)
	}

	if profile != "" {
		if err := loadFileIfExists(k, filepath.Join(dir, profile+".yaml")); err != nil {
			return nil, fmt.Errorf("loading profile config %q: %w", profile, err)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("loading env vars: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	return &cfg, nil
}

// envKey maps APP_LOG__FILE__MAX_SIZE to log.file.max_size.
func envKey(s string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "__", ".")
}

// loadFileIfExists loads a YAML config file if it exists.
func loadFileIfExists(k *koanf.Koanf, path string) error {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil
	}

	return k.Load(file.Provider(path), yaml.Parser())
}
