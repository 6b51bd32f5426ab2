package config

import (
	"fmt"
	"os"
	"strings"
	"time"
	_ "time/tzdata" // TIMEZONE must resolve on hosts without a zoneinfo database

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/ndewijer/Coffee-Trade-Manager-Backend/internal/fieldcrypt"
)

// Config holds all configuration for the application
type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	CORS      CORSConfig
	Security  SecurityConfig
	Scheduler SchedulerConfig
	Locale    LocaleConfig
	Log       LogConfig
}

// ServerConfig holds server-specific configuration
type ServerConfig struct {
	Port string
	Host string
	Addr string // Combined host:port for convenience
}

// DatabaseConfig holds database-specific configuration
type DatabaseConfig struct {
	Path string
}

// CORSConfig holds CORS-specific configuration
type CORSConfig struct {
	AllowedOrigins []string
}

// SecurityConfig holds the key used to encrypt personal data at rest.
// An empty key stores personal data in plaintext.
type SecurityConfig struct {
	FieldEncryptionKey string
}

// SchedulerConfig holds background job configuration
type SchedulerConfig struct {
	// SnapshotSchedule is a cron spec for the weekly snapshot job, or "off".
	SnapshotSchedule string
}

// Enabled reports whether the snapshot job should be scheduled.
func (c SchedulerConfig) Enabled() bool {
	return c.SnapshotSchedule != "" && c.SnapshotSchedule != "off"
}

// LocaleConfig holds the calendar used for period filtering
type LocaleConfig struct {
	Timezone string
	Location *time.Location
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level zerolog.Level
}

// Load reads configuration from environment variables and .env file
func Load() (*Config, error) {
	// Try to load .env file (ignore error if it doesn't exist)
	_ = godotenv.Load()

	config := &Config{
		Server: ServerConfig{
			Port: getEnv("SERVER_PORT", "5001"),
			Host: getEnv("SERVER_HOST", "localhost"),
		},
		Database: DatabaseConfig{
			Path: getEnv("DB_PATH", "./data/coffee_trade.db"),
		},
		CORS: CORSConfig{
			AllowedOrigins: getEnvList("CORS_ALLOWED_ORIGINS", []string{
				"http://localhost:3000",
				"http://localhost:5173",
			}),
		},
		Security: SecurityConfig{
			FieldEncryptionKey: getEnv("FIELD_ENCRYPTION_KEY", ""),
		},
		Scheduler: SchedulerConfig{
			SnapshotSchedule: getEnv("SNAPSHOT_SCHEDULE", "@hourly"),
		},
		Locale: LocaleConfig{
			Timezone: getEnv("TIMEZONE", "America/Bogota"),
		},
	}

	// Combine host and port
	config.Server.Addr = fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port)

	loc, err := time.LoadLocation(config.Locale.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid TIMEZONE %q: %w", config.Locale.Timezone, err)
	}
	config.Locale.Location = loc

	level, err := zerolog.ParseLevel(strings.ToLower(getEnv("LOG_LEVEL", "info")))
	if err != nil {
		return nil, fmt.Errorf("invalid LOG_LEVEL: %w", err)
	}
	config.Log.Level = level

	if config.Security.FieldEncryptionKey != "" {
		if _, err := fieldcrypt.New(config.Security.FieldEncryptionKey); err != nil {
			return nil, fmt.Errorf("invalid FIELD_ENCRYPTION_KEY: %w", err)
		}
	}

	return config, nil
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getEnvList splits a comma-separated environment variable, dropping empty items.
func getEnvList(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	var items []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}
