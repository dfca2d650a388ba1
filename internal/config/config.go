package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	Security  SecurityConfig
	Transform TransformConfig
	Audit     AuditConfig
}

type ServerConfig struct {
	Port             string
	Host             string
	Environment      string
	ReadTimeout      time.Duration
	WriteTimeout     time.Duration
	CORSAllowOrigins []string
	BodyLimit        string
}

type DatabaseConfig struct {
	// Driver is "postgres" or "sqlite". Empty disables persistence.
	Driver          string
	Host            string
	Port            string
	User            string
	Password        string
	Name            string
	SSLMode         string
	SQLitePath      string
	MaxConnections  int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

type SecurityConfig struct {
	RateLimitPerSecond int
	RateLimitBurst     int
}

type TransformConfig struct {
	// PolicyFile is an optional YAML file with tag defaults and tolerance.
	PolicyFile string

	// Individual overrides, applied on top of the policy file.
	DefaultCardType         string
	DefaultRealm            string
	DefaultPresence         string
	DefaultRegion           string
	DefaultScheme           string
	ReconciliationTolerance string

	// PersistRequired turns a storage failure into a failed request instead of a logged warning.
	PersistRequired  bool
	BatchConcurrency int
	MaxBatchSize     int

	// StoreMaxFailures consecutive storage failures stop writes for StoreRetryAfter.
	StoreMaxFailures int
	StoreRetryAfter  time.Duration
}

type AuditConfig struct {
	// Retention is how long audit rows are kept. Zero keeps them forever.
	Retention     time.Duration
	SweepInterval time.Duration
}

// LoadDotEnv loads a .env file when one is present. A missing file is not an error.
func LoadDotEnv(filenames ...string) {
	if err := godotenv.Load(filenames...); err != nil && !os.IsNotExist(err) {
		slog.Warn("failed to load .env file", "error", err)
	}
}

func Load() *Config {
	config := &Config{
		Server: ServerConfig{
			Port:         getEnv("SERVER_PORT", "8080"),
			Host:         getEnv("SERVER_HOST", "localhost"),
			Environment:  getEnv("APP_ENV", "development"),
			ReadTimeout:  getDurationEnv("SERVER_READ_TIMEOUT", 15*time.Second),
			WriteTimeout: getDurationEnv("SERVER_WRITE_TIMEOUT", 15*time.Second),
			BodyLimit:    getEnv("SERVER_BODY_LIMIT", "2M"),
		},
		Database: DatabaseConfig{
			Driver:          getEnv("DB_DRIVER", "postgres"),
			Host:            getEnv("DB_HOST", "localhost"),
			Port:            getEnv("DB_PORT", "5432"),
			User:            getEnv("DB_USER", "statements_user"),
			Password:        getEnv("DB_PASSWORD", "statements_password"),
			Name:            getEnv("DB_NAME", "statements_db"),
			SSLMode:         getEnv("DB_SSL_MODE", "disable"),
			SQLitePath:      getEnv("DB_SQLITE_PATH", "statements.db"),
			MaxConnections:  getIntEnv("DB_MAX_CONNECTIONS", 25),
			MaxIdleConns:    getIntEnv("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetime: getDurationEnv("DB_CONN_MAX_LIFETIME", time.Hour),
		},
		Security: SecurityConfig{
			RateLimitPerSecond: getIntEnv("RATE_LIMIT_PER_SECOND", 20),
			RateLimitBurst:     getIntEnv("RATE_LIMIT_BURST", 40),
		},
		Transform: TransformConfig{
			PolicyFile:              getEnv("TRANSFORM_POLICY_FILE", ""),
			DefaultCardType:         getEnv("TRANSFORM_DEFAULT_CARD_TYPE", ""),
			DefaultRealm:            getEnv("TRANSFORM_DEFAULT_REALM", ""),
			DefaultPresence:         getEnv("TRANSFORM_DEFAULT_PRESENCE", ""),
			DefaultRegion:           getEnv("TRANSFORM_DEFAULT_REGION", ""),
			DefaultScheme:           getEnv("TRANSFORM_DEFAULT_SCHEME", ""),
			ReconciliationTolerance: getEnv("TRANSFORM_RECONCILIATION_TOLERANCE", ""),
			PersistRequired:         getBoolEnv("STATEMENT_PERSIST_REQUIRED", false),
			BatchConcurrency:        getIntEnv("TRANSFORM_BATCH_CONCURRENCY", 4),
			MaxBatchSize:            getIntEnv("TRANSFORM_MAX_BATCH_SIZE", 100),
			StoreMaxFailures:        getIntEnv("STATEMENT_STORE_MAX_FAILURES", 5),
			StoreRetryAfter:         getDurationEnv("STATEMENT_STORE_RETRY_AFTER", 30*time.Second),
		},
		Audit: AuditConfig{
			Retention:     getDurationEnv("AUDIT_RETENTION", 90*24*time.Hour),
			SweepInterval: getDurationEnv("AUDIT_RETENTION_SWEEP_INTERVAL", time.Hour),
		},
	}

	config.Server.CORSAllowOrigins = config.loadCORSAllowOrigins()

	return config
}

func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode)
}

// Enabled reports whether a statement store is configured.
func (c *DatabaseConfig) Enabled() bool {
	return c.Driver != "" && c.Driver != "none"
}

func (c *Config) IsDevelopment() bool {
	return c.Server.Environment == "development"
}

func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// loadCORSAllowOrigins retrieves CORS allowed origins from environment or returns default
func (c *Config) loadCORSAllowOrigins() []string {
	corsOrigins := os.Getenv("CORS_ALLOW_ORIGINS")

	if corsOrigins == "" {
		if c.IsProduction() {
			slog.Warn("CORS_ALLOW_ORIGINS not set in production environment, defaulting to '*'")
		}
		return []string{"*"}
	}

	origins := strings.Split(corsOrigins, ",")
	for i, origin := range origins {
		origins[i] = strings.TrimSpace(origin)
	}

	return origins
}
