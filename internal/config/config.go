package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Store backend names.
const (
	StoreBackendMemory   = "memory"
	StoreBackendFile     = "file"
	StoreBackendPostgres = "postgres"
)

// Config holds all application configuration.
type Config struct {
	Server   ServerConfig
	Store    StoreConfig
	Logger   LoggerConfig
	Auth     AuthConfig
	CEP      CEPConfig
	Backup   BackupConfig
	Checkout CheckoutConfig
}

// ServerConfig holds server-related configuration.
type ServerConfig struct {
	Host string
	Port int
}

// StoreConfig selects and configures the durable store backend.
type StoreConfig struct {
	Backend  string // "memory", "file" or "postgres"
	FileDir  string // directory for the file backend
	Postgres PostgresConfig
}

// PostgresConfig holds connection settings for the postgres backend.
type PostgresConfig struct {
	Host            string
	Port            int
	User            string
	Password        string
	Database        string
	MaxConnections  int
	MinConnections  int
	MaxConnLifetime int // seconds
}

// LoggerConfig holds logger-related configuration.
type LoggerConfig struct {
	Level  string
	Format string // "json" or "console"
}

// AuthConfig holds authentication configuration.
type AuthConfig struct {
	APIKey string
}

// CEPConfig holds settings for the postal-code lookup client.
type CEPConfig struct {
	BaseURL string
	Timeout time.Duration
}

// BackupConfig holds settings for collection snapshot backups.
type BackupConfig struct {
	Enabled  bool
	S3Bucket string
	S3Region string
	S3Prefix string // key prefix within the bucket (e.g. "snapshots/")
	LocalDir string // fallback directory when S3 is unavailable
}

// CheckoutConfig holds checkout flow settings.
type CheckoutConfig struct {
	// PaymentDelay is how long the simulated payment step takes.
	PaymentDelay time.Duration
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Host: getEnv("SERVER_HOST", "0.0.0.0"),
			Port: getEnvAsInt("SERVER_PORT", 8080),
		},
		Store: StoreConfig{
			Backend: getEnv("STORE_BACKEND", StoreBackendFile),
			FileDir: getEnv("STORE_FILE_DIR", "data/store"),
			Postgres: PostgresConfig{
				Host:            getEnv("DB_HOST", "localhost"),
				Port:            getEnvAsInt("DB_PORT", 5432),
				User:            getEnv("DB_USER", "postgres"),
				Password:        getEnv("DB_PASSWORD", ""),
				Database:        getEnv("DB_NAME", "minierp"),
				MaxConnections:  getEnvAsInt("DB_MAX_CONNECTIONS", 25),
				MinConnections:  getEnvAsInt("DB_MIN_CONNECTIONS", 5),
				MaxConnLifetime: getEnvAsInt("DB_MAX_CONN_LIFETIME", 300),
			},
		},
		Logger: LoggerConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
		Auth: AuthConfig{
			APIKey: getEnv("API_KEY", ""),
		},
		CEP: CEPConfig{
			BaseURL: getEnv("CEP_BASE_URL", "https://viacep.com.br"),
			Timeout: getEnvAsDuration("CEP_TIMEOUT", 5*time.Second),
		},
		Backup: BackupConfig{
			Enabled:  getEnvAsBool("BACKUP_ENABLED", false),
			S3Bucket: getEnv("BACKUP_S3_BUCKET", ""),
			S3Region: getEnv("BACKUP_S3_REGION", "us-east-1"),
			S3Prefix: getEnv("BACKUP_S3_PREFIX", "snapshots/"),
			LocalDir: getEnv("BACKUP_LOCAL_DIR", "data/backups"),
		},
		Checkout: CheckoutConfig{
			PaymentDelay: getEnvAsDuration("CHECKOUT_PAYMENT_DELAY", 2*time.Second),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}

	switch c.Store.Backend {
	case StoreBackendMemory:
	case StoreBackendFile:
		if c.Store.FileDir == "" {
			return fmt.Errorf("store file directory is required for the file backend")
		}
	case StoreBackendPostgres:
		pg := c.Store.Postgres
		if pg.Host == "" {
			return fmt.Errorf("database host is required")
		}
		if pg.Port < 1 || pg.Port > 65535 {
			return fmt.Errorf("invalid database port: %d", pg.Port)
		}
		if pg.User == "" {
			return fmt.Errorf("database user is required")
		}
		if pg.Database == "" {
			return fmt.Errorf("database name is required")
		}
		if pg.MaxConnections < 1 {
			return fmt.Errorf("database max connections must be at least 1")
		}
		if pg.MinConnections < 1 {
			return fmt.Errorf("database min connections must be at least 1")
		}
		if pg.MinConnections > pg.MaxConnections {
			return fmt.Errorf("database min connections cannot exceed max connections")
		}
	default:
		return fmt.Errorf("invalid store backend: %s (must be memory, file or postgres)", c.Store.Backend)
	}

	if c.Auth.APIKey == "" {
		return fmt.Errorf("API key is required")
	}

	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}

	if !validLogLevels[c.Logger.Level] {
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", c.Logger.Level)
	}

	if c.Logger.Format != "json" && c.Logger.Format != "console" {
		return fmt.Errorf("invalid log format: %s (must be json or console)", c.Logger.Format)
	}

	if c.CEP.BaseURL == "" {
		return fmt.Errorf("CEP base URL is required")
	}

	if c.Backup.Enabled && c.Backup.S3Bucket == "" && c.Backup.LocalDir == "" {
		return fmt.Errorf("backup requires an S3 bucket or a local directory")
	}

	return nil
}

// ConnectionString returns the PostgreSQL connection string.
func (c *PostgresConfig) ConnectionString() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=disable",
		c.User,
		c.Password,
		c.Host,
		c.Port,
		c.Database,
	)
}

// Address returns the server address.
func (c *ServerConfig) Address() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// getEnv retrieves an environment variable or returns a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt retrieves an environment variable as an integer or returns a default value.
func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvAsBool retrieves an environment variable as a boolean or returns a default value.
func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

// getEnvAsDuration retrieves an environment variable as a duration or returns a default value.
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
