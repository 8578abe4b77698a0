package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Supported values of DB_DRIVER.
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

type Config struct {
	HTTPPort string `envconfig:"HTTP_PORT" default:"8080"`

	DBDriver string `envconfig:"DB_DRIVER" default:"postgres"`
	// DBDSN overrides the DB_HOST.. settings for postgres; for sqlite it is
	// the database file.
	DBDSN      string `envconfig:"DB_DSN"`
	DBHost     string `envconfig:"DB_HOST" default:"localhost"`
	DBPort     string `envconfig:"DB_PORT" default:"5432"`
	DBUser     string `envconfig:"DB_USER"`
	DBPassword string `envconfig:"DB_PASSWORD"`
	DBName     string `envconfig:"DB_NAME" default:"quotation"`
	DBSslMode  string `envconfig:"DB_SSLMODE" default:"disable"`

	ExpirySchedule string `envconfig:"QUOTE_EXPIRY_SCHEDULE" default:"0 0 * * * *"`
	JobsEnabled    bool   `envconfig:"JOBS_ENABLED" default:"true"`

	// The background jobs act as this administrator.
	SystemUserID    string `envconfig:"SYSTEM_USER_ID" default:"system"`
	SystemUserEmail string `envconfig:"SYSTEM_USER_EMAIL"`

	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
}

// LoadConfig reads envFile into the environment when it exists, then parses
// the environment. Variables already set win over the file.
func LoadConfig(envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("loading %s: %w", envFile, err)
		}
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config: %w", err)
	}

	cfg.DBDriver = strings.ToLower(strings.TrimSpace(cfg.DBDriver))
	if cfg.DBDriver == "" {
		cfg.DBDriver = DriverPostgres
	}
	switch cfg.DBDriver {
	case DriverPostgres:
	case DriverSQLite:
		if cfg.DBDSN == "" {
			cfg.DBDSN = "quotation.db"
		}
	default:
		return Config{}, fmt.Errorf("unsupported DB_DRIVER %q", cfg.DBDriver)
	}
	return cfg, nil
}

// DSN is the connection string handed to the gorm driver.
func (c Config) DSN() string {
	if c.DBDSN != "" || c.DBDriver == DriverSQLite {
		return c.DBDSN
	}
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}
