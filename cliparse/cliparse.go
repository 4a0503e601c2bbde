package cliparse

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"regexp"
	"strconv"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Supported reference store backends
const (
	DatabaseSQLite    = "sqlite"
	DatabasePostgres  = "postgres"
	DatabasePostgREST = "postgrest"
)

var tableNamePattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

type Config struct {
	Port         int           `env:"PORT" envDefault:"3318"`
	DatabaseType string        `env:"DATABASE_TYPE" envDefault:"sqlite"`
	DatabaseURL  string        `env:"DATABASE_URL"`
	DatabaseKey  string        `env:"DATABASE_KEY"`
	Table        string        `env:"ZIP_TABLE" envDefault:"zip_lookup"`
	InitSchema   bool          `env:"INIT_SCHEMA"`
	BrandName    string        `env:"BRAND_NAME" envDefault:"ZIP Finder"`
	APIBaseURL   string        `env:"API_BASE_URL"`
	UITimeout    time.Duration `env:"UI_TIMEOUT" envDefault:"10s"`
	LogLevel     string        `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat    string        `env:"LOG_FORMAT" envDefault:"json"`
}

// ParseFlags reads .env (if present), then the environment, then flags.
// Flags win over the environment.
func ParseFlags(args []string) (Config, error) {
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(); err != nil {
			return Config{}, fmt.Errorf("load .env: %w", err)
		}
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	fs := flag.NewFlagSet("zip-finder", flag.ContinueOnError)

	// Network config
	fs.IntVar(&cfg.Port, "p", cfg.Port, "Server port")
	fs.StringVar(&cfg.APIBaseURL, "api-base", cfg.APIBaseURL, "Base URL the UI uses to reach the lookup API")
	fs.DurationVar(&cfg.UITimeout, "ui-timeout", cfg.UITimeout, "Timeout for UI lookup requests")

	// Reference store
	fs.StringVar(&cfg.DatabaseType, "t", cfg.DatabaseType, "Store type (sqlite, postgres or postgrest)")
	fs.StringVar(&cfg.DatabaseURL, "d", cfg.DatabaseURL, "Database URL or REST endpoint")
	fs.StringVar(&cfg.DatabaseKey, "k", cfg.DatabaseKey, "REST access key (prefer env)")
	fs.StringVar(&cfg.Table, "table", cfg.Table, "Reference table name")
	fs.BoolVar(&cfg.InitSchema, "init-schema", cfg.InitSchema, "Create the reference table if missing (SQL stores only)")

	// Presentation and logging
	fs.StringVar(&cfg.BrandName, "brand", cfg.BrandName, "Brand name for the white-labeled UI")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level (debug, info, warn, error)")
	fs.StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "Log format (json or text)")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}

	if cfg.APIBaseURL == "" {
		cfg.APIBaseURL = "http://localhost:" + strconv.Itoa(cfg.Port)
	}

	return cfg, nil
}

func (cfg Config) validate() error {
	if cfg.Port <= 0 || cfg.Port > 65535 {
		return errors.New("invalid port")
	}

	switch cfg.DatabaseType {
	case DatabaseSQLite, DatabasePostgres:
	case DatabasePostgREST:
		// Secret - MUST be provided for the REST store
		if cfg.DatabaseKey == "" {
			return errors.New("DATABASE_KEY required for postgrest store (use -k or DATABASE_KEY env)")
		}
		if cfg.InitSchema {
			return errors.New("init-schema is not supported for postgrest store")
		}
	default:
		return fmt.Errorf("unknown database type %q", cfg.DatabaseType)
	}

	if cfg.DatabaseURL == "" {
		return errors.New("database URL required (use -d or DATABASE_URL env)")
	}
	if !tableNamePattern.MatchString(cfg.Table) {
		return fmt.Errorf("invalid table name %q", cfg.Table)
	}
	if cfg.UITimeout <= 0 {
		return errors.New("UI_TIMEOUT must be positive")
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		return fmt.Errorf("invalid log level %q", cfg.LogLevel)
	}
	switch cfg.LogFormat {
	case "json", "text":
	default:
		return fmt.Errorf("unknown log format %q", cfg.LogFormat)
	}

	return nil
}
