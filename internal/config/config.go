package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

var ErrMissingConfiguration = errors.New("missing required configuration")

// Config holds application configuration loaded from files, environment variables and flags.
type Config struct {
	Env  string `mapstructure:"env"`      // current application environment (local, dev, production etc)
	Log  Log    `mapstructure:"log"`      // logging configuration section
	DB   DB     `mapstructure:"database"` // database configuration section
	Quiz Quiz   `mapstructure:"quiz"`     // quiz behaviour section
}

// Log contains logger settings.
type Log struct {
	Level string `mapstructure:"level"` // minimum level: debug, info, warn, error
	File  string `mapstructure:"file"`  // optional log file, stderr when empty
}

// DB contains database-related configuration parameters.
type DB struct {
	Driver          string        `mapstructure:"driver"`            // sqlite or postgres
	URL             string        `mapstructure:"-"`                 // connection string loaded from environment or flags
	MaxOpenConns    int           `mapstructure:"max_open_conns"`    // maximum number of open connections in the pool
	MaxIdleConns    int           `mapstructure:"max_idle_conns"`    // maximum number of idle connections in the pool
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"` // maximum lifetime of a single connection
}

// Quiz contains settings of the quiz application itself.
type Quiz struct {
	Seed bool `mapstructure:"seed"` // store the example questions when the database is created
}

// IsPostgres reports whether the configured driver is PostgreSQL.
func (db DB) IsPostgres() bool {
	switch strings.ToLower(db.Driver) {
	case "postgres", "postgresql", "pg", "pgx":
		return true
	}
	return false
}

// RegisterFlags adds the command-line flags understood by Load.
func RegisterFlags(flags *pflag.FlagSet) {
	flags.String("env", "", "application environment (local, production)")
	flags.String("db-driver", "", "database driver (sqlite, postgres)")
	flags.String("db-dsn", "", "database connection string")
	flags.String("config", "", "path to a YAML config file")
	flags.String("log-level", "", "minimum log level (debug, info, warn, error)")
}

// Load reads configuration from the .env file, config files, environment variables and flags.
// Flags take precedence over environment variables, which take precedence over the config file.
// flags may be nil.
func Load(flags *pflag.FlagSet) (*Config, error) {
	// Populate the process environment from .env when present.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("error loading .env file: %w", err)
	}

	// Initialize Viper instance and base config options.
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")

	// Set default values for configuration keys.
	v.SetDefault("env", "local")
	v.SetDefault("log.level", "warn")
	v.SetDefault("log.file", "")
	v.SetDefault("database.driver", "sqlite")
	v.SetDefault("database.max_open_conns", 10)
	v.SetDefault("database.max_idle_conns", 5)
	v.SetDefault("database.conn_max_lifetime", "30m")
	v.SetDefault("quiz.seed", true)

	// Configure environment variable handling and key mapping.
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_")) // map nested keys to ENV style names
	v.AutomaticEnv()

	// Bind explicit environment variables to configuration keys.
	_ = v.BindEnv("env", "APP_ENV")
	_ = v.BindEnv("database.driver", "DATABASE_DRIVER")
	_ = v.BindEnv("database_url", "DATABASE_URL")
	_ = v.BindEnv("log.level", "LOG_LEVEL")

	explicitFile := false
	if flags != nil {
		bindFlag(v, flags, "env", "env")
		bindFlag(v, flags, "database.driver", "db-driver")
		bindFlag(v, flags, "database_url", "db-dsn")
		bindFlag(v, flags, "log.level", "log-level")

		if f := flags.Lookup("config"); f != nil && f.Value.String() != "" {
			v.SetConfigFile(f.Value.String())
			explicitFile = true
		}
	}

	// Try to read configuration file if present. An explicitly requested file must exist.
	if err := v.ReadInConfig(); err != nil {
		var fileLookupErr viper.ConfigFileNotFoundError
		if explicitFile || !errors.As(err, &fileLookupErr) {
			return nil, fmt.Errorf("error loading config file: %w", err)
		}
	}

	// Unmarshal configuration into strongly typed struct.
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}

	// SQLite falls back to a local file; PostgreSQL needs an explicit connection string.
	cfg.DB.URL = v.GetString("database_url")
	if cfg.DB.URL == "" && cfg.DB.IsPostgres() {
		return nil, fmt.Errorf("%w: DATABASE_URL is required for driver %q", ErrMissingConfiguration, cfg.DB.Driver)
	}

	return &cfg, nil
}

func bindFlag(v *viper.Viper, flags *pflag.FlagSet, key, name string) {
	if f := flags.Lookup(name); f != nil {
		_ = v.BindPFlag(key, f)
	}
}
