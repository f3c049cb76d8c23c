package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/pflag"
)

func clearEnv(t *testing.T) {
	t.Helper()

	for _, key := range []string{"APP_ENV", "DATABASE_DRIVER", "DATABASE_URL", "LOG_LEVEL", "QUIZ_SEED"} {
		t.Setenv(key, "")
	}
}

func newFlags(t *testing.T, args ...string) *pflag.FlagSet {
	t.Helper()

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	RegisterFlags(flags)
	if err := flags.Parse(args); err != nil {
		t.Fatalf("parse flags: %v", err)
	}
	return flags
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(nil)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if cfg.Env != "local" {
		t.Fatalf("expected env local, got %q", cfg.Env)
	}
	if cfg.DB.Driver != "sqlite" {
		t.Fatalf("expected driver sqlite, got %q", cfg.DB.Driver)
	}
	if cfg.DB.URL != "" {
		t.Fatalf("expected empty dsn, got %q", cfg.DB.URL)
	}
	if cfg.DB.ConnMaxLifetime != 30*time.Minute {
		t.Fatalf("expected 30m lifetime, got %s", cfg.DB.ConnMaxLifetime)
	}
	if !cfg.Quiz.Seed {
		t.Fatalf("expected seeding to be enabled by default")
	}
	if cfg.Log.Level != "warn" {
		t.Fatalf("expected log level warn, got %q", cfg.Log.Level)
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	clearEnv(t)
	t.Setenv("APP_ENV", "production")
	t.Setenv("DATABASE_DRIVER", "postgres")
	t.Setenv("DATABASE_URL", "postgres://quiz@localhost/quizzify")
	t.Setenv("QUIZ_SEED", "false")

	cfg, err := Load(nil)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if cfg.Env != "production" {
		t.Fatalf("expected env production, got %q", cfg.Env)
	}
	if !cfg.DB.IsPostgres() {
		t.Fatalf("expected postgres driver, got %q", cfg.DB.Driver)
	}
	if cfg.DB.URL != "postgres://quiz@localhost/quizzify" {
		t.Fatalf("unexpected dsn %q", cfg.DB.URL)
	}
	if cfg.Quiz.Seed {
		t.Fatalf("expected seeding to be disabled")
	}
}

func TestLoadPostgresRequiresDSN(t *testing.T) {
	clearEnv(t)
	t.Setenv("DATABASE_DRIVER", "postgres")

	if _, err := Load(nil); !errors.Is(err, ErrMissingConfiguration) {
		t.Fatalf("expected ErrMissingConfiguration, got %v", err)
	}
}

func TestFlagsOverrideEnvironment(t *testing.T) {
	clearEnv(t)
	t.Setenv("APP_ENV", "dev")
	t.Setenv("DATABASE_URL", "file:env.db")

	flags := newFlags(t, "--env", "production", "--db-dsn", "file:flag.db", "--log-level", "debug")

	cfg, err := Load(flags)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if cfg.Env != "production" {
		t.Fatalf("expected env from flag, got %q", cfg.Env)
	}
	if cfg.DB.URL != "file:flag.db" {
		t.Fatalf("expected dsn from flag, got %q", cfg.DB.URL)
	}
	if cfg.Log.Level != "debug" {
		t.Fatalf("expected log level from flag, got %q", cfg.Log.Level)
	}
}

func TestUnsetFlagsKeepEnvironment(t *testing.T) {
	clearEnv(t)
	t.Setenv("APP_ENV", "dev")

	cfg, err := Load(newFlags(t))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Env != "dev" {
		t.Fatalf("expected env from environment, got %q", cfg.Env)
	}
}

func TestLoadExplicitConfigFile(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "quizzify.yaml")
	content := []byte("env: staging\ndatabase:\n  driver: sqlite\n  max_open_conns: 3\nquiz:\n  seed: false\n")
	if err := os.WriteFile(path, content, 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(newFlags(t, "--config", path))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Env != "staging" || cfg.DB.MaxOpenConns != 3 || cfg.Quiz.Seed {
		t.Fatalf("config file values not applied: %+v", cfg)
	}
}

func TestLoadMissingExplicitConfigFile(t *testing.T) {
	clearEnv(t)

	flags := newFlags(t, "--config", filepath.Join(t.TempDir(), "missing.yaml"))
	if _, err := Load(flags); err == nil {
		t.Fatalf("expected an error for a missing config file")
	}
}
