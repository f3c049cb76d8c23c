package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/jadenpinto/QuizzifyApp/internal/config"
)

func TestNewLevels(t *testing.T) {
	tests := []struct {
		name    string
		cfg     config.Config
		wantErr bool
	}{
		{name: "development debug", cfg: config.Config{Env: "local", Log: config.Log{Level: "debug"}}},
		{name: "production warn", cfg: config.Config{Env: "production", Log: config.Log{Level: "warn"}}},
		{name: "invalid level", cfg: config.Config{Env: "local", Log: config.Log{Level: "loud"}}, wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			log, err := New(&tc.cfg)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("expected an error")
				}
				return
			}
			if err != nil {
				t.Fatalf("new logger: %v", err)
			}
			defer func() { _ = log.Sync() }()

			want, _ := zap.ParseAtomicLevel(tc.cfg.Log.Level)
			if !log.Core().Enabled(want.Level()) {
				t.Fatalf("expected level %s to be enabled", want.Level())
			}
			if want.Level() > zap.DebugLevel && log.Core().Enabled(want.Level()-1) {
				t.Fatalf("expected level below %s to be disabled", want.Level())
			}
		})
	}
}

func TestNewWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "quizzify.log")

	log, err := New(&config.Config{Env: "local", Log: config.Log{Level: "info", File: path}})
	if err != nil {
		t.Fatalf("new logger: %v", err)
	}
	log.Info("hello")
	_ = log.Sync()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	if !strings.Contains(string(data), "hello") {
		t.Fatalf("expected the log file to contain the message, got %q", data)
	}
}
