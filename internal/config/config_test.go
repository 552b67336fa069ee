package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"frame-inbox/internal/config"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("expected nil err, got %v", err)
	}

	return path
}

// unsetEnv removes key for the duration of the test so file values are not overridden.
func unsetEnv(t *testing.T, key string) {
	t.Helper()

	t.Setenv(key, "")

	if err := os.Unsetenv(key); err != nil {
		t.Fatalf("expected nil err, got %v", err)
	}
}

func TestLoadConfigFrom_YAML(t *testing.T) {
	unsetEnv(t, "DATABASE_URL")
	unsetEnv(t, "STORAGE_ROOT")
	unsetEnv(t, "STORAGE_TIMEZONE")
	unsetEnv(t, "HTTP_PORT")

	path := writeFile(t, "config.yaml", `
database:
  url: postgres://u:p@localhost:5432/frames
storage:
  root: /tmp/frames
  timezone: UTC
http_server:
  port: 9090
`)

	cfg, err := config.LoadConfigFrom(path)
	if err != nil {
		t.Fatalf("expected nil err, got %v", err)
	}

	if cfg.Database.URL != "postgres://u:p@localhost:5432/frames" {
		t.Fatalf("unexpected database url %q", cfg.Database.URL)
	}

	if cfg.Storage.Root != "/tmp/frames" || cfg.HTTPServer.Port != 9090 {
		t.Fatalf("unexpected config %+v", cfg)
	}

	if cfg.HTTPServer.Timeout.Request != 30*time.Second {
		t.Fatalf("expected default request timeout 30s, got %v", cfg.HTTPServer.Timeout.Request)
	}

	loc, err := cfg.Storage.Location()
	if err != nil || loc != time.UTC {
		t.Fatalf("expected UTC, got %v, %v", loc, err)
	}
}

func TestLoadConfigFrom_EnvOnly(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/frames")
	t.Setenv("STORAGE_ROOT", "frames")
	t.Chdir(t.TempDir())

	cfg, err := config.LoadConfigFrom("")
	if err != nil {
		t.Fatalf("expected nil err, got %v", err)
	}

	if cfg.Database.URL != "postgres://localhost/frames" || cfg.Storage.Root != "frames" {
		t.Fatalf("unexpected config %+v", cfg)
	}
}

func TestLoadConfigFrom_MissingDatabaseURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Chdir(t.TempDir())

	_, err := config.LoadConfigFrom("")
	if !errors.Is(err, config.ErrDatabaseURLIsEmpty) {
		t.Fatalf("expected ErrDatabaseURLIsEmpty, got %v", err)
	}
}

func TestLoadConfigFrom_MissingFile(t *testing.T) {
	if _, err := config.LoadConfigFrom(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatalf("expected err, got nil")
	}
}

func TestLoadConfigFrom_InvalidTimezone(t *testing.T) {
	unsetEnv(t, "DATABASE_URL")
	unsetEnv(t, "KAFKA_BROKERS")
	unsetEnv(t, "STORAGE_TIMEZONE")

	path := writeFile(t, "config.yaml", `
database:
  url: postgres://localhost/frames
storage:
  timezone: Mars/Olympus
`)

	if _, err := config.LoadConfigFrom(path); err == nil {
		t.Fatalf("expected err, got nil")
	}
}

func TestLoadConfigFrom_KafkaWithoutBrokers(t *testing.T) {
	unsetEnv(t, "DATABASE_URL")
	unsetEnv(t, "KAFKA_BROKERS")
	unsetEnv(t, "STORAGE_TIMEZONE")

	path := writeFile(t, "config.yaml", `
database:
  url: postgres://localhost/frames
kafka:
  enable: true
`)

	if _, err := config.LoadConfigFrom(path); err == nil {
		t.Fatalf("expected err, got nil")
	}
}
