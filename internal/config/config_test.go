package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeYAML(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write yaml: %v", err)
	}
	return path
}

const validYAML = `
database:
  dsn: "postgres://u:p@localhost:5432/testdb"
  max_conns: 10
  min_conns: 2
  max_conn_lifetime: "30m"

log:
  level: "debug"
  format: "text"
`

func TestLoad_ValidYAML(t *testing.T) {
	dir := t.TempDir()
	path := writeYAML(t, dir, validYAML)
	t.Setenv("CONFIG_PATH", path)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Database.DSN != "postgres://u:p@localhost:5432/testdb" {
		t.Errorf("database.dsn = %q", cfg.Database.DSN)
	}
	if cfg.Database.MaxConns != 10 {
		t.Errorf("database.max_conns = %d, want 10", cfg.Database.MaxConns)
	}
	if cfg.Database.MinConns != 2 {
		t.Errorf("database.min_conns = %d, want 2", cfg.Database.MinConns)
	}
	if cfg.Database.MaxConnLifetime != 30*time.Minute {
		t.Errorf("database.max_conn_lifetime = %v, want 30m", cfg.Database.MaxConnLifetime)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("log.level = %q, want %q", cfg.Log.Level, "debug")
	}
	if cfg.Log.Format != "text" {
		t.Errorf("log.format = %q, want %q", cfg.Log.Format, "text")
	}
}

func TestLoad_EnvOverridesYAML(t *testing.T) {
	dir := t.TempDir()
	path := writeYAML(t, dir, validYAML)
	t.Setenv("CONFIG_PATH", path)
	t.Setenv("DATABASE_MAX_CONNS", "42")
	t.Setenv("LOG_LEVEL", "error")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Database.MaxConns != 42 {
		t.Errorf("database.max_conns = %d, want env override 42", cfg.Database.MaxConns)
	}
	if cfg.Log.Level != "error" {
		t.Errorf("log.level = %q, want env override %q", cfg.Log.Level, "error")
	}
}

func TestLoad_EnvOnly(t *testing.T) {
	t.Setenv("CONFIG_PATH", "")
	t.Setenv("DATABASE_DSN", "postgres://u:p@localhost:5432/envdb")

	// Run from a directory without a config.yaml so only env applies.
	t.Chdir(t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Database.DSN != "postgres://u:p@localhost:5432/envdb" {
		t.Errorf("database.dsn = %q", cfg.Database.DSN)
	}
	// Defaults fill everything else.
	if cfg.Database.MaxConns != 25 {
		t.Errorf("database.max_conns = %d, want default 25", cfg.Database.MaxConns)
	}
	if cfg.Log.Format != "json" {
		t.Errorf("log.format = %q, want default %q", cfg.Log.Format, "json")
	}
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	t.Setenv("CONFIG_PATH", filepath.Join(t.TempDir(), "does-not-exist.yaml"))

	if _, err := Load(); err == nil {
		t.Fatal("expected error for missing explicit config file")
	}
}

func TestLoad_MissingRequiredDSN(t *testing.T) {
	t.Setenv("CONFIG_PATH", "")
	t.Chdir(t.TempDir())

	// t.Setenv cannot unset; remove the variable and restore it manually.
	if prev, ok := os.LookupEnv("DATABASE_DSN"); ok {
		os.Unsetenv("DATABASE_DSN")
		t.Cleanup(func() { os.Setenv("DATABASE_DSN", prev) })
	}

	if _, err := Load(); err == nil {
		t.Fatal("expected error when DATABASE_DSN is missing")
	}
}
