package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Server.Addr != ":8080" {
		t.Errorf("expected addr :8080, got %q", cfg.Server.Addr)
	}
	if cfg.Database.QueryTimeout != 3*time.Second {
		t.Errorf("expected query timeout 3s, got %v", cfg.Database.QueryTimeout)
	}
	if len(cfg.CORS.AllowedOrigins) != 1 || cfg.CORS.AllowedOrigins[0] != "http://localhost:5173" {
		t.Errorf("unexpected allowed origins: %v", cfg.CORS.AllowedOrigins)
	}
	if cfg.Server.Swagger {
		t.Error("expected swagger to be disabled by default")
	}
	if cfg.RateLimit.Backend != BackendMemory {
		t.Errorf("expected memory backend, got %q", cfg.RateLimit.Backend)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("DATABASE_URL", "postgres://user:pass@db:5432/store")
	t.Setenv("SERVER_ADDR", ":9090")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://localhost:5173,https://shop.example.com")
	t.Setenv("RATELIMIT_BACKEND", "redis")
	t.Setenv("DATABASE_QUERY_TIMEOUT", "750ms")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Database.URL != "postgres://user:pass@db:5432/store" {
		t.Errorf("unexpected database url %q", cfg.Database.URL)
	}
	if cfg.Server.Addr != ":9090" {
		t.Errorf("expected addr :9090, got %q", cfg.Server.Addr)
	}
	if len(cfg.CORS.AllowedOrigins) != 2 {
		t.Errorf("expected 2 allowed origins, got %v", cfg.CORS.AllowedOrigins)
	}
	if cfg.RateLimit.Backend != BackendRedis {
		t.Errorf("expected redis backend, got %q", cfg.RateLimit.Backend)
	}
	if cfg.Database.QueryTimeout != 750*time.Millisecond {
		t.Errorf("expected 750ms, got %v", cfg.Database.QueryTimeout)
	}
	if err := cfg.RequireDatabase(); err != nil {
		t.Errorf("expected database to be configured, got %v", err)
	}
}

func TestLoad_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	content := []byte("server:\n  swagger: true\nratelimit:\n  enabled: false\n")
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), content, 0o600); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !cfg.Server.Swagger {
		t.Error("expected swagger to be enabled from file")
	}
	if cfg.RateLimit.Enabled {
		t.Error("expected rate limiting to be disabled from file")
	}
}

func TestLoad_InvalidBackend(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("RATELIMIT_BACKEND", "memcached")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for unknown backend")
	}
}

func TestRequireDatabase_Missing(t *testing.T) {
	cfg := Config{}
	if err := cfg.RequireDatabase(); !errors.Is(err, ErrMissingDatabaseURL) {
		t.Errorf("expected ErrMissingDatabaseURL, got %v", err)
	}
}

// chdir changes the working directory for the duration of the test,
// mirroring testing.T.Chdir (Go 1.24+) for older toolchains.
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Errorf("restore working directory: %v", err)
		}
	})
}
