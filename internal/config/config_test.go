package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/boddenberg/cards-api-go/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	for _, k := range []string{"PORT", "STORE_BACKEND", "CACHE_TTL", "JWT_SECRET", "OTEL_EXPORTER_OTLP_ENDPOINT", "DB_AUTO_MIGRATE"} {
		t.Setenv(k, "")
	}

	cfg := config.Load()

	if cfg.Port != 8080 {
		t.Errorf("expected port 8080, got %d", cfg.Port)
	}
	if cfg.StoreBackend != config.BackendMemory {
		t.Errorf("expected memory backend, got %s", cfg.StoreBackend)
	}
	if cfg.CacheTTL != 5*time.Minute {
		t.Errorf("expected 5m cache ttl, got %v", cfg.CacheTTL)
	}
	if cfg.JWTSecret != "" || cfg.OTLPEndpoint != "" {
		t.Error("expected auth and tracing to be off by default")
	}
	if cfg.DBAutoMigrate {
		t.Error("expected auto-migrate off by default")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("expected defaults to validate, got %v", err)
	}
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("STORE_BACKEND", "Postgres")
	t.Setenv("DATABASE_URL", "postgres://localhost/cards")
	t.Setenv("DB_AUTO_MIGRATE", "true")
	t.Setenv("INITIAL_BACKOFF", "250ms")
	t.Setenv("MAX_PAGE_SIZE", "not-a-number")

	cfg := config.Load()

	if cfg.Port != 9090 {
		t.Errorf("expected port 9090, got %d", cfg.Port)
	}
	if cfg.StoreBackend != config.BackendPostgres {
		t.Errorf("expected postgres backend, got %s", cfg.StoreBackend)
	}
	if !cfg.DBAutoMigrate {
		t.Error("expected auto-migrate on")
	}
	if cfg.InitialBackoff != 250*time.Millisecond {
		t.Errorf("expected 250ms backoff, got %v", cfg.InitialBackoff)
	}
	if cfg.MaxPageSize != 100 {
		t.Errorf("expected invalid value to fall back to 100, got %d", cfg.MaxPageSize)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*config.Config)
		wantErr bool
	}{
		{"memory", func(c *config.Config) {}, false},
		{"postgres without url", func(c *config.Config) { c.StoreBackend = config.BackendPostgres }, true},
		{"postgres with url", func(c *config.Config) {
			c.StoreBackend = config.BackendPostgres
			c.DatabaseURL = "postgres://x"
		}, false},
		{"postgrest without url", func(c *config.Config) { c.StoreBackend = config.BackendPostgREST }, true},
		{"unknown backend", func(c *config.Config) { c.StoreBackend = "mongo" }, true},
		{"max below default", func(c *config.Config) { c.MaxPageSize = 5 }, true},
		{"negative retries", func(c *config.Config) { c.MaxRetries = -1 }, true},
		{"zero retries", func(c *config.Config) { c.MaxRetries = 0 }, false},
		{"zero concurrency", func(c *config.Config) { c.MaxConcurrency = 0 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &config.Config{
				StoreBackend:    config.BackendMemory,
				MaxRetries:      3,
				MaxConcurrency:  50,
				DefaultPageSize: 20,
				MaxPageSize:     100,
			}
			tt.mutate(cfg)
			if err := cfg.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	content := "# local settings\nCARDS_TEST_FROM_FILE=file\nCARDS_TEST_OVERRIDE=file\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}

	t.Setenv("CARDS_TEST_OVERRIDE", "env")
	t.Setenv("CARDS_TEST_FROM_FILE", "")
	os.Unsetenv("CARDS_TEST_FROM_FILE")

	if err := config.LoadDotEnv(path); err != nil {
		t.Fatalf("load: %v", err)
	}
	t.Cleanup(func() { os.Unsetenv("CARDS_TEST_FROM_FILE") })

	if got := os.Getenv("CARDS_TEST_FROM_FILE"); got != "file" {
		t.Errorf("expected value from file, got %q", got)
	}
	if got := os.Getenv("CARDS_TEST_OVERRIDE"); got != "env" {
		t.Errorf("expected environment to win, got %q", got)
	}
}

func TestLoadDotEnv_MissingFile(t *testing.T) {
	if err := config.LoadDotEnv(filepath.Join(t.TempDir(), "absent.env")); err != nil {
		t.Errorf("expected nil for missing file, got %v", err)
	}
}
