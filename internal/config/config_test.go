package config

import (
	"testing"
	"time"
)

func TestLoadConfig(t *testing.T) {
	t.Setenv("ENV_FILE", "does-not-exist.env")
	t.Setenv("MONGO_URL", "mongodb://mongo:27017")
	t.Setenv("DB_NAME", "portfolio_test")
	t.Setenv("MONGO_TIMEOUT", "3")
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("LOG_FILE", "/tmp/portfolio.log")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.MongoDB.URI != "mongodb://mongo:27017" || cfg.MongoDB.Database != "portfolio_test" {
		t.Fatalf("unexpected mongo config: %+v", cfg.MongoDB)
	}
	if cfg.MongoDB.Timeout != 3*time.Second {
		t.Fatalf("MongoDB.Timeout = %v, want 3s", cfg.MongoDB.Timeout)
	}
	if got := cfg.Server.Addr(); got != "0.0.0.0:9090" {
		t.Fatalf("Server.Addr() = %q", got)
	}
	if cfg.Log.File != "/tmp/portfolio.log" {
		t.Fatalf("Log.File = %q", cfg.Log.File)
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("ENV_FILE", "does-not-exist.env")
	t.Setenv("MONGO_URL", "")
	t.Setenv("DB_NAME", "")
	t.Setenv("SERVER_PORT", "")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.MongoDB.URI != "mongodb://localhost:27017" {
		t.Fatalf("default MONGO_URL not applied: %q", cfg.MongoDB.URI)
	}
	if cfg.MongoDB.Database != "portfolio_db" {
		t.Fatalf("default DB_NAME not applied: %q", cfg.MongoDB.Database)
	}
	if cfg.Server.Port != "8001" {
		t.Fatalf("default SERVER_PORT not applied: %q", cfg.Server.Port)
	}
	if cfg.API.Title == "" {
		t.Fatalf("expected default API title")
	}
}

func TestLoadConfigNonPositiveTimeout(t *testing.T) {
	t.Setenv("ENV_FILE", "does-not-exist.env")
	for _, v := range []string{"0", "-5"} {
		t.Setenv("MONGO_TIMEOUT", v)
		cfg, err := LoadConfig()
		if err != nil {
			t.Fatalf("LoadConfig failed: %v", err)
		}
		if cfg.MongoDB.Timeout != 10*time.Second {
			t.Fatalf("MONGO_TIMEOUT=%s: Timeout = %v, want 10s", v, cfg.MongoDB.Timeout)
		}
	}
}
