package config

import (
	"testing"
	"time"
)

func TestLoadRequiresSecret(t *testing.T) {
	t.Setenv("TASKDESK_AUTH_SECRET", "")
	if _, err := Load(); err == nil {
		t.Fatal("expected error when auth secret is missing")
	}
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("TASKDESK_AUTH_SECRET", "test-secret")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Addr != ":8080" {
		t.Fatalf("unexpected addr: %s", cfg.Addr)
	}
	if cfg.TokenTTL != 30*time.Minute {
		t.Fatalf("unexpected token ttl: %s", cfg.TokenTTL)
	}
	if cfg.InitialUserEmail != "admin@example.com" {
		t.Fatalf("unexpected initial user email: %s", cfg.InitialUserEmail)
	}
	if cfg.PGDSN != "" {
		t.Fatalf("expected empty DSN by default, got %s", cfg.PGDSN)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("TASKDESK_AUTH_SECRET", "test-secret")
	t.Setenv("TASKDESK_ADDR", ":9090")
	t.Setenv("TASKDESK_TOKEN_TTL", "1h")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Addr != ":9090" {
		t.Fatalf("unexpected addr: %s", cfg.Addr)
	}
	if cfg.TokenTTL != time.Hour {
		t.Fatalf("unexpected token ttl: %s", cfg.TokenTTL)
	}
}
