package config

import (
	"strings"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.ListenAddr != "0.0.0.0:8080" {
		t.Errorf("unexpected listen addr %q", cfg.ListenAddr)
	}
	if cfg.Timezone.String() != "UTC" {
		t.Errorf("default timezone should be UTC, got %v", cfg.Timezone)
	}
	if !strings.Contains(cfg.DSN, "dbname=bustracker") {
		t.Errorf("unexpected DSN %q", cfg.DSN)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("DB_NAME", "fleet")
	t.Setenv("SERVICE_TIMEZONE", "Africa/Nairobi")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.ListenAddr != "0.0.0.0:9090" {
		t.Errorf("unexpected listen addr %q", cfg.ListenAddr)
	}
	if !strings.Contains(cfg.DSN, "dbname=fleet") {
		t.Errorf("unexpected DSN %q", cfg.DSN)
	}
	if cfg.Timezone.String() != "Africa/Nairobi" {
		t.Errorf("unexpected timezone %v", cfg.Timezone)
	}
}

func TestLoad_BadTimezone(t *testing.T) {
	t.Setenv("SERVICE_TIMEZONE", "Mars/Olympus_Mons")
	if _, err := Load(); err == nil {
		t.Fatal("expected an error for an unknown timezone")
	}
}
