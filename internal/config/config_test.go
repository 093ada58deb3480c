package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"APP_NAME", "PORT", "SETTLE_DELAY", "FX_STRICT_RATES", "SHUTDOWN_TIMEOUT", "SHUTDOWN_TIMEOUT_SECONDS"} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if cfg.AppName != defaultAppName {
		t.Fatalf("expected default app name, got %q", cfg.AppName)
	}
	if cfg.Port != defaultPort {
		t.Fatalf("expected default port, got %q", cfg.Port)
	}
	if cfg.SettleDelay != 0 {
		t.Fatalf("expected no settle delay, got %s", cfg.SettleDelay)
	}
	if cfg.StrictRates {
		t.Fatal("strict rates should default off")
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("SETTLE_DELAY", "750ms")
	t.Setenv("FX_STRICT_RATES", "true")
	t.Setenv("SHUTDOWN_TIMEOUT_SECONDS", "5")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if cfg.Port != "9090" {
		t.Fatalf("expected port 9090, got %q", cfg.Port)
	}
	if cfg.SettleDelay != 750*time.Millisecond {
		t.Fatalf("expected settle delay 750ms, got %s", cfg.SettleDelay)
	}
	if !cfg.StrictRates {
		t.Fatal("expected strict rates on")
	}
	if cfg.ShutdownPeriod != 5*time.Second {
		t.Fatalf("expected shutdown 5s, got %s", cfg.ShutdownPeriod)
	}
}

func TestLoadRejectsBadValues(t *testing.T) {
	t.Setenv("SETTLE_DELAY", "-1s")
	if _, err := Load(); err == nil {
		t.Fatal("expected error for negative settle delay")
	}
}

func TestAddress(t *testing.T) {
	if got := (Config{Port: "8080"}).Address(); got != ":8080" {
		t.Fatalf("expected :8080, got %q", got)
	}
	if got := (Config{Port: ":9090"}).Address(); got != ":9090" {
		t.Fatalf("expected :9090, got %q", got)
	}
}
