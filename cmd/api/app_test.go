package main

import (
	"testing"
	"time"

	"refrigeracao_os/internal/config"
)

func TestSweepInterval(t *testing.T) {
	if got := sweepInterval(12 * time.Hour); got != maxSweepInterval {
		t.Fatalf("expected %s, got %s", maxSweepInterval, got)
	}
	if got := sweepInterval(time.Minute); got != time.Minute {
		t.Fatalf("expected 1m, got %s", got)
	}
	if got := sweepInterval(0); got != maxSweepInterval {
		t.Fatalf("expected %s for zero ttl, got %s", maxSweepInterval, got)
	}
}

func TestNewLocationProvider(t *testing.T) {
	var cfg config.Config
	if p := newLocationProvider(cfg); p != nil {
		t.Fatalf("expected nil provider without GEOCODER_URL")
	}

	cfg.Geocoder.URL = "https://nominatim.example"
	if p := newLocationProvider(cfg); p == nil {
		t.Fatalf("expected a provider when GEOCODER_URL is set")
	}
}

func TestNewApp(t *testing.T) {
	app := newApp()
	if app.DefaultCommand != "serve" {
		t.Fatalf("expected serve as default command, got %q", app.DefaultCommand)
	}
	names := map[string]bool{}
	for _, c := range app.Commands {
		names[c.Name] = true
	}
	if !names["serve"] || !names["migrate"] {
		t.Fatalf("expected serve and migrate commands, got %v", names)
	}
}
