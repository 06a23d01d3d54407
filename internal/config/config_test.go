package config_test

import (
	"strings"
	"testing"

	"github.com/cinegraph/cinegraph/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if cfg.Port != "3030" {
		t.Errorf("expected default port 3030, got %s", cfg.Port)
	}

	if cfg.ListenHost != "127.0.0.1" {
		t.Errorf("expected default listen host 127.0.0.1, got %s", cfg.ListenHost)
	}

	if cfg.DataDir != "dataset" {
		t.Errorf("expected default data dir dataset, got %s", cfg.DataDir)
	}

	if cfg.Addr() != "127.0.0.1:3030" {
		t.Errorf("expected addr 127.0.0.1:3030, got %s", cfg.Addr())
	}

	if cfg.Caps.Titles != 100_000 || cfg.Caps.Principals != 500_000 {
		t.Errorf("unexpected default caps: %+v", cfg.Caps)
	}
}

func TestLoad_CapOverride(t *testing.T) {
	t.Setenv("MAX_TITLES", "500")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Caps.Titles != 500 {
		t.Errorf("expected titles cap 500, got %d", cfg.Caps.Titles)
	}

	if cfg.Caps.People != 100_000 {
		t.Errorf("expected people cap untouched, got %d", cfg.Caps.People)
	}
}

func TestLoad_InvalidCap(t *testing.T) {
	t.Setenv("MAX_RATINGS", "zero")

	if _, err := config.Load(); err == nil {
		t.Fatal("expected error for non-numeric cap")
	}
}

func TestLoad_InvalidPort(t *testing.T) {
	t.Setenv("PORT", "99999")

	if _, err := config.Load(); err == nil || !strings.Contains(err.Error(), "PORT") {
		t.Fatalf("expected PORT validation error, got %v", err)
	}
}

func TestLoad_InvalidListenHost(t *testing.T) {
	t.Setenv("LISTEN_HOST", "203.0.113.7")

	if _, err := config.Load(); err == nil || !strings.Contains(err.Error(), "LISTEN_HOST") {
		t.Fatalf("expected LISTEN_HOST validation error, got %v", err)
	}
}

func TestLoad_CORSValidation(t *testing.T) {
	tests := []struct {
		name    string
		origins string
		wantErr bool
	}{
		{name: "valid", origins: "http://localhost:3000,https://app.example.com", wantErr: false},
		{name: "wildcard", origins: "*", wantErr: true},
		{name: "glob", origins: "https://*.example.com", wantErr: true},
		{name: "no scheme", origins: "example.com", wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv("CORS_ORIGINS", tc.origins)

			_, err := config.Load()
			if tc.wantErr && err == nil {
				t.Fatal("expected error")
			}
			if !tc.wantErr && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestLoad_InvalidLogLevel(t *testing.T) {
	t.Setenv("LOG_LEVEL", "verbose")

	if _, err := config.Load(); err == nil || !strings.Contains(err.Error(), "LOG_LEVEL") {
		t.Fatalf("expected LOG_LEVEL validation error, got %v", err)
	}
}
