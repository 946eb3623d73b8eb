package config

import (
	"context"
	"testing"

	"github.com/sethvargo/go-envconfig"
)

func TestLoadFrom_Defaults(t *testing.T) {
	cfg, err := LoadFrom(context.Background(), envconfig.MapLookuper(map[string]string{
		"API_BASE_URL": "http://localhost:8000",
	}))
	if err != nil {
		t.Fatalf("LoadFrom returned error: %v", err)
	}

	if cfg.Port != "8080" || cfg.Env != "development" || cfg.LogLevel != "info" {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.API.BaseURL != "http://localhost:8000" {
		t.Fatalf("unexpected base url %q", cfg.API.BaseURL)
	}
	if cfg.Session.CookieName != "token" || cfg.Session.LoginPath != "/login" {
		t.Fatalf("unexpected session defaults: %+v", cfg.Session)
	}
	if !cfg.IsDevelopment() {
		t.Fatalf("expected development env")
	}
}

func TestLoadFrom_Overrides(t *testing.T) {
	cfg, err := LoadFrom(context.Background(), envconfig.MapLookuper(map[string]string{
		"API_BASE_URL":   "https://api.example.com",
		"PORT":           "3000",
		"ENV":            "production",
		"SESSION_COOKIE": "sid",
		"LOGIN_PATH":     "/signin",
	}))
	if err != nil {
		t.Fatalf("LoadFrom returned error: %v", err)
	}
	if cfg.Port != "3000" || cfg.IsDevelopment() {
		t.Fatalf("unexpected config: %+v", cfg)
	}
	if cfg.Session.CookieName != "sid" || cfg.Session.LoginPath != "/signin" {
		t.Fatalf("unexpected session config: %+v", cfg.Session)
	}
}

func TestLoadFrom_MissingBaseURL(t *testing.T) {
	if _, err := LoadFrom(context.Background(), envconfig.MapLookuper(map[string]string{})); err == nil {
		t.Fatalf("expected error when API_BASE_URL is unset")
	}
}
