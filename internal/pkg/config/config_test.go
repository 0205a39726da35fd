package config

import (
	"context"
	"testing"
	"time"

	"github.com/sethvargo/go-envconfig"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := load(context.Background(), envconfig.MapLookuper(map[string]string{}))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Port != "8080" || cfg.Env != "development" {
		t.Fatalf("unexpected defaults: port=%s env=%s", cfg.Port, cfg.Env)
	}
	if cfg.TokenTTL != 24*time.Hour {
		t.Fatalf("expected 24h token ttl, got %v", cfg.TokenTTL)
	}
	if len(cfg.Cities) != 5 || cfg.Cities[1] != "Tel Aviv" {
		t.Fatalf("unexpected cities: %v", cfg.Cities)
	}
	if cfg.Mongo.Database != "gigboard" || cfg.Redis.FilterCacheTTL != 5*time.Minute {
		t.Fatalf("unexpected store defaults: %+v %+v", cfg.Mongo, cfg.Redis)
	}
	if cfg.RateLimit.ApplyPerMinute != 30 || cfg.RateLimit.ApplyBurst != 5 {
		t.Fatalf("unexpected rate limit defaults: %+v", cfg.RateLimit)
	}
}

func TestLoad_Overrides(t *testing.T) {
	cfg, err := load(context.Background(), envconfig.MapLookuper(map[string]string{
		"TIMEZONE":     "Asia/Jerusalem",
		"CITIES":       "Haifa,Eilat",
		"TOKEN_TTL":    "2h",
		"CORS_ORIGINS": "https://a.example,https://b.example",
	}))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	loc, err := cfg.Location()
	if err != nil {
		t.Fatalf("location: %v", err)
	}
	if loc.String() != "Asia/Jerusalem" {
		t.Fatalf("unexpected location %s", loc)
	}
	if len(cfg.Cities) != 2 || len(cfg.CORSOrigins) != 2 || cfg.TokenTTL != 2*time.Hour {
		t.Fatalf("overrides not applied: %+v", cfg)
	}
}

func TestLoad_Rejects(t *testing.T) {
	if _, err := load(context.Background(), envconfig.MapLookuper(map[string]string{"TIMEZONE": "Mars/Olympus"})); err == nil {
		t.Fatal("expected an error for an unknown time zone")
	}
	if _, err := load(context.Background(), envconfig.MapLookuper(map[string]string{"ENV": "production"})); err == nil {
		t.Fatal("expected an error for a production config without JWT_SECRET")
	}
}
