package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port      string `env:"PORT,      default=8080"`
	Env       string `env:"ENV,       default=development"`
	JWTSecret string `env:"JWT_SECRET"`
	LogLevel  string `env:"LOG_LEVEL, default=info"`

	// TokenTTL is the lifetime of issued identity tokens.
	TokenTTL time.Duration `env:"TOKEN_TTL, default=24h"`
	// Timezone is the IANA zone job dates and times are read in.
	Timezone    string   `env:"TIMEZONE,     default=UTC"`
	CORSOrigins []string `env:"CORS_ORIGINS, default=*"`
	Cities      []string `env:"CITIES,       default=New York,Tel Aviv,Berlin,London,Paris"`

	RateLimit RateLimitConfig
	Mongo     MongoConfig
	Redis     RedisConfig
}

// RateLimitConfig bounds how fast one identity may submit applications.
type RateLimitConfig struct {
	ApplyPerMinute int `env:"APPLY_RATE_PER_MIN, default=30"`
	ApplyBurst     int `env:"APPLY_BURST,        default=5"`
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=gigboard"`
}

type RedisConfig struct {
	Addr           string        `env:"REDIS_ADDR,       default=localhost:6379"`
	Password       string        `env:"REDIS_PASSWORD"`
	DB             int           `env:"REDIS_DB,         default=0"`
	FilterCacheTTL time.Duration `env:"FILTER_CACHE_TTL, default=5m"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	cfg, err := load(context.Background(), envconfig.OsLookuper())
	if err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return cfg
}

func load(ctx context.Context, l envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{Target: &cfg, Lookuper: l}); err != nil {
		return nil, err
	}
	if _, err := cfg.Location(); err != nil {
		return nil, err
	}
	if cfg.IsProduction() && cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required when ENV=production")
	}
	return &cfg, nil
}

// Location resolves Timezone.
func (c *Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("TIMEZONE %q: %w", c.Timezone, err)
	}
	return loc, nil
}

func (c *Config) IsProduction() bool { return c.Env == "production" }
