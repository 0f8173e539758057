// Package config reads the storefront settings from the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port    string
	GinMode string

	StoreDriver   string
	MongoURI      string
	MongoDatabase string
	DatabaseURL   string
	RedisAddr     string

	SessionSecret string
	SessionTTL    time.Duration
	SecureCookies bool

	Google   OAuthClient
	Facebook OAuthClient

	AdminAPIKey        string
	CORSAllowedOrigins []string

	OtelExporter string
	OtelEndpoint string

	SeedDemoProducts bool
}

// OAuthClient is one provider's registered app. Empty ClientID disables it.
type OAuthClient struct {
	ClientID     string
	ClientSecret string
	CallbackURL  string
}

func (o OAuthClient) Enabled() bool { return o.ClientID != "" && o.ClientSecret != "" }

const (
	DriverMongo    = "mongo"
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

// Load reads .env when present, then the process environment.
func Load() (Config, error) {
	_ = godotenv.Load()
	return FromEnv()
}

// FromEnv builds a Config from the process environment only.
func FromEnv() (Config, error) {
	ttl, err := time.ParseDuration(getEnv("SESSION_TTL", "24h"))
	if err != nil {
		return Config{}, fmt.Errorf("invalid SESSION_TTL: %w", err)
	}

	cfg := Config{
		Port:    getEnv("PORT", "3000"),
		GinMode: getEnv("GIN_MODE", "release"),

		StoreDriver:   strings.ToLower(getEnv("STORE_DRIVER", DriverMongo)),
		MongoURI:      getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDatabase: getEnv("MONGO_DATABASE", "storefront"),
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		RedisAddr:     os.Getenv("REDIS_ADDR"),

		SessionSecret: os.Getenv("SESSION_SECRET"),
		SessionTTL:    ttl,
		SecureCookies: getBool("SECURE_COOKIES", false),

		Google: OAuthClient{
			ClientID:     os.Getenv("GOOGLE_CLIENT_ID"),
			ClientSecret: os.Getenv("GOOGLE_CLIENT_SECRET"),
			CallbackURL:  getEnv("GOOGLE_CALLBACK_URL", "http://localhost:3000/auth/google/userPage"),
		},
		Facebook: OAuthClient{
			ClientID:     os.Getenv("FACEBOOK_APP_ID"),
			ClientSecret: os.Getenv("FACEBOOK_APP_SECRET"),
			CallbackURL:  getEnv("FACEBOOK_CALLBACK_URL", "http://localhost:3000/auth/facebook/userPage"),
		},

		AdminAPIKey:        os.Getenv("ADMIN_API_KEY"),
		CORSAllowedOrigins: splitList(getEnv("CORS_ALLOWED_ORIGINS", "*")),

		OtelExporter: strings.ToLower(getEnv("OTEL_EXPORTER", "none")),
		OtelEndpoint: os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT"),

		SeedDemoProducts: getBool("SEED_DEMO_PRODUCTS", true),
	}

	switch cfg.StoreDriver {
	case DriverMongo, DriverMemory:
	case DriverPostgres:
		if cfg.DatabaseURL == "" {
			return Config{}, errors.New("DATABASE_URL is required for STORE_DRIVER=postgres")
		}
	default:
		return Config{}, fmt.Errorf("unknown STORE_DRIVER %q", cfg.StoreDriver)
	}

	if cfg.SessionSecret == "" {
		return Config{}, errors.New("SESSION_SECRET is required")
	}

	return cfg, nil
}

func getEnv(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func getBool(k string, d bool) bool {
	v, err := strconv.ParseBool(os.Getenv(k))
	if err != nil {
		return d
	}
	return v
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
