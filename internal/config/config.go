package config

import (
	"fmt"
	"log"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const minSecretLen = 32

type Config struct {
	APIBaseURL    string
	APITimeout    time.Duration
	DBDSN         string
	ServerPort    string
	SessionSecret string
	CookieSecure  bool
}

// AuditEnabled: журнал пишется только если задан DB_DSN
func (c *Config) AuditEnabled() bool {
	return c.DBDSN != ""
}

func Load() *Config {
	_ = godotenv.Load()

	cfg, err := FromEnv()
	if err != nil {
		log.Fatal(err)
	}
	return cfg
}

func FromEnv() (*Config, error) {
	cfg := &Config{
		APIBaseURL:    strings.TrimRight(os.Getenv("API_BASE_URL"), "/"),
		APITimeout:    15 * time.Second,
		DBDSN:         os.Getenv("DB_DSN"),
		ServerPort:    os.Getenv("SERVER_PORT"),
		SessionSecret: os.Getenv("SESSION_SECRET"),
	}

	if cfg.APIBaseURL == "" {
		return nil, fmt.Errorf("API_BASE_URL is not set")
	}
	if u, err := url.Parse(cfg.APIBaseURL); err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("API_BASE_URL is not a valid absolute URL: %q", cfg.APIBaseURL)
	}
	if cfg.ServerPort == "" {
		cfg.ServerPort = "8080"
	}
	if cfg.SessionSecret == "" {
		return nil, fmt.Errorf("SESSION_SECRET is not set")
	}
	if len(cfg.SessionSecret) < minSecretLen {
		return nil, fmt.Errorf("SESSION_SECRET must be at least %d bytes", minSecretLen)
	}

	if v := os.Getenv("API_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil || d <= 0 {
			return nil, fmt.Errorf("API_TIMEOUT: invalid duration %q", v)
		}
		cfg.APITimeout = d
	}

	if v := os.Getenv("COOKIE_SECURE"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("COOKIE_SECURE: %w", err)
		}
		cfg.CookieSecure = b
	}

	return cfg, nil
}
