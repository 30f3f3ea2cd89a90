package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds the server settings read from the environment.
type Config struct {
	Port          string
	DBDriver      string
	DBPath        string
	DatabaseURL   string
	SeedPath      string
	RedisAddr     string
	CacheTTL      time.Duration
	AirportAPIURL string
	AirportAPIKey string
	HTTPTimeout   time.Duration
	CORSOrigins   []string
}

// Get returns the environment value for key, or fallback when unset or empty.
func Get(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getSeconds(key string, fallback int) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return time.Duration(fallback) * time.Second, nil
	}

	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("config: %s must be a non-negative integer, got %q", key, v)
	}
	return time.Duration(n) * time.Second, nil
}

// Load reads configuration from environment variables with local-run defaults.
func Load() (*Config, error) {
	cacheTTL, err := getSeconds("CACHE_TTL_SECONDS", 3600)
	if err != nil {
		return nil, err
	}

	httpTimeout, err := getSeconds("HTTP_TIMEOUT_SECONDS", 10)
	if err != nil {
		return nil, err
	}

	var origins []string
	for _, o := range strings.Split(Get("CORS_ORIGINS", "*"), ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}

	cfg := &Config{
		Port:          Get("PORT", "8080"),
		DBDriver:      strings.ToLower(Get("DB_DRIVER", "sqlite")),
		DBPath:        Get("DB_PATH", "data/app.db"),
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		SeedPath:      Get("SEED_PATH", "data/seeds/airports.json"),
		RedisAddr:     os.Getenv("REDIS_ADDR"),
		CacheTTL:      cacheTTL,
		AirportAPIURL: os.Getenv("AIRPORT_API_URL"),
		AirportAPIKey: os.Getenv("AIRPORT_API_KEY"),
		HTTPTimeout:   httpTimeout,
		CORSOrigins:   origins,
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that required settings for the chosen driver are present.
func (c *Config) Validate() error {
	switch c.DBDriver {
	case "sqlite":
		if strings.TrimSpace(c.DBPath) == "" {
			return errors.New("config: DB_PATH is required for the sqlite driver")
		}
	case "pgx", "postgres":
		if strings.TrimSpace(c.DatabaseURL) == "" {
			return errors.New("config: DATABASE_URL is required for the postgres driver")
		}
	default:
		return fmt.Errorf("config: unknown DB_DRIVER %q (want sqlite or pgx)", c.DBDriver)
	}
	return nil
}
