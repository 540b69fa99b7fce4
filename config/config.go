package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	DatabaseURL    string
	MaxWorkers     int
	MaxRetries     int
	BackoffBase    time.Duration
	BackoffCap     time.Duration
	RequestTimeout time.Duration
	MinDelay       time.Duration
	MaxDelay       time.Duration
	TSVPath        string
	SeedURLs       []string
}

func DefaultConfig() *Config {
	return &Config{
		MaxWorkers:     5,
		MaxRetries:     3,
		BackoffBase:    1 * time.Second,
		BackoffCap:     10 * time.Second,
		RequestTimeout: 30 * time.Second,
		MinDelay:       0,
		MaxDelay:       0,
		TSVPath:        "resources/eater/restaurants.tsv",
		SeedURLs: []string{
			"https://sf.eater.com/maps/best-restaurants-san-francisco-38",
			"https://sf.eater.com/maps/best-new-restaurants-san-francisco",
			"https://sf.eater.com/maps/best-sushi-restaurants-omakase-san-francisco",
		},
	}
}

// Load builds the config from a .env file (if present) and the environment.
// A missing DATABASE_URL is a startup failure, not something to retry.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := DefaultConfig()

	cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable is not set")
	}

	if v := os.Getenv("SCRAPER_WORKERS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			return nil, fmt.Errorf("invalid SCRAPER_WORKERS %q", v)
		}
		cfg.MaxWorkers = n
	}

	if v := os.Getenv("SCRAPER_TIMEOUT_SECONDS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			return nil, fmt.Errorf("invalid SCRAPER_TIMEOUT_SECONDS %q", v)
		}
		cfg.RequestTimeout = time.Duration(n) * time.Second
	}

	if v := os.Getenv("SCRAPER_TSV_PATH"); v != "" {
		cfg.TSVPath = v
	}

	return cfg, nil
}
