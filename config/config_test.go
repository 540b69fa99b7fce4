package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingDatabaseURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DATABASE_URL")
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/eater")
	t.Setenv("SCRAPER_WORKERS", "")
	t.Setenv("SCRAPER_TIMEOUT_SECONDS", "")
	t.Setenv("SCRAPER_TSV_PATH", "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.MaxWorkers)
	assert.Equal(t, 3, cfg.MaxRetries)
	assert.Equal(t, 1*time.Second, cfg.BackoffBase)
	assert.Equal(t, 10*time.Second, cfg.BackoffCap)
	assert.Equal(t, 30*time.Second, cfg.RequestTimeout)
	assert.NotEmpty(t, cfg.SeedURLs)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/eater")
	t.Setenv("SCRAPER_WORKERS", "10")
	t.Setenv("SCRAPER_TIMEOUT_SECONDS", "5")
	t.Setenv("SCRAPER_TSV_PATH", "/tmp/out.tsv")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 10, cfg.MaxWorkers)
	assert.Equal(t, 5*time.Second, cfg.RequestTimeout)
	assert.Equal(t, "/tmp/out.tsv", cfg.TSVPath)
}

func TestLoad_InvalidWorkers(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/eater")
	t.Setenv("SCRAPER_WORKERS", "zero")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SCRAPER_WORKERS")
}
