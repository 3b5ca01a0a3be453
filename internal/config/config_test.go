package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{"PORT", "BACKEND_BASE_URL", "HTTP_TIMEOUT", "ITEM_FETCH_CONCURRENCY", "KAFKA_BROKERS", "REDIS_URL"} {
		t.Setenv(k, "")
	}
	cfg := Load()
	assert.Equal(t, "3000", cfg.ServerPort)
	assert.Equal(t, "http://localhost:8000/api/v1", cfg.BackendBaseURL)
	assert.Equal(t, time.Duration(0), cfg.HTTPTimeout)
	assert.Equal(t, 10, cfg.ItemFetchConcurrency)
	assert.Empty(t, cfg.KafkaBrokers)
	assert.Empty(t, cfg.RedisURL)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("BACKEND_BASE_URL", "http://backend:9000/api/v1/")
	t.Setenv("HTTP_TIMEOUT", "5s")
	t.Setenv("ITEM_FETCH_CONCURRENCY", "nope")
	t.Setenv("KAFKA_BROKERS", "k1:9092, k2:9092,")

	cfg := Load()
	assert.Equal(t, "http://backend:9000/api/v1", cfg.BackendBaseURL)
	assert.Equal(t, 5*time.Second, cfg.HTTPTimeout)
	assert.Equal(t, 10, cfg.ItemFetchConcurrency)
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.KafkaBrokers)
}
