package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	ServerPort string
	AppName    string

	// REST backend and the auxiliary services, each with its own base URL.
	BackendBaseURL   string
	PlanningBaseURL  string
	ForecastBaseURL  string
	ReportingBaseURL string
	// HTTPTimeout of zero leaves outbound calls without a deadline.
	HTTPTimeout          time.Duration
	ItemFetchConcurrency int

	// Optional infrastructure. Empty disables the component.
	DatabaseURL        string
	RedisURL           string
	SuggestionCacheTTL time.Duration
	KafkaBrokers       []string
	KafkaChangesTopic  string

	// PlanDefaultAsOf pins the suggestion date (YYYY-MM-DD); empty means today + 7 days.
	PlanDefaultAsOf string
}

func Load() *Config {
	return &Config{
		ServerPort:           getEnv("PORT", "3000"),
		AppName:              getEnv("APP_NAME", "Back Office Console v1.0"),
		BackendBaseURL:       strings.TrimRight(getEnv("BACKEND_BASE_URL", "http://localhost:8000/api/v1"), "/"),
		PlanningBaseURL:      strings.TrimRight(getEnv("PLANNING_BASE_URL", "http://localhost:8001"), "/"),
		ForecastBaseURL:      strings.TrimRight(getEnv("FORECAST_BASE_URL", "http://localhost:8002"), "/"),
		ReportingBaseURL:     strings.TrimRight(getEnv("REPORTING_BASE_URL", "http://localhost:8000/api/v1"), "/"),
		HTTPTimeout:          getEnvDuration("HTTP_TIMEOUT", 0),
		ItemFetchConcurrency: getEnvInt("ITEM_FETCH_CONCURRENCY", 10),
		DatabaseURL:          getEnv("DATABASE_URL", ""),
		RedisURL:             getEnv("REDIS_URL", ""),
		SuggestionCacheTTL:   getEnvDuration("SUGGESTION_CACHE_TTL", 10*time.Minute),
		KafkaBrokers:         splitList(getEnv("KAFKA_BROKERS", "")),
		KafkaChangesTopic:    getEnv("KAFKA_CHANGES_TOPIC", "console-changes"),
		PlanDefaultAsOf:      getEnv("PLAN_DEFAULT_AS_OF", ""),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
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
