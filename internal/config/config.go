// ABOUTME: Centralized configuration for the recommender service
// ABOUTME: Loads from environment variables with validation and defaults
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all configuration for the recommender
type Config struct {
	// OpenAI settings (enhancement collaborator)
	OpenAIKey     string
	OpenAIBaseURL string
	ChatModel     string
	Timeout       time.Duration
	MaxRetries    int
	RetryDelay    time.Duration

	// HTTP settings
	Port            string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration

	// Retrieval settings
	CatalogPath           string
	DefaultMaxResults     int
	DefaultScoreThreshold float64
	SearchMaxResults      int
	SearchScoreThreshold  float64

	LogLevel string
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		OpenAIKey:             os.Getenv("OPENAI_API_KEY"),
		OpenAIBaseURL:         os.Getenv("OPENAI_BASE_URL"),
		ChatModel:             getEnv("RECOMMENDER_OPENAI_MODEL", "gpt-4o"),
		Timeout:               getEnvDuration("OPENAI_TIMEOUT", 15*time.Second),
		MaxRetries:            getEnvInt("OPENAI_MAX_RETRIES", 0),
		RetryDelay:            getEnvDuration("OPENAI_RETRY_DELAY", time.Second),
		Port:                  getEnv("PORT", "8080"),
		ReadTimeout:           getEnvDuration("HTTP_READ_TIMEOUT", 10*time.Second),
		WriteTimeout:          getEnvDuration("HTTP_WRITE_TIMEOUT", 30*time.Second),
		IdleTimeout:           getEnvDuration("HTTP_IDLE_TIMEOUT", 60*time.Second),
		ShutdownTimeout:       getEnvDuration("SHUTDOWN_TIMEOUT", 10*time.Second),
		CatalogPath:           os.Getenv("CATALOG_PATH"),
		DefaultMaxResults:     getEnvInt("DEFAULT_MAX_RESULTS", 5),
		DefaultScoreThreshold: getEnvFloat("DEFAULT_SCORE_THRESHOLD", 0.5),
		SearchMaxResults:      getEnvInt("SEARCH_MAX_RESULTS", 10),
		SearchScoreThreshold:  getEnvFloat("SEARCH_SCORE_THRESHOLD", 0.3),
		LogLevel:              strings.ToLower(getEnv("LOG_LEVEL", "info")),
	}

	return cfg, cfg.Validate()
}

// EnhancementEnabled reports whether an OpenAI credential is configured
func (c *Config) EnhancementEnabled() bool {
	return c.OpenAIKey != ""
}

// Validate checks ranges of numeric settings
func (c *Config) Validate() error {
	if c.DefaultScoreThreshold < -1 || c.DefaultScoreThreshold > 1 {
		return fmt.Errorf("DEFAULT_SCORE_THRESHOLD must be -1 to 1, got %f", c.DefaultScoreThreshold)
	}
	if c.SearchScoreThreshold < -1 || c.SearchScoreThreshold > 1 {
		return fmt.Errorf("SEARCH_SCORE_THRESHOLD must be -1 to 1, got %f", c.SearchScoreThreshold)
	}
	if c.DefaultMaxResults <= 0 {
		return fmt.Errorf("DEFAULT_MAX_RESULTS must be positive, got %d", c.DefaultMaxResults)
	}
	if c.SearchMaxResults <= 0 {
		return fmt.Errorf("SEARCH_MAX_RESULTS must be positive, got %d", c.SearchMaxResults)
	}
	if c.MaxRetries < 0 || c.MaxRetries > 5 {
		return fmt.Errorf("OPENAI_MAX_RETRIES must be 0-5, got %d", c.MaxRetries)
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("OPENAI_TIMEOUT must be positive, got %v", c.Timeout)
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("LOG_LEVEL must be debug, info, warn or error, got %q", c.LogLevel)
	}
	return nil
}

// Helper functions
func getEnv(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return defaultVal
}

func getEnvFloat(key string, defaultVal float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return defaultVal
}

func getEnvDuration(key string, defaultVal time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return defaultVal
}
