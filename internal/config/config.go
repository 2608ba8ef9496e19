package config

import (
	"fmt"
	"log"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds application configuration loaded from environment variables
type Config struct {
	DatabaseURL        string
	RedisURL           string
	NotesEncryptionKey string
	Env                string
	Port               string
	LogLevel           string
	LogFormat          string

	Scoring Scoring
}

// Scoring holds the tunable parameters of the productivity score and trend
// classification. Defaults match the documented formula; an optional YAML
// file (SCORING_CONFIG_PATH) can override them.
type Scoring struct {
	CompletionWeight float64 `yaml:"completion_weight"`
	EfficiencyWeight float64 `yaml:"efficiency_weight"`
	TrendThreshold   float64 `yaml:"trend_threshold"`
}

// DefaultScoring returns the built-in scoring parameters.
func DefaultScoring() Scoring {
	return Scoring{
		CompletionWeight: 0.7,
		EfficiencyWeight: 0.3,
		TrendThreshold:   5.0,
	}
}

// Load reads configuration from environment variables
func Load() *Config {
	cfg := &Config{
		DatabaseURL:        os.Getenv("DATABASE_URL"),
		RedisURL:           getEnvWithDefault("REDIS_URL", "redis://localhost:6379/0"),
		NotesEncryptionKey: os.Getenv("NOTES_ENCRYPTION_KEY"),
		Env:                getEnvWithDefault("ENV", "development"),
		Port:               getEnvWithDefault("PORT", "8080"),
		LogLevel:           getEnvWithDefault("LOG_LEVEL", "info"),
		LogFormat:          getEnvWithDefault("LOG_FORMAT", "text"),
		Scoring:            DefaultScoring(),
	}

	if cfg.NotesEncryptionKey == "" {
		log.Println("WARNING: NOTES_ENCRYPTION_KEY not set, summary notes will be stored in plaintext. Generate a key with: openssl rand -base64 32")
	}

	if path := os.Getenv("SCORING_CONFIG_PATH"); path != "" {
		scoring, err := loadScoring(path)
		if err != nil {
			log.Printf("WARNING: failed to load scoring config from %s, using defaults: %v", path, err)
		} else {
			cfg.Scoring = scoring
		}
	}

	return cfg
}

// loadScoring reads scoring parameters from a YAML file. Fields left unset
// keep their defaults.
func loadScoring(path string) (Scoring, error) {
	scoring := DefaultScoring()

	data, err := os.ReadFile(path)
	if err != nil {
		return scoring, fmt.Errorf("failed to read scoring config: %w", err)
	}

	if err := yaml.Unmarshal(data, &scoring); err != nil {
		return scoring, fmt.Errorf("failed to parse scoring config: %w", err)
	}

	if scoring.CompletionWeight < 0 || scoring.EfficiencyWeight < 0 {
		return DefaultScoring(), fmt.Errorf("scoring weights must be non-negative")
	}
	if scoring.CompletionWeight+scoring.EfficiencyWeight == 0 {
		return DefaultScoring(), fmt.Errorf("scoring weights must not both be zero")
	}

	return scoring, nil
}

func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
