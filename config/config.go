// ABOUTME: Configuration loader for the migration analyzer
// ABOUTME: Loads settings from environment variables with defaults

package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	// Server (serve mode)
	Port               string
	CacheTTL           int      // seconds, capture snapshot cache
	CORSAllowedOrigins []string // allowed CORS origins (empty = block all cross-origin)

	// Capture
	SpackBin             string
	FindTimeoutSeconds   int // spack find, the long pole on large environments
	ConfigTimeoutSeconds int // compiler/repo/mirror listing

	// Catalog
	CatalogFile   string // optional YAML override for the built-in catalog
	PricingRegion string // label recorded in exported artifacts
}

func Load() (*Config, error) {
	// .env is optional; real environment variables win.
	_ = godotenv.Load()

	cfg := &Config{
		Port:               getEnv("PORT", "8080"),
		CacheTTL:           getEnvInt("CACHE_TTL", 300),
		CORSAllowedOrigins: getEnvStringList("CORS_ALLOWED_ORIGINS"),

		SpackBin:             getEnv("SPACK_BIN", "spack"),
		FindTimeoutSeconds:   getEnvInt("FIND_TIMEOUT", 120),
		ConfigTimeoutSeconds: getEnvInt("CONFIG_TIMEOUT", 30),

		CatalogFile:   os.Getenv("CATALOG_FILE"),
		PricingRegion: getEnv("PRICING_REGION", "us-east-1"),
	}

	if _, err := strconv.Atoi(cfg.Port); err != nil {
		return nil, fmt.Errorf("PORT must be numeric, got %q", cfg.Port)
	}
	for _, t := range []struct {
		name  string
		value int
	}{
		{"FIND_TIMEOUT", cfg.FindTimeoutSeconds},
		{"CONFIG_TIMEOUT", cfg.ConfigTimeoutSeconds},
	} {
		if t.value < 1 || t.value > 600 {
			return nil, fmt.Errorf("%s must be between 1 and 600 seconds, got %d", t.name, t.value)
		}
	}
	if cfg.CacheTTL < 0 {
		return nil, fmt.Errorf("CACHE_TTL must not be negative, got %d", cfg.CacheTTL)
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvStringList(key string) []string {
	value := os.Getenv(key)
	if value == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}
