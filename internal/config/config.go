// internal/config/config.go
// Centralized configuration management
// Loads from environment variables with sensible defaults

package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration
type Config struct {
	// Server
	Port        string
	Environment string

	// Database
	DatabaseURL string
	RedisURL    string
	UseRedis    bool

	// Security
	JWTSecret          string
	JWTIssuer          string
	AccessTokenExpiry  time.Duration
	RefreshTokenExpiry time.Duration

	// Matching
	MinMatchScore float64
	MatchLimit    int
	ScoreWorkers  int

	// Conversations
	HistoryLimit     int
	InactivityCutoff time.Duration
	CleanupInterval  time.Duration
	ConversationTTL  time.Duration

	// AI generation
	GeminiAPIKey string
	GeminiModel  string
}

// Load reads configuration from environment variables
func Load() *Config {
	return &Config{
		// Server
		Port:        getEnv("PORT", "8080"),
		Environment: getEnv("ENVIRONMENT", "development"),

		// Database
		DatabaseURL: getEnv("DATABASE_URL", ""),
		RedisURL:    getEnv("REDIS_URL", "redis://localhost:6379/0"),
		UseRedis:    getEnvBool("USE_REDIS", false),

		// Security
		JWTSecret:          getEnv("JWT_SECRET", "your-super-secret-key-change-this-in-production"),
		JWTIssuer:          getEnv("JWT_ISSUER", "sparkmatch"),
		AccessTokenExpiry:  getEnvDuration("ACCESS_TOKEN_EXPIRY", "1h"),
		RefreshTokenExpiry: getEnvDuration("REFRESH_TOKEN_EXPIRY", "720h"), // 30 days

		// Matching
		MinMatchScore: getEnvFloat("MIN_MATCH_SCORE", 0.3),
		MatchLimit:    getEnvInt("MATCH_LIMIT", 10),
		ScoreWorkers:  getEnvInt("SCORE_WORKERS", 8),

		// Conversations
		HistoryLimit:     getEnvInt("CONVERSATION_HISTORY_LIMIT", 20),
		InactivityCutoff: getEnvDuration("CONVERSATION_INACTIVITY_CUTOFF", "24h"),
		CleanupInterval:  getEnvDuration("CONVERSATION_CLEANUP_INTERVAL", "1h"),
		ConversationTTL:  getEnvDuration("CONVERSATION_TTL", "168h"), // 7 days

		// AI generation
		GeminiAPIKey: getEnv("GEMINI_API_KEY", ""),
		GeminiModel:  getEnv("GEMINI_MODEL", "gemini-2.5-flash"),
	}
}

// Validate checks the configuration for obvious misconfiguration
func (c *Config) Validate() error {
	if c.IsProduction() && c.JWTSecret == "your-super-secret-key-change-this-in-production" {
		return fmt.Errorf("JWT secret must be changed for production")
	}

	if c.MinMatchScore < 0 || c.MinMatchScore > 1 {
		return fmt.Errorf("min match score must be between 0 and 1")
	}

	if c.MatchLimit < 1 {
		return fmt.Errorf("match limit must be positive")
	}

	if c.HistoryLimit < 1 {
		return fmt.Errorf("conversation history limit must be positive")
	}

	if c.InactivityCutoff < time.Minute {
		return fmt.Errorf("inactivity cutoff must be at least one minute")
	}

	if c.UseRedis && c.RedisURL == "" {
		return fmt.Errorf("Redis URL is required when Redis is enabled")
	}

	return nil
}

// IsProduction returns true if running in production
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// IsDevelopment returns true if running in development
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// Helper functions

// getEnv gets a string value from environment with a default
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt gets an integer value from environment with a default
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

// getEnvFloat gets a float value from environment with a default
func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 64); err == nil {
			return floatVal
		}
	}
	return defaultValue
}

// getEnvDuration gets a duration value from environment with a default
func getEnvDuration(key string, defaultValue string) time.Duration {
	value := getEnv(key, defaultValue)
	duration, err := time.ParseDuration(value)
	if err != nil {
		// If parsing fails, try to parse the default
		duration, _ = time.ParseDuration(defaultValue)
	}
	return duration
}

// getEnvBool gets a boolean value from environment with a default
func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}
