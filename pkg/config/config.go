// ABOUTME: Configuration management for the module with environment variable support
// ABOUTME: Holds the YouTube API credential, cache backend and logging settings

package config

import (
	"errors"
	"os"
	"strconv"
)

// UserAgent is the fixed identifying user agent sent with every outbound
// feed fetch and channel probe.
const UserAgent = "feedscout feedparser"

// Config holds all module configuration
type Config struct {
	// YouTube contains channel lookup API configuration
	YouTube YouTubeConfig

	// Cache contains cache backend configuration
	Cache CacheConfig

	// Log contains logging configuration
	Log LogConfig
}

// YouTubeConfig holds channel lookup API configuration
type YouTubeConfig struct {
	// APIKey authenticates channel lookups against the Data API
	APIKey string
}

// CacheConfig holds cache backend configuration
type CacheConfig struct {
	// Type specifies the cache backend (memory/redis)
	Type string

	// Redis contains Redis-specific configuration
	Redis RedisConfig
}

// RedisConfig holds Redis-specific configuration
type RedisConfig struct {
	// Address is the Redis server address
	Address string

	// Password is the Redis authentication password
	Password string

	// DB is the Redis database number
	DB int
}

// LogConfig holds logging configuration
type LogConfig struct {
	// Level is the minimum level emitted (debug/info/warn/error)
	Level string
}

// LoadFromEnv loads configuration from environment variables
func LoadFromEnv() (*Config, error) {
	cfg := &Config{
		YouTube: YouTubeConfig{
			APIKey: os.Getenv("YOUTUBE_API_KEY"),
		},
		Cache: CacheConfig{
			Type: getEnvOrDefault("CACHE_TYPE", "memory"),
			Redis: RedisConfig{
				Address:  getEnvOrDefault("REDIS_ADDRESS", "localhost:6379"),
				Password: getEnvOrDefault("REDIS_PASSWORD", ""),
				DB:       getEnvAsIntOrDefault("REDIS_DB", 0),
			},
		},
		Log: LogConfig{
			Level: getEnvOrDefault("LOG_LEVEL", "info"),
		},
	}

	return cfg, nil
}

// Validate checks configuration consistency
func (c *Config) Validate() error {
	if c.Cache.Type != "memory" && c.Cache.Type != "redis" {
		return errors.New("cache type must be either memory or redis")
	}
	return nil
}

// getEnvOrDefault returns the environment variable value or a default
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsIntOrDefault returns the environment variable as int or a default
func getEnvAsIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
