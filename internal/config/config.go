// Package config loads client configuration from the environment.
package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"roomchat/pkg/logger"
)

type Config struct {
	API    APIConfig
	Socket SocketConfig
}

type APIConfig struct {
	BaseURL string
	Timeout time.Duration
}

type SocketConfig struct {
	URL               string
	ReconnectAttempts int
	ReconnectDelay    time.Duration
}

// Load reads configuration from a .env file if present, then the
// environment. Every knob has a local-development default.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		logger.Debug("No .env file loaded: %v", err)
	}

	return &Config{
		API: APIConfig{
			BaseURL: getEnvOrDefault("CHAT_API_URL", "http://localhost:3001/api"),
			Timeout: getDurationOrDefault("CHAT_HTTP_TIMEOUT", "10s"),
		},
		Socket: SocketConfig{
			URL:               getEnvOrDefault("CHAT_SOCKET_URL", "ws://localhost:3001/ws"),
			ReconnectAttempts: getIntOrDefault("CHAT_RECONNECT_ATTEMPTS", 5),
			ReconnectDelay:    getDurationOrDefault("CHAT_RECONNECT_DELAY", "1s"),
		},
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDurationOrDefault(key, defaultValue string) time.Duration {
	value := getEnvOrDefault(key, defaultValue)
	duration, err := time.ParseDuration(value)
	if err != nil {
		logger.Fatal("Invalid duration for %s: %v", key, err)
	}
	return duration
}

func getIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	intValue, err := strconv.Atoi(value)
	if err != nil {
		logger.Fatal("Invalid integer for %s: %v", key, err)
	}
	return intValue
}
