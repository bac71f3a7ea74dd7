// Package config provides configuration management functionality.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Backend selection modes for the quantum simulation layer.
const (
	BackendAuto = "auto" // Use the statevector simulator, fall back to mock if it fails to initialize
	BackendAer  = "aer"  // Force the statevector simulator
	BackendMock = "mock" // Force the deterministic mock distribution
)

// Config holds application configuration
type Config struct {
	Port     int
	LogLevel string
	DevMode  bool

	// Quantum backend selection: "auto", "aer" or "mock"
	Backend string

	// OpenAI-compatible chat completion endpoint (Groq / HeckAI / etc.)
	LLMAPIKey  string
	LLMBaseURL string
	LLMModel   string
}

// Load reads configuration from environment variables.
// A .env file in the working directory is loaded first if present.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Port:       getEnvAsInt("PORT", 8000),
		LogLevel:   getEnv("LOG_LEVEL", "info"),
		DevMode:    getEnvAsBool("DEV_MODE", false),
		Backend:    getEnv("QSLM_BACKEND", BackendAuto),
		LLMAPIKey:  getEnv("LLAMA_API_KEY", ""),
		LLMBaseURL: getEnv("LLAMA_API_BASE", "https://api.groq.com/openai/v1"),
		LLMModel:   getEnv("LLAMA_MODEL", "meta-llama/llama-4-scout"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks if required configuration is present
func (c *Config) Validate() error {
	switch c.Backend {
	case BackendAuto, BackendAer, BackendMock:
	default:
		return fmt.Errorf("invalid QSLM_BACKEND %q (expected auto, aer or mock)", c.Backend)
	}

	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid PORT %d", c.Port)
	}

	// LLM credentials are optional: the explanation path degrades to a
	// fixed fallback string when the upstream call fails.
	return nil
}

// Helper functions
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}
