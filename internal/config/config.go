// Package config provides environment-backed configuration and dependency
// wiring for the application.
package config

import (
	"os"
	"strconv"

	"github.com/TechMaverickHub/100x-LLM-week2-pdf-chatbot/internal/domain"
)

const (
	defaultGroqBaseURL = "https://api.groq.com/openai/v1"
	defaultGroqModel   = "llama-3.1-8b-instant"

	// Rough heuristic: ~4 characters per token.
	defaultCharsPerToken    = 4
	defaultMaxContextTokens = 8000
)

// AppConfig implements the domain.Config interface
type AppConfig struct {
	ServerPort       string
	LogLevel         string
	GroqAPIKey       string
	GroqBaseURL      string
	GroqModel        string
	MaxContextTokens int
	CharsPerToken    int
	MaxUploadSize    int64
}

// NewConfig creates a new configuration instance with default values
func NewConfig() domain.Config {
	return &AppConfig{
		// Cloud Run (and many PaaS) provide the listening port via PORT.
		// Keep SERVER_PORT for local/dev compatibility.
		ServerPort:       getEnvOrDefault("PORT", getEnvOrDefault("SERVER_PORT", "8080")),
		LogLevel:         getEnvOrDefault("LOG_LEVEL", "info"),
		GroqAPIKey:       getEnvOrDefault("GROQ_API_KEY", ""),
		GroqBaseURL:      getEnvOrDefault("GROQ_BASE_URL", defaultGroqBaseURL),
		GroqModel:        getEnvOrDefault("GROQ_MODEL", defaultGroqModel),
		MaxContextTokens: getEnvIntOrDefault("MAX_CONTEXT_TOKENS", defaultMaxContextTokens),
		CharsPerToken:    getEnvIntOrDefault("CHARS_PER_TOKEN", defaultCharsPerToken),
		MaxUploadSize:    getEnvInt64OrDefault("MAX_UPLOAD_SIZE", 50*1024*1024), // 50MB default
	}
}

// GetServerPort returns the server port
func (c *AppConfig) GetServerPort() string {
	return c.ServerPort
}

// GetLogLevel returns the logging level
func (c *AppConfig) GetLogLevel() string {
	return c.LogLevel
}

// GetGroqAPIKey returns the Groq API credential. It re-reads the environment
// on every call so the check happens at request time, not at startup.
func (c *AppConfig) GetGroqAPIKey() string {
	if value := os.Getenv("GROQ_API_KEY"); value != "" {
		return value
	}
	return c.GroqAPIKey
}

// GetGroqBaseURL returns the OpenAI-compatible endpoint base URL
func (c *AppConfig) GetGroqBaseURL() string {
	return c.GroqBaseURL
}

// GetGroqModel returns the chat completion model name
func (c *AppConfig) GetGroqModel() string {
	return c.GroqModel
}

// GetMaxContextTokens returns the context-token ceiling for stored documents
// and the output-token cap for completions
func (c *AppConfig) GetMaxContextTokens() int {
	return c.MaxContextTokens
}

// GetCharsPerToken returns the characters-per-token estimate ratio
func (c *AppConfig) GetCharsPerToken() int {
	return c.CharsPerToken
}

// GetMaxUploadSize returns the maximum multipart upload size in bytes
func (c *AppConfig) GetMaxUploadSize() int64 {
	return c.MaxUploadSize
}

// Helper functions for environment variable handling
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvInt64OrDefault(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intValue
		}
	}
	return defaultValue
}
