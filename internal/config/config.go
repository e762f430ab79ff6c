package config

import (
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	// DefaultBaseURL is the Open-Meteo forecast endpoint used when no
	// override is configured. The API needs no key.
	DefaultBaseURL = "https://api.open-meteo.com/v1/forecast"

	// DefaultTimeoutSeconds bounds the whole upstream round trip.
	DefaultTimeoutSeconds = 30
)

// Transport selects how the MCP server is exposed.
const (
	TransportStdio = "stdio"
	TransportHTTP  = "http"
)

// AppConfig holds all runtime configuration for the weather MCP server.
type AppConfig struct {
	// BaseURL is the Open-Meteo forecast endpoint.
	BaseURL string

	// Timeout applies to one full upstream round trip.
	Timeout time.Duration

	LogLevel  string
	Port      string
	Transport string
}

// Load reads configuration from environment with sensible defaults.
func Load() (*AppConfig, error) {
	if err := godotenv.Load(); err != nil {
		log.Printf("INFO: No .env file found or error loading it: %v", err)
	}

	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("OPEN_METEO_BASE_URL", DefaultBaseURL)
	v.SetDefault("OPEN_METEO_TIMEOUT", DefaultTimeoutSeconds)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("PORT", "8080")
	v.SetDefault("MCP_TRANSPORT", TransportStdio)

	cfg := &AppConfig{
		BaseURL:   v.GetString("OPEN_METEO_BASE_URL"),
		Timeout:   timeoutFromSeconds(v.GetFloat64("OPEN_METEO_TIMEOUT")),
		LogLevel:  strings.ToLower(v.GetString("LOG_LEVEL")),
		Port:      v.GetString("PORT"),
		Transport: strings.ToLower(v.GetString("MCP_TRANSPORT")),
	}

	return cfg, nil
}

// timeoutFromSeconds converts the OPEN_METEO_TIMEOUT value to a duration.
// Unparseable or non-positive values fall back to the default rather than
// failing startup.
func timeoutFromSeconds(seconds float64) time.Duration {
	if seconds <= 0 {
		return DefaultTimeoutSeconds * time.Second
	}
	return time.Duration(seconds * float64(time.Second))
}
