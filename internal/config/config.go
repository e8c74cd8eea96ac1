package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration.
// Values are loaded from environment variables with sensible defaults.
type Config struct {
	// Server
	Port     int
	LogLevel string

	// Uploads
	MaxUploadBytes int64
	OutputFilename string

	// Batch processing
	MaxConcurrency int

	// Cache
	CacheTTL time.Duration

	// Observability
	OTLPEndpoint string

	// Conversion vocabulary. These literals are part of the observable
	// contract; they are carried in the config so the renderer and the
	// resolver receive them at construction instead of reading globals.
	CurrencySuffix string
	StripTokens    []string
	ColumnAliases  []string
	TextColumn     string
}

// Load reads configuration from environment variables with defaults.
func Load() *Config {
	return &Config{
		Port:     getEnvInt("PORT", 5005),
		LogLevel: getEnv("LOG_LEVEL", "info"),

		MaxUploadBytes: int64(getEnvInt("MAX_UPLOAD_MB", 10)) * 1024 * 1024,
		OutputFilename: getEnv("OUTPUT_FILENAME", "resultado_lexnum.xlsx"),

		MaxConcurrency: getEnvInt("MAX_CONCURRENCY", 50),

		CacheTTL: getEnvDuration("CACHE_TTL", 5*time.Minute),

		OTLPEndpoint: getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", "localhost:4317"),

		CurrencySuffix: "M.N.",
		StripTokens:    []string{"$", "MXN", "M.N.", "MN", ","},
		ColumnAliases:  []string{"numero", "num"},
		TextColumn:     "Texto",
	}
}

// MaxUploadMB reports the upload cap in whole megabytes, for error messages.
func (c *Config) MaxUploadMB() int64 {
	return c.MaxUploadBytes / (1024 * 1024)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
