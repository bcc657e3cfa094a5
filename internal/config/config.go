package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"pdf-intake/internal/domain"
)

const (
	// DefaultMaxFileSize is the upload limit applied when MAX_FILE_SIZE is unset.
	DefaultMaxFileSize int64 = 3 * 1024 * 1024
	// DefaultParseTimeout bounds the wait for the text tokenizer.
	DefaultParseTimeout = 30 * time.Second

	BackendPDFCPU = "pdfcpu"
	BackendMuPDF  = "mupdf"
)

// AppConfig implements the domain.Config interface
type AppConfig struct {
	ServerPort      string
	LogLevel        string
	LogFormat       string
	MaxFileSize     int64
	ParseTimeout    time.Duration
	MetadataBackend string
	AllowedOrigins  []string
}

// NewConfig creates a new configuration instance with default values
func NewConfig() domain.Config {
	return &AppConfig{
		// Cloud Run (and many PaaS) provide the listening port via PORT.
		// Keep SERVER_PORT for local/dev compatibility.
		ServerPort:      getEnvOrDefault("PORT", getEnvOrDefault("SERVER_PORT", "8080")),
		LogLevel:        getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:       getEnvOrDefault("LOG_FORMAT", "text"),
		MaxFileSize:     getEnvInt64OrDefault("MAX_FILE_SIZE", DefaultMaxFileSize),
		ParseTimeout:    getEnvDurationOrDefault("PARSE_TIMEOUT", DefaultParseTimeout),
		MetadataBackend: getEnvBackendOrDefault("METADATA_BACKEND", BackendPDFCPU),
		AllowedOrigins: getEnvListOrDefault("CORS_ALLOWED_ORIGINS", []string{
			"http://localhost:3000",
			"http://localhost:5173",
		}),
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

// GetLogFormat returns the log output format (text or json)
func (c *AppConfig) GetLogFormat() string {
	return c.LogFormat
}

// GetMaxFileSize returns the maximum allowed file size
func (c *AppConfig) GetMaxFileSize() int64 {
	return c.MaxFileSize
}

// GetParseTimeout returns how long to wait for text extraction
func (c *AppConfig) GetParseTimeout() time.Duration {
	return c.ParseTimeout
}

// GetMetadataBackend returns the name of the container decoder to use
func (c *AppConfig) GetMetadataBackend() string {
	return c.MetadataBackend
}

// GetAllowedOrigins returns the CORS origin allow-list
func (c *AppConfig) GetAllowedOrigins() []string {
	return c.AllowedOrigins
}

// Helper functions for environment variable handling
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt64OrDefault(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.ParseInt(value, 10, 64); err == nil && intValue > 0 {
			return intValue
		}
	}
	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil && d > 0 {
			return d
		}
	}
	return defaultValue
}

func getEnvBackendOrDefault(key, defaultValue string) string {
	switch value := strings.ToLower(os.Getenv(key)); value {
	case BackendPDFCPU, BackendMuPDF:
		return value
	default:
		return defaultValue
	}
}

func getEnvListOrDefault(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}
