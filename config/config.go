package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all application configuration.
type Config struct {
	Server    ServerConfig
	Audit     AuditConfig
	Recommend RecommendConfig
	Scan      ScanConfig
	Auth      AuthConfig
	RateLimit RateLimitConfig
	Log       LogConfig
}

// ServerConfig controls the HTTP server.
type ServerConfig struct {
	Host string // default: "0.0.0.0"
	Port int    // default: 8080
	Mode string // "debug", "release", "test"; default: "release"
}

// AuditConfig controls the PageSpeed Insights client.
type AuditConfig struct {
	// APIKey is the PageSpeed Insights key. Required at scan time.
	APIKey string

	// Endpoint overrides the runPagespeed URL.
	Endpoint string // default: audit.DefaultEndpoint

	// Strategy is the Lighthouse device strategy.
	Strategy string // default: "DESKTOP"

	// UserAgent identifies this service on outbound calls.
	UserAgent string // default: "SEOScan/1.0"
}

// RecommendConfig controls the Gemini client.
type RecommendConfig struct {
	// APIKey is the Gemini key. Required when recommendations are requested.
	APIKey string

	// BaseURL is the models root of the Generative Language API.
	BaseURL string // default: llm.DefaultBaseURL

	// Model is the generateContent model name.
	Model string // default: llm.DefaultModel

	Temperature     float64 // default: 0.7
	TopK            int     // default: 40
	TopP            float64 // default: 0.95
	MaxOutputTokens int     // default: 1024
}

// ScanConfig controls the scan pipeline.
type ScanConfig struct {
	// CallTimeout bounds each outbound provider call.
	CallTimeout time.Duration // default: 30s
}

// AuthConfig controls API key authentication on POST /scan.
type AuthConfig struct {
	// Enabled toggles API key authentication.
	Enabled bool // default: false

	// APIKeys is the list of accepted API keys.
	APIKeys []string
}

// RateLimitConfig controls per-identity rate limiting.
type RateLimitConfig struct {
	// RequestsPerSecond is the sustained rate per API key or client IP.
	RequestsPerSecond float64 // default: 1

	// Burst is the maximum burst size per identity.
	Burst int // default: 5
}

// LogConfig controls structured logging.
type LogConfig struct {
	Level  string // default: "info"
	Format string // "json" or "text"; default: "json"
}

// Load reads configuration from environment variables with sane defaults.
func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Host: envOr("SEOSCAN_HOST", "0.0.0.0"),
			Port: envIntOr("SEOSCAN_PORT", 8080),
			Mode: envOr("SEOSCAN_MODE", "release"),
		},
		Audit: AuditConfig{
			APIKey:    os.Getenv("PAGESPEED_API_KEY"),
			Endpoint:  os.Getenv("PAGESPEED_ENDPOINT"),
			Strategy:  envOr("PAGESPEED_STRATEGY", "DESKTOP"),
			UserAgent: envOr("SEOSCAN_USER_AGENT", "SEOScan/1.0"),
		},
		Recommend: RecommendConfig{
			APIKey:          os.Getenv("GEMINI_API_KEY"),
			BaseURL:         os.Getenv("GEMINI_BASE_URL"),
			Model:           os.Getenv("GEMINI_MODEL"),
			Temperature:     envFloatOr("GEMINI_TEMPERATURE", 0.7),
			TopK:            envIntOr("GEMINI_TOP_K", 40),
			TopP:            envFloatOr("GEMINI_TOP_P", 0.95),
			MaxOutputTokens: envIntOr("GEMINI_MAX_OUTPUT_TOKENS", 1024),
		},
		Scan: ScanConfig{
			CallTimeout: envDurationOr("SEOSCAN_CALL_TIMEOUT", 30*time.Second),
		},
		Auth: AuthConfig{
			Enabled: envBoolOr("SEOSCAN_AUTH_ENABLED", false),
			APIKeys: envSliceOr("SEOSCAN_API_KEYS", nil),
		},
		RateLimit: RateLimitConfig{
			RequestsPerSecond: envFloatOr("SEOSCAN_RATE_RPS", 1.0),
			Burst:             envIntOr("SEOSCAN_RATE_BURST", 5),
		},
		Log: LogConfig{
			Level:  envOr("SEOSCAN_LOG_LEVEL", "info"),
			Format: envOr("SEOSCAN_LOG_FORMAT", "json"),
		},
	}
}

// --- helper functions ---

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envIntOr(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}

func envBoolOr(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}

func envFloatOr(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}

func envDurationOr(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}

func envSliceOr(key string, fallback []string) []string {
	if v := os.Getenv(key); v != "" {
		parts := strings.Split(v, ",")
		result := make([]string, 0, len(parts))
		for _, p := range parts {
			if trimmed := strings.TrimSpace(p); trimmed != "" {
				result = append(result, trimmed)
			}
		}
		return result
	}
	return fallback
}
