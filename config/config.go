// Package config provides configuration management for the flashe service.
package config

import (
	"errors"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the complete application configuration.
type Config struct {
	Server   ServerConfig
	Catalog  CatalogConfig
	Offer    OfferConfig
	Database DatabaseConfig
	Log      LogConfig
	Admin    AdminConfig
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Port           string
	RateLimit      int
	RateWindow     time.Duration
	RequestTimeout time.Duration
	CORSOrigins    []string
	SwaggerUser    string
	SwaggerPass    string
}

// CatalogConfig selects where the catalog is loaded from.
type CatalogConfig struct {
	// URL is fetched first when set.
	URL string
	// File is read when URL is unset or fails. Empty disables the file source.
	File string
	// UnifiedPrice overrides every product type's price. Zero keeps document prices.
	UnifiedPrice float64
	// PerTypePricing prices the selected type instead of the first one.
	PerTypePricing bool
	FetchTimeout   time.Duration
}

// OfferConfig configures the offer countdown.
type OfferConfig struct {
	// Start is the beginning of the first window. Zero means process start.
	Start  time.Time
	Period time.Duration
}

// DatabaseConfig holds MongoDB configuration.
type DatabaseConfig struct {
	URI          string
	DatabaseName string
	LogsTTL      time.Duration
	Enabled      bool
	// SeedCatalog publishes the built-in catalog when no snapshot is active.
	SeedCatalog bool
	// CircuitBreaker configuration
	CircuitBreakerFailureThreshold int
	CircuitBreakerSuccessThreshold int
	CircuitBreakerTimeout          time.Duration
}

// LogConfig configures the process logger and the request journal.
type LogConfig struct {
	Level  string
	Pretty bool
	// JournalBuffer is the async journal queue size.
	JournalBuffer  int
	JournalWorkers int
}

// AdminConfig holds the basic auth credentials of the admin routes.
type AdminConfig struct {
	User string
	Pass string
}

// Enabled reports whether both credentials are set.
func (a AdminConfig) Enabled() bool {
	return a.User != "" && a.Pass != ""
}

// LoadEnvFile loads variables from the given .env files (".env" when none
// are given) without overriding variables already set. Missing files are
// not an error.
func LoadEnvFile(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, p := range paths {
		if err := godotenv.Load(p); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return err
		}
	}
	return nil
}

// Load creates a Config from environment variables.
func Load() Config {
	return Config{
		Server: ServerConfig{
			Port:           getEnv("PORT", "8080"),
			RateLimit:      getEnvInt("RATE_LIMIT", 100),
			RateWindow:     getEnvDuration("RATE_WINDOW", time.Minute),
			RequestTimeout: getEnvDuration("REQUEST_TIMEOUT", 30*time.Second),
			CORSOrigins:    parseCORSOrigins(os.Getenv("CORS_ORIGINS")),
			SwaggerUser:    getEnv("SWAGGER_USER", ""),
			SwaggerPass:    getEnv("SWAGGER_PASS", ""),
		},
		Catalog: CatalogConfig{
			URL:            getEnv("CATALOG_SOURCE", ""),
			File:           getEnv("CATALOG_FILE", "data/flashe.json"),
			UnifiedPrice:   getEnvFloat("CATALOG_UNIFIED_PRICE", 515),
			PerTypePricing: getEnvBool("PER_TYPE_PRICING", false),
			FetchTimeout:   getEnvDuration("CATALOG_FETCH_TIMEOUT", 5*time.Second),
		},
		Offer: OfferConfig{
			Start:  getEnvTime("OFFER_START"),
			Period: getEnvDuration("OFFER_PERIOD", 7*24*time.Hour),
		},
		Database: DatabaseConfig{
			URI:                            getEnv("MONGODB_URI", "mongodb://localhost:27017"),
			DatabaseName:                   getEnv("MONGODB_DATABASE", "flashe"),
			LogsTTL:                        getEnvDuration("MONGODB_LOGS_TTL", 30*24*time.Hour),
			Enabled:                        getEnvBool("MONGODB_ENABLED", false),
			SeedCatalog:                    getEnvBool("MONGODB_SEED_CATALOG", true),
			CircuitBreakerFailureThreshold: getEnvInt("CIRCUIT_BREAKER_FAILURE_THRESHOLD", 5),
			CircuitBreakerSuccessThreshold: getEnvInt("CIRCUIT_BREAKER_SUCCESS_THRESHOLD", 2),
			CircuitBreakerTimeout:          getEnvDuration("CIRCUIT_BREAKER_TIMEOUT", 30*time.Second),
		},
		Log: LogConfig{
			Level:          getEnv("LOG_LEVEL", "info"),
			Pretty:         getEnvBool("LOG_PRETTY", false),
			JournalBuffer:  getEnvInt("JOURNAL_BUFFER", 1000),
			JournalWorkers: getEnvInt("JOURNAL_WORKERS", 2),
		},
		Admin: AdminConfig{
			User: getEnv("ADMIN_USER", ""),
			Pass: getEnv("ADMIN_PASS", ""),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f >= 0 {
			return f
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return defaultValue
}

func getEnvTime(key string) time.Time {
	if v := os.Getenv(key); v != "" {
		if t, err := time.Parse(time.RFC3339, v); err == nil {
			return t
		}
	}
	return time.Time{}
}

func parseCORSOrigins(s string) []string {
	// Default origins for local development
	defaults := []string{
		"http://localhost:3000",
		"http://127.0.0.1:3000",
	}
	if s == "" {
		return defaults
	}
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts)+len(defaults))
	result = append(result, defaults...)
	for _, p := range parts {
		if origin := strings.TrimSpace(p); origin != "" {
			result = append(result, origin)
		}
	}
	return result
}
