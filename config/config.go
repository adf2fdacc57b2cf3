// Package config loads the cart service configuration from the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Storage drivers for cart snapshots.
const (
	DriverMemory   = "memory"
	DriverMongoDB  = "mongodb"
	DriverPostgres = "postgres"
)

// Config holds the complete application configuration.
type Config struct {
	Server   ServerConfig
	Storage  StorageConfig
	Session  SessionConfig
	Auth     AuthConfig
	Checkout CheckoutConfig
	Log      LogConfig
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Port           string
	RateLimit      int
	RateWindow     time.Duration
	RequestTimeout time.Duration
	IdempotencyTTL time.Duration
	CORSOrigins    []string
	SwaggerUser    string
	SwaggerPass    string
}

// StorageConfig selects and configures the durable snapshot store.
// Activity is recorded only with the mongodb driver.
type StorageConfig struct {
	Driver       string
	KeyPrefix    string
	MongoURI     string
	MongoDB      string
	SnapshotTTL  time.Duration
	ActivityTTL  time.Duration
	RecordEvents bool
	PostgresDSN  string

	CircuitBreakerFailureThreshold int
	CircuitBreakerSuccessThreshold int
	CircuitBreakerTimeout          time.Duration
}

// SessionConfig sizes the in-memory cache of live carts.
type SessionConfig struct {
	CacheSize   int
	CacheTTL    time.Duration
	CacheShards int
}

// AuthConfig configures bearer token verification.
type AuthConfig struct {
	Enabled   bool
	JWTSecret string
	Issuer    string
	Leeway    time.Duration
}

// CheckoutConfig points at the order API and prices delivery.
type CheckoutConfig struct {
	OrderAPIURL        string
	Timeout            time.Duration
	DefaultDeliveryFee float64
	DeliveryFees       map[string]float64
}

// LogConfig configures the global logger.
type LogConfig struct {
	Level  string
	Pretty bool
}

// Load creates a Config from environment variables.
func Load() Config {
	return Config{
		Server: ServerConfig{
			Port:           getEnv("PORT", "8080"),
			RateLimit:      getEnvInt("RATE_LIMIT", 120),
			RateWindow:     getEnvDuration("RATE_WINDOW", time.Minute),
			RequestTimeout: getEnvDuration("REQUEST_TIMEOUT", 15*time.Second),
			IdempotencyTTL: getEnvDuration("IDEMPOTENCY_TTL", 10*time.Minute),
			CORSOrigins:    parseList(os.Getenv("CORS_ORIGINS")),
			SwaggerUser:    getEnv("SWAGGER_USER", ""),
			SwaggerPass:    getEnv("SWAGGER_PASS", ""),
		},
		Storage: StorageConfig{
			Driver:                         strings.ToLower(getEnv("STORAGE_DRIVER", DriverMemory)),
			KeyPrefix:                      getEnv("CART_KEY_PREFIX", "cart:"),
			MongoURI:                       getEnv("MONGODB_URI", "mongodb://localhost:27017"),
			MongoDB:                        getEnv("MONGODB_DATABASE", "cart_service"),
			SnapshotTTL:                    getEnvDuration("CART_SNAPSHOT_TTL", 14*24*time.Hour),
			ActivityTTL:                    getEnvDuration("CART_ACTIVITY_TTL", 30*24*time.Hour),
			RecordEvents:                   getEnvBool("CART_ACTIVITY_ENABLED", true),
			PostgresDSN:                    getEnv("POSTGRES_DSN", ""),
			CircuitBreakerFailureThreshold: getEnvInt("CIRCUIT_BREAKER_FAILURE_THRESHOLD", 5),
			CircuitBreakerSuccessThreshold: getEnvInt("CIRCUIT_BREAKER_SUCCESS_THRESHOLD", 2),
			CircuitBreakerTimeout:          getEnvDuration("CIRCUIT_BREAKER_TIMEOUT", 30*time.Second),
		},
		Session: SessionConfig{
			CacheSize:   getEnvInt("SESSION_CACHE_SIZE", 10000),
			CacheTTL:    getEnvDuration("SESSION_CACHE_TTL", 30*time.Minute),
			CacheShards: getEnvInt("SESSION_CACHE_SHARDS", 16),
		},
		Auth: AuthConfig{
			Enabled:   getEnvBool("AUTH_ENABLED", false),
			JWTSecret: getEnv("JWT_SECRET_KEY", ""),
			Issuer:    getEnv("JWT_ISSUER", ""),
			Leeway:    getEnvDuration("JWT_LEEWAY", 30*time.Second),
		},
		Checkout: CheckoutConfig{
			OrderAPIURL:        getEnv("ORDER_API_URL", ""),
			Timeout:            getEnvDuration("ORDER_API_TIMEOUT", 10*time.Second),
			DefaultDeliveryFee: getEnvFloat("DELIVERY_FEE_DEFAULT", 60),
			DeliveryFees:       parseFees(os.Getenv("DELIVERY_FEES")),
		},
		Log: LogConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Pretty: getEnvBool("LOG_PRETTY", false),
		},
	}
}

// Validate reports settings the service cannot start with.
func (c Config) Validate() error {
	var errs []error
	switch c.Storage.Driver {
	case DriverMemory, DriverMongoDB:
	case DriverPostgres:
		if c.Storage.PostgresDSN == "" {
			errs = append(errs, errors.New("POSTGRES_DSN is required for the postgres driver"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown STORAGE_DRIVER %q", c.Storage.Driver))
	}
	if c.Auth.Enabled && c.Auth.JWTSecret == "" {
		errs = append(errs, errors.New("JWT_SECRET_KEY is required when AUTH_ENABLED is set"))
	}
	if c.Checkout.DefaultDeliveryFee < 0 {
		errs = append(errs, errors.New("DELIVERY_FEE_DEFAULT must not be negative"))
	}
	return errors.Join(errs...)
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
		if f, err := strconv.ParseFloat(v, 64); err == nil {
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

func parseList(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		if v := strings.TrimSpace(p); v != "" {
			result = append(result, v)
		}
	}
	return result
}

// parseFees reads "Gulshan:60,Dhanmondi:80". Malformed pairs are skipped.
func parseFees(s string) map[string]float64 {
	result := make(map[string]float64)
	for _, pair := range parseList(s) {
		area, fee, ok := strings.Cut(pair, ":")
		if !ok {
			continue
		}
		area = strings.TrimSpace(area)
		v, err := strconv.ParseFloat(strings.TrimSpace(fee), 64)
		if area == "" || err != nil || v < 0 {
			continue
		}
		result[area] = v
	}
	return result
}
