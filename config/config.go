package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

const defaultJWTSecret = "default-secret-change-in-production"

// Config contains the application settings read from the environment
type Config struct {
	Env         string
	Port        string
	JWTSecret   string
	TokenTTL    time.Duration
	DBDriver    string
	DatabaseURL string
	BcryptCost  int

	MemcachedHost   string
	AccountCacheTTL time.Duration

	RabbitMQURL string
	EventsQueue string

	LogFile string
}

// LoadConfig reads the configuration from environment variables with defaults.
// Values that fail to parse keep their default; Validate reports them.
func LoadConfig() *Config {
	cfg := &Config{
		Env:             getEnv("APP_ENV", "development"),
		Port:            getEnv("PORT", "3006"),
		JWTSecret:       getEnv("JWT_SECRET", defaultJWTSecret),
		TokenTTL:        getDuration("TOKEN_TTL", 7*24*time.Hour),
		DBDriver:        getEnv("DB_DRIVER", "sqlite"),
		DatabaseURL:     getEnv("DATABASE_URL", "rental.db?_foreign_keys=on"),
		BcryptCost:      getInt("BCRYPT_COST", 10),
		MemcachedHost:   getEnv("MEMCACHED_HOST", ""),
		AccountCacheTTL: getDuration("AUTH_CACHE_TTL", 30*time.Second),
		RabbitMQURL:     getEnv("RABBITMQ_URL", ""),
		EventsQueue:     getEnv("EVENTS_QUEUE", "rental_events"),
		LogFile:         getEnv("LOG_FILE", ""),
	}
	return cfg
}

// Validate checks the values that would otherwise fail later at startup.
func (c *Config) Validate() error {
	switch c.DBDriver {
	case "sqlite", "mysql", "postgres":
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q (want sqlite, mysql or postgres)", c.DBDriver)
	}
	if c.Env == "production" && (c.JWTSecret == "" || c.JWTSecret == defaultJWTSecret) {
		return fmt.Errorf("JWT_SECRET must be set in production")
	}
	if c.TokenTTL <= 0 {
		return fmt.Errorf("TOKEN_TTL must be positive, got %s", c.TokenTTL)
	}
	if c.BcryptCost < 4 || c.BcryptCost > 31 {
		return fmt.Errorf("BCRYPT_COST must be between 4 and 31, got %d", c.BcryptCost)
	}
	if c.Port == "" {
		return fmt.Errorf("PORT must not be empty")
	}
	return nil
}

// SuppressServer reports whether the HTTP server must not be started,
// which is the case for test runs.
func (c *Config) SuppressServer() bool {
	return c.Env == "test"
}

// getEnv returns an environment variable or a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getInt(key string, defaultValue int) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return v
}

func getDuration(key string, defaultValue time.Duration) time.Duration {
	v, err := time.ParseDuration(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return v
}
