package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

type Config struct {
	AppEnv string
	Addr   string

	// Database
	DatabaseURL       string
	AutoMigrate       bool
	DBMaxOpenConns    int
	DBMaxIdleConns    int
	DBConnMaxLifetime time.Duration

	// HTTP
	AllowedOriginsRaw string

	// View cache; an empty RedisAddress selects the in-memory store.
	RedisAddress    string
	CacheTTL        time.Duration
	CacheMaxEntries int

	LogLevel string

	// values that were set but could not be parsed
	parseProblems []string
}

// Load reads .env (when present) and the process environment.
func Load() Config {
	_ = godotenv.Load()

	var problems []string
	cfg := Config{
		AppEnv: getEnv("APP_ENV", "local"),
		Addr:   getEnv("APP_ADDR", ":8080"),

		DatabaseURL:       os.Getenv("DB_URL"),
		AutoMigrate:       getEnvBool("DB_AUTO_MIGRATE", true, &problems),
		DBMaxOpenConns:    getEnvInt("DB_MAX_OPEN_CONNS", 25, &problems),
		DBMaxIdleConns:    getEnvInt("DB_MAX_IDLE_CONNS", 10, &problems),
		DBConnMaxLifetime: getEnvDuration("DB_CONN_MAX_LIFETIME", 5*time.Minute, &problems),

		AllowedOriginsRaw: getEnv("ALLOWED_ORIGINS", "http://localhost:3000"),

		RedisAddress:    os.Getenv("REDIS_ADDRESS"),
		CacheTTL:        getEnvDuration("CACHE_TTL", 60*time.Second, &problems),
		CacheMaxEntries: getEnvInt("CACHE_MAX_ENTRIES", 10000, &problems),

		LogLevel: getEnv("LOG_LEVEL", "info"),
	}
	cfg.parseProblems = problems
	return cfg
}

// Validate returns every configuration problem at once.
func (c Config) Validate() error {
	problems := append([]string(nil), c.parseProblems...)

	if strings.TrimSpace(c.Addr) == "" {
		problems = append(problems, "APP_ADDR cannot be empty")
	}

	if c.DatabaseURL == "" {
		problems = append(problems, "DB_URL is required")
	} else if u, err := url.Parse(c.DatabaseURL); err != nil {
		problems = append(problems, fmt.Sprintf("invalid DB_URL: %v", err))
	} else if u.Scheme != "postgres" && u.Scheme != "postgresql" {
		problems = append(problems, fmt.Sprintf("invalid DB_URL scheme '%s': must be 'postgres' or 'postgresql'", u.Scheme))
	}

	if c.DBMaxOpenConns < 1 {
		problems = append(problems, fmt.Sprintf("invalid DB_MAX_OPEN_CONNS %d: must be at least 1", c.DBMaxOpenConns))
	}
	if c.DBMaxIdleConns < 0 {
		problems = append(problems, fmt.Sprintf("invalid DB_MAX_IDLE_CONNS %d: must not be negative", c.DBMaxIdleConns))
	}

	if c.CacheTTL < time.Second {
		problems = append(problems, fmt.Sprintf("invalid CACHE_TTL %v: must be at least 1 second", c.CacheTTL))
	}

	if c.CacheMaxEntries < 1 {
		problems = append(problems, fmt.Sprintf("invalid CACHE_MAX_ENTRIES %d: must be at least 1", c.CacheMaxEntries))
	}

	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		problems = append(problems, fmt.Sprintf("invalid LOG_LEVEL '%s'", c.LogLevel))
	}

	if len(problems) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(problems, "\n- "))
	}
	return nil
}

func (c Config) AllowedOrigins() []string {
	var origins []string
	for _, o := range strings.Split(c.AllowedOriginsRaw, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// The typed getters keep the fallback for malformed values and record the
// problem so Validate can report it.

func getEnvInt(key string, fallback int, problems *[]string) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	i, err := strconv.Atoi(value)
	if err != nil {
		*problems = append(*problems, fmt.Sprintf("invalid %s '%s': must be an integer", key, value))
		return fallback
	}
	return i
}

func getEnvBool(key string, fallback bool, problems *[]string) bool {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		*problems = append(*problems, fmt.Sprintf("invalid %s '%s': must be true or false", key, value))
		return fallback
	}
	return b
}

func getEnvDuration(key string, fallback time.Duration, problems *[]string) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		*problems = append(*problems, fmt.Sprintf("invalid %s '%s': must be a duration such as 30s", key, value))
		return fallback
	}
	return d
}
