package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Port   string `yaml:"port"`
	AppEnv string `yaml:"app_env"`
	// Storage
	DBDriver              string `yaml:"db_driver"` // postgres | sqlite
	DBUrl                 string `yaml:"database_url"`
	SQLitePath            string `yaml:"sqlite_path"`
	EnforceUniqueContacts bool   `yaml:"enforce_unique_contacts"`
	// Logging
	LogLevel string `yaml:"log_level"`
	// CORS
	AllowedOrigins []string `yaml:"allowed_origins"`
	// Redis Configuration
	RedisURL      string `yaml:"redis_url"`
	RedisPassword string `yaml:"redis_password"`
	// Rate Limiting Configuration
	RateLimitWindowSeconds   int `yaml:"rate_limit_window_seconds"`
	RateLimitGlobalThreshold int `yaml:"rate_limit_global_threshold"`
	ShutdownTimeoutSeconds   int `yaml:"shutdown_timeout_seconds"`
}

func defaults() *Config {
	return &Config{
		Port:                     "8080",
		AppEnv:                   "development",
		DBDriver:                 "postgres",
		SQLitePath:               "ats.db",
		LogLevel:                 "info",
		AllowedOrigins:           []string{"http://localhost:3000"},
		RateLimitWindowSeconds:   60,  // 1 minute window
		RateLimitGlobalThreshold: 100, // 100 requests per window
		ShutdownTimeoutSeconds:   10,
	}
}

// LoadConfig layers defaults, the optional YAML file named by CONFIG_FILE and
// the environment (including .env), in that order.
func LoadConfig() (*Config, error) {
	// Load .env file (only present locally)
	_ = godotenv.Load()

	cfg := defaults()

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		if err := loadYAML(path, cfg); err != nil {
			return nil, err
		}
	}

	cfg.Port = getEnv("PORT", cfg.Port)
	cfg.AppEnv = getEnv("APP_ENV", cfg.AppEnv)
	cfg.DBDriver = strings.ToLower(getEnv("DB_DRIVER", cfg.DBDriver))
	cfg.DBUrl = getEnv("DATABASE_URL", cfg.DBUrl)
	cfg.SQLitePath = getEnv("SQLITE_PATH", cfg.SQLitePath)
	cfg.EnforceUniqueContacts = getEnvBool("ENFORCE_UNIQUE_CONTACTS", cfg.EnforceUniqueContacts)
	cfg.LogLevel = getEnv("LOG_LEVEL", cfg.LogLevel)
	cfg.AllowedOrigins = getEnvList("ALLOWED_ORIGINS", cfg.AllowedOrigins)
	cfg.RedisURL = getEnv("REDIS_URL", cfg.RedisURL)
	cfg.RedisPassword = getEnv("REDIS_PASSWORD", cfg.RedisPassword)
	cfg.RateLimitWindowSeconds = getEnvInt("RATE_LIMIT_WINDOW_SECONDS", cfg.RateLimitWindowSeconds)
	cfg.RateLimitGlobalThreshold = getEnvInt("RATE_LIMIT_GLOBAL_THRESHOLD", cfg.RateLimitGlobalThreshold)
	cfg.ShutdownTimeoutSeconds = getEnvInt("SHUTDOWN_TIMEOUT_SECONDS", cfg.ShutdownTimeoutSeconds)

	switch cfg.DBDriver {
	case "postgres":
		if cfg.DBUrl == "" {
			log.Println("WARNING: DATABASE_URL is missing. Application may fail to connect.")
		}
	case "sqlite":
	default:
		return nil, fmt.Errorf("config: unsupported DB_DRIVER %q (want postgres or sqlite)", cfg.DBDriver)
	}

	if cfg.RedisURL == "" {
		log.Println("WARNING: REDIS_URL not configured. Rate limiting will use in-memory fallback.")
	}

	return cfg, nil
}

func loadYAML(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("config: parse %s: %w", path, err)
	}
	return nil
}

// IsProduction reports whether APP_ENV is production.
func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// getEnvInt returns an integer environment variable or fallback if not set/invalid
func getEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}

// getEnvBool returns a boolean environment variable or fallback if not set/invalid
func getEnvBool(key string, fallback bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return fallback
}

// getEnvList splits a comma separated environment variable
func getEnvList(key string, fallback []string) []string {
	value, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}
	var out []string
	for _, part := range strings.Split(value, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
