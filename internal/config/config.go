package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Directory sources
const (
	DirectoryBuiltin  = "builtin"
	DirectoryFile     = "file"
	DirectoryURL      = "url"
	DirectoryDatabase = "database"
)

type Config struct {
	DatabaseType          string
	DatabaseURL           string
	MigrationsPath        string
	Port                  string
	BindIP                string
	DirectorySource       string
	DirectoryPath         string
	DirectoryURL          string
	DirectoryFetchTimeout time.Duration
	RequestTimeout        time.Duration
	AllowedOrigins        []string
	EnableMetrics         bool
	LogJSON               bool
	Debug                 bool
}

func Load() *Config {
	cfg := &Config{
		DatabaseType:          getEnv("DATABASE_TYPE", "sqlite"),
		DatabaseURL:           getEnv("DATABASE_URL", ""),
		MigrationsPath:        getEnv("MIGRATIONS_PATH", "migrations"),
		Port:                  getEnv("PORT", "8080"),
		BindIP:                getEnv("IP", "0.0.0.0"),
		DirectorySource:       getEnv("DIRECTORY_SOURCE", DirectoryBuiltin),
		DirectoryPath:         getEnv("DIRECTORY_PATH", ""),
		DirectoryURL:          getEnv("DIRECTORY_URL", ""),
		DirectoryFetchTimeout: getEnvDuration("DIRECTORY_FETCH_TIMEOUT", 30*time.Second),
		RequestTimeout:        getEnvDuration("REQUEST_TIMEOUT", 10*time.Second),
		AllowedOrigins:        getEnvList("ALLOWED_ORIGINS", []string{"*"}),
		EnableMetrics:         getEnvBool("ENABLE_METRICS", true),
		LogJSON:               getEnv("LOG_FORMAT", "text") == "json",
		Debug:                 getEnvBool("DEBUG", false),
	}

	// Set defaults for database
	if cfg.DatabaseURL == "" {
		if cfg.DatabaseType == "sqlite" {
			cfg.DatabaseURL = "foodbridge.db"
		}
	}

	return cfg
}

// UsesDatabase reports whether the server needs a database connection
func (c *Config) UsesDatabase() bool {
	return c.DirectorySource == DirectoryDatabase
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
		// Plain integers are seconds
		if secs, err := strconv.Atoi(value); err == nil {
			return time.Duration(secs) * time.Second
		}
	}
	return defaultValue
}

func getEnvList(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	var out []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}
