package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Storage backends accepted by STORAGE_BACKEND
const (
	BackendMemory  = "memory"
	BackendSQLite  = "sqlite"
	BackendMongoDB = "mongodb"
	BackendRedis   = "redis"
)

// Config holds all configuration values
type Config struct {
	// Server configuration
	Port            int           `json:"port"`
	Environment     string        `json:"environment"`
	ShutdownTimeout time.Duration `json:"shutdown_timeout"`

	// Storage configuration
	StorageBackend string `json:"storage_backend"`
	SQLitePath     string `json:"sqlite_path"`

	// MongoDB configuration
	MongoURI      string `json:"mongo_uri"`
	MongoDatabase string `json:"mongo_database"`
	CNHCollection string `json:"mongo_cnh_collection"`

	// Redis configuration
	RedisURI       string `json:"redis_uri"`
	RedisPassword  string `json:"redis_password"`
	RedisDB        int    `json:"redis_db"`
	RedisKeyPrefix string `json:"redis_key_prefix"`

	// Tracing configuration
	TracingEnabled  bool   `json:"tracing_enabled"`
	TracingEndpoint string `json:"tracing_endpoint"`
}

var (
	AppConfig *Config
)

// LoadConfig loads configuration from environment variables
func LoadConfig() error {
	port, err := strconv.Atoi(getEnvOrDefault("PORT", "8080"))
	if err != nil {
		return fmt.Errorf("invalid PORT: %w", err)
	}

	redisDB, err := strconv.Atoi(getEnvOrDefault("REDIS_DB", "0"))
	if err != nil {
		return fmt.Errorf("invalid REDIS_DB: %w", err)
	}

	shutdownTimeout, err := time.ParseDuration(getEnvOrDefault("SHUTDOWN_TIMEOUT", "30s"))
	if err != nil {
		return fmt.Errorf("invalid SHUTDOWN_TIMEOUT: %w", err)
	}

	tracingEnabled, err := strconv.ParseBool(getEnvOrDefault("TRACING_ENABLED", "false"))
	if err != nil {
		return fmt.Errorf("invalid TRACING_ENABLED: %w", err)
	}

	backend := strings.ToLower(getEnvOrDefault("STORAGE_BACKEND", BackendSQLite))
	if !isValidBackend(backend) {
		return fmt.Errorf("invalid STORAGE_BACKEND %q: must be one of %s, %s, %s, %s",
			backend, BackendMemory, BackendSQLite, BackendMongoDB, BackendRedis)
	}

	AppConfig = &Config{
		// Server configuration
		Port:            port,
		Environment:     getEnvOrDefault("ENVIRONMENT", "development"),
		ShutdownTimeout: shutdownTimeout,

		// Storage configuration
		StorageBackend: backend,
		SQLitePath:     getEnvOrDefault("SQLITE_PATH", "cnh.db"),

		// MongoDB configuration
		MongoURI:      getEnvOrDefault("MONGODB_URI", "mongodb://localhost:27017"),
		MongoDatabase: getEnvOrDefault("MONGODB_DATABASE", "cnh"),
		CNHCollection: getEnvOrDefault("MONGODB_CNH_COLLECTION", "cnhs"),

		// Redis configuration
		RedisURI:       getEnvOrDefault("REDIS_URI", "localhost:6379"),
		RedisPassword:  getEnvOrDefault("REDIS_PASSWORD", ""),
		RedisDB:        redisDB,
		RedisKeyPrefix: getEnvOrDefault("REDIS_KEY_PREFIX", "cnh"),

		// Tracing configuration
		TracingEnabled:  tracingEnabled,
		TracingEndpoint: getEnvOrDefault("TRACING_ENDPOINT", "localhost:4317"),
	}

	return nil
}

func isValidBackend(backend string) bool {
	switch backend {
	case BackendMemory, BackendSQLite, BackendMongoDB, BackendRedis:
		return true
	}
	return false
}

// getEnvOrDefault returns environment variable value or default if not set
func getEnvOrDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
