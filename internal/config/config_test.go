package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetEnvOrDefault(t *testing.T) {
	tests := []struct {
		name         string
		key          string
		defaultValue string
		envValue     string
		setEnv       bool
		want         string
	}{
		{
			name:         "environment variable set",
			key:          "TEST_KEY_1",
			defaultValue: "default",
			envValue:     "custom",
			setEnv:       true,
			want:         "custom",
		},
		{
			name:         "environment variable not set",
			key:          "TEST_KEY_2",
			defaultValue: "default",
			envValue:     "",
			setEnv:       false,
			want:         "default",
		},
		{
			name:         "empty environment variable",
			key:          "TEST_KEY_3",
			defaultValue: "default",
			envValue:     "",
			setEnv:       true,
			want:         "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.setEnv {
				t.Setenv(tt.key, tt.envValue)
			} else {
				os.Unsetenv(tt.key)
			}

			got := getEnvOrDefault(tt.key, tt.defaultValue)
			if got != tt.want {
				t.Errorf("getEnvOrDefault() = %v, want %v", got, tt.want)
			}
		})
	}
}

func clearConfigEnv(t *testing.T) {
	for _, key := range []string{
		"PORT", "ENVIRONMENT", "SHUTDOWN_TIMEOUT", "STORAGE_BACKEND", "SQLITE_PATH",
		"MONGODB_URI", "MONGODB_DATABASE", "MONGODB_CNH_COLLECTION",
		"REDIS_URI", "REDIS_PASSWORD", "REDIS_DB", "REDIS_KEY_PREFIX",
		"TRACING_ENABLED", "TRACING_ENDPOINT",
	} {
		if value, ok := os.LookupEnv(key); ok {
			os.Unsetenv(key)
			t.Cleanup(func() { os.Setenv(key, value) })
		}
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	clearConfigEnv(t)

	require.NoError(t, LoadConfig())
	require.NotNil(t, AppConfig)

	assert.Equal(t, 8080, AppConfig.Port)
	assert.Equal(t, "development", AppConfig.Environment)
	assert.Equal(t, 30*time.Second, AppConfig.ShutdownTimeout)
	assert.Equal(t, BackendSQLite, AppConfig.StorageBackend)
	assert.Equal(t, "cnh.db", AppConfig.SQLitePath)
	assert.Equal(t, "mongodb://localhost:27017", AppConfig.MongoURI)
	assert.Equal(t, "cnh", AppConfig.MongoDatabase)
	assert.Equal(t, "cnhs", AppConfig.CNHCollection)
	assert.Equal(t, "localhost:6379", AppConfig.RedisURI)
	assert.Equal(t, 0, AppConfig.RedisDB)
	assert.Equal(t, "cnh", AppConfig.RedisKeyPrefix)
	assert.False(t, AppConfig.TracingEnabled)
	assert.Equal(t, "localhost:4317", AppConfig.TracingEndpoint)
}

func TestLoadConfig_FromEnvironment(t *testing.T) {
	clearConfigEnv(t)
	t.Setenv("PORT", "9090")
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("STORAGE_BACKEND", "MongoDB")
	t.Setenv("MONGODB_CNH_COLLECTION", "habilitacoes")
	t.Setenv("REDIS_DB", "3")
	t.Setenv("TRACING_ENABLED", "true")
	t.Setenv("SHUTDOWN_TIMEOUT", "5s")

	require.NoError(t, LoadConfig())

	assert.Equal(t, 9090, AppConfig.Port)
	assert.Equal(t, "production", AppConfig.Environment)
	assert.Equal(t, BackendMongoDB, AppConfig.StorageBackend)
	assert.Equal(t, "habilitacoes", AppConfig.CNHCollection)
	assert.Equal(t, 3, AppConfig.RedisDB)
	assert.True(t, AppConfig.TracingEnabled)
	assert.Equal(t, 5*time.Second, AppConfig.ShutdownTimeout)
}

func TestLoadConfig_InvalidValues(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{name: "invalid port", key: "PORT", value: "not-a-number"},
		{name: "invalid redis db", key: "REDIS_DB", value: "x"},
		{name: "invalid shutdown timeout", key: "SHUTDOWN_TIMEOUT", value: "soon"},
		{name: "invalid tracing flag", key: "TRACING_ENABLED", value: "maybe"},
		{name: "unknown backend", key: "STORAGE_BACKEND", value: "postgres"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearConfigEnv(t)
			t.Setenv(tt.key, tt.value)

			err := LoadConfig()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.key)
		})
	}
}
