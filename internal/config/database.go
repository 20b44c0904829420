package config

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/prefeitura-rio/app-cnh/internal/logging"
	"github.com/prefeitura-rio/app-cnh/internal/redisclient"
	"github.com/prefeitura-rio/app-cnh/internal/store"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.opentelemetry.io/contrib/instrumentation/go.mongodb.org/mongo-driver/mongo/otelmongo"
	"go.uber.org/zap"
)

// InitStore opens the storage backend selected by STORAGE_BACKEND
func InitStore(ctx context.Context) (store.Store, error) {
	if AppConfig == nil {
		return nil, fmt.Errorf("configuration not loaded")
	}

	switch AppConfig.StorageBackend {
	case BackendMemory:
		logging.Logger.Info("using in-memory store")
		return store.NewMemoryStore(), nil
	case BackendSQLite:
		return initSQLite()
	case BackendMongoDB:
		return initMongoDB(ctx)
	case BackendRedis:
		return initRedis(ctx)
	default:
		return nil, fmt.Errorf("unsupported storage backend: %s", AppConfig.StorageBackend)
	}
}

func initSQLite() (store.Store, error) {
	s, err := store.OpenSQLite(AppConfig.SQLitePath)
	if err != nil {
		return nil, err
	}

	logging.Logger.Info("Opened SQLite database",
		zap.String("path", AppConfig.SQLitePath),
	)
	return s, nil
}

// initMongoDB initializes the MongoDB connection
func initMongoDB(ctx context.Context) (store.Store, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	// Configure MongoDB with optimizations
	opts := options.Client().
		ApplyURI(AppConfig.MongoURI).
		SetMonitor(otelmongo.NewMonitor()). // Add OpenTelemetry instrumentation
		SetMaxPoolSize(100).
		SetMinPoolSize(10).
		SetMaxConnIdleTime(5 * time.Minute).
		SetRetryWrites(true).
		SetRetryReads(true)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	// Ping the database
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}

	collection := client.Database(AppConfig.MongoDatabase).Collection(AppConfig.CNHCollection)
	s := store.NewMongoStore(client, collection)

	// Registro uniqueness depends on this index, so the store is unusable without it.
	if err := s.EnsureIndexes(ctx); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("failed to ensure CNH indexes: %w", err)
	}

	logging.Logger.Info("Connected to MongoDB",
		zap.String("uri", maskMongoURI(AppConfig.MongoURI)),
		zap.String("database", AppConfig.MongoDatabase),
		zap.String("collection", AppConfig.CNHCollection),
	)
	return s, nil
}

// initRedis initializes the Redis connection
func initRedis(ctx context.Context) (store.Store, error) {
	redisClient := redis.NewClient(&redis.Options{
		Addr:         AppConfig.RedisURI,
		Password:     AppConfig.RedisPassword,
		DB:           AppConfig.RedisDB,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		PoolSize:     10,
		MinIdleConns: 5,
	})
	client := redisclient.NewClient(redisClient)

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	logging.Logger.Info("Connected to Redis",
		zap.String("addr", AppConfig.RedisURI),
		zap.Int("db", AppConfig.RedisDB),
	)
	return store.NewRedisStore(client, AppConfig.RedisKeyPrefix), nil
}

// maskMongoURI hides the credentials of a MongoDB connection string
func maskMongoURI(uri string) string {
	at := strings.LastIndex(uri, "@")
	if at < 0 {
		return uri
	}
	scheme := "mongodb://"
	if i := strings.Index(uri, "://"); i >= 0 {
		scheme = uri[:i+3]
	}
	return scheme + "****:****@" + uri[at+1:]
}
