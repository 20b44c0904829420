//go:build integration

package store

import (
	"context"
	"testing"

	"github.com/prefeitura-rio/app-cnh/internal/redisclient"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/redis"
)

type RedisStoreSuite struct {
	StoreContractSuite
}

func TestRedisStoreSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	ctx := context.Background()
	container, err := redis.Run(ctx, "redis:7-alpine")
	require.NoError(t, err, "Failed to start Redis container")
	defer func() { _ = testcontainers.TerminateContainer(container) }()

	uri, err := container.ConnectionString(ctx)
	require.NoError(t, err)
	opts, err := goredis.ParseURL(uri)
	require.NoError(t, err)

	s := new(RedisStoreSuite)
	s.newStore = func() Store {
		raw := goredis.NewClient(opts)
		require.NoError(s.T(), raw.FlushDB(ctx).Err())
		return NewRedisStore(redisclient.NewClient(raw), "cnh_test")
	}
	suite.Run(t, s)
}
