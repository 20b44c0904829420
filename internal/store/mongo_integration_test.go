//go:build integration

package store

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/mongodb"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoStoreSuite struct {
	StoreContractSuite
	client  *mongo.Client
	cleanup func()
	counter int
}

func TestMongoStoreSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	ctx := context.Background()
	container, err := mongodb.Run(ctx, "mongo:7.0")
	require.NoError(t, err, "Failed to start MongoDB container")

	uri, err := container.ConnectionString(ctx)
	require.NoError(t, err)

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	require.NoError(t, err)

	s := &MongoStoreSuite{client: client}
	s.newStore = func() Store {
		// Each test gets its own collection, and Close must leave the
		// shared client connected.
		s.counter++
		collection := client.Database("cnh_test").Collection(fmt.Sprintf("cnhs_%d", s.counter))
		st := NewMongoStore(nil, collection)
		require.NoError(s.T(), st.EnsureIndexes(ctx))
		return &sharedClientMongoStore{MongoStore: st, client: client}
	}

	defer func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = client.Disconnect(disconnectCtx)
		_ = testcontainers.TerminateContainer(container)
	}()

	suite.Run(t, s)
}

// sharedClientMongoStore pings through the shared client and leaves it open on Close.
type sharedClientMongoStore struct {
	*MongoStore
	client *mongo.Client
}

func (s *sharedClientMongoStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx, nil)
}

func (s *sharedClientMongoStore) Close() error {
	return s.collection.Drop(context.Background())
}
