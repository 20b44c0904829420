package utils

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// DefaultQueryTimeout is the default timeout for MongoDB queries
const DefaultQueryTimeout = 10 * time.Second

// FindOneWithProjectionAndTimeout performs a MongoDB FindOne operation with projection and timeout
func FindOneWithProjectionAndTimeout(ctx context.Context, collection *mongo.Collection, filter bson.M, projection bson.M, result interface{}, timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	opts := options.FindOne().SetProjection(projection)
	return collection.FindOne(ctx, filter, opts).Decode(result)
}

// FindAllWithTimeout runs a Find and decodes every document into results
// before the timeout context is released
func FindAllWithTimeout(ctx context.Context, collection *mongo.Collection, filter bson.M, opts *options.FindOptions, results interface{}, timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	cursor, err := collection.Find(ctx, filter, opts)
	if err != nil {
		return err
	}
	defer cursor.Close(ctx)

	return cursor.All(ctx, results)
}

// InsertOneWithTimeout performs a MongoDB InsertOne operation with timeout
func InsertOneWithTimeout(ctx context.Context, collection *mongo.Collection, document interface{}, timeout time.Duration) (*mongo.InsertOneResult, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	return collection.InsertOne(ctx, document)
}

// FindOneAndUpdateWithTimeout applies update to the matching document and
// decodes the document as it is after the update
func FindOneAndUpdateWithTimeout(ctx context.Context, collection *mongo.Collection, filter bson.M, update bson.M, projection bson.M, result interface{}, timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	opts := options.FindOneAndUpdate().
		SetReturnDocument(options.After).
		SetProjection(projection)
	return collection.FindOneAndUpdate(ctx, filter, update, opts).Decode(result)
}

// FindOneAndDeleteWithTimeout removes the matching document and decodes it
func FindOneAndDeleteWithTimeout(ctx context.Context, collection *mongo.Collection, filter bson.M, projection bson.M, result interface{}, timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	opts := options.FindOneAndDelete().SetProjection(projection)
	return collection.FindOneAndDelete(ctx, filter, opts).Decode(result)
}
