package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/prefeitura-rio/app-cnh/internal/models"
	"github.com/prefeitura-rio/app-cnh/internal/utils"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// MongoStore persists records as documents of a single collection,
// with a unique index on registro
type MongoStore struct {
	client     *mongo.Client
	collection *mongo.Collection
}

// NewMongoStore wraps an existing collection. The caller owns the client
// lifecycle unless it is handed over through Close.
func NewMongoStore(client *mongo.Client, collection *mongo.Collection) *MongoStore {
	return &MongoStore{
		client:     client,
		collection: collection,
	}
}

// EnsureIndexes creates the unique registro index if it doesn't exist
func (s *MongoStore) EnsureIndexes(ctx context.Context) error {
	_, err := s.collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: models.FieldRegistro, Value: 1}},
		Options: options.Index().SetUnique(true).SetName("registro_1"),
	})
	if err != nil {
		return fmt.Errorf("failed to create registro index: %w", err)
	}
	return nil
}

// Backend implements Store
func (s *MongoStore) Backend() string {
	return "mongodb"
}

// noID keeps the Mongo _id out of decoded records.
var noID = bson.M{"_id": 0}

// Create implements Store
func (s *MongoStore) Create(ctx context.Context, cnh *models.CNH) error {
	if _, err := utils.InsertOneWithTimeout(ctx, s.collection, cnh, utils.DefaultQueryTimeout); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return models.AlreadyExists(cnh.Registro)
		}
		return fmt.Errorf("failed to insert CNH: %w", err)
	}
	return nil
}

// List implements Store
func (s *MongoStore) List(ctx context.Context) ([]models.CNH, error) {
	findOptions := options.Find().
		SetProjection(noID).
		SetSort(bson.D{{Key: models.FieldRegistro, Value: 1}})

	cnhs := []models.CNH{}
	if err := utils.FindAllWithTimeout(ctx, s.collection, bson.M{}, findOptions, &cnhs, utils.DefaultQueryTimeout); err != nil {
		return nil, fmt.Errorf("failed to list CNHs: %w", err)
	}
	return cnhs, nil
}

// Get implements Store
func (s *MongoStore) Get(ctx context.Context, registro string) (*models.CNH, error) {
	var cnh models.CNH
	err := utils.FindOneWithProjectionAndTimeout(ctx, s.collection,
		bson.M{models.FieldRegistro: registro}, noID, &cnh, utils.DefaultQueryTimeout)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, models.NotFound(registro)
		}
		return nil, fmt.Errorf("failed to get CNH: %w", err)
	}
	return &cnh, nil
}

// Update implements Store
func (s *MongoStore) Update(ctx context.Context, registro string, fields map[string]string) (*models.CNH, error) {
	if len(fields) == 0 {
		return s.Get(ctx, registro)
	}
	if err := checkUpdateFields(fields); err != nil {
		return nil, err
	}

	set := bson.M{}
	for name, value := range fields {
		set[name] = value
	}

	var cnh models.CNH
	err := utils.FindOneAndUpdateWithTimeout(ctx, s.collection,
		bson.M{models.FieldRegistro: registro},
		bson.M{"$set": set},
		noID, &cnh, utils.DefaultQueryTimeout)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, models.NotFound(registro)
		}
		return nil, fmt.Errorf("failed to update CNH: %w", err)
	}
	return &cnh, nil
}

// Delete implements Store
func (s *MongoStore) Delete(ctx context.Context, registro string) (*models.CNH, error) {
	var cnh models.CNH
	err := utils.FindOneAndDeleteWithTimeout(ctx, s.collection,
		bson.M{models.FieldRegistro: registro}, noID, &cnh, utils.DefaultQueryTimeout)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, models.NotFound(registro)
		}
		return nil, fmt.Errorf("failed to delete CNH: %w", err)
	}
	return &cnh, nil
}

// Ping implements Store
func (s *MongoStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx, readpref.Primary())
}

// Close implements Store
func (s *MongoStore) Close() error {
	if s.client == nil {
		return nil
	}
	return s.client.Disconnect(context.Background())
}
