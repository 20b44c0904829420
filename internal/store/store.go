// Package store persists CNH records keyed by registro.
//
// Every backend honours the same contract: Create fails with
// models.ErrCNHAlreadyExists on a duplicate registro, Get/Update/Delete fail
// with models.ErrCNHNotFound when no record matches, and Update returns the
// stored row after the write.
package store

import (
	"context"

	"github.com/prefeitura-rio/app-cnh/internal/models"
)

// Store is the storage contract for CNH records
type Store interface {
	// Create inserts a normalized record.
	Create(ctx context.Context, cnh *models.CNH) error
	// List returns every stored record.
	List(ctx context.Context) ([]models.CNH, error)
	// Get returns the record with the given registro.
	Get(ctx context.Context, registro string) (*models.CNH, error)
	// Update overwrites the supplied columns and returns the stored row.
	Update(ctx context.Context, registro string, fields map[string]string) (*models.CNH, error)
	// Delete removes the record and returns its last state.
	Delete(ctx context.Context, registro string) (*models.CNH, error)
	// Ping checks that the backend is reachable.
	Ping(ctx context.Context) error
	// Close releases the backend resources.
	Close() error
	// Backend names the storage technology ("memory", "sqlite", ...).
	Backend() string
}

// checkUpdateFields rejects updates that touch the primary key or unknown columns.
func checkUpdateFields(fields map[string]string) error {
	for name := range fields {
		if name == models.FieldRegistro {
			return models.NewImmutableFieldError(name)
		}
		if !models.IsCNHField(name) {
			return models.NewUnknownFieldError(name)
		}
	}
	return nil
}
