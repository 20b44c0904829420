package store

import (
	"context"
	"sync"

	"github.com/prefeitura-rio/app-cnh/internal/models"
)

// MemoryStore keeps records in process memory, in insertion order
type MemoryStore struct {
	mu      sync.RWMutex
	records []models.CNH
}

// NewMemoryStore creates an empty in-memory store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Backend implements Store
func (s *MemoryStore) Backend() string {
	return "memory"
}

func (s *MemoryStore) indexOf(registro string) int {
	for i := range s.records {
		if s.records[i].Registro == registro {
			return i
		}
	}
	return -1
}

// Create implements Store
func (s *MemoryStore) Create(_ context.Context, cnh *models.CNH) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.indexOf(cnh.Registro) >= 0 {
		return models.AlreadyExists(cnh.Registro)
	}
	s.records = append(s.records, *cnh)
	return nil
}

// List implements Store
func (s *MemoryStore) List(_ context.Context) ([]models.CNH, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.CNH, len(s.records))
	copy(out, s.records)
	return out, nil
}

// Get implements Store
func (s *MemoryStore) Get(_ context.Context, registro string) (*models.CNH, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.indexOf(registro)
	if i < 0 {
		return nil, models.NotFound(registro)
	}
	cnh := s.records[i]
	return &cnh, nil
}

// Update implements Store
func (s *MemoryStore) Update(_ context.Context, registro string, fields map[string]string) (*models.CNH, error) {
	if err := checkUpdateFields(fields); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(registro)
	if i < 0 {
		return nil, models.NotFound(registro)
	}
	if err := s.records[i].Apply(fields); err != nil {
		return nil, err
	}
	cnh := s.records[i]
	return &cnh, nil
}

// Delete implements Store
func (s *MemoryStore) Delete(_ context.Context, registro string) (*models.CNH, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(registro)
	if i < 0 {
		return nil, models.NotFound(registro)
	}
	cnh := s.records[i]
	s.records = append(s.records[:i], s.records[i+1:]...)
	return &cnh, nil
}

// Ping implements Store
func (s *MemoryStore) Ping(_ context.Context) error {
	return nil
}

// Close implements Store
func (s *MemoryStore) Close() error {
	return nil
}
