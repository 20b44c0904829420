package store

import (
	"context"
	"fmt"
	"sort"

	"github.com/prefeitura-rio/app-cnh/internal/models"
	"github.com/prefeitura-rio/app-cnh/internal/redisclient"
	"github.com/redis/go-redis/v9"
)

// RedisStore keeps each record in a hash ("<prefix>:registro:<registro>") and
// the set of known registros in "<prefix>:index"
type RedisStore struct {
	client *redisclient.Client
	prefix string
}

// NewRedisStore creates a store on top of a traced Redis client
func NewRedisStore(client *redisclient.Client, prefix string) *RedisStore {
	if prefix == "" {
		prefix = "cnh"
	}
	return &RedisStore{
		client: client,
		prefix: prefix,
	}
}

func (s *RedisStore) key(registro string) string {
	return s.prefix + ":registro:" + registro
}

func (s *RedisStore) indexKey() string {
	return s.prefix + ":index"
}

// Backend implements Store
func (s *RedisStore) Backend() string {
	return "redis"
}

func toHashValues(fields map[string]string) map[string]interface{} {
	values := make(map[string]interface{}, len(fields))
	for k, v := range fields {
		values[k] = v
	}
	return values
}

// Create implements Store
func (s *RedisStore) Create(ctx context.Context, cnh *models.CNH) error {
	// SADD is atomic, so the index doubles as the uniqueness check.
	added, err := s.client.SAdd(ctx, s.indexKey(), cnh.Registro).Result()
	if err != nil {
		return fmt.Errorf("failed to reserve registro: %w", err)
	}
	if added == 0 {
		return models.AlreadyExists(cnh.Registro)
	}

	if err := s.client.HSet(ctx, s.key(cnh.Registro), toHashValues(cnh.ToMap())).Err(); err != nil {
		s.client.SRem(ctx, s.indexKey(), cnh.Registro)
		return fmt.Errorf("failed to insert CNH: %w", err)
	}
	return nil
}

// List implements Store
func (s *RedisStore) List(ctx context.Context) ([]models.CNH, error) {
	registros, err := s.client.SMembers(ctx, s.indexKey()).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list registros: %w", err)
	}
	sort.Strings(registros)

	cmds := make([]*redis.MapStringStringCmd, len(registros))
	if len(registros) > 0 {
		_, err = s.client.Pipelined(ctx, func(pipe redis.Pipeliner) error {
			for i, registro := range registros {
				cmds[i] = pipe.HGetAll(ctx, s.key(registro))
			}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("failed to list CNHs: %w", err)
		}
	}

	cnhs := make([]models.CNH, 0, len(registros))
	for _, cmd := range cmds {
		values := cmd.Val()
		if len(values) == 0 {
			continue
		}
		cnhs = append(cnhs, models.CNHFromMap(values))
	}
	return cnhs, nil
}

// Get implements Store
func (s *RedisStore) Get(ctx context.Context, registro string) (*models.CNH, error) {
	values, err := s.client.HGetAll(ctx, s.key(registro)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get CNH: %w", err)
	}
	if len(values) == 0 {
		return nil, models.NotFound(registro)
	}
	cnh := models.CNHFromMap(values)
	return &cnh, nil
}

// Update implements Store
func (s *RedisStore) Update(ctx context.Context, registro string, fields map[string]string) (*models.CNH, error) {
	if err := checkUpdateFields(fields); err != nil {
		return nil, err
	}

	exists, err := s.client.Exists(ctx, s.key(registro)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to check CNH: %w", err)
	}
	if exists == 0 {
		return nil, models.NotFound(registro)
	}

	if len(fields) > 0 {
		if err := s.client.HSet(ctx, s.key(registro), toHashValues(fields)).Err(); err != nil {
			return nil, fmt.Errorf("failed to update CNH: %w", err)
		}
	}
	return s.Get(ctx, registro)
}

// Delete implements Store
func (s *RedisStore) Delete(ctx context.Context, registro string) (*models.CNH, error) {
	cnh, err := s.Get(ctx, registro)
	if err != nil {
		return nil, err
	}

	_, err = s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, s.key(registro))
		pipe.SRem(ctx, s.indexKey(), registro)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to delete CNH: %w", err)
	}
	return cnh, nil
}

// Ping implements Store
func (s *RedisStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

// Close implements Store
func (s *RedisStore) Close() error {
	return s.client.Close()
}
