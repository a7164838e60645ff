package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/jhoicas/inventario-storage/internal/domain"
	"github.com/jhoicas/inventario-storage/internal/domain/repository"
)

var _ repository.DocumentStore = (*Store)(nil)

// Store guarda el documento como un string de Redis bajo la misma clave, sin TTL.
type Store struct {
	rdb redis.UniversalClient
}

// NewStore envuelve un cliente ya construido.
func NewStore(rdb redis.UniversalClient) *Store {
	return &Store{rdb: rdb}
}

// Connect parsea la URL, abre el cliente y verifica la conexión.
func Connect(ctx context.Context, url string) (*Store, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("invalid redis url: %w", err)
	}
	rdb := redis.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}
	return &Store{rdb: rdb}, nil
}

// Get lee el documento de key.
func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	data, err := s.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("redis get %s: %w", key, err)
	}
	return data, nil
}

// Put reemplaza el documento de key.
func (s *Store) Put(ctx context.Context, key string, data []byte) error {
	if err := s.rdb.Set(ctx, key, data, 0).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	return nil
}

// Close cierra la conexión.
func (s *Store) Close() error {
	return s.rdb.Close()
}
