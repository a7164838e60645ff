// Package backend elige e inicializa el DocumentStore según STORAGE_DRIVER.
package backend

import (
	"context"
	"fmt"

	"github.com/spf13/afero"

	"github.com/jhoicas/inventario-storage/internal/domain/repository"
	"github.com/jhoicas/inventario-storage/internal/infrastructure/file"
	"github.com/jhoicas/inventario-storage/internal/infrastructure/memory"
	"github.com/jhoicas/inventario-storage/internal/infrastructure/mongo"
	"github.com/jhoicas/inventario-storage/internal/infrastructure/postgres"
	"github.com/jhoicas/inventario-storage/internal/infrastructure/redis"
	"github.com/jhoicas/inventario-storage/internal/infrastructure/sqlite"
	"github.com/jhoicas/inventario-storage/pkg/config"
	"github.com/jhoicas/inventario-storage/pkg/logger"
)

// CloseFunc libera las conexiones del backend.
type CloseFunc func() error

func noopClose() error { return nil }

// Open construye el almacén configurado. El llamador debe invocar el CloseFunc devuelto.
func Open(ctx context.Context, cfg *config.Config, log *logger.Logger) (repository.DocumentStore, CloseFunc, error) {
	driver := cfg.Storage.Driver
	log.Info().Str("driver", driver).Str("key", cfg.Storage.Key).Msg("abriendo almacenamiento")

	switch driver {
	case config.DriverMemory:
		return memory.NewStore(), noopClose, nil

	case config.DriverFile:
		s, err := file.NewStore(afero.NewOsFs(), cfg.Storage.Dir)
		if err != nil {
			return nil, nil, err
		}
		return s, noopClose, nil

	case config.DriverRedis:
		s, err := redis.Connect(ctx, cfg.Storage.RedisURL)
		if err != nil {
			return nil, nil, err
		}
		return s, s.Close, nil

	case config.DriverPostgres:
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			return nil, nil, fmt.Errorf("conexión a PostgreSQL: %w", err)
		}
		s := postgres.NewDocumentStore(pool)
		if err := s.EnsureSchema(ctx); err != nil {
			pool.Close()
			return nil, nil, err
		}
		return s, func() error { pool.Close(); return nil }, nil

	case config.DriverSQLite:
		s, err := sqlite.Open(cfg.Storage.SQLitePath)
		if err != nil {
			return nil, nil, err
		}
		return s, s.Close, nil

	case config.DriverMongo:
		s, client, err := mongo.Connect(ctx, cfg.Storage.MongoURI, cfg.Storage.MongoDatabase, cfg.Storage.MongoCollection)
		if err != nil {
			return nil, nil, err
		}
		return s, func() error { return client.Disconnect(context.Background()) }, nil
	}
	return nil, nil, fmt.Errorf("STORAGE_DRIVER desconocido: %q", driver)
}
