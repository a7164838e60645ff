package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/inventario-storage/internal/domain"
	"github.com/jhoicas/inventario-storage/internal/domain/repository"
)

var _ repository.DocumentStore = (*DocumentStore)(nil)

const schemaSQL = `
	CREATE TABLE IF NOT EXISTS app_documents (
		key        TEXT PRIMARY KEY,
		data       JSONB NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`

const selectDocumentSQL = `SELECT data FROM app_documents WHERE key = $1`

const upsertDocumentSQL = `
	INSERT INTO app_documents (key, data, updated_at)
	VALUES ($1, $2, now())
	ON CONFLICT (key) DO UPDATE SET data = EXCLUDED.data, updated_at = now()`

// DocumentStore guarda cada documento como una fila JSONB de app_documents (usable con pool o tx).
type DocumentStore struct {
	q Querier
}

// NewDocumentStore construye el adaptador. Pasar pool o tx (Querier).
func NewDocumentStore(q Querier) *DocumentStore {
	return &DocumentStore{q: q}
}

// EnsureSchema crea la tabla si no existe.
func (s *DocumentStore) EnsureSchema(ctx context.Context) error {
	if _, err := s.q.Exec(ctx, schemaSQL); err != nil {
		return fmt.Errorf("crear tabla app_documents: %w", err)
	}
	return nil
}

// Get obtiene el documento por clave.
func (s *DocumentStore) Get(ctx context.Context, key string) ([]byte, error) {
	var data []byte
	err := s.q.QueryRow(ctx, selectDocumentSQL, key).Scan(&data)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get document: %w", err)
	}
	return data, nil
}

// Put inserta o reemplaza el documento en una sola sentencia.
func (s *DocumentStore) Put(ctx context.Context, key string, data []byte) error {
	if _, err := s.q.Exec(ctx, upsertDocumentSQL, key, string(data)); err != nil {
		return fmt.Errorf("upsert document: %w", err)
	}
	return nil
}
