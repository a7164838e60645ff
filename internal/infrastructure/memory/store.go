package memory

import (
	"context"
	"sync"

	"github.com/jhoicas/inventario-storage/internal/domain"
	"github.com/jhoicas/inventario-storage/internal/domain/repository"
)

var _ repository.DocumentStore = (*Store)(nil)

// Store guarda documentos en memoria del proceso. Útil para tests y ejecuciones efímeras.
type Store struct {
	mu    sync.RWMutex
	items map[string][]byte
}

// NewStore crea un almacén vacío.
func NewStore() *Store {
	return &Store{items: map[string][]byte{}}
}

// Get devuelve una copia de los bytes guardados bajo key.
func (s *Store) Get(_ context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	data, ok := s.items[key]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return append([]byte(nil), data...), nil
}

// Put reemplaza el documento guardado bajo key.
func (s *Store) Put(_ context.Context, key string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items[key] = append([]byte(nil), data...)
	return nil
}
