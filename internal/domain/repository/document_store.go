package repository

import "context"

// DocumentStore es el puerto de persistencia del documento completo (DIP): un almacén clave-valor
// de bytes. Get devuelve domain.ErrNotFound si la clave no existe.
type DocumentStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, data []byte) error
}
