package file

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"github.com/spf13/afero"

	"github.com/jhoicas/inventario-storage/internal/domain"
	"github.com/jhoicas/inventario-storage/internal/domain/repository"
)

var _ repository.DocumentStore = (*Store)(nil)

var validKey = regexp.MustCompile(`^[A-Za-z0-9_.-]+$`)

// Store guarda cada documento como <dir>/<key>.json. Put escribe en un temporal y renombra,
// así una lectura nunca ve un documento a medio escribir.
type Store struct {
	fs  afero.Fs
	dir string
}

// NewStore construye el adaptador sobre el sistema de archivos fs (afero.NewOsFs() en producción).
func NewStore(fs afero.Fs, dir string) (*Store, error) {
	if err := fs.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("crear directorio de datos: %w", err)
	}
	return &Store{fs: fs, dir: dir}, nil
}

func (s *Store) path(key string) (string, error) {
	if !validKey.MatchString(key) {
		return "", fmt.Errorf("clave %q: %w", key, domain.ErrInvalidInput)
	}
	return filepath.Join(s.dir, key+".json"), nil
}

// Get lee el documento de key.
func (s *Store) Get(_ context.Context, key string) ([]byte, error) {
	p, err := s.path(key)
	if err != nil {
		return nil, err
	}
	data, err := afero.ReadFile(s.fs, p)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("leer documento: %w", err)
	}
	return data, nil
}

// Put reemplaza atómicamente el documento de key.
func (s *Store) Put(_ context.Context, key string, data []byte) error {
	p, err := s.path(key)
	if err != nil {
		return err
	}
	tmp := p + ".tmp"
	if err := afero.WriteFile(s.fs, tmp, data, 0o644); err != nil {
		return fmt.Errorf("escribir temporal: %w", err)
	}
	if err := s.fs.Rename(tmp, p); err != nil {
		_ = s.fs.Remove(tmp)
		return fmt.Errorf("reemplazar documento: %w", err)
	}
	return nil
}
