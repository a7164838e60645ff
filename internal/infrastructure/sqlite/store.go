package sqlite

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	gormlogger "gorm.io/gorm/logger"

	"github.com/jhoicas/inventario-storage/internal/domain"
	"github.com/jhoicas/inventario-storage/internal/domain/repository"
)

var _ repository.DocumentStore = (*Store)(nil)

// StoredDocument fila de la tabla documents: un documento serializado por clave.
type StoredDocument struct {
	Key       string `gorm:"column:doc_key;primaryKey;size:128"`
	Data      string `gorm:"type:text;not null"`
	UpdatedAt time.Time
}

// TableName fija el nombre de la tabla.
func (StoredDocument) TableName() string { return "documents" }

// Store guarda el documento en una base SQLite embebida vía GORM.
type Store struct {
	db *gorm.DB
}

// Open abre (o crea) la base en path y migra la tabla.
func Open(path string) (*Store, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("abrir sqlite %s: %w", path, err)
	}
	return NewStore(db)
}

// NewStore construye el adaptador sobre una conexión GORM existente y migra la tabla.
func NewStore(db *gorm.DB) (*Store, error) {
	if err := db.AutoMigrate(&StoredDocument{}); err != nil {
		return nil, fmt.Errorf("migrar documents: %w", err)
	}
	return &Store{db: db}, nil
}

// Get lee el documento de key.
func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	var doc StoredDocument
	err := s.db.WithContext(ctx).First(&doc, "doc_key = ?", key).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("leer documento: %w", err)
	}
	return []byte(doc.Data), nil
}

// Put inserta o reemplaza el documento de key.
func (s *Store) Put(ctx context.Context, key string, data []byte) error {
	doc := StoredDocument{Key: key, Data: string(data), UpdatedAt: time.Now()}
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "doc_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"data", "updated_at"}),
	}).Create(&doc).Error
	if err != nil {
		return fmt.Errorf("guardar documento: %w", err)
	}
	return nil
}

// Close cierra la conexión subyacente.
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
