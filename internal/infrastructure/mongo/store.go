package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/jhoicas/inventario-storage/internal/domain"
	"github.com/jhoicas/inventario-storage/internal/domain/repository"
)

var _ repository.DocumentStore = (*Store)(nil)

// storedDocument forma del registro en la colección: el JSON se guarda tal cual en data.
type storedDocument struct {
	Key       string    `bson:"_id"`
	Data      string    `bson:"data"`
	UpdatedAt time.Time `bson:"updatedAt"`
}

// Store guarda el documento en una colección de MongoDB, un registro por clave.
type Store struct {
	coll *mongo.Collection
}

// NewStore envuelve una colección ya abierta.
func NewStore(coll *mongo.Collection) *Store {
	return &Store{coll: coll}
}

// Connect abre el cliente, verifica la conexión y devuelve el store junto al cliente para cerrarlo.
func Connect(ctx context.Context, uri, database, collection string) (*Store, *mongo.Client, error) {
	connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, nil, fmt.Errorf("conectar mongo: %w", err)
	}
	if err := client.Ping(connectCtx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, nil, fmt.Errorf("ping mongo: %w", err)
	}
	return NewStore(client.Database(database).Collection(collection)), client, nil
}

// Get lee el documento de key.
func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	var doc storedDocument
	err := s.coll.FindOne(ctx, bson.M{"_id": key}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("mongo find %s: %w", key, err)
	}
	return []byte(doc.Data), nil
}

// Put reemplaza (o inserta) el documento de key.
func (s *Store) Put(ctx context.Context, key string, data []byte) error {
	doc := storedDocument{Key: key, Data: string(data), UpdatedAt: time.Now().UTC()}
	_, err := s.coll.ReplaceOne(ctx, bson.M{"_id": key}, doc, options.Replace().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("mongo replace %s: %w", key, err)
	}
	return nil
}
