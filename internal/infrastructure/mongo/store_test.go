package mongo_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"

	"github.com/jhoicas/inventario-storage/internal/domain"
	"github.com/jhoicas/inventario-storage/internal/infrastructure/mongo"
)

func TestStore_ConDespliegueSimulado(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("get devuelve el json guardado", func(mt *mtest.T) {
		ns := mt.Coll.Database().Name() + "." + mt.Coll.Name()
		mt.AddMockResponses(mtest.CreateCursorResponse(1, ns, mtest.FirstBatch, bson.D{
			{Key: "_id", Value: "inventarioApp"},
			{Key: "data", Value: `{"users":[]}`},
		}))

		got, err := mongo.NewStore(mt.Coll).Get(context.Background(), "inventarioApp")
		require.NoError(mt, err)
		assert.Equal(mt, `{"users":[]}`, string(got))
	})

	mt.Run("get sin documento es not found", func(mt *mtest.T) {
		ns := mt.Coll.Database().Name() + "." + mt.Coll.Name()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch))

		_, err := mongo.NewStore(mt.Coll).Get(context.Background(), "inventarioApp")
		assert.ErrorIs(mt, err, domain.ErrNotFound)
	})

	mt.Run("put hace upsert", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse(
			bson.E{Key: "n", Value: 1},
			bson.E{Key: "nModified", Value: 0},
			bson.E{Key: "upserted", Value: bson.A{bson.D{{Key: "index", Value: 0}, {Key: "_id", Value: "inventarioApp"}}}},
		))

		err := mongo.NewStore(mt.Coll).Put(context.Background(), "inventarioApp", []byte(`{"users":[]}`))
		require.NoError(mt, err)
	})
}
