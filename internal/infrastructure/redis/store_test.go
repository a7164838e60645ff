package redis_test

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-storage/internal/domain"
	"github.com/jhoicas/inventario-storage/internal/infrastructure/redis"
)

func TestStore_PutYGetContraMiniredis(t *testing.T) {
	mr := miniredis.RunT(t)
	ctx := context.Background()

	s, err := redis.Connect(ctx, "redis://"+mr.Addr()+"/0")
	require.NoError(t, err)
	defer s.Close()

	_, err = s.Get(ctx, "inventarioApp")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	require.NoError(t, s.Put(ctx, "inventarioApp", []byte(`{"users":[]}`)))
	got, err := s.Get(ctx, "inventarioApp")
	require.NoError(t, err)
	assert.Equal(t, `{"users":[]}`, string(got))

	raw, err := mr.Get("inventarioApp")
	require.NoError(t, err)
	assert.Equal(t, `{"users":[]}`, raw)
	assert.Zero(t, mr.TTL("inventarioApp"), "el documento no expira")
}

func TestStore_ErrorDeConexion(t *testing.T) {
	mr := miniredis.RunT(t)
	s := redis.NewStore(goredis.NewClient(&goredis.Options{Addr: mr.Addr()}))
	mr.Close()

	_, err := s.Get(context.Background(), "inventarioApp")
	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrNotFound)
}

func TestConnect_URLInvalida(t *testing.T) {
	_, err := redis.Connect(context.Background(), "://sin-esquema")
	assert.Error(t, err)
}
