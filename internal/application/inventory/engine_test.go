package inventory_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-storage/internal/application/dto"
	"github.com/jhoicas/inventario-storage/internal/application/inventory"
	"github.com/jhoicas/inventario-storage/internal/domain"
	"github.com/jhoicas/inventario-storage/internal/domain/entity"
	"github.com/jhoicas/inventario-storage/internal/infrastructure/memory"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

var testNow = time.Date(2026, 3, 14, 15, 9, 26, 0, time.UTC)

func fixedClock() time.Time { return testNow }

// newEngine motor inicializado sobre un almacén en memoria, con reloj fijo en UTC.
func newEngine(t *testing.T, opts ...inventory.Option) (*inventory.Engine, *memory.Store) {
	t.Helper()
	store := memory.NewStore()
	base := []inventory.Option{inventory.WithClock(fixedClock), inventory.WithLocation(time.UTC)}
	e := inventory.NewEngine(store, append(base, opts...)...)
	require.NoError(t, e.Initialize(context.Background()))
	return e, store
}

// newDemoEngine motor con los datos de ejemplo sembrados.
func newDemoEngine(t *testing.T, opts ...inventory.Option) *inventory.Engine {
	t.Helper()
	e, _ := newEngine(t, append(opts, inventory.WithDemoData(true))...)
	return e
}

// addProduct da de alta un producto simple y falla el test si no se puede.
func addProduct(t *testing.T, e *inventory.Engine, code string, stock, minStock int) *entity.Product {
	t.Helper()
	p, err := e.AddProduct(context.Background(), dto.CreateProductRequest{
		Code:     code,
		Name:     "Producto " + code,
		Stock:    stock,
		Price:    decimal.NewFromInt(10),
		MinStock: minStock,
	})
	require.NoError(t, err)
	return p
}

func move(e *inventory.Engine, productID int, tipo string, qty int) (*entity.Movement, error) {
	return e.AddMovement(context.Background(), dto.RegisterMovementRequest{
		ProductID: productID,
		Type:      tipo,
		Quantity:  qty,
		UserID:    1,
	})
}

// failingStore simula un backend caído.
type failingStore struct{}

var errBackend = errors.New("backend caído")

func (failingStore) Get(context.Context, string) ([]byte, error) { return nil, errBackend }
func (failingStore) Put(context.Context, string, []byte) error   { return errBackend }

// ──────────────────────────────────────────────────────────────────────────────
// Inicialización y persistencia
// ──────────────────────────────────────────────────────────────────────────────

func TestInitialize_SiembraDatosDemo(t *testing.T) {
	ctx := context.Background()
	e := newDemoEngine(t)

	products, err := e.GetProducts(ctx, false)
	require.NoError(t, err)
	assert.Len(t, products, 3)

	users, err := e.GetUsers(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 2)

	cats, err := e.GetCategories(ctx)
	require.NoError(t, err)
	assert.Len(t, cats, 3)

	movs, err := e.GetMovements(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, movs, 2)

	p := addProduct(t, e, "NUEVO", 1, 0)
	assert.Equal(t, 4, p.ID, "los contadores siguen a los datos sembrados")
}

func TestInitialize_DocumentoVacioConContadoresEnUno(t *testing.T) {
	e, store := newEngine(t)

	data, err := store.Get(context.Background(), inventory.DefaultKey)
	require.NoError(t, err)
	doc, err := entity.UnmarshalDocument(data)
	require.NoError(t, err)
	assert.Empty(t, doc.Products)
	assert.Equal(t, 1, doc.NextProductID)
	assert.Equal(t, 1, doc.NextMovementID)

	p := addProduct(t, e, "A", 0, 0)
	assert.Equal(t, 1, p.ID)
}

func TestInitialize_NoSobrescribeDocumentoExistente(t *testing.T) {
	ctx := context.Background()
	e := newDemoEngine(t)
	_, err := e.AddCategory(ctx, "Hogar", "")
	require.NoError(t, err)

	require.NoError(t, e.Initialize(ctx))

	cats, err := e.GetCategories(ctx)
	require.NoError(t, err)
	assert.Len(t, cats, 4)
}

func TestEngine_ClaveAusenteEquivaleADocumentoVacio(t *testing.T) {
	e := inventory.NewEngine(memory.NewStore())

	products, err := e.GetProducts(context.Background(), true)
	require.NoError(t, err)
	assert.Empty(t, products)
}

func TestEngine_UsaLaClaveConfigurada(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	e := inventory.NewEngine(store, inventory.WithKey("otraClave"))
	require.NoError(t, e.Initialize(ctx))

	_, err := store.Get(ctx, "otraClave")
	assert.NoError(t, err)
	_, err = store.Get(ctx, inventory.DefaultKey)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestEngine_MutacionFallidaNoEscribe(t *testing.T) {
	ctx := context.Background()
	e, store := newEngine(t)
	p := addProduct(t, e, "P1", 5, 10)

	before, err := store.Get(ctx, inventory.DefaultKey)
	require.NoError(t, err)

	_, err = move(e, p.ID, entity.MovementTypeOut, 6)
	require.Error(t, err)

	after, err := store.Get(ctx, inventory.DefaultKey)
	require.NoError(t, err)
	assert.Equal(t, string(before), string(after))
}

func TestEngine_FalloDelBackendEsInterno(t *testing.T) {
	e := inventory.NewEngine(failingStore{})

	_, err := e.GetProducts(context.Background(), true)
	require.Error(t, err)
	assert.ErrorIs(t, err, errBackend)
	assert.Equal(t, domain.KindInternal, domain.KindOf(err))

	assert.Error(t, e.Initialize(context.Background()))
}

func TestEngine_DocumentoPersistidoEsEstable(t *testing.T) {
	ctx := context.Background()
	_, store := newEngine(t, inventory.WithDemoData(true))

	data, err := store.Get(ctx, inventory.DefaultKey)
	require.NoError(t, err)
	doc, err := entity.UnmarshalDocument(data)
	require.NoError(t, err)
	again, err := doc.Marshal()
	require.NoError(t, err)
	assert.JSONEq(t, string(data), string(again))
}
