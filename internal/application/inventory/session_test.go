package inventory_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-storage/internal/application/dto"
	"github.com/jhoicas/inventario-storage/internal/domain"
	"github.com/jhoicas/inventario-storage/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Sesión
// ──────────────────────────────────────────────────────────────────────────────

func TestCheckLogin_CredencialesValidas(t *testing.T) {
	e := newDemoEngine(t)

	u, err := e.CheckLogin(context.Background(), "admin@empresa.com", "admin123")
	require.NoError(t, err)
	assert.Equal(t, entity.UserSummary{ID: 1, Name: "Administrador", Email: "admin@empresa.com", Role: entity.RoleAdmin}, *u)
}

func TestCheckLogin_Rechazos(t *testing.T) {
	ctx := context.Background()
	e := newDemoEngine(t)

	_, err := e.CheckLogin(ctx, "admin@empresa.com", "ADMIN123")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = e.CheckLogin(ctx, "nadie@empresa.com", "admin123")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	require.NoError(t, e.SetUserActive(ctx, 2, false))
	_, err = e.CheckLogin(ctx, "empleado@empresa.com", "emp123")
	assert.ErrorIs(t, err, domain.ErrUnauthorized, "un usuario inactivo no entra")
}

func TestLogin_GuardaSesionYLogoutLaVacia(t *testing.T) {
	ctx := context.Background()
	e := newDemoEngine(t)

	cur, err := e.CurrentUser(ctx)
	require.NoError(t, err)
	assert.Nil(t, cur)

	_, err = e.Login(ctx, "empleado@empresa.com", "emp123")
	require.NoError(t, err)

	cur, err = e.CurrentUser(ctx)
	require.NoError(t, err)
	require.NotNil(t, cur)
	assert.Equal(t, 2, cur.ID)
	assert.False(t, cur.IsAdmin())

	require.NoError(t, e.Logout(ctx))
	cur, err = e.CurrentUser(ctx)
	require.NoError(t, err)
	assert.Nil(t, cur)
}

func TestLogin_CredencialesInvalidasNoAbreSesion(t *testing.T) {
	ctx := context.Background()
	e := newDemoEngine(t)

	_, err := e.Login(ctx, "admin@empresa.com", "x")
	require.ErrorIs(t, err, domain.ErrUnauthorized)

	cur, err := e.CurrentUser(ctx)
	require.NoError(t, err)
	assert.Nil(t, cur)
}

func TestAuthorize_Roles(t *testing.T) {
	ctx := context.Background()
	e := newDemoEngine(t)

	_, err := e.Authorize(ctx, entity.RoleAdmin)
	assert.ErrorIs(t, err, domain.ErrUnauthorized, "sin sesión")

	_, err = e.Login(ctx, "empleado@empresa.com", "emp123")
	require.NoError(t, err)

	_, err = e.Authorize(ctx, entity.RoleAdmin)
	assert.ErrorIs(t, err, domain.ErrForbidden)
	assert.Equal(t, domain.KindForbidden, domain.KindOf(err))

	u, err := e.Authorize(ctx, entity.RoleAdmin, entity.RoleEmpleado)
	require.NoError(t, err)
	assert.Equal(t, 2, u.ID)

	_, err = e.Authorize(ctx)
	assert.NoError(t, err, "sin roles basta con tener sesión")
}

// ──────────────────────────────────────────────────────────────────────────────
// Usuarios
// ──────────────────────────────────────────────────────────────────────────────

func TestAddUser_CreaActivoYPermiteLogin(t *testing.T) {
	ctx := context.Background()
	e := newDemoEngine(t)

	u, err := e.AddUser(ctx, dto.CreateUserRequest{
		Name: "Bodega", Email: "bodega@empresa.com", Password: "b0d", Role: entity.RoleEmpleado,
	})
	require.NoError(t, err)
	assert.Equal(t, 3, u.ID)
	assert.True(t, u.Active)

	_, err = e.CheckLogin(ctx, "bodega@empresa.com", "b0d")
	assert.NoError(t, err)

	got, err := e.GetUserByID(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, "Bodega", got.Name)
}

func TestAddUser_Rechazos(t *testing.T) {
	ctx := context.Background()
	e := newDemoEngine(t)

	_, err := e.AddUser(ctx, dto.CreateUserRequest{
		Name: "Otro", Email: "admin@empresa.com", Password: "x", Role: entity.RoleAdmin,
	})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
	assert.Equal(t, domain.KindDuplicateEmail, domain.KindOf(err))

	_, err = e.AddUser(ctx, dto.CreateUserRequest{
		Name: "Otro", Email: "otro@empresa.com", Password: "x", Role: "supervisor",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidRole)

	_, err = e.AddUser(ctx, dto.CreateUserRequest{
		Name: "Otro", Email: "no-es-email", Password: "x", Role: entity.RoleAdmin,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestUsuarios_NoEncontrado(t *testing.T) {
	ctx := context.Background()
	e := newDemoEngine(t)

	_, err := e.GetUserByID(ctx, 99)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
	assert.ErrorIs(t, e.SetUserActive(ctx, 99, true), domain.ErrUserNotFound)
}
