package inventory

import (
	"context"
	"slices"

	"github.com/jhoicas/inventario-storage/internal/domain"
	"github.com/jhoicas/inventario-storage/internal/domain/entity"
)

// CheckLogin busca un usuario activo con email y password exactos (comparación en claro).
// Devuelve la vista sin contraseña o domain.ErrUnauthorized.
func (e *Engine) CheckLogin(ctx context.Context, email, password string) (*entity.UserSummary, error) {
	var out *entity.UserSummary
	err := e.read(ctx, func(doc *entity.Document) error {
		for _, u := range doc.Users {
			if u.Email == email && u.Password == password && u.Active {
				s := u.Summary()
				out = &s
				return nil
			}
		}
		return domain.ErrUnauthorized
	})
	return out, err
}

// Login valida las credenciales y guarda el usuario en la sesión.
func (e *Engine) Login(ctx context.Context, email, password string) (*entity.UserSummary, error) {
	user, err := e.CheckLogin(ctx, email, password)
	if err != nil {
		e.log.Warn().Str("email", email).Msg("login rechazado")
		return nil, err
	}
	if err := e.SetCurrentUser(ctx, user); err != nil {
		return nil, err
	}
	e.log.Info().Int("user_id", user.ID).Str("rol", user.Role).Msg("sesión iniciada")
	return user, nil
}

// SetCurrentUser ocupa la única ranura de sesión. nil la vacía.
func (e *Engine) SetCurrentUser(ctx context.Context, user *entity.UserSummary) error {
	return e.mutate(ctx, func(doc *entity.Document) error {
		if user == nil {
			doc.CurrentUser = nil
			return nil
		}
		s := *user
		doc.CurrentUser = &s
		return nil
	})
}

// CurrentUser devuelve el usuario de la sesión, o nil si no hay sesión.
func (e *Engine) CurrentUser(ctx context.Context) (*entity.UserSummary, error) {
	var out *entity.UserSummary
	err := e.read(ctx, func(doc *entity.Document) error {
		out = doc.CurrentUser
		return nil
	})
	return out, err
}

// Logout vacía la sesión.
func (e *Engine) Logout(ctx context.Context) error {
	return e.SetCurrentUser(ctx, nil)
}

// Authorize devuelve el usuario de la sesión si su rol está entre roles (vacío = cualquier rol).
// Sin sesión: ErrUnauthorized; rol no permitido: ErrForbidden.
func (e *Engine) Authorize(ctx context.Context, roles ...string) (*entity.UserSummary, error) {
	user, err := e.CurrentUser(ctx)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	if len(roles) > 0 && !slices.Contains(roles, user.Role) {
		return nil, domain.ErrForbidden
	}
	return user, nil
}
