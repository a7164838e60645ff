package inventory

import (
	"context"

	"github.com/jhoicas/inventario-storage/internal/application/dto"
	"github.com/jhoicas/inventario-storage/internal/domain"
	"github.com/jhoicas/inventario-storage/internal/domain/entity"
)

// GetUserByID busca un usuario por id.
func (e *Engine) GetUserByID(ctx context.Context, id int) (*entity.User, error) {
	var out *entity.User
	err := e.read(ctx, func(doc *entity.Document) error {
		u := doc.FindUser(id)
		if u == nil {
			return domain.ErrUserNotFound
		}
		out = u
		return nil
	})
	return out, err
}

// GetUsers lista todos los usuarios en orden de alta.
func (e *Engine) GetUsers(ctx context.Context) ([]entity.User, error) {
	var out []entity.User
	err := e.read(ctx, func(doc *entity.Document) error {
		out = doc.Users
		return nil
	})
	return out, err
}

// AddUser crea un usuario activo. El email debe ser único.
func (e *Engine) AddUser(ctx context.Context, in dto.CreateUserRequest) (*entity.User, error) {
	if !entity.ValidRole(in.Role) {
		return nil, domain.ErrInvalidRole
	}
	if err := e.validateStruct(in); err != nil {
		return nil, err
	}
	var out entity.User
	err := e.mutate(ctx, func(doc *entity.Document) error {
		if doc.EmailTaken(in.Email) {
			return domain.ErrEmailAlreadyExists
		}
		out = entity.User{
			ID:        doc.TakeUserID(),
			Name:      in.Name,
			Email:     in.Email,
			Password:  in.Password,
			Role:      in.Role,
			Active:    true,
			CreatedAt: e.now(),
		}
		doc.Users = append(doc.Users, out)
		return nil
	})
	if err != nil {
		return nil, err
	}
	e.log.Debug().Int("user_id", out.ID).Str("rol", out.Role).Msg("usuario creado")
	return &out, nil
}

// SetUserActive activa o desactiva un usuario. Un usuario inactivo no puede iniciar sesión.
func (e *Engine) SetUserActive(ctx context.Context, id int, active bool) error {
	return e.mutate(ctx, func(doc *entity.Document) error {
		u := doc.FindUser(id)
		if u == nil {
			return domain.ErrUserNotFound
		}
		u.Active = active
		return nil
	})
}
