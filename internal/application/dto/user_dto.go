package dto

// CreateUserRequest entrada para crear un usuario. La contraseña se guarda en claro.
type CreateUserRequest struct {
	Name     string `json:"nombre" validate:"required,min=1,max=200"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Role     string `json:"rol" validate:"required,oneof=admin empleado"`
}
