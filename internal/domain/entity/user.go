package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin    = "admin"
	RoleEmpleado = "empleado"
)

// ValidRole indica si rol es uno de los roles soportados.
func ValidRole(rol string) bool {
	return rol == RoleAdmin || rol == RoleEmpleado
}

// User representa un usuario del sistema. La contraseña se guarda en claro: no hay seguridad de autenticación.
type User struct {
	ID        int       `json:"id"`
	Name      string    `json:"nombre"`
	Email     string    `json:"email"`
	Password  string    `json:"password"`
	Role      string    `json:"rol"` // admin, empleado
	Active    bool      `json:"activo"`
	CreatedAt time.Time `json:"fechaCreacion"`
}

// UserSummary es la copia sin contraseña que se guarda en la sesión.
type UserSummary struct {
	ID    int    `json:"id"`
	Name  string `json:"nombre"`
	Email string `json:"email"`
	Role  string `json:"rol"`
}

// Summary devuelve la vista sin contraseña del usuario.
func (u User) Summary() UserSummary {
	return UserSummary{ID: u.ID, Name: u.Name, Email: u.Email, Role: u.Role}
}

// IsAdmin indica si la sesión pertenece a un administrador.
func (s UserSummary) IsAdmin() bool { return s.Role == RoleAdmin }
