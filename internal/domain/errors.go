package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicateCode      = errors.New("el código del producto ya existe")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrConflict           = errors.New("conflicto con el estado actual")
	ErrInvalidQuantity    = errors.New("la cantidad debe ser mayor a 0")
	ErrInsufficientStock  = errors.New("stock insuficiente")
)

// Variantes por entidad; errors.Is(err, ErrNotFound) sigue siendo verdadero.
var (
	ErrProductNotFound     = fmt.Errorf("producto no encontrado: %w", ErrNotFound)
	ErrCategoryNotFound    = fmt.Errorf("categoría no encontrada: %w", ErrNotFound)
	ErrUserNotFound        = fmt.Errorf("usuario no encontrado: %w", ErrNotFound)
	ErrCategoryInUse       = fmt.Errorf("la categoría tiene productos asociados: %w", ErrConflict)
	ErrInvalidMovementType = fmt.Errorf("tipo de movimiento inválido: %w", ErrInvalidInput)
	ErrInvalidRole         = fmt.Errorf("rol inválido: %w", ErrInvalidInput)
)

// InsufficientStock construye el error de salida sin existencias incluyendo el stock disponible.
func InsufficientStock(available int) error {
	return fmt.Errorf("%w. Stock disponible: %d", ErrInsufficientStock, available)
}
