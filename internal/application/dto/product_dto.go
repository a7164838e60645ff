package dto

import "github.com/shopspring/decimal"

// CreateProductRequest entrada para dar de alta un producto. El llamador ya convirtió los tipos.
type CreateProductRequest struct {
	Code        string          `json:"codigo" validate:"required,max=100"`
	Name        string          `json:"nombre" validate:"required,max=200"`
	CategoryID  int             `json:"categoriaId" validate:"gte=0"`
	Stock       int             `json:"stock" validate:"gte=0"`
	Price       decimal.Decimal `json:"precio"` // >= 0, se valida en el motor
	MinStock    int             `json:"minStock" validate:"gte=0"`
	Description string          `json:"descripcion" validate:"max=1000"`
}

// UpdateProductRequest entrada para editar un producto (sin Stock: solo cambia vía movimientos).
type UpdateProductRequest struct {
	Code        string          `json:"codigo" validate:"required,max=100"`
	Name        string          `json:"nombre" validate:"required,max=200"`
	CategoryID  int             `json:"categoriaId" validate:"gte=0"`
	Price       decimal.Decimal `json:"precio"`
	MinStock    int             `json:"minStock" validate:"gte=0"`
	Description string          `json:"descripcion" validate:"max=1000"`
}
