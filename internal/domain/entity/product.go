package entity

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del inventario.
// Stock solo cambia vía movimientos; Active=false es el borrado lógico.
type Product struct {
	ID          int             `json:"id"`
	Code        string          `json:"codigo"` // único entre activos e inactivos
	Name        string          `json:"nombre"`
	CategoryID  int             `json:"categoriaId"`
	Stock       int             `json:"stock"`
	Price       decimal.Decimal `json:"precio"`
	MinStock    int             `json:"minStock"`
	Description string          `json:"descripcion"`
	Active      bool            `json:"activo"`
	CreatedAt   time.Time       `json:"fechaCreacion"`
}

// IsLowStock indica si el stock está en o por debajo del mínimo configurado.
func (p Product) IsLowStock() bool {
	return p.Stock <= p.MinStock
}

// Value devuelve stock × precio.
func (p Product) Value() decimal.Decimal {
	return p.Price.Mul(decimal.NewFromInt(int64(p.Stock)))
}

// MarshalJSON escribe precio como número JSON, igual que el resto de campos numéricos del documento.
// La decodificación acepta número o texto (decimal.Decimal admite ambos).
func (p Product) MarshalJSON() ([]byte, error) {
	type plain Product
	return json.Marshal(struct {
		plain
		Price json.Number `json:"precio"`
	}{plain(p), json.Number(p.Price.String())})
}
