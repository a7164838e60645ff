package dto

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventario-storage/internal/domain/entity"
)

// RegisterMovementRequest entrada para registrar un movimiento (entrada, salida o ajuste).
type RegisterMovementRequest struct {
	ProductID   int    `json:"productId"`
	Type        string `json:"tipo"`
	Quantity    int    `json:"cantidad"`
	UserID      int    `json:"usuarioId"`
	Description string `json:"descripcion"`
}

// MovementDetail movimiento con los nombres resueltos para mostrar ("N/A" si faltan).
type MovementDetail struct {
	entity.Movement
	ProductName string `json:"productoNombre"`
	ProductCode string `json:"productoCodigo"`
	UserName    string `json:"usuarioNombre"`
}

// ReplenishmentSuggestionDTO representa una sugerencia de reposición para un producto
// que está en o por debajo de su stock mínimo.
type ReplenishmentSuggestionDTO struct {
	ProductID          int             `json:"productId"`
	Code               string          `json:"codigo"`
	ProductName        string          `json:"nombre"`
	CurrentStock       int             `json:"stock"`
	MinStock           int             `json:"minStock"`
	IdealStock         int             `json:"stockIdeal"`          // ceil(MinStock * 1.5)
	SuggestedOrderQty  int             `json:"cantidadSugerida"`    // IdealStock - CurrentStock
	UnitPrice          decimal.Decimal `json:"precio"`
	EstimatedOrderCost decimal.Decimal `json:"costoEstimado"`       // SuggestedOrderQty * UnitPrice
	UnitsShipped       int             `json:"unidadesDespachadas"` // suma histórica de salidas
	Priority           int             `json:"prioridad"`           // 1 = más urgente
}
