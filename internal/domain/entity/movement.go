package entity

import "time"

// Tipos de movimiento de inventario.
const (
	MovementTypeIn     = "entrada"
	MovementTypeOut    = "salida"
	MovementTypeAdjust = "ajuste"
)

// ValidMovementType indica si tipo es entrada, salida o ajuste.
func ValidMovementType(tipo string) bool {
	switch tipo {
	case MovementTypeIn, MovementTypeOut, MovementTypeAdjust:
		return true
	}
	return false
}

// Movement es un asiento inmutable del libro de movimientos; única fuente del historial de stock.
type Movement struct {
	ID          int       `json:"id"`
	ProductID   int       `json:"productId"`
	Type        string    `json:"tipo"`
	Quantity    int       `json:"cantidad"`
	UserID      int       `json:"usuarioId"`
	Description string    `json:"descripcion"`
	Date        time.Time `json:"fecha"`
}
