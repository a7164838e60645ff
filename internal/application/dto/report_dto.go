package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventario-storage/internal/domain/entity"
)

// MostMovedProduct producto con la suma de cantidades de todos sus movimientos.
type MostMovedProduct struct {
	Product        entity.Product `json:"product"`
	TotalMovements int            `json:"totalMovements"`
}

// CategoryStats agregados de productos activos por categoría.
type CategoryStats struct {
	ID            int             `json:"id"`
	Name          string          `json:"nombre"`
	TotalProducts int             `json:"totalProductos"`
	TotalStock    int             `json:"totalStock"`
	TotalValue    decimal.Decimal `json:"valorTotal"`
}

// MovementStats conteo de movimientos por tipo sobre todo el historial.
type MovementStats struct {
	TotalMovements int `json:"totalMovements"`
	Entries        int `json:"entries"`
	Exits          int `json:"exits"`
	Adjustments    int `json:"adjustments"`
}

// InventoryReport foto completa de los reportes para exportar (PDF) o mostrar.
type InventoryReport struct {
	GeneratedAt    time.Time                    `json:"generatedAt"`
	ActiveProducts int                          `json:"activeProducts"`
	TotalValue     decimal.Decimal              `json:"totalValue"`
	LowStock       []entity.Product             `json:"lowStock"`
	Categories     []CategoryStats              `json:"categories"`
	MostMoved      []MostMovedProduct           `json:"mostMoved"`
	Movements      MovementStats                `json:"movements"`
	Replenishment  []ReplenishmentSuggestionDTO `json:"replenishment"`
}
