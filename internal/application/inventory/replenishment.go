package inventory

import (
	"context"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventario-storage/internal/application/dto"
	"github.com/jhoicas/inventario-storage/internal/domain/entity"
)

var idealStockFactor = decimal.NewFromFloat(1.5)

// GenerateReplenishmentList devuelve los productos activos en o bajo su stock mínimo con la
// cantidad sugerida de pedido y un ranking de prioridad por volumen despachado.
func (e *Engine) GenerateReplenishmentList(ctx context.Context) ([]dto.ReplenishmentSuggestionDTO, error) {
	var out []dto.ReplenishmentSuggestionDTO
	err := e.read(ctx, func(doc *entity.Document) error {
		out = replenishment(doc)
		return nil
	})
	return out, err
}

func replenishment(doc *entity.Document) []dto.ReplenishmentSuggestionDTO {
	// 1. Productos bajo mínimo
	items := lowStock(doc)
	if len(items) == 0 {
		return []dto.ReplenishmentSuggestionDTO{}
	}

	// 2. Unidades despachadas (salidas) por producto sobre todo el historial
	shipped := make(map[int]int)
	for _, m := range doc.Movements {
		if m.Type == entity.MovementTypeOut {
			shipped[m.ProductID] += m.Quantity
		}
	}

	// 3. Construir las sugerencias
	suggestions := make([]dto.ReplenishmentSuggestionDTO, 0, len(items))
	for _, p := range items {
		ideal := int(decimal.NewFromInt(int64(p.MinStock)).Mul(idealStockFactor).Ceil().IntPart())
		qty := max(ideal-p.Stock, 0)

		suggestions = append(suggestions, dto.ReplenishmentSuggestionDTO{
			ProductID:          p.ID,
			Code:               p.Code,
			ProductName:        p.Name,
			CurrentStock:       p.Stock,
			MinStock:           p.MinStock,
			IdealStock:         ideal,
			SuggestedOrderQty:  qty,
			UnitPrice:          p.Price,
			EstimatedOrderCost: p.Price.Mul(decimal.NewFromInt(int64(qty))),
			UnitsShipped:       shipped[p.ID],
		})
	}

	// 4. Ordenar: mayor volumen despachado, luego mayor déficit bajo el mínimo
	sort.SliceStable(suggestions, func(i, j int) bool {
		a, b := suggestions[i], suggestions[j]
		if a.UnitsShipped != b.UnitsShipped {
			return a.UnitsShipped > b.UnitsShipped
		}
		return a.MinStock-a.CurrentStock > b.MinStock-b.CurrentStock
	})

	// 5. Asignar prioridad (1 = más urgente)
	for i := range suggestions {
		suggestions[i].Priority = i + 1
	}
	return suggestions
}
