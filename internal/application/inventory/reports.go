package inventory

import (
	"context"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventario-storage/internal/application/dto"
	"github.com/jhoicas/inventario-storage/internal/domain/entity"
)

// DefaultMostMovedLimit cantidad de productos del ranking cuando no se indica límite.
const DefaultMostMovedLimit = 5

// GetProductsWithLowStock productos activos con stock <= minStock.
func (e *Engine) GetProductsWithLowStock(ctx context.Context) ([]entity.Product, error) {
	out := []entity.Product{}
	err := e.read(ctx, func(doc *entity.Document) error {
		out = lowStock(doc)
		return nil
	})
	return out, err
}

func lowStock(doc *entity.Document) []entity.Product {
	out := []entity.Product{}
	for _, p := range doc.ActiveProducts() {
		if p.IsLowStock() {
			out = append(out, p)
		}
	}
	return out
}

// GetTotalInventoryValue suma stock × precio de los productos activos.
func (e *Engine) GetTotalInventoryValue(ctx context.Context) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := e.read(ctx, func(doc *entity.Document) error {
		total = totalValue(doc)
		return nil
	})
	return total, err
}

func totalValue(doc *entity.Document) decimal.Decimal {
	total := decimal.Zero
	for _, p := range doc.ActiveProducts() {
		total = total.Add(p.Value())
	}
	return total
}

// GetMostMovedProducts suma las cantidades de todos los movimientos por producto y devuelve
// los limit primeros, descartando productos inexistentes o inactivos. limit == 0 devuelve una
// lista vacía; un limit negativo usa DefaultMostMovedLimit.
// Los empates quedan en orden ascendente de id.
func (e *Engine) GetMostMovedProducts(ctx context.Context, limit int) ([]dto.MostMovedProduct, error) {
	var out []dto.MostMovedProduct
	err := e.read(ctx, func(doc *entity.Document) error {
		out = mostMoved(doc, limit)
		return nil
	})
	return out, err
}

func mostMoved(doc *entity.Document, limit int) []dto.MostMovedProduct {
	if limit < 0 {
		limit = DefaultMostMovedLimit
	}
	if limit == 0 {
		return []dto.MostMovedProduct{}
	}
	totals := make(map[int]int)
	for _, m := range doc.Movements {
		totals[m.ProductID] += m.Quantity
	}
	ids := make([]int, 0, len(totals))
	for id := range totals {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	out := make([]dto.MostMovedProduct, 0, len(ids))
	for _, id := range ids {
		p := doc.FindProduct(id)
		if p == nil || !p.Active {
			continue
		}
		out = append(out, dto.MostMovedProduct{Product: *p, TotalMovements: totals[id]})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].TotalMovements > out[j].TotalMovements
	})
	return truncate(out, limit)
}

// GetStatisticsByCategory agrega por categoría (en orden de alta) los productos activos.
func (e *Engine) GetStatisticsByCategory(ctx context.Context) ([]dto.CategoryStats, error) {
	var out []dto.CategoryStats
	err := e.read(ctx, func(doc *entity.Document) error {
		out = categoryStats(doc)
		return nil
	})
	return out, err
}

func categoryStats(doc *entity.Document) []dto.CategoryStats {
	active := doc.ActiveProducts()
	out := make([]dto.CategoryStats, 0, len(doc.Categories))
	for _, c := range doc.Categories {
		s := dto.CategoryStats{ID: c.ID, Name: c.Name, TotalValue: decimal.Zero}
		for _, p := range active {
			if p.CategoryID != c.ID {
				continue
			}
			s.TotalProducts++
			s.TotalStock += p.Stock
			s.TotalValue = s.TotalValue.Add(p.Value())
		}
		out = append(out, s)
	}
	return out
}

// GetMovementStats cuenta los movimientos por tipo sobre todo el historial.
func (e *Engine) GetMovementStats(ctx context.Context) (dto.MovementStats, error) {
	var out dto.MovementStats
	err := e.read(ctx, func(doc *entity.Document) error {
		out = movementStats(doc)
		return nil
	})
	return out, err
}

func movementStats(doc *entity.Document) dto.MovementStats {
	s := dto.MovementStats{TotalMovements: len(doc.Movements)}
	for _, m := range doc.Movements {
		switch m.Type {
		case entity.MovementTypeIn:
			s.Entries++
		case entity.MovementTypeOut:
			s.Exits++
		case entity.MovementTypeAdjust:
			s.Adjustments++
		}
	}
	return s
}
