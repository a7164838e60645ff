package pdf_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-storage/internal/application/dto"
	"github.com/jhoicas/inventario-storage/internal/domain/entity"
	"github.com/jhoicas/inventario-storage/internal/infrastructure/pdf"
)

func sampleReport() *dto.InventoryReport {
	camiseta := entity.Product{
		ID: 3, Code: "PROD003", Name: "Camiseta", Stock: 8, MinStock: 15,
		Price: decimal.RequireFromString("19.99"), Active: true,
	}
	return &dto.InventoryReport{
		GeneratedAt:    time.Date(2026, 3, 14, 15, 9, 26, 0, time.UTC),
		ActiveProducts: 3,
		TotalValue:     decimal.RequireFromString("15159.27"),
		LowStock:       []entity.Product{camiseta},
		Categories: []dto.CategoryStats{
			{ID: 1, Name: "Electrónica", TotalProducts: 2, TotalStock: 65, TotalValue: decimal.RequireFromString("14999.35")},
			{ID: 3, Name: "Alimentos", TotalValue: decimal.Zero},
		},
		MostMoved: []dto.MostMovedProduct{{Product: camiseta, TotalMovements: 12}},
		Movements: dto.MovementStats{TotalMovements: 2, Entries: 2},
		Replenishment: []dto.ReplenishmentSuggestionDTO{{
			ProductID: 3, Code: "PROD003", ProductName: "Camiseta", CurrentStock: 8, MinStock: 15,
			IdealStock: 23, SuggestedOrderQty: 15, UnitPrice: camiseta.Price,
			EstimatedOrderCost: decimal.RequireFromString("299.85"), Priority: 1,
		}},
	}
}

func TestMarotoReportGenerator_GeneraPDF(t *testing.T) {
	out, err := pdf.NewMarotoReportGenerator("Empresa Demo").Generate(sampleReport())
	require.NoError(t, err)
	require.NotEmpty(t, out)
	assert.Equal(t, "%PDF", string(out[:4]))
}

func TestMarotoReportGenerator_ReporteVacio(t *testing.T) {
	out, err := pdf.NewMarotoReportGenerator("Empresa Demo").Generate(&dto.InventoryReport{
		GeneratedAt: time.Now(),
		TotalValue:  decimal.Zero,
	})
	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(out[:4]))
}
