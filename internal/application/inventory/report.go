package inventory

import (
	"context"

	"github.com/jhoicas/inventario-storage/internal/application/dto"
	"github.com/jhoicas/inventario-storage/internal/domain/entity"
)

// ReportPDFGenerator renderiza el reporte de inventario a PDF.
type ReportPDFGenerator interface {
	Generate(report *dto.InventoryReport) ([]byte, error)
}

// BuildInventoryReport arma todos los reportes a partir de una sola lectura del documento.
func (e *Engine) BuildInventoryReport(ctx context.Context) (*dto.InventoryReport, error) {
	var out *dto.InventoryReport
	err := e.read(ctx, func(doc *entity.Document) error {
		out = &dto.InventoryReport{
			GeneratedAt:    e.now(),
			ActiveProducts: len(doc.ActiveProducts()),
			TotalValue:     totalValue(doc),
			LowStock:       lowStock(doc),
			Categories:     categoryStats(doc),
			MostMoved:      mostMoved(doc, DefaultMostMovedLimit),
			Movements:      movementStats(doc),
			Replenishment:  replenishment(doc),
		}
		return nil
	})
	return out, err
}

// ExportReportPDF arma el reporte y lo entrega al generador.
func (e *Engine) ExportReportPDF(ctx context.Context, gen ReportPDFGenerator) ([]byte, error) {
	report, err := e.BuildInventoryReport(ctx)
	if err != nil {
		return nil, err
	}
	pdf, err := gen.Generate(report)
	if err != nil {
		return nil, err
	}
	e.log.Info().Int("bytes", len(pdf)).Msg("reporte PDF generado")
	return pdf, nil
}
