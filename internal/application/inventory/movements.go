package inventory

import (
	"context"

	"github.com/jhoicas/inventario-storage/internal/application/dto"
	"github.com/jhoicas/inventario-storage/internal/domain"
	"github.com/jhoicas/inventario-storage/internal/domain/entity"
)

const notAvailable = "N/A"

// AddMovement registra un movimiento y aplica su efecto sobre el stock en una única escritura.
//
// Orden de validación: producto, tipo, cantidad, stock suficiente (solo salida).
// El ajuste suma la cantidad y recorta el resultado en 0.
func (e *Engine) AddMovement(ctx context.Context, in dto.RegisterMovementRequest) (*entity.Movement, error) {
	var out entity.Movement
	var stock int
	err := e.mutate(ctx, func(doc *entity.Document) error {
		p := doc.FindProduct(in.ProductID)
		if p == nil {
			return domain.ErrProductNotFound
		}
		if !entity.ValidMovementType(in.Type) {
			return domain.ErrInvalidMovementType
		}
		if err := e.checkQuantity(in.Type, in.Quantity); err != nil {
			return err
		}

		switch in.Type {
		case entity.MovementTypeIn:
			p.Stock += in.Quantity
		case entity.MovementTypeOut:
			if p.Stock < in.Quantity {
				return domain.InsufficientStock(p.Stock)
			}
			p.Stock -= in.Quantity
		case entity.MovementTypeAdjust:
			p.Stock = max(p.Stock+in.Quantity, 0)
		}
		stock = p.Stock

		out = entity.Movement{
			ID:          doc.TakeMovementID(),
			ProductID:   in.ProductID,
			Type:        in.Type,
			Quantity:    in.Quantity,
			UserID:      in.UserID,
			Description: in.Description,
			Date:        e.now(),
		}
		doc.Movements = append(doc.Movements, out)
		return nil
	})
	if err != nil {
		e.log.Debug().Err(err).Int("product_id", in.ProductID).Str("tipo", in.Type).Msg("movimiento rechazado")
		return nil, err
	}
	e.log.Debug().
		Int("movement_id", out.ID).
		Int("product_id", out.ProductID).
		Str("tipo", out.Type).
		Int("cantidad", out.Quantity).
		Int("stock", stock).
		Msg("movimiento registrado")
	return &out, nil
}

func (e *Engine) checkQuantity(tipo string, qty int) error {
	if tipo == entity.MovementTypeAdjust && e.allowNegativeAdjust {
		if qty == 0 {
			return domain.ErrInvalidQuantity
		}
		return nil
	}
	if qty <= 0 {
		return domain.ErrInvalidQuantity
	}
	return nil
}

// GetMovements devuelve el historial del más reciente al más antiguo. limit <= 0 no recorta.
func (e *Engine) GetMovements(ctx context.Context, limit int) ([]entity.Movement, error) {
	var out []entity.Movement
	err := e.read(ctx, func(doc *entity.Document) error {
		out = truncate(doc.ReverseMovements(nil), limit)
		return nil
	})
	return out, err
}

// GetMovementsByProduct historial de un producto, más reciente primero.
func (e *Engine) GetMovementsByProduct(ctx context.Context, productID int) ([]entity.Movement, error) {
	return e.filterMovements(ctx, func(m entity.Movement) bool { return m.ProductID == productID })
}

// GetMovementsByType historial de un tipo, más reciente primero.
func (e *Engine) GetMovementsByType(ctx context.Context, tipo string) ([]entity.Movement, error) {
	return e.filterMovements(ctx, func(m entity.Movement) bool { return m.Type == tipo })
}

func (e *Engine) filterMovements(ctx context.Context, keep func(entity.Movement) bool) ([]entity.Movement, error) {
	var out []entity.Movement
	err := e.read(ctx, func(doc *entity.Document) error {
		out = doc.ReverseMovements(keep)
		return nil
	})
	return out, err
}

// SearchMovements busca query en el nombre del producto, el nombre del usuario o la descripción.
func (e *Engine) SearchMovements(ctx context.Context, query string) ([]entity.Movement, error) {
	var out []entity.Movement
	err := e.read(ctx, func(doc *entity.Document) error {
		m := newMatcher(query)
		out = doc.ReverseMovements(func(mv entity.Movement) bool {
			if p := doc.FindProduct(mv.ProductID); p != nil && m.match(p.Name) {
				return true
			}
			if u := doc.FindUser(mv.UserID); u != nil && m.match(u.Name) {
				return true
			}
			return m.match(mv.Description)
		})
		return nil
	})
	return out, err
}

// GetMovementDetails historial reciente con nombres de producto y usuario resueltos.
func (e *Engine) GetMovementDetails(ctx context.Context, limit int) ([]dto.MovementDetail, error) {
	var out []dto.MovementDetail
	err := e.read(ctx, func(doc *entity.Document) error {
		movs := truncate(doc.ReverseMovements(nil), limit)
		out = make([]dto.MovementDetail, 0, len(movs))
		for _, m := range movs {
			out = append(out, detailOf(doc, m))
		}
		return nil
	})
	return out, err
}

func detailOf(doc *entity.Document, m entity.Movement) dto.MovementDetail {
	d := dto.MovementDetail{Movement: m, ProductName: notAvailable, ProductCode: notAvailable, UserName: notAvailable}
	if p := doc.FindProduct(m.ProductID); p != nil {
		d.ProductName = p.Name
		d.ProductCode = p.Code
	}
	if u := doc.FindUser(m.UserID); u != nil {
		d.UserName = u.Name
	}
	return d
}

func truncate[T any](items []T, limit int) []T {
	if limit > 0 && len(items) > limit {
		return items[:limit]
	}
	return items
}
