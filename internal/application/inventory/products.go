package inventory

import (
	"context"
	"fmt"

	"github.com/jhoicas/inventario-storage/internal/application/dto"
	"github.com/jhoicas/inventario-storage/internal/domain"
	"github.com/jhoicas/inventario-storage/internal/domain/entity"
)

// AddProduct da de alta un producto activo. El código no puede repetirse, ni siquiera con inactivos.
func (e *Engine) AddProduct(ctx context.Context, in dto.CreateProductRequest) (*entity.Product, error) {
	if err := e.validateStruct(in); err != nil {
		return nil, err
	}
	if in.Price.IsNegative() {
		return nil, fmt.Errorf("%w: el precio no puede ser negativo", domain.ErrInvalidInput)
	}

	var out entity.Product
	err := e.mutate(ctx, func(doc *entity.Document) error {
		if doc.CodeTaken(in.Code, 0) {
			return domain.ErrDuplicateCode
		}
		out = entity.Product{
			ID:          doc.TakeProductID(),
			Code:        in.Code,
			Name:        in.Name,
			CategoryID:  in.CategoryID,
			Stock:       in.Stock,
			Price:       in.Price,
			MinStock:    in.MinStock,
			Description: in.Description,
			Active:      true,
			CreatedAt:   e.now(),
		}
		doc.Products = append(doc.Products, out)
		return nil
	})
	if err != nil {
		return nil, err
	}
	e.log.Debug().Int("product_id", out.ID).Str("codigo", out.Code).Msg("producto creado")
	return &out, nil
}

// UpdateProduct reemplaza los datos editables. El stock no se toca: solo cambia con movimientos.
func (e *Engine) UpdateProduct(ctx context.Context, id int, in dto.UpdateProductRequest) error {
	if err := e.validateStruct(in); err != nil {
		return err
	}
	if in.Price.IsNegative() {
		return fmt.Errorf("%w: el precio no puede ser negativo", domain.ErrInvalidInput)
	}
	return e.mutate(ctx, func(doc *entity.Document) error {
		p := doc.FindProduct(id)
		if p == nil {
			return domain.ErrProductNotFound
		}
		if doc.CodeTaken(in.Code, id) {
			return domain.ErrDuplicateCode
		}
		p.Code = in.Code
		p.Name = in.Name
		p.CategoryID = in.CategoryID
		p.Price = in.Price
		p.MinStock = in.MinStock
		p.Description = in.Description
		return nil
	})
}

// DeleteProduct baja lógica: activo=false. Sigue visible en el historial y por id.
func (e *Engine) DeleteProduct(ctx context.Context, id int) error {
	err := e.mutate(ctx, func(doc *entity.Document) error {
		p := doc.FindProduct(id)
		if p == nil {
			return domain.ErrProductNotFound
		}
		p.Active = false
		return nil
	})
	if err == nil {
		e.log.Debug().Int("product_id", id).Msg("producto desactivado")
	}
	return err
}

// GetProductByID busca por id sin importar el estado activo.
func (e *Engine) GetProductByID(ctx context.Context, id int) (*entity.Product, error) {
	var out *entity.Product
	err := e.read(ctx, func(doc *entity.Document) error {
		p := doc.FindProduct(id)
		if p == nil {
			return domain.ErrProductNotFound
		}
		out = p
		return nil
	})
	return out, err
}

// GetProductByCode busca entre los productos activos.
func (e *Engine) GetProductByCode(ctx context.Context, code string) (*entity.Product, error) {
	var out *entity.Product
	err := e.read(ctx, func(doc *entity.Document) error {
		for _, p := range doc.ActiveProducts() {
			if p.Code == code {
				out = &p
				return nil
			}
		}
		return domain.ErrProductNotFound
	})
	return out, err
}

// GetProducts lista en orden de alta; activeOnly descarta los dados de baja.
func (e *Engine) GetProducts(ctx context.Context, activeOnly bool) ([]entity.Product, error) {
	var out []entity.Product
	err := e.read(ctx, func(doc *entity.Document) error {
		if activeOnly {
			out = doc.ActiveProducts()
			return nil
		}
		out = doc.Products
		return nil
	})
	return out, err
}

// SearchProducts busca query en nombre, código y descripción de los productos activos, sin distinguir mayúsculas.
func (e *Engine) SearchProducts(ctx context.Context, query string) ([]entity.Product, error) {
	out := []entity.Product{}
	err := e.read(ctx, func(doc *entity.Document) error {
		m := newMatcher(query)
		for _, p := range doc.ActiveProducts() {
			if m.match(p.Name) || m.match(p.Code) || m.match(p.Description) {
				out = append(out, p)
			}
		}
		return nil
	})
	return out, err
}
