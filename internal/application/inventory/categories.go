package inventory

import (
	"context"

	"github.com/jhoicas/inventario-storage/internal/domain"
	"github.com/jhoicas/inventario-storage/internal/domain/entity"
)

// GetCategories devuelve todas las categorías en orden de alta.
func (e *Engine) GetCategories(ctx context.Context) ([]entity.Category, error) {
	var out []entity.Category
	err := e.read(ctx, func(doc *entity.Document) error {
		out = doc.Categories
		return nil
	})
	return out, err
}

// GetCategoryByID busca una categoría por id.
func (e *Engine) GetCategoryByID(ctx context.Context, id int) (*entity.Category, error) {
	var out *entity.Category
	err := e.read(ctx, func(doc *entity.Document) error {
		c := doc.FindCategory(id)
		if c == nil {
			return domain.ErrCategoryNotFound
		}
		out = c
		return nil
	})
	return out, err
}

// AddCategory crea una categoría. El nombre no tiene que ser único.
func (e *Engine) AddCategory(ctx context.Context, name, description string) (*entity.Category, error) {
	var out entity.Category
	err := e.mutate(ctx, func(doc *entity.Document) error {
		out = entity.Category{ID: doc.TakeCategoryID(), Name: name, Description: description}
		doc.Categories = append(doc.Categories, out)
		return nil
	})
	if err != nil {
		return nil, err
	}
	e.log.Debug().Int("category_id", out.ID).Msg("categoría creada")
	return &out, nil
}

// UpdateCategory reemplaza nombre y descripción.
func (e *Engine) UpdateCategory(ctx context.Context, id int, name, description string) error {
	return e.mutate(ctx, func(doc *entity.Document) error {
		c := doc.FindCategory(id)
		if c == nil {
			return domain.ErrCategoryNotFound
		}
		c.Name = name
		c.Description = description
		return nil
	})
}

// DeleteCategory elimina la categoría si ningún producto, activo o no, la referencia.
func (e *Engine) DeleteCategory(ctx context.Context, id int) error {
	err := e.mutate(ctx, func(doc *entity.Document) error {
		idx := -1
		for i, c := range doc.Categories {
			if c.ID == id {
				idx = i
				break
			}
		}
		if idx < 0 {
			return domain.ErrCategoryNotFound
		}
		if doc.CategoryReferenced(id) {
			return domain.ErrCategoryInUse
		}
		doc.Categories = append(doc.Categories[:idx], doc.Categories[idx+1:]...)
		return nil
	})
	if err == nil {
		e.log.Debug().Int("category_id", id).Msg("categoría eliminada")
	}
	return err
}
