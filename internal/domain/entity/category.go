package entity

// Category representa una categoría de productos. Product.CategoryID la referencia.
type Category struct {
	ID          int    `json:"id"`
	Name        string `json:"nombre"`
	Description string `json:"descripcion"`
}
