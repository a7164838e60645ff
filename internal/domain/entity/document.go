package entity

import (
	"encoding/json"
	"fmt"
)

// Document es la raíz persistida: todo el estado de la aplicación bajo una única clave.
type Document struct {
	Users          []User       `json:"users"`
	Categories     []Category   `json:"categories"`
	Products       []Product    `json:"products"`
	Movements      []Movement   `json:"movements"`
	CurrentUser    *UserSummary `json:"currentUser"`
	NextProductID  int          `json:"nextProductId"`
	NextMovementID int          `json:"nextMovementId"`
	NextCategoryID int          `json:"nextCategoryId"`
	NextUserID     int          `json:"nextUserId"`
}

// NewDocument devuelve un documento vacío con los contadores en 1.
func NewDocument() *Document {
	d := &Document{}
	d.Normalize()
	return d
}

// UnmarshalDocument decodifica y normaliza un documento serializado.
func UnmarshalDocument(data []byte) (*Document, error) {
	var d Document
	if err := json.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("decodificar documento: %w", err)
	}
	d.Normalize()
	return &d, nil
}

// Marshal serializa el documento completo.
func (d *Document) Marshal() ([]byte, error) {
	data, err := json.Marshal(d)
	if err != nil {
		return nil, fmt.Errorf("codificar documento: %w", err)
	}
	return data, nil
}

// Normalize reemplaza colecciones nulas por vacías y adelanta los contadores
// que quedaron por detrás de un id existente, para no reutilizar ids.
func (d *Document) Normalize() {
	if d.Users == nil {
		d.Users = []User{}
	}
	if d.Categories == nil {
		d.Categories = []Category{}
	}
	if d.Products == nil {
		d.Products = []Product{}
	}
	if d.Movements == nil {
		d.Movements = []Movement{}
	}
	for _, u := range d.Users {
		d.NextUserID = max(d.NextUserID, u.ID+1)
	}
	for _, c := range d.Categories {
		d.NextCategoryID = max(d.NextCategoryID, c.ID+1)
	}
	for _, p := range d.Products {
		d.NextProductID = max(d.NextProductID, p.ID+1)
	}
	for _, m := range d.Movements {
		d.NextMovementID = max(d.NextMovementID, m.ID+1)
	}
	d.NextUserID = max(d.NextUserID, 1)
	d.NextCategoryID = max(d.NextCategoryID, 1)
	d.NextProductID = max(d.NextProductID, 1)
	d.NextMovementID = max(d.NextMovementID, 1)
}

// TakeProductID asigna el siguiente id de producto e incrementa el contador.
func (d *Document) TakeProductID() int {
	id := d.NextProductID
	d.NextProductID++
	return id
}

// TakeMovementID asigna el siguiente id de movimiento e incrementa el contador.
func (d *Document) TakeMovementID() int {
	id := d.NextMovementID
	d.NextMovementID++
	return id
}

// TakeCategoryID asigna el siguiente id de categoría e incrementa el contador.
func (d *Document) TakeCategoryID() int {
	id := d.NextCategoryID
	d.NextCategoryID++
	return id
}

// TakeUserID asigna el siguiente id de usuario e incrementa el contador.
func (d *Document) TakeUserID() int {
	id := d.NextUserID
	d.NextUserID++
	return id
}

// FindProduct devuelve un puntero al producto dentro del documento (activo o no), o nil.
func (d *Document) FindProduct(id int) *Product {
	for i := range d.Products {
		if d.Products[i].ID == id {
			return &d.Products[i]
		}
	}
	return nil
}

// CodeTaken indica si otro producto distinto de exceptID ya usa codigo. Incluye inactivos.
func (d *Document) CodeTaken(code string, exceptID int) bool {
	for _, p := range d.Products {
		if p.Code == code && p.ID != exceptID {
			return true
		}
	}
	return false
}

// ActiveProducts es el filtro único de visibilidad: productos con Active=true, en orden de alta.
func (d *Document) ActiveProducts() []Product {
	out := make([]Product, 0, len(d.Products))
	for _, p := range d.Products {
		if p.Active {
			out = append(out, p)
		}
	}
	return out
}

// FindCategory devuelve un puntero a la categoría, o nil.
func (d *Document) FindCategory(id int) *Category {
	for i := range d.Categories {
		if d.Categories[i].ID == id {
			return &d.Categories[i]
		}
	}
	return nil
}

// CategoryReferenced indica si algún producto (activo o no) apunta a la categoría.
func (d *Document) CategoryReferenced(categoryID int) bool {
	for _, p := range d.Products {
		if p.CategoryID == categoryID {
			return true
		}
	}
	return false
}

// FindUser devuelve un puntero al usuario, o nil.
func (d *Document) FindUser(id int) *User {
	for i := range d.Users {
		if d.Users[i].ID == id {
			return &d.Users[i]
		}
	}
	return nil
}

// EmailTaken indica si algún usuario ya usa email.
func (d *Document) EmailTaken(email string) bool {
	for _, u := range d.Users {
		if u.Email == email {
			return true
		}
	}
	return false
}

// ReverseMovements devuelve los movimientos que cumplen keep, del más reciente al más antiguo.
func (d *Document) ReverseMovements(keep func(Movement) bool) []Movement {
	out := make([]Movement, 0, len(d.Movements))
	for i := len(d.Movements) - 1; i >= 0; i-- {
		if keep == nil || keep(d.Movements[i]) {
			out = append(out, d.Movements[i])
		}
	}
	return out
}
