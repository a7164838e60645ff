package inventory

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventario-storage/internal/domain/entity"
)

// demoDocument datos de arranque: un admin, un empleado, tres categorías, tres productos y dos compras.
func demoDocument(now time.Time) *entity.Document {
	doc := &entity.Document{
		Users: []entity.User{
			{ID: 1, Name: "Administrador", Email: "admin@empresa.com", Password: "admin123", Role: entity.RoleAdmin, Active: true, CreatedAt: now},
			{ID: 2, Name: "Empleado Demo", Email: "empleado@empresa.com", Password: "emp123", Role: entity.RoleEmpleado, Active: true, CreatedAt: now},
		},
		Categories: []entity.Category{
			{ID: 1, Name: "Electrónica", Description: "Productos electrónicos"},
			{ID: 2, Name: "Ropa", Description: "Prendas de vestir"},
			{ID: 3, Name: "Alimentos", Description: "Productos alimenticios"},
		},
		Products: []entity.Product{
			{ID: 1, Code: "PROD001", Name: "Laptop", CategoryID: 1, Stock: 15, Price: decimal.RequireFromString("899.99"),
				MinStock: 5, Description: "Laptop de 15 pulgadas", Active: true, CreatedAt: now},
			{ID: 2, Code: "PROD002", Name: "Mouse", CategoryID: 1, Stock: 50, Price: decimal.RequireFromString("29.99"),
				MinStock: 20, Description: "Mouse inalámbrico", Active: true, CreatedAt: now},
			{ID: 3, Code: "PROD003", Name: "Camiseta", CategoryID: 2, Stock: 8, Price: decimal.RequireFromString("19.99"),
				MinStock: 15, Description: "Camiseta de algodón", Active: true, CreatedAt: now},
		},
		Movements: []entity.Movement{
			{ID: 1, ProductID: 1, Type: entity.MovementTypeIn, Quantity: 10, UserID: 1, Description: "Compra inicial", Date: now.Add(-24 * time.Hour)},
			{ID: 2, ProductID: 2, Type: entity.MovementTypeIn, Quantity: 50, UserID: 1, Description: "Compra proveedor", Date: now.Add(-12 * time.Hour)},
		},
		NextProductID:  4,
		NextMovementID: 3,
		NextCategoryID: 4,
		NextUserID:     3,
	}
	doc.Normalize()
	return doc
}
