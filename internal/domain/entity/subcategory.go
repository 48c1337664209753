package entity

import "time"

// Subcategory representa una clasificación anidada bajo exactamente una Category.
// (Name, CategoryID) es único; la categoría no es reasignable vía update.
type Subcategory struct {
	ID          string
	Name        string
	Description string
	CategoryID  string
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// Category se llena en lecturas con JOIN (equivalente a expandir la referencia).
	Category *Category
}
