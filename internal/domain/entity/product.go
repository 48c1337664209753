package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un artículo vendible del catálogo.
// Invariantes: Price >= 0; CategoryID y SubcategoryID existen; la subcategoría
// referenciada pertenece a la misma categoría que declara el producto.
type Product struct {
	ID            string
	Name          string
	Description   string
	Price         decimal.Decimal
	CategoryID    string
	SubcategoryID string
	CreatedAt     time.Time
	UpdatedAt     time.Time

	// Category y Subcategory se llenan en lecturas con JOIN.
	Category    *Category
	Subcategory *Subcategory
}
