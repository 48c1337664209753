package dto

import "time"

// CreateSubcategoryRequest entrada para crear una subcategoría bajo una categoría existente.
type CreateSubcategoryRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=200"`
	Description string `json:"description" validate:"omitempty,max=1000"`
	Category    string `json:"category" validate:"required"`
}

// UpdateSubcategoryRequest entrada para actualización parcial.
// La categoría no es reasignable vía update.
type UpdateSubcategoryRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=1,max=200"`
	Description *string `json:"description" validate:"omitempty,max=1000"`
}

// SubcategoryResponse salida de una subcategoría con su categoría expandida.
type SubcategoryResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Category    CategorySummary `json:"category"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}
