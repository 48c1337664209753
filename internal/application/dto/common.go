package dto

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// MessageResponse cuerpo de confirmación (deletes).
type MessageResponse struct {
	Message string `json:"message"`
}

// CategorySummary referencia expandida de una categoría en respuestas anidadas.
type CategorySummary struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// SubcategorySummary referencia expandida de una subcategoría en respuestas anidadas.
type SubcategorySummary struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	CategoryID  string `json:"category_id"`
}
