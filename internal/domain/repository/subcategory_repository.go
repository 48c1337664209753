package repository

import "github.com/jhoicas/Catalogo-api/internal/domain/entity"

// SubcategoryRepository define el puerto de persistencia para Subcategory (DIP).
// Las lecturas llenan Category (referencia expandida).
type SubcategoryRepository interface {
	Create(subcategory *entity.Subcategory) error
	GetByID(id string) (*entity.Subcategory, error)
	Update(subcategory *entity.Subcategory) error
	List() ([]*entity.Subcategory, error)
	ListByCategory(categoryID string) ([]*entity.Subcategory, error)
	Delete(id string) error
}
