package catalog

import (
	"github.com/jhoicas/Catalogo-api/internal/domain"
	"github.com/jhoicas/Catalogo-api/internal/domain/repository"
)

// Integrity aplica las reglas de integridad referencial del catálogo en los
// caminos de escritura de Subcategory y Product. Solo hace lecturas.
type Integrity struct {
	catRepo repository.CategoryRepository
	subRepo repository.SubcategoryRepository
}

// NewIntegrity construye las reglas con los puertos de lectura.
func NewIntegrity(catRepo repository.CategoryRepository, subRepo repository.SubcategoryRepository) *Integrity {
	return &Integrity{catRepo: catRepo, subRepo: subRepo}
}

// ValidateSubcategoryCreate exige que la categoría referenciada exista.
func (i *Integrity) ValidateSubcategoryCreate(categoryID string) error {
	category, err := i.catRepo.GetByID(categoryID)
	if err != nil {
		return err
	}
	if category == nil {
		return domain.ErrCategoryNotFound
	}
	return nil
}

// ValidateProductRefs valida las referencias de un producto en orden estricto
// y con corte en la primera violación:
//  1. la categoría existe
//  2. la subcategoría existe
//  3. la subcategoría pertenece a la categoría indicada
func (i *Integrity) ValidateProductRefs(categoryID, subcategoryID string) error {
	category, err := i.catRepo.GetByID(categoryID)
	if err != nil {
		return err
	}
	if category == nil {
		return domain.ErrCategoryNotFound
	}
	subcategory, err := i.subRepo.GetByID(subcategoryID)
	if err != nil {
		return err
	}
	if subcategory == nil {
		return domain.ErrSubcategoryNotFound
	}
	if subcategory.CategoryID != categoryID {
		return domain.ErrSubcategoryMismatch
	}
	return nil
}
