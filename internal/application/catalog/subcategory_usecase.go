package catalog

import (
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Catalogo-api/internal/application/dto"
	"github.com/jhoicas/Catalogo-api/internal/domain/entity"
	"github.com/jhoicas/Catalogo-api/internal/domain/repository"
)

// SubcategoryUseCase casos de uso CRUD para subcategorías.
type SubcategoryUseCase struct {
	repo      repository.SubcategoryRepository
	integrity *Integrity
}

// NewSubcategoryUseCase construye el caso de uso.
func NewSubcategoryUseCase(repo repository.SubcategoryRepository, integrity *Integrity) *SubcategoryUseCase {
	return &SubcategoryUseCase{repo: repo, integrity: integrity}
}

// Create crea una subcategoría si la categoría referenciada existe.
func (uc *SubcategoryUseCase) Create(in dto.CreateSubcategoryRequest) (*dto.SubcategoryResponse, error) {
	if err := uc.integrity.ValidateSubcategoryCreate(in.Category); err != nil {
		return nil, err
	}
	now := time.Now()
	subcategory := &entity.Subcategory{
		ID:          uuid.New().String(),
		Name:        in.Name,
		Description: in.Description,
		CategoryID:  in.Category,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(subcategory); err != nil {
		return nil, err
	}
	// Releer para devolver la categoría expandida.
	created, err := uc.repo.GetByID(subcategory.ID)
	if err != nil {
		return nil, err
	}
	return toSubcategoryResponse(created), nil
}

// GetByID obtiene una subcategoría por ID.
func (uc *SubcategoryUseCase) GetByID(id string) (*dto.SubcategoryResponse, error) {
	subcategory, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if subcategory == nil {
		return nil, nil
	}
	return toSubcategoryResponse(subcategory), nil
}

// Update actualiza nombre y/o descripción. La categoría no es reasignable.
func (uc *SubcategoryUseCase) Update(id string, in dto.UpdateSubcategoryRequest) (*dto.SubcategoryResponse, error) {
	subcategory, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if subcategory == nil {
		return nil, nil
	}
	if in.Name != nil {
		subcategory.Name = *in.Name
	}
	if in.Description != nil {
		subcategory.Description = *in.Description
	}
	subcategory.UpdatedAt = time.Now()
	if err := uc.repo.Update(subcategory); err != nil {
		return nil, err
	}
	return toSubcategoryResponse(subcategory), nil
}

// List lista todas las subcategorías con su categoría expandida.
func (uc *SubcategoryUseCase) List() ([]dto.SubcategoryResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	return toSubcategoryResponses(list), nil
}

// ListByCategory lista las subcategorías de una categoría.
func (uc *SubcategoryUseCase) ListByCategory(categoryID string) ([]dto.SubcategoryResponse, error) {
	list, err := uc.repo.ListByCategory(categoryID)
	if err != nil {
		return nil, err
	}
	return toSubcategoryResponses(list), nil
}

// Delete elimina una subcategoría por ID.
func (uc *SubcategoryUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

func toSubcategoryResponses(list []*entity.Subcategory) []dto.SubcategoryResponse {
	items := make([]dto.SubcategoryResponse, 0, len(list))
	for _, s := range list {
		items = append(items, *toSubcategoryResponse(s))
	}
	return items
}

func toSubcategoryResponse(s *entity.Subcategory) *dto.SubcategoryResponse {
	if s == nil {
		return nil
	}
	return &dto.SubcategoryResponse{
		ID:          s.ID,
		Name:        s.Name,
		Description: s.Description,
		Category:    toCategorySummary(s.Category, s.CategoryID),
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}

func toSubcategorySummary(s *entity.Subcategory, id string) dto.SubcategorySummary {
	if s == nil {
		return dto.SubcategorySummary{ID: id}
	}
	return dto.SubcategorySummary{
		ID:          s.ID,
		Name:        s.Name,
		Description: s.Description,
		CategoryID:  s.CategoryID,
	}
}
