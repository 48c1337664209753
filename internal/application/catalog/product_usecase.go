package catalog

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Catalogo-api/internal/application/dto"
	"github.com/jhoicas/Catalogo-api/internal/domain"
	"github.com/jhoicas/Catalogo-api/internal/domain/entity"
	"github.com/jhoicas/Catalogo-api/internal/domain/repository"
)

// ProductUseCase casos de uso CRUD para productos más el reporte PDF del catálogo.
type ProductUseCase struct {
	repo      repository.ProductRepository
	integrity *Integrity
	report    ReportGenerator
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository, integrity *Integrity, report ReportGenerator) *ProductUseCase {
	return &ProductUseCase{repo: repo, integrity: integrity, report: report}
}

// Create crea un producto tras validar precio e integridad referencial
// (categoría existe → subcategoría existe → subcategoría pertenece a la categoría).
func (uc *ProductUseCase) Create(in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if in.Price.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	if err := uc.integrity.ValidateProductRefs(in.Category, in.Subcategory); err != nil {
		return nil, err
	}
	now := time.Now()
	product := &entity.Product{
		ID:            uuid.New().String(),
		Name:          in.Name,
		Description:   in.Description,
		Price:         in.Price,
		CategoryID:    in.Category,
		SubcategoryID: in.Subcategory,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	// Releer para devolver las referencias expandidas.
	created, err := uc.repo.GetByID(product.ID)
	if err != nil {
		return nil, err
	}
	return toProductResponse(created), nil
}

// GetByID obtiene un producto por ID con referencias expandidas.
func (uc *ProductUseCase) GetByID(id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	return toProductResponse(product), nil
}

// Update actualiza nombre, descripción y/o precio. Las referencias no son reasignables.
func (uc *ProductUseCase) Update(id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	if in.Name != nil {
		product.Name = *in.Name
	}
	if in.Description != nil {
		product.Description = *in.Description
	}
	if in.Price != nil {
		if in.Price.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		product.Price = *in.Price
	}
	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// List lista todos los productos con referencias expandidas.
func (uc *ProductUseCase) List() ([]dto.ProductResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return items, nil
}

// Delete elimina un producto por ID.
func (uc *ProductUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

// Report genera el PDF del catálogo completo.
func (uc *ProductUseCase) Report(ctx context.Context) ([]byte, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	return uc.report.GenerateCatalogPDF(ctx, list)
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Category:    toCategorySummary(p.Category, p.CategoryID),
		Subcategory: toSubcategorySummary(p.Subcategory, p.SubcategoryID),
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
