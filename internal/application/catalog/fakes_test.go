package catalog

import (
	"sort"

	"github.com/jhoicas/Catalogo-api/internal/domain"
	"github.com/jhoicas/Catalogo-api/internal/domain/entity"
)

// Repositorios en memoria para las pruebas del paquete.
// Respetan el contrato de los puertos: Get devuelve (nil, nil) cuando no
// existe y Delete devuelve domain.ErrNotFound si el id no está.

type fakeCategoryRepo struct {
	items map[string]*entity.Category
	// contador de lecturas para verificar el corte de las validaciones
	getCalls int
}

func newFakeCategoryRepo() *fakeCategoryRepo {
	return &fakeCategoryRepo{items: map[string]*entity.Category{}}
}

func (r *fakeCategoryRepo) Create(c *entity.Category) error {
	cp := *c
	r.items[c.ID] = &cp
	return nil
}

func (r *fakeCategoryRepo) GetByID(id string) (*entity.Category, error) {
	r.getCalls++
	c, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (r *fakeCategoryRepo) Update(c *entity.Category) error {
	cp := *c
	r.items[c.ID] = &cp
	return nil
}

func (r *fakeCategoryRepo) List() ([]*entity.Category, error) {
	out := make([]*entity.Category, 0, len(r.items))
	for _, c := range r.items {
		cp := *c
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *fakeCategoryRepo) Delete(id string) error {
	if _, ok := r.items[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.items, id)
	return nil
}

type fakeSubcategoryRepo struct {
	items      map[string]*entity.Subcategory
	categories *fakeCategoryRepo // para expandir Category en lecturas
	getCalls   int
}

func newFakeSubcategoryRepo(categories *fakeCategoryRepo) *fakeSubcategoryRepo {
	return &fakeSubcategoryRepo{items: map[string]*entity.Subcategory{}, categories: categories}
}

func (r *fakeSubcategoryRepo) expand(s *entity.Subcategory) *entity.Subcategory {
	cp := *s
	if r.categories != nil {
		if c, ok := r.categories.items[s.CategoryID]; ok {
			ccp := *c
			cp.Category = &ccp
		}
	}
	return &cp
}

func (r *fakeSubcategoryRepo) Create(s *entity.Subcategory) error {
	cp := *s
	r.items[s.ID] = &cp
	return nil
}

func (r *fakeSubcategoryRepo) GetByID(id string) (*entity.Subcategory, error) {
	r.getCalls++
	s, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	return r.expand(s), nil
}

func (r *fakeSubcategoryRepo) Update(s *entity.Subcategory) error {
	cp := *s
	cp.Category = nil
	r.items[s.ID] = &cp
	return nil
}

func (r *fakeSubcategoryRepo) List() ([]*entity.Subcategory, error) {
	out := make([]*entity.Subcategory, 0, len(r.items))
	for _, s := range r.items {
		out = append(out, r.expand(s))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *fakeSubcategoryRepo) ListByCategory(categoryID string) ([]*entity.Subcategory, error) {
	out := make([]*entity.Subcategory, 0)
	for _, s := range r.items {
		if s.CategoryID == categoryID {
			out = append(out, r.expand(s))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *fakeSubcategoryRepo) Delete(id string) error {
	if _, ok := r.items[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.items, id)
	return nil
}

type fakeProductRepo struct {
	items         map[string]*entity.Product
	categories    *fakeCategoryRepo
	subcategories *fakeSubcategoryRepo
}

func newFakeProductRepo(categories *fakeCategoryRepo, subcategories *fakeSubcategoryRepo) *fakeProductRepo {
	return &fakeProductRepo{
		items:         map[string]*entity.Product{},
		categories:    categories,
		subcategories: subcategories,
	}
}

func (r *fakeProductRepo) expand(p *entity.Product) *entity.Product {
	cp := *p
	if r.categories != nil {
		if c, ok := r.categories.items[p.CategoryID]; ok {
			ccp := *c
			cp.Category = &ccp
		}
	}
	if r.subcategories != nil {
		if s, ok := r.subcategories.items[p.SubcategoryID]; ok {
			scp := *s
			cp.Subcategory = &scp
		}
	}
	return &cp
}

func (r *fakeProductRepo) Create(p *entity.Product) error {
	cp := *p
	r.items[p.ID] = &cp
	return nil
}

func (r *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	p, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	return r.expand(p), nil
}

func (r *fakeProductRepo) Update(p *entity.Product) error {
	cp := *p
	cp.Category = nil
	cp.Subcategory = nil
	r.items[p.ID] = &cp
	return nil
}

func (r *fakeProductRepo) List() ([]*entity.Product, error) {
	out := make([]*entity.Product, 0, len(r.items))
	for _, p := range r.items {
		out = append(out, r.expand(p))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *fakeProductRepo) Delete(id string) error {
	if _, ok := r.items[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.items, id)
	return nil
}
