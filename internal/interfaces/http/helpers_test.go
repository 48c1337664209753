package http

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	nethttp "net/http"
	"net/http/httptest"
	"sort"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Catalogo-api/internal/application/auth"
	"github.com/jhoicas/Catalogo-api/internal/application/catalog"
	"github.com/jhoicas/Catalogo-api/internal/application/usecase"
	"github.com/jhoicas/Catalogo-api/internal/domain"
	"github.com/jhoicas/Catalogo-api/internal/domain/entity"
	"github.com/stretchr/testify/require"
)

const testSecret = "secreto-de-prueba-muy-largo"

// Repositorios en memoria que respetan el contrato de los puertos:
// Get devuelve (nil, nil) si no existe; Delete devuelve domain.ErrNotFound.

type memUserRepo struct {
	items map[string]*entity.User
}

func (r *memUserRepo) Create(u *entity.User) error {
	cp := *u
	r.items[u.ID] = &cp
	return nil
}

func (r *memUserRepo) GetByID(id string) (*entity.User, error) {
	u, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (r *memUserRepo) GetByEmail(email string) (*entity.User, error) {
	for _, u := range r.items {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memUserRepo) Update(u *entity.User) error {
	cp := *u
	r.items[u.ID] = &cp
	return nil
}

func (r *memUserRepo) List() ([]*entity.User, error) {
	out := make([]*entity.User, 0, len(r.items))
	for _, u := range r.items {
		cp := *u
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Email < out[j].Email })
	return out, nil
}

func (r *memUserRepo) Delete(id string) error {
	if _, ok := r.items[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.items, id)
	return nil
}

type memCategoryRepo struct {
	items map[string]*entity.Category
}

func (r *memCategoryRepo) Create(c *entity.Category) error {
	cp := *c
	r.items[c.ID] = &cp
	return nil
}

func (r *memCategoryRepo) GetByID(id string) (*entity.Category, error) {
	c, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (r *memCategoryRepo) Update(c *entity.Category) error {
	cp := *c
	r.items[c.ID] = &cp
	return nil
}

func (r *memCategoryRepo) List() ([]*entity.Category, error) {
	out := make([]*entity.Category, 0, len(r.items))
	for _, c := range r.items {
		cp := *c
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *memCategoryRepo) Delete(id string) error {
	if _, ok := r.items[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.items, id)
	return nil
}

type memSubcategoryRepo struct {
	items      map[string]*entity.Subcategory
	categories *memCategoryRepo
}

func (r *memSubcategoryRepo) expand(s *entity.Subcategory) *entity.Subcategory {
	cp := *s
	if c, ok := r.categories.items[s.CategoryID]; ok {
		ccp := *c
		cp.Category = &ccp
	}
	return &cp
}

func (r *memSubcategoryRepo) Create(s *entity.Subcategory) error {
	cp := *s
	r.items[s.ID] = &cp
	return nil
}

func (r *memSubcategoryRepo) GetByID(id string) (*entity.Subcategory, error) {
	s, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	return r.expand(s), nil
}

func (r *memSubcategoryRepo) Update(s *entity.Subcategory) error {
	cp := *s
	cp.Category = nil
	r.items[s.ID] = &cp
	return nil
}

func (r *memSubcategoryRepo) List() ([]*entity.Subcategory, error) {
	out := make([]*entity.Subcategory, 0, len(r.items))
	for _, s := range r.items {
		out = append(out, r.expand(s))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *memSubcategoryRepo) ListByCategory(categoryID string) ([]*entity.Subcategory, error) {
	out := make([]*entity.Subcategory, 0)
	for _, s := range r.items {
		if s.CategoryID == categoryID {
			out = append(out, r.expand(s))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *memSubcategoryRepo) Delete(id string) error {
	if _, ok := r.items[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.items, id)
	return nil
}

type memProductRepo struct {
	items         map[string]*entity.Product
	categories    *memCategoryRepo
	subcategories *memSubcategoryRepo
}

func (r *memProductRepo) expand(p *entity.Product) *entity.Product {
	cp := *p
	if c, ok := r.categories.items[p.CategoryID]; ok {
		ccp := *c
		cp.Category = &ccp
	}
	if s, ok := r.subcategories.items[p.SubcategoryID]; ok {
		scp := *s
		cp.Subcategory = &scp
	}
	return &cp
}

func (r *memProductRepo) Create(p *entity.Product) error {
	cp := *p
	r.items[p.ID] = &cp
	return nil
}

func (r *memProductRepo) GetByID(id string) (*entity.Product, error) {
	p, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	return r.expand(p), nil
}

func (r *memProductRepo) Update(p *entity.Product) error {
	cp := *p
	cp.Category = nil
	cp.Subcategory = nil
	r.items[p.ID] = &cp
	return nil
}

func (r *memProductRepo) List() ([]*entity.Product, error) {
	out := make([]*entity.Product, 0, len(r.items))
	for _, p := range r.items {
		out = append(out, r.expand(p))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *memProductRepo) Delete(id string) error {
	if _, ok := r.items[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.items, id)
	return nil
}

type memReportGenerator struct{}

func (memReportGenerator) GenerateCatalogPDF(_ context.Context, _ []*entity.Product) ([]byte, error) {
	return []byte("%PDF-1.7 prueba"), nil
}

// testEnv aplicación Fiber completa con repos en memoria y dos cuentas
// sembradas: admin@ejemplo.com y coord@ejemplo.com (password "clave-segura").
type testEnv struct {
	app           *fiber.App
	users         *memUserRepo
	categories    *memCategoryRepo
	subcategories *memSubcategoryRepo
	products      *memProductRepo
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	users := &memUserRepo{items: map[string]*entity.User{}}
	categories := &memCategoryRepo{items: map[string]*entity.Category{}}
	subcategories := &memSubcategoryRepo{items: map[string]*entity.Subcategory{}, categories: categories}
	products := &memProductRepo{items: map[string]*entity.Product{}, categories: categories, subcategories: subcategories}

	hash, err := auth.HashPassword("clave-segura")
	require.NoError(t, err)
	now := time.Now()
	require.NoError(t, users.Create(&entity.User{
		ID: "user-admin", Name: "Admin", Email: "admin@ejemplo.com",
		PasswordHash: hash, Role: entity.RoleAdmin, CreatedAt: now, UpdatedAt: now,
	}))
	require.NoError(t, users.Create(&entity.User{
		ID: "user-coord", Name: "Coordinadora", Email: "coord@ejemplo.com",
		PasswordHash: hash, Role: entity.RoleCoordinator, CreatedAt: now, UpdatedAt: now,
	}))

	integrity := catalog.NewIntegrity(categories, subcategories)
	jwtCfg := auth.JWTConfig{Secret: testSecret, ExpMinutes: 60, Issuer: "catalogo-api"}

	app := fiber.New()
	Router(app, RouterDeps{
		AuthUC:        auth.NewAuthUseCase(users, jwtCfg),
		UserUC:        usecase.NewUserUseCase(users),
		CategoryUC:    catalog.NewCategoryUseCase(categories),
		SubcategoryUC: catalog.NewSubcategoryUseCase(subcategories, integrity),
		ProductUC:     catalog.NewProductUseCase(products, integrity, memReportGenerator{}),
		JWTSecret:     testSecret,
	})

	return &testEnv{
		app:           app,
		users:         users,
		categories:    categories,
		subcategories: subcategories,
		products:      products,
	}
}

func (e *testEnv) request(t *testing.T, method, path, token string, body any) *nethttp.Response {
	t.Helper()
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := e.app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeJSON(t *testing.T, resp *nethttp.Response, out any) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}

func readBody(t *testing.T, resp *nethttp.Response) string {
	t.Helper()
	defer resp.Body.Close()
	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(b)
}

func (e *testEnv) login(t *testing.T, email, password string) string {
	t.Helper()
	resp := e.request(t, nethttp.MethodPost, "/api/auth/login", "", fiber.Map{
		"email": email, "password": password,
	})
	require.Equal(t, nethttp.StatusOK, resp.StatusCode)
	var out struct {
		Token string `json:"token"`
	}
	decodeJSON(t, resp, &out)
	require.NotEmpty(t, out.Token)
	return out.Token
}
