package catalog

import (
	"testing"

	"github.com/jhoicas/Catalogo-api/internal/application/dto"
	"github.com/jhoicas/Catalogo-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubcategoryCreate(t *testing.T) {
	cats, subs := seedCatalog(t)
	uc := NewSubcategoryUseCase(subs, NewIntegrity(cats, subs))

	out, err := uc.Create(dto.CreateSubcategoryRequest{
		Name:     "Laptops",
		Category: "cat-electronics",
	})
	require.NoError(t, err)
	require.NotNil(t, out)

	assert.NotEmpty(t, out.ID)
	assert.Equal(t, "Laptops", out.Name)
	// La categoría vuelve expandida, con nombre
	assert.Equal(t, "cat-electronics", out.Category.ID)
	assert.Equal(t, "Electrónica", out.Category.Name)
}

func TestSubcategoryCreateCategoryNotFound(t *testing.T) {
	cats, subs := seedCatalog(t)
	uc := NewSubcategoryUseCase(subs, NewIntegrity(cats, subs))

	before := len(subs.items)
	_, err := uc.Create(dto.CreateSubcategoryRequest{
		Name:     "Huérfana",
		Category: "cat-inexistente",
	})
	assert.ErrorIs(t, err, domain.ErrCategoryNotFound)
	assert.Len(t, subs.items, before, "no debe persistir nada")
}

func TestSubcategoryUpdateKeepsCategory(t *testing.T) {
	cats, subs := seedCatalog(t)
	uc := NewSubcategoryUseCase(subs, NewIntegrity(cats, subs))

	name := "Smartphones"
	out, err := uc.Update("sub-phones", dto.UpdateSubcategoryRequest{Name: &name})
	require.NoError(t, err)
	require.NotNil(t, out)

	assert.Equal(t, "Smartphones", out.Name)
	assert.Equal(t, "cat-electronics", out.Category.ID)
}

func TestSubcategoryListByCategory(t *testing.T) {
	cats, subs := seedCatalog(t)
	uc := NewSubcategoryUseCase(subs, NewIntegrity(cats, subs))

	list, err := uc.ListByCategory("cat-electronics")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "sub-phones", list[0].ID)

	empty, err := uc.ListByCategory("cat-clothing")
	require.NoError(t, err)
	assert.Empty(t, empty)
}
