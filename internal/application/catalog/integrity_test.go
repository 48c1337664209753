package catalog

import (
	"testing"
	"time"

	"github.com/jhoicas/Catalogo-api/internal/domain"
	"github.com/jhoicas/Catalogo-api/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedCatalog(t *testing.T) (*fakeCategoryRepo, *fakeSubcategoryRepo) {
	t.Helper()
	now := time.Now()
	cats := newFakeCategoryRepo()
	subs := newFakeSubcategoryRepo(cats)

	require.NoError(t, cats.Create(&entity.Category{ID: "cat-electronics", Name: "Electrónica", CreatedAt: now, UpdatedAt: now}))
	require.NoError(t, cats.Create(&entity.Category{ID: "cat-clothing", Name: "Ropa", CreatedAt: now, UpdatedAt: now}))
	require.NoError(t, subs.Create(&entity.Subcategory{ID: "sub-phones", Name: "Teléfonos", CategoryID: "cat-electronics", CreatedAt: now, UpdatedAt: now}))
	return cats, subs
}

func TestValidateSubcategoryCreate(t *testing.T) {
	cats, subs := seedCatalog(t)
	integrity := NewIntegrity(cats, subs)

	assert.NoError(t, integrity.ValidateSubcategoryCreate("cat-electronics"))
	assert.ErrorIs(t, integrity.ValidateSubcategoryCreate("cat-inexistente"), domain.ErrCategoryNotFound)
}

func TestValidateProductRefs(t *testing.T) {
	cats, subs := seedCatalog(t)
	integrity := NewIntegrity(cats, subs)

	t.Run("referencias válidas", func(t *testing.T) {
		assert.NoError(t, integrity.ValidateProductRefs("cat-electronics", "sub-phones"))
	})

	t.Run("categoría inexistente", func(t *testing.T) {
		err := integrity.ValidateProductRefs("cat-inexistente", "sub-phones")
		assert.ErrorIs(t, err, domain.ErrCategoryNotFound)
	})

	t.Run("subcategoría inexistente", func(t *testing.T) {
		err := integrity.ValidateProductRefs("cat-electronics", "sub-inexistente")
		assert.ErrorIs(t, err, domain.ErrSubcategoryNotFound)
	})

	t.Run("subcategoría de otra categoría", func(t *testing.T) {
		err := integrity.ValidateProductRefs("cat-clothing", "sub-phones")
		assert.ErrorIs(t, err, domain.ErrSubcategoryMismatch)
	})
}

// El orden de verificación corta en la primera violación: si la categoría no
// existe, la subcategoría ni se consulta aunque tampoco exista.
func TestValidateProductRefsShortCircuit(t *testing.T) {
	cats, subs := seedCatalog(t)
	integrity := NewIntegrity(cats, subs)

	before := subs.getCalls
	err := integrity.ValidateProductRefs("cat-inexistente", "sub-inexistente")
	assert.ErrorIs(t, err, domain.ErrCategoryNotFound)
	assert.Equal(t, before, subs.getCalls, "no debe consultar subcategorías si la categoría falla")
}
