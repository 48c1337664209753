package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/Catalogo-api/internal/domain"
	"github.com/jhoicas/Catalogo-api/internal/domain/entity"
	"github.com/jhoicas/Catalogo-api/internal/domain/repository"
)

var _ repository.SubcategoryRepository = (*SubcategoryRepo)(nil)

// SubcategoryRepo implementación del puerto SubcategoryRepository sobre PostgreSQL.
// Las lecturas hacen JOIN con categories para expandir la referencia.
type SubcategoryRepo struct {
	pool *pgxpool.Pool
}

// NewSubcategoryRepository construye el adaptador de persistencia para subcategorías.
func NewSubcategoryRepository(pool *pgxpool.Pool) *SubcategoryRepo {
	return &SubcategoryRepo{pool: pool}
}

const subcategorySelect = `
	SELECT s.id, s.name, s.description, s.category_id, s.created_at, s.updated_at,
	       c.name, c.description
	FROM subcategories s
	JOIN categories c ON c.id = s.category_id`

func scanSubcategory(row pgx.Row) (*entity.Subcategory, error) {
	var s entity.Subcategory
	var catName, catDescription string
	err := row.Scan(
		&s.ID, &s.Name, &s.Description, &s.CategoryID, &s.CreatedAt, &s.UpdatedAt,
		&catName, &catDescription,
	)
	if err != nil {
		return nil, err
	}
	s.Category = &entity.Category{ID: s.CategoryID, Name: catName, Description: catDescription}
	return &s, nil
}

// Create persiste una nueva subcategoría. (name, category_id) es único.
func (r *SubcategoryRepo) Create(subcategory *entity.Subcategory) error {
	query := `
		INSERT INTO subcategories (id, name, description, category_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.pool.Exec(context.Background(), query,
		subcategory.ID, subcategory.Name, subcategory.Description, subcategory.CategoryID,
		subcategory.CreatedAt, subcategory.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert subcategory: %w", err)
	}
	return nil
}

// GetByID obtiene una subcategoría por ID con su categoría expandida.
func (r *SubcategoryRepo) GetByID(id string) (*entity.Subcategory, error) {
	row := r.pool.QueryRow(context.Background(), subcategorySelect+` WHERE s.id = $1`, id)
	s, err := scanSubcategory(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get subcategory by id: %w", err)
	}
	return s, nil
}

// Update actualiza nombre y descripción (category_id no es reasignable).
func (r *SubcategoryRepo) Update(subcategory *entity.Subcategory) error {
	query := `
		UPDATE subcategories SET name = $2, description = $3, updated_at = $4
		WHERE id = $1`
	_, err := r.pool.Exec(context.Background(), query,
		subcategory.ID, subcategory.Name, subcategory.Description, subcategory.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update subcategory: %w", err)
	}
	return nil
}

// List lista todas las subcategorías con su categoría expandida.
func (r *SubcategoryRepo) List() ([]*entity.Subcategory, error) {
	return r.list(subcategorySelect + ` ORDER BY s.created_at DESC`)
}

// ListByCategory lista las subcategorías de una categoría.
func (r *SubcategoryRepo) ListByCategory(categoryID string) ([]*entity.Subcategory, error) {
	return r.list(subcategorySelect+` WHERE s.category_id = $1 ORDER BY s.created_at DESC`, categoryID)
}

func (r *SubcategoryRepo) list(query string, args ...any) ([]*entity.Subcategory, error) {
	rows, err := r.pool.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list subcategories: %w", err)
	}
	defer rows.Close()
	var list []*entity.Subcategory
	for rows.Next() {
		s, err := scanSubcategory(rows)
		if err != nil {
			return nil, fmt.Errorf("scan subcategory: %w", err)
		}
		list = append(list, s)
	}
	return list, rows.Err()
}

// Delete elimina una subcategoría por ID.
func (r *SubcategoryRepo) Delete(id string) error {
	tag, err := r.pool.Exec(context.Background(), `DELETE FROM subcategories WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete subcategory: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
