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

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL.
// Las lecturas hacen JOIN con categories y subcategories para expandir referencias.
type ProductRepo struct {
	pool *pgxpool.Pool
}

// NewProductRepository construye el adaptador de persistencia para productos.
func NewProductRepository(pool *pgxpool.Pool) *ProductRepo {
	return &ProductRepo{pool: pool}
}

const productSelect = `
	SELECT p.id, p.name, p.description, p.price, p.category_id, p.subcategory_id,
	       p.created_at, p.updated_at,
	       c.name, c.description,
	       s.name, s.description
	FROM products p
	JOIN categories c ON c.id = p.category_id
	JOIN subcategories s ON s.id = p.subcategory_id`

func scanProduct(row pgx.Row) (*entity.Product, error) {
	var p entity.Product
	var catName, catDescription, subName, subDescription string
	err := row.Scan(
		&p.ID, &p.Name, &p.Description, &p.Price, &p.CategoryID, &p.SubcategoryID,
		&p.CreatedAt, &p.UpdatedAt,
		&catName, &catDescription,
		&subName, &subDescription,
	)
	if err != nil {
		return nil, err
	}
	p.Category = &entity.Category{ID: p.CategoryID, Name: catName, Description: catDescription}
	p.Subcategory = &entity.Subcategory{
		ID:          p.SubcategoryID,
		Name:        subName,
		Description: subDescription,
		CategoryID:  p.CategoryID,
	}
	return &p, nil
}

// Create persiste un nuevo producto.
func (r *ProductRepo) Create(product *entity.Product) error {
	query := `
		INSERT INTO products (id, name, description, price, category_id, subcategory_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.pool.Exec(context.Background(), query,
		product.ID, product.Name, product.Description, product.Price,
		product.CategoryID, product.SubcategoryID, product.CreatedAt, product.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID con referencias expandidas.
func (r *ProductRepo) GetByID(id string) (*entity.Product, error) {
	row := r.pool.QueryRow(context.Background(), productSelect+` WHERE p.id = $1`, id)
	p, err := scanProduct(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product by id: %w", err)
	}
	return p, nil
}

// Update actualiza nombre, descripción y precio (referencias no reasignables).
func (r *ProductRepo) Update(product *entity.Product) error {
	query := `
		UPDATE products SET name = $2, description = $3, price = $4, updated_at = $5
		WHERE id = $1`
	_, err := r.pool.Exec(context.Background(), query,
		product.ID, product.Name, product.Description, product.Price, product.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	return nil
}

// List lista todos los productos con referencias expandidas.
func (r *ProductRepo) List() ([]*entity.Product, error) {
	rows, err := r.pool.Query(context.Background(), productSelect+` ORDER BY p.created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// Delete elimina un producto por ID.
func (r *ProductRepo) Delete(id string) error {
	tag, err := r.pool.Exec(context.Background(), `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
