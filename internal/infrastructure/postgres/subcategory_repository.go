package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/catalog-admin/internal/domain"
	"github.com/jhoicas/catalog-admin/internal/domain/entity"
	"github.com/jhoicas/catalog-admin/internal/domain/repository"
)

var _ repository.SubCategoryRepository = (*SubCategoryRepo)(nil)

const subCategoryColumns = `id, name, category_id, status, image_url, description, created_at, updated_at`

// SubCategoryRepo implementación del puerto SubCategoryRepository sobre PostgreSQL.
type SubCategoryRepo struct {
	q Querier
}

// NewSubCategoryRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSubCategoryRepository(q Querier) *SubCategoryRepo {
	return &SubCategoryRepo{q: q}
}

// Create inserta la subcategoría; falla con ErrDuplicate si el id existe.
func (r *SubCategoryRepo) Create(s *entity.SubCategory) error {
	query := `INSERT INTO subcategories (` + subCategoryColumns + `) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		s.ID, s.Name, s.CategoryID.ID, s.Status, s.ImageURL, s.Description, s.CreatedAt, s.UpdatedAt,
	)
	if err != nil {
		switch {
		case isUniqueViolation(err):
			return domain.ErrDuplicate
		case isForeignKeyViolation(err):
			return domain.ErrInvalidInput
		}
		return fmt.Errorf("insert subcategory: %w", err)
	}
	return nil
}

// GetByID devuelve la subcategoría o (nil, nil) si no existe.
func (r *SubCategoryRepo) GetByID(id string) (*entity.SubCategory, error) {
	query := `SELECT ` + subCategoryColumns + ` FROM subcategories WHERE id = $1`
	s, err := scanSubCategory(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get subcategory: %w", err)
	}
	return s, nil
}

// Update reemplaza la subcategoría; ErrNotFound si no existe.
func (r *SubCategoryRepo) Update(s *entity.SubCategory) error {
	query := `
		UPDATE subcategories
		SET name = $2, category_id = $3, status = $4, image_url = $5, description = $6, updated_at = $7
		WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query,
		s.ID, s.Name, s.CategoryID.ID, s.Status, s.ImageURL, s.Description, s.UpdatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrInvalidInput
		}
		return fmt.Errorf("update subcategory: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List filtra por categoría si categoryID no está vacío.
func (r *SubCategoryRepo) List(categoryID string) ([]*entity.SubCategory, error) {
	query := `SELECT ` + subCategoryColumns + ` FROM subcategories
		WHERE ($1 = '' OR category_id = $1) ORDER BY created_at, id`
	rows, err := r.q.Query(context.Background(), query, categoryID)
	if err != nil {
		return nil, fmt.Errorf("list subcategories: %w", err)
	}
	defer rows.Close()

	var list []*entity.SubCategory
	for rows.Next() {
		s, err := scanSubCategory(rows)
		if err != nil {
			return nil, fmt.Errorf("scan subcategory: %w", err)
		}
		list = append(list, s)
	}
	return list, rows.Err()
}

// Delete borra la subcategoría; borrar un id inexistente no es error.
func (r *SubCategoryRepo) Delete(id string) error {
	if _, err := r.q.Exec(context.Background(), `DELETE FROM subcategories WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete subcategory: %w", err)
	}
	return nil
}

func scanSubCategory(row pgx.Row) (*entity.SubCategory, error) {
	var s entity.SubCategory
	err := row.Scan(&s.ID, &s.Name, &s.CategoryID.ID, &s.Status, &s.ImageURL, &s.Description, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &s, nil
}
