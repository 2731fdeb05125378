package repository

import "github.com/jhoicas/catalog-admin/internal/domain/entity"

// SubCategoryRepository define el puerto de persistencia para SubCategory (DIP).
type SubCategoryRepository interface {
	Create(s *entity.SubCategory) error
	GetByID(id string) (*entity.SubCategory, error)
	Update(s *entity.SubCategory) error
	// List filtra por categoría si categoryID no está vacío.
	List(categoryID string) ([]*entity.SubCategory, error)
	Delete(id string) error
}
