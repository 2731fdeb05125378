package repository

import "github.com/jhoicas/catalog-admin/internal/domain/entity"

// CategoryRepository define el puerto de persistencia para Category (DIP).
type CategoryRepository interface {
	Create(c *entity.Category) error
	GetByID(id string) (*entity.Category, error)
	Update(c *entity.Category) error
	List() ([]*entity.Category, error)
	Delete(id string) error
}
