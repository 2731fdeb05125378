package repository

import "github.com/jhoicas/catalog-admin/internal/domain/entity"

// ProductFilter filtros opcionales del listado de productos.
type ProductFilter struct {
	CategoryID    string
	SubCategoryID string
}

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	Create(p *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	Update(p *entity.Product) error
	List(f ProductFilter) ([]*entity.Product, error)
	Delete(id string) error
}

// ImageRepository guarda los adjuntos subidos por nombre.
type ImageRepository interface {
	Put(name string, img entity.Image) error
	Get(name string) (*entity.Image, error)
}
