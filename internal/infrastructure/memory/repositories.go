package memory

import (
	"strings"

	"github.com/jhoicas/catalog-admin/internal/domain"
	"github.com/jhoicas/catalog-admin/internal/domain/entity"
	"github.com/jhoicas/catalog-admin/internal/domain/repository"
)

var (
	_ repository.UserRepository        = (*UserRepo)(nil)
	_ repository.CategoryRepository    = (*CategoryRepo)(nil)
	_ repository.SubCategoryRepository = (*SubCategoryRepo)(nil)
	_ repository.ProductRepository     = (*ProductRepo)(nil)
	_ repository.ImageRepository       = (*ImageRepo)(nil)
)

// UserRepo cuentas en memoria; el email es único sin distinguir mayúsculas.
type UserRepo struct {
	t       *table[entity.Account]
	byEmail *table[string]
}

// NewUserRepository construye el repositorio de usuarios.
func NewUserRepository() *UserRepo {
	return &UserRepo{t: newTable[entity.Account](), byEmail: newTable[string]()}
}

// Create inserta la cuenta; ErrEmailAlreadyExists si el email ya está registrado.
func (r *UserRepo) Create(acc *entity.Account) error {
	email := strings.ToLower(acc.Email)
	if !r.byEmail.insert(email, acc.ID) {
		return domain.ErrEmailAlreadyExists
	}
	if !r.t.insert(acc.ID, *acc) {
		r.byEmail.remove(email)
		return domain.ErrDuplicate
	}
	return nil
}

// FindByID devuelve la cuenta o (nil, nil).
func (r *UserRepo) FindByID(id string) (*entity.Account, error) {
	acc, _ := r.t.get(id)
	return acc, nil
}

// FindByEmail busca sin distinguir mayúsculas; (nil, nil) si no hay coincidencia.
func (r *UserRepo) FindByEmail(email string) (*entity.Account, error) {
	id, ok := r.byEmail.get(strings.ToLower(email))
	if !ok {
		return nil, nil
	}
	return r.FindByID(*id)
}

// CategoryRepo categorías en memoria.
type CategoryRepo struct{ t *table[entity.Category] }

// NewCategoryRepository construye el repositorio de categorías.
func NewCategoryRepository() *CategoryRepo { return &CategoryRepo{t: newTable[entity.Category]()} }

// Create inserta la categoría; falla con ErrDuplicate si el id existe.
func (r *CategoryRepo) Create(c *entity.Category) error {
	if !r.t.insert(c.ID, *c) {
		return domain.ErrDuplicate
	}
	return nil
}

// GetByID devuelve la categoría o (nil, nil) si no existe.
func (r *CategoryRepo) GetByID(id string) (*entity.Category, error) {
	c, _ := r.t.get(id)
	return c, nil
}

// Update reemplaza la categoría; ErrNotFound si no existe.
func (r *CategoryRepo) Update(c *entity.Category) error {
	if !r.t.update(c.ID, *c) {
		return domain.ErrNotFound
	}
	return nil
}

// List devuelve las categorías en orden de creación.
func (r *CategoryRepo) List() ([]*entity.Category, error) { return r.t.list(nil), nil }

// Delete borra la categoría; borrar un id inexistente no es error.
func (r *CategoryRepo) Delete(id string) error {
	r.t.remove(id)
	return nil
}

// SubCategoryRepo subcategorías en memoria.
type SubCategoryRepo struct{ t *table[entity.SubCategory] }

// NewSubCategoryRepository construye el repositorio de subcategorías.
func NewSubCategoryRepository() *SubCategoryRepo {
	return &SubCategoryRepo{t: newTable[entity.SubCategory]()}
}

// Create inserta la subcategoría; falla con ErrDuplicate si el id existe.
func (r *SubCategoryRepo) Create(s *entity.SubCategory) error {
	if !r.t.insert(s.ID, *s) {
		return domain.ErrDuplicate
	}
	return nil
}

// GetByID devuelve la subcategoría o (nil, nil) si no existe.
func (r *SubCategoryRepo) GetByID(id string) (*entity.SubCategory, error) {
	s, _ := r.t.get(id)
	return s, nil
}

// Update reemplaza la subcategoría; ErrNotFound si no existe.
func (r *SubCategoryRepo) Update(s *entity.SubCategory) error {
	if !r.t.update(s.ID, *s) {
		return domain.ErrNotFound
	}
	return nil
}

// List devuelve las subcategorías en orden de creación.
func (r *SubCategoryRepo) List(categoryID string) ([]*entity.SubCategory, error) {
	if categoryID == "" {
		return r.t.list(nil), nil
	}
	return r.t.list(func(s *entity.SubCategory) bool { return s.CategoryID.ID == categoryID }), nil
}

// Delete borra la subcategoría; borrar un id inexistente no es error.
func (r *SubCategoryRepo) Delete(id string) error {
	r.t.remove(id)
	return nil
}

// ProductRepo productos en memoria.
type ProductRepo struct{ t *table[entity.Product] }

// NewProductRepository construye el repositorio de productos.
func NewProductRepository() *ProductRepo { return &ProductRepo{t: newTable[entity.Product]()} }

// Create inserta el producto; falla con ErrDuplicate si el id existe.
func (r *ProductRepo) Create(p *entity.Product) error {
	if !r.t.insert(p.ID, *p) {
		return domain.ErrDuplicate
	}
	return nil
}

// GetByID devuelve el producto o (nil, nil) si no existe.
func (r *ProductRepo) GetByID(id string) (*entity.Product, error) {
	p, _ := r.t.get(id)
	return p, nil
}

// Update reemplaza el producto; ErrNotFound si no existe.
func (r *ProductRepo) Update(p *entity.Product) error {
	if !r.t.update(p.ID, *p) {
		return domain.ErrNotFound
	}
	return nil
}

// List devuelve los productos en orden de creación.
func (r *ProductRepo) List(f repository.ProductFilter) ([]*entity.Product, error) {
	return r.t.list(func(p *entity.Product) bool {
		if f.CategoryID != "" && p.Category.ID != f.CategoryID {
			return false
		}
		if f.SubCategoryID != "" && p.SubCategory.ID != f.SubCategoryID {
			return false
		}
		return true
	}), nil
}

// Delete borra el producto; borrar un id inexistente no es error.
func (r *ProductRepo) Delete(id string) error {
	r.t.remove(id)
	return nil
}

// ImageRepo adjuntos en memoria.
type ImageRepo struct{ t *table[entity.Image] }

// NewImageRepository construye el repositorio de imágenes.
func NewImageRepository() *ImageRepo { return &ImageRepo{t: newTable[entity.Image]()} }

// Put guarda la imagen bajo name.
func (r *ImageRepo) Put(name string, img entity.Image) error {
	if !r.t.insert(name, img) {
		return domain.ErrDuplicate
	}
	return nil
}

// Get devuelve la imagen o (nil, nil) si no existe.
func (r *ImageRepo) Get(name string) (*entity.Image, error) {
	img, _ := r.t.get(name)
	return img, nil
}
