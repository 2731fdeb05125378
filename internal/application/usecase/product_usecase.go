package usecase

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/catalog-admin/internal/domain"
	"github.com/jhoicas/catalog-admin/internal/domain/entity"
	"github.com/jhoicas/catalog-admin/internal/domain/repository"
)

// ProductUseCase casos de uso CRUD para productos. Category y SubCategory son obligatorias
// y la subcategoría debe pertenecer a la categoría.
type ProductUseCase struct {
	repo    repository.ProductRepository
	catRepo repository.CategoryRepository
	subRepo repository.SubCategoryRepository
	images  repository.ImageRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository, catRepo repository.CategoryRepository, subRepo repository.SubCategoryRepository, images repository.ImageRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo, catRepo: catRepo, subRepo: subRepo, images: images}
}

// Create crea un producto. Price inicia en 0 si no viene.
func (uc *ProductUseCase) Create(in entity.ProductInput) (*entity.Product, error) {
	name, status, err := uc.validate(in)
	if err != nil {
		return nil, err
	}
	imageURL, err := storeImage(uc.images, in.Image)
	if err != nil {
		return nil, fmt.Errorf("imagen inválida: %w", err)
	}
	price := decimal.Zero
	if in.Price != nil {
		price = *in.Price
	}
	now := time.Now().UTC()
	p := &entity.Product{
		ID:          uuid.New().String(),
		Name:        name,
		Category:    entity.RefTo(in.CategoryID),
		SubCategory: entity.RefTo(in.SubCategoryID),
		Status:      status,
		Image:       imageURL,
		Description: in.Description,
		Price:       price,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(p); err != nil {
		return nil, err
	}
	return uc.populate(p), nil
}

// GetByID obtiene un producto con referencias pobladas; (nil, nil) si no existe.
func (uc *ProductUseCase) GetByID(id string) (*entity.Product, error) {
	p, err := uc.repo.GetByID(id)
	if err != nil || p == nil {
		return nil, err
	}
	return uc.populate(p), nil
}

// List lista productos con filtros opcionales.
func (uc *ProductUseCase) List(f repository.ProductFilter) ([]*entity.Product, error) {
	list, err := uc.repo.List(f)
	if err != nil {
		return nil, err
	}
	for i := range list {
		list[i] = uc.populate(list[i])
	}
	return list, nil
}

// Update reemplaza los campos del formulario; (nil, nil) si no existe.
func (uc *ProductUseCase) Update(id string, in entity.ProductInput) (*entity.Product, error) {
	p, err := uc.repo.GetByID(id)
	if err != nil || p == nil {
		return nil, err
	}
	name, status, err := uc.validate(in)
	if err != nil {
		return nil, err
	}
	imageURL, err := storeImage(uc.images, in.Image)
	if err != nil {
		return nil, fmt.Errorf("imagen inválida: %w", err)
	}
	p.Name = name
	p.Status = status
	p.Category = entity.RefTo(in.CategoryID)
	p.SubCategory = entity.RefTo(in.SubCategoryID)
	p.Description = in.Description
	if in.Price != nil {
		p.Price = *in.Price
	}
	if imageURL != "" {
		p.Image = imageURL
	}
	p.UpdatedAt = time.Now().UTC()
	if err := uc.repo.Update(p); err != nil {
		return nil, err
	}
	return uc.populate(p), nil
}

// Delete elimina un producto (idempotente).
func (uc *ProductUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

func (uc *ProductUseCase) validate(in entity.ProductInput) (string, string, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return "", "", fmt.Errorf("ProductName es requerido: %w", domain.ErrInvalidInput)
	}
	status, err := normalizeStatus(in.Status)
	if err != nil {
		return "", "", fmt.Errorf("status inválido: %w", err)
	}
	if in.CategoryID == "" || in.SubCategoryID == "" {
		return "", "", fmt.Errorf("category y subCategory son requeridos: %w", domain.ErrInvalidInput)
	}
	if in.Price != nil && in.Price.IsNegative() {
		return "", "", fmt.Errorf("price no puede ser negativo: %w", domain.ErrInvalidInput)
	}
	cat, err := uc.catRepo.GetByID(in.CategoryID)
	if err != nil {
		return "", "", err
	}
	if cat == nil {
		return "", "", fmt.Errorf("la categoría %s no existe: %w", in.CategoryID, domain.ErrInvalidInput)
	}
	sub, err := uc.subRepo.GetByID(in.SubCategoryID)
	if err != nil {
		return "", "", err
	}
	if sub == nil {
		return "", "", fmt.Errorf("la subcategoría %s no existe: %w", in.SubCategoryID, domain.ErrInvalidInput)
	}
	if sub.CategoryID.ID != cat.ID {
		return "", "", fmt.Errorf("la subcategoría no pertenece a la categoría: %w", domain.ErrInvalidInput)
	}
	return name, status, nil
}

func (uc *ProductUseCase) populate(p *entity.Product) *entity.Product {
	out := *p
	if cat, _ := uc.catRepo.GetByID(p.Category.ID); cat != nil {
		out.Category.Name = cat.Name
	}
	if sub, _ := uc.subRepo.GetByID(p.SubCategory.ID); sub != nil {
		out.SubCategory.Name = sub.Name
	}
	return &out
}
