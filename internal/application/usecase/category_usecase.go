package usecase

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/catalog-admin/internal/domain"
	"github.com/jhoicas/catalog-admin/internal/domain/entity"
	"github.com/jhoicas/catalog-admin/internal/domain/repository"
)

// CategoryUseCase casos de uso CRUD para categorías.
type CategoryUseCase struct {
	repo    repository.CategoryRepository
	subRepo repository.SubCategoryRepository
	images  repository.ImageRepository
}

// NewCategoryUseCase construye el caso de uso.
func NewCategoryUseCase(repo repository.CategoryRepository, subRepo repository.SubCategoryRepository, images repository.ImageRepository) *CategoryUseCase {
	return &CategoryUseCase{repo: repo, subRepo: subRepo, images: images}
}

// Create crea una categoría. El nombre es obligatorio.
func (uc *CategoryUseCase) Create(in entity.CategoryInput) (*entity.Category, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, fmt.Errorf("categoryName es requerido: %w", domain.ErrInvalidInput)
	}
	status, err := normalizeStatus(in.Status)
	if err != nil {
		return nil, fmt.Errorf("status inválido: %w", err)
	}
	imageURL, err := storeImage(uc.images, in.Image)
	if err != nil {
		return nil, fmt.Errorf("imagen inválida: %w", err)
	}
	now := time.Now().UTC()
	c := &entity.Category{
		ID:          uuid.New().String(),
		Name:        name,
		Status:      status,
		ImageURL:    imageURL,
		Description: in.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(c); err != nil {
		return nil, err
	}
	return c, nil
}

// GetByID obtiene una categoría; (nil, nil) si no existe.
func (uc *CategoryUseCase) GetByID(id string) (*entity.Category, error) {
	return uc.repo.GetByID(id)
}

// List lista todas las categorías en orden de creación.
func (uc *CategoryUseCase) List() ([]*entity.Category, error) {
	return uc.repo.List()
}

// Update reemplaza los campos del formulario. La imagen solo cambia si se adjunta otra.
func (uc *CategoryUseCase) Update(id string, in entity.CategoryInput) (*entity.Category, error) {
	c, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, nil
	}
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, fmt.Errorf("categoryName es requerido: %w", domain.ErrInvalidInput)
	}
	status, err := normalizeStatus(in.Status)
	if err != nil {
		return nil, fmt.Errorf("status inválido: %w", err)
	}
	imageURL, err := storeImage(uc.images, in.Image)
	if err != nil {
		return nil, fmt.Errorf("imagen inválida: %w", err)
	}
	c.Name = name
	c.Status = status
	c.Description = in.Description
	if imageURL != "" {
		c.ImageURL = imageURL
	}
	c.UpdatedAt = time.Now().UTC()
	if err := uc.repo.Update(c); err != nil {
		return nil, err
	}
	return c, nil
}

// Delete elimina una categoría. Es idempotente, pero falla con ErrConflict si aún tiene subcategorías.
func (uc *CategoryUseCase) Delete(id string) error {
	subs, err := uc.subRepo.List(id)
	if err != nil {
		return err
	}
	if len(subs) > 0 {
		return fmt.Errorf("la categoría tiene %d subcategorías: %w", len(subs), domain.ErrConflict)
	}
	return uc.repo.Delete(id)
}
