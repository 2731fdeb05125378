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

// SubCategoryUseCase casos de uso CRUD para subcategorías. La referencia a la categoría
// se valida aquí, no en el cliente.
type SubCategoryUseCase struct {
	repo    repository.SubCategoryRepository
	catRepo repository.CategoryRepository
	images  repository.ImageRepository
}

// NewSubCategoryUseCase construye el caso de uso.
func NewSubCategoryUseCase(repo repository.SubCategoryRepository, catRepo repository.CategoryRepository, images repository.ImageRepository) *SubCategoryUseCase {
	return &SubCategoryUseCase{repo: repo, catRepo: catRepo, images: images}
}

// Create crea una subcategoría bajo una categoría existente.
func (uc *SubCategoryUseCase) Create(in entity.SubCategoryInput) (*entity.SubCategory, error) {
	name, status, cat, err := uc.validate(in)
	if err != nil {
		return nil, err
	}
	imageURL, err := storeImage(uc.images, in.Image)
	if err != nil {
		return nil, fmt.Errorf("imagen inválida: %w", err)
	}
	now := time.Now().UTC()
	s := &entity.SubCategory{
		ID:          uuid.New().String(),
		Name:        name,
		CategoryID:  entity.RefTo(cat.ID),
		Status:      status,
		ImageURL:    imageURL,
		Description: in.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(s); err != nil {
		return nil, err
	}
	return uc.populate(s), nil
}

// GetByID obtiene una subcategoría con su categoría poblada; (nil, nil) si no existe.
func (uc *SubCategoryUseCase) GetByID(id string) (*entity.SubCategory, error) {
	s, err := uc.repo.GetByID(id)
	if err != nil || s == nil {
		return nil, err
	}
	return uc.populate(s), nil
}

// List lista subcategorías, opcionalmente de una sola categoría.
func (uc *SubCategoryUseCase) List(categoryID string) ([]*entity.SubCategory, error) {
	list, err := uc.repo.List(categoryID)
	if err != nil {
		return nil, err
	}
	for i := range list {
		list[i] = uc.populate(list[i])
	}
	return list, nil
}

// Update reemplaza los campos del formulario; (nil, nil) si no existe.
func (uc *SubCategoryUseCase) Update(id string, in entity.SubCategoryInput) (*entity.SubCategory, error) {
	s, err := uc.repo.GetByID(id)
	if err != nil || s == nil {
		return nil, err
	}
	name, status, cat, err := uc.validate(in)
	if err != nil {
		return nil, err
	}
	imageURL, err := storeImage(uc.images, in.Image)
	if err != nil {
		return nil, fmt.Errorf("imagen inválida: %w", err)
	}
	s.Name = name
	s.Status = status
	s.CategoryID = entity.RefTo(cat.ID)
	s.Description = in.Description
	if imageURL != "" {
		s.ImageURL = imageURL
	}
	s.UpdatedAt = time.Now().UTC()
	if err := uc.repo.Update(s); err != nil {
		return nil, err
	}
	return uc.populate(s), nil
}

// Delete elimina una subcategoría (idempotente).
func (uc *SubCategoryUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

func (uc *SubCategoryUseCase) validate(in entity.SubCategoryInput) (string, string, *entity.Category, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return "", "", nil, fmt.Errorf("subCategoryName es requerido: %w", domain.ErrInvalidInput)
	}
	status, err := normalizeStatus(in.Status)
	if err != nil {
		return "", "", nil, fmt.Errorf("status inválido: %w", err)
	}
	if in.CategoryID == "" {
		return "", "", nil, fmt.Errorf("categoryId es requerido: %w", domain.ErrInvalidInput)
	}
	cat, err := uc.catRepo.GetByID(in.CategoryID)
	if err != nil {
		return "", "", nil, err
	}
	if cat == nil {
		return "", "", nil, fmt.Errorf("la categoría %s no existe: %w", in.CategoryID, domain.ErrInvalidInput)
	}
	return name, status, cat, nil
}

func (uc *SubCategoryUseCase) populate(s *entity.SubCategory) *entity.SubCategory {
	out := *s
	if cat, _ := uc.catRepo.GetByID(s.CategoryID.ID); cat != nil {
		out.CategoryID.Name = cat.Name
	}
	return &out
}
