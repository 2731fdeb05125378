package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/catalog-admin/internal/application/dto"
	"github.com/jhoicas/catalog-admin/internal/application/usecase"
	"github.com/jhoicas/catalog-admin/internal/domain/entity"
)

// SubCategoryHandler maneja las peticiones HTTP para SubCategory (protegido).
type SubCategoryHandler struct {
	uc *usecase.SubCategoryUseCase
}

// NewSubCategoryHandler construye el handler.
func NewSubCategoryHandler(uc *usecase.SubCategoryUseCase) *SubCategoryHandler {
	return &SubCategoryHandler{uc: uc}
}

func subCategoryInput(c *fiber.Ctx) (entity.SubCategoryInput, error) {
	img, err := formImage(c)
	if err != nil {
		return entity.SubCategoryInput{}, err
	}
	return entity.SubCategoryInput{
		Name:        c.FormValue("subCategoryName"),
		CategoryID:  c.FormValue("categoryId"),
		Status:      c.FormValue("status"),
		Description: c.FormValue("description"),
		Image:       img,
	}, nil
}

// Create godoc
// @Summary      Crear subcategoría
// @Tags         subcategories
// @Security     Bearer
// @Accept       mpfd
// @Produce      json
// @Param        subCategoryName  formData  string  true   "Nombre"
// @Param        categoryId       formData  string  true   "Categoría padre"
// @Param        image            formData  file    false  "Imagen"
// @Success      201   {object}  dto.SubCategoryResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/subcategories [post]
func (h *SubCategoryHandler) Create(c *fiber.Ctx) error {
	in, err := subCategoryInput(c)
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.SubCategoryResponse{SubCategory: *out})
}

// List godoc
// @Summary      Listar subcategorías
// @Tags         subcategories
// @Security     Bearer
// @Produce      json
// @Param        categoryId  query  string  false  "Filtrar por categoría"
// @Success      200  {object}  dto.SubCategoryListResponse
// @Router       /api/subcategories [get]
func (h *SubCategoryHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.List(c.Query("categoryId"))
	if err != nil {
		return respondError(c, err)
	}
	out := dto.SubCategoryListResponse{SubCategories: make([]entity.SubCategory, 0, len(list))}
	for _, it := range list {
		out.SubCategories = append(out.SubCategories, *it)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener subcategoría por ID
// @Tags         subcategories
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la subcategoría"
// @Success      200  {object}  dto.SubCategoryResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/subcategories/{id} [get]
func (h *SubCategoryHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return notFound(c, "subcategoría")
	}
	return c.JSON(dto.SubCategoryResponse{SubCategory: *out})
}

// Update godoc
// @Summary      Actualizar subcategoría
// @Tags         subcategories
// @Security     Bearer
// @Accept       mpfd
// @Produce      json
// @Param        id    path  string  true  "ID de la subcategoría"
// @Success      200   {object}  dto.SubCategoryResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/subcategories/{id} [put]
func (h *SubCategoryHandler) Update(c *fiber.Ctx) error {
	in, err := subCategoryInput(c)
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return notFound(c, "subcategoría")
	}
	return c.JSON(dto.SubCategoryResponse{SubCategory: *out})
}

// Delete godoc
// @Summary      Eliminar subcategoría
// @Tags         subcategories
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la subcategoría"
// @Success      200  {object}  dto.DeleteResponse
// @Router       /api/subcategories/{id} [delete]
func (h *SubCategoryHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := h.uc.Delete(id); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.DeleteResponse{ID: id, Message: "subcategoría eliminada"})
}
