package http

import (
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/catalog-admin/internal/application/dto"
	"github.com/jhoicas/catalog-admin/internal/application/usecase"
	"github.com/jhoicas/catalog-admin/internal/domain"
	"github.com/jhoicas/catalog-admin/internal/domain/entity"
	"github.com/jhoicas/catalog-admin/internal/domain/repository"
)

// ProductHandler maneja las peticiones HTTP para Product (protegido).
type ProductHandler struct {
	uc *usecase.ProductUseCase
}

// NewProductHandler construye el handler.
func NewProductHandler(uc *usecase.ProductUseCase) *ProductHandler {
	return &ProductHandler{uc: uc}
}

func productInput(c *fiber.Ctx) (entity.ProductInput, error) {
	in := entity.ProductInput{
		Name:          c.FormValue("ProductName"),
		CategoryID:    c.FormValue("category"),
		SubCategoryID: c.FormValue("subCategory"),
		Status:        c.FormValue("status"),
		Description:   c.FormValue("description"),
	}
	if raw := strings.TrimSpace(c.FormValue("price")); raw != "" {
		price, err := decimal.NewFromString(raw)
		if err != nil {
			return in, fmt.Errorf("price inválido: %w", domain.ErrInvalidInput)
		}
		in.Price = &price
	}
	img, err := formImage(c)
	if err != nil {
		return in, err
	}
	in.Image = img
	return in, nil
}

// Create godoc
// @Summary      Crear producto
// @Tags         products
// @Security     Bearer
// @Accept       mpfd
// @Produce      json
// @Param        ProductName  formData  string  true   "Nombre"
// @Param        category     formData  string  true   "ID de la categoría"
// @Param        subCategory  formData  string  true   "ID de la subcategoría"
// @Param        price        formData  string  false  "Precio"
// @Param        image        formData  file    false  "Imagen"
// @Success      201   {object}  dto.ProductResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/products [post]
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	in, err := productInput(c)
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.ProductResponse{Product: *out})
}

// GetByID godoc
// @Summary      Obtener producto por ID
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del producto"
// @Success      200  {object}  dto.ProductResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id} [get]
func (h *ProductHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return notFound(c, "producto")
	}
	return c.JSON(dto.ProductResponse{Product: *out})
}

// List godoc
// @Summary      Listar productos
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        category     query  string  false  "Filtrar por categoría"
// @Param        subCategory  query  string  false  "Filtrar por subcategoría"
// @Success      200     {object}  dto.ProductListResponse
// @Router       /api/products [get]
func (h *ProductHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.List(repository.ProductFilter{
		CategoryID:    c.Query("category"),
		SubCategoryID: c.Query("subCategory"),
	})
	if err != nil {
		return respondError(c, err)
	}
	out := dto.ProductListResponse{Products: make([]entity.Product, 0, len(list))}
	for _, it := range list {
		out.Products = append(out.Products, *it)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar producto
// @Tags         products
// @Security     Bearer
// @Accept       mpfd
// @Produce      json
// @Param        id    path  string  true  "ID del producto"
// @Success      200   {object}  dto.ProductResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/products/{id} [put]
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	in, err := productInput(c)
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return notFound(c, "producto")
	}
	return c.JSON(dto.ProductResponse{Product: *out})
}

// Delete godoc
// @Summary      Eliminar producto
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del producto"
// @Success      200  {object}  dto.DeleteResponse
// @Router       /api/products/{id} [delete]
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := h.uc.Delete(id); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.DeleteResponse{ID: id, Message: "producto eliminado"})
}
