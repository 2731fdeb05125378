package dto

import "github.com/jhoicas/catalog-admin/internal/domain/entity"

// Envolturas de respuesta del backend para el catálogo.

type CategoryListResponse struct {
	Categories []entity.Category `json:"categories"`
}

type CategoryResponse struct {
	Category entity.Category `json:"category"`
}

type SubCategoryListResponse struct {
	SubCategories []entity.SubCategory `json:"subCategories"`
}

type SubCategoryResponse struct {
	SubCategory entity.SubCategory `json:"subCategory"`
}

type ProductListResponse struct {
	Products []entity.Product `json:"products"`
}

type ProductResponse struct {
	Product entity.Product `json:"product"`
}

// DeleteResponse cuerpo opcional de un DELETE exitoso.
type DeleteResponse struct {
	ID      string `json:"_id"`
	Message string `json:"message,omitempty"`
}
