package entity

import (
	"encoding/json"
	"time"
)

// SubCategory pertenece a una Category. CategoryID puede llegar poblado desde el backend.
type SubCategory struct {
	ID          string    `json:"_id"`
	Name        string    `json:"subCategoryName"`
	CategoryID  Ref       `json:"categoryId"`
	Status      string    `json:"status"`
	ImageURL    string    `json:"imageUrl,omitempty"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Key devuelve el identificador usado por la caché del store.
func (s SubCategory) Key() string { return s.ID }

// Label nombre legible (usado por filtros de búsqueda).
func (s SubCategory) Label() string { return s.Name }

// UnmarshalJSON acepta también "id" y "name" cuando faltan "_id" y "subCategoryName".
func (s *SubCategory) UnmarshalJSON(b []byte) error {
	type plain SubCategory
	var doc struct {
		plain
		aliases
	}
	if err := json.Unmarshal(b, &doc); err != nil {
		return err
	}
	*s = SubCategory(doc.plain)
	s.ID = orAlias(s.ID, doc.AltID)
	s.Name = orAlias(s.Name, doc.AltName)
	return nil
}

// SubCategoryInput campos del formulario de subcategoría.
type SubCategoryInput struct {
	Name        string
	CategoryID  string
	Status      string
	Description string
	Image       *Image
}

// Fields devuelve los campos de texto del formulario. categoryId se envía aunque esté vacío:
// el backend es quien valida la referencia.
func (in SubCategoryInput) Fields() map[string]string {
	f := map[string]string{
		"subCategoryName": in.Name,
		"categoryId":      in.CategoryID,
		"status":          in.Status,
	}
	if in.Description != "" {
		f["description"] = in.Description
	}
	return f
}

// Attachment devuelve la imagen adjunta o nil.
func (in SubCategoryInput) Attachment() *Image { return in.Image }
