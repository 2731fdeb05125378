package entity

import (
	"encoding/json"
	"time"
)

// Category representa una categoría del catálogo.
type Category struct {
	ID          string    `json:"_id"`
	Name        string    `json:"categoryName"`
	Status      string    `json:"status"`
	ImageURL    string    `json:"imageUrl,omitempty"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Key devuelve el identificador usado por la caché del store.
func (c Category) Key() string { return c.ID }

// Label nombre legible (usado por filtros de búsqueda).
func (c Category) Label() string { return c.Name }

// UnmarshalJSON acepta también "id" y "name" cuando faltan "_id" y "categoryName".
func (c *Category) UnmarshalJSON(b []byte) error {
	type plain Category
	var doc struct {
		plain
		aliases
	}
	if err := json.Unmarshal(b, &doc); err != nil {
		return err
	}
	*c = Category(doc.plain)
	c.ID = orAlias(c.ID, doc.AltID)
	c.Name = orAlias(c.Name, doc.AltName)
	return nil
}

// CategoryInput campos del formulario de categoría (se envía como multipart).
type CategoryInput struct {
	Name        string
	Status      string
	Description string
	Image       *Image
}

// Fields devuelve los campos de texto del formulario con sus nombres de wire.
func (in CategoryInput) Fields() map[string]string {
	f := map[string]string{
		"categoryName": in.Name,
		"status":       in.Status,
	}
	if in.Description != "" {
		f["description"] = in.Description
	}
	return f
}

// Attachment devuelve la imagen adjunta o nil.
func (in CategoryInput) Attachment() *Image { return in.Image }
