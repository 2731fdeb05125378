package entity

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del catálogo. Category y SubCategory pueden llegar
// como id plano o como documento poblado.
type Product struct {
	ID          string          `json:"_id"`
	Name        string          `json:"ProductName"`
	Category    Ref             `json:"category"`
	SubCategory Ref             `json:"subCategory"`
	Status      string          `json:"status"`
	Image       string          `json:"image,omitempty"`
	Description string          `json:"description,omitempty"`
	Price       decimal.Decimal `json:"price"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

// Key devuelve el identificador usado por la caché del store.
func (p Product) Key() string { return p.ID }

// Label nombre legible (usado por filtros de búsqueda).
func (p Product) Label() string { return p.Name }

// UnmarshalJSON acepta también "id" y "name" cuando faltan "_id" y "ProductName".
func (p *Product) UnmarshalJSON(b []byte) error {
	type plain Product
	var doc struct {
		plain
		aliases
	}
	if err := json.Unmarshal(b, &doc); err != nil {
		return err
	}
	*p = Product(doc.plain)
	p.ID = orAlias(p.ID, doc.AltID)
	p.Name = orAlias(p.Name, doc.AltName)
	return nil
}

// ProductInput campos del formulario de producto.
type ProductInput struct {
	Name          string
	CategoryID    string
	SubCategoryID string
	Status        string
	Description   string
	Price         *decimal.Decimal
	Image         *Image
}

// Fields devuelve los campos de texto del formulario (category y subCategory siempre presentes).
func (in ProductInput) Fields() map[string]string {
	f := map[string]string{
		"ProductName": in.Name,
		"category":    in.CategoryID,
		"subCategory": in.SubCategoryID,
		"status":      in.Status,
	}
	if in.Description != "" {
		f["description"] = in.Description
	}
	if in.Price != nil {
		f["price"] = in.Price.String()
	}
	return f
}

// Attachment devuelve la imagen adjunta o nil.
func (in ProductInput) Attachment() *Image { return in.Image }
