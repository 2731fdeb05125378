package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/jhoicas/catalog-admin/internal/application/ports"
	"github.com/jhoicas/catalog-admin/internal/domain/entity"
)

// Verificar en tiempo de compilación que los recursos implementan EntityGateway.
var (
	_ ports.EntityGateway[entity.Category, entity.CategoryInput]       = (*Resource[entity.Category, entity.CategoryInput])(nil)
	_ ports.EntityGateway[entity.SubCategory, entity.SubCategoryInput] = (*Resource[entity.SubCategory, entity.SubCategoryInput])(nil)
	_ ports.EntityGateway[entity.Product, entity.ProductInput]         = (*Resource[entity.Product, entity.ProductInput])(nil)
)

// Resource endpoints REST de una colección: GET/POST path, GET/PUT/DELETE path/:id.
// Las respuestas vienen envueltas ({"categories":[...]}, {"category":{...}}).
type Resource[E any, In ports.FormPayload] struct {
	c       *Client
	path    string
	listKey string
	itemKey string
	query   func(ports.ListFilter) url.Values
}

// Categories recurso /categories.
func (c *Client) Categories() *Resource[entity.Category, entity.CategoryInput] {
	return &Resource[entity.Category, entity.CategoryInput]{
		c: c, path: "/categories", listKey: "categories", itemKey: "category",
	}
}

// SubCategories recurso /subcategories; filtra por ?categoryId=.
func (c *Client) SubCategories() *Resource[entity.SubCategory, entity.SubCategoryInput] {
	return &Resource[entity.SubCategory, entity.SubCategoryInput]{
		c: c, path: "/subcategories", listKey: "subCategories", itemKey: "subCategory",
		query: func(f ports.ListFilter) url.Values {
			q := url.Values{}
			if f.CategoryID != "" {
				q.Set("categoryId", f.CategoryID)
			}
			return q
		},
	}
}

// Products recurso /products; filtra por ?category= y ?subCategory=.
func (c *Client) Products() *Resource[entity.Product, entity.ProductInput] {
	return &Resource[entity.Product, entity.ProductInput]{
		c: c, path: "/products", listKey: "products", itemKey: "product",
		query: func(f ports.ListFilter) url.Values {
			q := url.Values{}
			if f.CategoryID != "" {
				q.Set("category", f.CategoryID)
			}
			if f.SubCategoryID != "" {
				q.Set("subCategory", f.SubCategoryID)
			}
			return q
		},
	}
}

// Path ruta del recurso relativa a la URL base.
func (r *Resource[E, In]) Path() string { return r.path }

// List devuelve la colección completa. Acepta la lista envuelta o un arreglo plano;
// sin la clave esperada devuelve una lista vacía (nunca nil).
func (r *Resource[E, In]) List(ctx context.Context, filter ports.ListFilter) ([]E, error) {
	var q url.Values
	if r.query != nil {
		q = r.query(filter)
	}
	var raw json.RawMessage
	if err := r.c.getJSON(ctx, r.path, q, &raw); err != nil {
		return nil, err
	}
	return r.decodeList(raw)
}

// Get devuelve un ítem por id.
func (r *Resource[E, In]) Get(ctx context.Context, id string) (E, error) {
	var raw json.RawMessage
	if err := r.c.getJSON(ctx, r.itemPath(id), nil, &raw); err != nil {
		var zero E
		return zero, err
	}
	return r.decodeItem(raw)
}

// Create envía el formulario como multipart y devuelve el ítem creado.
func (r *Resource[E, In]) Create(ctx context.Context, in In) (E, error) {
	var raw json.RawMessage
	if err := r.c.sendForm(ctx, http.MethodPost, r.path, in, &raw); err != nil {
		var zero E
		return zero, err
	}
	return r.decodeItem(raw)
}

// Update envía el formulario como multipart y devuelve el ítem actualizado.
func (r *Resource[E, In]) Update(ctx context.Context, id string, in In) (E, error) {
	var raw json.RawMessage
	if err := r.c.sendForm(ctx, http.MethodPut, r.itemPath(id), in, &raw); err != nil {
		var zero E
		return zero, err
	}
	return r.decodeItem(raw)
}

// Delete borra por id. Cualquier 2xx es éxito; el cuerpo se ignora.
func (r *Resource[E, In]) Delete(ctx context.Context, id string) error {
	return r.c.do(ctx, http.MethodDelete, r.itemPath(id), nil, nil, "", nil)
}

func (r *Resource[E, In]) itemPath(id string) string {
	return r.path + "/" + url.PathEscape(id)
}

func (r *Resource[E, In]) decodeList(raw json.RawMessage) ([]E, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return []E{}, nil
	}
	if trimmed[0] == '[' {
		return r.unmarshalItems(trimmed)
	}
	var env map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &env); err != nil {
		return nil, fmt.Errorf("%w: GET %s: %v", ErrUnexpectedResponse, r.path, err)
	}
	inner, ok := env[r.listKey]
	if !ok {
		return []E{}, nil
	}
	return r.unmarshalItems(inner)
}

func (r *Resource[E, In]) unmarshalItems(raw []byte) ([]E, error) {
	var items []E
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("%w: lista %s: %v", ErrUnexpectedResponse, r.listKey, err)
	}
	if items == nil {
		items = []E{}
	}
	return items, nil
}

func (r *Resource[E, In]) decodeItem(raw json.RawMessage) (E, error) {
	var zero E
	var env map[string]json.RawMessage
	if err := json.Unmarshal(raw, &env); err != nil {
		return zero, fmt.Errorf("%w: %s: %v", ErrUnexpectedResponse, r.path, err)
	}
	inner, ok := env[r.itemKey]
	if !ok || bytes.Equal(bytes.TrimSpace(inner), []byte("null")) {
		return zero, fmt.Errorf("%w: %s sin campo %q", ErrUnexpectedResponse, r.path, r.itemKey)
	}
	var it E
	if err := json.Unmarshal(inner, &it); err != nil {
		return zero, fmt.Errorf("%w: %s: %v", ErrUnexpectedResponse, r.itemKey, err)
	}
	return it, nil
}
