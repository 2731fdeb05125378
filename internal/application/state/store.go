package state

import (
	"context"
	"fmt"

	"github.com/jhoicas/catalog-admin/internal/application/ports"
	"github.com/jhoicas/catalog-admin/internal/domain"
	"github.com/jhoicas/catalog-admin/internal/domain/entity"
	"github.com/jhoicas/catalog-admin/pkg/logger"
)

// Alias de los slices concretos del catálogo.
type (
	CategorySlice    = EntitySlice[entity.Category, entity.CategoryInput]
	SubCategorySlice = EntitySlice[entity.SubCategory, entity.SubCategoryInput]
	ProductSlice     = EntitySlice[entity.Product, entity.ProductInput]
)

// Mensajes por defecto de cada colección.
var (
	CategoryMessages = Messages{
		FetchAll: "Failed to fetch categories",
		FetchOne: "Failed to fetch category",
		Create:   "Failed to create category",
		Update:   "Failed to update category",
		Delete:   "Failed to delete category",
	}
	SubCategoryMessages = Messages{
		FetchAll: "Failed to fetch subcategories",
		FetchOne: "Failed to fetch subcategory",
		Create:   "Failed to create subcategory",
		Update:   "Failed to update subcategory",
		Delete:   "Failed to delete subcategory",
	}
	ProductMessages = Messages{
		FetchAll: "Failed to fetch products",
		FetchOne: "Failed to fetch product",
		Create:   "Failed to create product",
		Update:   "Failed to update product",
		Delete:   "Failed to delete product",
	}
)

// Deps dependencias del store.
type Deps struct {
	Auth          ports.AuthGateway
	Categories    ports.EntityGateway[entity.Category, entity.CategoryInput]
	SubCategories ports.EntityGateway[entity.SubCategory, entity.SubCategoryInput]
	Products      ports.EntityGateway[entity.Product, entity.ProductInput]
	Tokens        ports.TokenStore
	Logger        *logger.Logger
}

// RootState snapshot tipado de todo el árbol.
type RootState struct {
	Auth          AuthState
	Categories    Record[entity.Category]
	SubCategories Record[entity.SubCategory]
	Products      Record[entity.Product]
}

// Store compone los cuatro slices. Se construye una vez al arrancar y se pasa por referencia
// a cada vista; no hay instancia global.
type Store struct {
	Auth          *AuthSlice
	Categories    *CategorySlice
	SubCategories *SubCategorySlice
	Products      *ProductSlice

	n    *notifier
	subs subscribers[RootState]
}

// New construye el store. ctx solo se usa para leer el token guardado.
func New(ctx context.Context, deps Deps) (*Store, error) {
	switch {
	case deps.Auth == nil:
		return nil, fmt.Errorf("store: falta gateway de auth: %w", domain.ErrInvalidInput)
	case deps.Categories == nil:
		return nil, fmt.Errorf("store: falta gateway de categorías: %w", domain.ErrInvalidInput)
	case deps.SubCategories == nil:
		return nil, fmt.Errorf("store: falta gateway de subcategorías: %w", domain.ErrInvalidInput)
	case deps.Products == nil:
		return nil, fmt.Errorf("store: falta gateway de productos: %w", domain.ErrInvalidInput)
	case deps.Tokens == nil:
		return nil, fmt.Errorf("store: falta token store: %w", domain.ErrInvalidInput)
	}
	log := logger.OrNop(deps.Logger).Named("store")
	n := &notifier{}

	s := &Store{n: n}
	s.Auth = newAuthSlice(ctx, deps.Auth, deps.Tokens, n, log)
	s.Categories = newEntitySlice("categories", deps.Categories, CategoryMessages, n, log)
	s.SubCategories = newEntitySlice("subcategories", deps.SubCategories, SubCategoryMessages, n, log)
	s.Products = newEntitySlice("products", deps.Products, ProductMessages, n, log)

	s.Auth.cell.onChange = s.changed
	s.Categories.cell.onChange = s.changed
	s.SubCategories.cell.onChange = s.changed
	s.Products.cell.onChange = s.changed
	return s, nil
}

// State devuelve el snapshot actual de todos los slices.
func (s *Store) State() RootState {
	return RootState{
		Auth:          s.Auth.Snapshot(),
		Categories:    s.Categories.Snapshot(),
		SubCategories: s.SubCategories.Snapshot(),
		Products:      s.Products.Snapshot(),
	}
}

// Subscribe registra fn para cualquier transición de cualquier slice.
// Los callbacks se ejecutan de a uno y en orden de transición.
func (s *Store) Subscribe(fn func(RootState)) func() { return s.subs.add(fn) }

func (s *Store) changed() { s.subs.publish(s.State()) }

// Select proyección tipada del estado actual.
func Select[T any](s *Store, sel func(RootState) T) T {
	return sel(s.State())
}
