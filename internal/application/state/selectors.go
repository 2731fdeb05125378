package state

import (
	"strings"

	"golang.org/x/text/cases"

	"github.com/jhoicas/catalog-admin/internal/domain/entity"
)

// Selectores tipados. Los joins entre colecciones se resuelven aquí, del lado de la vista;
// los slices nunca se leen entre sí.

// SelectAuth proyecta la sesión.
func SelectAuth(r RootState) AuthState { return r.Auth }

// SelectCategories proyecta la caché de categorías.
func SelectCategories(r RootState) Record[entity.Category] { return r.Categories }

// SelectSubCategories proyecta la caché de subcategorías.
func SelectSubCategories(r RootState) Record[entity.SubCategory] { return r.SubCategories }

// SelectProducts proyecta la caché de productos.
func SelectProducts(r RootState) Record[entity.Product] { return r.Products }

// CategoryName nombre de la categoría id, o "N/A" si no está cargada.
func CategoryName(r RootState, ref entity.Ref) string {
	if c, ok := r.Categories.Find(ref.ID); ok {
		return c.Name
	}
	if ref.Name != "" {
		return ref.Name
	}
	return "N/A"
}

// SubCategoryName nombre de la subcategoría id, o "N/A".
func SubCategoryName(r RootState, ref entity.Ref) string {
	if s, ok := r.SubCategories.Find(ref.ID); ok {
		return s.Name
	}
	if ref.Name != "" {
		return ref.Name
	}
	return "N/A"
}

// SubCategoriesOf subcategorías cargadas que pertenecen a categoryID.
func SubCategoriesOf(r RootState, categoryID string) []entity.SubCategory {
	out := []entity.SubCategory{}
	for _, s := range r.SubCategories.Items {
		if s.CategoryID.ID == categoryID {
			out = append(out, s)
		}
	}
	return out
}

// Labeled entidades con nombre visible.
type Labeled interface {
	Label() string
}

// FilterByName filtra por subcadena del nombre sin distinguir mayúsculas (plegado Unicode).
// Un término vacío devuelve items tal cual.
func FilterByName[E Labeled](items []E, term string) []E {
	term = strings.TrimSpace(term)
	if term == "" {
		return items
	}
	// Un Caser no es seguro entre goroutines: se crea por llamada.
	folder := cases.Fold()
	needle := folder.String(term)
	out := make([]E, 0, len(items))
	for _, it := range items {
		if strings.Contains(folder.String(it.Label()), needle) {
			out = append(out, it)
		}
	}
	return out
}
