package state_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/catalog-admin/internal/application/state"
	"github.com/jhoicas/catalog-admin/internal/domain/entity"
)

func sampleRoot() state.RootState {
	return state.RootState{
		Categories: state.Record[entity.Category]{Items: []entity.Category{
			{ID: "c1", Name: "Shoes"},
			{ID: "c2", Name: "Bags"},
		}},
		SubCategories: state.Record[entity.SubCategory]{Items: []entity.SubCategory{
			{ID: "s1", Name: "Sneakers", CategoryID: entity.RefTo("c1")},
			{ID: "s2", Name: "Boots", CategoryID: entity.RefTo("c1")},
			{ID: "s3", Name: "Totes", CategoryID: entity.RefTo("c2")},
		}},
	}
}

func TestCategoryName(t *testing.T) {
	root := sampleRoot()
	assert.Equal(t, "Shoes", state.CategoryName(root, entity.RefTo("c1")))
	assert.Equal(t, "Poblada", state.CategoryName(root, entity.Ref{ID: "c9", Name: "Poblada"}))
	assert.Equal(t, "N/A", state.CategoryName(root, entity.RefTo("c9")))
}

func TestSubCategoryName(t *testing.T) {
	root := sampleRoot()
	assert.Equal(t, "Totes", state.SubCategoryName(root, entity.RefTo("s3")))
	assert.Equal(t, "N/A", state.SubCategoryName(root, entity.Ref{}))
}

func TestSubCategoriesOf(t *testing.T) {
	root := sampleRoot()
	got := state.SubCategoriesOf(root, "c1")
	assert.Len(t, got, 2)
	assert.NotNil(t, state.SubCategoriesOf(root, "c9"))
	assert.Empty(t, state.SubCategoriesOf(root, "c9"))
}

func TestFilterByName(t *testing.T) {
	items := []entity.Category{
		{ID: "1", Name: "Zapatos"},
		{ID: "2", Name: "ZAPATILLAS"},
		{ID: "3", Name: "Bolsos"},
		{ID: "4", Name: "Straße"},
	}
	assert.Len(t, state.FilterByName(items, "zapat"), 2)
	assert.Len(t, state.FilterByName(items, "  "), 4)
	assert.Empty(t, state.FilterByName(items, "gorra"))
	assert.Len(t, state.FilterByName(items, "STRASSE"), 1, "plegado Unicode")
}
