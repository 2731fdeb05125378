package postgres

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/catalog-admin/internal/domain"
	"github.com/jhoicas/catalog-admin/internal/domain/entity"
	"github.com/jhoicas/catalog-admin/internal/domain/repository"
	"github.com/jhoicas/catalog-admin/pkg/config"
)

func TestHasCode(t *testing.T) {
	unique := &pgconn.PgError{Code: codeUniqueViolation}
	fk := &pgconn.PgError{Code: codeForeignKeyViolation}

	assert.True(t, isUniqueViolation(fmt.Errorf("insert: %w", unique)))
	assert.False(t, isUniqueViolation(fk))
	assert.True(t, isForeignKeyViolation(fk))
	assert.False(t, isForeignKeyViolation(assert.AnError))
}

// testPool abre la base indicada en TEST_DATABASE_URL; sin ella las pruebas de integración se omiten.
func testPool(t *testing.T) *pgxpool.Pool {
	t.Helper()
	url := os.Getenv("TEST_DATABASE_URL")
	if url == "" {
		t.Skip("TEST_DATABASE_URL no definido")
	}
	ctx := context.Background()
	pool, err := NewPool(ctx, config.DBConfig{DatabaseURL: url, MaxConns: 4})
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	require.NoError(t, Migrate(ctx, pool))
	require.NoError(t, Migrate(ctx, pool), "la migración debe ser idempotente")
	_, err = pool.Exec(ctx, `TRUNCATE products, subcategories, categories, users, images`)
	require.NoError(t, err)
	return pool
}

func TestUserRepo_Integration(t *testing.T) {
	repo := NewUserRepository(testPool(t))

	acc := &entity.Account{
		User:         entity.User{ID: uuid.NewString(), Email: "Ana@Example.com", Name: "Ana"},
		PasswordHash: "hash",
		CreatedAt:    time.Now().UTC(),
	}
	require.NoError(t, repo.Create(acc))

	dup := *acc
	dup.ID = uuid.NewString()
	dup.Email = "ana@example.com"
	assert.ErrorIs(t, repo.Create(&dup), domain.ErrEmailAlreadyExists)

	got, err := repo.FindByEmail("ANA@example.com")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, acc.ID, got.ID)

	missing, err := repo.FindByID(uuid.NewString())
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestCatalogRepos_Integration(t *testing.T) {
	pool := testPool(t)
	cats := NewCategoryRepository(pool)
	subs := NewSubCategoryRepository(pool)
	prods := NewProductRepository(pool)
	now := time.Now().UTC().Truncate(time.Microsecond)

	shoes := &entity.Category{ID: "c1", Name: "Shoes", Status: entity.StatusActive, CreatedAt: now, UpdatedAt: now}
	hats := &entity.Category{ID: "c2", Name: "Hats", Status: entity.StatusActive, CreatedAt: now.Add(time.Second), UpdatedAt: now}
	require.NoError(t, cats.Create(shoes))
	require.NoError(t, cats.Create(hats))
	assert.ErrorIs(t, cats.Create(shoes), domain.ErrDuplicate)

	list, err := cats.List()
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "c1", list[0].ID)

	shoes.Name = "Sneakers"
	require.NoError(t, cats.Update(shoes))
	got, err := cats.GetByID("c1")
	require.NoError(t, err)
	assert.Equal(t, "Sneakers", got.Name)
	assert.ErrorIs(t, cats.Update(&entity.Category{ID: "nope"}), domain.ErrNotFound)

	sub := &entity.SubCategory{ID: "s1", Name: "Running", CategoryID: entity.RefTo("c1"), Status: entity.StatusActive, CreatedAt: now, UpdatedAt: now}
	require.NoError(t, subs.Create(sub))
	orphan := &entity.SubCategory{ID: "s2", Name: "X", CategoryID: entity.RefTo("zz"), Status: entity.StatusActive, CreatedAt: now, UpdatedAt: now}
	assert.ErrorIs(t, subs.Create(orphan), domain.ErrInvalidInput)

	byCat, err := subs.List("c2")
	require.NoError(t, err)
	assert.Empty(t, byCat)
	all, err := subs.List("")
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "c1", all[0].CategoryID.ID)

	assert.ErrorIs(t, cats.Delete("c1"), domain.ErrConflict)

	p := &entity.Product{
		ID: "p1", Name: "Runner", Category: entity.RefTo("c1"), SubCategory: entity.RefTo("s1"),
		Status: entity.StatusActive, Price: decimal.RequireFromString("19.90"), CreatedAt: now, UpdatedAt: now,
	}
	require.NoError(t, prods.Create(p))

	filtered, err := prods.List(repository.ProductFilter{SubCategoryID: "s1"})
	require.NoError(t, err)
	require.Len(t, filtered, 1)
	assert.True(t, decimal.RequireFromString("19.9").Equal(filtered[0].Price))

	none, err := prods.List(repository.ProductFilter{CategoryID: "c2"})
	require.NoError(t, err)
	assert.Empty(t, none)

	require.NoError(t, prods.Delete("p1"))
	require.NoError(t, prods.Delete("p1"))
	gone, err := prods.GetByID("p1")
	require.NoError(t, err)
	assert.Nil(t, gone)

	require.NoError(t, subs.Delete("s1"))
	require.NoError(t, cats.Delete("c1"))
}

func TestImageRepo_Integration(t *testing.T) {
	repo := NewImageRepository(testPool(t))

	img := entity.Image{Filename: "a.png", ContentType: "image/png", Data: []byte{1, 2, 3}}
	require.NoError(t, repo.Put("x.png", img))
	assert.ErrorIs(t, repo.Put("x.png", img), domain.ErrDuplicate)

	got, err := repo.Get("x.png")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, img, *got)

	missing, err := repo.Get("y.png")
	require.NoError(t, err)
	assert.Nil(t, missing)
}
