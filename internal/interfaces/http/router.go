package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/catalog-admin/internal/application/auth"
	"github.com/jhoicas/catalog-admin/internal/application/usecase"
	"github.com/jhoicas/catalog-admin/internal/domain/repository"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC        *auth.AuthUseCase
	CategoryUC    *usecase.CategoryUseCase
	SubCategoryUC *usecase.SubCategoryUseCase
	ProductUC     *usecase.ProductUseCase
	Images        repository.ImageRepository
	Tokens        TokenVerifier
}

// Router registra las rutas de la API bajo /api y los adjuntos bajo /uploads.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get(usecase.UploadsPrefix+":name", NewUploadHandler(deps.Images).Get)

	api := app.Group("/api")

	// Auth (público salvo el perfil)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Get("/profile", AuthMiddleware(deps.Tokens), authHandler.Profile)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.Tokens))

	categories := protected.Group("/categories")
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categories.Get("/", categoryHandler.List)
	categories.Post("/", categoryHandler.Create)
	categories.Get("/:id", categoryHandler.GetByID)
	categories.Put("/:id", categoryHandler.Update)
	categories.Delete("/:id", categoryHandler.Delete)

	subcategories := protected.Group("/subcategories")
	subCategoryHandler := NewSubCategoryHandler(deps.SubCategoryUC)
	subcategories.Get("/", subCategoryHandler.List)
	subcategories.Post("/", subCategoryHandler.Create)
	subcategories.Get("/:id", subCategoryHandler.GetByID)
	subcategories.Put("/:id", subCategoryHandler.Update)
	subcategories.Delete("/:id", subCategoryHandler.Delete)

	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Get("/", productHandler.List)
	products.Post("/", productHandler.Create)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)
}
