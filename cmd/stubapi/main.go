package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"

	"github.com/jhoicas/catalog-admin/internal/application/auth"
	"github.com/jhoicas/catalog-admin/internal/application/usecase"
	"github.com/jhoicas/catalog-admin/internal/domain/repository"
	"github.com/jhoicas/catalog-admin/internal/infrastructure/memory"
	"github.com/jhoicas/catalog-admin/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/catalog-admin/internal/interfaces/http"
	"github.com/jhoicas/catalog-admin/pkg/config"
	"github.com/jhoicas/catalog-admin/pkg/jwt"
	"github.com/jhoicas/catalog-admin/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando backend de desarrollo")

	if cfg.JWT.Secret == "" {
		log.Fatal().Msg("JWT_SECRET es requerido")
	}

	repos, closeRepos, err := openRepositories(context.Background(), cfg)
	if err != nil {
		log.Fatal().Err(err).Str("storage", cfg.Storage.Driver).Msg("no se pudo abrir el almacenamiento")
	}
	defer closeRepos()
	log.Info().Str("storage", cfg.Storage.Driver).Msg("almacenamiento listo")

	signer, err := jwt.NewSigner(cfg.JWT.Secret, cfg.JWT.Issuer, time.Duration(cfg.JWT.Expiration)*time.Minute)
	if err != nil {
		log.Fatal().Err(err).Msg("configuración JWT inválida")
	}
	authUC := auth.NewAuthUseCase(repos.users, signer)

	app := httpRouter.NewApp(httpRouter.AppConfig{Name: cfg.App.Name, Log: log}, httpRouter.RouterDeps{
		AuthUC:        authUC,
		CategoryUC:    usecase.NewCategoryUseCase(repos.categories, repos.subCategories, repos.images),
		SubCategoryUC: usecase.NewSubCategoryUseCase(repos.subCategories, repos.categories, repos.images),
		ProductUC:     usecase.NewProductUseCase(repos.products, repos.categories, repos.subCategories, repos.images),
		Images:        repos.images,
		Tokens:        signer,
	})

	// Swagger UI en local: http://localhost:<port>/docs
	if _, err := os.Stat(cfg.Swagger.File); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: cfg.Swagger.File,
			Path:     "docs",
			Title:    "Catalog Admin API",
		}))
	} else {
		log.Warn().Str("file", cfg.Swagger.File).Msg("swagger deshabilitado: archivo no encontrado")
	}

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}

type repositories struct {
	users         repository.UserRepository
	categories    repository.CategoryRepository
	subCategories repository.SubCategoryRepository
	products      repository.ProductRepository
	images        repository.ImageRepository
}

// openRepositories construye los repositorios según STUB_STORAGE. Con postgres crea el esquema si falta.
func openRepositories(ctx context.Context, cfg *config.Config) (repositories, func(), error) {
	if cfg.Storage.Driver != config.StoragePostgres {
		return repositories{
			users:         memory.NewUserRepository(),
			categories:    memory.NewCategoryRepository(),
			subCategories: memory.NewSubCategoryRepository(),
			products:      memory.NewProductRepository(),
			images:        memory.NewImageRepository(),
		}, func() {}, nil
	}

	ctx, cancel := context.WithTimeout(ctx, 15*time.Second)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		return repositories{}, nil, err
	}
	if err := postgres.Migrate(ctx, pool); err != nil {
		pool.Close()
		return repositories{}, nil, err
	}
	return repositories{
		users:         postgres.NewUserRepository(pool),
		categories:    postgres.NewCategoryRepository(pool),
		subCategories: postgres.NewSubCategoryRepository(pool),
		products:      postgres.NewProductRepository(pool),
		images:        postgres.NewImageRepository(pool),
	}, pool.Close, nil
}
