package ports

import (
	"context"

	"github.com/jhoicas/catalog-admin/internal/application/dto"
	"github.com/jhoicas/catalog-admin/internal/domain/entity"
)

// TokenStore almacenamiento durable del token de sesión (un único registro clave-valor).
// Load devuelve domain.ErrNoSession si no hay token guardado.
type TokenStore interface {
	Load(ctx context.Context) (string, error)
	Save(ctx context.Context, token string) error
	Clear(ctx context.Context) error
}

// AuthGateway puerto de salida hacia los endpoints /auth del backend.
type AuthGateway interface {
	Login(ctx context.Context, in dto.LoginRequest) (*entity.Session, error)
	Register(ctx context.Context, in dto.RegisterRequest) (*entity.Session, error)
	Profile(ctx context.Context) (*entity.User, error)
}

// ListFilter filtros opcionales de listado. Cada recurso usa solo los que entiende.
type ListFilter struct {
	CategoryID    string
	SubCategoryID string
}

// FormPayload cuerpo de creación/actualización: campos de texto más un adjunto opcional.
// Siempre viaja como multipart/form-data, nunca como JSON.
type FormPayload interface {
	Fields() map[string]string
	Attachment() *entity.Image
}

// EntityGateway puerto de salida CRUD para una colección del catálogo.
type EntityGateway[E any, In FormPayload] interface {
	List(ctx context.Context, filter ListFilter) ([]E, error)
	Get(ctx context.Context, id string) (E, error)
	Create(ctx context.Context, in In) (E, error)
	Update(ctx context.Context, id string, in In) (E, error)
	Delete(ctx context.Context, id string) error
}
