package repository

import "github.com/jhoicas/catalog-admin/internal/domain/entity"

// UserRepository define el puerto de persistencia para cuentas de usuario (DIP).
// Las búsquedas devuelven (nil, nil) si no hay coincidencia.
type UserRepository interface {
	Create(acc *entity.Account) error
	FindByID(id string) (*entity.Account, error)
	FindByEmail(email string) (*entity.Account, error)
}
