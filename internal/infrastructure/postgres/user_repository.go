package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/catalog-admin/internal/domain"
	"github.com/jhoicas/catalog-admin/internal/domain/entity"
	"github.com/jhoicas/catalog-admin/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementación del puerto UserRepository sobre PostgreSQL.
type UserRepo struct {
	q Querier
}

// NewUserRepository construye el adaptador de persistencia para usuarios.
func NewUserRepository(q Querier) *UserRepo {
	return &UserRepo{q: q}
}

// Create persiste una cuenta nueva. El índice único sobre lower(email) detecta duplicados.
func (r *UserRepo) Create(acc *entity.Account) error {
	query := `
		INSERT INTO users (id, email, name, full_name, password_hash, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		acc.ID, acc.Email, acc.Name, acc.FullName, acc.PasswordHash, acc.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// FindByID obtiene una cuenta por ID.
func (r *UserRepo) FindByID(id string) (*entity.Account, error) {
	return r.findOne(context.Background(), `WHERE id = $1`, id)
}

// FindByEmail obtiene una cuenta por email sin distinguir mayúsculas.
func (r *UserRepo) FindByEmail(email string) (*entity.Account, error) {
	return r.findOne(context.Background(), `WHERE lower(email) = lower($1)`, email)
}

func (r *UserRepo) findOne(ctx context.Context, where string, arg any) (*entity.Account, error) {
	query := `SELECT id, email, name, full_name, password_hash, created_at FROM users ` + where
	var acc entity.Account
	err := r.q.QueryRow(ctx, query, arg).Scan(
		&acc.ID, &acc.Email, &acc.Name, &acc.FullName, &acc.PasswordHash, &acc.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return &acc, nil
}
