package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/jhoicas/catalog-admin/internal/application/dto"
	"github.com/jhoicas/catalog-admin/internal/application/ports"
	"github.com/jhoicas/catalog-admin/internal/domain/entity"
)

var _ ports.AuthGateway = (*AuthAPI)(nil)

// AuthAPI endpoints /auth. Login y registro viajan como JSON.
type AuthAPI struct {
	c *Client
}

// Login POST /auth/login.
func (a *AuthAPI) Login(ctx context.Context, in dto.LoginRequest) (*entity.Session, error) {
	var out dto.LoginResponse
	if err := a.c.sendJSON(ctx, http.MethodPost, "/auth/login", in, &out); err != nil {
		return nil, err
	}
	return toSession(out)
}

// Register POST /auth/register.
func (a *AuthAPI) Register(ctx context.Context, in dto.RegisterRequest) (*entity.Session, error) {
	var out dto.LoginResponse
	if err := a.c.sendJSON(ctx, http.MethodPost, "/auth/register", in, &out); err != nil {
		return nil, err
	}
	return toSession(out)
}

// Profile GET /auth/profile (requiere token).
func (a *AuthAPI) Profile(ctx context.Context) (*entity.User, error) {
	var out dto.ProfileResponse
	if err := a.c.getJSON(ctx, "/auth/profile", nil, &out); err != nil {
		return nil, err
	}
	if out.User.ID == "" && out.User.Email == "" {
		return nil, fmt.Errorf("%w: /auth/profile sin user", ErrUnexpectedResponse)
	}
	u := out.User
	return &u, nil
}

func toSession(out dto.LoginResponse) (*entity.Session, error) {
	if out.Token == "" {
		return nil, fmt.Errorf("%w: respuesta sin token", ErrUnexpectedResponse)
	}
	u := out.User
	return &entity.Session{Token: out.Token, User: &u}, nil
}
