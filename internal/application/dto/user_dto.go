package dto

import "github.com/jhoicas/catalog-admin/internal/domain/entity"

// LoginRequest entrada para login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterRequest entrada para registro.
type RegisterRequest struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse salida de login y registro.
type LoginResponse struct {
	Token string      `json:"token"`
	User  entity.User `json:"user"`
}

// ProfileResponse salida de GET /auth/profile.
type ProfileResponse struct {
	User entity.User `json:"user"`
}
