package auth

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/catalog-admin/internal/application/dto"
	"github.com/jhoicas/catalog-admin/internal/domain"
	"github.com/jhoicas/catalog-admin/internal/domain/entity"
	"github.com/jhoicas/catalog-admin/internal/domain/repository"
)

// MinPasswordLen longitud mínima de contraseña en el registro.
const MinPasswordLen = 8

// TokenIssuer firma el token de sesión para un id de usuario (pkg/jwt.Signer).
type TokenIssuer interface {
	Issue(subject string) (string, error)
}

// AuthUseCase casos de uso de autenticación: registro, login y perfil.
type AuthUseCase struct {
	userRepo repository.UserRepository
	tokens   TokenIssuer
	cost     int
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, tokens TokenIssuer) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, tokens: tokens, cost: bcrypt.DefaultCost}
}

// WithBcryptCost ajusta el costo de bcrypt (los tests usan bcrypt.MinCost).
func (uc *AuthUseCase) WithBcryptCost(cost int) *AuthUseCase {
	uc.cost = cost
	return uc
}

// Register crea la cuenta, hashea el password con bcrypt y deja la sesión iniciada.
// Devuelve ErrEmailAlreadyExists si el email ya existe.
func (uc *AuthUseCase) Register(in dto.RegisterRequest) (*dto.LoginResponse, error) {
	email := strings.TrimSpace(in.Email)
	if email == "" || in.Password == "" || strings.TrimSpace(in.FullName) == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.userRepo.FindByEmail(email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), uc.cost)
	if err != nil {
		return nil, err
	}
	fullName := strings.TrimSpace(in.FullName)
	acc := &entity.Account{
		User: entity.User{
			ID:       uuid.New().String(),
			Email:    email,
			Name:     fullName,
			FullName: fullName,
		},
		PasswordHash: string(hash),
		CreatedAt:    time.Now().UTC(),
	}
	if err := uc.userRepo.Create(acc); err != nil {
		return nil, err
	}
	return uc.issue(acc)
}

// Login verifica email/password, genera JWT y retorna token + usuario.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	acc, err := uc.userRepo.FindByEmail(strings.TrimSpace(in.Email))
	if err != nil {
		return nil, err
	}
	if acc == nil {
		return nil, domain.ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(acc.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	return uc.issue(acc)
}

// Profile devuelve el usuario del token.
func (uc *AuthUseCase) Profile(userID string) (*entity.User, error) {
	acc, err := uc.userRepo.FindByID(userID)
	if err != nil {
		return nil, err
	}
	if acc == nil {
		return nil, domain.ErrUserNotFound
	}
	u := acc.User
	return &u, nil
}

func (uc *AuthUseCase) issue(acc *entity.Account) (*dto.LoginResponse, error) {
	token, err := uc.tokens.Issue(acc.ID)
	if err != nil {
		return nil, fmt.Errorf("emitir token: %w", err)
	}
	return &dto.LoginResponse{Token: token, User: acc.User}, nil
}
