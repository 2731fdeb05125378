package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// ErrInvalidToken token mal formado, con firma incorrecta, de otro emisor o expirado.
var ErrInvalidToken = errors.New("jwt: token inválido")

// Signer emite y verifica tokens HS256 cuyo subject es el id del usuario.
// El perfil se resuelve siempre desde el repositorio; el token no lleva más datos.
type Signer struct {
	key    []byte
	issuer string
	ttl    time.Duration
	now    func() time.Time
}

// NewSigner valida la configuración. ttl debe ser positivo.
func NewSigner(secret, issuer string, ttl time.Duration) (*Signer, error) {
	if secret == "" {
		return nil, fmt.Errorf("jwt: secret vacío")
	}
	if ttl <= 0 {
		return nil, fmt.Errorf("jwt: duración %s no válida", ttl)
	}
	return &Signer{key: []byte(secret), issuer: issuer, ttl: ttl, now: time.Now}, nil
}

// Issue firma un token para subject con un jti aleatorio.
func (s *Signer) Issue(subject string) (string, error) {
	if subject == "" {
		return "", fmt.Errorf("jwt: subject vacío")
	}
	now := s.now()
	claims := jwt.RegisteredClaims{
		ID:        uuid.NewString(),
		Issuer:    s.issuer,
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.key)
}

// Verify devuelve el subject de un token vigente emitido por este Signer.
func (s *Signer) Verify(token string) (string, error) {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	}
	if s.issuer != "" {
		opts = append(opts, jwt.WithIssuer(s.issuer))
	}
	var claims jwt.RegisteredClaims
	if _, err := jwt.ParseWithClaims(token, &claims, func(*jwt.Token) (any, error) { return s.key, nil }, opts...); err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if claims.Subject == "" {
		return "", fmt.Errorf("%w: sin subject", ErrInvalidToken)
	}
	return claims.Subject, nil
}
