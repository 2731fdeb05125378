package http_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apphttp "github.com/jhoicas/catalog-admin/internal/interfaces/http"
	pkgjwt "github.com/jhoicas/catalog-admin/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testUserID    = "00000000-0000-0000-0000-000000000001"
	testEmail     = "admin@example.com"
	testIssuer    = "catalog-admin-test"
)

var testSigner = mustSigner(testJWTSecret, testIssuer)

func mustSigner(secret, issuer string) *pkgjwt.Signer {
	s, err := pkgjwt.NewSigner(secret, issuer, time.Hour)
	if err != nil {
		panic(err)
	}
	return s
}

// buildMiddlewareApp construye una app mínima con AuthMiddleware y un handler
// que devuelve los locals.
func buildMiddlewareApp() *fiber.App {
	app := fiber.New()
	app.Get("/me", apphttp.AuthMiddleware(testSigner), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"user_id": apphttp.GetUserID(c)})
	})
	return app
}

func bearer(t *testing.T, s *pkgjwt.Signer) string {
	t.Helper()
	tok, err := s.Issue(testUserID)
	require.NoError(t, err, "debe generarse un token JWT válido")
	return "Bearer " + tok
}

// expiredBearer firma a mano un token vencido con el mismo secret y emisor.
func expiredBearer(t *testing.T) string {
	t.Helper()
	past := time.Now().Add(-time.Hour)
	tok, err := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, jwtlib.RegisteredClaims{
		Issuer:    testIssuer,
		Subject:   testUserID,
		IssuedAt:  jwtlib.NewNumericDate(past.Add(-time.Minute)),
		ExpiresAt: jwtlib.NewNumericDate(past),
	}).SignedString([]byte(testJWTSecret))
	require.NoError(t, err)
	return "Bearer " + tok
}

func doGet(t *testing.T, app *fiber.App, authHeader string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests AuthMiddleware
// ──────────────────────────────────────────────────────────────────────────────

func TestAuthMiddleware_ExtractaClaims(t *testing.T) {
	resp := doGet(t, buildMiddlewareApp(), bearer(t, testSigner))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, testUserID, body["user_id"])
}

func TestAuthMiddleware_SinAuthHeader_Retorna401(t *testing.T) {
	resp := doGet(t, buildMiddlewareApp(), "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "MISSING_TOKEN")
}

func TestAuthMiddleware_FormatoIncorrecto_Retorna401(t *testing.T) {
	resp := doGet(t, buildMiddlewareApp(), "Token abc")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "INVALID_TOKEN")
}

func TestAuthMiddleware_TokenInvalido_Retorna401(t *testing.T) {
	resp := doGet(t, buildMiddlewareApp(), "Bearer token.invalido.aqui")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_TokenExpirado_Retorna401(t *testing.T) {
	resp := doGet(t, buildMiddlewareApp(), expiredBearer(t))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode, "token expirado debe rechazarse")
}

func TestAuthMiddleware_OtroEmisor_Retorna401(t *testing.T) {
	resp := doGet(t, buildMiddlewareApp(), bearer(t, mustSigner(testJWTSecret, "otro-servicio")))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
