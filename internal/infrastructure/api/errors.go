package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/jhoicas/catalog-admin/internal/domain"
)

// ErrUnexpectedResponse el backend respondió 2xx con un cuerpo que no cumple el contrato.
var ErrUnexpectedResponse = errors.New("api: respuesta inesperada del backend")

// APIError respuesta no-2xx del backend. Message es el campo "message" del cuerpo, si vino.
type APIError struct {
	StatusCode int
	Code       string
	Message    string
}

func newAPIError(status int, body []byte) *APIError {
	e := &APIError{StatusCode: status}
	var payload struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	}
	if json.Unmarshal(body, &payload) == nil {
		e.Code = payload.Code
		e.Message = payload.Message
	}
	return e
}

// Error incluye status, código y mensaje del backend.
func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api: HTTP %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("api: HTTP %d", e.StatusCode)
}

// UserMessage mensaje legible enviado por el backend (vacío si no hubo).
func (e *APIError) UserMessage() string { return e.Message }

// HTTPStatus status de la respuesta.
func (e *APIError) HTTPStatus() int { return e.StatusCode }

// Is permite errors.Is(err, domain.ErrNotFound) y similares según el status.
func (e *APIError) Is(target error) bool {
	switch target {
	case domain.ErrNotFound:
		return e.StatusCode == http.StatusNotFound
	case domain.ErrUnauthorized:
		return e.StatusCode == http.StatusUnauthorized
	case domain.ErrForbidden:
		return e.StatusCode == http.StatusForbidden
	case domain.ErrConflict:
		return e.StatusCode == http.StatusConflict
	case domain.ErrInvalidInput:
		return e.StatusCode == http.StatusBadRequest || e.StatusCode == http.StatusUnprocessableEntity
	}
	return false
}
