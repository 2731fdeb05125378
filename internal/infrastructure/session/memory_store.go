package session

import (
	"context"
	"sync"

	"github.com/jhoicas/catalog-admin/internal/application/ports"
	"github.com/jhoicas/catalog-admin/internal/domain"
)

var _ ports.TokenStore = (*MemoryStore)(nil)

// MemoryStore token en memoria; no sobrevive al proceso. Útil en tests y con SESSION_DRIVER=memory.
type MemoryStore struct {
	mu    sync.Mutex
	token string
	// FailSave, si no es nil, se devuelve en Save (simula un disco lleno).
	FailSave error
}

// NewMemoryStore crea el store con un token inicial (vacío = sin sesión).
func NewMemoryStore(token string) *MemoryStore { return &MemoryStore{token: token} }

// Load devuelve el token guardado o domain.ErrNoSession.
func (s *MemoryStore) Load(context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.token == "" {
		return "", domain.ErrNoSession
	}
	return s.token, nil
}

// Save reemplaza el token guardado.
func (s *MemoryStore) Save(_ context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.FailSave != nil {
		return s.FailSave
	}
	s.token = token
	return nil
}

// Clear borra el token; sin token guardado no es error.
func (s *MemoryStore) Clear(context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	return nil
}
