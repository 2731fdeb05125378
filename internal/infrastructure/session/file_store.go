package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/jhoicas/catalog-admin/internal/application/ports"
	"github.com/jhoicas/catalog-admin/internal/domain"
	"github.com/jhoicas/catalog-admin/pkg/logger"
)

// Verificar en tiempo de compilación que FileStore implementa TokenStore.
var _ ports.TokenStore = (*FileStore)(nil)

// FileStore guarda el token en un archivo JSON con permisos 0600.
type FileStore struct {
	path string
	log  *logger.Logger
	mu   sync.Mutex
}

type fileRecord struct {
	Token   string    `json:"token"`
	SavedAt time.Time `json:"saved_at"`
}

// NewFileStore construye el store sobre path. El directorio se crea al guardar.
func NewFileStore(path string, log *logger.Logger) *FileStore {
	return &FileStore{path: path, log: logger.OrNop(log).Named("session.file")}
}

// Path ruta del archivo de sesión.
func (s *FileStore) Path() string { return s.path }

// Load lee el token guardado.
func (s *FileStore) Load(_ context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", domain.ErrNoSession
	}
	if err != nil {
		return "", fmt.Errorf("session: leer %s: %w", s.path, err)
	}
	var rec fileRecord
	if err := json.Unmarshal(raw, &rec); err != nil {
		return "", fmt.Errorf("session: archivo corrupto %s: %w", s.path, err)
	}
	if rec.Token == "" {
		return "", domain.ErrNoSession
	}
	return rec.Token, nil
}

// Save escribe el token de forma atómica (archivo temporal + rename).
func (s *FileStore) Save(_ context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("session: crear directorio: %w", err)
	}
	raw, err := json.Marshal(fileRecord{Token: token, SavedAt: time.Now().UTC()})
	if err != nil {
		return fmt.Errorf("session: serializar: %w", err)
	}
	tmp, err := os.CreateTemp(dir, ".session-*")
	if err != nil {
		return fmt.Errorf("session: archivo temporal: %w", err)
	}
	defer os.Remove(tmp.Name())
	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		return fmt.Errorf("session: escribir: %w", err)
	}
	if err := tmp.Chmod(0o600); err != nil {
		tmp.Close()
		return fmt.Errorf("session: permisos: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("session: cerrar: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("session: reemplazar %s: %w", s.path, err)
	}
	s.log.Debug().Str("path", s.path).Msg("token guardado")
	return nil
}

// Clear borra el archivo. No es error si no existe.
func (s *FileStore) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("session: borrar %s: %w", s.path, err)
	}
	s.log.Debug().Str("path", s.path).Msg("token borrado")
	return nil
}
