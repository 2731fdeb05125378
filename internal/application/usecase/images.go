package usecase

import (
	"mime"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/jhoicas/catalog-admin/internal/domain"
	"github.com/jhoicas/catalog-admin/internal/domain/entity"
	"github.com/jhoicas/catalog-admin/internal/domain/repository"
)

// UploadsPrefix ruta pública bajo la que se sirven los adjuntos.
const UploadsPrefix = "/uploads/"

// storeImage guarda el adjunto con un nombre único y devuelve su URL relativa.
// Solo se aceptan imágenes.
func storeImage(repo repository.ImageRepository, img *entity.Image) (string, error) {
	if img == nil || len(img.Data) == 0 {
		return "", nil
	}
	if !strings.HasPrefix(img.ContentType, "image/") {
		return "", domain.ErrInvalidInput
	}
	ext := strings.ToLower(filepath.Ext(img.Filename))
	if ext == "" {
		if exts, _ := mime.ExtensionsByType(img.ContentType); len(exts) > 0 {
			ext = exts[0]
		}
	}
	name := uuid.New().String() + ext
	if err := repo.Put(name, *img); err != nil {
		return "", err
	}
	return UploadsPrefix + name, nil
}

// normalizeStatus aplica "active" por defecto y valida el valor.
func normalizeStatus(s string) (string, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	if s == "" {
		return entity.StatusActive, nil
	}
	if !entity.ValidStatus(s) {
		return "", domain.ErrInvalidInput
	}
	return s, nil
}
