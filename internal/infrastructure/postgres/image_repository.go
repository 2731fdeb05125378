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

var _ repository.ImageRepository = (*ImageRepo)(nil)

// ImageRepo guarda los adjuntos en una columna BYTEA.
type ImageRepo struct {
	q Querier
}

// NewImageRepository construye el adaptador de imágenes.
func NewImageRepository(q Querier) *ImageRepo {
	return &ImageRepo{q: q}
}

// Put guarda la imagen bajo name.
func (r *ImageRepo) Put(name string, img entity.Image) error {
	query := `INSERT INTO images (name, filename, content_type, data) VALUES ($1, $2, $3, $4)`
	if _, err := r.q.Exec(context.Background(), query, name, img.Filename, img.ContentType, img.Data); err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert image: %w", err)
	}
	return nil
}

// Get devuelve la imagen o (nil, nil) si no existe.
func (r *ImageRepo) Get(name string) (*entity.Image, error) {
	var img entity.Image
	err := r.q.QueryRow(context.Background(),
		`SELECT filename, content_type, data FROM images WHERE name = $1`, name,
	).Scan(&img.Filename, &img.ContentType, &img.Data)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get image: %w", err)
	}
	return &img, nil
}
