package cli

import (
	"io"
	"mime"
	"os"
	"path/filepath"
	"text/tabwriter"

	"github.com/jhoicas/catalog-admin/internal/domain/entity"
)

func newTable(out io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

// loadImage lee el archivo a adjuntar. El content type sale de la extensión.
func loadImage(path string) (*entity.Image, error) {
	if path == "" {
		return nil, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return &entity.Image{
		Filename:    filepath.Base(path),
		ContentType: mime.TypeByExtension(filepath.Ext(path)),
		Data:        data,
	}, nil
}
