package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/catalog-admin/internal/domain/repository"
)

// UploadHandler sirve las imágenes subidas (público).
type UploadHandler struct {
	images repository.ImageRepository
}

// NewUploadHandler construye el handler.
func NewUploadHandler(images repository.ImageRepository) *UploadHandler {
	return &UploadHandler{images: images}
}

// Get devuelve la imagen con su content type original.
func (h *UploadHandler) Get(c *fiber.Ctx) error {
	img, err := h.images.Get(c.Params("name"))
	if err != nil {
		return respondError(c, err)
	}
	if img == nil {
		return notFound(c, "archivo")
	}
	c.Set(fiber.HeaderContentType, img.ContentType)
	return c.Send(img.Data)
}
