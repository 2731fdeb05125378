package api

import (
	"bytes"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"slices"
	"strings"

	"github.com/jhoicas/catalog-admin/internal/application/ports"
)

// ImageField nombre del campo multipart del adjunto.
const ImageField = "image"

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

// encodeForm serializa el payload como multipart/form-data. Los campos van en orden
// alfabético para que el cuerpo sea determinista.
func encodeForm(p ports.FormPayload) (*bytes.Buffer, string, error) {
	buf := &bytes.Buffer{}
	w := multipart.NewWriter(buf)

	fields := p.Fields()
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	for _, k := range keys {
		if err := w.WriteField(k, fields[k]); err != nil {
			return nil, "", fmt.Errorf("api: campo %s: %w", k, err)
		}
	}

	if img := p.Attachment(); img != nil && len(img.Data) > 0 {
		name := img.Filename
		if name == "" {
			name = "image"
		}
		ct := img.ContentType
		if ct == "" {
			ct = http.DetectContentType(img.Data)
		}
		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"; filename="%s"`, ImageField, quoteEscaper.Replace(name)))
		h.Set("Content-Type", ct)
		part, err := w.CreatePart(h)
		if err != nil {
			return nil, "", fmt.Errorf("api: adjunto: %w", err)
		}
		if _, err := part.Write(img.Data); err != nil {
			return nil, "", fmt.Errorf("api: escribir adjunto: %w", err)
		}
	}

	if err := w.Close(); err != nil {
		return nil, "", fmt.Errorf("api: cerrar multipart: %w", err)
	}
	return buf, w.FormDataContentType(), nil
}
