package entity

// Image adjunto binario opcional de un formulario (campo multipart "image").
type Image struct {
	Filename    string
	ContentType string
	Data        []byte
}
