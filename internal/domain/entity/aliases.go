package entity

// aliases claves alternativas que algunos backends usan para id y nombre.
type aliases struct {
	AltID   string `json:"id"`
	AltName string `json:"name"`
}

func orAlias(primary, alt string) string {
	if primary != "" {
		return primary
	}
	return alt
}
