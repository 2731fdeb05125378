package entity

// Estados válidos para Category, SubCategory y Product.
const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)

// ValidStatus indica si s es un estado reconocido.
func ValidStatus(s string) bool {
	return s == StatusActive || s == StatusInactive
}
