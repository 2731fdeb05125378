package entity

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Ref referencia a otra entidad. El backend puede enviar el id plano ("c1") o el documento
// poblado ({"_id":"c1","categoryName":"Shoes"}); en ambos casos se conserva el id.
type Ref struct {
	ID   string
	Name string
}

// RefTo construye una referencia sin nombre.
func RefTo(id string) Ref { return Ref{ID: id} }

// IsZero indica si la referencia está vacía.
func (r Ref) IsZero() bool { return r.ID == "" }

// MarshalJSON emite el id plano si no hay nombre; si lo hay, el documento poblado.
func (r Ref) MarshalJSON() ([]byte, error) {
	if r.Name == "" {
		return json.Marshal(r.ID)
	}
	return json.Marshal(struct {
		ID   string `json:"_id"`
		Name string `json:"name"`
	}{r.ID, r.Name})
}

// UnmarshalJSON acepta string, null u objeto con _id y algún campo de nombre.
func (r *Ref) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		*r = Ref{}
		return nil
	}
	if b[0] == '"' {
		var id string
		if err := json.Unmarshal(b, &id); err != nil {
			return err
		}
		*r = Ref{ID: id}
		return nil
	}
	var doc struct {
		ID              string `json:"_id"`
		Name            string `json:"name"`
		CategoryName    string `json:"categoryName"`
		SubCategoryName string `json:"subCategoryName"`
	}
	if err := json.Unmarshal(b, &doc); err != nil {
		return fmt.Errorf("ref: %w", err)
	}
	name := doc.Name
	if name == "" {
		name = doc.CategoryName
	}
	if name == "" {
		name = doc.SubCategoryName
	}
	*r = Ref{ID: doc.ID, Name: name}
	return nil
}
