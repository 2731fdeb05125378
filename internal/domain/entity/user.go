package entity

import (
	"encoding/json"
	"time"
)

// User representa al usuario autenticado del panel de administración.
type User struct {
	ID       string `json:"_id"`
	Email    string `json:"email"`
	Name     string `json:"name,omitempty"`
	FullName string `json:"fullName,omitempty"`
}

// UnmarshalJSON acepta "id" cuando falta "_id".
func (u *User) UnmarshalJSON(b []byte) error {
	type plain User
	var doc struct {
		plain
		AltID string `json:"id"`
	}
	if err := json.Unmarshal(b, &doc); err != nil {
		return err
	}
	*u = User(doc.plain)
	u.ID = orAlias(u.ID, doc.AltID)
	return nil
}

// DisplayName devuelve el nombre a mostrar: FullName, Name o Email, en ese orden.
func (u User) DisplayName() string {
	switch {
	case u.FullName != "":
		return u.FullName
	case u.Name != "":
		return u.Name
	default:
		return u.Email
	}
}

// Session par token + usuario devuelto por login y registro.
type Session struct {
	Token string `json:"token"`
	User  *User  `json:"user"`
}

// Account usuario más su hash de contraseña; solo lo usa el backend de pruebas.
type Account struct {
	User
	PasswordHash string    // bcrypt hash, nunca plano
	CreatedAt    time.Time
}
