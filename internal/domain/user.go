package domain

import "time"

// User owns accounts and third parties, and transitively every movement and
// transfer reached through them. PasswordHash is the bcrypt hash, never the
// plaintext.
type User struct {
	ID           int64
	Login        string
	PasswordHash string
	Nom          string
	Prenom       string
	Ville        *string
	CodePostal   *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// UserUpdate is a sparse update: nil means "leave unchanged".
type UserUpdate struct {
	Nom          *string
	Prenom       *string
	PasswordHash *string
	Ville        *string
	CodePostal   *string
}

// IsEmpty reports whether no field was supplied.
func (u UserUpdate) IsEmpty() bool {
	return u.Nom == nil && u.Prenom == nil && u.PasswordHash == nil && u.Ville == nil && u.CodePostal == nil
}

type UserRepository interface {
	GetAll() ([]*User, error)
	GetByID(id int64) (*User, error)
	GetByLogin(login string) (*User, error)
	Create(user *User) (*User, error)
	Update(id int64, update UserUpdate) (*User, error)
	Delete(id int64) (*User, error)
}
