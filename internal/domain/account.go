package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Account is a bank account owned by a single user. DernierSolde is a
// maintained running total: every movement and transfer write adjusts it in
// the same transaction, so it never drifts from the movement history.
type Account struct {
	ID           int64
	UserID       int64
	Description  string
	NomBanque    string
	SoldeInitial decimal.Decimal
	DernierSolde decimal.Decimal
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// AccountUpdate is a sparse update: nil means "leave unchanged".
type AccountUpdate struct {
	Description  *string
	NomBanque    *string
	SoldeInitial *decimal.Decimal
	DernierSolde *decimal.Decimal
}

// IsEmpty reports whether no field was supplied.
func (u AccountUpdate) IsEmpty() bool {
	return u.Description == nil && u.NomBanque == nil && u.SoldeInitial == nil && u.DernierSolde == nil
}

type AccountRepository interface {
	GetAllByUser(userID int64) ([]*Account, error)
	GetByID(userID, id int64) (*Account, error)
	Create(account *Account) (*Account, error)
	Update(userID, id int64, update AccountUpdate) (*Account, error)
	Delete(userID, id int64) (*Account, error)
}
