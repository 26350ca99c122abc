package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transfer moves money between two accounts of the same user: the debit
// account is charged, the credit account receives. Creating one also creates
// the two linked movements and adjusts both balances in a single transaction.
type Transfer struct {
	ID              int64
	DebitAccountID  int64
	CreditAccountID int64
	Montant         decimal.Decimal
	Date            time.Time
	CategoryID      int64
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TransferUpdate is a sparse update restricted to the mutable fields.
type TransferUpdate struct {
	Date       *time.Time
	CategoryID *int64
}

// IsEmpty reports whether no field was supplied.
func (u TransferUpdate) IsEmpty() bool {
	return u.Date == nil && u.CategoryID == nil
}

type TransferRepository interface {
	GetAllByUser(userID int64) ([]*Transfer, error)
	GetByID(userID, id int64) (*Transfer, error)
	Create(userID int64, transfer *Transfer) (*Transfer, error)
	Update(userID, id int64, update TransferUpdate) (*Transfer, error)
	Delete(userID, id int64) (*Transfer, error)
}
