package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type MovementType string

const (
	MovementDebit  MovementType = "debit"
	MovementCredit MovementType = "credit"
)

// ValidMovementType reports whether t is one of the enumerated types.
func ValidMovementType(t MovementType) bool {
	return t == MovementDebit || t == MovementCredit
}

// Movement is a single dated, categorized monetary entry against one account.
// Amount, type, account and third party are immutable after creation; only
// date, category and subcategory may change. ThirdPartyID is nil only for the
// two legs generated by a transfer, in which case TransferID links back to it.
type Movement struct {
	ID            int64
	Montant       decimal.Decimal
	Type          MovementType
	Date          time.Time
	AccountID     int64
	ThirdPartyID  *int64
	CategoryID    int64
	SubcategoryID *int64
	TransferID    *int64
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// MovementUpdate is a sparse update restricted to the mutable fields.
type MovementUpdate struct {
	Date          *time.Time
	CategoryID    *int64
	SubcategoryID *int64
}

// IsEmpty reports whether no field was supplied.
func (u MovementUpdate) IsEmpty() bool {
	return u.Date == nil && u.CategoryID == nil && u.SubcategoryID == nil
}

type MovementRepository interface {
	GetAllByUser(userID int64) ([]*Movement, error)
	GetAllByAccount(userID, accountID int64) ([]*Movement, error)
	GetByID(userID, id int64) (*Movement, error)
	Create(userID int64, movement *Movement) (*Movement, error)
	Update(userID, id int64, update MovementUpdate) (*Movement, error)
	Delete(userID, id int64) (*Movement, error)
}
