package domain

import "time"

// ThirdParty is a payee or payer attached to movements, scoped to its owner.
type ThirdParty struct {
	ID        int64
	UserID    int64
	Nom       string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type ThirdPartyRepository interface {
	GetAllByUser(userID int64) ([]*ThirdParty, error)
	GetByID(userID, id int64) (*ThirdParty, error)
	Create(tp *ThirdParty) (*ThirdParty, error)
	Update(userID, id int64, nom string) (*ThirdParty, error)
	Delete(userID, id int64) (*ThirdParty, error)
}
