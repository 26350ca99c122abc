package service

import (
	"strings"

	"github.com/bfaucher/ecureuil-backend/internal/domain"
	"github.com/shopspring/decimal"
)

// AccountService handles account business logic
type AccountService struct {
	accountRepo domain.AccountRepository
}

// NewAccountService creates a new AccountService
func NewAccountService(accountRepo domain.AccountRepository) *AccountService {
	return &AccountService{accountRepo: accountRepo}
}

// AccountInput holds the fields of a create or update request; nil marks an
// absent field. The same validator serves both update modes, parameterized by
// which fields must be present.
type AccountInput struct {
	Description  *string
	NomBanque    *string
	SoldeInitial *decimal.Decimal
	DernierSolde *decimal.Decimal
}

// validateAccount collects every violation for the given mode. Full mode
// requires description, bank name and initial balance; partial mode requires
// at least one supplied field.
func validateAccount(input AccountInput, partial bool) error {
	var details []string
	if partial {
		if input.IsEmpty() {
			details = append(details, noFieldsToUpdate)
		}
		if input.Description != nil && blank(input.Description) {
			details = append(details, "DescriptionCompte can't be empty")
		}
		if input.NomBanque != nil && blank(input.NomBanque) {
			details = append(details, "NomBanque can't be empty")
		}
	} else {
		if blank(input.Description) {
			details = append(details, "DescriptionCompte is required")
		}
		if blank(input.NomBanque) {
			details = append(details, "NomBanque is required")
		}
		if input.SoldeInitial == nil {
			details = append(details, "SoldeInitial is required")
		}
	}
	return domain.NewValidationError(details)
}

// IsEmpty reports whether no field was supplied.
func (i AccountInput) IsEmpty() bool {
	return i.Description == nil && i.NomBanque == nil && i.SoldeInitial == nil && i.DernierSolde == nil
}

// CreateAccount creates an account for the authenticated user. The running
// balance starts at the initial balance.
func (s *AccountService) CreateAccount(userID int64, input AccountInput) (*domain.Account, error) {
	if err := validateAccount(input, false); err != nil {
		return nil, err
	}

	account := &domain.Account{
		UserID:       userID,
		Description:  strings.TrimSpace(*input.Description),
		NomBanque:    strings.TrimSpace(*input.NomBanque),
		SoldeInitial: *input.SoldeInitial,
		DernierSolde: *input.SoldeInitial,
	}

	return s.accountRepo.Create(account)
}

// GetAccounts retrieves all accounts of the user
func (s *AccountService) GetAccounts(userID int64) ([]*domain.Account, error) {
	return s.accountRepo.GetAllByUser(userID)
}

// GetAccountByID retrieves one account of the user
func (s *AccountService) GetAccountByID(userID, id int64) (*domain.Account, error) {
	return s.accountRepo.GetByID(userID, id)
}

// UpdateAccount applies a full or partial update. A full update replaces the
// descriptive fields and resets the running balance to the new initial
// balance; a partial update touches only the supplied fields.
func (s *AccountService) UpdateAccount(userID, id int64, input AccountInput, partial bool) (*domain.Account, error) {
	if err := validateAccount(input, partial); err != nil {
		return nil, err
	}

	update := domain.AccountUpdate{
		SoldeInitial: input.SoldeInitial,
		DernierSolde: input.DernierSolde,
	}
	if input.Description != nil {
		trimmed := strings.TrimSpace(*input.Description)
		update.Description = &trimmed
	}
	if input.NomBanque != nil {
		trimmed := strings.TrimSpace(*input.NomBanque)
		update.NomBanque = &trimmed
	}
	if !partial {
		// Full replace resets the running balance alongside the initial one.
		update.DernierSolde = input.SoldeInitial
	}

	return s.accountRepo.Update(userID, id, update)
}

// DeleteAccount removes the account and returns the deleted row for
// confirmation.
func (s *AccountService) DeleteAccount(userID, id int64) (*domain.Account, error) {
	return s.accountRepo.Delete(userID, id)
}
