package service

import (
	"time"

	"github.com/bfaucher/ecureuil-backend/internal/domain"
	"github.com/shopspring/decimal"
)

// TransferService handles inter-account transfer business logic
type TransferService struct {
	transferRepo domain.TransferRepository
	accountRepo  domain.AccountRepository
	categoryRepo domain.CategoryRepository
}

// NewTransferService creates a new TransferService
func NewTransferService(transferRepo domain.TransferRepository, accountRepo domain.AccountRepository, categoryRepo domain.CategoryRepository) *TransferService {
	return &TransferService{
		transferRepo: transferRepo,
		accountRepo:  accountRepo,
		categoryRepo: categoryRepo,
	}
}

// CreateTransferInput holds the input for creating a transfer; nil marks an
// absent field. Date defaults to today when omitted.
type CreateTransferInput struct {
	DebitAccountID  *int64
	CreditAccountID *int64
	Montant         *decimal.Decimal
	Date            *time.Time
	CategoryID      *int64
}

// UpdateTransferInput holds the mutable fields of a transfer.
type UpdateTransferInput struct {
	Date       *time.Time
	CategoryID *int64
}

// CreateTransfer validates the rules, verifies both accounts belong to the
// caller and the category exists, then persists the transfer. The repository
// creates the two linked movements and adjusts both balances in the same
// transaction.
func (s *TransferService) CreateTransfer(userID int64, input CreateTransferInput) (*domain.Transfer, error) {
	var details []string
	if input.DebitAccountID == nil {
		details = append(details, "idCompteDebit is required")
	}
	if input.CreditAccountID == nil {
		details = append(details, "idCompteCredit is required")
	}
	if input.DebitAccountID != nil && input.CreditAccountID != nil && *input.DebitAccountID == *input.CreditAccountID {
		details = append(details, "idCompteDebit and idCompteCredit must be different accounts")
	}
	if input.Montant == nil {
		details = append(details, "montant is required and must be a number")
	} else if input.Montant.LessThanOrEqual(decimal.Zero) {
		details = append(details, "montant must be greater than zero")
	}
	if input.Date != nil && beforeToday(*input.Date) {
		details = append(details, "dateVirement can't be in the past")
	}
	if input.CategoryID == nil {
		details = append(details, "idCategorie is required")
	}
	if err := domain.NewValidationError(details); err != nil {
		return nil, err
	}

	if _, err := s.accountRepo.GetByID(userID, *input.DebitAccountID); err != nil {
		return nil, err
	}
	if _, err := s.accountRepo.GetByID(userID, *input.CreditAccountID); err != nil {
		return nil, err
	}
	if _, err := s.categoryRepo.GetByID(*input.CategoryID); err != nil {
		return nil, err
	}

	date := time.Now()
	if input.Date != nil {
		date = *input.Date
	}

	transfer := &domain.Transfer{
		DebitAccountID:  *input.DebitAccountID,
		CreditAccountID: *input.CreditAccountID,
		Montant:         *input.Montant,
		Date:            date,
		CategoryID:      *input.CategoryID,
	}

	return s.transferRepo.Create(userID, transfer)
}

// GetTransfers retrieves all transfers touching an account of the user
func (s *TransferService) GetTransfers(userID int64) ([]*domain.Transfer, error) {
	return s.transferRepo.GetAllByUser(userID)
}

// GetTransferByID retrieves one transfer of the user
func (s *TransferService) GetTransferByID(userID, id int64) (*domain.Transfer, error) {
	return s.transferRepo.GetByID(userID, id)
}

// UpdateTransfer applies a partial update restricted to date and category.
func (s *TransferService) UpdateTransfer(userID, id int64, input UpdateTransferInput) (*domain.Transfer, error) {
	var details []string
	if input.Date == nil && input.CategoryID == nil {
		details = append(details, noFieldsToUpdate)
	}
	if input.Date != nil && beforeToday(*input.Date) {
		details = append(details, "dateVirement can't be in the past")
	}
	if err := domain.NewValidationError(details); err != nil {
		return nil, err
	}

	if input.CategoryID != nil {
		if _, err := s.categoryRepo.GetByID(*input.CategoryID); err != nil {
			return nil, err
		}
	}

	return s.transferRepo.Update(userID, id, domain.TransferUpdate{
		Date:       input.Date,
		CategoryID: input.CategoryID,
	})
}

// DeleteTransfer removes the transfer, its linked movements and both balance
// effects, and returns the deleted row for confirmation.
func (s *TransferService) DeleteTransfer(userID, id int64) (*domain.Transfer, error) {
	return s.transferRepo.Delete(userID, id)
}
