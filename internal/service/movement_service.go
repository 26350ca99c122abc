package service

import (
	"time"

	"github.com/bfaucher/ecureuil-backend/internal/domain"
	"github.com/shopspring/decimal"
)

// MovementService handles movement business logic: field validation, the
// business-rule gate (positive amount, non-past date) and parent existence
// checks, in that order, before anything touches storage.
type MovementService struct {
	movementRepo    domain.MovementRepository
	accountRepo     domain.AccountRepository
	thirdPartyRepo  domain.ThirdPartyRepository
	categoryRepo    domain.CategoryRepository
	subcategoryRepo domain.SubcategoryRepository
	transferRepo    domain.TransferRepository
}

// NewMovementService creates a new MovementService
func NewMovementService(
	movementRepo domain.MovementRepository,
	accountRepo domain.AccountRepository,
	thirdPartyRepo domain.ThirdPartyRepository,
	categoryRepo domain.CategoryRepository,
	subcategoryRepo domain.SubcategoryRepository,
	transferRepo domain.TransferRepository,
) *MovementService {
	return &MovementService{
		movementRepo:    movementRepo,
		accountRepo:     accountRepo,
		thirdPartyRepo:  thirdPartyRepo,
		categoryRepo:    categoryRepo,
		subcategoryRepo: subcategoryRepo,
		transferRepo:    transferRepo,
	}
}

// CreateMovementInput holds the input for creating a movement; nil marks an
// absent field.
type CreateMovementInput struct {
	Montant       *decimal.Decimal
	Type          *string
	Date          *time.Time
	AccountID     *int64
	ThirdPartyID  *int64
	CategoryID    *int64
	SubcategoryID *int64
	TransferID    *int64
}

// UpdateMovementInput holds the mutable fields of a movement. Amount, type,
// account and third party are immutable after creation.
type UpdateMovementInput struct {
	Date          *time.Time
	CategoryID    *int64
	SubcategoryID *int64
}

// CreateMovement validates every rule, verifies each referenced parent exists
// and belongs to the caller where ownership applies, and persists the
// movement. The repository adjusts the account balance in the same
// transaction as the insert.
func (s *MovementService) CreateMovement(userID int64, input CreateMovementInput) (*domain.Movement, error) {
	var details []string
	if input.Type == nil || *input.Type == "" {
		details = append(details, "typeMouvement is required")
	} else if !domain.ValidMovementType(domain.MovementType(*input.Type)) {
		details = append(details, "typeMouvement must be debit or credit")
	}
	if input.Montant == nil {
		details = append(details, "montant is required and must be a number")
	} else if input.Montant.LessThanOrEqual(decimal.Zero) {
		details = append(details, "montant must be greater than zero")
	}
	if input.Date == nil {
		details = append(details, "dateMouvement is required")
	} else if beforeToday(*input.Date) {
		details = append(details, "dateMouvement can't be in the past")
	}
	if input.AccountID == nil {
		details = append(details, "idCompte is required")
	}
	if input.ThirdPartyID == nil {
		details = append(details, "idTiers is required")
	}
	if input.CategoryID == nil {
		details = append(details, "idCategorie is required")
	}
	if err := domain.NewValidationError(details); err != nil {
		return nil, err
	}

	if _, err := s.accountRepo.GetByID(userID, *input.AccountID); err != nil {
		return nil, err
	}
	if _, err := s.thirdPartyRepo.GetByID(userID, *input.ThirdPartyID); err != nil {
		return nil, err
	}
	if _, err := s.categoryRepo.GetByID(*input.CategoryID); err != nil {
		return nil, err
	}
	if input.SubcategoryID != nil {
		if _, err := s.subcategoryRepo.GetByID(*input.CategoryID, *input.SubcategoryID); err != nil {
			return nil, err
		}
	}
	if input.TransferID != nil {
		if _, err := s.transferRepo.GetByID(userID, *input.TransferID); err != nil {
			return nil, err
		}
	}

	movement := &domain.Movement{
		Montant:       *input.Montant,
		Type:          domain.MovementType(*input.Type),
		Date:          *input.Date,
		AccountID:     *input.AccountID,
		ThirdPartyID:  input.ThirdPartyID,
		CategoryID:    *input.CategoryID,
		SubcategoryID: input.SubcategoryID,
		TransferID:    input.TransferID,
	}

	return s.movementRepo.Create(userID, movement)
}

// GetMovements retrieves all movements of the user
func (s *MovementService) GetMovements(userID int64) ([]*domain.Movement, error) {
	return s.movementRepo.GetAllByUser(userID)
}

// GetMovementsByAccount lists the movements of one account, verifying the
// account belongs to the caller first.
func (s *MovementService) GetMovementsByAccount(userID, accountID int64) ([]*domain.Movement, error) {
	if _, err := s.accountRepo.GetByID(userID, accountID); err != nil {
		return nil, err
	}
	return s.movementRepo.GetAllByAccount(userID, accountID)
}

// GetMovementByID retrieves one movement of the user
func (s *MovementService) GetMovementByID(userID, id int64) (*domain.Movement, error) {
	return s.movementRepo.GetByID(userID, id)
}

// UpdateMovement applies a partial update restricted to date, category and
// subcategory. At least one field must be supplied; a supplied date must not
// be in the past; a supplied subcategory must belong to the movement's
// (possibly updated) category.
func (s *MovementService) UpdateMovement(userID, id int64, input UpdateMovementInput) (*domain.Movement, error) {
	var details []string
	if input.Date == nil && input.CategoryID == nil && input.SubcategoryID == nil {
		details = append(details, noFieldsToUpdate)
	}
	if input.Date != nil && beforeToday(*input.Date) {
		details = append(details, "dateMouvement can't be in the past")
	}
	if err := domain.NewValidationError(details); err != nil {
		return nil, err
	}

	existing, err := s.movementRepo.GetByID(userID, id)
	if err != nil {
		return nil, err
	}

	if input.CategoryID != nil {
		if _, err := s.categoryRepo.GetByID(*input.CategoryID); err != nil {
			return nil, err
		}
	}
	if input.SubcategoryID != nil {
		categoryID := existing.CategoryID
		if input.CategoryID != nil {
			categoryID = *input.CategoryID
		}
		if _, err := s.subcategoryRepo.GetByID(categoryID, *input.SubcategoryID); err != nil {
			return nil, err
		}
	}

	return s.movementRepo.Update(userID, id, domain.MovementUpdate{
		Date:          input.Date,
		CategoryID:    input.CategoryID,
		SubcategoryID: input.SubcategoryID,
	})
}

// DeleteMovement removes the movement, reversing its balance effect, and
// returns the deleted row for confirmation.
func (s *MovementService) DeleteMovement(userID, id int64) (*domain.Movement, error) {
	return s.movementRepo.Delete(userID, id)
}
