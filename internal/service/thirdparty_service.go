package service

import (
	"strings"

	"github.com/bfaucher/ecureuil-backend/internal/domain"
)

// ThirdPartyService handles third-party (payee/payer) business logic
type ThirdPartyService struct {
	thirdPartyRepo domain.ThirdPartyRepository
}

// NewThirdPartyService creates a new ThirdPartyService
func NewThirdPartyService(thirdPartyRepo domain.ThirdPartyRepository) *ThirdPartyService {
	return &ThirdPartyService{thirdPartyRepo: thirdPartyRepo}
}

// CreateThirdParty creates a third party for the authenticated user.
func (s *ThirdPartyService) CreateThirdParty(userID int64, nom string) (*domain.ThirdParty, error) {
	nom = strings.TrimSpace(nom)
	if nom == "" {
		return nil, domain.NewValidationError([]string{"nomTiers is required"})
	}

	return s.thirdPartyRepo.Create(&domain.ThirdParty{
		UserID: userID,
		Nom:    nom,
	})
}

// GetThirdParties retrieves all third parties of the user
func (s *ThirdPartyService) GetThirdParties(userID int64) ([]*domain.ThirdParty, error) {
	return s.thirdPartyRepo.GetAllByUser(userID)
}

// GetThirdPartyByID retrieves one third party of the user
func (s *ThirdPartyService) GetThirdPartyByID(userID, id int64) (*domain.ThirdParty, error) {
	return s.thirdPartyRepo.GetByID(userID, id)
}

// UpdateThirdParty renames a third party.
func (s *ThirdPartyService) UpdateThirdParty(userID, id int64, nom string) (*domain.ThirdParty, error) {
	nom = strings.TrimSpace(nom)
	if nom == "" {
		return nil, domain.NewValidationError([]string{"nomTiers is required"})
	}
	return s.thirdPartyRepo.Update(userID, id, nom)
}

// DeleteThirdParty removes the third party and returns the deleted row.
func (s *ThirdPartyService) DeleteThirdParty(userID, id int64) (*domain.ThirdParty, error) {
	return s.thirdPartyRepo.Delete(userID, id)
}
