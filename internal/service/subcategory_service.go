package service

import (
	"strings"

	"github.com/bfaucher/ecureuil-backend/internal/domain"
)

// SubcategoryService handles subcategory business logic
type SubcategoryService struct {
	subcategoryRepo domain.SubcategoryRepository
	categoryRepo    domain.CategoryRepository
}

// NewSubcategoryService creates a new SubcategoryService
func NewSubcategoryService(subcategoryRepo domain.SubcategoryRepository, categoryRepo domain.CategoryRepository) *SubcategoryService {
	return &SubcategoryService{
		subcategoryRepo: subcategoryRepo,
		categoryRepo:    categoryRepo,
	}
}

// CreateSubcategory validates the name, verifies the parent category exists
// and persists the subcategory under it. The parent link is immutable after
// creation.
func (s *SubcategoryService) CreateSubcategory(categoryID int64, nom string) (*domain.Subcategory, error) {
	nom = strings.TrimSpace(nom)
	if nom == "" {
		return nil, domain.NewValidationError([]string{"nomSousCategorie is required"})
	}

	if _, err := s.categoryRepo.GetByID(categoryID); err != nil {
		return nil, err
	}

	return s.subcategoryRepo.Create(&domain.Subcategory{
		Nom:        nom,
		CategoryID: categoryID,
	})
}

// GetSubcategories lists the subcategories of a category, verifying the
// parent exists first.
func (s *SubcategoryService) GetSubcategories(categoryID int64) ([]*domain.Subcategory, error) {
	if _, err := s.categoryRepo.GetByID(categoryID); err != nil {
		return nil, err
	}
	return s.subcategoryRepo.GetByCategory(categoryID)
}

// GetSubcategoryByID retrieves a subcategory within its category
func (s *SubcategoryService) GetSubcategoryByID(categoryID, id int64) (*domain.Subcategory, error) {
	return s.subcategoryRepo.GetByID(categoryID, id)
}

// UpdateSubcategory renames a subcategory; the parent link never changes.
func (s *SubcategoryService) UpdateSubcategory(categoryID, id int64, nom string) (*domain.Subcategory, error) {
	nom = strings.TrimSpace(nom)
	if nom == "" {
		return nil, domain.NewValidationError([]string{"nomSousCategorie is required"})
	}
	return s.subcategoryRepo.Update(categoryID, id, nom)
}

// DeleteSubcategory removes the subcategory and returns the deleted row.
func (s *SubcategoryService) DeleteSubcategory(categoryID, id int64) (*domain.Subcategory, error) {
	return s.subcategoryRepo.Delete(categoryID, id)
}
