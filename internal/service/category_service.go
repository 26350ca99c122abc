package service

import (
	"strings"

	"github.com/bfaucher/ecureuil-backend/internal/domain"
)

// CategoryService handles category business logic
type CategoryService struct {
	categoryRepo domain.CategoryRepository
}

// NewCategoryService creates a new CategoryService
func NewCategoryService(categoryRepo domain.CategoryRepository) *CategoryService {
	return &CategoryService{categoryRepo: categoryRepo}
}

// CreateCategory creates a category after validating the name.
func (s *CategoryService) CreateCategory(nom string) (*domain.Category, error) {
	nom = strings.TrimSpace(nom)
	if nom == "" {
		return nil, domain.NewValidationError([]string{"nomCategorie is required"})
	}
	return s.categoryRepo.Create(nom)
}

// GetCategories retrieves all categories
func (s *CategoryService) GetCategories() ([]*domain.Category, error) {
	return s.categoryRepo.GetAll()
}

// GetCategoryByID retrieves a category by ID
func (s *CategoryService) GetCategoryByID(id int64) (*domain.Category, error) {
	return s.categoryRepo.GetByID(id)
}

// UpdateCategory renames a category; both full and partial updates reduce to
// the same single-field validation.
func (s *CategoryService) UpdateCategory(id int64, nom string) (*domain.Category, error) {
	nom = strings.TrimSpace(nom)
	if nom == "" {
		return nil, domain.NewValidationError([]string{"nomCategorie is required"})
	}
	return s.categoryRepo.Update(id, nom)
}

// DeleteCategory removes the category and returns the deleted row so the
// caller can echo its name.
func (s *CategoryService) DeleteCategory(id int64) (*domain.Category, error) {
	return s.categoryRepo.Delete(id)
}
