package service

import (
	"strings"

	"github.com/bfaucher/ecureuil-backend/internal/auth"
	"github.com/bfaucher/ecureuil-backend/internal/domain"
)

// UserService handles user management business logic
type UserService struct {
	userRepo domain.UserRepository
}

// NewUserService creates a new UserService
func NewUserService(userRepo domain.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// CreateUserInput holds the input for creating a user. Login is optional and
// derived from the name when absent.
type CreateUserInput struct {
	Login      *string
	MotDePasse *string
	Nom        *string
	Prenom     *string
	Ville      *string
	CodePostal *string
}

// UpdateUserInput holds the input for updating a user; nil fields stay
// unchanged on partial update.
type UpdateUserInput struct {
	MotDePasse *string
	Nom        *string
	Prenom     *string
	Ville      *string
	CodePostal *string
}

// CreateUser validates the input, hashes the password, derives the login when
// none was supplied and persists the user.
func (s *UserService) CreateUser(input CreateUserInput) (*domain.User, error) {
	var details []string
	if blank(input.Nom) {
		details = append(details, "nomUtilisateur is required")
	}
	if blank(input.Prenom) {
		details = append(details, "prenomUtilisateur is required")
	}
	if blank(input.MotDePasse) {
		details = append(details, "motDePasse is required")
	}
	if err := domain.NewValidationError(details); err != nil {
		return nil, err
	}

	nom := strings.TrimSpace(*input.Nom)
	prenom := strings.TrimSpace(*input.Prenom)

	login := ""
	if input.Login != nil {
		login = strings.TrimSpace(*input.Login)
	}
	if login == "" {
		login = deriveLogin(prenom, nom)
	}

	hash, err := auth.HashPassword(*input.MotDePasse)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Login:        login,
		PasswordHash: hash,
		Nom:          nom,
		Prenom:       prenom,
		Ville:        input.Ville,
		CodePostal:   input.CodePostal,
	}

	return s.userRepo.Create(user)
}

// GetUsers retrieves all users
func (s *UserService) GetUsers() ([]*domain.User, error) {
	return s.userRepo.GetAll()
}

// GetUserByID retrieves a user by ID
func (s *UserService) GetUserByID(id int64) (*domain.User, error) {
	return s.userRepo.GetByID(id)
}

// UpdateUser applies a full or partial update. Full updates require the name
// fields; partial updates require at least one supplied field. A supplied
// password is re-hashed before storage.
func (s *UserService) UpdateUser(id int64, input UpdateUserInput, partial bool) (*domain.User, error) {
	var details []string
	if partial {
		if input.Nom == nil && input.Prenom == nil && input.MotDePasse == nil && input.Ville == nil && input.CodePostal == nil {
			details = append(details, noFieldsToUpdate)
		}
		if input.Nom != nil && blank(input.Nom) {
			details = append(details, "nomUtilisateur can't be empty")
		}
		if input.Prenom != nil && blank(input.Prenom) {
			details = append(details, "prenomUtilisateur can't be empty")
		}
	} else {
		if blank(input.Nom) {
			details = append(details, "nomUtilisateur is required")
		}
		if blank(input.Prenom) {
			details = append(details, "prenomUtilisateur is required")
		}
	}
	if err := domain.NewValidationError(details); err != nil {
		return nil, err
	}

	update := domain.UserUpdate{
		Nom:        input.Nom,
		Prenom:     input.Prenom,
		Ville:      input.Ville,
		CodePostal: input.CodePostal,
	}

	if input.MotDePasse != nil && strings.TrimSpace(*input.MotDePasse) != "" {
		hash, err := auth.HashPassword(*input.MotDePasse)
		if err != nil {
			return nil, err
		}
		update.PasswordHash = &hash
	}

	return s.userRepo.Update(id, update)
}

// DeleteUser removes the user and returns the deleted row for confirmation.
func (s *UserService) DeleteUser(id int64) (*domain.User, error) {
	return s.userRepo.Delete(id)
}

// deriveLogin builds the default login: first letter of the first name plus
// the last name, lowercased.
func deriveLogin(prenom, nom string) string {
	first := []rune(strings.ToLower(prenom))
	return string(first[:1]) + strings.ToLower(nom)
}
