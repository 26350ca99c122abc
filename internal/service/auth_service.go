package service

import (
	"github.com/bfaucher/ecureuil-backend/internal/auth"
	"github.com/bfaucher/ecureuil-backend/internal/domain"
)

// AuthService authenticates users and issues tokens
type AuthService struct {
	userRepo domain.UserRepository
	secret   string
}

// NewAuthService creates a new AuthService
func NewAuthService(userRepo domain.UserRepository, secret string) *AuthService {
	return &AuthService{userRepo: userRepo, secret: secret}
}

// LoginResult holds the outcome of a successful authentication
type LoginResult struct {
	User      *domain.User
	Token     string
	ExpiresIn int
}

// Login verifies the credentials and issues a signed token. Unknown logins
// come back as ErrUserNotFound, wrong passwords as ErrInvalidPassword.
func (s *AuthService) Login(login, password string) (*LoginResult, error) {
	user, err := s.userRepo.GetByLogin(login)
	if err != nil {
		return nil, err
	}

	if !auth.CheckPassword(user.PasswordHash, password) {
		return nil, domain.ErrInvalidPassword
	}

	token, err := auth.GenerateToken(s.secret, user.ID)
	if err != nil {
		return nil, err
	}

	return &LoginResult{
		User:      user,
		Token:     token,
		ExpiresIn: int(auth.TokenTTL.Seconds()),
	}, nil
}
