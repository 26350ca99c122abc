package service

import (
	"testing"

	"github.com/bfaucher/ecureuil-backend/internal/auth"
	"github.com/bfaucher/ecureuil-backend/internal/domain"
	"github.com/bfaucher/ecureuil-backend/internal/testutil"
)

const testSecret = "test-secret"

func seedUser(t *testing.T, userRepo *testutil.MockUserRepository, login, password string) *domain.User {
	t.Helper()
	hash, err := auth.HashPassword(password)
	if err != nil {
		t.Fatalf("Failed to hash password: %v", err)
	}
	user := &domain.User{Login: login, PasswordHash: hash, Nom: "Faucher", Prenom: "Bertrand"}
	userRepo.AddUser(user)
	return user
}

func TestLogin_Success(t *testing.T) {
	userRepo := testutil.NewMockUserRepository()
	user := seedUser(t, userRepo, "bfaucher", "secret123")
	authService := NewAuthService(userRepo, testSecret)

	result, err := authService.Login("bfaucher", "secret123")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if result.Token == "" {
		t.Error("Expected a signed token")
	}
	if result.ExpiresIn != 86400 {
		t.Errorf("Expected expiresIn 86400, got %d", result.ExpiresIn)
	}
	if result.User.ID != user.ID {
		t.Errorf("Expected user %d, got %d", user.ID, result.User.ID)
	}

	claims, err := auth.ParseToken(testSecret, result.Token)
	if err != nil {
		t.Fatalf("Expected issued token to parse, got %v", err)
	}
	if claims.UserID != user.ID {
		t.Errorf("Expected token user %d, got %d", user.ID, claims.UserID)
	}
}

func TestLogin_UnknownUser(t *testing.T) {
	authService := NewAuthService(testutil.NewMockUserRepository(), testSecret)

	_, err := authService.Login("nobody", "secret123")
	if err != domain.ErrUserNotFound {
		t.Fatalf("Expected ErrUserNotFound, got %v", err)
	}
}

func TestLogin_WrongPassword(t *testing.T) {
	userRepo := testutil.NewMockUserRepository()
	seedUser(t, userRepo, "bfaucher", "secret123")
	authService := NewAuthService(userRepo, testSecret)

	_, err := authService.Login("bfaucher", "wrong")
	if err != domain.ErrInvalidPassword {
		t.Fatalf("Expected ErrInvalidPassword, got %v", err)
	}
}
