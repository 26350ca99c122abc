package service

import (
	"testing"

	"github.com/bfaucher/ecureuil-backend/internal/auth"
	"github.com/bfaucher/ecureuil-backend/internal/domain"
	"github.com/bfaucher/ecureuil-backend/internal/testutil"
)

func TestCreateUser_DerivesLogin(t *testing.T) {
	userService := NewUserService(testutil.NewMockUserRepository())

	user, err := userService.CreateUser(CreateUserInput{
		Nom:        strPtr("Faucher"),
		Prenom:     strPtr("Bertrand"),
		MotDePasse: strPtr("secret123"),
	})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if user.Login != "bfaucher" {
		t.Errorf("Expected derived login 'bfaucher', got %s", user.Login)
	}
}

func TestCreateUser_ExplicitLoginWins(t *testing.T) {
	userService := NewUserService(testutil.NewMockUserRepository())

	user, err := userService.CreateUser(CreateUserInput{
		Login:      strPtr("bertrand"),
		Nom:        strPtr("Faucher"),
		Prenom:     strPtr("Bertrand"),
		MotDePasse: strPtr("secret123"),
	})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if user.Login != "bertrand" {
		t.Errorf("Expected login 'bertrand', got %s", user.Login)
	}
}

func TestCreateUser_HashesPassword(t *testing.T) {
	userService := NewUserService(testutil.NewMockUserRepository())

	user, err := userService.CreateUser(CreateUserInput{
		Nom:        strPtr("Faucher"),
		Prenom:     strPtr("Bertrand"),
		MotDePasse: strPtr("secret123"),
	})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if user.PasswordHash == "secret123" {
		t.Fatal("Expected password to be hashed, found plaintext")
	}
	if !auth.CheckPassword(user.PasswordHash, "secret123") {
		t.Error("Expected hash to verify against the original password")
	}
}

func TestCreateUser_MissingFields(t *testing.T) {
	userService := NewUserService(testutil.NewMockUserRepository())

	_, err := userService.CreateUser(CreateUserInput{})
	requireValidationDetail(t, err, "nomUtilisateur is required")
	requireValidationDetail(t, err, "prenomUtilisateur is required")
	requireValidationDetail(t, err, "motDePasse is required")
}

func TestCreateUser_DuplicateLogin(t *testing.T) {
	userRepo := testutil.NewMockUserRepository()
	userRepo.AddUser(&domain.User{Login: "bfaucher", Nom: "Faucher", Prenom: "Bertrand"})
	userService := NewUserService(userRepo)

	_, err := userService.CreateUser(CreateUserInput{
		Nom:        strPtr("Faucher"),
		Prenom:     strPtr("Bertrand"),
		MotDePasse: strPtr("secret123"),
	})
	if err != domain.ErrDuplicateLogin {
		t.Fatalf("Expected ErrDuplicateLogin, got %v", err)
	}
}

func TestUpdateUser_PartialNoFields(t *testing.T) {
	userRepo := testutil.NewMockUserRepository()
	userRepo.AddUser(&domain.User{Login: "bfaucher", Nom: "Faucher", Prenom: "Bertrand"})
	userService := NewUserService(userRepo)

	_, err := userService.UpdateUser(1, UpdateUserInput{}, true)
	requireValidationDetail(t, err, "No fields to update")
}

func TestUpdateUser_RehashesPassword(t *testing.T) {
	userRepo := testutil.NewMockUserRepository()
	userRepo.AddUser(&domain.User{Login: "bfaucher", Nom: "Faucher", Prenom: "Bertrand", PasswordHash: "old-hash"})
	userService := NewUserService(userRepo)

	user, err := userService.UpdateUser(1, UpdateUserInput{MotDePasse: strPtr("newsecret")}, true)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if user.PasswordHash == "old-hash" || user.PasswordHash == "newsecret" {
		t.Fatalf("Expected a fresh hash, got %s", user.PasswordHash)
	}
	if !auth.CheckPassword(user.PasswordHash, "newsecret") {
		t.Error("Expected hash to verify against the new password")
	}
}

func TestUpdateUser_FullRequiresNames(t *testing.T) {
	userRepo := testutil.NewMockUserRepository()
	userRepo.AddUser(&domain.User{Login: "bfaucher", Nom: "Faucher", Prenom: "Bertrand"})
	userService := NewUserService(userRepo)

	_, err := userService.UpdateUser(1, UpdateUserInput{Ville: strPtr("Lyon")}, false)
	requireValidationDetail(t, err, "nomUtilisateur is required")
	requireValidationDetail(t, err, "prenomUtilisateur is required")
}

func TestDeleteUser_ReturnsDeletedRow(t *testing.T) {
	userRepo := testutil.NewMockUserRepository()
	userRepo.AddUser(&domain.User{Login: "bfaucher", Nom: "Faucher", Prenom: "Bertrand"})
	userService := NewUserService(userRepo)

	user, err := userService.DeleteUser(1)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if user.Login != "bfaucher" {
		t.Errorf("Expected deleted login echoed, got %s", user.Login)
	}
}
