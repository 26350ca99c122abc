package handler

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/bfaucher/ecureuil-backend/internal/domain"
	"github.com/bfaucher/ecureuil-backend/internal/service"
	"github.com/bfaucher/ecureuil-backend/internal/testutil"
)

func TestCreateUser_HandlerSuccess(t *testing.T) {
	h := NewUserHandler(service.NewUserService(testutil.NewMockUserRepository()))
	c, rec := newJSONContext(t, http.MethodPost, "/api/utilisateurs",
		`{"nomUtilisateur": "Faucher", "prenomUtilisateur": "Bertrand", "motDePasse": "secret123"}`, 1)

	if err := h.CreateUser(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("Expected status 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp UserResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}
	if resp.Login != "bfaucher" {
		t.Errorf("Expected derived login 'bfaucher', got %q", resp.Login)
	}
	if strings.Contains(rec.Body.String(), "motDePasse") || strings.Contains(rec.Body.String(), "secret123") {
		t.Error("Password must never appear in a response")
	}
}

func TestCreateUser_DuplicateLoginConflict(t *testing.T) {
	userRepo := testutil.NewMockUserRepository()
	userRepo.AddUser(&domain.User{Login: "bfaucher", Nom: "Faucher", Prenom: "Bertrand"})
	h := NewUserHandler(service.NewUserService(userRepo))

	c, rec := newJSONContext(t, http.MethodPost, "/api/utilisateurs",
		`{"nomUtilisateur": "Faucher", "prenomUtilisateur": "Bertrand", "motDePasse": "secret123"}`, 1)

	if err := h.CreateUser(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if rec.Code != http.StatusConflict {
		t.Fatalf("Expected status 409, got %d", rec.Code)
	}

	var resp ErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}
	if resp.Message != "Login already exists" {
		t.Errorf("Unexpected message: %q", resp.Message)
	}
}

func TestPatchUser_NoFields(t *testing.T) {
	userRepo := testutil.NewMockUserRepository()
	userRepo.AddUser(&domain.User{Login: "bfaucher", Nom: "Faucher", Prenom: "Bertrand"})
	h := NewUserHandler(service.NewUserService(userRepo))

	c, rec := newJSONContext(t, http.MethodPatch, "/api/utilisateurs/1", `{}`, 1)
	c.SetParamNames("idUtilisateur")
	c.SetParamValues("1")

	if err := h.PatchUser(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("Expected status 400, got %d", rec.Code)
	}
}

func TestDeleteUser_Confirmation(t *testing.T) {
	userRepo := testutil.NewMockUserRepository()
	userRepo.AddUser(&domain.User{Login: "bfaucher", Nom: "Faucher", Prenom: "Bertrand"})
	h := NewUserHandler(service.NewUserService(userRepo))

	c, rec := newJSONContext(t, http.MethodDelete, "/api/utilisateurs/1", "", 1)
	c.SetParamNames("idUtilisateur")
	c.SetParamValues("1")

	if err := h.DeleteUser(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", rec.Code)
	}

	var resp UserDeletedResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}
	if resp.Message != "User deleted" || resp.Login != "bfaucher" {
		t.Errorf("Unexpected body: %+v", resp)
	}
}
