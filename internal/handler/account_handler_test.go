package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/bfaucher/ecureuil-backend/internal/domain"
	"github.com/bfaucher/ecureuil-backend/internal/service"
	"github.com/bfaucher/ecureuil-backend/internal/testutil"
)

func newAccountHandler() (*AccountHandler, *testutil.MockAccountRepository) {
	accountRepo := testutil.NewMockAccountRepository()
	return NewAccountHandler(service.NewAccountService(accountRepo)), accountRepo
}

func TestCreateAccount_Success(t *testing.T) {
	h, _ := newAccountHandler()
	c, rec := newJSONContext(t, http.MethodPost, "/api/comptes",
		`{"descriptionCompte": "Compte courant", "nomBanque": "Banque Postale", "soldeInitial": "1000.50"}`, 1)

	if err := h.CreateAccount(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("Expected status 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp AccountResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}
	if resp.Description != "Compte courant" {
		t.Errorf("Expected description echoed, got %q", resp.Description)
	}
	if resp.SoldeInitial != "1000.50" {
		t.Errorf("Expected initial balance '1000.50', got %q", resp.SoldeInitial)
	}
	if resp.Solde != "1000.50" {
		t.Errorf("Expected running balance to start at the initial balance, got %q", resp.Solde)
	}
	if resp.UserID != 1 {
		t.Errorf("Expected owner from auth context, got %d", resp.UserID)
	}
}

func TestCreateAccount_NumericAmount(t *testing.T) {
	h, _ := newAccountHandler()
	c, rec := newJSONContext(t, http.MethodPost, "/api/comptes",
		`{"descriptionCompte": "Livret A", "nomBanque": "BNP", "soldeInitial": 100}`, 1)

	if err := h.CreateAccount(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("Expected status 201 for a JSON-number amount, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp AccountResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}
	if resp.SoldeInitial != "100.00" {
		t.Errorf("Expected initial balance '100.00', got %q", resp.SoldeInitial)
	}
}

func TestCreateAccount_MissingBankName(t *testing.T) {
	h, _ := newAccountHandler()
	c, rec := newJSONContext(t, http.MethodPost, "/api/comptes",
		`{"descriptionCompte": "Compte courant", "soldeInitial": "0"}`, 1)

	if err := h.CreateAccount(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("Expected status 400, got %d", rec.Code)
	}

	var resp ErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}
	if resp.Message != "Validation error" {
		t.Errorf("Expected validation error message, got %q", resp.Message)
	}
	details, ok := resp.Details.([]any)
	if !ok || len(details) != 1 || details[0] != "NomBanque is required" {
		t.Errorf("Unexpected details: %v", resp.Details)
	}
}

func TestCreateAccount_BadDecimal(t *testing.T) {
	h, _ := newAccountHandler()
	c, rec := newJSONContext(t, http.MethodPost, "/api/comptes",
		`{"descriptionCompte": "Compte courant", "nomBanque": "BP", "soldeInitial": "abc"}`, 1)

	if err := h.CreateAccount(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("Expected status 400, got %d", rec.Code)
	}
}

func TestGetAccount_NotOwned(t *testing.T) {
	h, accountRepo := newAccountHandler()
	accountRepo.AddAccount(&domain.Account{UserID: 2, Description: "Other", NomBanque: "BP"})

	c, rec := newJSONContext(t, http.MethodGet, "/api/comptes/1", "", 1)
	c.SetParamNames("idCompte")
	c.SetParamValues("1")

	if err := h.GetAccount(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Fatalf("Expected status 404, got %d", rec.Code)
	}
}

func TestGetAccount_MalformedID(t *testing.T) {
	h, _ := newAccountHandler()
	c, rec := newJSONContext(t, http.MethodGet, "/api/comptes/abc", "", 1)
	c.SetParamNames("idCompte")
	c.SetParamValues("abc")

	if err := h.GetAccount(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Fatalf("Expected status 404, got %d", rec.Code)
	}
}

func TestPatchAccount_NoFields(t *testing.T) {
	h, accountRepo := newAccountHandler()
	accountRepo.AddAccount(&domain.Account{UserID: 1, Description: "Compte courant", NomBanque: "BP"})

	c, rec := newJSONContext(t, http.MethodPatch, "/api/comptes/1", `{}`, 1)
	c.SetParamNames("idCompte")
	c.SetParamValues("1")

	if err := h.PatchAccount(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("Expected status 400, got %d", rec.Code)
	}
}

func TestDeleteAccount_Confirmation(t *testing.T) {
	h, accountRepo := newAccountHandler()
	accountRepo.AddAccount(&domain.Account{
		UserID:       1,
		Description:  "Compte courant",
		NomBanque:    "BP",
		SoldeInitial: decimal.Zero,
		DernierSolde: decimal.Zero,
	})

	c, rec := newJSONContext(t, http.MethodDelete, "/api/comptes/1", "", 1)
	c.SetParamNames("idCompte")
	c.SetParamValues("1")

	if err := h.DeleteAccount(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", rec.Code)
	}

	var resp AccountDeletedResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}
	if resp.Message != "Account deleted" || resp.Description != "Compte courant" {
		t.Errorf("Unexpected body: %+v", resp)
	}
}
